// Package profile adds --cpuprofile and --memprofile to a cli.App.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/urfave/cli/v2"
)

// Profile holds the flag values and the open CPU profile.
type Profile struct {
	CPU string
	Mem string
	cpu *os.File
}

func (p *Profile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cpuprofile",
			Value:       "",
			Usage:       "Write cpu profile to `file`",
			Destination: &p.CPU,
		},
		&cli.StringFlag{
			Name:        "memprofile",
			Value:       "",
			Usage:       "Write memory profile to `file`",
			Destination: &p.Mem,
		},
	}
}

// Start begins CPU profiling if requested. Use as cli.App.Before.
func (p *Profile) Start(c *cli.Context) error {
	if p.CPU == "" {
		return nil
	}
	f, err := os.Create(p.CPU)
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.cpu = f
	return nil
}

// Stop ends CPU profiling and writes the heap profile. Use as
// cli.App.After; it runs even when the action fails.
func (p *Profile) Stop(c *cli.Context) error {
	if p.cpu != nil {
		pprof.StopCPUProfile()
		if err := p.cpu.Close(); err != nil {
			return fmt.Errorf("could not close cpu profile: %w", err)
		}
		p.cpu = nil
	}
	if p.Mem == "" {
		return nil
	}
	f, err := os.Create(p.Mem)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return f.Close()
}
