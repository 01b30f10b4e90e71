// Package sink holds the output destinations of the extraction tools.
package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/extract"
)

// Dir writes one file per instance. The mix directory receives
// "<id>.txt" with the left rendering, a newline and the right
// rendering; the target directory receives "<id>_<line>.txt" with the
// right rendering only.
type Dir struct {
	mix    string
	target string
}

var _ extract.Sink = (*Dir)(nil)

// NewDir creates the directories. An empty mixDir disables mixed output.
func NewDir(mixDir, targetDir string) (*Dir, error) {
	for _, d := range []string{mixDir, targetDir} {
		if d == "" {
			continue
		}
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, err
		}
	}
	return &Dir{mix: mixDir, target: targetDir}, nil
}

func (d *Dir) Write(in *extract.Instance) error {
	if d.mix != "" {
		path := filepath.Join(d.mix, fmt.Sprintf("%d.txt", in.ID))
		if err := os.WriteFile(path, []byte(in.LeftText()+"\n"+in.RightText()), 0o644); err != nil {
			return err
		}
	}
	if d.target != "" {
		path := filepath.Join(d.target, in.Name()+".txt")
		if err := os.WriteFile(path, []byte(in.RightText()), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; every file is closed as soon as it is written.
func (d *Dir) Close() error { return nil }
