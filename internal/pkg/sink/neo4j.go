package sink

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v4/neo4j"

	"gitlab.com/wsi-prep/senses-tools/internal/pkg/extract"
)

// DefaultBatchSize is the number of instances written per transaction.
const DefaultBatchSize = 500

var indexQueries = []string{
	"CREATE INDEX target_index IF NOT EXISTS FOR (t:Target) ON (t.word);",
	"CREATE INDEX word_index IF NOT EXISTS FOR (w:Word) ON (w.word, w.side);",
	"CREATE INDEX instance_index IF NOT EXISTS FOR (i:Instance) ON (i.run, i.id);",
}

const instanceQuery = "MERGE (t:Target {word: $target}) " +
	"CREATE (i:Instance {id: $id, line: $line, run: $run, label: $label}) " +
	"MERGE (i)-[:OF]->(t) " +
	"FOREACH (w IN $right | MERGE (c:Word {word: w, side: 'r'}) MERGE (i)-[:CONTEXT]->(c)) " +
	"FOREACH (w IN $left | MERGE (c:Word {word: w, side: 'l'}) MERGE (i)-[:CONTEXT]->(c)) " +
	"FOREACH (w IN $translation | MERGE (x:Word {word: w, side: 'l'}) " +
	"MERGE (t)-[r:TRANSLATION]->(x) ON CREATE SET r.count = 1 ON MATCH SET r.count = r.count + 1);"

// TxWriter is the part of neo4j.Session the sink needs.
type TxWriter interface {
	WriteTransaction(work neo4j.TransactionWork, configurers ...func(*neo4j.TransactionConfig)) (interface{}, error)
}

// Neo4j stores instances as a graph: (:Instance)-[:OF]->(:Target),
// (:Instance)-[:CONTEXT]->(:Word) per context token, and
// (:Target)-[:TRANSLATION {count}]->(:Word) for echoed translations.
// Every run is tagged with a fresh UUID.
type Neo4j struct {
	session      TxWriter
	run          string
	batchSize    int
	translations bool
	pending      []statement
}

var _ extract.Sink = (*Neo4j)(nil)

type statement struct {
	cypher string
	params map[string]interface{}
}

// NewNeo4j creates the indices and returns a sink that commits every
// batchSize instances. translations enables the TRANSLATION edges.
func NewNeo4j(session TxWriter, batchSize int, translations bool) (*Neo4j, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	n := &Neo4j{
		session:      session,
		run:          uuid.New().String(),
		batchSize:    batchSize,
		translations: translations,
	}
	stmts := make([]statement, len(indexQueries))
	for i, q := range indexQueries {
		stmts[i] = statement{q, map[string]interface{}{}}
	}
	if err := n.exec(stmts); err != nil {
		return nil, fmt.Errorf("create indices: %w", err)
	}
	return n, nil
}

// RunID identifies the instances of this run in the graph.
func (n *Neo4j) RunID() string { return n.run }

func (n *Neo4j) Write(in *extract.Instance) error {
	n.pending = append(n.pending, n.statement(in))
	if len(n.pending) >= n.batchSize {
		return n.flush()
	}
	return nil
}

// Close commits the last partial batch. It does not close the session.
func (n *Neo4j) Close() error {
	return n.flush()
}

func (n *Neo4j) flush() error {
	if len(n.pending) == 0 {
		return nil
	}
	err := n.exec(n.pending)
	n.pending = n.pending[:0]
	return err
}

func (n *Neo4j) exec(stmts []statement) error {
	_, err := n.session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		for _, s := range stmts {
			if _, err := tx.Run(s.cypher, s.params); err != nil {
				return nil, fmt.Errorf("query %q: %w", s.cypher, err)
			}
		}
		return nil, nil
	})
	return err
}

func (n *Neo4j) statement(in *extract.Instance) statement {
	translation := []string{}
	if n.translations && in.Translation != "" {
		translation = append(translation, in.Translation)
	}
	return statement{instanceQuery, map[string]interface{}{
		"target":      in.Target,
		"id":          int64(in.ID),
		"line":        in.Line,
		"run":         n.run,
		"label":       in.Label,
		"right":       nonNil(in.Right),
		"left":        nonNil(in.Left),
		"translation": translation,
	}}
}

// nonNil keeps empty contexts as lists; the driver sends nil slices as null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
