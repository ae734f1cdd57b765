// Package store is the permanent triple store. It accepts only graphs that
// have been pruned of blank nodes, so every stored statement is rooted in an
// IRI that stays meaningful across extractions.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/geoknoesis/rdfa-go/rdf"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS triples (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	subject   TEXT NOT NULL,
	predicate TEXT NOT NULL,
	object    TEXT NOT NULL,
	literal   INTEGER NOT NULL,
	datatype  TEXT NOT NULL DEFAULT '',
	lang      TEXT NOT NULL DEFAULT '',
	UNIQUE (subject, predicate, object, literal, datatype, lang)
);
CREATE INDEX IF NOT EXISTS idx_triples_subject ON triples(subject);
`

// Store is a SQLite-backed set of IRI-rooted triples.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store at path. ":memory:" gives a private
// in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}
	if path == ":memory:" {
		// each connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Merge adds the triples of g that are not stored yet and returns how many
// were new. A graph that still holds a blank node is rejected as a whole with
// rdf.ErrBlankNode.
func (s *Store) Merge(ctx context.Context, g *rdf.Graph) (int, error) {
	if g.HasBlankNodes() {
		return 0, fmt.Errorf("store: merge: %w", rdf.ErrBlankNode)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO triples
		(subject, predicate, object, literal, datatype, lang) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, t := range g.Triples() {
		subject, ok := t.S.(rdf.IRI)
		if !ok {
			return 0, fmt.Errorf("store: merge: subject %s: %w", t.S, rdf.ErrBlankNode)
		}
		var res sql.Result
		switch o := t.O.(type) {
		case rdf.IRI:
			res, err = stmt.ExecContext(ctx, subject.Value, t.P.Value, o.Value, 0, "", "")
		case rdf.Literal:
			res, err = stmt.ExecContext(ctx, subject.Value, t.P.Value, o.Lexical, 1, o.Datatype.Value, o.Lang)
		default:
			return 0, fmt.Errorf("store: merge: unsupported object %s", t.O)
		}
		if err != nil {
			return 0, fmt.Errorf("store: insert: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("store: insert: %w", err)
		}
		added += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}
	return added, nil
}

// Triples returns the stored triples of subject in insertion order.
func (s *Store) Triples(ctx context.Context, subject rdf.IRI) ([]rdf.Triple, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT subject, predicate, object, literal, datatype, lang
		FROM triples WHERE subject = ? ORDER BY id`, subject.Value)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	return scanTriples(rows)
}

// Graph returns the whole store as a graph.
func (s *Store) Graph(ctx context.Context) (*rdf.Graph, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT subject, predicate, object, literal, datatype, lang
		FROM triples ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	triples, err := scanTriples(rows)
	if err != nil {
		return nil, err
	}
	return rdf.NewGraphFromTriples(triples), nil
}

func scanTriples(rows *sql.Rows) ([]rdf.Triple, error) {
	defer rows.Close()
	var out []rdf.Triple
	for rows.Next() {
		var subject, predicate, object, datatype, lang string
		var literal bool
		if err := rows.Scan(&subject, &predicate, &object, &literal, &datatype, &lang); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		var o rdf.Term = rdf.IRI{Value: object}
		if literal {
			o = rdf.Literal{Lexical: object, Datatype: rdf.IRI{Value: datatype}, Lang: lang}
		}
		out = append(out, rdf.NewTriple(rdf.IRI{Value: subject}, rdf.IRI{Value: predicate}, o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: rows: %w", err)
	}
	return out, nil
}
