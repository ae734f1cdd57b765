package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/geoknoesis/rdfa-go/internal/config"
	"github.com/geoknoesis/rdfa-go/internal/store"
	"github.com/geoknoesis/rdfa-go/rdf"
	"github.com/geoknoesis/rdfa-go/rdfa"
)

// session holds what every command needs: the merged configuration, the
// logger and the processed document.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	root   rdfa.Node
	doc    *rdfa.Document
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("quiet") {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if c.IsSet("base") {
		cfg.BaseIRI = c.String("base")
	}
	if c.IsSet("format") {
		if _, ok := rdf.ParseFormat(c.String("format")); !ok {
			return nil, fmt.Errorf("format %q: %w", c.String("format"), rdf.ErrUnsupportedFormat)
		}
		cfg.Format = c.String("format")
	}
	for _, p := range c.StringSlice("prefix") {
		name, iri, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("prefix %q: expected name=iri", p)
		}
		if cfg.Prefixes == nil {
			cfg.Prefixes = make(map[string]string)
		}
		cfg.Prefixes[name] = iri
	}
	return cfg, nil
}

func openSession(c *cli.Context) (*session, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected exactly one FILE argument", c.Command.Name)
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	logger := newLogger(c)

	var r io.Reader = os.Stdin
	if name := c.Args().First(); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	root, err := rdfa.ParseHTML(r)
	if err != nil {
		return nil, err
	}
	doc, err := rdfa.ProcessHTML(root, append(cfg.Options(), rdfa.OptLogger(logger))...)
	if err != nil {
		return nil, err
	}
	logger.Info("document processed",
		"file", c.Args().First(),
		"base", doc.BaseIRI(),
		"triples", len(doc.Triples),
		"diagnostics", len(doc.Diagnostics),
	)
	return &session{cfg: cfg, logger: logger, root: root, doc: doc}, nil
}

func (s *session) write(w io.Writer, g *rdf.Graph) error {
	return rdf.WriteGraph(w, g, s.cfg.OutputFormat(), rdf.EncodeOptions{
		Prefixes: s.cfg.OutputPrefixes(),
		Indent:   "  ",
	})
}

func extractAction(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	return s.write(c.App.Writer, s.doc.Graph())
}

func findAction(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	typeIRI := c.String("type")
	var nodes []rdfa.Node
	if c.Bool("all") {
		nodes = s.doc.FindAll(typeIRI)
	} else if n := s.doc.FindFirst(typeIRI); n != nil {
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no node of type %s", s.doc.ExpandIRI(typeIRI))
	}
	for _, n := range nodes {
		en := s.doc.Lookup(n)
		markup, err := rdfa.RenderHTML(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%d-%d\t%s\n", en.Start(), en.End(), markup)
	}
	return nil
}

func graphAction(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}

	var target rdfa.Node
	switch {
	case c.IsSet("type") == c.IsSet("select"):
		return fmt.Errorf("graph: exactly one of --type or --select is required")
	case c.IsSet("type"):
		target = s.doc.FindFirst(c.String("type"))
	default:
		nodes, err := rdfa.Select(s.root, c.String("select"))
		if err != nil {
			return err
		}
		if len(nodes) > 0 {
			target = nodes[0]
		}
	}
	if target == nil {
		return fmt.Errorf("graph: no matching node")
	}

	en := s.doc.Lookup(target)
	g, report, err := rdfa.ExtractPrunedGraph(en,
		rdfa.OptBaseIRI(s.doc.BaseIRI()),
		rdfa.OptLogger(s.logger),
		rdfa.OptMaxDepth(s.cfg.MaxDepth),
	)
	if err != nil {
		return err
	}
	s.logger.Info("subgraph extracted",
		"triples", g.Len(),
		"removed_subjects", report.RemovedSubjects,
		"removed_objects", report.RemovedObjects,
		"unrecognized", report.Unrecognized,
	)
	if report.Unrecognized > 0 {
		s.logger.Warn("subgraph holds unrecognized terms", "count", report.Unrecognized)
	}

	path := s.cfg.Store
	if c.IsSet("store") {
		path = c.String("store")
	}
	if path != "" {
		if err := merge(c.Context, s.logger, path, g); err != nil {
			return err
		}
	}
	return s.write(c.App.Writer, g)
}

func merge(ctx context.Context, logger *slog.Logger, path string, g *rdf.Graph) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()
	added, err := st.Merge(ctx, g)
	if err != nil {
		return err
	}
	logger.Info("subgraph stored", "store", path, "added", added)
	return nil
}
