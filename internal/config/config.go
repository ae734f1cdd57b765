// Package config loads the rdfa command's YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/rdfa-go/rdf"
	"github.com/geoknoesis/rdfa-go/rdfa"
)

// Config is the top-level configuration. Flags given on the command line
// override the file.
type Config struct {
	BaseIRI        string            `yaml:"base_iri"`
	Prefixes       map[string]string `yaml:"prefixes"`
	InitialContext *bool             `yaml:"initial_context"`
	Vocab          string            `yaml:"vocab"`
	Lang           string            `yaml:"lang"`
	MaxDepth       int               `yaml:"max_depth"`
	Format         string            `yaml:"format"`
	Store          string            `yaml:"store"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.defaults()
	return &cfg
}

// Load reads a YAML configuration file and fills in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if _, ok := rdf.ParseFormat(cfg.Format); cfg.Format != "" && !ok {
		return nil, fmt.Errorf("config %s: format %q: %w", path, cfg.Format, rdf.ErrUnsupportedFormat)
	}
	cfg.defaults()
	return &cfg, nil
}

func (c *Config) defaults() {
	if c.InitialContext == nil {
		on := true
		c.InitialContext = &on
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = rdfa.DefaultMaxDepth
	}
	if c.Format == "" {
		c.Format = string(rdf.FormatTurtle)
	}
}

// OutputFormat returns the configured serialization format.
func (c *Config) OutputFormat() rdf.Format {
	f, _ := rdf.ParseFormat(c.Format)
	return f
}

// Options translates the configuration into extraction options.
func (c *Config) Options() []rdfa.Option {
	var opts []rdfa.Option
	if c.InitialContext != nil && *c.InitialContext {
		opts = append(opts, rdfa.OptInitialContext())
	}
	if len(c.Prefixes) > 0 {
		opts = append(opts, rdfa.OptPrefixes(c.Prefixes))
	}
	if c.BaseIRI != "" {
		opts = append(opts, rdfa.OptBaseIRI(c.BaseIRI))
	}
	if c.Vocab != "" {
		opts = append(opts, rdfa.OptVocab(c.Vocab))
	}
	if c.Lang != "" {
		opts = append(opts, rdfa.OptLang(c.Lang))
	}
	opts = append(opts, rdfa.OptMaxDepth(c.MaxDepth))
	return opts
}

// OutputPrefixes returns the prefixes used to abbreviate serialized output:
// the initial context when enabled, then the configured prefixes.
func (c *Config) OutputPrefixes() map[string]string {
	out := make(map[string]string)
	if c.InitialContext != nil && *c.InitialContext {
		for k, v := range rdf.InitialContext() {
			out[k] = v
		}
	}
	for k, v := range c.Prefixes {
		out[k] = v
	}
	return out
}
