package rdfa

import (
	"log/slog"
	"strings"

	"github.com/geoknoesis/rdfa-go/rdf"
	"github.com/google/uuid"
)

// DefaultMaxDepth bounds markup nesting. It matches the nesting limit of the
// HTML tree builder, so parsed documents never hit it.
const DefaultMaxDepth = 512

// Options configures extraction.
type Options struct {
	// BaseIRI resolves relative references and is the document subject.
	BaseIRI string
	// Prefixes are the document-level prefix mappings.
	Prefixes map[string]string
	// Vocab is the initial vocabulary IRI.
	Vocab string
	// Lang is the initial language tag.
	Lang string
	// MaxDepth bounds markup nesting; deeper trees fail with rdf.ErrDepthExceeded.
	// Zero uses DefaultMaxDepth, negative disables the limit.
	MaxDepth int
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
	// BlankNodePrefix prefixes minted blank node identifiers.
	BlankNodePrefix string
	// UniqueBlankNodes scopes blank node identifiers to a random per-call
	// namespace.
	UniqueBlankNodes bool
}

// Option configures extraction.
type Option func(*Options)

// DefaultOptions returns options with the default depth limit and no prefixes.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

func newOptions(opts []Option) Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.MaxDepth == 0 {
		options.MaxDepth = DefaultMaxDepth
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}
	return options
}

// OptBaseIRI sets the base IRI.
func OptBaseIRI(base string) Option {
	return func(opts *Options) {
		opts.BaseIRI = base
	}
}

// OptPrefixes adds document-level prefix mappings. Prefix names are
// case-insensitive.
func OptPrefixes(prefixes map[string]string) Option {
	return func(opts *Options) {
		if opts.Prefixes == nil {
			opts.Prefixes = make(map[string]string, len(prefixes))
		}
		for prefix, ns := range prefixes {
			opts.Prefixes[strings.ToLower(prefix)] = ns
		}
	}
}

// OptPrefix adds one document-level prefix mapping.
func OptPrefix(prefix, namespace string) Option {
	return OptPrefixes(map[string]string{prefix: namespace})
}

// OptInitialContext adds the RDFa core initial context prefixes.
func OptInitialContext() Option {
	return OptPrefixes(rdf.InitialContext())
}

// OptVocab sets the initial vocabulary.
func OptVocab(vocab string) Option {
	return func(opts *Options) {
		opts.Vocab = vocab
	}
}

// OptLang sets the initial language tag.
func OptLang(lang string) Option {
	return func(opts *Options) {
		opts.Lang = lang
	}
}

// OptMaxDepth sets the maximum nesting depth.
func OptMaxDepth(maxDepth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = maxDepth
	}
}

// OptLogger routes diagnostics to logger.
func OptLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// OptBlankNodePrefix sets a fixed prefix for minted blank node identifiers.
func OptBlankNodePrefix(prefix string) Option {
	return func(opts *Options) {
		opts.BlankNodePrefix = prefix
	}
}

// OptUniqueBlankNodes gives every call its own random blank node namespace,
// so scratch graphs from separate calls can be merged without collisions.
func OptUniqueBlankNodes() Option {
	return func(opts *Options) {
		opts.UniqueBlankNodes = true
	}
}

func (o Options) blankNodeGenerator() *rdf.BlankNodeGenerator {
	prefix := o.BlankNodePrefix
	if o.UniqueBlankNodes {
		prefix += "u" + strings.ReplaceAll(uuid.NewString(), "-", "") + "b"
	}
	return &rdf.BlankNodeGenerator{Prefix: prefix}
}
