package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TripleDecoder pulls triples from an input. Next returns io.EOF when the
// input is exhausted.
type TripleDecoder interface {
	Next() (Triple, error)
	Close() error
}

// TripleEncoder pushes triples to an output.
type TripleEncoder interface {
	Write(Triple) error
	Flush() error
	Close() error
}

type ntDecoder struct {
	reader *bufio.Reader
	line   int
	err    error
	quads  bool
}

// NewNTriplesDecoder returns a pull decoder for N-Triples input.
func NewNTriplesDecoder(r io.Reader) TripleDecoder {
	return &ntDecoder{reader: bufio.NewReader(r)}
}

// newNQuadsTripleDecoder reads N-Quads and discards graph names.
func newNQuadsTripleDecoder(r io.Reader) TripleDecoder {
	return &ntDecoder{reader: bufio.NewReader(r), quads: true}
}

func (d *ntDecoder) Next() (Triple, error) {
	if d.err != nil {
		return Triple{}, d.err
	}
	for {
		line, err := d.readLine()
		if err != nil {
			d.err = err
			return Triple{}, err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		triple, err := parseNTLine(line, d.quads)
		if err != nil {
			d.err = wrapParseError("ntriples", line, d.line, err)
			return Triple{}, d.err
		}
		return triple, nil
	}
}

func (d *ntDecoder) Close() error { return nil }

func (d *ntDecoder) readLine() (string, error) {
	line, err := d.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			d.line++
			return line, nil
		}
		return "", err
	}
	d.line++
	return line, nil
}

func parseNTLine(line string, quads bool) (Triple, error) {
	c := &ntCursor{input: line}
	subject, err := c.parseSubject()
	if err != nil {
		return Triple{}, err
	}
	predicate, err := c.parseIRI()
	if err != nil {
		return Triple{}, err
	}
	object, err := c.parseTerm(true)
	if err != nil {
		return Triple{}, err
	}
	if quads {
		c.skipWS()
		if c.pos < len(c.input) && c.input[c.pos] != '.' {
			if _, err := c.parseTerm(false); err != nil {
				return Triple{}, err
			}
		}
	}
	if !c.consume('.') {
		return Triple{}, c.errorf("expected '.' at end of statement")
	}
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] != '#' {
		return Triple{}, c.errorf("unexpected trailing content")
	}
	return Triple{S: subject, P: predicate, O: object}, nil
}

type ntCursor struct {
	input string
	pos   int
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t', '\r', '\n':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseSubject() (Resource, error) {
	term, err := c.parseTerm(false)
	if err != nil {
		return nil, err
	}
	subject, ok := term.(Resource)
	if !ok {
		return nil, c.errorf("subject must be an IRI or blank node")
	}
	return subject, nil
}

func (c *ntCursor) parseTerm(allowLiteral bool) (Term, error) {
	c.skipWS()
	if c.pos >= len(c.input) {
		return nil, c.errorf("unexpected end of line")
	}
	switch {
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		if !allowLiteral {
			return nil, c.errorf("literal not allowed here")
		}
		return c.parseLiteral()
	default:
		return nil, c.errorf("unexpected token")
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, c.errorf("unterminated IRI")
	}
	value := c.input[start:c.pos]
	c.pos++
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	c.pos++ // opening quote
	var b strings.Builder
	closed := false
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '"' {
			c.pos++
			closed = true
			break
		}
		if ch != '\\' {
			b.WriteByte(ch)
			c.pos++
			continue
		}
		if c.pos+1 >= len(c.input) {
			return Literal{}, c.errorf("unterminated escape")
		}
		next := c.input[c.pos+1]
		c.pos += 2
		switch next {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u', 'U':
			width := 4
			if next == 'U' {
				width = 8
			}
			if c.pos+width > len(c.input) {
				return Literal{}, c.errorf("short unicode escape")
			}
			code, err := strconv.ParseUint(c.input[c.pos:c.pos+width], 16, 32)
			if err != nil {
				return Literal{}, c.errorf("invalid unicode escape")
			}
			b.WriteRune(rune(code))
			c.pos += width
		default:
			b.WriteByte(next)
		}
	}
	if !closed {
		return Literal{}, c.errorf("unterminated literal")
	}
	lexical := b.String()
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
			c.pos++
		}
		return Literal{Lexical: lexical, Lang: c.input[start:c.pos]}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lexical, Datatype: dt}, nil
	}
	return Literal{Lexical: lexical}, nil
}

func (c *ntCursor) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("ntriples: "+format+" at column %d", append(args, c.pos+1)...)
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

type ntEncoder struct {
	writer *bufio.Writer
	err    error
}

// NewNTriplesEncoder returns an encoder writing one triple per line.
func NewNTriplesEncoder(w io.Writer) TripleEncoder {
	return &ntEncoder{writer: bufio.NewWriter(w)}
}

func (e *ntEncoder) Write(t Triple) error {
	if e.err != nil {
		return e.err
	}
	if t.S == nil || t.P.Value == "" || t.O == nil {
		return fmt.Errorf("ntriples: missing statement fields")
	}
	_, err := e.writer.WriteString(t.String() + "\n")
	if err != nil {
		e.err = err
	}
	return err
}

func (e *ntEncoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.writer.Flush()
}

func (e *ntEncoder) Close() error {
	return e.Flush()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		return renderLiteral(value, renderIRI)
	case TripleTerm:
		return "<< " + renderTerm(value.S) + " " + renderIRI(value.P) + " " + renderTerm(value.O) + " >>"
	case nil:
		return ""
	default:
		return value.String()
	}
}

func renderLiteral(l Literal, iri func(IRI) string) string {
	quoted := `"` + escapeLiteral(l.Lexical) + `"`
	if l.Lang != "" {
		return quoted + "@" + l.Lang
	}
	if l.Datatype.Value != "" {
		return quoted + "^^" + iri(l.Datatype)
	}
	return quoted
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}
