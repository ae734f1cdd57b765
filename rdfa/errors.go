package rdfa

import (
	"errors"
	"fmt"

	"github.com/geoknoesis/rdfa-go/rdf"
)

// ErrUnknownNode is returned when a node handed to a Document was not part of
// the tree it was built from.
var ErrUnknownNode = errors.New("rdfa: node is not part of this document")

// StructuralError reports a markup tree that could not be walked. Path lists
// child indices from the root ("/" for the root itself); Offset is the text
// offset reached when the walk stopped.
type StructuralError struct {
	Path   string
	Offset int
	Err    error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("rdfa: node %s (offset %d): %v", e.Path, e.Offset, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

func structuralf(path string, offset int, format string, args ...interface{}) error {
	return &StructuralError{
		Path:   path,
		Offset: offset,
		Err:    fmt.Errorf("%w: "+format, append([]interface{}{rdf.ErrStructuralInput}, args...)...),
	}
}

// DiagnosticCode classifies a non-fatal extraction problem.
type DiagnosticCode string

const (
	// DiagUnknownPrefix marks a CURIE whose prefix is not declared.
	DiagUnknownPrefix DiagnosticCode = "UNKNOWN_PREFIX"
	// DiagInvalidPrefixDecl marks a malformed prefix attribute entry.
	DiagInvalidPrefixDecl DiagnosticCode = "INVALID_PREFIX_DECLARATION"
	// DiagInvalidTerm marks a value that cannot name a predicate or type.
	DiagInvalidTerm DiagnosticCode = "INVALID_TERM"
	// DiagNoSubject marks a statement dropped because no subject was in scope.
	DiagNoSubject DiagnosticCode = "NO_SUBJECT"
	// DiagTypeNotFound marks a locator query with no match.
	DiagTypeNotFound DiagnosticCode = "TYPE_NOT_FOUND"
)

// Diagnostic is a non-fatal problem recorded during extraction. The
// offending statement is dropped and processing continues.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
	Attr    string
	Value   string
	Offset  int
}

func (d Diagnostic) String() string {
	if d.Attr == "" {
		return fmt.Sprintf("%s at %d: %s", d.Code, d.Offset, d.Message)
	}
	return fmt.Sprintf("%s at %d: %s (%s=%q)", d.Code, d.Offset, d.Message, d.Attr, d.Value)
}
