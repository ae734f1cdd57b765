package rdf

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ""},
		{io.EOF, ""},
		{fmt.Errorf("walk: %w", ErrDepthExceeded), ErrCodeDepthExceeded},
		{fmt.Errorf("walk: %w", ErrStructuralInput), ErrCodeStructuralInput},
		{fmt.Errorf("merge: %w", ErrBlankNode), ErrCodeBlankNode},
		{errors.New("other"), ErrCodeParseError},
	}
	for _, c := range cases {
		if got := Code(c.err); got != c.want {
			t.Errorf("Code(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestParseErrorExcerpt(t *testing.T) {
	stmt := strings.Repeat("x", 100)
	err := wrapParseError("ntriples", stmt, 3, ErrTripleLimitExceeded)
	msg := err.Error()
	if !strings.HasPrefix(msg, "ntriples:3: ") {
		t.Fatalf("unexpected prefix: %q", msg)
	}
	if !strings.HasSuffix(msg, strings.Repeat("x", 80)+"...") {
		t.Fatalf("expected truncated excerpt: %q", msg)
	}
	if !errors.Is(err, ErrTripleLimitExceeded) {
		t.Fatal("expected ParseError to unwrap")
	}
	if wrapParseError("ntriples", "", 0, nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}
