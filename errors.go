package jsontree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
	// Constraint violations (string/array length family)
	CodeTooShort    = "too_short"
	CodeTooLong     = "too_long"
	CodeWrongLength = "wrong_length"
	CodeEmpty       = "empty"
	// Constraint violations (numeric family)
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeNotMultiple = "not_multiple"
	CodeNotInteger  = "not_integer"
	// Constraint violations (content family)
	CodePrefixMismatch  = "prefix_mismatch"
	CodeSuffixMismatch  = "suffix_mismatch"
	CodeNotIncluded     = "not_included"
	CodeUnexpectedValue = "unexpected_value"
	CodeNoMatch         = "no_match"
	CodeIndexMissing    = "index_missing"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dotted/bracketed field path (for example: address.city, items[2]).
	Code    string // One of the codes listed above.
	Message string
	// Rule optionally records the builder step that produced this issue
	// (for example "min_length" or "gt").
	Rule string
	// Params carries structured parameters (e.g., {"bound":18, "actual":15})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_small at age
		fmt.Fprintf(b, "%s at %s", it.Code, displayPath(it.Path))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func displayPath(p string) string {
	if p == "" {
		return "$"
	}
	return p
}

// JoinPath appends a field name to a dotted path.
func JoinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

// JoinIndex appends an array index to a path.
func JoinIndex(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}

// LexError reports a lexical failure (unterminated string, bad escape, raw
// control character, unrecognized byte) at a byte offset in the input.
type LexError struct {
	Offset int
	Msg    string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Offset, e.Msg)
}

// ParseError reports a lexical or structural failure. Offset is the byte
// position of the offending token; Line and Col are derived from it (1-based).
// Err holds the underlying *LexError when the failure was lexical.
type ParseError struct {
	Offset int
	Line   int
	Col    int
	Msg    string // expected/found description
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d (offset %d): %s", e.Line, e.Col, e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
