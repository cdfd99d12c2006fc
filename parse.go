package jsontree

import (
	"fmt"
	"strconv"

	"github.com/reoring/jsontree/internal/lexer"
)

// Severity expresses how strictly a condition is treated during parsing.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles parsing options. The zero value applies no limits and the
// documented duplicate-key policy (last occurrence wins, silently).
type ParseOpt struct {
	// MaxDepth aborts parsing when container nesting exceeds the limit
	// (0 = unlimited).
	MaxDepth int
	// MaxBytes rejects inputs larger than the limit up front (0 = unlimited).
	MaxBytes int64
	// OnDuplicateKey controls duplicate object keys: Ignore keeps the
	// last-wins policy silently, Warn reports each duplicate to DuplicateSink,
	// Error aborts the parse.
	OnDuplicateKey Severity
	// DuplicateSink receives duplicate-key issues when OnDuplicateKey is Warn.
	DuplicateSink func(Issue)
}

// Parse reads one complete JSON document from data and returns its Value
// tree. Parsing is fail-fast: the first lexical or structural error aborts
// and is returned as a *ParseError; no partial tree is produced. Any
// non-whitespace bytes after the top-level value are a structural error.
func Parse(data []byte, opts ...ParseOpt) (Value, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Value{}, &ParseError{Offset: int(opt.MaxBytes), Line: 1, Col: 1, Msg: "max bytes exceeded"}
	}
	p := &parser{lx: lexer.New(data), data: data, opt: opt}
	if err := p.advance(); err != nil {
		return Value{}, err
	}
	v, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	if p.tok.Kind != lexer.EOF {
		return Value{}, p.structuralf(p.tok.Offset, "expected end of input, found %s", p.tok.Kind)
	}
	return v, nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOpt) (Value, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	lx    *lexer.Lexer
	data  []byte
	tok   lexer.Token
	opt   ParseOpt
	depth int
}

func (p *parser) advance() *ParseError {
	tok, lerr := p.lx.Next()
	if lerr != nil {
		le := &LexError{Offset: lerr.Offset, Msg: lerr.Msg}
		line, col := lineCol(p.data, lerr.Offset)
		return &ParseError{Offset: lerr.Offset, Line: line, Col: col, Msg: lerr.Msg, Err: le}
	}
	p.tok = tok
	return nil
}

func (p *parser) structuralf(off int, format string, args ...any) *ParseError {
	line, col := lineCol(p.data, off)
	return &ParseError{Offset: off, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) enter(off int) *ParseError {
	p.depth++
	if p.opt.MaxDepth > 0 && p.depth > p.opt.MaxDepth {
		return p.structuralf(off, "max depth exceeded")
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parseValue dispatches on the current token and leaves the parser positioned
// on the token after the value.
func (p *parser) parseValue() (Value, *ParseError) {
	tok := p.tok
	switch tok.Kind {
	case lexer.BeginObject:
		return p.parseObject()
	case lexer.BeginArray:
		return p.parseArray()
	case lexer.String:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return String(tok.Text), nil
	case lexer.Number:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return Value{}, p.structuralf(tok.Offset, "invalid number literal %q", tok.Text)
		}
		if aerr := p.advance(); aerr != nil {
			return Value{}, aerr
		}
		return Number(f), nil
	case lexer.True:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return Bool(true), nil
	case lexer.False:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return Bool(false), nil
	case lexer.Null:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return Null(), nil
	case lexer.EOF:
		return Value{}, p.structuralf(tok.Offset, "expected value, found end of input")
	default:
		return Value{}, p.structuralf(tok.Offset, "expected value, found %s", tok.Kind)
	}
}

func (p *parser) parseObject() (Value, *ParseError) {
	open := p.tok.Offset
	if err := p.enter(open); err != nil {
		return Value{}, err
	}
	defer p.leave()
	if err := p.advance(); err != nil {
		return Value{}, err
	}
	obj := newObject()
	if p.tok.Kind == lexer.EndObject {
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return Value{kind: KindObject, obj: obj}, nil
	}
	for {
		if p.tok.Kind != lexer.String {
			if p.tok.Kind == lexer.EOF {
				return Value{}, p.structuralf(p.tok.Offset, "unclosed object: expected string key, found end of input")
			}
			return Value{}, p.structuralf(p.tok.Offset, "expected string key, found %s", p.tok.Kind)
		}
		key := p.tok.Text
		keyOff := p.tok.Offset
		if obj.Has(key) && p.opt.OnDuplicateKey != Ignore {
			if p.opt.OnDuplicateKey == Error {
				return Value{}, p.structuralf(keyOff, "duplicate object key %q", key)
			}
			if p.opt.DuplicateSink != nil {
				p.opt.DuplicateSink(Issue{Code: CodeDuplicateKey, Path: key, Message: "key '" + key + "' duplicated"})
			}
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		if p.tok.Kind != lexer.Colon {
			return Value{}, p.structuralf(p.tok.Offset, "expected ':' after object key, found %s", p.tok.Kind)
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		// Last occurrence wins for duplicate keys.
		obj.set(key, v)
		switch p.tok.Kind {
		case lexer.Comma:
			if err := p.advance(); err != nil {
				return Value{}, err
			}
		case lexer.EndObject:
			if err := p.advance(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindObject, obj: obj}, nil
		case lexer.EOF:
			return Value{}, p.structuralf(p.tok.Offset, "unclosed object: expected ',' or '}', found end of input")
		default:
			return Value{}, p.structuralf(p.tok.Offset, "expected ',' or '}' after object value, found %s", p.tok.Kind)
		}
	}
}

func (p *parser) parseArray() (Value, *ParseError) {
	open := p.tok.Offset
	if err := p.enter(open); err != nil {
		return Value{}, err
	}
	defer p.leave()
	if err := p.advance(); err != nil {
		return Value{}, err
	}
	var elems []Value
	if p.tok.Kind == lexer.EndArray {
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return Value{kind: KindArray, arr: elems}, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
		switch p.tok.Kind {
		case lexer.Comma:
			if err := p.advance(); err != nil {
				return Value{}, err
			}
		case lexer.EndArray:
			if err := p.advance(); err != nil {
				return Value{}, err
			}
			return Value{kind: KindArray, arr: elems}, nil
		case lexer.EOF:
			return Value{}, p.structuralf(p.tok.Offset, "unclosed array: expected ',' or ']', found end of input")
		default:
			return Value{}, p.structuralf(p.tok.Offset, "expected ',' or ']' after array element, found %s", p.tok.Kind)
		}
	}
}

// lineCol derives a 1-based line/column pair from a byte offset.
func lineCol(data []byte, off int) (int, int) {
	if off > len(data) {
		off = len(data)
	}
	line, col := 1, 1
	for _, c := range data[:off] {
		if c == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
