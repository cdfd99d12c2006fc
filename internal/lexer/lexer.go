// Package lexer turns raw JSON text into a token stream with byte offsets.
// It owns all character-level concerns: whitespace skipping, string escape
// decoding (including surrogate pairs), and the strict number grammar.
package lexer

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Kind identifies a token.
type Kind int

const (
	BeginObject Kind = iota // {
	EndObject               // }
	BeginArray              // [
	EndArray                // ]
	Colon                   // :
	Comma                   // ,
	String                  // string literal, escape-decoded
	Number                  // number literal, raw lexeme
	True
	False
	Null
	EOF
)

func (k Kind) String() string {
	switch k {
	case BeginObject:
		return "'{'"
	case EndObject:
		return "'}'"
	case BeginArray:
		return "'['"
	case EndArray:
		return "']'"
	case Colon:
		return "':'"
	case Comma:
		return "','"
	case String:
		return "string"
	case Number:
		return "number"
	case True:
		return "'true'"
	case False:
		return "'false'"
	case Null:
		return "'null'"
	case EOF:
		return "end of input"
	default:
		return "invalid"
	}
}

// Token is one lexical unit. Text holds the decoded value for String tokens
// and the raw lexeme for Number tokens; it is empty otherwise. Offset is the
// byte position of the token's first byte.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// Error is a lexical failure at a byte offset.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Lexer scans UTF-8 input left to right.
type Lexer struct {
	data []byte
	pos  int
}

// New returns a Lexer over data.
func New(data []byte) *Lexer { return &Lexer{data: data} }

// Pos returns the current byte position.
func (lx *Lexer) Pos() int { return lx.pos }

func (lx *Lexer) errf(off int, format string, args ...any) *Error {
	return &Error{Offset: off, Msg: fmt.Sprintf(format, args...)}
}

// Next returns the next token, skipping ASCII whitespace between tokens.
func (lx *Lexer) Next() (Token, *Error) {
	lx.skipSpace()
	start := lx.pos
	if lx.pos >= len(lx.data) {
		return Token{Kind: EOF, Offset: start}, nil
	}
	switch c := lx.data[lx.pos]; c {
	case '{':
		lx.pos++
		return Token{Kind: BeginObject, Offset: start}, nil
	case '}':
		lx.pos++
		return Token{Kind: EndObject, Offset: start}, nil
	case '[':
		lx.pos++
		return Token{Kind: BeginArray, Offset: start}, nil
	case ']':
		lx.pos++
		return Token{Kind: EndArray, Offset: start}, nil
	case ':':
		lx.pos++
		return Token{Kind: Colon, Offset: start}, nil
	case ',':
		lx.pos++
		return Token{Kind: Comma, Offset: start}, nil
	case '"':
		return lx.scanString()
	case 't':
		return lx.scanKeyword("true", True)
	case 'f':
		return lx.scanKeyword("false", False)
	case 'n':
		return lx.scanKeyword("null", Null)
	default:
		if c == '-' || (c >= '0' && c <= '9') {
			return lx.scanNumber()
		}
		return Token{}, lx.errf(start, "unexpected byte %q", c)
	}
}

func (lx *Lexer) skipSpace() {
	for lx.pos < len(lx.data) {
		switch lx.data[lx.pos] {
		case ' ', '\t', '\n', '\r':
			lx.pos++
		default:
			return
		}
	}
}

func (lx *Lexer) scanKeyword(word string, kind Kind) (Token, *Error) {
	start := lx.pos
	if len(lx.data)-lx.pos < len(word) || string(lx.data[lx.pos:lx.pos+len(word)]) != word {
		return Token{}, lx.errf(start, "unexpected byte %q", lx.data[start])
	}
	lx.pos += len(word)
	// A keyword must not run into further identifier characters (e.g. "nullx").
	if lx.pos < len(lx.data) {
		if c := lx.data[lx.pos]; (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return Token{}, lx.errf(start, "unexpected byte %q", lx.data[start])
		}
	}
	return Token{Kind: kind, Offset: start}, nil
}

// scanString decodes a quoted string literal, handling the JSON escapes and
// surrogate pairs for \uXXXX sequences outside the basic plane.
func (lx *Lexer) scanString() (Token, *Error) {
	start := lx.pos
	lx.pos++ // opening quote
	var buf []byte
	for {
		if lx.pos >= len(lx.data) {
			return Token{}, lx.errf(start, "unterminated string literal")
		}
		c := lx.data[lx.pos]
		switch {
		case c == '"':
			lx.pos++
			return Token{Kind: String, Text: string(buf), Offset: start}, nil
		case c == '\\':
			dec, err := lx.scanEscape()
			if err != nil {
				return Token{}, err
			}
			buf = utf8.AppendRune(buf, dec)
		case c < 0x20:
			return Token{}, lx.errf(lx.pos, "control character 0x%02x in string literal", c)
		default:
			// Copy the raw UTF-8 bytes through unchanged.
			buf = append(buf, c)
			lx.pos++
		}
	}
}

func (lx *Lexer) scanEscape() (rune, *Error) {
	off := lx.pos
	lx.pos++ // backslash
	if lx.pos >= len(lx.data) {
		return 0, lx.errf(off, "incomplete escape sequence")
	}
	c := lx.data[lx.pos]
	lx.pos++
	switch c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return lx.scanUnicodeEscape(off)
	default:
		return 0, lx.errf(off, "invalid escape sequence '\\%c'", c)
	}
}

func (lx *Lexer) scanUnicodeEscape(off int) (rune, *Error) {
	hi, err := lx.scanHex4(off)
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(rune(hi)) {
		return rune(hi), nil
	}
	// High surrogate: a low surrogate escape must follow to form one code
	// point outside the basic plane.
	if lx.pos+1 < len(lx.data) && lx.data[lx.pos] == '\\' && lx.data[lx.pos+1] == 'u' {
		off2 := lx.pos
		lx.pos += 2
		lo, err := lx.scanHex4(off2)
		if err != nil {
			return 0, err
		}
		if r := utf16.DecodeRune(rune(hi), rune(lo)); r != utf8.RuneError {
			return r, nil
		}
		return 0, lx.errf(off, "invalid surrogate pair \\u%04X\\u%04X", hi, lo)
	}
	return 0, lx.errf(off, "unpaired surrogate \\u%04X", hi)
}

func (lx *Lexer) scanHex4(off int) (uint16, *Error) {
	if len(lx.data)-lx.pos < 4 {
		return 0, lx.errf(off, "incomplete \\u escape")
	}
	var n uint16
	for i := 0; i < 4; i++ {
		c := lx.data[lx.pos]
		var d uint16
		switch {
		case c >= '0' && c <= '9':
			d = uint16(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint16(c-'A') + 10
		default:
			return 0, lx.errf(off, "invalid \\u escape: %q is not a hex digit", c)
		}
		n = n<<4 | d
		lx.pos++
	}
	return n, nil
}

// scanNumber validates the grammar
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)? and returns the raw lexeme.
// Leading zeros (except a bare 0) and a trailing decimal point are rejected.
func (lx *Lexer) scanNumber() (Token, *Error) {
	start := lx.pos
	if lx.data[lx.pos] == '-' {
		lx.pos++
	}
	// Integer part.
	if lx.pos >= len(lx.data) || !isDigit(lx.data[lx.pos]) {
		return Token{}, lx.errf(start, "invalid number literal: missing digits")
	}
	if lx.data[lx.pos] == '0' {
		lx.pos++
		if lx.pos < len(lx.data) && isDigit(lx.data[lx.pos]) {
			return Token{}, lx.errf(start, "invalid number literal: leading zero")
		}
	} else {
		for lx.pos < len(lx.data) && isDigit(lx.data[lx.pos]) {
			lx.pos++
		}
	}
	// Fraction.
	if lx.pos < len(lx.data) && lx.data[lx.pos] == '.' {
		lx.pos++
		if lx.pos >= len(lx.data) || !isDigit(lx.data[lx.pos]) {
			return Token{}, lx.errf(start, "invalid number literal: no digits after decimal point")
		}
		for lx.pos < len(lx.data) && isDigit(lx.data[lx.pos]) {
			lx.pos++
		}
	}
	// Exponent.
	if lx.pos < len(lx.data) && (lx.data[lx.pos] == 'e' || lx.data[lx.pos] == 'E') {
		lx.pos++
		if lx.pos < len(lx.data) && (lx.data[lx.pos] == '+' || lx.data[lx.pos] == '-') {
			lx.pos++
		}
		if lx.pos >= len(lx.data) || !isDigit(lx.data[lx.pos]) {
			return Token{}, lx.errf(start, "invalid number literal: no digits in exponent")
		}
		for lx.pos < len(lx.data) && isDigit(lx.data[lx.pos]) {
			lx.pos++
		}
	}
	return Token{Kind: Number, Text: string(lx.data[start:lx.pos]), Offset: start}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
