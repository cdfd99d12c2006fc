package lexer_test

import (
	"strings"
	"testing"

	"github.com/reoring/jsontree/internal/lexer"
)

func scanAll(t *testing.T, in string) []lexer.Token {
	t.Helper()
	lx := lexer.New([]byte(in))
	var toks []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next(%q): %v", in, err)
		}
		toks = append(toks, tok)
		if tok.Kind == lexer.EOF {
			return toks
		}
	}
}

func TestTokenStream(t *testing.T) {
	toks := scanAll(t, ` { "a" : [ 1 , true , null ] } `)
	kinds := []lexer.Kind{
		lexer.BeginObject, lexer.String, lexer.Colon, lexer.BeginArray,
		lexer.Number, lexer.Comma, lexer.True, lexer.Comma, lexer.Null,
		lexer.EndArray, lexer.EndObject, lexer.EOF,
	}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(kinds))
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d kind=%v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[1].Text != "a" || toks[4].Text != "1" {
		t.Fatalf("texts: %q, %q", toks[1].Text, toks[4].Text)
	}
}

func TestTokenOffsets(t *testing.T) {
	toks := scanAll(t, `  {"k":1}`)
	if toks[0].Offset != 2 {
		t.Fatalf("'{' offset=%d, want 2", toks[0].Offset)
	}
	if toks[1].Offset != 3 {
		t.Fatalf("string offset=%d, want 3", toks[1].Offset)
	}
	if toks[3].Offset != 7 {
		t.Fatalf("number offset=%d, want 7", toks[3].Offset)
	}
}

func TestStringDecoding(t *testing.T) {
	cases := []struct{ in, want string }{
		{`"plain"`, "plain"},
		{`"a\tb\nc"`, "a\tb\nc"},
		{`"\"\\\/"`, `"\/`},
		{`"A"`, "A"},
		{`"é"`, "é"},
		{`"😀"`, "😀"},
		{`"raw é 漢"`, "raw é 漢"},
		{`""`, ""},
	}
	for _, tc := range cases {
		lx := lexer.New([]byte(tc.in))
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next(%s): %v", tc.in, err)
		}
		if tok.Kind != lexer.String || tok.Text != tc.want {
			t.Fatalf("Next(%s)=%q, want %q", tc.in, tok.Text, tc.want)
		}
	}
}

func TestStringErrors(t *testing.T) {
	cases := []struct{ in, msg string }{
		{`"abc`, "unterminated"},
		{`"\x"`, "invalid escape"},
		{`"\u12g4"`, "not a hex digit"},
		{`"\u12"`, "incomplete"},
		{`"\ud83d"`, "unpaired surrogate"},
		{`"\ud83d\ud83d"`, "invalid surrogate pair"},
		{"\"a\x01\"", "control character"},
	}
	for _, tc := range cases {
		lx := lexer.New([]byte(tc.in))
		_, err := lx.Next()
		if err == nil {
			t.Fatalf("Next(%q) succeeded, want error", tc.in)
		}
		if !strings.Contains(err.Msg, tc.msg) {
			t.Fatalf("Next(%q) msg=%q, want substring %q", tc.in, err.Msg, tc.msg)
		}
	}
}

func TestNumberGrammar(t *testing.T) {
	accept := []string{"0", "-0", "7", "30", "0.5", "-12.75", "1e10", "1E+2", "1.0e-3", "123456789"}
	for _, in := range accept {
		lx := lexer.New([]byte(in))
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next(%q): %v", in, err)
		}
		if tok.Kind != lexer.Number || tok.Text != in {
			t.Fatalf("Next(%q) = %v %q", in, tok.Kind, tok.Text)
		}
	}

	reject := []struct{ in, msg string }{
		{"01", "leading zero"},
		{"-01", "leading zero"},
		{"1.", "no digits after decimal point"},
		{"-", "missing digits"},
		{"1e", "no digits in exponent"},
		{"1e+", "no digits in exponent"},
	}
	for _, tc := range reject {
		lx := lexer.New([]byte(tc.in))
		_, err := lx.Next()
		if err == nil {
			t.Fatalf("Next(%q) succeeded, want error", tc.in)
		}
		if !strings.Contains(err.Msg, tc.msg) {
			t.Fatalf("Next(%q) msg=%q, want substring %q", tc.in, err.Msg, tc.msg)
		}
	}
}

func TestKeywords(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind lexer.Kind
	}{{"true", lexer.True}, {"false", lexer.False}, {"null", lexer.Null}} {
		lx := lexer.New([]byte(tc.in))
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next(%q): %v", tc.in, err)
		}
		if tok.Kind != tc.kind {
			t.Fatalf("Next(%q) kind=%v", tc.in, tok.Kind)
		}
	}
	for _, in := range []string{"nullx", "truth", "fals", "None"} {
		lx := lexer.New([]byte(in))
		if _, err := lx.Next(); err == nil {
			t.Fatalf("Next(%q) succeeded, want error", in)
		}
	}
}

func TestUnexpectedByte(t *testing.T) {
	for _, in := range []string{"@", "+1", ".5", "'s'"} {
		lx := lexer.New([]byte(in))
		if _, err := lx.Next(); err == nil {
			t.Fatalf("Next(%q) succeeded, want error", in)
		}
	}
}
