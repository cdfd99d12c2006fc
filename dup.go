package jsontree

import "github.com/reoring/jsontree/internal/lexer"

// DetectDuplicateKeys walks one JSON document and reports every object key
// that occurs more than once, one duplicate_key Issue per repetition, with
// the dotted/bracketed path of the offending key. The parser itself keeps the
// last occurrence; this helper exists for callers that want to surface the
// normalization instead of silently accepting it. A lexical or structural
// failure aborts with a *ParseError.
func DetectDuplicateKeys(data []byte) (Issues, error) {
	p := &parser{lx: lexer.New(data), data: data}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var iss Issues
	if err := p.scanDupValue("", &iss); err != nil {
		return nil, err
	}
	if p.tok.Kind != lexer.EOF {
		return nil, p.structuralf(p.tok.Offset, "expected end of input, found %s", p.tok.Kind)
	}
	return iss, nil
}

// scanDupValue mirrors parseValue but builds no tree; it only tracks object
// keys and paths.
func (p *parser) scanDupValue(path string, iss *Issues) *ParseError {
	switch p.tok.Kind {
	case lexer.BeginObject:
		return p.scanDupObject(path, iss)
	case lexer.BeginArray:
		return p.scanDupArray(path, iss)
	case lexer.String, lexer.Number, lexer.True, lexer.False, lexer.Null:
		return p.advance()
	case lexer.EOF:
		return p.structuralf(p.tok.Offset, "expected value, found end of input")
	default:
		return p.structuralf(p.tok.Offset, "expected value, found %s", p.tok.Kind)
	}
}

func (p *parser) scanDupObject(path string, iss *Issues) *ParseError {
	if err := p.advance(); err != nil {
		return err
	}
	seen := map[string]struct{}{}
	if p.tok.Kind == lexer.EndObject {
		return p.advance()
	}
	for {
		if p.tok.Kind != lexer.String {
			return p.structuralf(p.tok.Offset, "expected string key, found %s", p.tok.Kind)
		}
		key := p.tok.Text
		if _, dup := seen[key]; dup {
			*iss = AppendIssues(*iss, Issue{
				Code:    CodeDuplicateKey,
				Path:    JoinPath(path, key),
				Message: "key '" + key + "' duplicated",
			})
		}
		seen[key] = struct{}{}
		if err := p.advance(); err != nil {
			return err
		}
		if p.tok.Kind != lexer.Colon {
			return p.structuralf(p.tok.Offset, "expected ':' after object key, found %s", p.tok.Kind)
		}
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.scanDupValue(JoinPath(path, key), iss); err != nil {
			return err
		}
		switch p.tok.Kind {
		case lexer.Comma:
			if err := p.advance(); err != nil {
				return err
			}
		case lexer.EndObject:
			return p.advance()
		default:
			return p.structuralf(p.tok.Offset, "expected ',' or '}' after object value, found %s", p.tok.Kind)
		}
	}
}

func (p *parser) scanDupArray(path string, iss *Issues) *ParseError {
	if err := p.advance(); err != nil {
		return err
	}
	if p.tok.Kind == lexer.EndArray {
		return p.advance()
	}
	for i := 0; ; i++ {
		if err := p.scanDupValue(JoinIndex(path, i), iss); err != nil {
			return err
		}
		switch p.tok.Kind {
		case lexer.Comma:
			if err := p.advance(); err != nil {
				return err
			}
		case lexer.EndArray:
			return p.advance()
		default:
			return p.structuralf(p.tok.Offset, "expected ',' or ']' after array element, found %s", p.tok.Kind)
		}
	}
}
