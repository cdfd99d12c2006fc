package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "duplicate_key":
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "wrong_length":
			return "長さが一致しません"
		case "empty":
			return "空です"
		case "too_small":
			return "小さすぎます"
		case "too_big":
			return "大きすぎます"
		case "not_multiple":
			return "倍数ではありません"
		case "not_integer":
			return "整数ではありません"
		case "prefix_mismatch":
			return "先頭が一致しません"
		case "suffix_mismatch":
			return "末尾が一致しません"
		case "not_included":
			return "部分文字列を含みません"
		case "unexpected_value":
			return "期待した値ではありません"
		case "no_match":
			return "一致する要素がありません"
		case "index_missing":
			return "インデックスが存在しません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "duplicate_key":
			return "duplicate key"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "wrong_length":
			return "wrong length"
		case "empty":
			return "empty"
		case "too_small":
			return "too small"
		case "too_big":
			return "too big"
		case "not_multiple":
			return "not a multiple"
		case "not_integer":
			return "not an integer"
		case "prefix_mismatch":
			return "does not start with expected prefix"
		case "suffix_mismatch":
			return "does not end with expected suffix"
		case "not_included":
			return "does not include expected substring"
		case "unexpected_value":
			return "unexpected value"
		case "no_match":
			return "no element matches"
		case "index_missing":
			return "index not found"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
