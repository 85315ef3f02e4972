package i18n

import "github.com/reoring/assetskema/internal/tmpl"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "limit" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Entries are
// templates; {name} tags are filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":        "expected {expected}",
		"required":            "required property missing",
		"unknown_key":         "unknown key {key}",
		"duplicate_key":       "duplicate key {key}",
		"too_small":           "must be greater than or equal to {limit}",
		"too_small_exclusive": "must be greater than {limit}",
		"too_big":             "must be less than or equal to {limit}",
		"too_big_exclusive":   "must be less than {limit}",
		"too_short":           "must contain at least {limit} items",
		"too_long":            "must contain at most {limit} items",
		"too_short_string":    "must be at least {limit} characters",
		"too_long_string":     "must be at most {limit} characters",
		"invalid_enum":        "must be one of {expected}",
		"invalid_literal":     "must be {expected}",
		"parse_error":         "parse error",
		"truncated":           "truncated",
	},
	"ja": {
		"invalid_type":        "型が不正です ({expected} が必要です)",
		"required":            "必須プロパティが不足しています",
		"unknown_key":         "未知のキーです: {key}",
		"duplicate_key":       "キーが重複しています: {key}",
		"too_small":           "{limit} 以上である必要があります",
		"too_small_exclusive": "{limit} より大きい必要があります",
		"too_big":             "{limit} 以下である必要があります",
		"too_big_exclusive":   "{limit} 未満である必要があります",
		"too_short":           "{limit} 個以上の要素が必要です",
		"too_long":            "要素は {limit} 個までです",
		"too_short_string":    "{limit} 文字以上である必要があります",
		"too_long_string":     "{limit} 文字以下である必要があります",
		"invalid_enum":        "{expected} のいずれかである必要があります",
		"invalid_literal":     "{expected} である必要があります",
		"parse_error":         "解析エラー",
		"truncated":           "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	if tpl, ok := dictionaries[t.lang][code]; ok {
		return tmpl.Render(tpl, data)
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
