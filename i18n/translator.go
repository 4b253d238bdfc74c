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
			return "必須フィールドが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "unsupported_type":
			return "サポートされない型です"
		case "not_an_option":
			return "許可された値ではありません"
		case "usage_error":
			return "呼び出し方法が不正です"
		case "untyped_container":
			return "型パラメータのないコンテナです"
		case "invalid_map_key":
			return "マップキーの型が不正です"
		case "invalid_default":
			return "デフォルト値が不正です"
		case "default_not_in_options":
			return "デフォルト値が選択肢に含まれていません"
		case "max_depth":
			return "ネストが深すぎます"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required field missing"
		case "unknown_key":
			return "unknown key"
		case "unsupported_type":
			return "unsupported type"
		case "not_an_option":
			return "value is not an option"
		case "usage_error":
			return "invalid usage"
		case "untyped_container":
			return "untyped container"
		case "invalid_map_key":
			return "invalid map key"
		case "invalid_default":
			return "invalid default"
		case "default_not_in_options":
			return "default is not an option"
		case "max_depth":
			return "max depth exceeded"
		case "parse_error":
			return "parse error"
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
