package i18n_test

import (
	"testing"

	"github.com/reoring/yamlrec/i18n"
)

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string {
	return "CODE:" + code
}

func TestT_DefaultEnglish(t *testing.T) {
	if got := i18n.T("required", nil); got != "required field missing" {
		t.Fatalf("T(required) = %q", got)
	}
	// unknown codes fall back to the code itself
	if got := i18n.T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("T(no_such_code) = %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("unknown_key", nil); got != "未知のキーです" {
		t.Fatalf("T(unknown_key) = %q", got)
	}
}

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("invalid_type", nil); got != "CODE:invalid_type" {
		t.Fatalf("T(invalid_type) = %q", got)
	}
}
