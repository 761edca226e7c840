package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"class":     KwClass,
		"interface": KwInterface,
		"trait":     KwTrait,
		"function":  KwFunction,
		"public":    KwPublic,
		"protected": KwProtected,
		"private":   KwPrivate,
		"static":    KwStatic,
		"abstract":  KwAbstract,
		"final":     KwFinal,
		"var":       KwVar,
		"elseif":    KwElseif,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Таблица хранит только lowercase — понижение делает лексер
	notKw := []string{
		"Class", "FUNCTION", "Public",
		"string", "int", "array", // имена типов — Ident
		"identifier", "classname",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
