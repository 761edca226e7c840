package rules

import (
	"strings"

	"phix/internal/token"
)

// SingleQuote converts double-quoted string literals to single quotes
// when the contents render identically either way: no interpolation
// (those never reach the rule as one literal), no escape sequences and
// no single quotes that would need escaping.
type SingleQuote struct{}

func (SingleQuote) Name() string { return "single-quote" }

func (SingleQuote) Description() string {
	return "use single quotes for strings without interpolation or escapes"
}

func (SingleQuote) Apply(ctx *Context) error {
	s := ctx.Stream
	for i := 0; i < s.Len(); i++ {
		t := s.Get(i)
		if t == nil || !t.IsGivenKind(token.StringLit) {
			continue
		}
		text := t.Text
		if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
			continue
		}
		inner := text[1 : len(text)-1]
		if strings.ContainsAny(inner, `\'`) {
			continue
		}
		t.Text = "'" + inner + "'"
		ctx.Changed(i, "converted double-quoted string to single quotes")
	}
	return nil
}
