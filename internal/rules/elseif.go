package rules

import (
	"phix/internal/token"
)

// Elseif collapses `else if` into the single `elseif` keyword. The two
// forms compile to the same thing when the else branch is exactly one
// if statement, which is the only shape the rule matches: nothing but
// whitespace between the keywords.
type Elseif struct{}

func (Elseif) Name() string { return "elseif" }

func (Elseif) Description() string {
	return "collapse else if into elseif"
}

func (Elseif) Apply(ctx *Context) error {
	s := ctx.Stream
	for i := 0; i < s.Len(); i++ {
		t := s.Get(i)
		if t == nil || !t.IsGivenKind(token.KwElse) {
			continue
		}
		j, next := s.NextNonWhitespace(i, token.WhitespaceOptions{})
		if next == nil || !next.IsGivenKind(token.KwIf) {
			continue
		}
		t.Kind = token.KwElseif
		t.Text = "elseif"
		next.Clear()
		for k := i + 1; k < j; k++ {
			if gap := s.Get(k); gap != nil {
				gap.Clear()
			}
		}
		ctx.Changed(i, "collapsed else if into elseif")
	}
	return nil
}
