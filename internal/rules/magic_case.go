package rules

import (
	"fmt"
	"sort"

	"phix/internal/token"
)

// MagicCase rewrites magic method names to their canonical casing:
// __CONSTRUCT becomes __construct, __tostring becomes __toString. PHP
// resolves them case-insensitively, so the rewrite never changes what
// the code does.
type MagicCase struct{}

func (MagicCase) Name() string { return "magic-case" }

func (MagicCase) Description() string {
	return "spell magic method names in their canonical casing"
}

func (MagicCase) Apply(ctx *Context) error {
	s := ctx.Stream
	elems := s.ClassyElements()
	indexes := make([]int, 0, len(elems.Methods))
	for i := range elems.Methods {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	for _, i := range indexes {
		j, name := s.NextNonWhitespace(i, token.WhitespaceOptions{})
		if name == nil || !name.IsGivenKind(token.Ident) {
			continue
		}
		canon, ok := token.MagicMethodSpelling(name.Text)
		if !ok || name.Text == canon {
			continue
		}
		old := name.Text
		name.Text = canon
		ctx.Changed(j, fmt.Sprintf("renamed %s() to %s()", old, canon))
	}
	return nil
}
