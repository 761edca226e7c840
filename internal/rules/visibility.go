package rules

import (
	"fmt"
	"sort"
	"strings"

	"phix/internal/stream"
	"phix/internal/token"
)

// Visibility makes visibility explicit on class methods and properties
// and puts declaration modifiers into canonical order: abstract, final,
// visibility, static. Legacy `var` declarations become `public`.
type Visibility struct{}

func (Visibility) Name() string { return "visibility" }

func (Visibility) Description() string {
	return "make visibility explicit and order declaration modifiers canonically"
}

func (Visibility) Apply(ctx *Context) error {
	elems := ctx.Stream.ClassyElements()
	for _, i := range descending(elems.Methods) {
		fixDeclaration(ctx, i, methodModifierKinds, ctx.Stream.GrabAttribsBeforeMethodToken, describeMethod)
	}
	for _, i := range descending(elems.Properties) {
		fixDeclaration(ctx, i, propertyModifierKinds, ctx.Stream.GrabAttribsBeforePropertyToken, describeProperty)
	}
	return nil
}

var methodModifierKinds = []token.Kind{
	token.KwPublic, token.KwProtected, token.KwPrivate,
	token.KwAbstract, token.KwFinal, token.KwStatic,
}

var propertyModifierKinds = []token.Kind{
	token.KwPublic, token.KwProtected, token.KwPrivate,
	token.KwStatic, token.KwVar,
}

// fixDeclaration пересаживает модификаторы перед index и репортит
// только правки, изменившие текст: пересадка уже канонической записи
// воспроизводит её байт в байт.
func fixDeclaration(ctx *Context, index int, modifiers []token.Kind, grab func(int) stream.Attribs, describe func(*stream.Stream, int) string) {
	s := ctx.Stream
	lo := modifierRegionStart(s, index, modifiers)
	before := regionText(s, lo, index)
	attribs := grab(index)
	s.ApplyAttribs(index, attribs)
	if regionText(s, lo, index) != before {
		ctx.Changed(index, fmt.Sprintf("normalized modifiers of %s", describe(s, index)))
	}
}

// modifierRegionStart повторяет обратный проход граббера без правок и
// возвращает нижнюю границу области, которую пересадка может задеть.
func modifierRegionStart(s *stream.Stream, index int, modifiers []token.Kind) int {
	lo := index
	for i := index - 1; i >= 0; i-- {
		t := s.Get(i)
		if t == nil {
			break
		}
		if !t.IsCategorized() {
			if isStructuralText(t.Text) {
				break
			}
			lo = i
			continue
		}
		if t.IsGivenKind(modifiers...) || t.IsGivenKind(token.Whitespace) || t.IsComment() {
			lo = i
			continue
		}
		break
	}
	return lo
}

func isStructuralText(text string) bool {
	switch text {
	case "{", "}", "(", ")":
		return true
	}
	return false
}

func regionText(s *stream.Stream, lo, hi int) string {
	var sb strings.Builder
	for i := lo; i <= hi; i++ {
		if t := s.Get(i); t != nil {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}

func describeMethod(s *stream.Stream, index int) string {
	if _, name := s.NextNonWhitespace(index, token.WhitespaceOptions{}); name != nil && name.IsGivenKind(token.Ident) {
		return fmt.Sprintf("method %s()", name.Text)
	}
	return "method"
}

func describeProperty(s *stream.Stream, index int) string {
	if t := s.Get(index); t != nil {
		return "property " + t.Text
	}
	return "property"
}

func descending(m map[int]*token.Token) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	return keys
}
