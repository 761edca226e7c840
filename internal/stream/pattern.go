package stream

import "phix/internal/token"

// Pattern is one shape a token can be matched against. The three
// constructors fix which fields take part in the comparison. A bare
// pattern never matches a categorized token and a kind pattern never
// matches a bare one; a shape mismatch is simply false.
type Pattern struct {
	bare    bool
	kind    token.Kind
	text    string
	hasText bool
}

// Bare matches an uncategorized token whose text is exactly text.
// Bare("") matches erased slots.
func Bare(text string) Pattern {
	return Pattern{bare: true, text: text, hasText: true}
}

// OfKind matches any categorized token of kind k, whatever its text.
func OfKind(k token.Kind) Pattern {
	return Pattern{kind: k}
}

// Exact matches a categorized token of kind k carrying exactly text.
func Exact(k token.Kind, text string) Pattern {
	return Pattern{kind: k, text: text, hasText: true}
}

// Matches reports whether t fits the pattern. Nil never matches.
func (p Pattern) Matches(t *token.Token) bool {
	if t == nil {
		return false
	}
	if p.bare {
		return t.Kind == token.None && t.Text == p.text
	}
	if t.Kind == token.None || t.Kind != p.kind {
		return false
	}
	return !p.hasText || t.Text == p.text
}

// Match reports whether the token at index i matches any of pats.
// Out-of-range indices match nothing.
func (s *Stream) Match(i int, pats ...Pattern) bool {
	t := s.Get(i)
	if t == nil {
		return false
	}
	for _, p := range pats {
		if p.Matches(t) {
			return true
		}
	}
	return false
}
