package token

import "strings"

// WhitespaceOptions adjusts what counts as whitespace for predicates
// and sibling scans.
type WhitespaceOptions struct {
	// ExcludeLineBreaks treats whitespace containing a newline as
	// significant, so it does not count as whitespace.
	ExcludeLineBreaks bool
}

// Token is one element of a stream: a lexical category plus the exact
// source text it covers. Text is mutable; rewrite rules edit it in
// place. The zero value is an erased slot: bare kind, empty text.
type Token struct {
	Kind Kind
	Text string
}

// New constructs a categorized token.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Bare constructs an uncategorized token carrying only text.
func Bare(text string) Token {
	return Token{Kind: None, Text: text}
}

// IsCategorized reports whether the token carries a lexical category.
// Operators, punctuation, and erased slots do not.
func (t *Token) IsCategorized() bool { return t.Kind != None }

// IsGivenKind reports whether the token is categorized as any of
// kinds. Always false for bare tokens, even if None is listed.
func (t *Token) IsGivenKind(kinds ...Kind) bool {
	if t.Kind == None {
		return false
	}
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsWhitespace reports whether the token is insignificant whitespace
// under opts.
func (t *Token) IsWhitespace(opts WhitespaceOptions) bool {
	if t.Kind != Whitespace {
		return false
	}
	if opts.ExcludeLineBreaks && strings.ContainsAny(t.Text, "\r\n") {
		return false
	}
	return true
}

// IsComment reports whether the token is a comment of either flavor.
func (t *Token) IsComment() bool {
	return t.Kind == Comment || t.Kind == DocComment
}

// IsClassy reports whether the token opens a class-like declaration.
func (t *Token) IsClassy() bool {
	switch t.Kind {
	case KwClass, KwInterface, KwTrait:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t *Token) IsKeyword() bool {
	return t.Kind >= KwAbstract && t.Kind <= KwWhile
}

// Clear erases the token in place: bare kind, empty text. The slot
// stays in its stream so neighbor indices are unaffected. Idempotent.
func (t *Token) Clear() {
	t.Kind = None
	t.Text = ""
}

// IsErased reports whether the token is an erased slot.
func (t *Token) IsErased() bool { return t.Kind == None && t.Text == "" }
