package stream

import (
	"strings"

	"phix/internal/token"
)

// ApplyAttribs renders attribs in list order in front of the token at
// index: non-empty values joined by single spaces plus one trailing
// space, prepended to the token's existing text. When every value is
// empty nothing changes. Out-of-range indices are ignored.
func (s *Stream) ApplyAttribs(index int, attribs Attribs) {
	t := s.Get(index)
	if t == nil {
		return
	}

	parts := make([]string, 0, len(attribs))
	for _, a := range attribs {
		if a.Value != "" {
			parts = append(parts, a.Value)
		}
	}
	if len(parts) == 0 {
		return
	}
	t.Text = strings.Join(parts, " ") + " " + t.Text
}

// RemoveTrailingWhitespace clears the whitespace token right after
// index, if that is what lives there.
func (s *Stream) RemoveTrailingWhitespace(index int) {
	if t := s.Get(index + 1); t != nil && t.IsWhitespace(token.WhitespaceOptions{}) {
		t.Clear()
	}
}

// RemoveLeadingWhitespace clears the whitespace token right before
// index, if that is what lives there.
func (s *Stream) RemoveLeadingWhitespace(index int) {
	if t := s.Get(index - 1); t != nil && t.IsWhitespace(token.WhitespaceOptions{}) {
		t.Clear()
	}
}
