package stream

import "phix/internal/token"

// Направления сканирования для SiblingOfKind и NonWhitespaceSibling.
const (
	Forward  = 1
	Backward = -1
)

// SiblingOfKind walks from the slot one step past index in direction
// dir (+1 or -1) and returns the first token matching any of pats,
// together with its index. Running off either end of the stream yields
// (-1, nil), the defined absent result; a dir other than +1/-1 yields
// the same.
func (s *Stream) SiblingOfKind(index, dir int, pats ...Pattern) (int, *token.Token) {
	if dir != Forward && dir != Backward {
		return -1, nil
	}
	for i := index + dir; i >= 0 && i < len(s.toks); i += dir {
		if s.Match(i, pats...) {
			return i, &s.toks[i]
		}
	}
	return -1, nil
}

// NextOfKind scans forward from index.
func (s *Stream) NextOfKind(index int, pats ...Pattern) (int, *token.Token) {
	return s.SiblingOfKind(index, Forward, pats...)
}

// PrevOfKind scans backward from index.
func (s *Stream) PrevOfKind(index int, pats ...Pattern) (int, *token.Token) {
	return s.SiblingOfKind(index, Backward, pats...)
}

// NonWhitespaceSibling is the same walk with the predicate "not
// whitespace under opts" in place of a pattern list.
func (s *Stream) NonWhitespaceSibling(index, dir int, opts token.WhitespaceOptions) (int, *token.Token) {
	if dir != Forward && dir != Backward {
		return -1, nil
	}
	for i := index + dir; i >= 0 && i < len(s.toks); i += dir {
		if !s.toks[i].IsWhitespace(opts) {
			return i, &s.toks[i]
		}
	}
	return -1, nil
}

// NextNonWhitespace scans forward from index.
func (s *Stream) NextNonWhitespace(index int, opts token.WhitespaceOptions) (int, *token.Token) {
	return s.NonWhitespaceSibling(index, Forward, opts)
}

// PrevNonWhitespace scans backward from index.
func (s *Stream) PrevNonWhitespace(index int, opts token.WhitespaceOptions) (int, *token.Token) {
	return s.NonWhitespaceSibling(index, Backward, opts)
}
