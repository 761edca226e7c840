package stream

import "phix/internal/token"

// Elements holds what a class body scan found, keyed by stream index.
type Elements struct {
	Methods    map[int]*token.Token
	Properties map[int]*token.Token
}

// ClassyElements walks the stream once and collects the member
// declarations of class-like bodies: properties (a Variable directly
// inside the body, outside any parentheses) and methods (a function
// keyword directly inside the body, at any paren depth).
//
// Nesting is tracked with single counters, not a stack of class
// contexts, so a class opened inside another class body contributes
// nothing: its members sit at curly depth two or deeper and are passed
// over. Interpolation openers count as curly opens because the bare '}'
// closing them decrements the same counter.
func (s *Stream) ClassyElements() Elements {
	elems := Elements{
		Methods:    make(map[int]*token.Token),
		Properties: make(map[int]*token.Token),
	}

	inClass := false
	curlyDepth := 0
	parenDepth := 0

	for i := range s.toks {
		t := &s.toks[i]

		if !inClass {
			if t.IsClassy() {
				inClass = true
			}
			continue
		}

		switch {
		case t.Text == "(":
			parenDepth++
		case t.Text == ")":
			parenDepth--
		case t.Text == "{" || t.IsGivenKind(token.CurlyOpenInterp, token.DollarCurlyOpen):
			curlyDepth++
		case t.Text == "}":
			curlyDepth--
			if curlyDepth == 0 {
				inClass = false
			}
		case curlyDepth != 1 || !t.IsCategorized():
			// вложенный блок или голый токен — не кандидат
		case t.Kind == token.Variable && parenDepth == 0:
			elems.Properties[i] = t
		case t.Kind == token.KwFunction:
			elems.Methods[i] = t
		}
	}

	return elems
}
