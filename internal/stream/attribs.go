package stream

import "phix/internal/token"

// Attrib is one name/value pair of a declaration modifier.
type Attrib struct {
	Name  string
	Value string
}

// Attribs is an ordered modifier list. Order matters: ApplyAttribs
// renders values in list order, so the defaults of the canned grabs fix
// the canonical modifier layout and discovered values only fill them
// in. An empty value means the modifier is absent.
type Attribs []Attrib

// Get returns the value recorded under name, "" when absent.
func (a Attribs) Get(name string) string {
	for i := range a {
		if a[i].Name == name {
			return a[i].Value
		}
	}
	return ""
}

// Set updates name in place, keeping its position; unknown names are
// appended.
func (a *Attribs) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attrib{Name: name, Value: value})
}

// Clone returns an independent copy, so canned defaults stay pristine.
func (a Attribs) Clone() Attribs {
	out := make(Attribs, len(a))
	copy(out, a)
	return out
}

// Структурные границы, на которых обратный проход останавливается.
func isStructuralBoundary(text string) bool {
	switch text {
	case "{", "}", "(", ")":
		return true
	}
	return false
}

// GrabAttribsBeforeToken scans backward from index-1 collecting the
// declaration's modifiers. A modifier token (a key of kindToAttrib) is
// recorded under its attribute name and erased together with the
// separator token following it; whitespace and comments are walked
// through; a bare { } ( ) or any other categorized token stops the
// scan. Mapping a kind to "" consumes the modifier without recording
// it (the legacy var keyword). The result is defaults with discovered
// values filled in.
func (s *Stream) GrabAttribsBeforeToken(index int, kindToAttrib map[token.Kind]string, defaults Attribs) Attribs {
	attribs := defaults.Clone()

	for i := index - 1; i >= 0 && i < len(s.toks); i-- {
		t := &s.toks[i]

		if !t.IsCategorized() {
			if isStructuralBoundary(t.Text) {
				break
			}
			continue
		}

		if name, ok := kindToAttrib[t.Kind]; ok {
			if name != "" {
				attribs.Set(name, t.Text)
			}
			// модификатор и разделитель за ним уходят из потока
			t.Clear()
			if next := s.Get(i + 1); next != nil {
				next.Clear()
			}
			continue
		}

		if t.Kind == token.Whitespace || t.IsComment() {
			continue
		}

		break
	}

	return attribs
}

// methodAttribKinds maps the modifier keywords legal before a function
// keyword to the attribute slot each one fills.
var methodAttribKinds = map[token.Kind]string{
	token.KwPrivate:   "visibility",
	token.KwProtected: "visibility",
	token.KwPublic:    "visibility",
	token.KwAbstract:  "abstract",
	token.KwFinal:     "final",
	token.KwStatic:    "static",
}

// propertyAttribKinds maps the modifier keywords legal before a
// property variable. KwVar maps to "": the legacy keyword is consumed
// and destroyed without landing in an attribute.
var propertyAttribKinds = map[token.Kind]string{
	token.KwVar:       "",
	token.KwPrivate:   "visibility",
	token.KwProtected: "visibility",
	token.KwPublic:    "visibility",
	token.KwStatic:    "static",
}

// GrabAttribsBeforeMethodToken collects the modifiers preceding the
// function keyword at index. Modifiers not present in the source come
// back as their defaults: abstract "", final "", visibility "public",
// static "".
func (s *Stream) GrabAttribsBeforeMethodToken(index int) Attribs {
	return s.GrabAttribsBeforeToken(index, methodAttribKinds, Attribs{
		{Name: "abstract"},
		{Name: "final"},
		{Name: "visibility", Value: "public"},
		{Name: "static"},
	})
}

// GrabAttribsBeforePropertyToken collects the modifiers preceding the
// property variable at index. Defaults: visibility "public", static "".
func (s *Stream) GrabAttribsBeforePropertyToken(index int) Attribs {
	return s.GrabAttribsBeforeToken(index, propertyAttribKinds, Attribs{
		{Name: "visibility", Value: "public"},
		{Name: "static"},
	})
}
