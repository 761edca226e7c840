package testkit

import (
	"fmt"
	"strings"

	"phix/internal/stream"
	"phix/internal/token"
)

// CheckCoverage verifies the lexer's byte-coverage contract: the
// concatenation of token texts reproduces the input exactly, with no
// gaps and no invented bytes.
func CheckCoverage(src []byte, toks []token.Token) error {
	off := 0
	for i, t := range toks {
		if t.Kind == token.EOF {
			return fmt.Errorf("token %d: EOF leaked into the token list", i)
		}
		end := off + len(t.Text)
		if end > len(src) {
			return fmt.Errorf("token %d (%s) overruns input: %d > %d", i, t.Kind, end, len(src))
		}
		if string(src[off:end]) != t.Text {
			return fmt.Errorf("token %d (%s) text %q diverges from input at offset %d", i, t.Kind, t.Text, off)
		}
		off = end
	}
	if off != len(src) {
		return fmt.Errorf("tokens cover %d of %d input bytes", off, len(src))
	}
	return nil
}

// CheckStreamInvariants runs structural sanity checks over a stream:
// 1) every slot within Len is addressable
// 2) an emptied slot is fully erased: empty text only goes with the bare kind
// 3) origins never move backwards
// 4) Render equals the concatenation of slot texts
func CheckStreamInvariants(s *stream.Stream) error {
	if s == nil {
		return fmt.Errorf("nil stream")
	}

	var sb strings.Builder
	lastOrigin := uint32(0)
	for i := 0; i < s.Len(); i++ {
		t := s.Get(i)
		if t == nil {
			return fmt.Errorf("slot %d: nil token inside Len range", i)
		}
		if t.Text == "" && t.Kind != token.None {
			return fmt.Errorf("slot %d: empty text with kind %s, expected a cleared slot", i, t.Kind)
		}
		sb.WriteString(t.Text)

		origin := s.Origin(i)
		if origin < lastOrigin {
			return fmt.Errorf("slot %d: origin %d goes backwards after %d", i, origin, lastOrigin)
		}
		lastOrigin = origin
	}

	if rendered := s.Render(); rendered != sb.String() {
		return fmt.Errorf("render diverges from slot texts: %d bytes vs %d", len(rendered), sb.Len())
	}
	return nil
}
