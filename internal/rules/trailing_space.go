package rules

import (
	"strings"

	"phix/internal/stream"
	"phix/internal/token"
)

// TrailingSpace removes spaces and tabs sitting between the last
// visible character of a line and the line break, plus blank trailing
// whitespace at the very end of the file.
type TrailingSpace struct{}

func (TrailingSpace) Name() string { return "trailing-space" }

func (TrailingSpace) Description() string {
	return "strip whitespace from line ends"
}

func (TrailingSpace) Apply(ctx *Context) error {
	s := ctx.Stream
	last := lastLiveIndex(s)
	for i := 0; i < s.Len(); i++ {
		t := s.Get(i)
		if t == nil || !t.IsGivenKind(token.Whitespace) {
			continue
		}
		stripped := stripLineTrails(t.Text, i == last)
		if stripped == t.Text {
			continue
		}
		if stripped == "" {
			t.Clear()
		} else {
			t.Text = stripped
		}
		ctx.Changed(i, "removed trailing whitespace")
	}
	return nil
}

// stripLineTrails убирает пробелы и табы непосредственно перед каждым
// переводом строки. Хвост без перевода строки остаётся: это отступ
// следующего токена, кроме случая конца файла.
func stripLineTrails(text string, atEOF bool) string {
	var sb strings.Builder
	sb.Grow(len(text))
	runStart := -1
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b == ' ' || b == '\t' {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		runStart = -1
		sb.WriteByte(b)
	}
	if runStart >= 0 && !atEOF {
		sb.WriteString(text[runStart:])
	}
	return sb.String()
}

// lastLiveIndex возвращает индекс последнего неубранного токена.
func lastLiveIndex(s *stream.Stream) int {
	for i := s.Len() - 1; i >= 0; i-- {
		if t := s.Get(i); t != nil && !t.IsErased() {
			return i
		}
	}
	return -1
}
