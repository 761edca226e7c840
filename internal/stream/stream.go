package stream

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"fortio.org/safecast"

	"phix/internal/token"
)

// Tokenizer turns raw source bytes into the flat token sequence a
// Stream is built from. Implementations must cover every input byte:
// concatenating the texts of the returned tokens reproduces src
// exactly. internal/lexer supplies the PHP implementation.
type Tokenizer interface {
	Tokenize(src []byte) ([]token.Token, error)
}

// Stream owns a fixed-length sequence of tokens addressed by position.
// The backing slice never grows or shrinks after construction: editing
// happens strictly in place, so indices and *Token pointers handed out
// by Get stay valid for the stream's lifetime.
type Stream struct {
	toks []token.Token

	// origins[i] — байтовое смещение токена i в исходнике на момент
	// построения. Заполняется только в FromSource; после мутаций это
	// ориентир для диагностик, а не актуальная позиция.
	origins []uint32
}

// New builds a stream over toks. The slice is owned by the stream from
// here on; callers must not retain it.
func New(toks []token.Token) *Stream {
	return &Stream{toks: toks}
}

// FromIndexed builds a stream from an index-keyed token map. With
// preserveIndexes, keys become stream positions: the length is the
// largest key plus one and unoccupied slots hold erased tokens.
// Without it, values are packed contiguously in ascending key order.
// Negative keys are ignored.
func FromIndexed(toks map[int]token.Token, preserveIndexes bool) *Stream {
	keys := make([]int, 0, len(toks))
	for k := range toks {
		if k < 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if len(keys) == 0 {
		return &Stream{}
	}

	if !preserveIndexes {
		packed := make([]token.Token, 0, len(keys))
		for _, k := range keys {
			packed = append(packed, toks[k])
		}
		return &Stream{toks: packed}
	}

	out := make([]token.Token, keys[len(keys)-1]+1)
	for _, k := range keys {
		out[k] = toks[k]
	}
	return &Stream{toks: out}
}

// FromSource tokenizes src through tz and builds the stream, recording
// the construction-time byte offset of every token. With no subsequent
// mutation, Render gives back src byte for byte.
func FromSource(tz Tokenizer, src []byte) (*Stream, error) {
	toks, err := tz.Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("tokenize source: %w", err)
	}

	s := New(toks)
	s.origins = make([]uint32, len(toks))
	off := uint32(0)
	for i := range toks {
		s.origins[i] = off
		n, err := safecast.Conv[uint32](len(toks[i].Text))
		if err != nil {
			return nil, fmt.Errorf("token length overflow: %w", err)
		}
		off += n
	}
	return s, nil
}

// Len returns the number of slots in the stream, erased ones included.
func (s *Stream) Len() int { return len(s.toks) }

// Get returns the token at index i, nil when i is out of range. The
// pointer aliases stream storage: writing through it edits the stream.
func (s *Stream) Get(i int) *token.Token {
	if i < 0 || i >= len(s.toks) {
		return nil
	}
	return &s.toks[i]
}

// Set replaces the token at index i in place. Out-of-range indices are
// rejected: the stream stays untouched and false comes back.
func (s *Stream) Set(i int, tok token.Token) bool {
	if i < 0 || i >= len(s.toks) {
		return false
	}
	s.toks[i] = tok
	return true
}

// Origin reports the byte offset token i started at when the stream was
// built by FromSource. Zero for other constructions and out-of-range
// indices. Mutations do not move origins.
func (s *Stream) Origin(i int) uint32 {
	if i < 0 || i >= len(s.origins) {
		return 0
	}
	return s.origins[i]
}

// Render concatenates every token's text in index order: the current
// program text of the stream.
func (s *Stream) Render() string {
	var sb strings.Builder
	for i := range s.toks {
		sb.WriteString(s.toks[i].Text)
	}
	return sb.String()
}

// RenderTo streams the same concatenation into w.
func (s *Stream) RenderTo(w io.Writer) error {
	for i := range s.toks {
		if _, err := io.WriteString(w, s.toks[i].Text); err != nil {
			return fmt.Errorf("render stream: %w", err)
		}
	}
	return nil
}
