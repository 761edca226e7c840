package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"fortio.org/safecast"

	"phix/internal/source"
	"phix/internal/token"
)

type TokenOutput struct {
	Kind      string `json:"kind"`
	Text      string `json:"text,omitempty"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
}

// смещение токена восстанавливается по месту: конкатенация Text равна
// содержимому файла, поэтому позиции - это бегущая сумма длин
func tokenSpans(tokens []token.Token, file source.FileID) ([]source.Span, error) {
	spans := make([]source.Span, len(tokens))
	off := uint32(0)
	for i, tok := range tokens {
		length, err := safecast.Conv[uint32](len(tok.Text))
		if err != nil {
			return nil, fmt.Errorf("token %d text overflow: %w", i, err)
		}
		spans[i] = source.Span{File: file, Start: off, End: off + length}
		off += length
	}
	return spans, nil
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
// номер, вид, текст и позиция начала-конца. Колонка текста выравнивается
// по экранной ширине, чтобы CJK и прочие широкие символы не ломали таблицу.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, file source.FileID) error {
	spans, err := tokenSpans(tokens, file)
	if err != nil {
		return err
	}

	kindWidth, textWidth := 0, 0
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		if kw := len(tok.Kind.String()); kw > kindWidth {
			kindWidth = kw
		}
		quoted[i] = fmt.Sprintf("%q", tok.Text)
		if tw := runewidth.StringWidth(quoted[i]); tw > textWidth && tw <= 40 {
			textWidth = tw
		}
	}

	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(spans[i])
		fmt.Fprintf(w, "%4d: %-*s %s at %d:%d-%d:%d\n",
			i+1,
			kindWidth, tok.Kind.String(),
			runewidth.FillRight(quoted[i], textWidth),
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, file source.FileID) error {
	spans, err := tokenSpans(tokens, file)
	if err != nil {
		return err
	}

	output := make([]TokenOutput, len(tokens))
	for i, tok := range tokens {
		output[i] = TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			StartByte: spans[i].Start,
			EndByte:   spans[i].End,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
