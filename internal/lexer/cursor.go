package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"phix/internal/source"
)

// Cursor — байтовый курсор по содержимому файла. Лексер работает строго
// по байтам: многобайтовые руны встречаются только внутри
// идентификаторов и строк, и там хватает проверки старшего бита.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32 // эксклюзивная граница чтения, ставится в NewCursor
}

// NewCursor ставит курсор на начало файла.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file too large for cursor: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

// EOF — достигнут ли конец файла.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek возвращает текущий байт, за границей файла — 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt возвращает байт на расстоянии n от курсора, не двигая его.
// За границей файла — 0.
func (c *Cursor) PeekAt(n uint32) byte {
	off := c.Off + n
	if off >= c.Limit {
		return 0
	}
	return c.File.Content[off]
}

// Peek2 возвращает пару байтов от курсора; ok=false у края файла.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Peek3 возвращает тройку байтов от курсора; ok=false у края файла.
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if c.Off+2 >= c.Limit {
		return 0, 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], c.File.Content[c.Off+2], true
}

// Bump съедает текущий байт и возвращает его, за границей файла — 0.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat съедает следующий байт, только если он равен b.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.File.Content[c.Off] != b {
		return false
	}
	c.Off++
	return true
}

// Mark — сохранённая позиция курсора для SpanFrom и Reset.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom строит Span от метки до текущей позиции.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset откатывает курсор к метке.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
