package lexer

import (
	"strings"

	"phix/internal/diag"
	"phix/internal/token"
)

// scanLineComment лексит '// ...' и '# ...'. Комментарий заканчивается
// перед переводом строки или перед '?>': PHP закрывает однострочный
// комментарий закрывающим тегом.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		if b == '?' && lx.cursor.PeekAt(1) == '>' {
			break
		}
		lx.cursor.Bump()
	}
	return token.New(token.Comment, lx.textFrom(start))
}

// scanBlockComment лексит '/* ... */'. Вложенности нет: первый '*/'
// закрывает. Комментарий, открытый '/**' и несущий хоть один байт тела,
// считается докблоком ('/**/' — обычный комментарий).
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'

	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		lx.cursor.Bump()
	}

	if !closed {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}

	text := lx.textFrom(start)
	kind := token.Comment
	if strings.HasPrefix(text, "/**") && len(text) > 4 {
		kind = token.DocComment
	}
	return token.New(kind, text)
}
