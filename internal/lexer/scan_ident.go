package lexer

import (
	"strings"

	"phix/internal/token"
)

// scanIdentOrKeyword сканирует слово и проверяет через LookupKeyword.
// Ключевые слова распознаются без учёта регистра; Token.Text — ровно
// исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	text := lx.textFrom(start)
	if k, ok := token.LookupKeyword(strings.ToLower(text)); ok {
		return token.New(k, text)
	}
	return token.New(token.Ident, text)
}

// scanVariable сканирует '$имя'. Одинокий '$' остаётся голым токеном.
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'

	if !isIdentStartByte(lx.cursor.Peek()) {
		return token.Bare(lx.textFrom(start))
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return token.New(token.Variable, lx.textFrom(start))
}
