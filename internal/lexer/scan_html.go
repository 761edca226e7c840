package lexer

import (
	"phix/internal/token"
)

// scanHTML лексит HTML-режим: либо открывающий тег прямо под курсором,
// либо InlineHTML до следующего '<?' (или до EOF).
func (lx *Lexer) scanHTML() token.Token {
	if tok, ok := lx.tryOpenTag(); ok {
		return tok
	}

	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '<' && lx.cursor.PeekAt(1) == '?' {
			break
		}
		lx.cursor.Bump()
	}
	return token.New(token.InlineHTML, lx.textFrom(start))
}

// tryOpenTag распознаёт '<?php', '<?=' и короткий '<?'. Регистр
// '<?PHP' не важен, текст токена сохраняет исходное написание.
func (lx *Lexer) tryOpenTag() (token.Token, bool) {
	if lx.cursor.Peek() != '<' || lx.cursor.PeekAt(1) != '?' {
		return token.Token{}, false
	}

	start := lx.cursor.Mark()
	lx.cursor.Bump() // '<'
	lx.cursor.Bump() // '?'

	// <?=
	if lx.cursor.Peek() == '=' {
		lx.cursor.Bump()
		lx.cur().mode = modePHP
		return token.New(token.OpenTagEcho, lx.textFrom(start)), true
	}

	// <?php — только если за словом не продолжается идентификатор
	if lowerASCII(lx.cursor.Peek()) == 'p' &&
		lowerASCII(lx.cursor.PeekAt(1)) == 'h' &&
		lowerASCII(lx.cursor.PeekAt(2)) == 'p' &&
		!isIdentContinueByte(lx.cursor.PeekAt(3)) {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cur().mode = modePHP
		return token.New(token.OpenTag, lx.textFrom(start)), true
	}

	// короткий тег <?
	lx.cur().mode = modePHP
	return token.New(token.OpenTag, lx.textFrom(start)), true
}
