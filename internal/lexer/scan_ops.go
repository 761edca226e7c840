package lexer

import (
	"fmt"

	"phix/internal/diag"
	"phix/internal/token"
)

// scanOperatorOrPunct лексит операторы и пунктуацию. Все они — голые
// токены: правила различают их по тексту, не по категории. Жадность:
// сначала трёхбайтовые формы, затем двухбайтовые, затем один байт.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('=', '=', '='),
		lx.try3('!', '=', '='),
		lx.try3('<', '=', '>'),
		lx.try3('.', '.', '.'),
		lx.try3('?', '?', '='),
		lx.try3('?', '-', '>'),
		lx.try3('*', '*', '='),
		lx.try3('<', '<', '='),
		lx.try3('>', '>', '='):
		return token.Bare(lx.textFrom(start))

	case lx.try2('=', '='),
		lx.try2('!', '='),
		lx.try2('<', '>'),
		lx.try2('<', '='),
		lx.try2('>', '='),
		lx.try2('&', '&'),
		lx.try2('|', '|'),
		lx.try2('+', '+'),
		lx.try2('-', '-'),
		lx.try2('*', '*'),
		lx.try2('?', '?'),
		lx.try2('+', '='),
		lx.try2('-', '='),
		lx.try2('*', '='),
		lx.try2('/', '='),
		lx.try2('.', '='),
		lx.try2('%', '='),
		lx.try2('&', '='),
		lx.try2('|', '='),
		lx.try2('^', '='),
		lx.try2('-', '>'),
		lx.try2('=', '>'),
		lx.try2(':', ':'),
		lx.try2('<', '<'),
		lx.try2('>', '>'):
		return token.Bare(lx.textFrom(start))
	}

	// односимвольные операторы, скобки и всё остальное
	b := lx.cursor.Bump()
	if b < 0x20 || b == 0x7f {
		sp := lx.cursor.SpanFrom(start)
		lx.warnLex(diag.LexStrayByte, sp, fmt.Sprintf("stray byte 0x%02x in source", b))
	}
	return token.Bare(lx.textFrom(start))
}
