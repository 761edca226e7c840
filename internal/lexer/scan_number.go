package lexer

import (
	"phix/internal/diag"
	"phix/internal/token"
)

// Поддержка: 123, 0x1A, 0b101, 0777, 1.5, .5, 1., 1e3, 1.5e-3.
// Неверные формы репортятся, но токен всё равно завершаем: каждый байт
// обязан попасть ровно в один токен.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	kind := token.IntLit

	// ведущая точка — значит формат ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumberExponent(start, kind)
	}

	// ведущий 0 и база?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			if lx.cursor.Peek() != '0' && lx.cursor.Peek() != '1' {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected binary digit after '0b'")
				return token.New(token.IntLit, lx.textFrom(start))
			}
			for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' {
				lx.cursor.Bump()
			}
			return token.New(token.IntLit, lx.textFrom(start))
		case 'x', 'X':
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected hex digit after '0x'")
				return token.New(token.IntLit, lx.textFrom(start))
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return token.New(token.IntLit, lx.textFrom(start))
		default:
			// восьмеричная запись 0777 либо просто 0 (возможно с дробью)
			for isOct(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	// десятичная целая часть
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: '1.5' и '1.' — float, '1..' не трогаем
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.finishNumberExponent(start, kind)
}

// finishNumberExponent доедает экспоненту, если она есть, и выдаёт токен.
func (lx *Lexer) finishNumberExponent(start Mark, kind token.Kind) token.Token {
	b := lx.cursor.Peek()
	if b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		afterSign := lx.cursor.PeekAt(2)
		hasExp := isDec(next) || ((next == '+' || next == '-') && isDec(afterSign))
		if hasExp {
			kind = token.FloatLit
			lx.cursor.Bump() // e/E
			if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
		// 'e' без цифр — не экспонента: "1email" лексится как 1 + email
	}
	return token.New(kind, lx.textFrom(start))
}
