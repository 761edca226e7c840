package lexer

import (
	"phix/internal/diag"
	"phix/internal/token"
)

// scanSingleQuoted лексит '...'. Внутри одинарных кавычек PHP понимает
// только \\ и \', но съедать байт после '\' безопасно всегда. Перевод
// строки внутри литерала легален.
func (lx *Lexer) scanSingleQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая '
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '\'' {
			return token.New(token.StringLit, lx.textFrom(start))
		}
	}
	// EOF без закрывающей кавычки: хвост остаётся литералом
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.New(token.StringLit, lx.textFrom(start))
}

// scanDoubleQuoted решает судьбу "..." по предпросмотру: литерал без
// интерполяции остаётся одним StringLit, литерал с $var / {$expr} /
// ${name} разбивается — кавычки голыми токенами, тело через modeDQuote.
func (lx *Lexer) scanDoubleQuoted() token.Token {
	interp, terminated := lx.hasInterpolation()

	if !terminated {
		start := lx.cursor.Mark()
		for !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
		return token.New(token.StringLit, lx.textFrom(start))
	}

	if !interp {
		return lx.scanPlainDQuote()
	}

	lx.cursor.Bump() // открывающая "
	lx.push(lexState{mode: modeDQuote})
	return token.Bare("\"")
}

// hasInterpolation заглядывает вперёд от открывающей кавычки, не двигая
// курсор. terminated=false значит, что закрывающая '"' не нашлась до
// конца файла.
func (lx *Lexer) hasInterpolation() (interp, terminated bool) {
	i := lx.cursor.Off + 1 // за открывающей "
	limit := lx.cursor.Limit
	for i < limit {
		b := lx.file.Content[i]
		switch b {
		case '\\':
			i += 2
			continue
		case '"':
			return interp, true
		case '$':
			if i+1 < limit {
				nb := lx.file.Content[i+1]
				if isIdentStartByte(nb) || nb == '{' {
					interp = true
				}
			}
		case '{':
			if i+1 < limit && lx.file.Content[i+1] == '$' {
				interp = true
			}
		}
		i++
	}
	return interp, false
}

// scanPlainDQuote съедает "..." без интерполяции одним литералом.
// Вызывается только когда предпросмотр нашёл закрывающую кавычку.
func (lx *Lexer) scanPlainDQuote() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая "
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '"' {
			break
		}
	}
	return token.New(token.StringLit, lx.textFrom(start))
}

// scanDQuotePart лексит очередной кусок интерполируемой строки:
// закрывающую кавычку, вход в интерполяцию или прогон текста.
// Сложный синтаксис {$...} и ${...} переключает лексер обратно в PHP
// до парного '}'; простой $var[0] и $var->prop здесь не разбирается —
// скобочный хвост уходит в StringBody.
func (lx *Lexer) scanDQuotePart() token.Token {
	b := lx.cursor.Peek()
	switch {
	case b == '"':
		lx.cursor.Bump()
		lx.pop()
		return token.Bare("\"")

	case b == '{' && lx.cursor.PeekAt(1) == '$':
		lx.cursor.Bump()
		lx.push(lexState{mode: modePHP, interp: true, braces: 1})
		return token.New(token.CurlyOpenInterp, "{")

	case b == '$' && lx.cursor.PeekAt(1) == '{':
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.push(lexState{mode: modePHP, interp: true, braces: 1})
		return token.New(token.DollarCurlyOpen, "${")

	case b == '$' && isIdentStartByte(lx.cursor.PeekAt(1)):
		return lx.scanVariable()

	default:
		return lx.scanStringBody()
	}
}

// scanStringBody собирает прогон обычного текста внутри
// интерполируемой строки: до кавычки, следующей интерполяции или EOF.
func (lx *Lexer) scanStringBody() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '$' && (isIdentStartByte(lx.cursor.PeekAt(1)) || lx.cursor.PeekAt(1) == '{') {
			break
		}
		if b == '{' && lx.cursor.PeekAt(1) == '$' {
			break
		}
		lx.cursor.Bump()
	}
	return token.New(token.StringBody, lx.textFrom(start))
}
