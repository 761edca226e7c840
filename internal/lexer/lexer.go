package lexer

import (
	"phix/internal/diag"
	"phix/internal/source"
	"phix/internal/token"
)

// lexMode определяет, как интерпретируется текущая позиция.
type lexMode uint8

const (
	// modeHTML — вне PHP-тегов: всё до '<?' уходит в InlineHTML.
	modeHTML lexMode = iota
	// modePHP — обычный PHP-код.
	modePHP
	// modeDQuote — внутри интерполируемой строки в двойных кавычках.
	modeDQuote
)

// lexState — кадр стека режимов. Интерполяция вкладывается: строка
// может содержать {$expr} с PHP-кодом, который содержит строки.
type lexState struct {
	mode   lexMode
	interp bool // PHP-кадр открыт из строки через {$ или ${
	braces int  // глубина '{' внутри interp-кадра; 0 — пора закрываться
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-элементный буфер для Peek
	stack  []lexState

	eofReported bool // незакрытая строка на EOF репортится один раз
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		stack:  []lexState{{mode: modeHTML}},
	}
}

func (lx *Lexer) cur() *lexState {
	return &lx.stack[len(lx.stack)-1]
}

func (lx *Lexer) push(st lexState) {
	lx.stack = append(lx.stack, st)
}

func (lx *Lexer) pop() {
	if len(lx.stack) > 1 {
		lx.stack = lx.stack[:len(lx.stack)-1]
	}
}

// Next возвращает следующий токен. Каждый байт входа попадает ровно в
// один токен: конкатенация Text всех токенов воспроизводит файл
// байт-в-байт. После конца входа всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	// 1) Если есть look — вернуть его и очистить
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) EOF: если стек не размотан — входной файл оборвался внутри строки
	if lx.cursor.EOF() {
		if len(lx.stack) > 1 && !lx.eofReported {
			lx.errLex(diag.LexUnterminatedString, lx.emptySpan(), "unterminated string literal")
			lx.eofReported = true
		}
		return token.Token{Kind: token.EOF, Text: ""}
	}

	// 3) Выбор сканера по режиму
	switch lx.cur().mode {
	case modeHTML:
		return lx.scanHTML()
	case modeDQuote:
		return lx.scanDQuotePart()
	default:
		return lx.scanPHP()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scanPHP выбирает сканер для обычного PHP-режима.
func (lx *Lexer) scanPHP() token.Token {
	ch := lx.cursor.Peek()

	switch {
	case ch == '?' && lx.cursor.PeekAt(1) == '>' && !lx.cur().interp:
		return lx.scanCloseTag()

	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
		return lx.scanWhitespace()

	case ch == '#':
		return lx.scanLineComment()

	case ch == '/' && lx.cursor.PeekAt(1) == '/':
		return lx.scanLineComment()

	case ch == '/' && lx.cursor.PeekAt(1) == '*':
		return lx.scanBlockComment()

	case ch == '$':
		return lx.scanVariable()

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '\'':
		return lx.scanSingleQuoted()

	case ch == '"':
		return lx.scanDoubleQuoted()

	case ch == '{':
		if st := lx.cur(); st.interp {
			st.braces++
		}
		lx.cursor.Bump()
		return token.Bare("{")

	case ch == '}':
		if st := lx.cur(); st.interp {
			st.braces--
			if st.braces <= 0 {
				// закрылась {$...} или ${...}: назад в строку
				lx.pop()
			}
		}
		lx.cursor.Bump()
		return token.Bare("}")

	default:
		return lx.scanOperatorOrPunct()
	}
}

// scanWhitespace коалесцирует подряд идущие пробельные байты в один
// токен. Переводы строк входят в тот же токен, как в T_WHITESPACE.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\r' && b != '\n' {
			break
		}
		lx.cursor.Bump()
	}
	return token.New(token.Whitespace, lx.textFrom(start))
}

// scanCloseTag съедает '?>' и перевод строки сразу за ним (так делает
// сам PHP), затем возвращает лексер в HTML-режим.
func (lx *Lexer) scanCloseTag() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '?'
	lx.cursor.Bump() // '>'
	if lx.cursor.Peek() == '\r' && lx.cursor.PeekAt(1) == '\n' {
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else if lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
	}
	lx.cur().mode = modeHTML
	return token.New(token.CloseTag, lx.textFrom(start))
}

func (lx *Lexer) textFrom(m Mark) string {
	sp := lx.cursor.SpanFrom(m)
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
