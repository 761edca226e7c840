package lexer

import (
	"phix/internal/diag"
	"phix/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}

// errLex — шорткат для ошибок лексера.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.report(code, diag.SevError, sp, msg)
}

// warnLex — шорткат для предупреждений.
func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	lx.report(code, diag.SevWarning, sp, msg)
}
