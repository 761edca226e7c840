// Package fuzztests houses Go fuzz harnesses that exercise the token
// pipeline (source -> lexer -> stream -> rules). Its goal is to smoke
// test robustness and guard against panics or round-trip violations on
// arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в
// FileSet и прогоняют их через лексер и движок правил.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/stream,
// internal/rules, internal/diag, internal/testkit.

package fuzztests
