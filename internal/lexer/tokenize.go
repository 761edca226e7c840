package lexer

import (
	"phix/internal/diag"
	"phix/internal/source"
	"phix/internal/token"
)

// Tokenize прогоняет лексер по файлу целиком и возвращает все токены
// без замыкающего EOF. Конкатенация Text результата воспроизводит
// содержимое файла байт-в-байт.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var out []token.Token
	for {
		t := lx.Next()
		if t.Kind == token.EOF {
			return out
		}
		out = append(out, t)
	}
}

// SourceTokenizer adapts the lexer to stream.Tokenizer: raw bytes in,
// tokens out. Each call registers a fresh virtual file in Files so
// diagnostics reported through Reporter carry resolvable spans.
type SourceTokenizer struct {
	Files    *source.FileSet
	Reporter diag.Reporter
	// Name labels created virtual files; defaults to "<source>".
	Name string
}

// Tokenize implements the stream.Tokenizer contract. The error return
// stays nil: lexing never fails outright, problems surface as
// diagnostics while every input byte still lands in some token.
func (st *SourceTokenizer) Tokenize(src []byte) ([]token.Token, error) {
	files := st.Files
	if files == nil {
		files = source.NewFileSet()
	}
	name := st.Name
	if name == "" {
		name = "<source>"
	}
	id := files.AddVirtual(name, src)
	file := files.Get(id)
	return Tokenize(file, Options{Reporter: st.Reporter}), nil
}
