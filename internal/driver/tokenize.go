package driver

import (
	"phix/internal/diag"
	"phix/internal/lexer"
	"phix/internal/rules"
	"phix/internal/source"
	"phix/internal/token"
)

// DefaultMaxDiagnostics bounds per-file diagnostic collection when the
// caller does not say otherwise.
const DefaultMaxDiagnostics = 256

// Options configures driver operations. The zero value tokenizes with
// defaults: no cache, no rules, no progress reporting.
type Options struct {
	// MaxDiagnostics caps the per-file bag; <= 0 means
	// DefaultMaxDiagnostics.
	MaxDiagnostics int
	// Rules run in slice order during rewrites.
	Rules []rules.Rule
	// Cache, when set, skips re-lexing files whose content hash has a
	// stored token payload.
	Cache *Cache
	// DryRun computes rewrites without touching the disk.
	DryRun bool
	// Jobs caps rewrite parallelism; <= 0 means one worker per CPU.
	Jobs int
	// Timings attaches a per-file phase report to rewrite results.
	Timings bool
	// Progress receives per-file events; nil disables reporting.
	Progress ProgressSink
}

func (o Options) bagCap() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return DefaultMaxDiagnostics
}

// TokenizeResult holds the product of tokenizing one file.
type TokenizeResult struct {
	FileSet   *source.FileSet
	File      *source.File
	Tokens    []token.Token
	Bag       *diag.Bag
	FromCache bool
}

// TokenizeFile loads path and tokenizes it.
func TokenizeFile(path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, id, opts), nil
}

// TokenizeSource tokenizes in-memory bytes under a virtual file name.
func TokenizeSource(name string, src []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return tokenizeLoaded(fs, id, opts)
}

func tokenizeLoaded(fs *source.FileSet, id source.FileID, opts Options) *TokenizeResult {
	file := fs.Get(id)
	bag := diag.NewBag(opts.bagCap())
	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag}

	if toks, ok, err := opts.Cache.Get(file.Hash); err == nil && ok {
		res.Tokens = toks
		res.FromCache = true
		return res
	}
	// ошибка чтения кэша не фатальна: лексим заново

	res.Tokens = lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	// Кэшируем только файлы без замечаний: диагностики в payload не
	// сериализуются, и попадание в кэш не должно их глотать.
	if opts.Cache != nil && bag.Len() == 0 {
		if err := opts.Cache.Put(file.Hash, file.Path, res.Tokens); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOWriteFailed,
				Message:  "token cache write failed: " + err.Error(),
			})
		}
	}
	return res
}
