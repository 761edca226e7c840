package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"phix/internal/diag"
	"phix/internal/observ"
	"phix/internal/rules"
	"phix/internal/source"
	"phix/internal/stream"
	"phix/internal/token"
)

// RewriteResult holds the outcome of rewriting one file.
type RewriteResult struct {
	Path      string
	FileSet   *source.FileSet
	FileID    source.FileID
	Bag       *diag.Bag
	Rules     *rules.Result
	Output    string
	Changed   bool
	Written   bool
	FromCache bool
	Timing    *observ.Report
}

// tokenSource отдаёт уже готовые токены: поток из кэша собирается через
// тот же FromSource, чтобы origin-смещения были заполнены.
type tokenSource struct{ toks []token.Token }

func (t tokenSource) Tokenize([]byte) ([]token.Token, error) { return t.toks, nil }

// RewriteFile tokenizes path, runs the configured rules over the
// stream, and writes the rendered output back when it differs from the
// input. DryRun skips the write, the rest of the result is identical.
func RewriteFile(ctx context.Context, path string, opts Options) (*RewriteResult, error) {
	start := time.Now()
	timer := observ.NewTimer()

	emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusWorking})
	phase := timer.Begin(observ.PhaseTokenize)
	tr, err := TokenizeFile(path, opts)
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return nil, err
	}
	timer.End(phase, fmt.Sprintf("%d tokens", len(tr.Tokens)))

	res := &RewriteResult{
		Path:      path,
		FileSet:   tr.FileSet,
		FileID:    tr.File.ID,
		Bag:       tr.Bag,
		FromCache: tr.FromCache,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emit(opts.Progress, Event{File: path, Stage: StageRules, Status: StatusWorking})
	phase = timer.Begin(observ.PhaseRules)
	s, err := stream.FromSource(tokenSource{toks: tr.Tokens}, nil)
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageRules, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return nil, err
	}
	rctx := &rules.Context{Stream: s, File: tr.File, Reporter: diag.BagReporter{Bag: tr.Bag}}
	rres, err := rules.Run(opts.Rules, rctx)
	if err != nil && !errors.Is(err, rules.ErrNoRules) {
		emit(opts.Progress, Event{File: path, Stage: StageRules, Status: StatusError, Err: err, Elapsed: time.Since(start)})
		return nil, err
	}
	res.Rules = rres
	timer.End(phase, fmt.Sprintf("%d changes", rres.Total()))

	emit(opts.Progress, Event{File: path, Stage: StageRender, Status: StatusWorking})
	phase = timer.Begin(observ.PhaseRender)
	res.Output = s.Render()
	res.Changed = res.Output != string(tr.File.Content)
	timer.End(phase, "")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
	phase = timer.Begin(observ.PhaseWrite)
	if res.Changed && !opts.DryRun {
		if err := writeBack(path, res.Output); err != nil {
			emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusError, Err: err, Elapsed: time.Since(start)})
			return nil, err
		}
		res.Written = true
	}
	timer.End(phase, "")

	if opts.Timings {
		report := timer.Report()
		res.Timing = &report
		appendTimingDiagnostic(tr.Bag, timingPayload{
			Kind:    "rewrite",
			Path:    path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}
	emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusDone, Elapsed: time.Since(start), Changed: res.Changed})
	return res, nil
}

// writeBack перезаписывает файл, сохраняя его текущие права доступа.
func writeBack(path string, content string) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
