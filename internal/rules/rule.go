package rules

import (
	"phix/internal/diag"
	"phix/internal/source"
	"phix/internal/stream"
)

// Rule rewrites one token stream in place. Implementations must be
// stateless: the same Rule value is reused across files and goroutines.
type Rule interface {
	// Name returns the identifier used in configs and on the CLI.
	Name() string
	// Description returns a one-line summary for `phix rules`.
	Description() string
	// Apply performs the rewrite on ctx.Stream. It reports every
	// change through ctx.Changed and returns an error only when the
	// stream cannot be processed at all.
	Apply(ctx *Context) error
}

// Context carries everything a rule needs for one file: the stream
// being edited, the file it came from (nil for in-memory sources) and
// the reporter that collects findings.
type Context struct {
	Stream   *stream.Stream
	File     *source.File
	Reporter diag.Reporter
}

// Changed records one applied rewrite, anchored to the origin of the
// token at stream index i.
func (c *Context) Changed(i int, msg string) {
	if c.Reporter == nil {
		return
	}
	var sp source.Span
	if c.File != nil {
		off := c.Stream.Origin(i)
		sp = source.Span{File: c.File.ID, Start: off, End: off}
	}
	c.Reporter.Report(diag.RuleApplied, diag.SevInfo, sp, msg, nil)
}
