package rules

import (
	"errors"
	"fmt"

	"phix/internal/diag"
	"phix/internal/source"
)

// ErrNoRules is returned by Run when the rule list is empty.
var ErrNoRules = errors.New("no rules selected")

// AppliedRule describes one rule that changed the stream.
type AppliedRule struct {
	Name    string
	Changes int
}

// SkippedRule describes one rule that failed and was passed over.
type SkippedRule struct {
	Name   string
	Reason string
}

// Result aggregates the outcome of one Run over a single stream.
type Result struct {
	Applied []AppliedRule
	Skipped []SkippedRule
}

// Total returns the number of individual changes across all rules.
func (r *Result) Total() int {
	n := 0
	for _, a := range r.Applied {
		n += a.Changes
	}
	return n
}

// Run applies rules in order to ctx's stream. A failing rule is
// recorded as skipped and does not stop the ones after it; later rules
// see the partial edits of earlier ones, which is why the order of the
// slice matters.
func Run(rules []Rule, ctx *Context) (*Result, error) {
	res := &Result{}
	if ctx == nil || ctx.Stream == nil {
		return res, fmt.Errorf("rules: nil context or stream")
	}
	if len(rules) == 0 {
		return res, ErrNoRules
	}
	for _, rule := range rules {
		counter := &countingReporter{inner: ctx.Reporter}
		rctx := &Context{Stream: ctx.Stream, File: ctx.File, Reporter: counter}
		if err := rule.Apply(rctx); err != nil {
			res.Skipped = append(res.Skipped, SkippedRule{Name: rule.Name(), Reason: err.Error()})
			continue
		}
		if counter.applied > 0 {
			res.Applied = append(res.Applied, AppliedRule{Name: rule.Name(), Changes: counter.applied})
		}
	}
	return res, nil
}

// countingReporter считает диагностики о применённых правках, проксируя
// всё остальное внутрь. Так движок узнаёт счётчик per-rule, не требуя
// от правил отдельного протокола.
type countingReporter struct {
	inner   diag.Reporter
	applied int
}

func (cr *countingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if code == diag.RuleApplied {
		cr.applied++
	}
	if cr.inner != nil {
		cr.inner.Report(code, sev, primary, msg, notes)
	}
}
