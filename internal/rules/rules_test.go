package rules_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"phix/internal/diag"
	"phix/internal/lexer"
	"phix/internal/rules"
	"phix/internal/source"
	"phix/internal/stream"
)

// makeStream tokenizes src through the real lexer so rule tests see
// the same streams the driver produces.
func makeStream(t *testing.T, src string) (*stream.Stream, *source.File) {
	t.Helper()
	files := source.NewFileSet()
	tk := &lexer.SourceTokenizer{Files: files, Name: "rule_test.php"}
	s, err := stream.FromSource(tk, []byte(src))
	if err != nil {
		t.Fatalf("FromSource(%q): %v", src, err)
	}
	return s, files.Get(0)
}

// runRule applies one rule to src and returns the rendered result plus
// the run outcome and collected diagnostics.
func runRule(t *testing.T, rule rules.Rule, src string) (string, *rules.Result, *diag.Bag) {
	t.Helper()
	s, file := makeStream(t, src)
	bag := diag.NewBag(64)
	ctx := &rules.Context{Stream: s, File: file, Reporter: diag.BagReporter{Bag: bag}}
	res, err := rules.Run([]rules.Rule{rule}, ctx)
	if err != nil {
		t.Fatalf("Run(%s): %v", rule.Name(), err)
	}
	return s.Render(), res, bag
}

// expectRewrite runs the rule and checks the output plus how many
// changes it reported.
func expectRewrite(t *testing.T, rule rules.Rule, src, want string, changes int) {
	t.Helper()
	got, res, _ := runRule(t, rule, src)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s rewrite mismatch (-want +got):\n%s", rule.Name(), diff)
	}
	if got := res.Total(); got != changes {
		t.Errorf("%s reported %d changes, want %d", rule.Name(), got, changes)
	}
}

// expectStable проверяет идемпотентность: повторный прогон по уже
// переписанному тексту ничего не меняет.
func expectStable(t *testing.T, rule rules.Rule, src string) {
	t.Helper()
	first, _, _ := runRule(t, rule, src)
	second, res, _ := runRule(t, rule, first)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("%s is not idempotent (-first +second):\n%s", rule.Name(), diff)
	}
	if res.Total() != 0 {
		t.Errorf("%s reported %d changes on second pass, want 0", rule.Name(), res.Total())
	}
}
