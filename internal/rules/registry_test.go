package rules_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"phix/internal/diag"
	"phix/internal/rules"
)

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := rules.NewRegistry()
	if err := reg.Register(stubRule{name: "dup"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := reg.Register(stubRule{name: "dup"}); err == nil {
		t.Fatal("duplicate Register succeeded, want error")
	}
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	if err := rules.NewRegistry().Register(stubRule{}); err == nil {
		t.Fatal("Register with empty name succeeded, want error")
	}
}

func TestDefaultRegistryOrder(t *testing.T) {
	want := []string{"visibility", "magic-case", "single-quote", "elseif", "trailing-space"}
	if diff := cmp.Diff(want, rules.Default().Names()); diff != "" {
		t.Errorf("default rule order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveEmptySelectsAll(t *testing.T) {
	reg := rules.Default()
	got, err := reg.Resolve(nil)
	if err != nil {
		t.Fatalf("Resolve(nil): %v", err)
	}
	if len(got) != len(reg.Names()) {
		t.Errorf("Resolve(nil) returned %d rules, want %d", len(got), len(reg.Names()))
	}
}

func TestResolveKeepsRegistrationOrder(t *testing.T) {
	got, err := rules.Default().Resolve([]string{"trailing-space", "visibility"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var names []string
	for _, r := range got {
		names = append(names, r.Name())
	}
	want := []string{"visibility", "trailing-space"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("resolved order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveUnknownName(t *testing.T) {
	_, err := rules.Default().Resolve([]string{"visibility", "no-such-rule"})
	if err == nil {
		t.Fatal("Resolve with unknown name succeeded, want error")
	}
	if !strings.Contains(err.Error(), "no-such-rule") {
		t.Errorf("error %q does not name the unknown rule", err)
	}
	if !strings.Contains(err.Error(), "visibility") {
		t.Errorf("error %q does not list the known rules", err)
	}
}

func TestRegistryGet(t *testing.T) {
	reg := rules.Default()
	if rule, ok := reg.Get("elseif"); !ok || rule.Name() != "elseif" {
		t.Errorf("Get(elseif) = %v, %v", rule, ok)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}
}

func TestDefaultPipelineEndToEnd(t *testing.T) {
	src := "<?php\nclass User {\n    var $name;\n    static public function __CONSTRUCT() {}\n    public function data() {\n        if ($this->name) {} else if (true) {}\n        return \"ok\";   \n    }\n}\n"
	want := "<?php\nclass User {\n    public $name;\n    public static function __construct() {}\n    public function data() {\n        if ($this->name) {} elseif (true) {}\n        return 'ok';\n    }\n}\n"

	s, file := makeStream(t, src)
	bag := diag.NewBag(64)
	ctx := &rules.Context{Stream: s, File: file, Reporter: diag.BagReporter{Bag: bag}}
	res, err := rules.Run(rules.Default().All(), ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff(want, s.Render()); diff != "" {
		t.Errorf("pipeline output mismatch (-want +got):\n%s", diff)
	}

	var applied []string
	for _, a := range res.Applied {
		applied = append(applied, a.Name)
	}
	wantApplied := []string{"visibility", "magic-case", "single-quote", "elseif", "trailing-space"}
	if diff := cmp.Diff(wantApplied, applied); diff != "" {
		t.Errorf("applied rules mismatch (-want +got):\n%s", diff)
	}
	if res.Total() != bag.Len() {
		t.Errorf("Total() = %d but bag holds %d diagnostics", res.Total(), bag.Len())
	}
	if len(res.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", res.Skipped)
	}
}
