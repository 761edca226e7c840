package driver_test

import (
	"context"
	"os"
	"testing"

	"phix/internal/diag"
	"phix/internal/driver"
	"phix/internal/rules"
)

const dirtyClass = "<?php\nclass A {\n    function f() {}\n}\n"
const cleanClass = "<?php\nclass A {\n    public function f() {}\n}\n"

func allRules() []rules.Rule {
	return rules.Default().All()
}

func TestRewriteFileWritesChanges(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.php", dirtyClass)

	res, err := driver.RewriteFile(context.Background(), path, driver.Options{Rules: allRules()})
	if err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	if !res.Changed {
		t.Error("Changed = false on a rewritable file")
	}
	if !res.Written {
		t.Error("Written = false on a rewritable file")
	}
	if res.Output != cleanClass {
		t.Errorf("Output = %q, want %q", res.Output, cleanClass)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != cleanClass {
		t.Errorf("file on disk = %q, want %q", onDisk, cleanClass)
	}
	if got := res.Rules.Total(); got != 1 {
		t.Errorf("Rules.Total() = %d, want 1", got)
	}
}

func TestRewriteFileLeavesCleanFilesAlone(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.php", cleanClass)

	res, err := driver.RewriteFile(context.Background(), path, driver.Options{Rules: allRules()})
	if err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	if res.Changed {
		t.Error("Changed = true on a canonical file")
	}
	if res.Written {
		t.Error("Written = true on a canonical file")
	}
	if got := res.Rules.Total(); got != 0 {
		t.Errorf("Rules.Total() = %d, want 0", got)
	}
}

func TestRewriteFileDryRun(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.php", dirtyClass)

	res, err := driver.RewriteFile(context.Background(), path, driver.Options{Rules: allRules(), DryRun: true})
	if err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	if !res.Changed {
		t.Error("Changed = false in dry run")
	}
	if res.Written {
		t.Error("dry run reported a write")
	}
	if res.Output != cleanClass {
		t.Errorf("Output = %q, want %q", res.Output, cleanClass)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != dirtyClass {
		t.Errorf("dry run touched the file: %q", onDisk)
	}
}

func TestRewriteFileWithoutRules(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.php", dirtyClass)

	// без правил прогон сводится к токенизации и рендеру, а рендер
	// нетронутого потока обязан побайтно совпасть с исходником
	res, err := driver.RewriteFile(context.Background(), path, driver.Options{})
	if err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	if res.Changed {
		t.Error("Changed = true without rules")
	}
	if res.Written {
		t.Error("Written = true without rules")
	}
	if res.Output != dirtyClass {
		t.Errorf("Output = %q, want the untouched source", res.Output)
	}
}

func TestRewriteFilePreservesPermissions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.php", dirtyClass)
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := driver.RewriteFile(context.Background(), path, driver.Options{Rules: allRules()}); err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("file mode after rewrite = %v, want 0600", got)
	}
}

func TestRewriteFileTimings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.php", dirtyClass)

	res, err := driver.RewriteFile(context.Background(), path, driver.Options{Rules: allRules(), Timings: true})
	if err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	if res.Timing == nil {
		t.Fatal("Timing = nil with Timings enabled")
	}
	phases := make(map[string]bool, len(res.Timing.Phases))
	for _, p := range res.Timing.Phases {
		phases[p.Name] = true
	}
	for _, name := range []string{"tokenize", "rules", "render", "write"} {
		if !phases[name] {
			t.Errorf("phase %q missing from timing report", name)
		}
	}

	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.ObsTimings {
			found = true
			if len(d.Notes) == 0 || d.Notes[0].Msg == "" {
				t.Error("timings diagnostic carries no payload")
			}
		}
	}
	if !found {
		t.Error("no timings diagnostic in the bag")
	}
}

func TestRewriteFileSurfacesLexErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.php", "<?php\n/* never closed\n")

	// битый файл — это диагностика, а не провал прогона
	res, err := driver.RewriteFile(context.Background(), path, driver.Options{Rules: allRules()})
	if err != nil {
		t.Fatalf("RewriteFile: %v", err)
	}
	if res.Changed {
		t.Error("Changed = true on a file that only has lex errors")
	}
	if !res.Bag.HasErrors() {
		t.Fatal("bag has no errors for an unterminated block comment")
	}

	res.FileSet.SetBaseDir(dir)
	want := "error LEX1003 a.php:2:1 unterminated block comment"
	if got := diag.FormatGoldenDiagnostics(res.Bag.Items(), res.FileSet, false); got != want {
		t.Errorf("golden diagnostics = %q, want %q", got, want)
	}
}

func TestRewriteFileCanceled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.php", dirtyClass)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := driver.RewriteFile(ctx, path, driver.Options{Rules: allRules()}); err == nil {
		t.Fatal("RewriteFile succeeded on a canceled context")
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(onDisk) != dirtyClass {
		t.Errorf("canceled run touched the file: %q", onDisk)
	}
}
