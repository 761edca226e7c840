package driver_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phix/internal/driver"
	"phix/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func renderTokens(toks []token.Token) string {
	var sb strings.Builder
	for _, tk := range toks {
		sb.WriteString(tk.Text)
	}
	return sb.String()
}

func TestTokenizeFileRoundTrip(t *testing.T) {
	src := "<?php\nclass A {\n\tfunction f() { return \"x $y\"; }\n}\n"
	path := writeFile(t, t.TempDir(), "a.php", src)

	res, err := driver.TokenizeFile(path, driver.Options{})
	if err != nil {
		t.Fatalf("TokenizeFile: %v", err)
	}
	if got := renderTokens(res.Tokens); got != src {
		t.Errorf("token concatenation = %q, want %q", got, src)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if res.FromCache {
		t.Error("FromCache set without a cache")
	}
}

func TestTokenizeFileMissing(t *testing.T) {
	if _, err := driver.TokenizeFile(filepath.Join(t.TempDir(), "nope.php"), driver.Options{}); err == nil {
		t.Fatal("TokenizeFile on a missing path succeeded")
	}
}

func TestTokenizeSource(t *testing.T) {
	src := "<?php $x = 1;"
	res := driver.TokenizeSource("stdin.php", []byte(src), driver.Options{})
	if got := renderTokens(res.Tokens); got != src {
		t.Errorf("token concatenation = %q, want %q", got, src)
	}
	if res.File.Path != "stdin.php" {
		t.Errorf("virtual file path = %q", res.File.Path)
	}
}

func TestTokenizeReportsLexErrors(t *testing.T) {
	res := driver.TokenizeSource("bad.php", []byte("<?php $s = \"open"), driver.Options{})
	if !res.Bag.HasErrors() {
		t.Fatal("unterminated string produced no error")
	}
	// покрытие байтов не ломается даже на битом входе
	if got, want := renderTokens(res.Tokens), "<?php $s = \"open"; got != want {
		t.Errorf("token concatenation = %q, want %q", got, want)
	}
}
