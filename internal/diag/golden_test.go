package diag

import (
	"testing"

	"phix/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/src/Sample.php", []byte("a\nb\n"), 0)
	vendorFile := fs.Add("/workspace/vendor/lib/Helper.php", []byte("x\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     LexUnterminatedString,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: vendorFile, Start: 0, End: 0}, Msg: "skip me"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     RuleApplied,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error LEX1002 src/Sample.php:1:1 first line second\n" +
		"note LEX1002 src/Sample.php:2:1 note line\n" +
		"warning RULE2001 src/Sample.php:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(16)
	fileA := source.FileID(0)

	d1 := New(SevWarning, RuleApplied, source.Span{File: fileA, Start: 10, End: 12}, "later")
	d2 := New(SevError, LexUnterminatedString, source.Span{File: fileA, Start: 2, End: 4}, "earlier")
	d3 := New(SevError, LexUnterminatedString, source.Span{File: fileA, Start: 2, End: 4}, "earlier")

	bag.Add(d1)
	bag.Add(d2)
	bag.Add(d3)

	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 diagnostics after dedup, got %d", len(items))
	}
	if items[0].Message != "earlier" || items[1].Message != "later" {
		t.Fatalf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(1)
	if !bag.Add(New(SevInfo, RuleInfo, source.Span{}, "one")) {
		t.Fatal("first Add must succeed")
	}
	if bag.Add(New(SevInfo, RuleInfo, source.Span{}, "two")) {
		t.Fatal("Add past the limit must report false")
	}
	if bag.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", bag.Len())
	}
}

func TestFormatShortDiagnosticsKeepsVendorPaths(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	vendorFile := fs.Add("/workspace/vendor/lib/Helper.php", []byte("x\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     LexStrayByte,
			Message:  "stray byte",
			Primary:  source.Span{File: vendorFile, Start: 0, End: 1},
		},
	}

	if got := FormatGoldenDiagnostics(diags, fs, false); got != "" {
		t.Fatalf("golden format must drop vendor entries, got %q", got)
	}

	want := "warning LEX1001 vendor/lib/Helper.php:1:1 stray byte"
	if got := FormatShortDiagnostics(diags, fs, false); got != want {
		t.Fatalf("unexpected short diagnostics:\nwant: %s\ngot:  %s", want, got)
	}
}
