package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"phix/internal/diag"
	"phix/internal/source"
)

func TestBuildDiagnosticsOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte("<?php\n$s = \"open\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Primary:  source.Span{File: id, Start: 11, End: 16},
	})

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true})
	want := DiagnosticsOutput{
		Diagnostics: []DiagnosticJSON{{
			Severity: "ERROR",
			Code:     diag.LexUnterminatedString.ID(),
			Message:  "unterminated string literal",
			Location: LocationJSON{
				File:      "test.php",
				StartByte: 11,
				EndByte:   16,
				StartLine: 2,
				StartCol:  6,
				EndLine:   2,
				EndCol:    11,
			},
		}},
		Count: 1,
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDiagnosticsOutputMax(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte("<?php $a @ $b @ $c @\n"))

	bag := diag.NewBag(10)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.LexUnknownChar,
			Message:  "unknown character",
			Primary:  source.Span{File: id, Start: 9 + i*5, End: 10 + i*5},
		})
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("Max=2 left %d diagnostics", len(out.Diagnostics))
	}
	// без IncludePositions строки/колонки нулевые и уходят из JSON
	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Errorf("positions computed without IncludePositions: %+v", out.Diagnostics[0].Location)
	}
}

func TestBuildDiagnosticsOutputNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte("<?php\nclass A {}\n"))

	withNotes := diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.RuleApplied,
		Message:  "made method public",
		Primary:  source.Span{File: id, Start: 6, End: 11},
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 12, End: 13}, Msg: "declared here"}},
	}

	bag := diag.NewBag(4)
	bag.Add(withNotes)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if len(out.Diagnostics[0].Notes) != 0 {
		t.Error("notes included without IncludeNotes")
	}

	out = BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeNotes: true})
	notes := out.Diagnostics[0].Notes
	if len(notes) != 1 || notes[0].Message != "declared here" {
		t.Errorf("notes = %+v", notes)
	}
}

// тайминги живут целиком в Notes, поэтому для них фильтр не действует
func TestBuildDiagnosticsOutputTimingsKeepNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte("<?php\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  "phase timings",
		Primary:  source.Span{File: id},
		Notes:    []diag.Note{{Msg: `{"total_ms":1.5}`}},
	})

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if len(out.Diagnostics[0].Notes) != 1 {
		t.Fatalf("timings notes dropped: %+v", out.Diagnostics[0])
	}
}

func TestJSONEncodes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte("<?php $x @;\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexUnknownChar,
		Message:  "unknown character",
		Primary:  source.Span{File: id, Start: 9, End: 10},
	})

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 1 {
		t.Errorf("decoded count = %d", decoded.Count)
	}
	if decoded.Diagnostics[0].Code != diag.LexUnknownChar.ID() {
		t.Errorf("decoded code = %q", decoded.Diagnostics[0].Code)
	}
}
