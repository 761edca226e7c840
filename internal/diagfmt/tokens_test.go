package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"phix/internal/lexer"
	"phix/internal/source"
	"phix/internal/token"
)

func lexFixture(t *testing.T, src string) ([]token.Token, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("dump.php", []byte(src))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})
	return toks, fs, id
}

func TestFormatTokensPretty(t *testing.T) {
	toks, fs, id := lexFixture(t, "<?php\necho 1;\n")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs, id); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "OpenTag") {
		t.Errorf("no OpenTag row in:\n%s", output)
	}
	if !strings.Contains(output, `"echo"`) {
		t.Errorf("no echo text in:\n%s", output)
	}
	if !strings.Contains(output, "at 1:1-1:6") {
		t.Errorf("no open tag position in:\n%s", output)
	}
	if !strings.Contains(output, "at 2:1-2:5") {
		t.Errorf("no echo position in:\n%s", output)
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != len(toks) {
		t.Errorf("%d rows for %d tokens", len(lines), len(toks))
	}
}

func TestFormatTokensPrettyAlignsWideRunes(t *testing.T) {
	toks, fs, id := lexFixture(t, "<?php echo \"日本\";\n")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs, id); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}

	// колонка "at" должна начинаться на одной и той же позиции во всех
	// строках: широкие руны компенсируются меньшим числом пробелов
	col := -1
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		idx := strings.Index(line, " at ")
		if idx < 0 {
			t.Fatalf("row without position: %q", line)
		}
		w := runewidth.StringWidth(line[:idx])
		if col == -1 {
			col = w
		} else if w != col {
			t.Errorf("misaligned row %q: width %d, want %d", line, w, col)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks, _, id := lexFixture(t, "<?php echo 1;")

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks, id); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}

	var decoded []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(toks) {
		t.Fatalf("%d entries for %d tokens", len(decoded), len(toks))
	}
	if decoded[0].Kind != "OpenTag" || decoded[0].StartByte != 0 || decoded[0].EndByte != 5 {
		t.Errorf("first entry = %+v", decoded[0])
	}
	// смещения покрывают файл без дыр
	for i := 1; i < len(decoded); i++ {
		if decoded[i].StartByte != decoded[i-1].EndByte {
			t.Errorf("gap between tokens %d and %d: %d..%d", i-1, i, decoded[i-1].EndByte, decoded[i].StartByte)
		}
	}
}
