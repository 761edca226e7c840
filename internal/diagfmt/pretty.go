package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"phix/internal/diag"
	"phix/internal/source"
)

var (
	sevErrorPaint  = color.New(color.FgRed, color.Bold)
	sevWarnPaint   = color.New(color.FgYellow, color.Bold)
	sevInfoPaint   = color.New(color.FgCyan, color.Bold)
	underlinePaint = color.New(color.FgGreen, color.Bold)
	notePaint      = color.New(color.FgBlue)
)

func severityLabel(sev diag.Severity, useColor bool) string {
	if !useColor {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return sevErrorPaint.Sprint(sev.String())
	case diag.SevWarning:
		return sevWarnPaint.Sprint(sev.String())
	default:
		return sevInfoPaint.Sprint(sev.String())
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeading(w, fs, d.Primary, severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message, opts)
		printContext(w, fs, d.Primary, opts)

		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			loc := formatLocation(fs, note.Span, opts.PathMode)
			label := "note:"
			if opts.Color {
				label = notePaint.Sprint(label)
			}
			fmt.Fprintf(w, "  %s %s %s\n", label, loc, note.Msg)
		}
	}
}

func printHeading(w io.Writer, fs *source.FileSet, span source.Span, sev, code, msg string, opts PrettyOpts) {
	fmt.Fprintf(w, "%s: %s %s: %s\n", formatLocation(fs, span, opts.PathMode), sev, code, msg)
}

func formatLocation(fs *source.FileSet, span source.Span, mode PathMode) string {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, fs, mode), start.Line, start.Col)
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// printContext показывает строку со спаном и подчёркивание ^~~~ под ним,
// плюс opts.Context строк вокруг. Ширина подчёркивания считается в
// экранных колонках, табы из исходника переносятся в отступ как есть.
func printContext(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	f := fs.Get(span.File)
	if f == nil || len(f.Content) == 0 {
		return
	}
	start, end := fs.Resolve(span)

	first := start.Line
	if ctx := uint32(max(int(opts.Context), 0)); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	last := start.Line + uint32(max(int(opts.Context), 0))

	gutter := len(fmt.Sprintf("%d", last))
	for line := first; line <= last; line++ {
		text := f.GetLine(line)
		if text == "" && line > start.Line {
			break
		}
		fmt.Fprintf(w, "  %*d | %s\n", gutter, line, text)
		if line != start.Line {
			continue
		}

		head := lineSlice(text, start.Col-1)
		pad := make([]byte, 0, len(head))
		for _, r := range head {
			if r == '\t' {
				pad = append(pad, '\t')
			} else {
				pad = append(pad, strings.Repeat(" ", runewidth.RuneWidth(r))...)
			}
		}

		segWidth := 1
		if end.Line == start.Line && end.Col > start.Col {
			seg := lineSlice(text, end.Col-1)
			segWidth = max(runewidth.StringWidth(seg[len(head):]), 1)
		} else if end.Line > start.Line {
			// спан уходит на следующие строки: тянем до конца текущей
			segWidth = max(runewidth.StringWidth(text[len(head):]), 1)
		}

		marker := "^" + strings.Repeat("~", segWidth-1)
		if opts.Color {
			marker = underlinePaint.Sprint(marker)
		}
		fmt.Fprintf(w, "  %*s | %s%s\n", gutter, "", pad, marker)
	}
}

// lineSlice обрезает строку до col байт, не разрывая UTF-8 последовательность.
func lineSlice(text string, col uint32) string {
	n := int(col)
	if n > len(text) {
		n = len(text)
	}
	for n > 0 && n < len(text) && text[n]&0xC0 == 0x80 {
		n--
	}
	return text[:n]
}
