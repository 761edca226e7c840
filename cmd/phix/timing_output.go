package main

import (
	"fmt"
	"io"

	"phix/internal/driver"
	"phix/internal/observ"
)

// printPhaseTimings выводит таблицу фаз одного файла.
func printPhaseTimings(out io.Writer, report *observ.Report) {
	if out == nil || report == nil {
		return
	}
	for _, p := range report.Phases {
		fmt.Fprintf(out, "  %-12s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(out, "  // %s", p.Note)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "  %-12s %7.2f ms\n", "total", report.TotalMS)
}

// printRunTimings показывает замеры прогона: один файл разворачивается в
// таблицу фаз, несколько файлов сжимаются до totals.
func printRunTimings(out io.Writer, results []driver.RewriteResult) {
	timed := results[:0:0]
	for _, res := range results {
		if res.Timing != nil {
			timed = append(timed, res)
		}
	}
	if len(timed) == 0 {
		return
	}

	fmt.Fprintln(out, "timings:")
	if len(timed) == 1 {
		printPhaseTimings(out, timed[0].Timing)
		return
	}
	total := 0.0
	for _, res := range timed {
		fmt.Fprintf(out, "  %-40s %7.2f ms\n", res.Path, res.Timing.TotalMS)
		total += res.Timing.TotalMS
	}
	fmt.Fprintf(out, "  %-40s %7.2f ms\n", "total", total)
}
