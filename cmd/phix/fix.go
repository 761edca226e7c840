package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"phix/internal/config"
	"phix/internal/diagfmt"
	"phix/internal/driver"
	"phix/internal/rules"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.php|directory>",
	Short: "Rewrite PHP sources with the configured rules",
	Long: `Fix tokenizes each PHP file, runs the selected rewrite rules over the
token stream, and writes files back only when their rendered output
differs. Rule selection comes from phix.toml unless --rules overrides
it.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().String("rules", "", "comma-separated rules to run (default: phix.toml selection)")
	fixCmd.Flags().Bool("dry-run", false, "report changes without writing files")
	fixCmd.Flags().Int("jobs", 0, "files processed in parallel (0 = config, then one per CPU)")
	fixCmd.Flags().String("ui", "auto", "progress interface for directory runs (auto|on|off)")
}

func runFix(cmd *cobra.Command, args []string) error {
	target := args[0]

	ruleList, err := cmd.Flags().GetString("rules")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	startDir := target
	if !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	cfg, err := config.Load(startDir)
	if err != nil {
		return err
	}

	registry := rules.Default()
	names := splitRuleList(ruleList)
	if names == nil {
		// без --rules действует выбор из манифеста
		if names, err = cfg.SelectRuleNames(registry.Names()); err != nil {
			return err
		}
	}
	selected, err := registry.Resolve(names)
	if err != nil {
		return err
	}

	if jobs <= 0 {
		jobs = cfg.Rewrite.Jobs
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Rules:          selected,
		DryRun:         dryRun,
		Jobs:           jobs,
		Timings:        showTimings,
	}
	if cfg.Cache.Enabled {
		opts.Cache = openCacheOrWarn(cmd)
	}

	if !info.IsDir() {
		res, err := driver.RewriteFile(cmd.Context(), target, opts)
		if err != nil {
			return fmt.Errorf("fix: %w", err)
		}
		return reportResults(cmd, []driver.RewriteResult{*res}, reportOpts{
			dryRun:  dryRun,
			quiet:   quiet,
			timings: showTimings,
		})
	}

	var results []driver.RewriteResult
	if shouldUseTUI(mode) && !quiet {
		results, err = runRewriteDirWithUI(cmd, "phix fix "+target, target, opts)
	} else {
		results, err = driver.RewriteDir(cmd.Context(), target, opts)
	}
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	return reportResults(cmd, results, reportOpts{
		dryRun:  dryRun,
		quiet:   quiet,
		timings: showTimings,
	})
}

// splitRuleList разбирает значение --rules; nil означает "флага не было".
func splitRuleList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(value, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

type reportOpts struct {
	dryRun  bool
	quiet   bool
	timings bool
}

// reportResults печатает сводку прогона в stdout и диагностику проблемных
// файлов в stderr. Ненулевой возврат — когда часть файлов не обработалась.
func reportResults(cmd *cobra.Command, results []driver.RewriteResult, opts reportOpts) error {
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No PHP files found.")
		return nil
	}

	printProblemBags(cmd, results)

	applied := make(map[string]int)
	var order []string
	var changedFiles, failed int
	for _, res := range results {
		if res.Changed {
			changedFiles++
		}
		if res.Bag != nil && res.Bag.HasErrors() {
			failed++
		}
		if res.Rules == nil {
			continue
		}
		for _, a := range res.Rules.Applied {
			if _, ok := applied[a.Name]; !ok {
				order = append(order, a.Name)
			}
			applied[a.Name] += a.Changes
		}
	}

	total := 0
	for _, n := range applied {
		total += n
	}
	if total > 0 {
		fmt.Fprintf(out, "Applied %d change(s):\n", total)
		for _, name := range order {
			fmt.Fprintf(out, "  %s: %d\n", name, applied[name])
		}
	}

	if changedFiles > 0 {
		if opts.dryRun {
			fmt.Fprintln(out, "Would update files:")
		} else {
			fmt.Fprintln(out, "Updated files:")
		}
		for _, res := range results {
			if !res.Changed {
				continue
			}
			changes := 0
			if res.Rules != nil {
				changes = res.Rules.Total()
			}
			fmt.Fprintf(out, "  %s (%d changes)\n", res.Path, changes)
		}
	}

	printSkippedRules(out, results)

	if total == 0 && changedFiles == 0 && failed == 0 {
		fmt.Fprintln(out, "No changes needed.")
	}

	if opts.timings && !opts.quiet {
		printRunTimings(out, results)
	}

	if failed > 0 {
		return fmt.Errorf("failed to process %d file(s)", failed)
	}
	return nil
}

// printProblemBags выводит диагностику файлов с ошибками или
// предупреждениями. Инфо-уровень (каждая сработавшая правка) остаётся в
// сводке и не шумит здесь.
func printProblemBags(cmd *cobra.Command, results []driver.RewriteResult) {
	useColor := colorEnabled(cmd, os.Stderr)
	for _, res := range results {
		if res.Bag == nil || (!res.Bag.HasErrors() && !res.Bag.HasWarnings()) {
			continue
		}
		res.Bag.Sort()
		if res.FileSet == nil {
			// файл даже не загрузился: диагностика без позиций
			for _, d := range res.Bag.Items() {
				fmt.Fprintf(os.Stderr, "%s: %s %s: %s\n", res.Path, d.Severity, d.Code.ID(), d.Message)
			}
			continue
		}
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:   useColor,
			Context: 2,
		})
	}
}

func printSkippedRules(out io.Writer, results []driver.RewriteResult) {
	type skip struct{ name, reason string }
	seen := make(map[skip]bool)
	var skips []skip
	for _, res := range results {
		if res.Rules == nil {
			continue
		}
		for _, s := range res.Rules.Skipped {
			k := skip{s.Name, s.Reason}
			if !seen[k] {
				seen[k] = true
				skips = append(skips, k)
			}
		}
	}
	if len(skips) == 0 {
		return
	}
	fmt.Fprintln(out, "Skipped rules:")
	for _, s := range skips {
		fmt.Fprintf(out, "  %s: %s\n", s.name, s.reason)
	}
}
