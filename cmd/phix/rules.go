package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"phix/internal/config"
	"phix/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered rewrite rules",
	Long: `Rules prints every registered rewrite rule in execution order, marking
the ones the current phix.toml selection enables.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

var (
	ruleOnPaint  = color.New(color.FgGreen, color.Bold)
	ruleOffPaint = color.New(color.Faint)
)

func runRules(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	registry := rules.Default()
	selectedNames, err := cfg.SelectRuleNames(registry.Names())
	if err != nil {
		return err
	}
	enabled := make(map[string]bool, len(selectedNames))
	for _, name := range selectedNames {
		enabled[name] = true
	}

	out := cmd.OutOrStdout()
	for _, rule := range registry.All() {
		name := rule.Name()
		if enabled[name] {
			fmt.Fprintf(out, "  %s %-14s %s\n", ruleOnPaint.Sprint("on "), name, rule.Description())
		} else {
			fmt.Fprintf(out, "  %s %-14s %s\n", ruleOffPaint.Sprint("off"), name, rule.Description())
		}
	}
	if cfg.Path != "" {
		fmt.Fprintf(out, "\nselection from %s\n", cfg.Path)
	}
	return nil
}
