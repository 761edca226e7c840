package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"phix/internal/config"
	"phix/internal/diagfmt"
	"phix/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.php|->",
	Short: "Dump the token stream of a PHP source file",
	Long: `Tokenize splits a PHP source file into its raw token stream and prints
it. Concatenating the token texts reproduces the file exactly. Pass -
to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("no-cache", false, "bypass the token cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	opts := driver.Options{MaxDiagnostics: maxDiagnostics}

	var result *driver.TokenizeResult
	if target == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		result = driver.TokenizeSource("<stdin>", src, opts)
	} else {
		cfg, err := config.Load(filepath.Dir(target))
		if err != nil {
			return err
		}
		if cfg.Cache.Enabled && !noCache {
			opts.Cache = openCacheOrWarn(cmd)
		}
		result, err = driver.TokenizeFile(target, opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Диагностика уходит в stderr, токены в stdout. В json-режиме
	// обе стороны должны быть машиночитаемыми.
	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		if format == "json" {
			if err := diagfmt.JSON(os.Stderr, result.Bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return fmt.Errorf("encode diagnostics: %w", err)
			}
		} else {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:   colorEnabled(cmd, os.Stderr),
				Context: 2,
			})
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet, result.File.ID)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.File.ID)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// openCacheOrWarn открывает дисковый кэш токенов; неудача не валит
// команду, а лишь отключает кэширование.
func openCacheOrWarn(cmd *cobra.Command) *driver.Cache {
	c, err := driver.OpenCache("phix")
	if err != nil {
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintf(os.Stderr, "phix: token cache unavailable: %v\n", err)
		}
		return nil
	}
	return c
}
