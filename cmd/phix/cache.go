package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phix/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the token cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every cached token payload",
	Args:  cobra.NoArgs,
	RunE:  runCacheClean,
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}

func runCacheClean(cmd *cobra.Command, _ []string) error {
	c, err := driver.OpenCache("phix")
	if err != nil {
		return fmt.Errorf("cache clean: %w", err)
	}
	dir := c.Dir()
	if err := c.DropAll(); err != nil {
		return fmt.Errorf("cache clean: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", dir)
	return nil
}
