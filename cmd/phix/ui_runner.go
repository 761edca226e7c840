package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"phix/internal/driver"
	"phix/internal/ui"
)

type rewriteOutcome struct {
	results []driver.RewriteResult
	err     error
}

// runRewriteDirWithUI запускает RewriteDir в фоне и рисует его прогресс
// через Bubble Tea, пока события идут по каналу.
func runRewriteDirWithUI(cmd *cobra.Command, title, dir string, opts driver.Options) ([]driver.RewriteResult, error) {
	sink := driver.NewChannelSink(256)
	outcomeCh := make(chan rewriteOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = sink
		results, err := driver.RewriteDir(cmd.Context(), dir, optsCopy)
		outcomeCh <- rewriteOutcome{results: results, err: err}
		sink.Close()
	}()

	model := ui.NewProgressModel(title, sink.C)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
