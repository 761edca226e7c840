package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phix/internal/prof"
)

// setupProfiling inspects the persistent profiling flags and starts the
// requested collectors. It returns a cleanup function that is safe to
// call multiple times.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	cpuProfile, err := root.PersistentFlags().GetString("cpu-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	memProfile, err := root.PersistentFlags().GetString("mem-profile")
	if err != nil {
		return nil, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	tracePath, err := root.PersistentFlags().GetString("runtime-trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}

	session := &prof.Session{}
	if cpuProfile != "" {
		if err := session.StartCPU(cpuProfile); err != nil {
			return nil, err
		}
	}
	if tracePath != "" {
		if err := session.StartTrace(tracePath); err != nil {
			_ = session.Stop()
			return nil, err
		}
	}
	if memProfile != "" {
		session.PlanMem(memProfile)
	}

	cleaned := false
	cleanup := func() {
		if cleaned {
			return
		}
		cleaned = true
		if err := session.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "phix: profiling shutdown: %v\n", err)
		}
	}
	return cleanup, nil
}
