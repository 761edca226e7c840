package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Session owns the profiling outputs of one command run. Start it from
// CLI flags, defer Stop: it stops collectors in reverse order and writes
// the heap profile last, when allocations have settled.
type Session struct {
	cpu     *os.File
	traceF  *os.File
	memPath string
}

// StartCPU enables CPU profiling and writes samples to the provided path.
func (s *Session) StartCPU(path string) error {
	if s.cpu != nil {
		return errors.New("cpu profile already running")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("cpu profile: %w", err)
	}
	s.cpu = f
	return nil
}

// StartTrace writes runtime trace data to the provided path.
func (s *Session) StartTrace(path string) error {
	if s.traceF != nil {
		return errors.New("runtime trace already running")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("runtime trace: %w", err)
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("runtime trace: %w", err)
	}
	s.traceF = f
	return nil
}

// PlanMem schedules a heap profile to be captured during Stop.
func (s *Session) PlanMem(path string) {
	s.memPath = path
}

// Stop shuts down active collectors and captures the planned heap
// profile. Safe to call multiple times and on an empty session.
func (s *Session) Stop() error {
	var errs []error

	if s.traceF != nil {
		trace.Stop()
		if err := s.traceF.Close(); err != nil {
			errs = append(errs, fmt.Errorf("runtime trace: %w", err))
		}
		s.traceF = nil
	}
	if s.cpu != nil {
		pprof.StopCPUProfile()
		if err := s.cpu.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cpu profile: %w", err))
		}
		s.cpu = nil
	}
	if s.memPath != "" {
		if err := writeHeap(s.memPath); err != nil {
			errs = append(errs, err)
		}
		s.memPath = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mem profile: %w", err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("mem profile: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("mem profile: %w", err)
	}
	return nil
}
