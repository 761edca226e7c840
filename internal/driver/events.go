package driver

import "time"

// Stage describes one phase of processing a file.
type Stage string

const (
	// StageTokenize covers load plus lexing.
	StageTokenize Stage = "tokenize"
	// StageRules covers running the rule pipeline over the stream.
	StageRules Stage = "rules"
	// StageRender covers regenerating source text from the stream.
	StageRender Stage = "render"
	// StageWrite covers comparing and writing the file back.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates processing finished.
	StatusDone Status = "done"
	// StatusError indicates processing failed.
	StatusError Status = "error"
)

// Event reports progress for one file, or for the whole run when File
// is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
	// Changed is set on the final done event when the rewrite
	// produced different output.
	Changed bool
}

// ProgressSink consumes progress events. OnEvent must be safe for
// concurrent calls: the rewrite driver reports from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel for a UI loop, dropping
// events when the receiver lags so workers never block on paint speed.
type ChannelSink struct {
	C chan Event
}

// NewChannelSink returns a sink buffering up to buf events.
func NewChannelSink(buf int) *ChannelSink {
	return &ChannelSink{C: make(chan Event, buf)}
}

// OnEvent implements ProgressSink.
func (s *ChannelSink) OnEvent(ev Event) {
	select {
	case s.C <- ev:
	default:
	}
}

// Close closes the event channel. Call it only after the run producing
// events has returned.
func (s *ChannelSink) Close() { close(s.C) }

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
