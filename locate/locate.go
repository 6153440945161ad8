// Package locate implements the per-volume compile-once, stream-evaluate-
// emit driver (C6, SPEC_FULL.md §4.6).
package locate

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"syscall"

	"github.com/coregx/fsidx/dbfile"
	"github.com/coregx/fsidx/filter"
)

// ErrAborted is returned when the caller's abort flag was observed set.
var ErrAborted = errors.New("locate: aborted")

// ErrBrokenPipe is returned when the sink reported a broken-pipe error;
// Run stops immediately without emitting further error events.
var ErrBrokenPipe = errors.New("locate: broken pipe")

// SinkError wraps any other error returned by the event sink.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string { return fmt.Sprintf("locate: sink error: %v", e.Err) }
func (e *SinkError) Unwrap() error { return e.Err }

// Volume is the minimal volume descriptor Run needs: a root folder label
// for Searching/SearchingFinished events, and the database file path to
// open.
type Volume struct {
	Root         string
	DatabasePath string
}

// Event is delivered to the caller's sink; only the fields annotated with
// an event's Kind below are meaningful for it.
type Event struct {
	Kind EventKind

	Path     string         // EventEntry
	Metadata dbfile.Metadata // EventEntry
	Root     string         // EventSearching, EventSearchingFinished, EventSearchingFailed
	Err      error          // EventSearchingFailed
}

// EventKind enumerates the events core API surface names in spec.md §6.
type EventKind int

const (
	EventSearching EventKind = iota
	EventSearchingFinished
	EventSearchingFailed
	EventEntry
	EventFinished
)

// EventSink receives locate events. A returned error other than a
// broken-pipe condition is reported back to the caller of Run as a
// *SinkError and stops the run.
type EventSink func(Event) error

// Options configures Run beyond the filter itself.
type Options struct {
	// ContinueOnVolumeError makes Run keep trying subsequent volumes after
	// a failure to open or read one volume's database instead of stopping the whole
	// call. Default true (see SPEC_FULL.md §9, grounded on
	// cli/src/locate.rs's per-volume try/continue loop).
	ContinueOnVolumeError bool
}

// DefaultOptions matches the original CLI's per-volume continuation
// behavior.
func DefaultOptions() Options { return Options{ContinueOnVolumeError: true} }

// Run compiles tokens once against cfg, then evaluates it against every
// volume's database in turn. filter.ErrTrivialQuery is treated as a
// successful no-op across all volumes.
func Run(volumes []Volume, tokens []filter.Token, cfg filter.Config, abort *atomic.Bool, opts Options, sink EventSink) error {
	prog, err := filter.Compile(tokens, cfg)
	if err != nil {
		if errors.Is(err, filter.ErrTrivialQuery) {
			prog = nil
		} else {
			return err
		}
	}

	for _, v := range volumes {
		if err := runVolume(v, prog, abort, sink); err != nil {
			var sinkErr *SinkError
			if errors.Is(err, ErrBrokenPipe) || errors.Is(err, ErrAborted) || errors.As(err, &sinkErr) {
				return err
			}
			sink(Event{Kind: EventSearchingFailed, Root: v.Root, Err: err})
			if !opts.ContinueOnVolumeError {
				return err
			}
		}
	}
	return emit(sink, Event{Kind: EventFinished})
}

func runVolume(v Volume, prog *filter.Program, abort *atomic.Bool, sink EventSink) error {
	if err := emit(sink, Event{Kind: EventSearching, Root: v.Root}); err != nil {
		return err
	}

	r, _, err := dbfile.Open(v.DatabasePath)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		if abort != nil && abort.Load() {
			return ErrAborted
		}
		path, meta, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if prog == nil || prog.Apply(string(path)) {
			if err := emit(sink, Event{Kind: EventEntry, Path: string(path), Metadata: meta}); err != nil {
				return err
			}
		}
	}

	return emit(sink, Event{Kind: EventSearchingFinished, Root: v.Root})
}

// emit calls sink and classifies its error: nil passes through, a
// broken-pipe condition becomes ErrBrokenPipe, anything else is wrapped in
// *SinkError.
func emit(sink EventSink, ev Event) error {
	err := sink(ev)
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.EPIPE) {
		return ErrBrokenPipe
	}
	return &SinkError{Err: err}
}
