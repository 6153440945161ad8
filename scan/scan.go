// Package scan implements the depth-first, natural-order directory walker
// that writes a database file (C7, SPEC_FULL.md §4.7).
package scan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/coregx/fsidx/dbfile"
)

// Event mirrors the scan-related members of the core event sink named in
// spec.md §6: Scanning, ScanningFinished, ScanningFailed, DbWriteError,
// ReplacingDatabaseFailed, RemovingTemporaryFileFailed,
// CreatingTemporaryFileFailed, ScanError. Run returns no value; whether the
// database was actually written is visible only through these events
// (EventScanningFinished on success).
type Event struct {
	Kind EventKind
	Root string
	Path string // EventScanError
	Err  error
}

type EventKind int

const (
	EventScanning EventKind = iota
	EventScanningFinished
	EventScanningFailed
	EventDbWriteError
	EventReplacingDatabaseFailed
	EventRemovingTemporaryFileFailed
	EventCreatingTemporaryFileFailed
	EventScanError
)

// EventSink receives scan events; its return value is ignored (matching
// spec.md §6: "a sink return of error is ignored for event delivery").
type EventSink func(Event)

// Run walks root depth-first in natural order and writes the resulting
// database to dbPath via an atomically-renamed temporary file
// (<dbPath>.~). Per-entry walk errors are reported as EventScanError and
// do not abort the scan; a failure to read the root itself is reported as
// EventScanningFailed and aborts this volume's scan.
func Run(root, dbPath string, settings dbfile.Settings, sink EventSink) {
	sink(Event{Kind: EventScanning, Root: root})

	tmpPath := dbPath + ".~"

	f, err := os.Create(tmpPath)
	if err != nil {
		sink(Event{Kind: EventCreatingTemporaryFileFailed, Root: root, Err: err})
		return
	}

	if err := dbfile.WriteHeader(f, dbfile.Header{Settings: settings}); err != nil {
		f.Close()
		os.Remove(tmpPath)
		sink(Event{Kind: EventDbWriteError, Root: root, Err: err})
		return
	}

	w := dbfile.NewWriter(f, settings)
	werr := walk(root, root, settings, w, sink)
	if werr == nil {
		werr = w.Flush()
	}
	closeErr := f.Close()
	if werr == nil {
		werr = closeErr
	}
	if werr != nil {
		os.Remove(tmpPath)
		sink(Event{Kind: EventDbWriteError, Root: root, Err: werr})
		return
	}

	if err := os.Rename(tmpPath, dbPath); err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			sink(Event{Kind: EventRemovingTemporaryFileFailed, Root: root, Err: rmErr})
		}
		sink(Event{Kind: EventReplacingDatabaseFailed, Root: root, Err: err})
		return
	}

	sink(Event{Kind: EventScanningFinished, Root: root})
}

// walk visits path (a directory) depth-first, writing dir entries before
// descending (pre-order), in natural order. Reading the top-level root is
// fatal for the scan; errors on nested entries are reported but do not
// abort the walk.
func walk(volumeRoot, path string, settings dbfile.Settings, w *dbfile.Writer, sink EventSink) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		if path == volumeRoot {
			sink(Event{Kind: EventScanningFailed, Root: volumeRoot, Err: err})
			return err
		}
		sink(Event{Kind: EventScanError, Root: volumeRoot, Path: path, Err: err})
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return naturalLess(entries[i].Name(), entries[j].Name())
	})

	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())

		info, err := entry.Info()
		if err != nil {
			sink(Event{Kind: EventScanError, Root: volumeRoot, Path: childPath, Err: err})
			continue
		}

		meta := dbfile.Metadata{}
		if settings == dbfile.WithFileSizes && !info.IsDir() {
			meta = dbfile.Metadata{Size: uint64(info.Size()), HasSize: true}
		}
		if err := w.Put([]byte(childPath), meta); err != nil {
			return err
		}

		if entry.IsDir() {
			if err := walk(volumeRoot, childPath, settings, w, sink); err != nil {
				return err
			}
		}
	}
	return nil
}
