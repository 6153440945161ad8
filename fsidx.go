// Package fsidx provides fast file-name search across large, possibly
// offline volumes.
//
// fsidx maintains one on-disk database per volume: a compact, delta-
// encoded stream of pathnames built by Update, and searched by Locate
// using a small token-driven filter language supporting case sensitivity,
// ordering, scope (whole path vs. last element), smart-space equivalence,
// word boundaries, and shell-style globs.
//
// Update and Locate are the only two entry points embedders need; the
// supporting packages (codec, dbfile, filter, locate, scan, update) are
// composable independently but fsidx re-exports what a typical embedder
// wants so `go doc github.com/coregx/fsidx` reads as one cohesive API,
// mirroring how github.com/coregx/coregex's root package wraps meta/nfa.
package fsidx

import (
	"sync/atomic"

	"github.com/coregx/fsidx/dbfile"
	"github.com/coregx/fsidx/filter"
	"github.com/coregx/fsidx/locate"
	"github.com/coregx/fsidx/scan"
	"github.com/coregx/fsidx/update"
)

// Settings selects whether the database records file sizes alongside
// pathnames.
type Settings = dbfile.Settings

const (
	FileNamesOnly = dbfile.FileNamesOnly
	WithFileSizes = dbfile.WithFileSizes
)

// Metadata is the optional per-entry size decoded from a database record.
type Metadata = dbfile.Metadata

// Volume describes one scan/search target: a filesystem root and the
// database file that indexes it.
type Volume struct {
	Root         string
	DatabasePath string
}

// Filter query vocabulary, re-exported from package filter.
type (
	Token  = filter.Token
	Mode   = filter.Mode
	Config = filter.Config
)

const (
	Auto = filter.Auto
	Plain = filter.Plain
	Glob  = filter.Glob
)

var (
	Text             = filter.Text
	WithModeToken    = filter.WithMode
	CaseSensitive    = filter.CaseSensitive
	SameOrder        = filter.SameOrder
	LastElement      = filter.LastElement
	SmartSpaces      = filter.SmartSpaces
	LiteralSeparator = filter.LiteralSeparator
	WordBoundary     = filter.WordBoundary
	AnyOrder         = filter.AnyOrder
	WholePath        = filter.WholePath
	DefaultConfig    = filter.DefaultConfig
)

var ErrTrivialQuery = filter.ErrTrivialQuery

// UpdateEvent and UpdateEventSink are re-exported from package update.
// UpdateEvent embeds a scan.Event, so its Kind field is a scan.EventKind.
type (
	UpdateEvent     = update.Event
	UpdateEventKind = scan.EventKind
	UpdateEventSink = update.EventSink
)

const (
	EventScanning                    = scan.EventScanning
	EventScanningFinished            = scan.EventScanningFinished
	EventScanningFailed              = scan.EventScanningFailed
	EventDbWriteError                = scan.EventDbWriteError
	EventReplacingDatabaseFailed     = scan.EventReplacingDatabaseFailed
	EventRemovingTemporaryFileFailed = scan.EventRemovingTemporaryFileFailed
	EventCreatingTemporaryFileFailed = scan.EventCreatingTemporaryFileFailed
	EventScanError                   = scan.EventScanError
)

// LocateEvent, LocateEventKind, and LocateEventSink are re-exported from
// package locate.
type (
	LocateEvent     = locate.Event
	LocateEventKind = locate.EventKind
	LocateEventSink = locate.EventSink
)

const (
	EventSearching         = locate.EventSearching
	EventSearchingFinished = locate.EventSearchingFinished
	EventSearchingFailed   = locate.EventSearchingFailed
	EventEntry             = locate.EventEntry
	EventFinished          = locate.EventFinished
)

var (
	ErrAborted    = locate.ErrAborted
	ErrBrokenPipe = locate.ErrBrokenPipe
)

// Update scans every volume's root and (re)writes its database, grouping
// volumes by storage device so that volumes sharing a physical device are
// scanned sequentially while distinct devices are scanned in parallel
// (see package update). Update never returns an error: every failure is
// reported through sink as an event, so partial success across volumes is
// observable.
func Update(volumes []Volume, settings Settings, sink UpdateEventSink) {
	update.Run(toUpdateVolumes(volumes), settings, sink)
}

// Locate compiles tokens once against cfg and evaluates it against every
// volume's database in turn, emitting Entry events for matches. abort may
// be nil; if non-nil it is polled once per database record for cooperative
// cancellation.
func Locate(volumes []Volume, tokens []Token, cfg Config, abort *atomic.Bool, sink LocateEventSink) error {
	return locate.Run(toLocateVolumes(volumes), tokens, cfg, abort, locate.DefaultOptions(), sink)
}

func toUpdateVolumes(volumes []Volume) []update.Volume {
	out := make([]update.Volume, len(volumes))
	for i, v := range volumes {
		out[i] = update.Volume{Root: v.Root, DatabasePath: v.DatabasePath}
	}
	return out
}

func toLocateVolumes(volumes []Volume) []locate.Volume {
	out := make([]locate.Volume, len(volumes))
	for i, v := range volumes {
		out[i] = locate.Volume{Root: v.Root, DatabasePath: v.DatabasePath}
	}
	return out
}
