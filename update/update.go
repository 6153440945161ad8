// Package update implements the device-aware parallel scan scheduler (C8,
// SPEC_FULL.md §4.8).
package update

import (
	"sync"

	"github.com/coregx/fsidx/dbfile"
	"github.com/coregx/fsidx/scan"
)

// Volume is a scan target: a filesystem root to walk and the database
// file to (re)write.
type Volume struct {
	Root         string
	DatabasePath string
}

// Event is forwarded verbatim from scan.Event, with the Volume it came
// from attached so a single sink can distinguish concurrent workers.
type Event struct {
	scan.Event
	Volume Volume
}

// EventSink receives events from every worker, serialized through the
// MPSC channel in Run. Its return value is ignored, matching scan's sink
// contract.
type EventSink func(Event)

// Run groups volumes by storage device id, runs one worker goroutine per
// group (each scanning its volumes sequentially via scan.Run), and
// funnels every worker's events through a shared buffered channel to
// sink. Run returns only after every worker has joined.
func Run(volumes []Volume, settings dbfile.Settings, sink EventSink) {
	groups := groupByDevice(volumes)

	events := make(chan Event, 64)
	var wg sync.WaitGroup
	for _, group := range groups {
		wg.Add(1)
		go func(group []Volume) {
			defer wg.Done()
			for _, v := range group {
				scan.Run(v.Root, v.DatabasePath, settings, func(ev scan.Event) {
					events <- Event{Event: ev, Volume: v}
				})
			}
		}(group)
	}

	done := make(chan struct{})
	go func() {
		for ev := range events {
			sink(ev)
		}
		close(done)
	}()

	wg.Wait()
	close(events)
	<-done
}

// groupByDevice partitions volumes by the storage device id of their
// root, preserving input order within each group and across groups'
// first appearance.
func groupByDevice(volumes []Volume) [][]Volume {
	index := make(map[uint64]int)
	var groups [][]Volume
	for _, v := range volumes {
		id, err := deviceID(v.Root)
		if err != nil {
			// A root that cannot be stat'd yet (not mounted, permission
			// denied) still gets its own scan attempt; scan.Run will
			// surface the failure as EventScanningFailed.
			groups = append(groups, []Volume{v})
			continue
		}
		if i, ok := index[id]; ok {
			groups[i] = append(groups[i], v)
			continue
		}
		index[id] = len(groups)
		groups = append(groups, []Volume{v})
	}
	return groups
}
