//go:build unix

package update

import (
	"golang.org/x/sys/unix"
)

// deviceID returns the storage device identifier for root's filesystem,
// obtained via unix.Stat_t.Dev (grounded on the teacher's own
// golang.org/x/sys dependency, previously used only for amd64 CPU-feature
// detection in simd/prefilter, repurposed here).
func deviceID(root string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(root, &st); err != nil {
		return 0, err
	}
	return uint64(st.Dev), nil
}
