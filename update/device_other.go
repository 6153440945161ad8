//go:build !unix

package update

// deviceID has no portable equivalent of unix.Stat_t.Dev outside unix
// platforms; every volume is grouped into a single bucket, which is
// correct (scans simply lose cross-volume parallelism) rather than
// degrading into incorrect grouping.
func deviceID(root string) (uint64, error) {
	return 0, nil
}
