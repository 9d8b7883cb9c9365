//go:build !linux && !darwin

package benchrun

// maxRSSBytes is unavailable on this platform.
func maxRSSBytes() (uint64, bool) {
	return 0, false
}
