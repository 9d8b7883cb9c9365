//go:build linux || darwin

package benchrun

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// maxRSSBytes returns the process's peak resident set size.
func maxRSSBytes() (uint64, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	rss := uint64(ru.Maxrss)
	// getrusage reports kilobytes on Linux, bytes on Darwin.
	if runtime.GOOS == "linux" {
		rss *= 1024
	}
	return rss, true
}
