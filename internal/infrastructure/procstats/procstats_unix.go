//go:build unix

package procstats

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

func maxRSS() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("getrusage: %w", err)
	}
	if ru.Maxrss < 0 {
		return 0, nil
	}
	rss := uint64(ru.Maxrss)
	// Darwin reports bytes, everything else kilobytes.
	if runtime.GOOS != "darwin" && runtime.GOOS != "ios" {
		rss *= 1024
	}
	return rss, nil
}
