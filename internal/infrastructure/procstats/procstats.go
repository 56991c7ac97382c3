// Package procstats reports resource usage of the running process.
package procstats

import "errors"

// ErrUnsupported is returned on platforms without a usage reader.
var ErrUnsupported = errors.New("process stats unsupported on this platform")

// Reader implements port.ProcessStats.
type Reader struct{}

// New returns a process stats reader.
func New() *Reader {
	return &Reader{}
}

// ResidentMemoryBytes returns the peak resident set size of the process.
func (r *Reader) ResidentMemoryBytes() (uint64, error) {
	return maxRSS()
}
