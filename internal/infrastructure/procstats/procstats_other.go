//go:build !unix

package procstats

func maxRSS() (uint64, error) {
	return 0, ErrUnsupported
}
