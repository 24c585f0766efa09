package errors

import (
	"net"
	"strconv"
	"strings"
	"unicode"
)

// maxPathLength caps export paths accepted on the command line.
const maxPathLength = 500

// ValidateRange reports OUT_OF_RANGE unless lo <= value <= hi.
func ValidateRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return New(ErrCodeOutOfRange, "%s must be between %d and %d, got %d", field, lo, hi, value)
	}
	return nil
}

// ValidateOutputPath rejects export paths that are empty, overlong, contain
// control characters or name a directory.
func ValidateOutputPath(path string) error {
	switch {
	case path == "":
		return New(ErrCodeInvalidPath, "output path is empty")
	case len(path) > maxPathLength:
		return New(ErrCodeInvalidPath, "output path exceeds %d characters", maxPathLength)
	case strings.IndexFunc(path, unicode.IsControl) >= 0:
		return New(ErrCodeInvalidPath, "output path contains control characters")
	case strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`):
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}
	return nil
}

// ValidateListenAddr accepts host:port with a numeric port; the host may be
// empty (":8080").
func ValidateListenAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid listen address %q", addr)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return New(ErrCodeInvalidInput, "listen address %q needs a port between 0 and 65535", addr)
	}
	return nil
}
