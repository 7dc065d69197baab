//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import "errors"

var errUnsupported = errors.New("clipboard image operations are not supported on this platform")

// WritePNG is unsupported on this platform.
func WritePNG([]byte) error { return errUnsupported }

// ReadPNG is unsupported on this platform.
func ReadPNG() ([]byte, error) { return nil, errUnsupported }
