//go:build !unix && !windows

package system

import "errors"

func release() (string, error) {
	return "", errors.New("release lookup not supported on this platform")
}
