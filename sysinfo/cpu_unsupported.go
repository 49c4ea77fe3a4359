//go:build !linux && !darwin && !windows

package sysinfo

import "errors"

func platformCPULabel() (string, error) {
	return "", errors.New("no CPU label strategy for this platform")
}
