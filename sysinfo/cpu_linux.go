//go:build linux

package sysinfo

import (
	"bufio"
	"errors"
	"os"
	"strings"
)

// platformCPULabel reads the model name from /proc/cpuinfo.
func platformCPULabel() (string, error) {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "model name") {
			if _, name, ok := strings.Cut(line, ":"); ok {
				return strings.TrimSpace(name), nil
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", errors.New("model name not present in /proc/cpuinfo")
}
