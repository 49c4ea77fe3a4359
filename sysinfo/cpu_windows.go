//go:build windows

package sysinfo

import (
	"fmt"
	"os/exec"
	"strings"
)

// platformCPULabel asks wmic for the CPU name. The first output line
// is the column header.
func platformCPULabel() (string, error) {
	out, err := exec.Command("wmic", "cpu", "get", "name").Output()
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) < 2 {
		return "", fmt.Errorf("unexpected wmic output: %q", string(out))
	}

	return strings.TrimSpace(lines[1]), nil
}
