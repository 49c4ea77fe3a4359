//go:build darwin

package sysinfo

import (
	"os/exec"
	"strings"
)

// platformCPULabel asks sysctl for the CPU brand string.
func platformCPULabel() (string, error) {
	out, err := exec.Command(
		"sysctl", "-n", "machdep.cpu.brand_string",
	).Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
