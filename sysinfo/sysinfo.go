// Package sysinfo captures static facts about the host the benchmark
// runs on.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemInfo describes the host at capture time. Fields that could
// not be determined carry generic fallback values rather than
// signalling an error.
type SystemInfo struct {
	CPULabel       string  `json:"cpu"`
	Architecture   string  `json:"machine"`
	OSName         string  `json:"os"`
	RAMTotalGB     float64 `json:"ram_total_gb"`
	RAMAvailableGB float64 `json:"ram_available_gb"`
	Timestamp      string  `json:"timestamp"`
}

const bytesPerGB = 1024 * 1024 * 1024

// Capture takes a snapshot of the host. It never fails: every field
// degrades independently to a placeholder, so it is safe to call from
// any point in a run.
func Capture() SystemInfo {
	info := SystemInfo{
		CPULabel:     cpuLabel(),
		Architecture: runtime.GOARCH,
		OSName:       runtime.GOOS,
		Timestamp:    time.Now().Format(time.ANSIC),
	}

	if hi, err := host.Info(); err == nil {
		if hi.KernelArch != "" {
			info.Architecture = hi.KernelArch
		}

		if hi.OS != "" {
			info.OSName = hi.OS
			if hi.KernelVersion != "" {
				info.OSName = fmt.Sprintf("%s %s", hi.OS, hi.KernelVersion)
			}
		}
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.RAMTotalGB = float64(vm.Total) / bytesPerGB
		info.RAMAvailableGB = float64(vm.Available) / bytesPerGB
	}

	return info
}

// cpuLabel resolves a human-readable CPU name. It tries gopsutil
// first, then the OS-specific strategy for the current platform, and
// settles for a generic architecture label when both come up empty.
func cpuLabel() string {
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		if name := strings.TrimSpace(infos[0].ModelName); name != "" {
			return name
		}
	}

	if name, err := platformCPULabel(); err == nil && name != "" {
		return name
	}

	return runtime.GOARCH + " processor"
}
