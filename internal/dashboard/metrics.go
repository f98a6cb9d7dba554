package dashboard

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemMetrics is one snapshot of the machine readings shown on the
// status pane.
type SystemMetrics struct {
	Hostname        string
	Platform        string
	PlatformVersion string
	Uptime          time.Duration

	CPUPercent float64

	MemTotal   uint64
	MemUsed    uint64
	MemPercent float64

	DiskTotal   uint64
	DiskFree    uint64
	DiskUsed    uint64
	DiskPercent float64
}

// CollectMetrics gathers a snapshot from gopsutil. CPU percentage is
// measured against the previous call, so the first reading may be zero.
func CollectMetrics() (*SystemMetrics, error) {
	m := &SystemMetrics{}

	info, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}
	m.Hostname = info.Hostname
	m.Platform = info.Platform
	m.PlatformVersion = info.PlatformVersion
	m.Uptime = time.Duration(info.Uptime) * time.Second

	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		m.CPUPercent = pcts[0]
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}
	m.MemTotal = vm.Total
	m.MemUsed = vm.Used
	m.MemPercent = vm.UsedPercent

	du, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("disk usage: %w", err)
	}
	m.DiskTotal = du.Total
	m.DiskFree = du.Free
	m.DiskUsed = du.Used
	m.DiskPercent = du.UsedPercent

	return m, nil
}

// formatUptime renders an uptime as "3d 4h 12m".
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
