package middleware

import (
	"log"
	"strconv"
	"time"

	"api/metrics"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
)

// CollectSystemMetrics periodically samples host CPU, disk and load
// metrics and exposes them through the metrics registry.
func CollectSystemMetrics(interval time.Duration) {
	go func() {
		for {
			sampleCPU()
			sampleDisk()
			sampleLoad()
			time.Sleep(interval)
		}
	}()
}

func sampleCPU() {
	percentages, err := cpu.Percent(0, true)
	if err != nil {
		log.Printf("Failed to sample CPU usage: %v", err)
		return
	}
	for i, pct := range percentages {
		metrics.SystemCPUUsage.WithLabelValues(strconv.Itoa(i)).Set(pct)
	}
}

func sampleDisk() {
	partitions, err := disk.Partitions(false)
	if err != nil {
		log.Printf("Failed to list disk partitions: %v", err)
		return
	}
	for _, partition := range partitions {
		usage, err := disk.Usage(partition.Mountpoint)
		if err != nil {
			continue
		}
		metrics.SystemDiskUsage.WithLabelValues(partition.Device, partition.Mountpoint, "used").Set(float64(usage.Used))
		metrics.SystemDiskUsage.WithLabelValues(partition.Device, partition.Mountpoint, "free").Set(float64(usage.Free))
		metrics.SystemDiskUsage.WithLabelValues(partition.Device, partition.Mountpoint, "total").Set(float64(usage.Total))
	}
}

func sampleLoad() {
	avg, err := load.Avg()
	if err != nil {
		log.Printf("Failed to sample load average: %v", err)
		return
	}
	metrics.SystemLoadAverage.WithLabelValues("1min").Set(avg.Load1)
	metrics.SystemLoadAverage.WithLabelValues("5min").Set(avg.Load5)
	metrics.SystemLoadAverage.WithLabelValues("15min").Set(avg.Load15)
}
