// Package benchmark measures how the profile build scales with worker
// count and reports what kind of host the numbers came from.
package benchmark

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"cinematch/internal/engine"
	"cinematch/pkg/types"
)

// SweepWorkers rebuilds the model with 1..4*NumCPU workers and times each
// run against the single-worker baseline. It returns the rows and the
// worker count of the fastest run.
func SweepWorkers(movies []types.MovieRow, ratings []types.Rating, logger zerolog.Logger) ([]types.BenchRow, int, error) {
	cpus := runtime.NumCPU()
	runtime.GOMAXPROCS(cpus)
	maxWorkers := 4 * cpus

	build := func(workers int) error {
		_, err := engine.Build(movies, ratings, engine.BuildOptions{Workers: workers}, logger)
		return err
	}

	start := time.Now()
	if err := build(1); err != nil {
		return nil, 0, err
	}
	baseMs := time.Since(start).Milliseconds()
	if baseMs == 0 {
		baseMs = 1
	}

	rows := make([]types.BenchRow, 0, maxWorkers)
	rows = append(rows, types.BenchRow{Workers: 1, Millis: baseMs, Speedup: 1.0})

	bestIdx := 0
	bestMs := baseMs
	for w := 2; w <= maxWorkers; w++ {
		t0 := time.Now()
		if err := build(w); err != nil {
			return nil, 0, err
		}
		ms := time.Since(t0).Milliseconds()
		if ms == 0 {
			ms = 1
		}
		rows = append(rows, types.BenchRow{Workers: w, Millis: ms, Speedup: float64(baseMs) / float64(ms)})
		if ms < bestMs {
			bestMs = ms
			bestIdx = len(rows) - 1
		}
	}
	return rows, rows[bestIdx].Workers, nil
}

// HostStats is a snapshot of the process and the host it runs on.
type HostStats struct {
	NumGoroutine int       `json:"num_goroutine"`
	Alloc        uint64    `json:"alloc_bytes"`
	Sys          uint64    `json:"sys_bytes"`
	NumGC        uint32    `json:"num_gc"`
	TotalRAM     uint64    `json:"total_ram"`
	AvailableRAM uint64    `json:"available_ram"`
	UsedRAMPct   float64   `json:"used_ram_percent"`
	CPUCores     int       `json:"cpu_cores"`
	CPUUsagePct  []float64 `json:"cpu_usage_percent"`
	Platform     string    `json:"platform"`
}

// CollectHostStats gathers process and host metrics. Host probes that fail
// leave their fields zeroed; the snapshot is best-effort.
func CollectHostStats() HostStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	stats := HostStats{
		NumGoroutine: runtime.NumGoroutine(),
		Alloc:        memStats.Alloc,
		Sys:          memStats.Sys,
		NumGC:        memStats.NumGC,
		CPUCores:     runtime.NumCPU(),
	}

	if vMem, err := mem.VirtualMemory(); err == nil {
		stats.TotalRAM = vMem.Total
		stats.AvailableRAM = vMem.Available
		stats.UsedRAMPct = vMem.UsedPercent
	}
	if pct, err := cpu.Percent(0, true); err == nil {
		stats.CPUUsagePct = pct
	}
	if info, err := host.Info(); err == nil {
		stats.Platform = info.Platform + " " + info.PlatformVersion
	}
	return stats
}
