package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"cinematch/internal/benchmark"
	"cinematch/internal/config"
	"cinematch/internal/data"
	"cinematch/pkg/styles"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file")
		dataDir    = flag.String("data", "", "dataset directory (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		styles.PrintFS("error", "config: %v", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	// builds are timed, keep the log quiet
	logger := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)

	movies, ratings, err := data.LoadDir(cfg.DataDir)
	if err != nil {
		styles.PrintFS("error", "loading dataset: %v", err)
		os.Exit(1)
	}
	styles.PrintFS("info", "dataset: %d movie rows, %d rating events", len(movies), len(ratings))

	rows, best, err := benchmark.SweepWorkers(movies, ratings, logger)
	if err != nil {
		styles.PrintFS("error", "sweep: %v", err)
		os.Exit(1)
	}

	styles.PrintFS("info", "profile build worker sweep:")
	fmt.Print(styles.BenchTable(rows))
	styles.PrintFS("success", "best worker count: %d", best)

	host := benchmark.CollectHostStats()
	styles.PrintFS("info", "host: %s, %d cores, %.1f%% RAM used (%d MiB total)",
		host.Platform, host.CPUCores, host.UsedRAMPct, host.TotalRAM/(1<<20))
}
