// Command navreport processes a directory tree of robot-simulation trial
// logs (log-dir/algorithm/difficulty/*.log), fuses each log's laser and
// position streams into an obstacle table, and writes per-trial plots, a
// cross-trial comparison page and a JSON run summary.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robolab-data/navlog.report/internal/config"
	"github.com/robolab-data/navlog.report/internal/fsutil"
	"github.com/robolab-data/navlog.report/internal/report"
	"github.com/robolab-data/navlog.report/internal/trial"
)

// RunSummary is the machine-readable result of one navreport run.
type RunSummary struct {
	RunID       string              `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	LogDir      string              `json:"log_dir"`
	Discovered  int                 `json:"discovered_logs"`
	Processed   int                 `json:"processed_logs"`
	Skipped     int                 `json:"skipped_logs"`
	Groups      []report.GroupStats `json:"groups"`
}

func main() {
	cfg := parseFlags()

	fsys := fsutil.OSFileSystem{}

	metas, err := trial.Discover(fsys, cfg.LogDir)
	if err != nil {
		log.Fatalf("discovery failed: %v", err)
	}
	if len(metas) == 0 {
		log.Fatalf("no trial logs found under %s", cfg.LogDir)
	}
	log.Printf("discovered %d trial logs under %s", len(metas), cfg.LogDir)

	runner := trial.NewRunner(fsys)
	runner.Workers = cfg.Workers
	runner.SkipBad = cfg.SkipBad
	runner.Targets = trial.NewTargetSelector(cfg.Difficulties...)

	logs, err := runner.ProcessAll(context.Background(), metas)
	if err != nil {
		if !cfg.SkipBad {
			log.Fatalf("processing failed: %v", err)
		}
		log.Printf("some logs were skipped: %v", err)
	}
	if len(logs) == 0 {
		log.Fatal("no logs processed successfully")
	}

	if err := fsutil.ResetDir(fsys, cfg.OutDir); err != nil {
		log.Fatalf("reset output dir: %v", err)
	}

	plotter := &report.Plotter{FS: fsys, OutDir: cfg.OutDir}
	for _, ld := range logs {
		if err := plotter.WriteLogPlots(ld); err != nil {
			log.Fatalf("plotting failed: %v", err)
		}
	}

	stats := report.CompareGroups(logs)
	if err := report.WriteComparisonPage(fsys, cfg.OutDir, stats); err != nil {
		log.Fatalf("comparison page failed: %v", err)
	}

	summary := RunSummary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		LogDir:      cfg.LogDir,
		Discovered:  len(metas),
		Processed:   len(logs),
		Skipped:     len(metas) - len(logs),
		Groups:      stats,
	}
	printSummary(summary)

	if cfg.SummaryJSON != "" {
		path := filepath.Join(cfg.OutDir, cfg.SummaryJSON)
		if err := exportJSON(fsys, path, summary); err != nil {
			log.Printf("warning: failed to export summary: %v", err)
		} else {
			log.Printf("summary exported to %s", path)
		}
	}
}

func parseFlags() config.Config {
	defaults := config.Default()

	configPath := flag.String("config", "", "optional YAML config file")
	logDir := flag.String("log-dir", defaults.LogDir, "directory containing the trial logs")
	outDir := flag.String("out", defaults.OutDir, "output directory for plots and summaries (reset every run)")
	workers := flag.Int("workers", defaults.Workers, "assembly workers (0 = one per CPU)")
	skipBad := flag.Bool("skip-bad", defaults.SkipBad, "skip logs that fail to parse instead of aborting")
	difficulties := flag.String("difficulties", "", "comma-separated extra recognized difficulty tags")
	summaryJSON := flag.String("json", defaults.SummaryJSON, "summary JSON file name inside the output dir (empty disables)")

	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-dir":
			cfg.LogDir = *logDir
		case "out":
			cfg.OutDir = *outDir
		case "workers":
			cfg.Workers = *workers
		case "skip-bad":
			cfg.SkipBad = *skipBad
		case "json":
			cfg.SummaryJSON = *summaryJSON
		case "difficulties":
			for _, d := range strings.Split(*difficulties, ",") {
				if d = strings.TrimSpace(d); d != "" {
					cfg.Difficulties = append(cfg.Difficulties, d)
				}
			}
		}
	})
	return cfg
}

func printSummary(s RunSummary) {
	fmt.Printf("\n=== Trial Comparison (run %s) ===\n", s.RunID)
	fmt.Printf("Logs: %d discovered, %d processed, %d skipped\n\n", s.Discovered, s.Processed, s.Skipped)
	fmt.Printf("%-20s %-12s %7s %14s %14s\n", "Algorithm", "Difficulty", "Trials", "Mean dur (s)", "Stddev (s)")
	for _, g := range s.Groups {
		fmt.Printf("%-20s %-12s %7d %14.2f %14.2f\n",
			g.Algorithm, g.Difficulty, g.Trials, g.MeanDuration, g.StddevDuration)
	}
	fmt.Println()
}

func exportJSON(fsys fsutil.FileSystem, path string, summary RunSummary) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
