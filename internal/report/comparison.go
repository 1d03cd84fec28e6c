package report

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	"github.com/robolab-data/navlog.report/internal/fsutil"
	"github.com/robolab-data/navlog.report/internal/trial"
)

// GroupStats summarises the trials of one algorithm × difficulty bucket.
// Duration is the time span of a trial's position stream, i.e. how long
// the robot took to finish (or give up).
type GroupStats struct {
	Algorithm         string  `json:"algorithm"`
	Difficulty        string  `json:"difficulty"`
	Trials            int     `json:"trials"`
	MeanDuration      float64 `json:"mean_duration_secs"`
	StddevDuration    float64 `json:"stddev_duration_secs"`
	MeanNearestStop   float64 `json:"mean_final_nearest_obstacle_m"`
	MeanFinalDistance float64 `json:"mean_final_target_distance_m"`
}

// CompareGroups computes per-bucket duration and outcome statistics over
// a complete partition of the run's records. The result is sorted by
// algorithm then difficulty.
func CompareGroups(logs []*trial.LogData) []GroupStats {
	var out []GroupStats
	for algorithm, byDifficulty := range trial.GroupByAlgorithmAndDifficulty(logs) {
		for difficulty, group := range byDifficulty {
			durations := make([]float64, 0, len(group))
			finalNearest := make([]float64, 0, len(group))
			finalDistance := make([]float64, 0, len(group))
			for _, ld := range group {
				durations = append(durations, ld.Position.Duration())
				if n := ld.Obstacles.Len(); n > 0 {
					finalNearest = append(finalNearest, ld.Obstacles.Samples[n-1].DistanceToNearest)
				}
				if n := ld.Position.Len(); n > 0 {
					finalDistance = append(finalDistance, ld.Position.Samples[n-1].DistanceToTarget)
				}
			}
			out = append(out, GroupStats{
				Algorithm:         algorithm,
				Difficulty:        difficulty,
				Trials:            len(group),
				MeanDuration:      meanOrZero(durations),
				StddevDuration:    stddevOrZero(durations),
				MeanNearestStop:   meanOrZero(finalNearest),
				MeanFinalDistance: meanOrZero(finalDistance),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Algorithm != out[j].Algorithm {
			return out[i].Algorithm < out[j].Algorithm
		}
		return out[i].Difficulty < out[j].Difficulty
	})
	return out
}

func meanOrZero(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

func stddevOrZero(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// WriteComparisonPage renders the duration comparison as an HTML page of
// bar charts, one chart per difficulty with the algorithms side by side.
func WriteComparisonPage(fsys fsutil.FileSystem, outDir string, stats []GroupStats) error {
	if err := fsys.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("comparison page: %w", err)
	}

	// Stable axis ordering across charts.
	algorithms := uniqueSorted(stats, func(s GroupStats) string { return s.Algorithm })
	difficulties := uniqueSorted(stats, func(s GroupStats) string { return s.Difficulty })

	byKey := make(map[string]GroupStats, len(stats))
	for _, s := range stats {
		byKey[s.Algorithm+"\x00"+s.Difficulty] = s
	}

	page := components.NewPage()
	page.PageTitle = "Trial time comparison"
	for _, difficulty := range difficulties {
		bars := make([]opts.BarData, len(algorithms))
		for i, algorithm := range algorithms {
			s := byKey[algorithm+"\x00"+difficulty]
			bars[i] = opts.BarData{Value: s.MeanDuration}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
			charts.WithTitleOpts(opts.Title{
				Title:    fmt.Sprintf("Mean trial duration — %s", difficulty),
				Subtitle: "seconds, lower is better",
			}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		)
		bar.SetXAxis(algorithms).
			AddSeries("mean duration", bars,
				charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
			)
		page.AddCharts(bar)
	}

	f, err := fsys.Create(filepath.Join(outDir, "comparison.html"))
	if err != nil {
		return fmt.Errorf("comparison page: %w", err)
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("comparison page: render: %w", err)
	}
	return f.Close()
}

func uniqueSorted(stats []GroupStats, key func(GroupStats) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range stats {
		k := key(s)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
