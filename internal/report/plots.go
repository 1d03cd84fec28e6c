// Package report renders the per-trial plots, the cross-trial comparison
// dashboard and the machine-readable run summary.
package report

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/robolab-data/navlog.report/internal/fsutil"
	"github.com/robolab-data/navlog.report/internal/playerlog"
	"github.com/robolab-data/navlog.report/internal/trial"
)

// maxObstaclePoints caps the obstacle scatter per trajectory plot; full
// logs carry hundreds of beams per scan and the PNG becomes unreadable
// (and slow) well before that.
const maxObstaclePoints = 20000

// Plotter writes the per-trial PNG plots under OutDir, one directory per
// trial: OutDir/algorithm/difficulty/log-<index>/.
type Plotter struct {
	FS     fsutil.FileSystem
	OutDir string
}

// WriteLogPlots renders the four standard figures for one trial:
// world-frame trajectory with obstacle scatter, speed, distance to
// target and nearest-obstacle distance over time.
func (p *Plotter) WriteLogPlots(ld *trial.LogData) error {
	md := ld.Metadata
	dir := filepath.Join(p.OutDir, md.Algorithm, md.Difficulty, fmt.Sprintf("log-%d", md.Index))
	if err := p.FS.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("plots for %s: %w", md, err)
	}

	figures := []struct {
		name  string
		build func(*trial.LogData) (*plot.Plot, error)
	}{
		{"trajectory.png", trajectoryPlot},
		{"speed.png", speedPlot},
		{"target_distance.png", targetDistancePlot},
		{"nearest_obstacle.png", nearestObstaclePlot},
	}
	for _, fig := range figures {
		pl, err := fig.build(ld)
		if err != nil {
			return fmt.Errorf("plots for %s: %s: %w", md, fig.name, err)
		}
		if err := p.savePNG(pl, filepath.Join(dir, fig.name)); err != nil {
			return fmt.Errorf("plots for %s: %s: %w", md, fig.name, err)
		}
	}
	return nil
}

func (p *Plotter) savePNG(pl *plot.Plot, path string) error {
	wt, err := pl.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	f, err := p.FS.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// trajectoryPlot draws the robot path with the observed obstacles behind
// it. Unknown returns carry NaN coordinates and are dropped from the
// scatter.
func trajectoryPlot(ld *trial.LogData) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s / %s / log %d — trajectory",
		ld.Metadata.Algorithm, ld.Metadata.Difficulty, ld.Metadata.Index)
	pl.X.Label.Text = "x (m)"
	pl.Y.Label.Text = "y (m)"

	var obsPts plotter.XYs
	total := 0
	for _, s := range ld.Obstacles.Samples {
		total += len(s.ObsX)
	}
	stride := total/maxObstaclePoints + 1
	i := 0
	for _, s := range ld.Obstacles.Samples {
		for j := range s.ObsX {
			i++
			if i%stride != 0 || playerlog.IsUnknown(s.ObsX[j]) {
				continue
			}
			obsPts = append(obsPts, plotter.XY{X: s.ObsX[j], Y: s.ObsY[j]})
		}
	}
	if len(obsPts) > 0 {
		scatter, err := plotter.NewScatter(obsPts)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Radius = vg.Points(0.8)
		scatter.GlyphStyle.Color = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
		pl.Add(scatter)
		pl.Legend.Add("obstacles", scatter)
	}

	pathPts := make(plotter.XYs, len(ld.Position.Samples))
	for i, s := range ld.Position.Samples {
		pathPts[i] = plotter.XY{X: s.PX, Y: s.PY}
	}
	if len(pathPts) > 0 {
		line, err := plotter.NewLine(pathPts)
		if err != nil {
			return nil, err
		}
		line.Color = color.RGBA{B: 0xcc, A: 0xff}
		line.Width = vg.Points(1.5)
		pl.Add(line)
		pl.Legend.Add("path", line)
	}
	pl.Legend.Top = true
	return pl, nil
}

func speedPlot(ld *trial.LogData) (*plot.Plot, error) {
	return timeSeriesPlot(ld, "speed", "speed (m/s)", func(s playerlog.PositionSample) float64 {
		return s.ScalarSpeed
	})
}

func targetDistancePlot(ld *trial.LogData) (*plot.Plot, error) {
	return timeSeriesPlot(ld, "distance to target", "distance (m)", func(s playerlog.PositionSample) float64 {
		return s.DistanceToTarget
	})
}

func timeSeriesPlot(ld *trial.LogData, title, yLabel string, value func(playerlog.PositionSample) float64) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s / %s / log %d — %s",
		ld.Metadata.Algorithm, ld.Metadata.Difficulty, ld.Metadata.Index, title)
	pl.X.Label.Text = "time (s)"
	pl.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(ld.Position.Samples))
	for i, s := range ld.Position.Samples {
		pts[i] = plotter.XY{X: s.Time, Y: value(s)}
	}
	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Width = vg.Points(1)
		pl.Add(line)
	}
	return pl, nil
}

func nearestObstaclePlot(ld *trial.LogData) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("%s / %s / log %d — nearest obstacle",
		ld.Metadata.Algorithm, ld.Metadata.Difficulty, ld.Metadata.Index)
	pl.X.Label.Text = "time (s)"
	pl.Y.Label.Text = "distance (m)"

	pts := make(plotter.XYs, len(ld.Obstacles.Samples))
	for i, s := range ld.Obstacles.Samples {
		pts[i] = plotter.XY{X: s.Time, Y: s.DistanceToNearest}
	}
	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Width = vg.Points(1)
		pl.Add(line)
	}
	return pl, nil
}
