package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robolab-data/navlog.report/internal/fsutil"
	"github.com/robolab-data/navlog.report/internal/fusion"
	"github.com/robolab-data/navlog.report/internal/playerlog"
	"github.com/robolab-data/navlog.report/internal/trial"
)

func plottableLog() *trial.LogData {
	return &trial.LogData{
		Metadata: trial.LogMetadata{Index: 1, Algorithm: "vfh", Difficulty: "realistic"},
		Laser: &playerlog.LaserTable{Scans: []playerlog.LaserScan{
			{Time: 0.1, MinAngle: -math.Pi / 4, MaxAngle: math.Pi / 4, MaxRange: 8, Count: 2,
				Ranges: []float64{3, 4}, Intensities: []float64{1, 1}},
		}},
		Position: &playerlog.PositionTable{Samples: []playerlog.PositionSample{
			{Time: 0.1, PX: 0, PY: 0, ScalarSpeed: 0.5, DistanceToTarget: 6, Accel: 0},
			{Time: 0.2, PX: 0.1, PY: 0.05, ScalarSpeed: 0.6, DistanceToTarget: 5.9, Accel: 1},
		}},
		Obstacles: &fusion.ObstacleTable{Samples: []fusion.ObstacleSample{
			{Time: 0.1, ObsX: []float64{2.1, playerlog.UnknownRange}, ObsY: []float64{-2.1, playerlog.UnknownRange}, DistanceToNearest: 3},
		}},
	}
}

func TestWriteLogPlots(t *testing.T) {
	t.Parallel()

	fsys := fsutil.NewMemoryFileSystem()
	p := &Plotter{FS: fsys, OutDir: "plots"}

	require.NoError(t, p.WriteLogPlots(plottableLog()))

	for _, name := range []string{"trajectory.png", "speed.png", "target_distance.png", "nearest_obstacle.png"} {
		path := "plots/vfh/realistic/log-1/" + name
		require.True(t, fsys.Exists(path), "missing %s", path)
		info, err := fsys.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), "%s is empty", path)
	}
}

func TestWriteLogPlotsEmptyTables(t *testing.T) {
	t.Parallel()

	ld := &trial.LogData{
		Metadata:  trial.LogMetadata{Index: 2, Algorithm: "nd", Difficulty: "ideal"},
		Laser:     &playerlog.LaserTable{},
		Position:  &playerlog.PositionTable{},
		Obstacles: &fusion.ObstacleTable{},
	}

	fsys := fsutil.NewMemoryFileSystem()
	p := &Plotter{FS: fsys, OutDir: "plots"}
	require.NoError(t, p.WriteLogPlots(ld))
	assert.True(t, fsys.Exists("plots/nd/ideal/log-2/trajectory.png"))
}
