package fusion

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/robolab-data/navlog.report/internal/playerlog"
)

// ObstacleSample is the world-frame view of one laser scan: the
// Cartesian coordinates of every return plus the distance to the nearest
// observed obstacle. ObsX/ObsY hold the unknown sentinel wherever the
// beam saw no return.
type ObstacleSample struct {
	Time              float64
	ObsX              []float64
	ObsY              []float64
	DistanceToNearest float64
}

// ObstacleTable holds one row per fused laser scan, aligned positionally
// with the laser table it was derived from.
type ObstacleTable struct {
	Samples []ObstacleSample
}

// Len returns the number of fused scans.
func (t *ObstacleTable) Len() int { return len(t.Samples) }

// ProjectObstacles converts every paired laser scan into world-frame
// obstacle coordinates. Beam angles are spread evenly over the first
// scan's [min_angle, max_angle] and held constant for the whole table;
// the world angle of a beam is the pose heading plus its local angle and
// is deliberately not wrapped into a canonical range. Unknown ranges
// propagate to unknown coordinates and are excluded from the
// nearest-obstacle reduction; a scan with no valid return at all reports
// the scanner's max range bound instead.
func ProjectObstacles(laser *playerlog.LaserTable, position *playerlog.PositionTable, policy AlignmentPolicy) *ObstacleTable {
	t := &ObstacleTable{}
	first := laser.First()
	if first == nil {
		return t
	}

	poses := policy.Pair(laser, position)
	beamAngles := spreadAngles(first.MinAngle, first.MaxAngle, len(first.Ranges))

	t.Samples = make([]ObstacleSample, len(poses))
	for i := range poses {
		scan := &laser.Scans[i]
		pose := poses[i]

		n := len(scan.Ranges)
		obsX := make([]float64, n)
		obsY := make([]float64, n)
		nearest := math.Inf(1)
		for j, r := range scan.Ranges {
			if playerlog.IsUnknown(r) {
				obsX[j] = playerlog.UnknownRange
				obsY[j] = playerlog.UnknownRange
				continue
			}
			theta := pose.Heading + beamAngles[j]
			obsX[j] = pose.X + r*math.Cos(theta)
			obsY[j] = pose.Y + r*math.Sin(theta)
			if r < nearest {
				nearest = r
			}
		}
		if math.IsInf(nearest, 1) {
			nearest = first.MaxRange
		}

		t.Samples[i] = ObstacleSample{
			Time:              scan.Time,
			ObsX:              obsX,
			ObsY:              obsY,
			DistanceToNearest: nearest,
		}
	}
	return t
}

// spreadAngles returns n local beam angles evenly spaced over
// [min, max]. A single-beam scan sits at min.
func spreadAngles(min, max float64, n int) []float64 {
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{min}
	}
	return floats.Span(make([]float64, n), min, max)
}
