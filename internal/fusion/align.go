// Package fusion fuses the laser and position streams of one trial log
// into world-frame obstacle observations.
package fusion

import "github.com/robolab-data/navlog.report/internal/playerlog"

// Pose is the 2-D pose paired with one laser scan.
type Pose struct {
	X       float64
	Y       float64
	Heading float64
}

// AlignmentPolicy decides which pose each laser scan is fused with. The
// two instrument streams are sampled independently, so the pairing rule
// is a policy of its own: swapping it (for example to timestamp
// interpolation) must not touch the projection math.
type AlignmentPolicy interface {
	// Name identifies the policy in logs and summaries.
	Name() string

	// Pair returns one pose per laser scan to fuse, in scan order. The
	// result may be shorter than the scan table when the policy cannot
	// pair every scan.
	Pair(laser *playerlog.LaserTable, position *playerlog.PositionTable) []Pose
}

// OrdinalAlignment pairs scan i with position sample i. This matches
// recorders that emit both streams at the same rate starting together;
// when the tables differ in length it silently truncates to the shorter
// one. Row counts are never reconciled by timestamp.
type OrdinalAlignment struct{}

// Name implements AlignmentPolicy.
func (OrdinalAlignment) Name() string { return "ordinal" }

// Pair implements AlignmentPolicy.
func (OrdinalAlignment) Pair(laser *playerlog.LaserTable, position *playerlog.PositionTable) []Pose {
	n := laser.Len()
	if position.Len() < n {
		n = position.Len()
	}
	poses := make([]Pose, n)
	for i := 0; i < n; i++ {
		s := &position.Samples[i]
		poses[i] = Pose{X: s.PX, Y: s.PY, Heading: s.PA}
	}
	return poses
}
