package playerlog

import (
	"fmt"
	"math"
	"strings"
)

// Target is the goal position a trial drives towards, in world
// coordinates.
type Target struct {
	X float64
	Y float64
}

// PositionSample is one odometry message plus the derived kinematic
// columns: scalar speed, signed scalar acceleration and straight-line
// distance to the trial's goal.
type PositionSample struct {
	Time             float64
	PX               float64
	PY               float64
	PA               float64
	VX               float64
	VY               float64
	VA               float64
	ScalarSpeed      float64
	Accel            float64
	DistanceToTarget float64
}

// PositionTable holds every odometry sample of one log in source order
// (not re-sorted; recorders emit monotonically increasing time stamps).
type PositionTable struct {
	Samples []PositionSample
}

// Len returns the number of samples.
func (t *PositionTable) Len() int { return len(t.Samples) }

// Duration is the time span covered by the table, zero when it has fewer
// than two samples.
func (t *PositionTable) Duration() float64 {
	if len(t.Samples) < 2 {
		return 0
	}
	return t.Samples[len(t.Samples)-1].Time - t.Samples[0].Time
}

// ReadPositionTable consumes the filtered position2d line stream of one
// log and builds the sample table, deriving speed, acceleration and
// distance to target against the given goal position. The first matching
// line is a header and is discarded; malformed fields fail the whole log.
func ReadPositionTable(s *InterfaceScanner, target Target) (*PositionTable, error) {
	schema := Schemas[InterfacePosition2D]

	t := &PositionTable{}
	if !s.Scan() { // header
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("read position stream: %w", err)
		}
		return t, nil
	}

	width := 0
	record := 0
	for s.Scan() {
		record++
		fields := strings.Fields(s.Text())

		if width == 0 {
			width = len(fields)
			if width < schema.MinColumns() {
				return nil, fmt.Errorf("position record %d: %d columns, want at least %d", record, width, schema.MinColumns())
			}
		} else if len(fields) != width {
			return nil, fmt.Errorf("position record %d: %d columns, want %d", record, len(fields), width)
		}

		var sample PositionSample
		cols := []*float64{
			&sample.Time, &sample.PX, &sample.PY, &sample.PA,
			&sample.VX, &sample.VY, &sample.VA,
		}
		offsets := []int{
			schema.TimeColumn,
			schema.FieldStart, schema.FieldStart + 1, schema.FieldStart + 2,
			schema.FieldStart + 3, schema.FieldStart + 4, schema.FieldStart + 5,
		}
		for i, dst := range cols {
			v, err := parseColumn(fields, offsets[i])
			if err != nil {
				return nil, fmt.Errorf("position record %d: %w", record, err)
			}
			*dst = v
		}
		t.Samples = append(t.Samples, sample)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read position stream: %w", err)
	}

	deriveKinematics(t.Samples, target)
	return t, nil
}

// deriveKinematics fills the computed columns in place. Acceleration is
// the forward first-difference of scalar speed over time; the first
// sample's acceleration is defined as 0 rather than left undefined.
func deriveKinematics(samples []PositionSample, target Target) {
	for i := range samples {
		s := &samples[i]
		s.ScalarSpeed = math.Hypot(s.VX, s.VY)
		s.DistanceToTarget = math.Hypot(s.PX-target.X, s.PY-target.Y)
	}
	for i := range samples {
		if i == 0 {
			samples[i].Accel = 0
			continue
		}
		dt := samples[i].Time - samples[i-1].Time
		samples[i].Accel = (samples[i].ScalarSpeed - samples[i-1].ScalarSpeed) / dt
	}
}
