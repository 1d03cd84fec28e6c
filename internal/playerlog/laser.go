package playerlog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnknownRange is the sentinel stored for beams with no valid return
// (readings at or beyond the scanner's maximum range). NaN is used so the
// marker survives arithmetic instead of collapsing to zero; reductions
// downstream must skip it explicitly.
var UnknownRange = math.NaN()

// IsUnknown reports whether v is the no-return sentinel.
func IsUnknown(v float64) bool { return math.IsNaN(v) }

// LaserScan is one range-finder message: the scan metadata plus the
// angularly ordered range and intensity arrays. Ranges holds UnknownRange
// where the beam saw nothing within max_range.
type LaserScan struct {
	Time        float64
	ScanID      int
	MinAngle    float64
	MaxAngle    float64
	Resolution  float64
	MaxRange    float64
	Count       int
	Ranges      []float64
	Intensities []float64
}

// KnownRanges returns the number of beams with a valid return.
func (s *LaserScan) KnownRanges() int {
	n := 0
	for _, r := range s.Ranges {
		if !IsUnknown(r) {
			n++
		}
	}
	return n
}

// LaserTable holds every scan of one log in source order. The angular
// metadata (min/max angle, count, max range) is taken from the first scan
// and assumed constant across the file; later rows are not re-validated.
type LaserTable struct {
	Scans []LaserScan
}

// Len returns the number of scans.
func (t *LaserTable) Len() int { return len(t.Scans) }

// First returns the first scan, whose metadata governs the whole table.
// It is nil for an empty table.
func (t *LaserTable) First() *LaserScan {
	if len(t.Scans) == 0 {
		return nil
	}
	return &t.Scans[0]
}

// ReadLaserTable consumes the filtered laser line stream of one log and
// builds the scan table. The first matching line is a header and is
// discarded. Every data line must parse cleanly and carry the same number
// of tokens as the first; any malformed field fails the whole log. A
// stream with no data lines yields an empty table.
func ReadLaserTable(s *InterfaceScanner) (*LaserTable, error) {
	schema := Schemas[InterfaceLaser]

	t := &LaserTable{}
	if !s.Scan() { // header
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("read laser stream: %w", err)
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
				return nil, fmt.Errorf("laser record %d: %d columns, want at least %d", record, width, schema.MinColumns())
			}
			if (width-schema.MinColumns())%2 != 0 {
				return nil, fmt.Errorf("laser record %d: odd number of range/intensity tokens", record)
			}
		} else if len(fields) != width {
			return nil, fmt.Errorf("laser record %d: %d columns, want %d", record, len(fields), width)
		}

		scan, err := parseLaserRecord(fields, schema)
		if err != nil {
			return nil, fmt.Errorf("laser record %d: %w", record, err)
		}
		t.Scans = append(t.Scans, scan)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read laser stream: %w", err)
	}
	if len(t.Scans) == 0 {
		return t, nil
	}

	first := t.First()
	if first.Count != len(first.Ranges) {
		return nil, fmt.Errorf("laser count field is %d but line carries %d range/intensity pairs", first.Count, len(first.Ranges))
	}

	// Out-of-range returns are recorded as the raw max_range magnitude;
	// replace them with the sentinel so nothing downstream mistakes them
	// for real obstacles. The bound comes from the first scan.
	maxRange := first.MaxRange
	for i := range t.Scans {
		ranges := t.Scans[i].Ranges
		for j, r := range ranges {
			if r >= maxRange {
				ranges[j] = UnknownRange
			}
		}
	}
	return t, nil
}

func parseLaserRecord(fields []string, schema ColumnSchema) (LaserScan, error) {
	var scan LaserScan

	time, err := parseColumn(fields, schema.TimeColumn)
	if err != nil {
		return scan, err
	}
	scan.Time = time

	scalars := make([]float64, schema.ScalarFields)
	for i := range scalars {
		v, err := parseColumn(fields, schema.FieldStart+i)
		if err != nil {
			return scan, err
		}
		scalars[i] = v
	}
	scan.ScanID = int(scalars[0])
	scan.MinAngle = scalars[1]
	scan.MaxAngle = scalars[2]
	scan.Resolution = scalars[3]
	scan.MaxRange = scalars[4]
	scan.Count = int(scalars[5])

	pairStart := schema.MinColumns()
	n := (len(fields) - pairStart) / 2
	scan.Ranges = make([]float64, n)
	scan.Intensities = make([]float64, n)
	for i := 0; i < n; i++ {
		r, err := parseColumn(fields, pairStart+2*i)
		if err != nil {
			return scan, err
		}
		in, err := parseColumn(fields, pairStart+2*i+1)
		if err != nil {
			return scan, err
		}
		scan.Ranges[i] = r
		scan.Intensities[i] = in
	}
	return scan, nil
}

func parseColumn(fields []string, col int) (float64, error) {
	v, err := strconv.ParseFloat(fields[col], 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %q is not numeric", col, fields[col])
	}
	return v, nil
}
