// Package playerlog parses Player/Stage-style robot simulation logs.
//
// A log file multiplexes several message streams ("interfaces") as
// whitespace-separated text lines; the 4th token of each line names the
// interface the line belongs to. Column offsets are fixed per interface
// and collected in one schema table so that format changes stay out of
// the extraction code.
package playerlog

import "fmt"

// ColumnSchema describes the fixed positional layout of one interface's
// data lines. The time stamp always lives in column TimeColumn; the
// interface payload starts at FieldStart and opens with ScalarFields
// scalar values. For pair-carrying interfaces the rest of the line is an
// interleaved sequence of (value, auxiliary) pairs.
type ColumnSchema struct {
	Interface    string
	TimeColumn   int
	FieldStart   int
	ScalarFields int
	// Pairs marks that everything after the scalar block is an
	// interleaved pair stream (range at even offsets, intensity at odd).
	Pairs bool
}

// MinColumns is the smallest token count a data line may have under this
// schema.
func (s ColumnSchema) MinColumns() int {
	return s.FieldStart + s.ScalarFields
}

// Schemas maps interface names to their column layouts. The laser payload
// opens with scan_id, min_angle, max_angle, resolution, max_range and
// count, followed by (range, intensity) pairs; position2d carries
// px py pa vx vy va.
var Schemas = map[string]ColumnSchema{
	InterfaceLaser: {
		Interface:    InterfaceLaser,
		TimeColumn:   0,
		FieldStart:   7,
		ScalarFields: 6,
		Pairs:        true,
	},
	InterfacePosition2D: {
		Interface:    InterfacePosition2D,
		TimeColumn:   0,
		FieldStart:   7,
		ScalarFields: 6,
	},
}

// Interface names recognised in log lines.
const (
	InterfaceLaser      = "laser"
	InterfacePosition2D = "position2d"
)

// SchemaFor returns the column schema for the named interface.
func SchemaFor(name string) (ColumnSchema, error) {
	s, ok := Schemas[name]
	if !ok {
		return ColumnSchema{}, fmt.Errorf("no column schema for interface %q", name)
	}
	return s, nil
}
