// Package trial assembles per-trial log files into fused data records:
// it discovers logs on disk, extracts the laser and position tables,
// projects obstacles, and fans the work out across a worker pool.
package trial

import (
	"fmt"

	"github.com/robolab-data/navlog.report/internal/fusion"
	"github.com/robolab-data/navlog.report/internal/playerlog"
)

// LogMetadata identifies one discovered trial log. Index is 1-based
// within the log's difficulty directory. Records are immutable once
// discovered.
type LogMetadata struct {
	Index      int    `json:"index"`
	Path       string `json:"path"`
	Algorithm  string `json:"algorithm"`
	Difficulty string `json:"difficulty"`
}

// String renders the trial identity used in error messages and logs, so
// operators can locate the file behind any failure.
func (m LogMetadata) String() string {
	return fmt.Sprintf("%s/%s #%d (%s)", m.Algorithm, m.Difficulty, m.Index, m.Path)
}

// LogData bundles the three derived tables of one trial log. Built once
// per log and immutable afterwards; held in memory only while reports
// are produced.
type LogData struct {
	Metadata  LogMetadata
	Laser     *playerlog.LaserTable
	Position  *playerlog.PositionTable
	Obstacles *fusion.ObstacleTable
}
