package trial

import (
	"fmt"
	"io/fs"

	"github.com/robolab-data/navlog.report/internal/fsutil"
	"github.com/robolab-data/navlog.report/internal/fusion"
	"github.com/robolab-data/navlog.report/internal/playerlog"
)

// Assemble processes one discovered log end to end: it streams the laser
// and position interfaces out of the file, derives the kinematic columns
// against the difficulty's goal preset, and projects the obstacle table
// under the given alignment policy. The file is opened and fully closed
// once per interface, so memory stays bounded by one log's tables.
//
// Any failure is wrapped with the trial identity so a bad file can be
// located by algorithm/difficulty/index.
func Assemble(fsys fsutil.FileSystem, md LogMetadata, targets *TargetSelector, policy fusion.AlignmentPolicy) (*LogData, error) {
	target, err := targets.Target(md.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", md, err)
	}

	var laser *playerlog.LaserTable
	err = withInterface(fsys, md.Path, playerlog.InterfaceLaser, func(s *playerlog.InterfaceScanner) error {
		laser, err = playerlog.ReadLaserTable(s)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", md, err)
	}

	var position *playerlog.PositionTable
	err = withInterface(fsys, md.Path, playerlog.InterfacePosition2D, func(s *playerlog.InterfaceScanner) error {
		position, err = playerlog.ReadPositionTable(s, target)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", md, err)
	}

	return &LogData{
		Metadata:  md,
		Laser:     laser,
		Position:  position,
		Obstacles: fusion.ProjectObstacles(laser, position, policy),
	}, nil
}

// withInterface opens the log, runs fn over the filtered interface
// stream, and closes the file before returning.
func withInterface(fsys fsutil.FileSystem, path, iface string, fn func(*playerlog.InterfaceScanner) error) error {
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer closeQuiet(f)

	return fn(playerlog.NewInterfaceScanner(f, iface))
}

func closeQuiet(f fs.File) {
	_ = f.Close()
}
