package trial

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/robolab-data/navlog.report/internal/fsutil"
)

// Discover walks root expecting the layout root/algorithm/difficulty/*.log
// and returns one LogMetadata per log file. Entries are ordered by
// algorithm, difficulty and file name (ReadDir sorts), so discovery is
// deterministic; indexes restart at 1 in every difficulty directory.
func Discover(fsys fsutil.FileSystem, root string) ([]LogMetadata, error) {
	algorithms, err := fsys.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("discover logs in %s: %w", root, err)
	}

	var metas []LogMetadata
	for _, alg := range algorithms {
		if !alg.IsDir() {
			continue
		}
		algDir := filepath.Join(root, alg.Name())
		difficulties, err := fsys.ReadDir(algDir)
		if err != nil {
			return nil, fmt.Errorf("discover logs in %s: %w", algDir, err)
		}
		for _, diff := range difficulties {
			if !diff.IsDir() {
				continue
			}
			diffDir := filepath.Join(algDir, diff.Name())
			entries, err := fsys.ReadDir(diffDir)
			if err != nil {
				return nil, fmt.Errorf("discover logs in %s: %w", diffDir, err)
			}
			index := 0
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
					continue
				}
				index++
				metas = append(metas, LogMetadata{
					Index:      index,
					Path:       filepath.Join(diffDir, e.Name()),
					Algorithm:  alg.Name(),
					Difficulty: diff.Name(),
				})
			}
		}
	}
	return metas, nil
}
