package trial

import (
	"errors"
	"fmt"
	"sort"

	"github.com/robolab-data/navlog.report/internal/playerlog"
)

// ErrUnknownDifficulty is returned when a log's difficulty tag matches
// neither the realistic preset nor any recognized fallback tag. Failing
// loudly here keeps a mislabelled directory from silently skewing the
// distance-to-target column of a whole trial set.
var ErrUnknownDifficulty = errors.New("unrecognized difficulty")

// The two supported goal presets. The realistic arena places the goal at
// (-1, 6); every other recognized difficulty uses the shared fallback
// goal at (-8, -7.5). There is no general per-difficulty configuration.
var (
	realisticTarget = playerlog.Target{X: -1, Y: 6}
	fallbackTarget  = playerlog.Target{X: -8, Y: -7.5}
)

// RealisticDifficulty is the difficulty tag that selects the realistic
// goal preset.
const RealisticDifficulty = "realistic"

// DefaultDifficulties are the non-realistic tags recognized out of the
// box. Additional tags can be admitted via NewTargetSelector (they all
// share the fallback goal).
var DefaultDifficulties = []string{"ideal"}

// TargetSelector maps a difficulty tag to the trial's goal position.
type TargetSelector struct {
	recognized map[string]bool
}

// NewTargetSelector builds a selector recognizing the default tags plus
// any extras.
func NewTargetSelector(extra ...string) *TargetSelector {
	s := &TargetSelector{recognized: make(map[string]bool)}
	for _, d := range DefaultDifficulties {
		s.recognized[d] = true
	}
	for _, d := range extra {
		if d != "" && d != RealisticDifficulty {
			s.recognized[d] = true
		}
	}
	return s
}

// Target returns the goal position for the given difficulty tag, or
// ErrUnknownDifficulty when the tag is not recognized.
func (s *TargetSelector) Target(difficulty string) (playerlog.Target, error) {
	if difficulty == RealisticDifficulty {
		return realisticTarget, nil
	}
	if s.recognized[difficulty] {
		return fallbackTarget, nil
	}
	return playerlog.Target{}, fmt.Errorf("%w: %q (known: %s, %v)",
		ErrUnknownDifficulty, difficulty, RealisticDifficulty, s.Recognized())
}

// Recognized lists the non-realistic tags the selector accepts, sorted.
func (s *TargetSelector) Recognized() []string {
	tags := make([]string, 0, len(s.recognized))
	for d := range s.recognized {
		tags = append(tags, d)
	}
	sort.Strings(tags)
	return tags
}
