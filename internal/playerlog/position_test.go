package playerlog

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positionLine(time, px, py, pa, vx, vy, va float64) string {
	return fmt.Sprintf("%g localhost 6665 position2d 00 004 1 %g %g %g %g %g %g",
		time, px, py, pa, vx, vy, va)
}

const positionHeader = "0.0 localhost 6665 position2d 00 004 1 header"

func positionScanner(lines ...string) *InterfaceScanner {
	return NewInterfaceScanner(strings.NewReader(strings.Join(lines, "\n")), InterfacePosition2D)
}

func TestReadPositionTable(t *testing.T) {
	t.Parallel()

	target := Target{X: -1, Y: 6}

	t.Run("derives speed acceleration and target distance", func(t *testing.T) {
		t.Parallel()
		table, err := ReadPositionTable(positionScanner(
			positionHeader,
			positionLine(0.0, 0, 0, 0, 0.3, 0.4, 0.1),
			positionLine(0.5, 0.2, 0.1, 0.05, 0.6, 0.8, 0.1),
			positionLine(1.0, 0.5, 0.3, 0.10, 0.0, 0.0, 0.0),
		), target)
		require.NoError(t, err)
		require.Equal(t, 3, table.Len())

		s := table.Samples
		assert.InDelta(t, 0.5, s[0].ScalarSpeed, 1e-12)
		assert.InDelta(t, 1.0, s[1].ScalarSpeed, 1e-12)
		assert.InDelta(t, 0.0, s[2].ScalarSpeed, 1e-12)
		for i := range s {
			assert.InDelta(t, math.Sqrt(s[i].VX*s[i].VX+s[i].VY*s[i].VY), s[i].ScalarSpeed, 1e-12)
		}

		// First acceleration is defined as exactly zero.
		assert.Zero(t, s[0].Accel)
		assert.InDelta(t, (1.0-0.5)/0.5, s[1].Accel, 1e-12)
		assert.InDelta(t, (0.0-1.0)/0.5, s[2].Accel, 1e-12)

		assert.InDelta(t, math.Hypot(0-(-1), 0-6), s[0].DistanceToTarget, 1e-12)
		assert.InDelta(t, math.Hypot(0.5-(-1), 0.3-6), s[2].DistanceToTarget, 1e-12)

		assert.InDelta(t, 1.0, table.Duration(), 1e-12)
	})

	t.Run("source order is preserved", func(t *testing.T) {
		t.Parallel()
		table, err := ReadPositionTable(positionScanner(
			positionHeader,
			positionLine(2.0, 1, 0, 0, 0, 0, 0),
			positionLine(1.0, 2, 0, 0, 0, 0, 0),
		), target)
		require.NoError(t, err)
		require.Equal(t, 2, table.Len())
		assert.Equal(t, 2.0, table.Samples[0].Time)
		assert.Equal(t, 1.0, table.Samples[1].Time)
	})

	t.Run("header only yields empty table", func(t *testing.T) {
		t.Parallel()
		table, err := ReadPositionTable(positionScanner(positionHeader), target)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Len())
		assert.Zero(t, table.Duration())
	})

	t.Run("malformed numeric field fails the log", func(t *testing.T) {
		t.Parallel()
		bad := "0.1 localhost 6665 position2d 00 004 1 0 0 zero 0 0 0"
		_, err := ReadPositionTable(positionScanner(positionHeader, bad), target)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not numeric")
	})

	t.Run("short line fails the log", func(t *testing.T) {
		t.Parallel()
		bad := "0.1 localhost 6665 position2d 00 004 1 0 0"
		_, err := ReadPositionTable(positionScanner(positionHeader, bad), target)
		require.Error(t, err)
	})
}
