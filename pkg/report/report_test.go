package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chenBenjamin97/court-analytics/pkg/kinematics"
	"github.com/chenBenjamin97/court-analytics/pkg/possession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() Summary {
	control := []int{possession.NoTeam, 1, 1, 2}
	passes := possession.Events{possession.NoTeam, possession.NoTeam, 1, possession.NoTeam}
	interceptions := possession.Events{possession.NoTeam, possession.NoTeam, possession.NoTeam, 2}
	distances := []kinematics.Frame{{}, {7: 1}, {7: 2, 9: 0.5}, {9: 0.5}}
	speeds := []kinematics.Frame{{}, {7: 10}, {7: 12, 9: 3}, {9: 4}}

	return Summarize(control, passes, interceptions, distances, speeds)
}

func TestSummarize(t *testing.T) {
	s := sampleSummary()

	assert.Equal(t, 4, s.Frames)
	assert.InDelta(t, 0.5, s.Team1Control, 1e-12)
	assert.InDelta(t, 0.25, s.Team2Control, 1e-12)
	assert.Equal(t, possession.Counts{Team1Passes: 1, Team2Interceptions: 1}, s.Events)
	assert.Equal(t, []PlayerStats{
		{ID: 7, DistanceMeters: 3, TopSpeedKmh: 12},
		{ID: 9, DistanceMeters: 1, TopSpeedKmh: 4},
	}, s.Players)
}

func TestSummaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game", "summary.json")
	want := sampleSummary()

	require.NoError(t, SaveSummary(path, want))
	got, err := LoadSummary(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPlotControl(t *testing.T) {
	path := filepath.Join(t.TempDir(), "control.png")
	require.NoError(t, PlotControl([]int{possession.NoTeam, 1, 1, 2, 2, 2}, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPlotControlEmpty(t *testing.T) {
	assert.Error(t, PlotControl(nil, filepath.Join(t.TempDir(), "empty.png")))
}
