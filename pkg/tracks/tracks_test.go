package tracks

import (
	"path/filepath"
	"testing"

	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ballAt(x, y float64) Track {
	return Track{BallID: {BBox: geometry.Box(x, y, x+10, y+10)}}
}

func TestTrackIDsSorted(t *testing.T) {
	tr := Track{9: {}, 2: {}, 5: {}}
	assert.Equal(t, []int{2, 5, 9}, tr.IDs())
}

func TestBallIgnoresZeroBox(t *testing.T) {
	_, ok := Track{BallID: {}}.Ball()
	assert.False(t, ok)

	_, ok = ballAt(1, 1).Ball()
	assert.True(t, ok)
}

func TestRemoveWrongDetections(t *testing.T) {
	balls := TrackSequence{
		ballAt(100, 100),
		ballAt(110, 100),
		ballAt(500, 500), // teleport
		{},
		ballAt(150, 100), // 40px over 3 frames since frame 1 is fine
	}

	got := RemoveWrongDetections(balls, DefaultMaxBallStep)

	_, ok := got[2].Ball()
	assert.False(t, ok)
	_, ok = got[4].Ball()
	assert.True(t, ok)

	// input untouched
	_, ok = balls[2].Ball()
	assert.True(t, ok)
}

func TestInterpolateBall(t *testing.T) {
	balls := TrackSequence{
		{},
		ballAt(0, 0),
		{},
		{},
		ballAt(30, 60),
		{},
	}

	got := InterpolateBall(balls)

	first, ok := got[0].Ball()
	require.True(t, ok)
	assert.Equal(t, geometry.Box(0, 0, 10, 10), first.BBox)

	mid, ok := got[2].Ball()
	require.True(t, ok)
	assert.InDelta(t, 10.0, mid.BBox.X1, 1e-9)
	assert.InDelta(t, 20.0, mid.BBox.Y1, 1e-9)

	mid, ok = got[3].Ball()
	require.True(t, ok)
	assert.InDelta(t, 20.0, mid.BBox.X1, 1e-9)
	assert.InDelta(t, 40.0, mid.BBox.Y1, 1e-9)

	_, ok = got[5].Ball()
	assert.False(t, ok)
}

func TestInterpolateBallNoDetections(t *testing.T) {
	got := InterpolateBall(NewTrackSequence(3))
	assert.Len(t, got, 3)
	for _, f := range got {
		assert.Empty(t, f)
	}
}

func TestStubRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stubs", "players.json")

	var missing TrackSequence
	found, err := ReadStub(path, &missing)
	require.NoError(t, err)
	assert.False(t, found)

	want := TrackSequence{
		{3: {BBox: geometry.Box(1, 2, 3, 4), Confidence: 0.9}},
		{},
	}
	require.NoError(t, SaveStub(path, want))

	var got TrackSequence
	found, err = ReadStub(path, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}
