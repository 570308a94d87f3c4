package analysis

import (
	"testing"

	"github.com/chenBenjamin97/court-analytics/pkg/detector"
	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/chenBenjamin97/court-analytics/pkg/possession"
	"github.com/chenBenjamin97/court-analytics/pkg/tactical"
	"github.com/chenBenjamin97/court-analytics/pkg/team"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//pixel = 2*court + 10 in every frame
func cameraKeypoints(court tactical.Court) tactical.KeypointFrame {
	frame := make(tactical.KeypointFrame, len(court.Keypoints))
	for i, p := range court.Keypoints {
		frame[i] = r2.Point{X: 2*p.X + 10, Y: 2*p.Y + 10}
	}
	return frame
}

//two players of the same team standing still while the ball goes from player 1 to player 2
func handoverDetections(court tactical.Court) *detector.Detections {
	const frames = 6
	d := &detector.Detections{
		Players: tracks.NewTrackSequence(frames),
		Balls:   tracks.NewTrackSequence(frames),
	}

	for f := 0; f < frames; f++ {
		d.Players[f][1] = tracks.Entity{BBox: geometry.Box(100, 100, 140, 200)}
		d.Players[f][2] = tracks.Entity{BBox: geometry.Box(150, 100, 190, 200)}
		d.Keypoints = append(d.Keypoints, cameraKeypoints(court))

		ball := geometry.Box(115, 140, 125, 150)
		if f >= 3 {
			ball = geometry.Box(165, 140, 175, 150)
		}
		d.Balls[f][tracks.BallID] = tracks.Entity{BBox: ball}
	}
	return d
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Possession.MinFrames = 2
	cfg.MaxBallStep = 100
	return cfg
}

func TestRunHandover(t *testing.T) {
	cfg := testConfig()
	sameTeam := team.ClassifierFunc(func(_, _ int, _ geometry.BoundingBox) (int, error) { return team.Team1, nil })

	r := Run(handoverDetections(cfg.Court), sameTeam, cfg)
	require.Equal(t, 6, r.Frames())

	assert.Equal(t, possession.Sequence{-1, 1, 1, -1, 2, 2}, r.Possession)
	assert.Equal(t, possession.Events{-1, -1, -1, -1, team.Team1, -1}, r.Passes)
	assert.Equal(t, possession.Events{-1, -1, -1, -1, -1, -1}, r.Interceptions)
	assert.Equal(t, []int{-1, 1, 1, -1, 1, 1}, r.Control)

	// foot of player 1 is (120,200) in pixels, (55,95) on the court
	require.Contains(t, r.Tactical[0], 1)
	assert.InDelta(t, 55.0, r.Tactical[0][1].X, 1e-6)
	assert.InDelta(t, 95.0, r.Tactical[0][1].Y, 1e-6)

	for f := 1; f < r.Frames(); f++ {
		assert.InDelta(t, 0.0, r.Distances[f][1], 1e-6)
		assert.InDelta(t, 0.0, r.Speeds[f][2], 1e-6)
	}

	s := r.Summary()
	assert.Equal(t, 6, s.Frames)
	assert.InDelta(t, 4.0/6, s.Team1Control, 1e-12)
	assert.Equal(t, 1, s.Events.Team1Passes)
}

func TestRunInterception(t *testing.T) {
	cfg := testConfig()
	byID := team.ClassifierFunc(func(_, id int, _ geometry.BoundingBox) (int, error) { return id, nil })

	r := Run(handoverDetections(cfg.Court), byID, cfg)

	assert.Equal(t, possession.Events{-1, -1, -1, -1, -1, -1}, r.Passes)
	assert.Equal(t, possession.Events{-1, -1, -1, -1, team.Team2, -1}, r.Interceptions)
	assert.Equal(t, []int{-1, 1, 1, -1, 2, 2}, r.Control)
}

func TestRunWithoutKeypoints(t *testing.T) {
	cfg := testConfig()
	d := handoverDetections(cfg.Court)
	for f := range d.Keypoints {
		d.Keypoints[f] = make(tactical.KeypointFrame, tactical.KeypointsNum)
	}

	r := Run(d, team.ClassifierFunc(func(_, _ int, _ geometry.BoundingBox) (int, error) { return team.Team1, nil }), cfg)
	for f := range r.Tactical {
		assert.Empty(t, r.Tactical[f])
		assert.Empty(t, r.Speeds[f])
	}
}
