package possession

import (
	"math"

	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
	"github.com/golang/geo/r2"
)

//NoPlayer marks a frame where nobody possesses the ball
const NoPlayer = -1

//Sequence holds the possessing player id (or NoPlayer) of every frame
type Sequence []int

//Config holds the possession detector thresholds
type Config struct {
	//ProximityThreshold is the max distance (pixels) between the ball center and a player for a proximity win
	ProximityThreshold float64
	//MinFrames is how many consecutive frames a candidate must lead before possession is awarded
	MinFrames int
	//ContainmentThreshold is the fraction of the ball area that must lie inside a player box
	ContainmentThreshold float64
}

func DefaultConfig() Config {
	return Config{
		ProximityThreshold:   50,
		MinFrames:            11,
		ContainmentThreshold: 0.8,
	}
}

//Detector decides frame by frame which player controls the ball
type Detector struct {
	cfg Config
}

func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

//holdState is the hysteresis state: either empty (no candidate) or a candidate with its streak length
type holdState struct {
	candidate int
	count     int
}

func (s holdState) empty() bool {
	return s.count == 0
}

//next applies one frame's candidate (NoPlayer when the frame had no candidate or no ball)
func (s holdState) next(candidate int) holdState {
	switch {
	case candidate == NoPlayer:
		return holdState{}
	case !s.empty() && s.candidate == candidate:
		return holdState{candidate: candidate, count: s.count + 1}
	default:
		return holdState{candidate: candidate, count: 1}
	}
}

//DetectPossession returns one verdict per ball frame. A player is only awarded the ball after leading for
//MinFrames consecutive frames; a frame without a ball or without any candidate resets the streak.
func (d *Detector) DetectPossession(players, balls tracks.TrackSequence) Sequence {
	out := make(Sequence, len(balls))
	state := holdState{}

	for f := range balls {
		out[f] = NoPlayer

		ball, ok := balls[f].Ball()
		if !ok || f >= len(players) {
			state = holdState{}
			continue
		}

		state = state.next(d.BestCandidate(players[f], ball.BBox))
		if !state.empty() && state.count >= d.cfg.MinFrames {
			out[f] = state.candidate
		}
	}

	return out
}

//BestCandidate returns the player most likely holding the ball in a single frame, or NoPlayer.
//Players containing most of the ball win over mere proximity, ties are broken by distance and then by lower id.
func (d *Detector) BestCandidate(players tracks.Track, ball geometry.BoundingBox) int {
	ballCenter := geometry.Center(ball)

	bestContained, bestContainedDist := NoPlayer, math.Inf(1)
	bestNear, bestNearDist := NoPlayer, math.Inf(1)

	for _, id := range players.IDs() {
		box := players[id].BBox
		if box.IsZero() {
			continue
		}

		dist := MinDistance(ballCenter, box)
		if geometry.ContainmentRatio(box, ball) > d.cfg.ContainmentThreshold {
			if dist < bestContainedDist {
				bestContained, bestContainedDist = id, dist
			}
			continue
		}

		if dist < bestNearDist {
			bestNear, bestNearDist = id, dist
		}
	}

	if bestContained != NoPlayer {
		return bestContained
	}
	if bestNear != NoPlayer && bestNearDist < d.cfg.ProximityThreshold {
		return bestNear
	}
	return NoPlayer
}

//MinDistance is the smallest distance between the ball center and the key points of a player box
func MinDistance(ballCenter r2.Point, box geometry.BoundingBox) float64 {
	best := math.Inf(1)
	for _, p := range KeyPoints(box, ballCenter) {
		if d := geometry.Distance(ballCenter, p); d < best {
			best = d
		}
	}
	return best
}

//KeyPoints returns the points of a player box the ball is measured against: the ball's projections on the box
//edges (when they fall strictly inside the box span), corners, edge midpoints, the center, and a point a third
//of the way down at the horizontal center.
func KeyPoints(box geometry.BoundingBox, ballCenter r2.Point) []r2.Point {
	x1, y1, x2, y2 := box.X1, box.Y1, box.X2, box.Y2
	w, h := x2-x1, y2-y1
	midX := x1 + math.Floor(w/2)
	midY := y1 + math.Floor(h/2)

	pts := make([]r2.Point, 0, 14)

	if y1 < ballCenter.Y && ballCenter.Y < y2 {
		pts = append(pts, r2.Point{X: x1, Y: ballCenter.Y}, r2.Point{X: x2, Y: ballCenter.Y})
	}
	if x1 < ballCenter.X && ballCenter.X < x2 {
		pts = append(pts, r2.Point{X: ballCenter.X, Y: y1}, r2.Point{X: ballCenter.X, Y: y2})
	}

	pts = append(pts,
		r2.Point{X: midX, Y: y1}, // top center
		r2.Point{X: x2, Y: y1},
		r2.Point{X: x1, Y: y1},
		r2.Point{X: x2, Y: midY}, // mid right
		r2.Point{X: x1, Y: midY}, // mid left
		r2.Point{X: midX, Y: midY},
		r2.Point{X: x2, Y: y2},
		r2.Point{X: x1, Y: y2},
		r2.Point{X: midX, Y: y2}, // bottom center
		r2.Point{X: midX, Y: y1 + math.Floor(h/3)},
	)

	return pts
}
