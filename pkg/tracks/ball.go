package tracks

import (
	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/golang/geo/r2"
)

//DefaultMaxBallStep is how far (pixels) the ball may move between two consecutive frames
const DefaultMaxBallStep = 25.0

//RemoveWrongDetections drops ball detections that jump further from the last kept detection than
//maxStep pixels per elapsed frame. The input is not modified.
func RemoveWrongDetections(balls TrackSequence, maxStep float64) TrackSequence {
	out := cloneSequence(balls)
	lastGood := -1

	for i := range out {
		ball, ok := out[i].Ball()
		if !ok {
			continue
		}

		if lastGood == -1 {
			lastGood = i
			continue
		}

		prev, _ := out[lastGood].Ball()
		gap := float64(i - lastGood)
		moved := geometry.Distance(r2.Point{X: prev.BBox.X1, Y: prev.BBox.Y1}, r2.Point{X: ball.BBox.X1, Y: ball.BBox.Y1})
		if moved > maxStep*gap {
			delete(out[i], BallID)
		} else {
			lastGood = i
		}
	}

	return out
}

//InterpolateBall fills frames without a ball box by linear interpolation between the surrounding known boxes.
//Frames before the first detection are back-filled with it, frames after the last detection stay empty.
func InterpolateBall(balls TrackSequence) TrackSequence {
	out := cloneSequence(balls)

	known := make([]int, 0, len(out))
	for i := range out {
		if _, ok := out[i].Ball(); ok {
			known = append(known, i)
		}
	}

	if len(known) == 0 {
		return out
	}

	first, _ := out[known[0]].Ball()
	for i := 0; i < known[0]; i++ {
		out[i][BallID] = first
	}

	for k := 1; k < len(known); k++ {
		from, to := known[k-1], known[k]
		if to-from < 2 {
			continue
		}

		a, _ := out[from].Ball()
		b, _ := out[to].Ball()
		for i := from + 1; i < to; i++ {
			t := float64(i-from) / float64(to-from)
			out[i][BallID] = Entity{BBox: lerpBox(a.BBox, b.BBox, t)}
		}
	}

	return out
}

func lerpBox(a, b geometry.BoundingBox, t float64) geometry.BoundingBox {
	lerp := func(x, y float64) float64 { return x + (y-x)*t }
	return geometry.BoundingBox{
		X1: lerp(a.X1, b.X1),
		Y1: lerp(a.Y1, b.Y1),
		X2: lerp(a.X2, b.X2),
		Y2: lerp(a.Y2, b.Y2),
	}
}

func cloneSequence(seq TrackSequence) TrackSequence {
	out := make(TrackSequence, len(seq))
	for i, frame := range seq {
		out[i] = make(Track, len(frame))
		for id, e := range frame {
			out[i][id] = e
		}
	}
	return out
}
