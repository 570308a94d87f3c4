package kinematics

import (
	"math"

	"github.com/chenBenjamin97/court-analytics/pkg/tactical"
	"github.com/golang/geo/r2"
	"github.com/samber/lo"
)

const (
	//DefaultCorrectionFactor shrinks measured distances to make up for foot position jitter and perspective noise
	DefaultCorrectionFactor = 0.4
	//DefaultWindow is the minimum number of moving frames needed for a speed estimate.
	//Speeds are measured over the last 3*DefaultWindow frames.
	DefaultWindow = 5
	//DefaultFPS is the frame rate speeds are computed with when the video does not report one
	DefaultFPS = 30.0
)

//Frame maps player id to a per-frame measure (meters moved, or km/h)
type Frame map[int]float64

//Calculator turns tactical positions into distances and speeds
type Calculator struct {
	WidthUnits       float64
	HeightUnits      float64
	WidthMeters      float64
	HeightMeters     float64
	CorrectionFactor float64
	Window           int
}

func NewCalculator(widthUnits, heightUnits int, widthMeters, heightMeters float64) *Calculator {
	return &Calculator{
		WidthUnits:       float64(widthUnits),
		HeightUnits:      float64(heightUnits),
		WidthMeters:      widthMeters,
		HeightMeters:     heightMeters,
		CorrectionFactor: DefaultCorrectionFactor,
		Window:           DefaultWindow,
	}
}

//NewCourtCalculator builds a calculator for the canvas and real size of a tactical court
func NewCourtCalculator(c tactical.Court) *Calculator {
	return NewCalculator(c.Width, c.Height, c.WidthMeters, c.HeightMeters)
}

//meters converts a canvas displacement to corrected meters, scaling each axis on its own
func (c *Calculator) meters(prev, curr r2.Point) float64 {
	dx := (curr.X - prev.X) * c.WidthMeters / c.WidthUnits
	dy := (curr.Y - prev.Y) * c.HeightMeters / c.HeightUnits
	return math.Hypot(dx, dy) * c.CorrectionFactor
}

//CalculateDistance returns per frame the meters each player moved since their previous recorded position.
//A player gets an entry only in frames where both the current and an earlier position exist.
func (c *Calculator) CalculateDistance(positions []tactical.Positions) []Frame {
	last := make(map[int]r2.Point)
	out := make([]Frame, len(positions))

	for f, frame := range positions {
		out[f] = make(Frame)
		for id, curr := range frame {
			if prev, ok := last[id]; ok {
				out[f][id] = c.meters(prev, curr)
			}
			last[id] = curr
		}
	}

	return out
}

//CalculateSpeed returns per frame the km/h of every player that has a distance in that frame. Distances are summed
//over the trailing 3*Window frames; the first frame a player shows up in the window only opens the run. With fewer
//than Window counted frames the speed is 0.
func (c *Calculator) CalculateSpeed(distances []Frame, fps float64) []Frame {
	span := c.Window * 3
	out := make([]Frame, len(distances))

	for f := range distances {
		out[f] = make(Frame, len(distances[f]))
		start := f - span + 1
		if start < 0 {
			start = 0
		}

		for id := range distances[f] {
			total, present, seen := 0.0, 0, false
			for i := start; i <= f; i++ {
				d, ok := distances[i][id]
				if !ok {
					continue
				}
				if seen {
					total += d
					present++
				}
				seen = true
			}

			out[f][id] = speedKmh(total, present, c.Window, fps)
		}
	}

	return out
}

func speedKmh(meters float64, frames, minFrames int, fps float64) float64 {
	if frames < minFrames || fps <= 0 {
		return 0
	}
	hours := float64(frames) / fps / 3600
	if hours <= 0 {
		return 0
	}
	return (meters / 1000) / hours
}

//CumulativeDistance returns, per frame, the total meters each player covered so far
func CumulativeDistance(distances []Frame) []Frame {
	running := make(Frame)
	out := make([]Frame, len(distances))
	for f, frame := range distances {
		for id, d := range frame {
			running[id] += d
		}
		out[f] = lo.Assign(running)
	}
	return out
}

//MaxSpeeds returns the top speed each player reached over the video
func MaxSpeeds(speeds []Frame) Frame {
	out := make(Frame)
	for _, frame := range speeds {
		for id, s := range frame {
			if s > out[id] {
				out[id] = s
			} else if _, ok := out[id]; !ok {
				out[id] = s
			}
		}
	}
	return out
}
