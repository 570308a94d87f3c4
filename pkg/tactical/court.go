package tactical

import "github.com/golang/geo/r2"

//KeypointsNum is the number of court landmarks the keypoint detector reports per frame
const KeypointsNum = 18

//Court is the top-down reference court: canvas size in tactical units, real size in meters and the
//canonical landmark positions on the canvas
type Court struct {
	Width        int
	Height       int
	WidthMeters  float64
	HeightMeters float64
	Keypoints    []r2.Point
}

//DefaultCourt returns a 28m x 15m FIBA court drawn on a 300x161 canvas
func DefaultCourt() Court {
	return NewCourt(300, 161, 28.0, 15.0)
}

//NewCourt lays the 18 landmarks out on a width x height canvas. The landmark order is the one the keypoint
//detector was trained with: left baseline top to bottom, half court line, left free throw line, right baseline
//bottom to top, right free throw line.
func NewCourt(width, height int, widthMeters, heightMeters float64) Court {
	w, h := float64(width), float64(height)
	// pixel positions are truncated, the same as the court image the detector was labeled on
	px := func(meters float64) float64 { return float64(int(meters / widthMeters * w)) }
	py := func(meters float64) float64 { return float64(int(meters / heightMeters * h)) }
	halfX := float64(width / 2)
	freeThrowX := px(5.79)
	farFreeThrowX := px(widthMeters - 5.79)

	return Court{
		Width:        width,
		Height:       height,
		WidthMeters:  widthMeters,
		HeightMeters: heightMeters,
		Keypoints: []r2.Point{
			{X: 0, Y: 0},
			{X: 0, Y: py(0.91)},
			{X: 0, Y: py(5.18)},
			{X: 0, Y: py(10)},
			{X: 0, Y: py(14.1)},
			{X: 0, Y: h},

			{X: halfX, Y: h},
			{X: halfX, Y: 0},

			{X: freeThrowX, Y: py(5.18)},
			{X: freeThrowX, Y: py(10)},

			{X: w, Y: h},
			{X: w, Y: py(14.1)},
			{X: w, Y: py(10)},
			{X: w, Y: py(5.18)},
			{X: w, Y: py(0.91)},
			{X: w, Y: 0},

			{X: farFreeThrowX, Y: py(5.18)},
			{X: farFreeThrowX, Y: py(10)},
		},
	}
}

//Contains reports whether p lies on the canvas, borders included
func (c Court) Contains(p r2.Point) bool {
	return p.X >= 0 && p.X <= float64(c.Width) && p.Y >= 0 && p.Y <= float64(c.Height)
}

//MetersPerUnit returns the horizontal and vertical scale from canvas units to meters
func (c Court) MetersPerUnit() (float64, float64) {
	return c.WidthMeters / float64(c.Width), c.HeightMeters / float64(c.Height)
}
