package geometry

import (
	"image"
	"math"

	"github.com/golang/geo/r2"
)

//BoundingBox is a pixel rectangle given by its top-left (X1,Y1) and bottom-right (X2,Y2) corners
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

//Box builds a BoundingBox from corner coordinates
func Box(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

//IsZero returns true for the {(0,0),(0,0)} box the detector emits when nothing was found
func (b BoundingBox) IsZero() bool {
	return b.X1 == 0 && b.Y1 == 0 && b.X2 == 0 && b.Y2 == 0
}

func Center(b BoundingBox) r2.Point {
	return r2.Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

//Foot returns the bottom center of the box, where a standing player touches the court
func Foot(b BoundingBox) r2.Point {
	return r2.Point{X: (b.X1 + b.X2) / 2, Y: b.Y2}
}

func Width(b BoundingBox) float64 {
	return b.X2 - b.X1
}

func Height(b BoundingBox) float64 {
	return b.Y2 - b.Y1
}

func Area(b BoundingBox) float64 {
	w, h := Width(b), Height(b)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

//Distance is the euclidean distance between two points
func Distance(p, q r2.Point) float64 {
	return p.Sub(q).Norm()
}

//XYDistance returns the per-axis difference p-q
func XYDistance(p, q r2.Point) r2.Point {
	return p.Sub(q)
}

//Intersection returns the overlapping box of a and b and false when they do not overlap
func Intersection(a, b BoundingBox) (BoundingBox, bool) {
	i := BoundingBox{
		X1: math.Max(a.X1, b.X1),
		Y1: math.Max(a.Y1, b.Y1),
		X2: math.Min(a.X2, b.X2),
		Y2: math.Min(a.Y2, b.Y2),
	}
	if i.X2 <= i.X1 || i.Y2 <= i.Y1 {
		return BoundingBox{}, false
	}
	return i, true
}

//ContainmentRatio returns the fraction of ball's area lying inside player, always in [0,1].
//A ball with zero area yields 0.
func ContainmentRatio(player, ball BoundingBox) float64 {
	inter, ok := Intersection(player, ball)
	if !ok {
		return 0
	}
	ballArea := Area(ball)
	if ballArea == 0 {
		return 0
	}
	return math.Min(1, Area(inter)/ballArea)
}

//Rect converts the box to an integer image.Rectangle, used for drawing and cropping
func Rect(b BoundingBox) image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2))
}

//Clamp fits the box inside a frame of given width and height
func Clamp(b BoundingBox, frameWidth, frameHeight float64) BoundingBox {
	clamp := func(v, hi float64) float64 {
		return math.Min(math.Max(v, 0), hi)
	}
	return BoundingBox{
		X1: clamp(b.X1, frameWidth),
		Y1: clamp(b.Y1, frameHeight),
		X2: clamp(b.X2, frameWidth),
		Y2: clamp(b.Y2, frameHeight),
	}
}
