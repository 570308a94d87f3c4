package video

import (
	"fmt"
	"image"
	"image/color"

	"github.com/chenBenjamin97/court-analytics/pkg/tactical"
	"gocv.io/x/gocv"
)

var courtFloorColor = color.RGBA{200, 160, 110, 0}

//tacticalOrigin is where the top left corner of the tactical view is drawn on every frame
var tacticalOrigin = image.Pt(20, 40)

//tacticalView draws the top-down court, with every player standing on it, over a corner of the frame
type tacticalView struct {
	court      tactical.Court
	background gocv.Mat
}

//newTacticalView loads the court image from imagePath, resized to the court canvas. With an empty path a plain court is drawn.
func newTacticalView(court tactical.Court, imagePath string) (*tacticalView, error) {
	if imagePath == "" {
		return &tacticalView{court: court, background: drawCourt(court)}, nil
	}

	img := gocv.IMRead(imagePath, gocv.IMReadColor)
	if img.Empty() {
		return nil, fmt.Errorf("newTacticalView: Error, could not read court image '%s'", imagePath)
	}
	defer img.Close()

	background := gocv.NewMat()
	gocv.Resize(img, &background, image.Pt(court.Width, court.Height), 0, 0, gocv.InterpolationLinear)

	return &tacticalView{court: court, background: background}, nil
}

func (v *tacticalView) Close() error {
	return v.background.Close()
}

//drawCourt paints the court outline, half court line, center circle and landmarks on an empty canvas
func drawCourt(court tactical.Court) gocv.Mat {
	img := gocv.NewMatWithSize(court.Height, court.Width, gocv.MatTypeCV8UC3)
	gocv.Rectangle(&img, image.Rect(0, 0, court.Width, court.Height), courtFloorColor, -1)
	gocv.Rectangle(&img, image.Rect(0, 0, court.Width-1, court.Height-1), whiteRGB, 2)
	gocv.Line(&img, image.Pt(court.Width/2, 0), image.Pt(court.Width/2, court.Height), whiteRGB, 2)
	gocv.Circle(&img, image.Pt(court.Width/2, court.Height/2), court.Height/8, whiteRGB, 2)

	for _, kp := range court.Keypoints {
		gocv.Circle(&img, image.Pt(int(kp.X), int(kp.Y)), 2, keypointColor, -1)
	}

	return img
}

//plot blends the court into the frame and marks every player with a dot of the player's team color, the ball holder circled in red
func (v *tacticalView) plot(frame *gocv.Mat, positions tactical.Positions, teams map[int]int, holder int) {
	rect := image.Rect(tacticalOrigin.X, tacticalOrigin.Y, tacticalOrigin.X+v.court.Width, tacticalOrigin.Y+v.court.Height)
	if !rect.In(image.Rect(0, 0, frame.Cols(), frame.Rows())) { //frame too small for the tactical view
		return
	}

	roi := frame.Region(rect)
	gocv.AddWeighted(v.background, 0.6, roi, 0.4, 0, &roi)
	roi.Close()

	for id, pos := range positions {
		center := tacticalOrigin.Add(image.Pt(int(pos.X), int(pos.Y)))
		gocv.Circle(frame, center, 5, teamColor(teams[id]), -1)
		if id == holder {
			gocv.Circle(frame, center, 8, ballHolderColor, 2)
		}
	}
}
