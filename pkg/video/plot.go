package video

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/chenBenjamin97/court-analytics/pkg/kinematics"
	"github.com/chenBenjamin97/court-analytics/pkg/possession"
	"github.com/chenBenjamin97/court-analytics/pkg/tactical"
	"github.com/chenBenjamin97/court-analytics/pkg/team"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
	"gocv.io/x/gocv"
)

var lightUniformTeamColor = color.RGBA{255, 255, 255, 0}
var darkUniformTeamColor = color.RGBA{128, 0, 0, 0}
var unknownTeamColor = color.RGBA{0, 0, 255, 0}
var ballHolderColor = color.RGBA{255, 0, 0, 0}
var ballColor = color.RGBA{0, 255, 0, 0}
var hoopColor = color.RGBA{255, 255, 102, 0}
var keypointColor = color.RGBA{255, 0, 255, 0}
var whiteRGB = color.RGBA{255, 255, 255, 0}
var blackRGB = color.RGBA{0, 0, 0, 0}

func teamColor(teamID int) color.RGBA {
	switch teamID {
	case team.Team1:
		return lightUniformTeamColor
	case team.Team2:
		return darkUniformTeamColor
	default:
		return unknownTeamColor
	}
}

//textColorOn returns black or white, whichever is readable on given background
func textColorOn(background color.RGBA) color.RGBA {
	if int(background.R)+int(background.G)+int(background.B) > 3*128 {
		return blackRGB
	}
	return whiteRGB
}

//plotPlayer draws an ellipse under the player's feet and the player's ID below it
func plotPlayer(frame *gocv.Mat, id int, box geometry.BoundingBox, plotColor color.RGBA) {
	if box.IsZero() {
		return
	}

	foot := geometry.Foot(box)
	center := image.Pt(int(foot.X), int(foot.Y))
	width := int(geometry.Width(box))
	gocv.Ellipse(frame, center, image.Pt(width, int(0.35*float64(width))), 0, -45, 235, plotColor, 2)

	textBackgroundRect := image.Rect(center.X-20, center.Y+5, center.X+20, center.Y+25)
	gocv.Rectangle(frame, textBackgroundRect, plotColor, -1) //thickness -1 == filled rectangle
	gocv.PutText(frame, strconv.Itoa(id), image.Pt(textBackgroundRect.Min.X+6, textBackgroundRect.Max.Y-5), gocv.FontHersheySimplex, 0.5, textColorOn(plotColor), 2)
}

//plotTriangle draws a filled triangle pointing down at the top center of the box
func plotTriangle(frame *gocv.Mat, box geometry.BoundingBox, plotColor color.RGBA) {
	tip := image.Pt(int(geometry.Center(box).X), int(box.Y1))
	triangle := gocv.NewPointsVectorFromPoints([][]image.Point{{
		tip,
		image.Pt(tip.X-10, tip.Y-20),
		image.Pt(tip.X+10, tip.Y-20),
	}})
	defer triangle.Close()

	gocv.FillPoly(frame, triangle, plotColor)
	gocv.DrawContours(frame, triangle, 0, blackRGB, 2)
}

//plotKeypoints marks every detected court keypoint with its index
func plotKeypoints(frame *gocv.Mat, keypoints tactical.KeypointFrame) {
	for _, i := range keypoints.DetectedIndices() {
		pt := image.Pt(int(keypoints[i].X), int(keypoints[i].Y))
		gocv.Circle(frame, pt, 5, keypointColor, -1)
		gocv.PutText(frame, strconv.Itoa(i), image.Pt(pt.X, pt.Y-10), gocv.FontHersheySimplex, 0.5, keypointColor, 1)
	}
}

//plotSpeedAndDistance writes the current speed and total distance covered under every player
func plotSpeedAndDistance(frame *gocv.Mat, players tracks.Track, speeds, covered kinematics.Frame) {
	for _, id := range players.IDs() {
		speed, ok := speeds[id]
		if !ok {
			continue
		}

		foot := geometry.Foot(players[id].BBox)
		org := image.Pt(int(foot.X)-40, int(foot.Y)+45)
		gocv.PutText(frame, fmt.Sprintf("%.2f km/h", speed), org, gocv.FontHersheySimplex, 0.5, blackRGB, 2)
		gocv.PutText(frame, fmt.Sprintf("%.2f m", covered[id]), image.Pt(org.X, org.Y+20), gocv.FontHersheySimplex, 0.5, blackRGB, 2)
	}
}

//plotPanel draws a semi transparent white box with one text line per entry
func plotPanel(frame *gocv.Mat, rect image.Rectangle, lines []string) {
	overlay := frame.Clone()
	defer overlay.Close()

	gocv.Rectangle(&overlay, rect, whiteRGB, -1)
	gocv.AddWeighted(overlay, 0.8, *frame, 0.2, 0, frame)

	lineHeight := rect.Dy() / (len(lines) + 1)
	for i, line := range lines {
		gocv.PutText(frame, line, image.Pt(rect.Min.X+10, rect.Min.Y+lineHeight*(i+1)+5), gocv.FontHersheySimplex, 0.6, blackRGB, 2)
	}
}

//panelRect returns a panel rectangle anchored to the bottom right corner of the frame, row 0 being the lowest
func panelRect(frame *gocv.Mat, row int) image.Rectangle {
	width, height := frame.Cols(), frame.Rows()
	panelHeight := height / 12
	bottom := height - 20 - row*(panelHeight+10)
	return image.Rect(width*55/100, bottom-panelHeight, width-20, bottom)
}

//plotControl shows each team's share of ball control up to given frame
func plotControl(frame *gocv.Mat, control []int, f int) {
	team1, team2 := possession.ControlShare(control, f)
	plotPanel(frame, panelRect(frame, 0), []string{
		fmt.Sprintf("Team 1 Ball Control: %.2f%%", team1*100),
		fmt.Sprintf("Team 2 Ball Control: %.2f%%", team2*100),
	})
}

//plotEvents shows each team's passes and interceptions up to given frame
func plotEvents(frame *gocv.Mat, passes, interceptions possession.Events, f int) {
	c := possession.EventCounts(passes, interceptions, f)
	plotPanel(frame, panelRect(frame, 1), []string{
		fmt.Sprintf("Team 1 - Passes: %d Interceptions: %d", c.Team1Passes, c.Team1Interceptions),
		fmt.Sprintf("Team 2 - Passes: %d Interceptions: %d", c.Team2Passes, c.Team2Interceptions),
	})
}

func plotFrameNumber(frame *gocv.Mat, f int) {
	gocv.PutText(frame, fmt.Sprintf("Frame: %d", f), image.Pt(20, frame.Rows()-20), gocv.FontHersheySimplex, 0.8, whiteRGB, 2)
}
