package video

import (
	"fmt"

	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/chenBenjamin97/court-analytics/pkg/team"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
	"gocv.io/x/gocv"
)

//JerseyClassifier decides a player's team by how bright the player's jersey is compared to the other players of the same frame.
//Lighter jerseys are Team1, darker jerseys Team2.
type JerseyClassifier struct {
	frames  []gocv.Mat
	players tracks.TrackSequence

	//split of the last classified frame, every player of a frame is classified together
	frame int
	teams map[int]int
}

func NewJerseyClassifier(frames []gocv.Mat, players tracks.TrackSequence) *JerseyClassifier {
	return &JerseyClassifier{frames: frames, players: players, frame: -1}
}

func (c *JerseyClassifier) ClassifyPlayer(frame, playerID int, _ geometry.BoundingBox) (int, error) {
	if frame < 0 || frame >= len(c.frames) || frame >= len(c.players) {
		return 0, fmt.Errorf("ClassifyPlayer: Error, frame %d out of range", frame)
	}

	if frame != c.frame {
		c.teams = team.SplitByBrightness(jerseyBrightness(c.frames[frame], c.players[frame]))
		c.frame = frame
	}

	t, ok := c.teams[playerID]
	if !ok {
		return 0, fmt.Errorf("ClassifyPlayer: Error, no visible jersey for player %d at frame %d", playerID, frame)
	}
	return t, nil
}

//jerseyBrightness returns the mean gray level of every player's jersey
func jerseyBrightness(frame gocv.Mat, players tracks.Track) map[int]float64 {
	grayFrame := gocv.NewMat()
	defer grayFrame.Close()

	gocv.CvtColor(frame, &grayFrame, gocv.ColorBGRToGray)
	width, height := float64(grayFrame.Cols()), float64(grayFrame.Rows())

	means := make(map[int]float64, len(players))
	for id, p := range players {
		if p.BBox.IsZero() {
			continue
		}

		box := geometry.Clamp(p.BBox, width, height)
		thirdW, thirdH := geometry.Width(box)/3, geometry.Height(box)/3

		//middle third of the bounding box, trying to catch uniform only
		roiRect := geometry.Rect(geometry.Box(box.X1+thirdW, box.Y1+thirdH, box.X2-thirdW, box.Y2-thirdH))
		if roiRect.Empty() {
			continue
		}

		roiGrayFrame := grayFrame.Region(roiRect)
		means[id] = roiGrayFrame.Mean().Val1
		roiGrayFrame.Close()
	}

	return means
}
