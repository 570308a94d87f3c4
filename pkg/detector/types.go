package detector

import (
	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/chenBenjamin97/court-analytics/pkg/tactical"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
	"github.com/chenBenjamin97/court-analytics/pkg/utils"
)

//Object classes printed by the detector script in {"Class":...} lines
const (
	BallClass    = 0
	HoopClass    = 1
	RefereeClass = 2
)

//playerBoundingBox is a tracked player line printed by the detector script
type playerBoundingBox struct {
	ID         int
	Xmin       float64
	Ymin       float64
	Xmax       float64
	Ymax       float64
	Confidence float32
	InCourt    bool
}

func (p playerBoundingBox) box() geometry.BoundingBox {
	return geometry.Box(p.Xmin, p.Ymin, p.Xmax, p.Ymax)
}

//objectBoundingBox is an untracked detection (ball, hoop, referee) printed by the detector script
type objectBoundingBox struct {
	Class      int
	Confidence float32
	Xmin       float64
	Ymin       float64
	Xmax       float64
	Ymax       float64
}

func (o objectBoundingBox) box() geometry.BoundingBox {
	return geometry.Box(o.Xmin, o.Ymin, o.Xmax, o.Ymax)
}

//courtKeypoints is the court keypoint line printed by the detector script, [x, y] per landmark
type courtKeypoints struct {
	Keypoints [][2]float64
}

//Detections holds everything the detector found in a video, aligned by frame index
type Detections struct {
	Players   tracks.TrackSequence     `json:"players"`
	Balls     tracks.TrackSequence     `json:"balls"`
	Hoops     [][]geometry.BoundingBox `json:"hoops"`
	Referees  [][]geometry.BoundingBox `json:"referees"`
	Keypoints []tactical.KeypointFrame `json:"keypoints"`
}

//Frames returns how many frames the detector reported
func (d *Detections) Frames() int {
	return len(d.Players)
}

//newFrame appends an empty frame to every sequence
func (d *Detections) newFrame() {
	d.Resize(d.Frames() + 1)
}

func newTrack() tracks.Track { return make(tracks.Track) }

func noBoxes() []geometry.BoundingBox { return nil }

func newKeypointFrame() tactical.KeypointFrame { return make(tactical.KeypointFrame, tactical.KeypointsNum) }

//Resize truncates or pads every sequence to n frames, so detections line up with the frames actually read from the video.
//Padded frames are empty.
func (d *Detections) Resize(n int) {
	d.Players = utils.PadSequence(d.Players, n, newTrack)
	d.Balls = utils.PadSequence(d.Balls, n, newTrack)
	d.Hoops = utils.PadSequence(d.Hoops, n, noBoxes)
	d.Referees = utils.PadSequence(d.Referees, n, noBoxes)
	d.Keypoints = utils.PadSequence(d.Keypoints, n, newKeypointFrame)
}
