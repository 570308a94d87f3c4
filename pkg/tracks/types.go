package tracks

import (
	"sort"

	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
)

//BallID is the track id the ball is stored under in every ball Track
const BallID = 1

//Entity is a single tracked object in a single frame
type Entity struct {
	BBox       geometry.BoundingBox `json:"bbox"`
	Confidence float32              `json:"confidence,omitempty"`
}

//Track maps a tracker id to its entity for one frame
type Track map[int]Entity

//TrackSequence holds one Track per video frame, index == frame number
type TrackSequence []Track

//NewTrackSequence allocates n empty frames
func NewTrackSequence(n int) TrackSequence {
	seq := make(TrackSequence, n)
	for i := range seq {
		seq[i] = make(Track)
	}
	return seq
}

//IDs returns the track ids of a frame in ascending order, so iteration is deterministic
func (t Track) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

//Ball returns the ball entity of a frame, if there is one
func (t Track) Ball() (Entity, bool) {
	e, ok := t[BallID]
	if !ok || e.BBox.IsZero() {
		return Entity{}, false
	}
	return e, true
}
