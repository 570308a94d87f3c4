package tactical

import (
	"log"
	"math"

	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

//maxRatioError is the largest allowed difference between the pixel and court distance ratios of a keypoint
const maxRatioError = 0.8

//KeypointFrame holds the 18 detected court keypoints of one frame in pixel space. (0,0) means not detected.
type KeypointFrame []r2.Point

//Positions maps player id to its tactical (court canvas) position in one frame
type Positions map[int]r2.Point

func detected(p r2.Point) bool {
	return p.X > 0 && p.Y > 0
}

//DetectedIndices returns the indices of the keypoints the detector found, in ascending order
func (k KeypointFrame) DetectedIndices() []int {
	idx := make([]int, 0, len(k))
	for i, p := range k {
		if detected(p) {
			idx = append(idx, i)
		}
	}
	return idx
}

//Converter projects players from the broadcast camera view onto the tactical court
type Converter struct {
	court Court
}

func NewConverter(court Court) *Converter {
	return &Converter{court: court}
}

func (c *Converter) Court() Court {
	return c.court
}

//ValidateKeypoints zeroes detected keypoints whose distances to two other detected keypoints do not keep the
//proportions of the reference court. For keypoint i the reference pair is the first two other detected keypoints
//in index order; every point is judged against the frame as detected, so the result does not depend on which
//points get rejected first. Frames with fewer than 3 detections are kept as they are. The input is not modified.
func (c *Converter) ValidateKeypoints(frames []KeypointFrame) []KeypointFrame {
	out := make([]KeypointFrame, len(frames))

	for f, frame := range frames {
		out[f] = append(KeypointFrame(nil), frame...)

		found := frame.DetectedIndices()
		if len(found) < 3 {
			continue
		}

		for _, i := range found {
			if i >= len(c.court.Keypoints) {
				continue
			}

			j, k := referencePair(found, i)
			if j >= len(c.court.Keypoints) || k >= len(c.court.Keypoints) {
				continue
			}

			dij := geometry.Distance(frame[i], frame[j])
			dik := geometry.Distance(frame[i], frame[k])
			tij := geometry.Distance(c.court.Keypoints[i], c.court.Keypoints[j])
			tik := geometry.Distance(c.court.Keypoints[i], c.court.Keypoints[k])
			if tik == 0 || dik == 0 || tij == 0 {
				continue
			}

			if math.Abs(dij/dik-tij/tik) > maxRatioError {
				out[f][i] = r2.Point{}
			}
		}
	}

	return out
}

//referencePair returns the first two detected indices other than i. found must hold at least 3 indices.
func referencePair(found []int, i int) (int, int) {
	pair := make([]int, 0, 2)
	for _, j := range found {
		if j == i {
			continue
		}
		pair = append(pair, j)
		if len(pair) == 2 {
			break
		}
	}
	return pair[0], pair[1]
}

//FrameHomography builds the pixel to court transform of a single frame from its detected keypoints.
//It fails with a DegenerateTransformError when fewer than 4 keypoints were detected or they do not
//determine a transform.
func (c *Converter) FrameHomography(frame KeypointFrame) (*Homography, error) {
	found := frame.DetectedIndices()

	src := make([]r2.Point, 0, len(found))
	dst := make([]r2.Point, 0, len(found))
	for _, i := range found {
		if i >= len(c.court.Keypoints) {
			continue
		}
		src = append(src, frame[i])
		dst = append(dst, c.court.Keypoints[i])
	}

	if len(src) < minCorrespondences {
		return nil, degenerate("%d valid keypoints, need %d", len(src), minCorrespondences)
	}

	h, err := NewHomography(src, dst)
	if err != nil {
		return nil, errors.Wrap(err, "frame homography")
	}
	return h, nil
}

//Homographies returns one optional transform per frame: nil where the frame's keypoints could not be used
func (c *Converter) Homographies(frames []KeypointFrame) []*Homography {
	out := make([]*Homography, len(frames))
	failed := 0
	for f, frame := range frames {
		h, err := c.FrameHomography(frame)
		if err != nil {
			var degenerateErr *DegenerateTransformError
			if !errors.As(err, &degenerateErr) {
				log.Printf("Homographies: Error at frame %d, got '%v'", f, err)
			}
			failed++
			continue
		}
		out[f] = h
	}

	if failed > 0 {
		log.Printf("Homographies: %d of %d frames without a usable court transform", failed, len(frames))
	}
	return out
}

//TransformPlayers maps every player's foot position into court space, one Positions per player frame.
//Players landing outside the canvas or without a bounding box are left out, and frames without a usable transform yield empty Positions.
func (c *Converter) TransformPlayers(keypoints []KeypointFrame, players tracks.TrackSequence) []Positions {
	homographies := c.Homographies(keypoints)

	out := make([]Positions, len(players))
	for f, frame := range players {
		out[f] = make(Positions)
		if f >= len(homographies) || homographies[f] == nil {
			continue
		}

		for _, id := range frame.IDs() {
			if frame[id].BBox.IsZero() {
				continue
			}

			p := homographies[f].Apply(geometry.Foot(frame[id].BBox))
			if finite(p) && c.court.Contains(p) {
				out[f][id] = p
			}
		}
	}
	return out
}
