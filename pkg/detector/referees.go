package detector

import (
	"sort"

	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
)

const (
	//minCorrespondingRatio is the overlap, on both axes, for two boxes to be considered the same person
	minCorrespondingRatio = 0.75
	//minRefereeRatio is the share of a player's appearances that must match a referee box to mark it as referee
	minRefereeRatio = 0.75
)

//correspondingBoxes returns true when one box contains the other, or when they overlap by more than
//minCorrespondingRatio on both axes of one of them
func correspondingBoxes(a, b geometry.BoundingBox) bool {
	inter, ok := geometry.Intersection(a, b)
	if !ok {
		return false
	}
	if inter == a || inter == b {
		return true
	}

	w, h := geometry.Width(inter), geometry.Height(inter)
	covers := func(box geometry.BoundingBox) bool {
		return w >= minCorrespondingRatio*geometry.Width(box) && h >= minCorrespondingRatio*geometry.Height(box)
	}
	return covers(a) || covers(b)
}

//RefereeIDs returns the tracked ids that match a referee bounding box in at least minRefereeRatio of their appearances
func (d *Detections) RefereeIDs() []int {
	appearances := make(map[int]int)
	matches := make(map[int]int)

	for f, frame := range d.Players {
		for id, p := range frame {
			appearances[id]++
			for _, ref := range d.Referees[f] {
				if correspondingBoxes(ref, p.BBox) {
					matches[id]++
					break
				}
			}
		}
	}

	res := make([]int, 0)
	for id, n := range matches {
		if float64(n) >= float64(appearances[id])*minRefereeRatio {
			res = append(res, id)
		}
	}
	sort.Ints(res)
	return res
}

//RemoveReferees drops referees from the player tracks so they are not assigned to a team or given the ball,
//and returns their ids
func (d *Detections) RemoveReferees() []int {
	ids := d.RefereeIDs()
	for _, frame := range d.Players {
		for _, id := range ids {
			delete(frame, id)
		}
	}
	return ids
}
