package team

import (
	"log"

	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
)

//Team ids
const (
	Team1 = 1
	Team2 = 2
)

//DefaultResetEvery is how many frames a cached classification is trusted before players are classified again
const DefaultResetEvery = 50

//Assignment maps player id to team id, one map per frame
type Assignment []map[int]int

//Classifier decides the team of a single player in a single frame
type Classifier interface {
	ClassifyPlayer(frame, playerID int, box geometry.BoundingBox) (int, error)
}

//ClassifierFunc adapts a plain function to the Classifier interface
type ClassifierFunc func(frame, playerID int, box geometry.BoundingBox) (int, error)

func (f ClassifierFunc) ClassifyPlayer(frame, playerID int, box geometry.BoundingBox) (int, error) {
	return f(frame, playerID, box)
}

//Cache remembers the team of every player id. It is emptied at every frame index divisible by ResetEvery,
//so a tracker id that gets reused by another player is eventually reclassified.
type Cache struct {
	ResetEvery int
	teams      map[int]int
}

func NewCache(resetEvery int) *Cache {
	return &Cache{ResetEvery: resetEvery, teams: make(map[int]int)}
}

//Advance must be called once per frame, before looking up that frame's players
func (c *Cache) Advance(frame int) {
	if c.ResetEvery > 0 && frame%c.ResetEvery == 0 {
		c.teams = make(map[int]int)
	}
}

func (c *Cache) Get(playerID int) (int, bool) {
	team, ok := c.teams[playerID]
	return team, ok
}

func (c *Cache) Set(playerID, team int) {
	c.teams[playerID] = team
}

func (c *Cache) Len() int {
	return len(c.teams)
}

//Assigner labels every tracked player with a team, consulting the classifier only for players not in the cache
type Assigner struct {
	cache *Cache
}

func NewAssigner(cache *Cache) *Assigner {
	return &Assigner{cache: cache}
}

//AssignTeams returns the team assignment of every frame. A player the classifier fails on is logged and left
//unassigned for that frame.
func (a *Assigner) AssignTeams(players tracks.TrackSequence, classifier Classifier) Assignment {
	out := make(Assignment, len(players))

	for f, frame := range players {
		a.cache.Advance(f)
		out[f] = make(map[int]int, len(frame))

		for _, id := range frame.IDs() {
			if team, ok := a.cache.Get(id); ok {
				out[f][id] = team
				continue
			}

			team, err := classifier.ClassifyPlayer(f, id, frame[id].BBox)
			if err != nil {
				log.Printf("AssignTeams: Error classifying player %d at frame %d, got '%v'", id, f, err)
				continue
			}
			if team != Team1 && team != Team2 {
				log.Printf("AssignTeams: Classifier returned unknown team %d for player %d, skipping", team, id)
				continue
			}

			a.cache.Set(id, team)
			out[f][id] = team
		}
	}

	return out
}
