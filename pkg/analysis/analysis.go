package analysis

import (
	"log"

	"github.com/chenBenjamin97/court-analytics/pkg/detector"
	"github.com/chenBenjamin97/court-analytics/pkg/kinematics"
	"github.com/chenBenjamin97/court-analytics/pkg/possession"
	"github.com/chenBenjamin97/court-analytics/pkg/report"
	"github.com/chenBenjamin97/court-analytics/pkg/tactical"
	"github.com/chenBenjamin97/court-analytics/pkg/team"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
)

//Config holds every tunable of an analysis run
type Config struct {
	Possession     possession.Config
	MaxBallStep    float64
	TeamResetEvery int
	FPS            float64
	Court          tactical.Court
}

func DefaultConfig() Config {
	return Config{
		Possession:     possession.DefaultConfig(),
		MaxBallStep:    tracks.DefaultMaxBallStep,
		TeamResetEvery: team.DefaultResetEvery,
		FPS:            kinematics.DefaultFPS,
		Court:          tactical.DefaultCourt(),
	}
}

//Result holds every per frame sequence produced by an analysis, all aligned by frame index
type Result struct {
	Players       tracks.TrackSequence
	Balls         tracks.TrackSequence
	Teams         team.Assignment
	Possession    possession.Sequence
	Passes        possession.Events
	Interceptions possession.Events
	Control       []int
	Keypoints     []tactical.KeypointFrame
	Tactical      []tactical.Positions
	Distances     []kinematics.Frame
	Speeds        []kinematics.Frame
	Covered       []kinematics.Frame
}

//Frames returns the number of analyzed frames
func (r *Result) Frames() int {
	return len(r.Players)
}

//Run analyzes detector output: cleans the ball track, assigns teams, finds the ball holder, passes and interceptions,
//projects players on the tactical court and measures how far and how fast everyone ran.
func Run(d *detector.Detections, classifier team.Classifier, cfg Config) *Result {
	r := &Result{Players: d.Players}

	r.Balls = tracks.InterpolateBall(tracks.RemoveWrongDetections(d.Balls, cfg.MaxBallStep))

	r.Teams = team.NewAssigner(team.NewCache(cfg.TeamResetEvery)).AssignTeams(d.Players, classifier)
	assignment := possession.TeamAssignment(r.Teams)

	r.Possession = possession.NewDetector(cfg.Possession).DetectPossession(d.Players, r.Balls)
	r.Passes = possession.DetectPasses(r.Possession, assignment)
	r.Interceptions = possession.DetectInterceptions(r.Possession, assignment)
	r.Control = possession.TeamControl(r.Possession, assignment)

	converter := tactical.NewConverter(cfg.Court)
	r.Keypoints = converter.ValidateKeypoints(d.Keypoints)
	r.Tactical = converter.TransformPlayers(r.Keypoints, d.Players)

	calc := kinematics.NewCourtCalculator(cfg.Court)
	r.Distances = calc.CalculateDistance(r.Tactical)
	r.Speeds = calc.CalculateSpeed(r.Distances, cfg.FPS)
	r.Covered = kinematics.CumulativeDistance(r.Distances)

	log.Printf("Run: Analyzed %d frames, %d passes, %d interceptions", r.Frames(), countEvents(r.Passes), countEvents(r.Interceptions))

	return r
}

//Summary folds the result into whole-video totals
func (r *Result) Summary() report.Summary {
	return report.Summarize(r.Control, r.Passes, r.Interceptions, r.Distances, r.Speeds)
}

func countEvents(events possession.Events) int {
	n := 0
	for _, e := range events {
		if e != possession.NoTeam {
			n++
		}
	}
	return n
}
