package report

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"github.com/chenBenjamin97/court-analytics/pkg/kinematics"
	"github.com/chenBenjamin97/court-analytics/pkg/possession"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var team1Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
var team2Color = color.RGBA{R: 128, G: 0, B: 0, A: 255}

//PlayerStats is the per player part of a game summary
type PlayerStats struct {
	ID             int     `json:"id"`
	DistanceMeters float64 `json:"distance_meters"`
	TopSpeedKmh    float64 `json:"top_speed_kmh"`
}

//Summary is the whole-video outcome of an analysis
type Summary struct {
	Frames       int               `json:"frames"`
	Team1Control float64           `json:"team1_control"`
	Team2Control float64           `json:"team2_control"`
	Events       possession.Counts `json:"events"`
	Players      []PlayerStats     `json:"players"`
}

//Summarize folds the per frame sequences of an analysis into totals
func Summarize(control []int, passes, interceptions possession.Events, distances, speeds []kinematics.Frame) Summary {
	s := Summary{Frames: len(control)}
	s.Team1Control, s.Team2Control = possession.ControlShare(control, len(control)-1)
	s.Events = possession.EventCounts(passes, interceptions, len(control)-1)

	total := make(map[int]float64)
	if cum := kinematics.CumulativeDistance(distances); len(cum) > 0 {
		total = cum[len(cum)-1]
	}
	top := kinematics.MaxSpeeds(speeds)

	ids := lo.Union(lo.Keys(total), lo.Keys(top))
	sort.Ints(ids)
	for _, id := range ids {
		s.Players = append(s.Players, PlayerStats{ID: id, DistanceMeters: total[id], TopSpeedKmh: top[id]})
	}

	return s
}

//SaveSummary writes the summary as indented JSON
func SaveSummary(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("SaveSummary: Error encoding summary, got '%v'", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0766); err != nil {
		return fmt.Errorf("SaveSummary: Error creating directory, got '%v'", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("SaveSummary: Error writing '%s', got '%v'", path, err)
	}
	return nil
}

//LoadSummary reads a summary written by SaveSummary
func LoadSummary(path string) (Summary, error) {
	var s Summary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("LoadSummary: Error decoding '%s', got '%v'", path, err)
	}
	return s, nil
}

//PlotControl draws each team's cumulative ball control share (percent) over the frames of the video and saves it
//as an image. The format follows the file extension (png, svg, pdf...).
func PlotControl(control []int, path string) error {
	if len(control) == 0 {
		return fmt.Errorf("PlotControl: Error, no frames to plot")
	}

	team1Pts := make(plotter.XYs, len(control))
	team2Pts := make(plotter.XYs, len(control))
	for i := range control {
		t1, t2 := possession.ControlShare(control, i)
		team1Pts[i] = plotter.XY{X: float64(i), Y: t1 * 100}
		team2Pts[i] = plotter.XY{X: float64(i), Y: t2 * 100}
	}

	p := plot.New()
	p.Title.Text = "Team ball control"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Control (%)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.Add(plotter.NewGrid())

	team1Line, err := plotter.NewLine(team1Pts)
	if err != nil {
		return fmt.Errorf("PlotControl: Error creating team 1 line, got '%v'", err)
	}
	team1Line.Color = team1Color
	team1Line.Width = vg.Points(1.5)

	team2Line, err := plotter.NewLine(team2Pts)
	if err != nil {
		return fmt.Errorf("PlotControl: Error creating team 2 line, got '%v'", err)
	}
	team2Line.Color = team2Color
	team2Line.Width = vg.Points(1.5)

	p.Add(team1Line, team2Line)
	p.Legend.Add("Team 1", team1Line)
	p.Legend.Add("Team 2", team2Line)
	p.Legend.Top = true

	if err := os.MkdirAll(filepath.Dir(path), 0766); err != nil {
		return fmt.Errorf("PlotControl: Error creating directory, got '%v'", err)
	}
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("PlotControl: Error saving '%s', got '%v'", path, err)
	}
	return nil
}
