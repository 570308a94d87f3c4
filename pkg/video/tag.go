package video

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/chenBenjamin97/court-analytics/pkg/analysis"
	"github.com/chenBenjamin97/court-analytics/pkg/detector"
	"github.com/chenBenjamin97/court-analytics/pkg/geometry"
	"github.com/chenBenjamin97/court-analytics/pkg/possession"
	"github.com/chenBenjamin97/court-analytics/pkg/report"
	"github.com/chenBenjamin97/court-analytics/pkg/tactical"
	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
	"github.com/chenBenjamin97/court-analytics/pkg/utils"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"
)

//Tag reads a video from the source directory, runs the detector on it (or loads its cached output), analyzes possession,
//passes, interceptions, tactical positions and player speeds and plots all of it above the video's frames.
//The tagged video is saved in the 'ready' directory in 'video.prod_format' format, the summary and ball control chart
//in the 'reports' directory. srcVideoName should include file's extension ('.mp4', etc.)
func Tag(srcVideoName string) error {
	name := utils.BaseName(srcVideoName)
	srcVideoPath := path.Join(viper.GetString("directory.source"), srcVideoName)
	tmpVideoPath := path.Join(viper.GetString("directory.temp"), name+".avi")
	outputVideoPath := path.Join(viper.GetString("directory.ready"), name+"."+viper.GetString("video.prod_format"))
	stubPath := path.Join(viper.GetString("directory.stubs"), name, utils.DetectionsStubName)
	reportsDir := path.Join(viper.GetString("directory.reports"), name)

	frames, fps, err := ReadFrames(srcVideoPath)
	if err != nil {
		return fmt.Errorf("Tag: Error, got '%v'", err)
	}
	defer CloseFrames(frames)

	detections, err := loadDetections(srcVideoPath, stubPath, len(frames))
	if err != nil {
		return fmt.Errorf("Tag: Error, got '%v'", err)
	}

	if refs := detections.RemoveReferees(); len(refs) > 0 {
		log.Printf("Tag: Ignoring referees %v in '%s'", refs, srcVideoName)
	}

	cfg := analysisConfig(fps)
	result := analysis.Run(detections, NewJerseyClassifier(frames, detections.Players), cfg)

	view, err := newTacticalView(cfg.Court, viper.GetString("court.image"))
	if err != nil {
		return fmt.Errorf("Tag: Error, got '%v'", err)
	}
	defer view.Close()

	for i := range frames {
		plotFrame(&frames[i], i, result, detections, view)
	}

	if err := WriteFrames(frames, tmpVideoPath, fps); err != nil {
		return fmt.Errorf("Tag: Error, got '%v'", err)
	}
	defer os.Remove(tmpVideoPath) //remove '.avi' temp file at the end of this function

	if err := convert(tmpVideoPath, outputVideoPath); err != nil {
		return fmt.Errorf("Tag: Error, got '%v'", err)
	}

	summary := result.Summary()
	if err := report.SaveSummary(path.Join(reportsDir, utils.SummaryFileName), summary); err != nil {
		log.Printf("Tag: Error, got '%v'", err)
	}
	if err := report.PlotControl(result.Control, path.Join(reportsDir, utils.ControlChartName)); err != nil {
		log.Printf("Tag: Error, got '%v'", err)
	}

	log.Printf("Tag: Finished '%s': %d frames, team 1 control %.2f%%, team 2 control %.2f%%", srcVideoName, summary.Frames, summary.Team1Control*100, summary.Team2Control*100)
	return nil
}

//loadDetections returns the detector output cached at stubPath when it matches the video's frame count, otherwise runs
//the detector and caches its output
func loadDetections(videoPath, stubPath string, frames int) (*detector.Detections, error) {
	cached := &detector.Detections{}
	if ok, err := tracks.ReadStub(stubPath, cached); err != nil {
		log.Printf("loadDetections: Error, got '%v'. Running detector", err)
	} else if ok && cached.Frames() == frames {
		cached.Resize(frames)
		return cached, nil
	}

	d, err := detector.RunDetector(viper.GetString("detector.script"), videoPath)
	if err != nil {
		return nil, err
	}

	if d.Frames() != frames {
		log.Printf("loadDetections: Detector reported %d frames, video has %d. Aligning to the video", d.Frames(), frames)
		d.Resize(frames)
	}

	if err := tracks.SaveStub(stubPath, d); err != nil {
		log.Printf("loadDetections: Error, got '%v'", err)
	}

	return d, nil
}

//analysisConfig builds the analysis tunables from configuration, videoFPS is used unless 'kinematics.fps' overrides it
func analysisConfig(videoFPS float64) analysis.Config {
	cfg := analysis.DefaultConfig()

	cfg.Possession = possession.Config{
		ProximityThreshold:   viper.GetFloat64("possession.proximity_threshold"),
		MinFrames:            viper.GetInt("possession.min_frames"),
		ContainmentThreshold: viper.GetFloat64("possession.containment_threshold"),
	}
	cfg.MaxBallStep = viper.GetFloat64("ball.max_step")
	cfg.TeamResetEvery = viper.GetInt("team.cache_reset_frames")

	cfg.FPS = videoFPS
	if fps := viper.GetFloat64("kinematics.fps"); fps > 0 {
		cfg.FPS = fps
	}

	cfg.Court = tactical.NewCourt(viper.GetInt("court.width"), viper.GetInt("court.height"), viper.GetFloat64("court.width_meters"), viper.GetFloat64("court.height_meters"))

	return cfg
}

//plotFrame draws everything known about frame f
func plotFrame(frame *gocv.Mat, f int, r *analysis.Result, d *detector.Detections, view *tacticalView) {
	holder := r.Possession[f]

	for _, id := range r.Players[f].IDs() {
		box := r.Players[f][id].BBox
		plotPlayer(frame, id, box, teamColor(r.Teams[f][id]))
		if id == holder {
			plotTriangle(frame, box, ballHolderColor)
		}
	}

	if ball, ok := r.Balls[f].Ball(); ok {
		plotTriangle(frame, ball.BBox, ballColor)
	}

	for _, hoop := range d.Hoops[f] {
		gocv.Rectangle(frame, geometry.Rect(hoop), hoopColor, 3)
	}

	plotKeypoints(frame, r.Keypoints[f])
	plotSpeedAndDistance(frame, r.Players[f], r.Speeds[f], r.Covered[f])
	view.plot(frame, r.Tactical[f], r.Teams[f], holder)
	plotControl(frame, r.Control, f)
	plotEvents(frame, r.Passes, r.Interceptions, f)
	plotFrameNumber(frame, f)
}
