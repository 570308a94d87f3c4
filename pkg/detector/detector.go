package detector

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"

	"github.com/chenBenjamin97/court-analytics/pkg/tracks"
	"github.com/golang/geo/r2"
)

//maxLineSize bounds a single detector output line, keypoint lines of 4k frames can be long
const maxLineSize = 1024 * 1024

//RunDetector executes the python detector script (YOLO players/ball detection, ByteTrack tracking and court keypoints model)
//on the given video and returns everything it printed, aligned by frame index.
func RunDetector(script, videoPath string) (*Detections, error) {
	cmd := exec.Command("python3", script, "--video", videoPath)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("RunDetector: Error getting python's standard output, got '%v'", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("RunDetector: Error executing python's code, got '%v'", err)
	}

	detections, parseErr := Parse(stdout)

	//drain what is left so python is not blocked on a full pipe
	io.Copy(io.Discard, stdout)

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("RunDetector: Error waiting python's process, got '%v'", err)
	}
	if parseErr != nil {
		return nil, parseErr
	}

	return detections, nil
}

//Parse reads the detector line protocol:
//	Frame #: <n>                 starts a new frame
//	{"ID":...}                   tracked player bounding box
//	{"Class":...}                ball, hoop or referee bounding box
//	{"Keypoints":[[x,y],...]}    court keypoints of the current frame
//	EOF                          end of video
//Other lines (FPS prints, warnings) are skipped. A malformed line is logged and skipped.
func Parse(r io.Reader) (*Detections, error) {
	d := &Detections{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		text := string(line)

		if strings.Contains(text, "Frame #:") {
			d.newFrame()
			continue
		}

		if text == "EOF" {
			return d, nil
		}

		if strings.Contains(text, "FPS: ") { //this is a log print, skip it
			continue
		}

		frame := len(d.Players) - 1
		if frame < 0 {
			continue //nothing printed before the first frame is data
		}

		switch {
		case strings.HasPrefix(text, "{\"ID\":"):
			p := playerBoundingBox{}
			if err := json.Unmarshal(line, &p); err != nil {
				log.Printf("Parse: Error decoding player at frame %d, got '%v'", frame, err)
				continue
			}
			if !p.InCourt {
				continue
			}
			d.Players[frame][p.ID] = tracks.Entity{BBox: p.box(), Confidence: p.Confidence}

		case strings.HasPrefix(text, "{\"Class\":"):
			obj := objectBoundingBox{}
			if err := json.Unmarshal(line, &obj); err != nil {
				log.Printf("Parse: Error decoding object at frame %d, got '%v'", frame, err)
				continue
			}
			d.addObject(frame, obj)

		case strings.HasPrefix(text, "{\"Keypoints\":"):
			kp := courtKeypoints{}
			if err := json.Unmarshal(line, &kp); err != nil {
				log.Printf("Parse: Error decoding keypoints at frame %d, got '%v'", frame, err)
				continue
			}
			for i, xy := range kp.Keypoints {
				if i >= len(d.Keypoints[frame]) {
					break
				}
				d.Keypoints[frame][i] = r2.Point{X: xy[0], Y: xy[1]}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Parse: Error reading detector output, got '%v'", err)
	}

	return d, nil
}

//addObject stores an untracked detection. Only the most confident ball of a frame is kept.
func (d *Detections) addObject(frame int, obj objectBoundingBox) {
	box := obj.box()
	if box.IsZero() {
		return
	}

	switch obj.Class {
	case BallClass:
		if prev, ok := d.Balls[frame].Ball(); ok && prev.Confidence >= obj.Confidence {
			return
		}
		d.Balls[frame][tracks.BallID] = tracks.Entity{BBox: box, Confidence: obj.Confidence}
	case HoopClass:
		d.Hoops[frame] = append(d.Hoops[frame], box)
	case RefereeClass:
		d.Referees[frame] = append(d.Referees[frame], box)
	}
}
