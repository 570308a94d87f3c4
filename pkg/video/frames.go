package video

import (
	"fmt"
	"os/exec"

	"gocv.io/x/gocv"
)

//ReadFrames reads every frame of a video file and its frame rate. The caller owns the frames and must close them
//with CloseFrames.
func ReadFrames(videoPath string) ([]gocv.Mat, float64, error) {
	cap, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return nil, 0, fmt.Errorf("ReadFrames: Error opening '%s', got '%v'", videoPath, err)
	}
	defer cap.Close()

	fps := cap.Get(gocv.VideoCaptureFPS)

	frames := make([]gocv.Mat, 0)
	for {
		frame := gocv.NewMat()
		if !cap.Read(&frame) || frame.Empty() { //finished to read all video's frames
			frame.Close()
			break
		}
		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		return nil, 0, fmt.Errorf("ReadFrames: Error, no frames in '%s'", videoPath)
	}

	return frames, fps, nil
}

//WriteFrames saves frames as an XVID (== MPEG-4 codec) video, videoPath should have an '.avi' extension
func WriteFrames(frames []gocv.Mat, videoPath string, fps float64) error {
	if len(frames) == 0 {
		return fmt.Errorf("WriteFrames: Error, no frames to write")
	}

	videoWriter, err := gocv.VideoWriterFile(videoPath, "XVID", fps, frames[0].Cols(), frames[0].Rows(), true)
	if err != nil {
		return fmt.Errorf("WriteFrames: Error opening '%s', got '%v'", videoPath, err)
	}
	defer videoWriter.Close()

	for i, frame := range frames {
		if err := videoWriter.Write(frame); err != nil {
			return fmt.Errorf("WriteFrames: Error writing frame %d, got '%v'", i, err)
		}
	}

	return nil
}

//CloseFrames releases frames read by ReadFrames
func CloseFrames(frames []gocv.Mat) {
	for i := range frames {
		frames[i].Close()
	}
}

//convert re-encodes a video with ffmpeg, the output format follows dst's extension. example: ffmpeg -i game.avi game.mp4
func convert(src, dst string) error {
	cmd := exec.Command("ffmpeg", "-y", "-i", src, dst)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("convert: Error from ffmpeg, got '%v': %s", err, out)
	}
	return nil
}
