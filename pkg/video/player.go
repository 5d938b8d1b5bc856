package video

import (
	"log"
	"os"
	"os/exec"
	"path"
	"strings"

	"github.com/chenBenjamin97/snooker-tracker/pkg/settings"
	"github.com/chenBenjamin97/snooker-tracker/pkg/tracker"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"
)

//Analyze reads a video from the 'source' directory, runs the ball tracker over every frame
//and writes the annotated result (XVID (== MPEG-4 codec) format, '.avi' extension, converted
//to the production format at the end) into the 'ready' directory from the configuration file.
//srcVideoName should include file's extension ('.mp4', etc.)
func Analyze(srcVideoName string, colourSettings *settings.ColourDetection, ballSettings *settings.BallDetection) {
	srcVideoPath := path.Join(viper.GetString("directory.source"), srcVideoName)
	tmpVideoPath := path.Join(viper.GetString("directory.temp"), strings.Split(srcVideoName, ".")[0]+"."+"avi")
	outputVideoPath := path.Join(viper.GetString("directory.ready"), srcVideoName)

	cap, err := gocv.VideoCaptureFile(srcVideoPath)
	if err != nil {
		log.Printf("Analyze: Error, Got '%v'", err)
		return
	}
	defer cap.Close()

	videoWriter, err := gocv.VideoWriterFile(tmpVideoPath, "XVID", cap.Get(gocv.VideoCaptureFPS), int(cap.Get(gocv.VideoCaptureFrameWidth)), int(cap.Get(gocv.VideoCaptureFrameHeight)), true)
	if err != nil {
		log.Printf("Analyze: Error, Got '%v'", err)
		return
	}
	defer videoWriter.Close()
	defer os.Remove(tmpVideoPath) //remove '.avi' temp file at the end of this function

	t := tracker.New(tracker.LogSink{}, colourSettings, ballSettings)
	defer t.Close()
	t.UseBiggestContour(viper.GetBool("detection.biggest_contour"))

	frameMat := gocv.NewMat()
	defer frameMat.Close()
	grayMat := gocv.NewMat()
	defer grayMat.Close()
	binaryMat := gocv.NewMat()
	defer binaryMat.Close()
	hsvMat := gocv.NewMat()
	defer hsvMat.Close()

	threshold := float32(viper.GetFloat64("video.threshold"))
	if threshold == 0 {
		threshold = 175
	}

	processedFramesCounter := 0

	for cap.Read(&frameMat) {
		//build the three views of this frame the tracker consumes:
		//the colour output frame, the binary blob silhouette and the HSV conversion
		gocv.CvtColor(frameMat, &grayMat, gocv.ColorBGRToGray)
		gocv.Threshold(grayMat, &binaryMat, threshold, 255, gocv.ThresholdBinary)
		gocv.CvtColor(frameMat, &hsvMat, gocv.ColorBGRToHSV)

		img := tracker.Image{Output: frameMat, Binary: binaryMat, HSV: hsvMat}
		display, potted, potCount, err := t.ProcessFrame(img, tracker.ProcessOptions{})
		if err != nil {
			log.Printf("Analyze: Error processing frame %v of '%s', got '%v'", processedFramesCounter, srcVideoPath, err)
			return
		}

		if potted != "" {
			log.Printf("Analyze: '%s' frame %v: potted %v %s ball/s", srcVideoName, processedFramesCounter, potCount, strings.ToLower(potted))
		}

		videoWriter.Write(display)
		processedFramesCounter++
	}

	log.Printf("Analyze: Finished processing '%s', %v frames", srcVideoName, processedFramesCounter)

	//Convert to from 'avi' to 'mp4'. example: ffmpeg -i break.avi break.mp4
	cmd := exec.Command("ffmpeg", "-i", tmpVideoPath, outputVideoPath)
	if err := cmd.Run(); err != nil {
		log.Printf("Analyze: Error from ffmpeg, got '%v'", err)
	}
}
