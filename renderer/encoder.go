package renderer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	options "github.com/richinsley/gophong/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var errEncoderExited = errors.New("ffmpeg exited before all frames were written")

// getArgs builds the ffmpeg arguments for raw RGBA frames read bottom row
// first. goos picks the hardware encoder; codec names other than h264 and
// hevc are passed to ffmpeg as they are.
func getArgs(o *options.PhongOptions, width, height int, goos string) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": *o.FPS,
	}

	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}

	codec := *o.Codec
	var videoCodec string
	switch {
	case codec != "h264" && codec != "hevc":
		videoCodec = codec
	case goos == "darwin":
		videoCodec = codec + "_videotoolbox"
		outputArgs["b:v"] = "25M"
	case codec == "hevc":
		videoCodec = "libx265"
		outputArgs["crf"] = 20
	default:
		videoCodec = "libx264"
		outputArgs["crf"] = 18
		outputArgs["preset"] = "fast"
	}
	outputArgs["c:v"] = videoCodec

	isHEVC := strings.HasPrefix(videoCodec, "hevc") || videoCodec == "libx265"
	if isHEVC && strings.HasSuffix(*o.OutputFile, ".mp4") {
		outputArgs["tag:v"] = "hvc1"
	}
	return
}

// encoder feeds frames to an ffmpeg process through a pipe.
type encoder struct {
	pipeWriter *io.PipeWriter
	errc       chan error
}

func startEncoder(o *options.PhongOptions, width, height int, goos string) *encoder {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := getArgs(o, width, height, goos)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*o.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if *o.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*o.FFMPEGPath)
	}

	e := &encoder{
		pipeWriter: pipeWriter,
		errc:       make(chan error, 1),
	}
	go func() {
		err := ffmpegCmd.Run()
		// unblock a writer waiting on a dead process
		pipeReader.CloseWithError(errEncoderExited)
		e.errc <- err
	}()
	return e
}

func (e *encoder) WriteFrame(pixels []byte) error {
	_, err := e.pipeWriter.Write(pixels)
	return err
}

// Close signals end of stream and waits for ffmpeg to finish.
func (e *encoder) Close() error {
	e.pipeWriter.Close()
	if err := <-e.errc; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
