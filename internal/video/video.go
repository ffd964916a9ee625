// Package video is the external encoding boundary: it streams rasterized
// frames to ffmpeg as raw RGBA over stdin. The core's contract ends at the
// pixel buffer plus its index; everything past WriteFrame is ffmpeg's
// business.
package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"

	"github.com/aksappy/beam/internal/config"
)

// Encoder turns an ordered stream of frames into a video file.
type Encoder interface {
	Start(ctx context.Context, cfg *config.Config, width, height int) (Session, error)
}

// Session accepts frames in index order. Close flushes and finalizes the
// container.
type Session interface {
	WriteFrame(img *image.RGBA) error
	Close() error
}

type FFmpegEncoder struct{}

func (e *FFmpegEncoder) Start(ctx context.Context, cfg *config.Config, width, height int) (Session, error) {
	args := buildFFmpegArgs(cfg, width, height)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	return &ffmpegSession{cmd: cmd, stdin: stdin, log: &out}, nil
}

type ffmpegSession struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	log   *bytes.Buffer
}

func (s *ffmpegSession) WriteFrame(img *image.RGBA) error {
	return writeRawRGBA(s.stdin, img)
}

func (s *ffmpegSession) Close() error {
	s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w\nlog: %s", err, s.log.String())
	}
	return nil
}

func buildFFmpegArgs(cfg *config.Config, width, height int) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d", cfg.FPS),
		"-i", "-",
		"-r", fmt.Sprintf("%d", cfg.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", cfg.VideoEncoder,
	}

	switch cfg.VideoEncoder {
	case "h264_videotoolbox":
		args = append(args, "-b:v", fmt.Sprintf("%dk", cfg.Quality*100))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", cfg.Quality))
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", cfg.Quality), "-preset", "medium")
	}

	args = append(args, cfg.OutputVideo)
	return args
}

func writeRawRGBA(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	if img.Stride != bounds.Dx()*4 || bounds.Min.X != 0 || bounds.Min.Y != 0 {
		normalized := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(normalized, normalized.Bounds(), img, bounds.Min, draw.Src)
		img = normalized
	}
	_, err := w.Write(img.Pix)
	return err
}
