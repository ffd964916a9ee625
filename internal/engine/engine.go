// Package engine drives the compile-then-render pipeline: validate every
// scene, compile its timeline, and stream rasterized frames to the encoder.
package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aksappy/beam/internal/config"
	"github.com/aksappy/beam/internal/frames"
	"github.com/aksappy/beam/internal/scene"
	"github.com/aksappy/beam/internal/script"
	"github.com/aksappy/beam/internal/system"
	"github.com/aksappy/beam/internal/timeline"
	"github.com/aksappy/beam/internal/video"
)

// DefaultStaticSceneDuration is how long a scene with no timeline and no
// declared duration stays on screen.
const DefaultStaticSceneDuration = 2.0

type Project struct {
	Config  *config.Config
	Doc     *script.Document
	Encoder video.Encoder
}

func NewProject(cfg *config.Config, doc *script.Document, enc video.Encoder) *Project {
	return &Project{Config: cfg, Doc: doc, Encoder: enc}
}

type compiledScene struct {
	name     string
	schedule *frames.Schedule
}

// Run compiles every scene, then renders and encodes the survivors
// back-to-back into one output stream. A scene that fails compilation is
// reported and skipped before any of its frames are produced; the other
// scenes continue. The returned error is non-nil if nothing compiled, if
// rendering or encoding failed, or if any scene had to be skipped.
func (p *Project) Run(ctx context.Context) error {
	startTime := time.Now()

	cam, err := scene.BuildCamera(p.Doc.Camera)
	if err != nil {
		return err
	}

	jobs, failed := p.compileScenes()
	if len(jobs) == 0 {
		return fmt.Errorf("no scene compiled successfully")
	}

	totalFrames := 0
	for _, j := range jobs {
		totalFrames += j.schedule.FrameCount()
	}

	workers := p.Config.Workers
	if workers <= 0 {
		workers = system.Workers(cam.Width, cam.Height)
	}

	fmt.Println("--- [PROJECT: BEAM ENGINE] ---")
	fmt.Printf("[*] Script: %s | Scenes: %d | Frames: %d\n", p.Config.InputPath, len(jobs), totalFrames)
	fmt.Printf("[*] Resolution: %dx%d @ %d FPS | Workers: %d\n", cam.Width, cam.Height, p.Config.FPS, workers)
	fmt.Println("------------------------------")

	renderStart := time.Now()
	session, err := p.Encoder.Start(ctx, p.Config, cam.Width, cam.Height)
	if err != nil {
		return err
	}

	offset := 0
	for _, j := range jobs {
		err := j.schedule.Render(ctx, cam, workers, func(f frames.Frame) error {
			return session.WriteFrame(f.Image)
		})
		if err != nil {
			session.Close()
			return fmt.Errorf("scene %q: %w", j.name, err)
		}
		offset += j.schedule.FrameCount()
		fmt.Printf("[>] Scene %q ready (%d/%d frames)\n", j.name, offset, totalFrames)
	}
	renderTime := time.Since(renderStart)

	if err := session.Close(); err != nil {
		return err
	}

	if p.Config.ShowStats {
		p.reportStats(startTime, renderTime, totalFrames)
	}

	if failed > 0 {
		return fmt.Errorf("%d scene(s) failed to compile", failed)
	}
	return nil
}

// compileScenes validates and compiles each scene independently. Failures
// are logged with their diagnostic and counted, not fatal to the run.
func (p *Project) compileScenes() ([]compiledScene, int) {
	var jobs []compiledScene
	failed := 0
	seen := make(map[string]bool)

	for _, sd := range p.Doc.Scenes {
		if seen[sd.Name] {
			log.Printf("[!] Scene %q: duplicate scene name, skipping", sd.Name)
			failed++
			continue
		}
		seen[sd.Name] = true

		sc, err := scene.Build(sd)
		if err != nil {
			log.Printf("[!] %v, skipping scene", err)
			failed++
			continue
		}

		compiled, err := timeline.Compile(sc, sd.Timeline)
		if err != nil {
			log.Printf("[!] %v, skipping scene", err)
			failed++
			continue
		}

		duration := compiled.Duration
		if sd.Timeline == nil && !sc.Declared {
			duration = DefaultStaticSceneDuration
		}

		jobs = append(jobs, compiledScene{
			name:     sd.Name,
			schedule: frames.NewSchedule(compiled, duration, p.Config.FPS),
		})
	}

	return jobs, failed
}

func (p *Project) reportStats(startTime time.Time, renderTime time.Duration, totalFrames int) {
	totalTime := time.Since(startTime)
	fps := float64(totalFrames) / totalTime.Seconds()

	fmt.Printf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Render+Encode: %.2fs\n"+
			"Frames: %d\n"+
			"Effective FPS: %.2f\n"+
			"----------------------------\n",
		p.Config.BuildVersion, totalTime.Seconds(), renderTime.Seconds(), totalFrames, fps,
	)

	logEntry := fmt.Sprintf("[%s] Build: %s | Input: %s | Frames: %d | Total: %.2fs | FPS: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(p.Config.InputPath),
		totalFrames,
		totalTime.Seconds(),
		fps,
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Failed to write benchmark.log: %v\n", err)
	}
}
