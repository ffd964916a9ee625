// Package frames samples a compiled scene at frame timestamps and produces
// indexed raster frames, in parallel where the host allows.
package frames

import (
	"context"
	"image"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/aksappy/beam/internal/render"
	"github.com/aksappy/beam/internal/scene"
	"github.com/aksappy/beam/internal/system"
	"github.com/aksappy/beam/internal/timeline"
)

// Snapshot is the fully resolved state of every scene object at one sampled
// time. Objects are derived copies; the compiled scene is never mutated.
type Snapshot struct {
	Index   int
	Time    float64
	Objects []scene.Object
}

// Frame is a rasterized snapshot tagged with its sequence number so the
// consumer can place it regardless of which worker finished first.
type Frame struct {
	Index int
	Image *image.RGBA
}

// Schedule samples a compiled scene at a fixed frame rate. It is stateless
// and restartable: Snapshot and Render may be called any number of times and
// always yield the same results.
type Schedule struct {
	compiled *timeline.Compiled
	duration float64
	fps      int
}

// NewSchedule creates a schedule over the compiled scene. The duration is
// the compiled effective duration unless the caller overrides it (static
// scenes carry their display time outside the timeline).
func NewSchedule(c *timeline.Compiled, duration float64, fps int) *Schedule {
	return &Schedule{compiled: c, duration: duration, fps: fps}
}

// FrameCount returns the number of sampled frames:
// k = 0 .. ceil(duration * fps), inclusive.
func (s *Schedule) FrameCount() int {
	return int(math.Ceil(s.duration*float64(s.fps))) + 1
}

// Timestamp returns the sample time of frame k, clamped so the final frame
// lands exactly at the scene duration.
func (s *Schedule) Timestamp(k int) float64 {
	t := float64(k) / float64(s.fps)
	if t > s.duration {
		t = s.duration
	}
	return t
}

// Snapshot resolves every animated property at frame k and overlays the
// results onto copies of the base objects.
func (s *Schedule) Snapshot(k int) Snapshot {
	t := s.Timestamp(k)
	objs := make([]scene.Object, len(s.compiled.Scene.Objects))
	for i, o := range s.compiled.Scene.Objects {
		objs[i] = o.Clone()
	}
	for _, tr := range s.compiled.Tracks {
		objs[tr.Object].Props[tr.Property] = tr.Resolve(t)
	}
	return Snapshot{Index: k, Time: t, Objects: objs}
}

// Render rasterizes every frame of the schedule on a pool of workers and
// hands them to emit in index order. Frame buffers are recycled once emit
// returns, so emit must not retain the image. Scenes without animations are
// rasterized once and replayed for every frame.
func (s *Schedule) Render(ctx context.Context, cam scene.Camera, workers int, emit func(Frame) error) error {
	n := s.FrameCount()

	if len(s.compiled.Tracks) == 0 {
		img, err := render.Render(cam, s.compiled.Scene.Objects)
		if err != nil {
			return err
		}
		for k := 0; k < n; k++ {
			if err := emit(Frame{Index: k, Image: img}); err != nil {
				return err
			}
		}
		return nil
	}

	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	results := make(chan Frame, workers)

	g.Go(func() error {
		defer close(jobs)
		for k := 0; k < n; k++ {
			select {
			case jobs <- k:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for k := range jobs {
				snap := s.Snapshot(k)
				img, err := render.Render(cam, snap.Objects)
				if err != nil {
					return err
				}
				select {
				case results <- Frame{Index: k, Image: img}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	g.Go(func() error {
		pending := make(map[int]Frame)
		next := 0
		for {
			select {
			case f, ok := <-results:
				if !ok {
					return nil
				}
				pending[f.Index] = f
				for {
					buffered, ok := pending[next]
					if !ok {
						break
					}
					if err := emit(buffered); err != nil {
						return err
					}
					system.PutImage(buffered.Image)
					delete(pending, next)
					next++
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	return g.Wait()
}
