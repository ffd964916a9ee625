package frames

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aksappy/beam/internal/scene"
	"github.com/aksappy/beam/internal/script"
	"github.com/aksappy/beam/internal/timeline"
	"github.com/aksappy/beam/internal/value"
)

func sec(s float64) *script.Seconds {
	v := script.Seconds(s)
	return &v
}

func num(n float64) script.RawValue { return script.RawValue{Kind: script.KindNumber, Num: n} }
func tup(x, y float64) script.RawValue {
	return script.RawValue{Kind: script.KindTuple, X: x, Y: y}
}

func compiledScene(t *testing.T, anims []script.Animation) *timeline.Compiled {
	t.Helper()
	sc, err := scene.Build(script.Scene{
		Name: "main",
		Objects: []script.Object{
			{Kind: "circle", Name: "dot", Props: map[string]script.RawValue{
				"position": tup(10, 10),
				"radius":   num(5),
				"fill":     script.RawValue{Kind: script.KindColor, R: 255},
			}},
		},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	compiled, err := timeline.Compile(sc, anims)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return compiled
}

func movingScene(t *testing.T) *timeline.Compiled {
	t.Helper()
	return compiledScene(t, []script.Animation{
		{Start: 0, End: sec(1), Target: "dot.position", To: tup(50, 10)},
	})
}

func TestFrameCount(t *testing.T) {
	tests := []struct {
		duration float64
		fps      int
		want     int
	}{
		{3, 30, 91},
		{1, 30, 31},
		{0, 30, 1},
		{0.05, 30, 3}, // ceil(1.5) + 1
	}

	c := compiledScene(t, nil)
	for _, tt := range tests {
		s := NewSchedule(c, tt.duration, tt.fps)
		if got := s.FrameCount(); got != tt.want {
			t.Errorf("FrameCount(duration=%g, fps=%d) = %d, want %d", tt.duration, tt.fps, got, tt.want)
		}
	}
}

func TestTimestampClampedToDuration(t *testing.T) {
	s := NewSchedule(compiledScene(t, nil), 0.05, 30)

	if got := s.Timestamp(1); got != 1.0/30.0 {
		t.Errorf("Timestamp(1) = %g, want %g", got, 1.0/30.0)
	}
	if got := s.Timestamp(2); got != 0.05 {
		t.Errorf("Timestamp(2) = %g, want it clamped to 0.05", got)
	}

	s = NewSchedule(movingScene(t), 3, 30)
	if got := s.Timestamp(90); got != 3 {
		t.Errorf("Timestamp(90) = %g, want exactly 3", got)
	}
}

func TestSnapshotOverlaysResolvedValues(t *testing.T) {
	s := NewSchedule(movingScene(t), 1, 10)

	snap := s.Snapshot(5)
	if snap.Time != 0.5 {
		t.Fatalf("Snapshot time = %g, want 0.5", snap.Time)
	}
	if got := snap.Objects[0].Props["position"]; !got.Equal(value.Pt(30, 10)) {
		t.Errorf("Resolved position = %s, want (30, 10)", got)
	}
	if got := snap.Objects[0].Props["radius"]; !got.Equal(value.Num(5)) {
		t.Errorf("Unanimated radius = %s, want 5", got)
	}
}

func TestSnapshotIsRepeatable(t *testing.T) {
	s := NewSchedule(movingScene(t), 1, 10)

	first := s.Snapshot(7)
	second := s.Snapshot(7)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Snapshots for the same frame differ (-first +second):\n%s", diff)
	}
}

func TestSnapshotDoesNotMutateBase(t *testing.T) {
	c := movingScene(t)
	s := NewSchedule(c, 1, 10)

	s.Snapshot(10)
	if got := c.Scene.Objects[0].Props["position"]; !got.Equal(value.Pt(10, 10)) {
		t.Errorf("Base position = %s after Snapshot, want untouched (10, 10)", got)
	}
}

func TestRenderEmitsInOrder(t *testing.T) {
	s := NewSchedule(movingScene(t), 1, 10)
	cam := scene.Camera{Width: 64, Height: 36}

	var indices []int
	err := s.Render(context.Background(), cam, 4, func(f Frame) error {
		indices = append(indices, f.Index)
		return nil
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(indices) != s.FrameCount() {
		t.Fatalf("Emitted %d frames, want %d", len(indices), s.FrameCount())
	}
	for i, idx := range indices {
		if idx != i {
			t.Fatalf("Frame %d emitted at position %d", idx, i)
		}
	}
}

func TestRenderStaticSceneReusesOneImage(t *testing.T) {
	s := NewSchedule(compiledScene(t, nil), 2, 5)
	cam := scene.Camera{Width: 64, Height: 36}

	seen := 0
	var first *Frame
	err := s.Render(context.Background(), cam, 4, func(f Frame) error {
		if first == nil {
			copied := f
			first = &copied
		} else if f.Image != first.Image {
			t.Errorf("Frame %d rasterized separately in a static scene", f.Index)
		}
		seen++
		return nil
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if seen != s.FrameCount() {
		t.Errorf("Emitted %d frames, want %d", seen, s.FrameCount())
	}
}
