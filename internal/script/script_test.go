package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRawValueUnmarshal(t *testing.T) {
	tests := []struct {
		yaml string
		want RawValue
	}{
		{"42", RawValue{Kind: KindNumber, Num: 42}},
		{"2.5", RawValue{Kind: KindNumber, Num: 2.5}},
		{"[75, 360]", RawValue{Kind: KindTuple, X: 75, Y: 360}},
		{`"#FF0000"`, RawValue{Kind: KindColor, R: 255, Str: "#FF0000"}},
		{`"#1A2b3C"`, RawValue{Kind: KindColor, R: 0x1A, G: 0x2B, B: 0x3C, Str: "#1A2b3C"}},
		{"hello world", RawValue{Kind: KindString, Str: "hello world"}},
	}

	for _, tt := range tests {
		var got RawValue
		if err := yaml.Unmarshal([]byte(tt.yaml), &got); err != nil {
			t.Errorf("Unmarshal(%q) failed: %v", tt.yaml, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%q) = %+v, want %+v", tt.yaml, got, tt.want)
		}
	}
}

func TestRawValueUnmarshalErrors(t *testing.T) {
	for _, bad := range []string{`"#F00"`, `"#GGGGGG"`, "[1, 2, 3]", "[1]"} {
		var v RawValue
		if err := yaml.Unmarshal([]byte(bad), &v); err == nil {
			t.Errorf("Unmarshal(%q) succeeded, want an error", bad)
		}
	}
}

func TestSecondsUnmarshal(t *testing.T) {
	tests := []struct {
		yaml string
		want Seconds
	}{
		{"2", 2},
		{"0.5", 0.5},
		{`"2s"`, 2},
		{`"1500ms"`, 1.5},
		{`"250ms"`, 0.25},
	}

	for _, tt := range tests {
		var got Seconds
		if err := yaml.Unmarshal([]byte(tt.yaml), &got); err != nil {
			t.Errorf("Unmarshal(%q) failed: %v", tt.yaml, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%q) = %g, want %g", tt.yaml, got, tt.want)
		}
	}
}

func TestSecondsUnmarshalErrors(t *testing.T) {
	for _, bad := range []string{`"fast"`, `"2m"`, `"xs"`} {
		var s Seconds
		if err := yaml.Unmarshal([]byte(bad), &s); err == nil {
			t.Errorf("Unmarshal(%q) succeeded, want an error", bad)
		}
	}
}

const sampleScript = `
camera:
  properties:
    width: 1280
    height: 720
    background_color: "#101010"
scenes:
  - name: intro
    duration: 4
    objects:
      - type: square
        name: my_box
        properties:
          position: [75, 360]
          fill: "#FF0000"
    timeline:
      - start: 0
        end: 2
        target: my_box.position
        to: [1205, 360]
        easing: ease_in_out
      - start: "2500ms"
        target: my_box.fill
        to: "#00FF00"
`

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := writeFile(path, sampleScript); err != nil {
		t.Fatalf("writeFile failed: %v", err)
	}

	doc, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if doc.Camera == nil {
		t.Fatal("Expected a camera block")
	}
	if w := doc.Camera.Props["width"]; w.Kind != KindNumber || w.Num != 1280 {
		t.Errorf("Camera width = %+v, want number 1280", w)
	}
	if bg := doc.Camera.Props["background_color"]; bg.Kind != KindColor || bg.R != 0x10 {
		t.Errorf("Camera background = %+v, want color #101010", bg)
	}

	if len(doc.Scenes) != 1 {
		t.Fatalf("Expected 1 scene, got %d", len(doc.Scenes))
	}
	sc := doc.Scenes[0]
	if sc.Name != "intro" || sc.Duration == nil || *sc.Duration != 4 {
		t.Errorf("Scene = %q with duration %v, want intro with 4s", sc.Name, sc.Duration)
	}
	if len(sc.Objects) != 1 || sc.Objects[0].Kind != "square" || sc.Objects[0].Name != "my_box" {
		t.Fatalf("Objects = %+v, want one square named my_box", sc.Objects)
	}

	if len(sc.Timeline) != 2 {
		t.Fatalf("Expected 2 animations, got %d", len(sc.Timeline))
	}
	first := sc.Timeline[0]
	if first.Target != "my_box.position" || first.End == nil || *first.End != 2 || first.Easing != "ease_in_out" {
		t.Errorf("First animation = %+v, want my_box.position over [0, 2] with ease_in_out", first)
	}
	second := sc.Timeline[1]
	if second.Start != 2.5 || second.End != nil {
		t.Errorf("Second animation = %+v, want an instant change at 2.5s", second)
	}
	if second.To.Kind != KindColor || second.To.G != 255 {
		t.Errorf("Second animation target value = %+v, want color #00FF00", second.To)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Read of a missing file succeeded, want an error")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := writeFile(path, sampleScript); err != nil {
		t.Fatalf("writeFile failed: %v", err)
	}
	doc, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "copy.yaml")
	if err := Write(doc, out); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	again, err := Read(out)
	if err != nil {
		t.Fatalf("Read of the written file failed: %v", err)
	}

	if len(again.Scenes) != 1 || len(again.Scenes[0].Timeline) != 2 {
		t.Fatalf("Round trip lost content: %+v", again)
	}
	if got := again.Scenes[0].Objects[0].Props["position"]; got != doc.Scenes[0].Objects[0].Props["position"] {
		t.Errorf("Round trip changed position: %+v vs %+v", got, doc.Scenes[0].Objects[0].Props["position"])
	}
	if got := again.Scenes[0].Timeline[1].Start; got != 2.5 {
		t.Errorf("Round trip changed a normalized time: %g, want 2.5", got)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0644)
}
