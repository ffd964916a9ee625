package scene

import (
	"github.com/aksappy/beam/internal/script"
)

// Default camera configuration when the script has no camera block.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Camera is the process-wide output configuration.
type Camera struct {
	Width         int
	Height        int
	BgR, BgG, BgB uint8
}

// BuildCamera validates the camera declaration. A nil declaration yields the
// defaults: 1920x1080 on a black background.
func BuildCamera(decl *script.Camera) (Camera, error) {
	cam := Camera{Width: DefaultWidth, Height: DefaultHeight}
	if decl == nil {
		return cam, nil
	}

	for name, raw := range decl.Props {
		switch name {
		case "width":
			if raw.Kind != script.KindNumber || raw.Num < 1 {
				return Camera{}, &CameraError{Property: name, Reason: "must be a positive number"}
			}
			cam.Width = int(raw.Num)
		case "height":
			if raw.Kind != script.KindNumber || raw.Num < 1 {
				return Camera{}, &CameraError{Property: name, Reason: "must be a positive number"}
			}
			cam.Height = int(raw.Num)
		case "background_color":
			if raw.Kind != script.KindColor {
				return Camera{}, &CameraError{Property: name, Reason: "must be a #RRGGBB color"}
			}
			cam.BgR, cam.BgG, cam.BgB = raw.R, raw.G, raw.B
		default:
			return Camera{}, &CameraError{Property: name, Reason: "is not a camera property"}
		}
	}

	return cam, nil
}
