package game

import "github.com/Dhrubo-The-Bear/DhruRacingGame/internal/car"

// Camera lives in the render plane: X matches world X, Y is -Z so driving
// forward moves up the screen. Zoom is screen pixels per world metre.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns a camera at the origin looking at the start line.
func NewCamera(zoom float64) Camera {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return Camera{Y: -CameraLookAhead, Zoom: zoom}
}

// Follow eases the camera toward a point ahead of the car. Frame-coupled
// blend, same pattern as the input smoothing.
func (c *Camera) Follow(st car.State) {
	tx := st.Pos.X
	ty := -(st.Pos.Z + CameraLookAhead)
	c.X += (tx - c.X) * CameraBlend
	c.Y += (ty - c.Y) * CameraBlend
}

// WorldY converts a world Z coordinate into the camera's render plane.
func WorldY(z float64) float64 { return -z }
