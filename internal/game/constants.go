package game

// Rendering scale.
const (
	DefaultZoom = 9.0 // screen pixels per world metre
)

// Chase camera.
const (
	CameraLookAhead = 6.0  // metres ahead of the car the camera aims at
	CameraBlend     = 0.15 // per-frame follow factor
)

// Track dressing (in metres). The corridor itself comes from the vehicle
// params; these only affect what gets drawn.
const (
	StripeStep   = 4.0   // spacing of centre-line dashes and kerb blocks
	PostStep     = 16.0  // spacing of roadside posts
	DrawAhead    = 120.0 // drawn track ahead of the camera
	DrawBehind   = 40.0  // drawn track behind the camera
	ShoulderPad  = 1.5   // grass strip between kerb and posts
	RoadTileSize = 6.0   // road surface tile sprite size
)

// On-screen pads, as fractions of the window size.
const (
	PadRadiusFrac = 0.13 // of window height
	PadMarginFrac = 0.06 // of window height, from the bottom-left/right corners
)

// Sprite batching.
const MaxSpriteRender = 8192

// HUD and telemetry cadence.
const (
	HUDInterval       = 0.25 // seconds between window-title refreshes
	LogInterval       = 1.0  // seconds between readout log lines
	TelemetryInterval = 0.05 // seconds between published frames
)
