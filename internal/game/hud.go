package game

import (
	"fmt"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/car"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/logger"
)

// Readout formats the driver-facing speed/odometer text.
func Readout(st car.State) string {
	return fmt.Sprintf("%.0f km/h | %.0f m", st.Speed*3.6, math.Round(st.Distance))
}

// HUD writes the readout into the window title a few times a second and logs
// it once a second. No font assets, no draw calls.
type HUD struct {
	base       string
	titleTimer float64
	logTimer   float64
}

func NewHUD(baseTitle string) *HUD {
	return &HUD{base: baseTitle}
}

func (h *HUD) Update(window *glfw.Window, st car.State, paused bool, dt float64) {
	h.titleTimer -= dt
	h.logTimer -= dt

	if h.titleTimer <= 0 {
		h.titleTimer = HUDInterval
		title := fmt.Sprintf("%s — %s", h.base, Readout(st))
		if paused {
			title += " [paused]"
		}
		window.SetTitle(title)
	}
	if h.logTimer <= 0 {
		h.logTimer = LogInterval
		logger.L().Info("readout",
			"kmh", fmt.Sprintf("%.1f", st.Speed*3.6),
			"distance_m", fmt.Sprintf("%.0f", st.Distance),
			"paused", paused)
	}
}
