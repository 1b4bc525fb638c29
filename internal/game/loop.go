package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/car"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/config"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/logger"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/telemetry"
)

// RunDesktop opens the window and drives the whole demo until the window
// closes. Per-frame order is fixed: poll events, bind raw input, sample the
// aggregator, step the simulator, then let the camera, renderer, HUD and
// telemetry consume the resulting pose.
func RunDesktop(cfg *config.Config, hub *telemetry.Hub) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	sim, err := car.New(car.Params{
		MaxSpeed:           cfg.Vehicle.MaxSpeed,
		Accel:              cfg.Vehicle.Accel,
		BrakeRate:          cfg.Vehicle.BrakeRate,
		Drag:               cfg.Vehicle.Drag,
		SteerRateLow:       cfg.Vehicle.SteerRateLow,
		SteerRateHigh:      cfg.Vehicle.SteerRateHigh,
		Grip:               cfg.Vehicle.Grip,
		LaneHalfWidth:      cfg.Vehicle.LaneHalfWidth,
		BodyHalfWidth:      cfg.Vehicle.BodyHalfWidth,
		WheelCircumference: cfg.Vehicle.WheelCircumference,
	})
	if err != nil {
		return err
	}

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	var engine *EngineAudio
	if cfg.Audio.Enabled {
		if engine, err = InitEngineAudio(); err != nil {
			logger.L().Warn("audio init failed, continuing without sound", "error", err)
			engine = nil
		} else {
			engine.Start()
			defer engine.Close()
		}
	}

	controls := NewControls(cfg.Input, window)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, _, _ int) {
		controls.InvalidatePads()
	})

	session := NewSession()
	cam := NewCamera(DefaultZoom)
	hud := NewHUD(cfg.Window.Title)

	// GL state: flat 2D sprites, grass-green clear.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.13, 0.35, 0.16, 1.0)

	logger.L().Info("driving", "max_speed", cfg.Vehicle.MaxSpeed, "telemetry", cfg.Telemetry.Enabled)

	// Reusable sprite buffers.
	var worldBuf, padBuf []float32
	wheelPhase := 0.0
	telemTimer := 0.0

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > car.MaxStep {
			dt = car.MaxStep
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if controls.JustPressed(window, glfw.KeySpace) {
			session.TogglePause()
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Input before physics, physics before consumers.
		controls.Poll(window)
		sig := controls.Agg.Sample(dt)
		st := sim.Step(car.Controls{
			Steer:    sig.Steer,
			Throttle: sig.Throttle,
			Brake:    sig.Brake,
		}, session.StepDT(dt))

		wheelPhase += st.WheelSpin
		cam.Follow(st)
		if engine != nil {
			engine.Update(st.Speed/sim.Params().MaxSpeed, sig.Throttle)
		}

		rend.BeginFrame(fbW, fbH)
		worldBuf = worldBuf[:0]
		worldBuf = TrackSprites(worldBuf, cam, sim.Params().LaneHalfWidth)
		worldBuf = CarSprites(worldBuf, st, wheelPhase)
		rend.DrawSprites(worldBuf, cam, fbW, fbH)

		// Pad geometry is window-space; scale to framebuffer pixels.
		winW, _ := window.GetSize()
		scale := 1.0
		if winW > 0 {
			scale = float64(fbW) / float64(winW)
		}
		padBuf = padBuf[:0]
		padBuf = PadOverlay(padBuf, controls.Pads(), scale)
		rend.DrawScreenGlow(padBuf, fbW, fbH)
		padBuf = padBuf[:0]
		padBuf = PadMarkers(padBuf, controls.Pads(), scale)
		rend.DrawScreenSprites(padBuf, fbW, fbH)

		hud.Update(window, st, session.Paused(), dt)

		if hub != nil {
			telemTimer -= dt
			if telemTimer <= 0 {
				telemTimer = TelemetryInterval
				hub.Publish(telemetry.Frame{
					Time:     session.Elapsed,
					Speed:    st.Speed,
					Distance: st.Distance,
					PosX:     st.Pos.X,
					PosY:     st.Pos.Y,
					PosZ:     st.Pos.Z,
					Heading:  st.Heading,
					Steer:    sig.Steer,
					Throttle: sig.Throttle,
					Brake:    sig.Brake,
				})
			}
		}

		window.SwapBuffers()
	}
	return nil
}
