package main

import (
	"flag"
	"os"

	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/config"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/game"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/logger"
	"github.com/Dhrubo-The-Bear/DhruRacingGame/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to YAML config")
	telemetryAddr := flag.String("telemetry", "", "telemetry listen address (overrides config, empty = config)")
	noAudio := flag.Bool("no-audio", false, "disable engine audio")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.L().Error("load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: cfg.Logging.Level})

	if *telemetryAddr != "" {
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.Addr = *telemetryAddr
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}

	var hub *telemetry.Hub
	if cfg.Telemetry.Enabled {
		hub = telemetry.NewHub()
		go func() {
			if err := telemetry.Serve(cfg.Telemetry.Addr, hub); err != nil {
				logger.L().Error("telemetry server stopped", "error", err)
			}
		}()
	}

	if err := game.RunDesktop(cfg, hub); err != nil {
		logger.L().Error("run", "error", err)
		os.Exit(1)
	}
}
