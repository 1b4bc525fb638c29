package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Vehicle   VehicleConfig   `yaml:"vehicle"`
	Input     InputConfig     `yaml:"input"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type VehicleConfig struct {
	MaxSpeed           float64 `yaml:"max_speed"`
	Accel              float64 `yaml:"accel"`
	BrakeRate          float64 `yaml:"brake_rate"`
	Drag               float64 `yaml:"drag"`
	SteerRateLow       float64 `yaml:"steer_rate_low"`
	SteerRateHigh      float64 `yaml:"steer_rate_high"`
	Grip               float64 `yaml:"grip"`
	LaneHalfWidth      float64 `yaml:"lane_half_width"`
	BodyHalfWidth      float64 `yaml:"body_half_width"`
	WheelCircumference float64 `yaml:"wheel_circumference"`
}

type InputConfig struct {
	KeyBlend   float64 `yaml:"key_blend"`
	PadBlend   float64 `yaml:"pad_blend"`
	TimeScaled bool    `yaml:"time_scaled"`
}

type TelemetryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the stock configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 640,
			Title:  "Dhru Racing",
		},
		Vehicle: VehicleConfig{
			MaxSpeed:           60,
			Accel:              35,
			BrakeRate:          45,
			Drag:               4.5,
			SteerRateLow:       2.4,
			SteerRateHigh:      0.7,
			Grip:               9.0,
			LaneHalfWidth:      9.0,
			BodyHalfWidth:      1.1,
			WheelCircumference: 2.0,
		},
		Input: InputConfig{
			KeyBlend: 0.12,
			PadBlend: 0.22,
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
			Addr:    ":8090",
		},
		Audio:   AudioConfig{Enabled: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML config at path on top of the defaults. A missing file
// is not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
