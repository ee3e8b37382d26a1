// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Camera      CameraConfig      `yaml:"camera"`
	Rotation    RotationConfig    `yaml:"rotation"`
	Tesseract   TesseractConfig   `yaml:"tesseract"`
	Render      RenderConfig      `yaml:"render"`
	Logging     LoggingConfig     `yaml:"logging"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds projection and navigation settings.
type CameraConfig struct {
	FovY             float32 `yaml:"fov_y"` // degrees
	ZNear            float32 `yaml:"z_near"`
	ZFar             float32 `yaml:"z_far"`
	Step             float32 `yaml:"step"`
	StepIncrement    float32 `yaml:"step_increment"`
	MouseLook        bool    `yaml:"mouse_look"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MaxLookStep      float32 `yaml:"max_look_step"`
}

// RotationConfig holds the 4D rotation settings.
type RotationConfig struct {
	BaseStep    float32 `yaml:"base_step"` // degrees per frame for the slowest plane
	StartActive bool    `yaml:"start_active"`
}

// TesseractConfig places the hypercube.
type TesseractConfig struct {
	Center     [4]float32 `yaml:"center"`
	HalfExtent float32    `yaml:"half_extent"`
}

// RenderConfig holds draw settings.
type RenderConfig struct {
	Mode             string     `yaml:"mode"` // both, solid or wireframe
	TranslucentFaces bool       `yaml:"translucent_faces"`
	ClearColor       [4]float32 `yaml:"clear_color"`
	WireColor        [4]float32 `yaml:"wire_color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// ScreenshotsConfig holds screenshot output settings.
type ScreenshotsConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // png or bmp
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Tesseract",
			Width:      512,
			Height:     512,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FovY:             45.0,
			ZNear:            0.5,
			ZFar:             3.0,
			Step:             0.1,
			StepIncrement:    0.05,
			MouseLook:        true,
			MouseSensitivity: 5.0,
			MaxLookStep:      45.0,
		},
		Rotation: RotationConfig{
			BaseStep:    0.1,
			StartActive: false,
		},
		Tesseract: TesseractConfig{
			Center:     [4]float32{0, 0, 0, 0},
			HalfExtent: 0.3,
		},
		Render: RenderConfig{
			Mode:             "both",
			TranslucentFaces: false,
			ClearColor:       [4]float32{0, 0, 0, 1},
			WireColor:        [4]float32{1, 1, 1, 1},
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Screenshots: ScreenshotsConfig{
			Dir:    "screenshots",
			Prefix: "tesseract",
			Format: "png",
		},
	}
}

// Validate rejects settings that would produce a degenerate camera or
// projection.
func (c *Config) Validate() error {
	errs := c.nonFinite()

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera: fov_y %v must be in (0, 180)", c.Camera.FovY))
	}
	if c.Camera.ZNear <= 0 {
		errs = append(errs, fmt.Errorf("camera: z_near %v must be positive", c.Camera.ZNear))
	}
	if c.Camera.ZFar <= c.Camera.ZNear {
		errs = append(errs, fmt.Errorf("camera: z_far %v must exceed z_near %v", c.Camera.ZFar, c.Camera.ZNear))
	}
	if c.Camera.Step < 0 || c.Camera.StepIncrement < 0 {
		errs = append(errs, errors.New("camera: step and step_increment must not be negative"))
	}
	if c.Camera.MaxLookStep <= 0 || c.Camera.MaxLookStep >= 90 {
		errs = append(errs, fmt.Errorf("camera: max_look_step %v must be in (0, 90)", c.Camera.MaxLookStep))
	}
	if c.Rotation.BaseStep < 0 || c.Rotation.BaseStep >= 360 {
		errs = append(errs, fmt.Errorf("rotation: base_step %v must be in [0, 360)", c.Rotation.BaseStep))
	}
	if c.Tesseract.HalfExtent < 0 {
		errs = append(errs, fmt.Errorf("tesseract: half_extent %v must not be negative", c.Tesseract.HalfExtent))
	}
	switch c.Render.Mode {
	case "both", "solid", "wireframe":
	default:
		errs = append(errs, fmt.Errorf("render: unknown mode %q", c.Render.Mode))
	}
	switch c.Screenshots.Format {
	case "png", "bmp":
	default:
		errs = append(errs, fmt.Errorf("screenshots: unknown format %q", c.Screenshots.Format))
	}

	return errors.Join(errs...)
}

// nonFinite reports every float setting that is NaN or infinite. NaN slips
// past the range checks in Validate.
func (c *Config) nonFinite() []error {
	fields := []struct {
		name   string
		values []float32
	}{
		{"camera.fov_y", []float32{c.Camera.FovY}},
		{"camera.z_near", []float32{c.Camera.ZNear}},
		{"camera.z_far", []float32{c.Camera.ZFar}},
		{"camera.step", []float32{c.Camera.Step}},
		{"camera.step_increment", []float32{c.Camera.StepIncrement}},
		{"camera.mouse_sensitivity", []float32{c.Camera.MouseSensitivity}},
		{"camera.max_look_step", []float32{c.Camera.MaxLookStep}},
		{"rotation.base_step", []float32{c.Rotation.BaseStep}},
		{"tesseract.center", c.Tesseract.Center[:]},
		{"tesseract.half_extent", []float32{c.Tesseract.HalfExtent}},
		{"render.clear_color", c.Render.ClearColor[:]},
		{"render.wire_color", c.Render.WireColor[:]},
	}

	var errs []error
	for _, f := range fields {
		for _, v := range f.values {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				errs = append(errs, fmt.Errorf("%s: %v is not a finite number", f.name, v))
				break
			}
		}
	}
	return errs
}
