package viewer

import (
	"github.com/Faultbox/tesseract4d/internal/config"
	"github.com/Faultbox/tesseract4d/internal/engine/camera"
	"github.com/Faultbox/tesseract4d/internal/engine/renderer"
	"github.com/Faultbox/tesseract4d/internal/engine/window"
	"github.com/Faultbox/tesseract4d/internal/scene"
	"github.com/Faultbox/tesseract4d/pkg/math"
)

// sceneConfig converts the loaded configuration for the scene package.
func sceneConfig(cfg *config.Config, width, height int) (scene.Config, error) {
	mode, err := scene.ParseMode(cfg.Render.Mode)
	if err != nil {
		return scene.Config{}, err
	}

	c := cfg.Tesseract.Center
	return scene.Config{
		Camera: camera.Settings{
			FovY:          cfg.Camera.FovY,
			ZNear:         cfg.Camera.ZNear,
			ZFar:          cfg.Camera.ZFar,
			Step:          cfg.Camera.Step,
			StepIncrement: cfg.Camera.StepIncrement,
			Sensitivity:   cfg.Camera.MouseSensitivity,
			MaxLookStep:   cfg.Camera.MaxLookStep,
		},
		Center:     math.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]},
		HalfExtent: cfg.Tesseract.HalfExtent,
		BaseStep:   cfg.Rotation.BaseStep,
		Mode:       mode,
		Width:      width,
		Height:     height,
	}, nil
}

func windowConfig(cfg *config.Config) window.Config {
	return window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}
}

func rendererConfig(cfg *config.Config, width, height int) renderer.Config {
	return renderer.Config{
		Width:       width,
		Height:      height,
		ClearColor:  cfg.Render.ClearColor,
		WireColor:   cfg.Render.WireColor,
		Translucent: cfg.Render.TranslucentFaces,
	}
}
