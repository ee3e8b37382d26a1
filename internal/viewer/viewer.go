// Package viewer implements the main loop that ties the window, input,
// renderer and scene together.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tesseract4d/internal/config"
	"github.com/Faultbox/tesseract4d/internal/engine/debug"
	"github.com/Faultbox/tesseract4d/internal/engine/input"
	"github.com/Faultbox/tesseract4d/internal/engine/renderer"
	"github.com/Faultbox/tesseract4d/internal/engine/window"
	"github.com/Faultbox/tesseract4d/internal/logger"
	"github.com/Faultbox/tesseract4d/internal/scene"
)

// Viewer is the running application.
type Viewer struct {
	config  *config.Config
	running bool
	stats   *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	controls *Controls
	state    *scene.State

	screenshots       *debug.ScreenshotCapture
	screenshotPending bool
}

// New creates the window, GL back end and scene.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("mode", cfg.Render.Mode),
	)

	v := &Viewer{
		config:      cfg,
		stats:       logger.Named("frame"),
		input:       input.New(),
		controls:    NewControls(cfg.Camera.MouseLook),
		screenshots: debug.NewScreenshotCapture(cfg.Screenshots.Dir, cfg.Screenshots.Prefix, debug.Format(cfg.Screenshots.Format)),
	}

	var err error
	v.window, err = window.New(windowConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must come after the window, which owns the GL context.
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(rendererConfig(cfg, width, height))
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	sc, err := sceneConfig(cfg, width, height)
	if err != nil {
		v.Close()
		return nil, err
	}
	v.state = scene.New(sc)
	v.state.RotationActive = cfg.Rotation.StartActive

	if err := v.state.Init(v.renderer); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to initialize scene: %w", err)
	}

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run starts the frame loop and returns when the user quits.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for v.running {
		if v.input.Update() {
			v.running = false
		}
		for _, e := range v.input.Events() {
			v.handle(e)
		}
		if !v.running {
			break
		}

		v.state.Tick(v.renderer)

		if v.screenshotPending {
			v.screenshotPending = false
			v.captureScreenshot()
		}

		v.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			v.stats.Debug("stats",
				zap.Float64("fps", fps),
				zap.Bool("rotating", v.state.RotationActive),
				zap.Float32("extent", v.state.Extent()),
				zap.Float32("step", v.state.Camera.Step),
			)
			v.window.SetTitle(fmt.Sprintf("%s (%.0f fps)", v.config.Graphics.Title, fps))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("frame loop stopped")
	return nil
}

func (v *Viewer) handle(e input.Event) {
	cmd, action := v.controls.Handle(e)

	switch action {
	case ActionQuit:
		v.running = false
		return
	case ActionScreenshot:
		v.screenshotPending = true
	}

	if cmd.Kind == scene.CmdLook {
		// Motion arrives in window points; the scene normalises by pixel height.
		_, dh := v.window.DrawableSize()
		_, wh := v.window.Size()
		cmd.DX, cmd.DY = pointsToPixels(cmd.DX, dh, wh), pointsToPixels(cmd.DY, dh, wh)
	}
	if cmd.Kind == scene.CmdResize {
		// The event reports window points; GL wants drawable pixels.
		cmd.Width, cmd.Height = v.window.DrawableSize()
		v.renderer.Resize(cmd.Width, cmd.Height)
	}
	if cmd.Kind != scene.CmdNone {
		v.state.Apply(cmd)
	}
}

// pointsToPixels scales a window-point distance by the drawable/window
// ratio. Unknown sizes leave it unchanged.
func pointsToPixels(d float32, drawable, window int) float32 {
	if drawable <= 0 || window <= 0 {
		return d
	}
	return d * float32(drawable) / float32(window)
}

func (v *Viewer) captureScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer and window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
		v.renderer = nil
	}
	if v.window != nil {
		v.window.Close()
		v.window = nil
	}
}
