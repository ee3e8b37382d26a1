package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/tesseract4d/internal/engine/input"
	"github.com/Faultbox/tesseract4d/internal/scene"
)

// Action is a viewer-level request that does not touch the scene.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionScreenshot
)

// keyCommands binds held-key style controls. They also fire on key repeat.
var keyCommands = map[sdl.Keycode]scene.CommandKind{
	sdl.K_w:            scene.CmdStrafeUp,
	sdl.K_s:            scene.CmdStrafeDown,
	sdl.K_a:            scene.CmdStrafeLeft,
	sdl.K_d:            scene.CmdStrafeRight,
	sdl.K_RIGHTBRACKET: scene.CmdSpeedUp,
	sdl.K_LEFTBRACKET:  scene.CmdSpeedDown,
}

// Controls maps input events to scene commands and viewer actions. It
// tracks the right button so pointer motion only looks while dragging.
type Controls struct {
	mouseLook bool
	looking   bool
}

// NewControls creates the key and mouse bindings.
func NewControls(mouseLook bool) *Controls {
	return &Controls{mouseLook: mouseLook}
}

// Handle translates one event.
func (c *Controls) Handle(e input.Event) (scene.Command, Action) {
	switch e.Type {
	case input.EventQuit:
		return scene.Command{}, ActionQuit

	case input.EventWindowResize:
		return scene.Command{Kind: scene.CmdResize, Width: e.Width, Height: e.Height}, ActionNone

	case input.EventKeyDown:
		if kind, ok := keyCommands[e.Key]; ok {
			return scene.Command{Kind: kind}, ActionNone
		}
		if e.Repeat {
			break
		}
		switch e.Key {
		case sdl.K_SPACE:
			return scene.Command{Kind: scene.CmdReset}, ActionNone
		case sdl.K_ESCAPE:
			return scene.Command{}, ActionQuit
		case sdl.K_F12:
			return scene.Command{}, ActionScreenshot
		}

	case input.EventMouseDown:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			return scene.Command{Kind: scene.CmdRotationStart}, ActionNone
		case sdl.BUTTON_RIGHT:
			c.looking = c.mouseLook
		}

	case input.EventMouseUp:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			return scene.Command{Kind: scene.CmdRotationStop}, ActionNone
		case sdl.BUTTON_RIGHT:
			c.looking = false
		}

	case input.EventMouseMove:
		if c.looking && (e.DeltaX != 0 || e.DeltaY != 0) {
			return scene.Command{Kind: scene.CmdLook, DX: float32(e.DeltaX), DY: float32(e.DeltaY)}, ActionNone
		}
	}

	return scene.Command{}, ActionNone
}

// Looking reports whether a mouse-look drag is in progress.
func (c *Controls) Looking() bool {
	return c.looking
}
