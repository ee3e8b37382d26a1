package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract4d/internal/engine/camera"
	"github.com/Faultbox/tesseract4d/internal/logger"
)

// CommandKind enumerates the inputs the scene reacts to.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdStrafeLeft
	CmdStrafeRight
	CmdStrafeUp
	CmdStrafeDown
	CmdSpeedUp
	CmdSpeedDown
	CmdReset
	CmdRotationStart
	CmdRotationStop
	CmdLook
	CmdResize
)

// Command is a discrete input event. DX/DY carry the pointer delta for
// CmdLook; Width/Height the new viewport for CmdResize.
type Command struct {
	Kind   CommandKind
	DX, DY float32
	Width  int
	Height int
}

// Apply mutates the state according to cmd.
func (s *State) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdStrafeLeft:
		s.Camera.Strafe(camera.Left)
	case CmdStrafeRight:
		s.Camera.Strafe(camera.Right)
	case CmdStrafeUp:
		s.Camera.Strafe(camera.Up)
	case CmdStrafeDown:
		s.Camera.Strafe(camera.Down)
	case CmdSpeedUp:
		s.Camera.AdjustSpeed(1)
		logger.Debug("camera step", zap.Float32("step", s.Camera.Step))
	case CmdSpeedDown:
		s.Camera.AdjustSpeed(-1)
		logger.Debug("camera step", zap.Float32("step", s.Camera.Step))
	case CmdReset:
		s.Camera.Reset()
		logger.Debug("camera reset")
	case CmdRotationStart:
		s.RotationActive = true
	case CmdRotationStop:
		s.RotationActive = false
	case CmdLook:
		s.Camera.Look(cmd.DX, cmd.DY, s.height)
	case CmdResize:
		if cmd.Width <= 0 || cmd.Height <= 0 {
			return
		}
		s.width, s.height = cmd.Width, cmd.Height
	}
}
