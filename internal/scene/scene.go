// Package scene owns the viewer state and drives one frame at a time.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/tesseract4d/internal/engine/camera"
	"github.com/Faultbox/tesseract4d/internal/logger"
	"github.com/Faultbox/tesseract4d/internal/rotation"
	"github.com/Faultbox/tesseract4d/internal/tesseract"
	"github.com/Faultbox/tesseract4d/pkg/math"
)

// Mode selects which tesseract meshes are drawn.
type Mode int

const (
	ModeBoth Mode = iota
	ModeSolid
	ModeWireframe
)

// ParseMode converts a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "both", "":
		return ModeBoth, nil
	case "solid":
		return ModeSolid, nil
	case "wireframe":
		return ModeWireframe, nil
	}
	return ModeBoth, fmt.Errorf("unknown render mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeSolid:
		return "solid"
	case ModeWireframe:
		return "wireframe"
	default:
		return "both"
	}
}

// Config holds the scene parameters.
type Config struct {
	Camera     camera.Settings
	Center     math.Vec4
	HalfExtent float32
	BaseStep   float32 // rotation step in degrees per tick
	Mode       Mode
	Width      int
	Height     int
}

// State is everything the frame loop mutates. It is owned by a single
// goroutine and never shared.
type State struct {
	Camera         *camera.Camera
	Rotation       rotation.Set
	RotationActive bool
	Mode           Mode

	baseStep float32
	width    int
	height   int

	ground *tesseract.Mesh
	solid  *tesseract.Mesh
	wire   *tesseract.Mesh
}

// New builds the static meshes and the initial camera and rotation state.
func New(cfg Config) *State {
	solid, wire := tesseract.Generate(cfg.Center, cfg.HalfExtent)
	return &State{
		Camera:   camera.New(cfg.Camera),
		Mode:     cfg.Mode,
		baseStep: cfg.BaseStep,
		width:    cfg.Width,
		height:   cfg.Height,
		ground:   tesseract.GroundPlane(),
		solid:    solid,
		wire:     wire,
	}
}

// Init uploads the static meshes. It must run once before the first Tick.
func (s *State) Init(b Backend) error {
	uploads := []struct {
		id   MeshID
		mesh *tesseract.Mesh
	}{
		{MeshGround, s.ground},
		{MeshWireframe, s.wire},
		{MeshSolid, s.solid},
	}
	for _, u := range uploads {
		if err := b.Upload(u.id, u.mesh.Positions(), u.mesh.Colors()); err != nil {
			return fmt.Errorf("uploading %s mesh: %w", u.id, err)
		}
		logger.Debug("mesh uploaded",
			zap.Stringer("mesh", u.id),
			zap.Int("vertices", u.mesh.Len()),
		)
	}
	return nil
}

// Viewport returns the current viewport size.
func (s *State) Viewport() (int, int) {
	return s.width, s.height
}

// Aspect returns width / height.
func (s *State) Aspect() float32 {
	return float32(s.width) / float32(s.height)
}

// Tick runs one frame: the rotation tick when rotation is active, then the
// render tick.
func (s *State) Tick(b Backend) {
	if s.RotationActive {
		s.Rotation.Advance(s.baseStep)
	}
	s.Render(b)
}

// Render draws the ground plane followed by the tesseract meshes selected by
// the mode. Depth testing in the back end makes the order irrelevant to the
// final image.
func (s *State) Render(b Backend) {
	u := s.Uniforms()

	b.Begin()
	b.Draw(MeshGround, TriangleStrip, s.ground.Len(), u)
	if s.Mode != ModeSolid {
		b.Draw(MeshWireframe, Lines, s.wire.Len(), u)
	}
	if s.Mode != ModeWireframe {
		b.Draw(MeshSolid, Triangles, s.solid.Len(), u)
	}
	b.End()
}

// Uniforms computes this frame's matrices and rotation trig values.
func (s *State) Uniforms() Uniforms {
	return Uniforms{
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(s.Aspect()),
		Rotation:   s.Rotation.SinCos(),
	}
}

// Extent returns the largest XYZ distance from the origin of any rotated
// tesseract vertex, i.e. the radius of the 3D shadow currently on screen.
func (s *State) Extent() float32 {
	tr := s.Rotation.SinCos()
	var r float32
	for _, p := range s.wire.Positions() {
		if l := tr.Apply(p).Length3(); l > r {
			r = l
		}
	}
	return r
}
