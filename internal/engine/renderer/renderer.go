// Package renderer provides the OpenGL back end that draws the scene meshes.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract4d/internal/engine/shader"
	"github.com/Faultbox/tesseract4d/internal/engine/shaders"
	"github.com/Faultbox/tesseract4d/internal/logger"
	"github.com/Faultbox/tesseract4d/internal/scene"
	"github.com/Faultbox/tesseract4d/pkg/math"
)

// Uniform names shared by all programs.
const (
	uniformModelView  = "ModelView"
	uniformProjection = "Projection"
	uniformSines      = "sines"
	uniformCosines    = "cosines"
	uniformWireColor  = "WireColor"
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	ClearColor  [4]float32
	WireColor   [4]float32
	Translucent bool // blend solid faces using their alpha
}

// mesh is one uploaded vertex buffer.
type mesh struct {
	vao   uint32
	vbo   uint32
	count int
}

// Renderer handles all OpenGL rendering. It implements scene.Backend.
type Renderer struct {
	config Config

	programs map[scene.MeshID]*shader.Program
	meshes   map[scene.MeshID]*mesh
}

var _ scene.Backend = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		programs: make(map[scene.MeshID]*shader.Program, 3),
		meshes:   make(map[scene.MeshID]*mesh, 3),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if err := r.createPrograms(); err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create shader programs: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) createPrograms() error {
	sources := []struct {
		id       scene.MeshID
		vertex   string
		uniforms []string
	}{
		{scene.MeshGround, shaders.GroundVertexShader, []string{uniformModelView, uniformProjection}},
		{scene.MeshWireframe, shaders.WireframeVertexShader(), []string{uniformModelView, uniformProjection, uniformSines, uniformCosines, uniformWireColor}},
		{scene.MeshSolid, shaders.SolidVertexShader(), []string{uniformModelView, uniformProjection, uniformSines, uniformCosines}},
	}

	for _, s := range sources {
		p, err := shader.Build(s.id.String(), s.vertex, shaders.ColorFragmentShader, s.uniforms...)
		if err != nil {
			return err
		}
		r.programs[s.id] = p
	}
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for id, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		delete(r.meshes, id)
	}
	for id, p := range r.programs {
		p.Delete()
		delete(r.programs, id)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Upload copies a mesh into a new VAO/VBO pair. Positions occupy the front
// of the buffer and colours, if any, follow them.
func (r *Renderer) Upload(id scene.MeshID, positions, colors []math.Vec4) error {
	if len(positions) == 0 {
		return fmt.Errorf("%s: empty mesh", id)
	}
	if colors != nil && len(colors) != len(positions) {
		return fmt.Errorf("%s: %d colours for %d positions", id, len(colors), len(positions))
	}
	if _, ok := r.meshes[id]; ok {
		return fmt.Errorf("%s: already uploaded", id)
	}

	data := packVertices(positions, colors)

	m := &mesh{count: len(positions)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	if colors != nil {
		gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, 0, uintptr(colorOffset(len(positions))))
		gl.EnableVertexAttribArray(1)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.meshes[id] = m
	logger.Debug("vertex buffer created",
		zap.Stringer("mesh", id),
		zap.Int("vertices", m.count),
		zap.Bool("colored", colors != nil),
		zap.Uint32("vao", m.vao),
	)
	return nil
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw issues one draw call for an uploaded mesh with the frame uniforms.
func (r *Renderer) Draw(id scene.MeshID, prim scene.Primitive, count int, u scene.Uniforms) {
	m, ok := r.meshes[id]
	p := r.programs[id]
	if !ok || p == nil {
		return
	}
	if count > m.count {
		count = m.count
	}

	p.Use()
	gl.UniformMatrix4fv(p.Uniform(uniformModelView), 1, false, u.View.Ptr())
	gl.UniformMatrix4fv(p.Uniform(uniformProjection), 1, false, u.Projection.Ptr())
	if loc := p.Uniform(uniformSines); loc >= 0 {
		gl.Uniform1fv(loc, int32(len(u.Rotation.Sin)), &u.Rotation.Sin[0])
	}
	if loc := p.Uniform(uniformCosines); loc >= 0 {
		gl.Uniform1fv(loc, int32(len(u.Rotation.Cos)), &u.Rotation.Cos[0])
	}
	if loc := p.Uniform(uniformWireColor); loc >= 0 {
		c := r.config.WireColor
		gl.Uniform4f(loc, c[0], c[1], c[2], c[3])
	}

	blend := r.config.Translucent && id == scene.MeshSolid
	if blend {
		gl.Enable(gl.BLEND)
	}

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(glPrimitive(prim), 0, int32(count))
	gl.BindVertexArray(0)

	if blend {
		gl.Disable(gl.BLEND)
	}
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// ReadPixels reads back the current framebuffer as RGBA rows, bottom row
// first as OpenGL stores them.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// packVertices lays positions out first and colours after them.
func packVertices(positions, colors []math.Vec4) []float32 {
	data := make([]float32, 0, 4*(len(positions)+len(colors)))
	for _, v := range positions {
		data = append(data, v.X, v.Y, v.Z, v.W)
	}
	for _, c := range colors {
		data = append(data, c.X, c.Y, c.Z, c.W)
	}
	return data
}

// colorOffset is the byte offset of the colour block.
func colorOffset(vertices int) int {
	return vertices * 4 * 4
}

func glPrimitive(p scene.Primitive) uint32 {
	switch p {
	case scene.Lines:
		return gl.LINES
	case scene.TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLES
	}
}
