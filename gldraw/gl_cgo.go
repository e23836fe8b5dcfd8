//go:build !tinygo && cgo

package gldraw

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/glui"
)

var _ glui.Renderer = (*GL)(nil)

// GL draws widgets with a single shader program. A GL context must be current
// on the calling thread for every method, including NewGL.
type GL struct {
	prog     glgl.Program
	vao, vbo uint32

	uMVP, uColor, uMode, uPointSize, uTex int32
	aPos, aUV                             uint32

	vp        glui.Viewport
	transform ms3.Mat4
	lineRange [2]float32
	buf       []float32

	tf    *Typeface
	texts map[string]textTexture
}

type textTexture struct {
	id   uint32
	w, h int
}

// NewGL compiles the widget shader. tf may be nil to use [DefaultTypeface].
func NewGL(vp glui.Viewport, tf *Typeface) (*GL, error) {
	if tf == nil {
		var err error
		tf, err = DefaultTypeface()
		if err != nil {
			return nil, fmt.Errorf("loading default typeface: %w", err)
		}
	}
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   vertexSource,
		Fragment: fragmentSource,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling widget shader: %w", err)
	}
	g := &GL{
		prog:      prog,
		vp:        vp,
		transform: glui.Identity(),
		tf:        tf,
		texts:     make(map[string]textTexture),
	}
	uniforms := []struct {
		name string
		dst  *int32
	}{
		{"uMVP\x00", &g.uMVP},
		{"uColor\x00", &g.uColor},
		{"uMode\x00", &g.uMode},
		{"uPointSize\x00", &g.uPointSize},
		{"uTex\x00", &g.uTex},
	}
	for _, u := range uniforms {
		*u.dst, err = prog.UniformLocation(u.name)
		if err != nil {
			prog.Delete()
			return nil, err
		}
	}
	g.aPos, err = prog.AttribLocation("aPos\x00")
	if err != nil {
		prog.Delete()
		return nil, err
	}
	g.aUV, err = prog.AttribLocation("aUV\x00")
	if err != nil {
		prog.Delete()
		return nil, err
	}
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &g.lineRange[0])
	if g.lineRange[1] < 1 {
		g.lineRange = [2]float32{1, 1}
	}
	return g, glgl.Err()
}

// ensureBuffers creates the vertex array and buffer on first use.
func (g *GL) ensureBuffers() {
	if g.vao != 0 {
		return
	}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	const stride = 4 * floatsPerVertex
	gl.EnableVertexAttribArray(g.aPos)
	gl.VertexAttribPointer(g.aPos, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(g.aUV)
	gl.VertexAttribPointer(g.aUV, 2, gl.FLOAT, false, stride, gl.PtrOffset(4*3))
}

// SetViewport sets the viewport used for text placement and GL viewport calls.
func (g *GL) SetViewport(vp glui.Viewport) { g.vp = vp }

// Begin binds the widget program and sets blending. Scene geometry drawn with
// depthTest occludes and is occluded; widgets are usually drawn without it.
func (g *GL) Begin(depthTest bool) {
	g.ensureBuffers()
	g.prog.Bind()
	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.Viewport(int32(g.vp.X), int32(g.vp.Y), int32(g.vp.Width), int32(g.vp.Height))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	if depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	g.loadTransform()
}

// End unbinds the program. It returns the first pending GL error, if any.
func (g *GL) End() error {
	gl.BindVertexArray(0)
	g.prog.Unbind()
	return glgl.Err()
}

func (g *GL) SetTransform(m ms3.Mat4) {
	g.transform = m
	g.loadTransform()
}

func (g *GL) loadTransform() {
	arr := g.transform.Array()
	// Array is row major.
	gl.UniformMatrix4fv(g.uMVP, 1, true, &arr[0])
}

func (g *GL) setColor(c color.Color) {
	rgb, a := glui.ColorVec(c)
	gl.Uniform4f(g.uColor, rgb.X, rgb.Y, rgb.Z, a)
}

func (g *GL) vertex(p ms3.Vec, u, v float32) {
	g.buf = append(g.buf, p.X, p.Y, p.Z, u, v)
}

func (g *GL) flush(mode uint32) {
	n := len(g.buf) / floatsPerVertex
	if n == 0 {
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(g.buf), gl.Ptr(g.buf), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(n))
	g.buf = g.buf[:0]
}

func (g *GL) Line(p1, p2 ms3.Vec, c color.Color, width float32) {
	width = max(g.lineRange[0], min(width, g.lineRange[1]))
	gl.LineWidth(width)
	gl.Uniform1i(g.uMode, modeFlat)
	g.setColor(c)
	g.vertex(p1, 0, 0)
	g.vertex(p2, 0, 0)
	g.flush(gl.LINES)
}

func (g *GL) Disk(p ms3.Vec, diameter float32, c color.Color) {
	gl.Uniform1i(g.uMode, modeDisk)
	gl.Uniform1f(g.uPointSize, diameter)
	g.setColor(c)
	g.vertex(p, 0, 0)
	g.flush(gl.POINTS)
}

func (g *GL) Quad(p1, p2, p3, p4 ms3.Vec, c color.Color) {
	gl.Uniform1i(g.uMode, modeFlat)
	g.setColor(c)
	g.vertex(p1, 0, 0)
	g.vertex(p2, 0, 0)
	g.vertex(p3, 0, 0)
	g.vertex(p1, 0, 0)
	g.vertex(p3, 0, 0)
	g.vertex(p4, 0, 0)
	g.flush(gl.TRIANGLES)
}

// Triangle draws a filled triangle. Used for scene geometry.
func (g *GL) Triangle(p1, p2, p3 ms3.Vec, c color.Color) {
	gl.Uniform1i(g.uMode, modeFlat)
	g.setColor(c)
	g.vertex(p1, 0, 0)
	g.vertex(p2, 0, 0)
	g.vertex(p3, 0, 0)
	g.flush(gl.TRIANGLES)
}

// Text draws s with its baseline starting at pixel pix.
func (g *GL) Text(pix ms2.Vec, s string, c color.Color) {
	tex, ok := g.textTexture(s)
	if !ok {
		return
	}
	prev := g.transform
	g.SetTransform(g.vp.ScreenMode())
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.Uniform1i(g.uTex, 0)
	gl.Uniform1i(g.uMode, modeText)
	g.setColor(c)
	x0 := pix.X
	y0 := pix.Y - float32(g.tf.Descent())
	x1 := x0 + float32(tex.w)
	y1 := y0 + float32(tex.h)
	// Image rows run top down, texture v=0 is the first row.
	g.vertex(ms3.Vec{X: x0, Y: y0}, 0, 1)
	g.vertex(ms3.Vec{X: x1, Y: y0}, 1, 1)
	g.vertex(ms3.Vec{X: x1, Y: y1}, 1, 0)
	g.vertex(ms3.Vec{X: x0, Y: y0}, 0, 1)
	g.vertex(ms3.Vec{X: x1, Y: y1}, 1, 0)
	g.vertex(ms3.Vec{X: x0, Y: y1}, 0, 0)
	g.flush(gl.TRIANGLES)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	g.SetTransform(prev)
}

func (g *GL) textTexture(s string) (textTexture, bool) {
	if tex, ok := g.texts[s]; ok {
		return tex, true
	}
	img := g.tf.Rasterize(s)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return textTexture{}, false
	}
	if len(g.texts) >= maxTextCache {
		g.clearTexts()
	}
	tex := textTexture{w: w, h: h}
	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	g.texts[s] = tex
	return tex, true
}

func (g *GL) clearTexts() {
	for k, tex := range g.texts {
		gl.DeleteTextures(1, &tex.id)
		delete(g.texts, k)
	}
}

// IsVisible reports whether world point p is not hidden by previously drawn
// depth tested geometry. Points outside the viewport are not visible.
func (g *GL) IsVisible(v glui.View, p ms3.Vec) bool {
	pix, depth := v.ProjectToScreen(p)
	if !v.Contains(pix) {
		return false
	}
	const tol = 1e-3
	var stored float32
	gl.ReadPixels(int32(pix.X), int32(pix.Y), 1, 1, gl.DEPTH_COMPONENT, gl.FLOAT, gl.Ptr(&stored))
	return depth*0.5+0.5 <= stored+tol
}

// Delete releases all GL objects. g must not be used afterwards.
func (g *GL) Delete() error {
	g.clearTexts()
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.prog.ID() == 0 {
		return errors.New("program already deleted")
	}
	g.prog.Delete()
	return glgl.Err()
}
