package renderer

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders/gradient.vs
var gradientVS string

//go:embed shaders/gradient.fs
var gradientFS string

// ErrShaderLoad is returned when the gradient program fails to compile or link.
var ErrShaderLoad = errors.New("gradient shader failed to load")

// GradientSource returns the vertex and fragment sources with the gray
// levels filled in.
func GradientSource(base, amplitude float64) (vs, fs string) {
	r := strings.NewReplacer(
		"{{BASE}}", glslFloat(base),
		"{{AMPLITUDE}}", glslFloat(amplitude),
	)
	return gradientVS, r.Replace(gradientFS)
}

// glslFloat formats v as a GLSL float literal.
func glslFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// GradientRenderer owns the gradient shader program and draws the
// full-viewport quad it shades.
type GradientRenderer struct {
	shader        rl.Shader
	timeLoc       int32
	resolutionLoc int32

	screenW, screenH float32
	loaded           bool
}

// NewGradientRenderer compiles the gradient program. It must be called after
// the raylib window is created. raylib falls back to its default shader on a
// compile or link error, which has neither uniform, so a missing uniform is
// reported as a load failure.
func NewGradientRenderer(base, amplitude float64) (*GradientRenderer, error) {
	vs, fs := GradientSource(base, amplitude)
	shader := rl.LoadShaderFromMemory(vs, fs)
	if shader.ID == 0 {
		return nil, ErrShaderLoad
	}

	g := &GradientRenderer{
		shader:        shader,
		timeLoc:       rl.GetShaderLocation(shader, "time"),
		resolutionLoc: rl.GetShaderLocation(shader, "resolution"),
		loaded:        true,
	}
	if g.timeLoc < 0 || g.resolutionLoc < 0 {
		g.Unload()
		return nil, fmt.Errorf("%w: uniforms time=%d resolution=%d", ErrShaderLoad, g.timeLoc, g.resolutionLoc)
	}
	return g, nil
}

// SetTime pushes the elapsed simulated time.
func (g *GradientRenderer) SetTime(t float32) {
	rl.SetShaderValue(g.shader, g.timeLoc, []float32{t}, rl.ShaderUniformFloat)
}

// SetResolution pushes the viewport size and sizes the quad to match.
func (g *GradientRenderer) SetResolution(w, h float32) {
	g.screenW, g.screenH = w, h
	rl.SetShaderValue(g.shader, g.resolutionLoc, []float32{w, h}, rl.ShaderUniformVec2)
}

// DrawQuad draws the full-viewport quad with the gradient program.
func (g *GradientRenderer) DrawQuad() {
	rl.BeginShaderMode(g.shader)
	rl.DrawRectangle(0, 0, int32(g.screenW), int32(g.screenH), rl.White)
	rl.EndShaderMode()
}

// Unload frees the shader program.
func (g *GradientRenderer) Unload() {
	if g.loaded {
		rl.UnloadShader(g.shader)
		g.loaded = false
	}
}
