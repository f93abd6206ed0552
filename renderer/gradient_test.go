package renderer

import (
	"strings"
	"testing"
)

func TestGLSLFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.08, "0.08"},
		{1, "1.0"},
		{0, "0.0"},
		{-0.5, "-0.5"},
	}
	for _, tt := range tests {
		if got := glslFloat(tt.in); got != tt.want {
			t.Errorf("glslFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGradientSource(t *testing.T) {
	vs, fs := GradientSource(0.08, 0.02)

	if !strings.Contains(vs, "mvp") {
		t.Error("vertex shader should transform by mvp")
	}
	if strings.Contains(fs, "{{") {
		t.Errorf("unreplaced placeholder in fragment shader:\n%s", fs)
	}
	for _, want := range []string{
		"const float base = 0.08;",
		"const float amplitude = 0.02;",
		"uniform float time;",
		"uniform vec2 resolution;",
	} {
		if !strings.Contains(fs, want) {
			t.Errorf("fragment shader missing %q", want)
		}
	}
}
