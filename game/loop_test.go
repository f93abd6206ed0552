package game

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseScript(t *testing.T) {
	src := `
events:
  - {tick: 5, type: click, x: 500, y: 400}
  - {tick: 0, type: resize, w: 1000, h: 800}
  - {tick: 5, type: move, x: 1, y: 2}
  - {tick: 9, type: stop}
`
	s, err := ParseScript([]byte(src))
	if err != nil {
		t.Fatalf("ParseScript failed: %v", err)
	}

	wantTypes := []string{"resize", "click", "move", "stop"}
	for i, ev := range s.Events {
		if ev.Type != wantTypes[i] {
			t.Errorf("event %d type = %s, want %s", i, ev.Type, wantTypes[i])
		}
	}
	if !s.HasStop() {
		t.Error("expected HasStop")
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown type", "events:\n  - {tick: 0, type: scroll}\n", "unknown type"},
		{"negative tick", "events:\n  - {tick: -1, type: leave}\n", "negative tick"},
		{"bad yaml", "events: [", "parsing script"},
	}

	for _, tt := range tests {
		_, err := ParseScript([]byte(tt.src))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %v, want containing %q", tt.name, err, tt.want)
		}
	}
}

func TestRunScriptedField(t *testing.T) {
	s, err := ParseScript([]byte(`
events:
  - {tick: 0, type: resize, w: 1000, h: 800}
  - {tick: 0, type: click, x: 500, y: 400}
  - {tick: 10, type: leave}
  - {tick: 60, type: stop}
`))
	if err != nil {
		t.Fatal(err)
	}

	f := newTestField(t)
	host := NewScriptHost(s)
	ticks, err := Run(context.Background(), host, f, 0)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ticks != 60 || f.Tick() != 60 {
		t.Errorf("ticks = %d (field %d), want 60", ticks, f.Tick())
	}
	if f.Particles() != 53 {
		t.Errorf("particles = %d, want 53", f.Particles())
	}
	if f.Pointer().Present() {
		t.Error("pointer should have left")
	}
	if len(f.RippleViews(nil)) != 0 {
		t.Error("ripple should have expired by tick 60")
	}
}

func TestRunMaxTicks(t *testing.T) {
	f := newTestField(t)
	ticks, err := Run(context.Background(), NewScriptHost(nil), f, 25)
	if err != nil {
		t.Fatal(err)
	}
	if ticks != 25 {
		t.Errorf("ticks = %d, want 25", ticks)
	}
}

func TestRunStopsWithScene(t *testing.T) {
	f := newTestField(t)
	f.Stop()
	ticks, err := Run(context.Background(), NewScriptHost(nil), f, 10)
	if err != nil || ticks != 0 {
		t.Errorf("Run on stopped scene = %d, %v", ticks, err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGradient(testConfig(t), &fakeProgram{}, Options{})
	ticks, err := Run(ctx, NewScriptHost(nil), g, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if ticks != 0 {
		t.Errorf("ticks = %d, want 0", ticks)
	}
}

func TestScriptHostDeliversByTick(t *testing.T) {
	s, err := ParseScript([]byte(`
events:
  - {tick: 2, type: click, x: 1, y: 1}
  - {tick: 2, type: click, x: 2, y: 2}
`))
	if err != nil {
		t.Fatal(err)
	}
	h := NewScriptHost(s)

	counts := make([]int, 4)
	for i := range counts {
		if !h.NextFrame() {
			t.Fatal("host closed early")
		}
		counts[i] = len(h.PollEvents())
		h.Present()
	}
	want := []int{0, 0, 2, 0}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("tick %d events = %d, want %d", i, counts[i], want[i])
		}
	}
	if h.Tick() != 4 {
		t.Errorf("host tick = %d, want 4", h.Tick())
	}
}
