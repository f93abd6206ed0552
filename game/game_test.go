package game

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/backdrop/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func newTestField(t *testing.T) *Field {
	t.Helper()
	f, err := NewField(testConfig(t), nil, Options{Seed: 42})
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	return f
}

func TestFieldClickRippleScenario(t *testing.T) {
	f := newTestField(t)

	f.Handle(Resize{W: 1000, H: 800})
	if got := f.Particles(); got != 53 {
		t.Fatalf("particles = %d, want 53", got)
	}

	f.Handle(Click{X: 500, Y: 400})
	views := f.RippleViews(nil)
	if len(views) != 1 {
		t.Fatalf("expected one ripple, got %d", len(views))
	}
	if views[0].X != 500 || views[0].Y != 400 || views[0].Radius != 0 || views[0].Opacity != 1 {
		t.Errorf("new ripple = %+v, want r=0 o=1 at (500,400)", views[0])
	}

	for i := 0; i < 10; i++ {
		f.Frame()
	}
	views = f.RippleViews(views[:0])
	if math.Abs(views[0].Radius-20) > 1e-9 || math.Abs(views[0].Opacity-0.8) > 1e-9 {
		t.Errorf("after 10 ticks: r=%v o=%v, want r=20 o=0.8", views[0].Radius, views[0].Opacity)
	}

	for i := 0; i < 40; i++ {
		f.Frame()
	}
	views = f.RippleViews(views[:0])
	if len(views) != 1 || views[0].Opacity > 1e-9 {
		t.Fatalf("after 50 ticks expected one ripple at opacity 0, got %+v", views)
	}
	// Follower ring plus the ripple
	if got := f.Draws().Strokes; got != 2 {
		t.Errorf("strokes on tick 50 = %d, want 2", got)
	}

	f.Frame()
	if got := len(f.RippleViews(nil)); got != 0 {
		t.Errorf("ripple still present on tick 51: %d", got)
	}
	if f.Ripples() != 0 {
		t.Errorf("ripples drawn on tick 51 = %d, want 0", f.Ripples())
	}
	if got := f.Draws().Strokes; got != 1 {
		t.Errorf("strokes on tick 51 = %d, want only the follower ring", got)
	}
}

func TestFieldLifecycle(t *testing.T) {
	f := newTestField(t)

	if f.State() != Uninitialized {
		t.Fatalf("initial state = %v, want uninitialized", f.State())
	}

	// Frames before the first resize draw no follower
	f.Frame()
	if d := f.Draws(); d.Fills != 0 || d.Strokes != 0 || d.Clears != 1 {
		t.Errorf("uninitialized frame draws = %+v", d)
	}

	f.Handle(Resize{W: 800, H: 600})
	if f.State() != Running {
		t.Fatalf("state after resize = %v, want running", f.State())
	}
	x, y, ok := f.Pointer().Get()
	if !ok || x != 400 || y != 300 {
		t.Errorf("pointer = (%v, %v, %v), want centered", x, y, ok)
	}
	if fx, fy := f.FollowerPos(); fx != 400 || fy != 300 {
		t.Errorf("follower = (%v, %v), want (400, 300)", fx, fy)
	}

	// Later resizes keep the follower where it is
	f.Handle(Resize{W: 1600, H: 1200})
	if f.State() != Running {
		t.Errorf("state after second resize = %v", f.State())
	}
	if fx, fy := f.FollowerPos(); fx != 400 || fy != 300 {
		t.Errorf("follower moved on resize: (%v, %v)", fx, fy)
	}

	f.Stop()
	if !f.Stopped() || f.State() != Stopped {
		t.Fatal("expected stopped state")
	}

	tick := f.Tick()
	f.Handle(Resize{W: 100, H: 100})
	f.Frame()
	if f.Tick() != tick {
		t.Error("stopped field rendered a frame")
	}
	if w, h := f.Size(); w != 1600 || h != 1200 {
		t.Errorf("stopped field accepted resize to %dx%d", w, h)
	}
}

func TestFieldResizeReseeds(t *testing.T) {
	f := newTestField(t)

	f.Handle(Resize{W: 1920, H: 1080})
	if got := f.Particles(); got != 138 {
		t.Errorf("particles = %d, want 138", got)
	}
	f.Handle(Click{X: 10, Y: 10})

	f.Handle(Resize{W: 100, H: 100})
	if got := f.Particles(); got != 0 {
		t.Errorf("particles after shrinking = %d, want 0", got)
	}
	if got := len(f.RippleViews(nil)); got != 1 {
		t.Errorf("ripples after resize = %d, want 1", got)
	}
}

func TestFieldFollowerEasesTowardPointer(t *testing.T) {
	f := newTestField(t)
	f.Handle(Resize{W: 1000, H: 800})

	f.Handle(PointerMove{X: 600, Y: 400})
	f.Frame()
	fx, fy := f.FollowerPos()
	if math.Abs(float64(fx)-510) > 1e-4 || math.Abs(float64(fy)-400) > 1e-4 {
		t.Errorf("follower = (%v, %v), want (510, 400)", fx, fy)
	}
	if d := f.Draws(); d.Strokes != 1 {
		t.Errorf("expected the follower ring to be drawn, got %+v", d)
	}

	f.Handle(PointerLeave{})
	f.Frame()
	gx, gy := f.FollowerPos()
	if gx != fx || gy != fy {
		t.Errorf("follower moved without pointer: (%v, %v) -> (%v, %v)", fx, fy, gx, gy)
	}
	if f.Links().Pointer != 0 {
		t.Errorf("pointer links without pointer = %d", f.Links().Pointer)
	}
	if d := f.Draws(); d.Strokes != 0 {
		t.Errorf("follower drawn without pointer: %+v", d)
	}
}

func TestFieldDrawCounts(t *testing.T) {
	f := newTestField(t)
	f.Handle(Resize{W: 1000, H: 800})
	f.Frame()

	d := f.Draws()
	// 53 particles plus the follower dot
	if d.Fills != 54 {
		t.Errorf("fills = %d, want 54", d.Fills)
	}
	links := f.Links()
	if d.Lines != links.Pairs+links.Pointer {
		t.Errorf("lines = %d, want %d", d.Lines, links.Pairs+links.Pointer)
	}
}

func TestFieldTuning(t *testing.T) {
	f := newTestField(t)
	f.Handle(Resize{W: 1000, H: 800})

	tu := f.Tuning()
	if tu.LinkDistance != 120 || tu.PointerRadius != 150 || math.Abs(float64(tu.Smoothing)-0.1) > 1e-6 {
		t.Errorf("default tuning = %+v", tu)
	}

	f.SetTuning(Tuning{LinkDistance: 0, PointerRadius: 0, Smoothing: 1})
	f.Handle(PointerMove{X: 100, Y: 100})
	f.Frame()
	if l := f.Links(); l.Pairs != 0 || l.Pointer != 0 {
		t.Errorf("links with zero reach = %+v", l)
	}
	if fx, fy := f.FollowerPos(); fx != 100 || fy != 100 {
		t.Errorf("follower with smoothing 1 = (%v, %v), want (100, 100)", fx, fy)
	}

	if n := f.Reseed(); n != 53 {
		t.Errorf("Reseed() = %d, want 53", n)
	}
}

func TestFieldWritesTelemetry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	f, err := NewField(testConfig(t), nil, Options{Seed: 1, StatsWindow: 5, OutputDir: dir})
	if err != nil {
		t.Fatal(err)
	}

	f.Handle(Resize{W: 1000, H: 800})
	for i := 0; i < 12; i++ {
		f.Frame()
	}
	f.Stop()

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus windows ending at ticks 5 and 10
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[1], "5,5,53,0,1,") {
		t.Errorf("first window row = %s", lines[1])
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot missing: %v", err)
	}
}
