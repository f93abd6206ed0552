package game

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ScriptEvent is one tick-indexed input event of a headless script.
type ScriptEvent struct {
	Tick int     `yaml:"tick"`
	Type string  `yaml:"type"` // resize, move, leave, click or stop
	X    float32 `yaml:"x,omitempty"`
	Y    float32 `yaml:"y,omitempty"`
	W    int     `yaml:"w,omitempty"`
	H    int     `yaml:"h,omitempty"`
}

// Script is a headless input script.
type Script struct {
	Events []ScriptEvent `yaml:"events"`
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses and validates a YAML script. Events are sorted by tick;
// events sharing a tick keep their file order.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, ev := range s.Events {
		if ev.Tick < 0 {
			return nil, fmt.Errorf("event %d: negative tick %d", i, ev.Tick)
		}
		switch ev.Type {
		case "resize", "move", "leave", "click", "stop":
		default:
			return nil, fmt.Errorf("event %d: unknown type %q", i, ev.Type)
		}
	}
	sort.SliceStable(s.Events, func(i, j int) bool {
		return s.Events[i].Tick < s.Events[j].Tick
	})
	return &s, nil
}

// HasStop reports whether the script ends the run itself.
func (s *Script) HasStop() bool {
	for _, ev := range s.Events {
		if ev.Type == "stop" {
			return true
		}
	}
	return false
}

// event converts a script entry to an input event. stop has no event form.
func (ev ScriptEvent) event() (Event, bool) {
	switch ev.Type {
	case "resize":
		return Resize{W: ev.W, H: ev.H}, true
	case "move":
		return PointerMove{X: ev.X, Y: ev.Y}, true
	case "leave":
		return PointerLeave{}, true
	case "click":
		return Click{X: ev.X, Y: ev.Y}, true
	}
	return nil, false
}

// ScriptHost is a windowless host that feeds scripted events. Events for
// tick n are delivered before frame n renders; a stop event closes the
// host before that frame.
type ScriptHost struct {
	script  *Script
	next    int
	tick    int
	pending []Event
	closed  bool
}

// NewScriptHost creates a host replaying script. A nil script yields a host
// with no input.
func NewScriptHost(script *Script) *ScriptHost {
	if script == nil {
		script = &Script{}
	}
	return &ScriptHost{script: script}
}

// NextFrame gathers the events due this tick.
func (h *ScriptHost) NextFrame() bool {
	if h.closed {
		return false
	}
	h.pending = h.pending[:0]
	events := h.script.Events
	for h.next < len(events) && events[h.next].Tick <= h.tick {
		ev := events[h.next]
		h.next++
		if ev.Type == "stop" {
			h.closed = true
			return false
		}
		if e, ok := ev.event(); ok {
			h.pending = append(h.pending, e)
		}
	}
	return true
}

// PollEvents returns the events gathered by NextFrame.
func (h *ScriptHost) PollEvents() []Event {
	return h.pending
}

// Present ends the tick.
func (h *ScriptHost) Present() {
	h.tick++
}

// Tick returns the number of presented frames.
func (h *ScriptHost) Tick() int {
	return h.tick
}
