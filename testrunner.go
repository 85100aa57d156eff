package flywheel

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	// Index and Text pick the item for "select"; Text wins when set.
	Index int    `json:"index,omitempty"`
	Text  string `json:"text,omitempty"`
	// Value is the argument of "orientation" ("vertical"/"horizontal") and
	// "effect3d" ("on"/"off").
	Value string `json:"value,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected gestures, selections and screenshots across
// frames for automated visual testing. Attach it with SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	settle    bool
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("flywheel: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("flywheel: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "drag", "fling", "wait", "settle", "select", "orientation", "effect3d":
		default:
			return nil, fmt.Errorf("flywheel: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner; its steps run at the start of every Update.
func (f *Flywheel) SetTestRunner(runner *TestRunner) {
	f.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(f *Flywheel) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if f.input.PendingInjected() > 0 {
		return
	}
	if r.settle {
		if f.Animating() {
			return
		}
		r.settle = false
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		f.Screenshot(st.Label)
	case "drag":
		f.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "fling":
		f.input.InjectFling(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settle = true
	case "select":
		if st.Text != "" {
			f.SetSelectedByText(st.Text)
		} else {
			f.SetSelectedIndex(st.Index)
		}
	case "orientation":
		if o, err := ParseOrientation(st.Value); err == nil {
			f.SetOrientation(o)
		}
	case "effect3d":
		f.Set3DEffect(st.Value != "off")
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settle && f.input.PendingInjected() == 0 {
		r.done = true
	}
}
