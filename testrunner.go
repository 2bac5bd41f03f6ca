package wayfinder

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Dir    string `json:"dir,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences navigation commands and focus assertions across
// frames for automated testing. Attach to a Scene via SetTestRunner.
//
// Actions:
//
//	{"action": "move", "dir": "right"}    queue a navigation command
//	{"action": "focus", "label": "name"}  focus the named node directly
//	{"action": "expect", "label": "name"} record a failure unless name is focused
//	{"action": "wait", "frames": 3}       idle for a number of frames
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move":
			if _, ok := ParseCompassDirection(st.Dir); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown dir %q", i, st.Dir)
			}
		case "focus", "expect", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input is processed each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the failed expectations so far.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for queued moves to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
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
	case "move":
		dir, _ := ParseCompassDirection(st.Dir)
		s.InjectMove(dir)
	case "focus":
		n := s.root.FindChild(st.Label)
		if n == nil {
			r.failures = append(r.failures, fmt.Sprintf("step %d: no node %q", r.cursor-1, st.Label))
			break
		}
		s.SetFocus(n)
	case "expect":
		if got := s.focused.String(); got != st.Label {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: focused %s, want %s", r.cursor-1, got, st.Label))
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
