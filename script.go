package reveal

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	ID     string  `json:"id,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// interactionScript is the top-level JSON structure for a script.
type interactionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences scripted scrolls, clicks, and hovers across
// frames for automated scenario testing. Drive it by calling Step once
// per frame alongside Controller.Update.
//
// Supported actions:
//
//	{"action": "scroll", "y": 120}        — wheel-style immediate scroll by y
//	{"action": "scrollTo", "y": 800}      — jump the viewport to offset y
//	{"action": "click", "id": "nav-home"} — click the element with that ID
//	{"action": "hover", "id": "cta"}      — move hover onto that element
//	{"action": "unhover"}                 — clear the current hover
//	{"action": "wait", "frames": 30}      — idle for a number of frames
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	hovered   *Element
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script interactionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse interaction script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse interaction script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step executes at most one script action against the controller.
// Call once per frame, before Controller.Update.
func (r *ScriptRunner) Step(c *Controller) {
	if r.done {
		return
	}
	// Count down wait frames.
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
	case "scroll":
		c.Viewport().ScrollBy(st.Y)
	case "scrollTo":
		c.Viewport().ScrollTo(st.Y, 0, nil)
	case "click":
		c.Click(c.Root().FindByID(st.ID))
	case "hover":
		if r.hovered != nil {
			c.HoverLeave(r.hovered)
		}
		r.hovered = c.Root().FindByID(st.ID)
		c.HoverEnter(r.hovered)
	case "unhover":
		if r.hovered != nil {
			c.HoverLeave(r.hovered)
			r.hovered = nil
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
