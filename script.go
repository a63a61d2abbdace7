package fern

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a frame script.
type scriptStep struct {
	Action   string  `yaml:"action"`
	Label    string  `yaml:"label,omitempty"`
	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	Frames   int     `yaml:"frames,omitempty"`
	Duration float64 `yaml:"duration,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

var errScriptEmpty = errors.New("parse script: no steps")

// Script sequences screenshots, waits, camera moves, and play confirmation
// across engine ticks for automated visual testing. Attach it with
// Engine.SetScript.
//
// Supported actions:
//
//	screenshot  queue Engine.Screenshot(label)
//	wait        idle for frames ticks
//	camera      place the scene camera at (x, y)
//	scroll      Camera.ScrollTo(x, y) over duration seconds
//	play        confirm the loader's play prompt
//	quit        end the game loop
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) frame script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errScriptEmpty
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "screenshot", "wait", "camera", "scroll", "play", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// step runs at most one action per tick. It reports true when a quit step
// ran.
func (s *Script) step(e *Engine) (quit bool) {
	if s.done {
		return false
	}
	if s.waitCount > 0 {
		s.waitCount--
		return false
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return false
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		e.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "camera":
		if cam := e.scene.Camera(); cam != nil {
			cam.X, cam.Y = st.X, st.Y
		}
	case "scroll":
		if cam := e.scene.Camera(); cam != nil {
			cam.ScrollTo(st.X, st.Y, float32(st.Duration), nil)
		}
	case "play":
		e.pendingPlay = true
	case "quit":
		quit = true
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	return quit
}
