package ui

import (
	"fmt"
	"strings"
	"time"

	"lifegrid/internal/core"
)

// Status is the session state shown next to the grid parameters.
type Status struct {
	Running bool
	Tool    string
	Delay   time.Duration
	CanLoad bool
	Message string
}

// StatusLines formats the HUD text: engine parameters first, then the
// session controls.
func StatusLines(snap core.ParameterSnapshot, st Status) []string {
	lookup := func(key string) string {
		v, ok := snap.Lookup(key)
		if !ok {
			return "--"
		}
		return v
	}
	state := "paused"
	if st.Running {
		state = "running"
	}
	load := "no save"
	if st.CanLoad {
		load = "save ready"
	}
	lines := []string{
		fmt.Sprintf("gen %s  pop %s  %sx%s %s", lookup("generation"), lookup("population"),
			lookup("rows"), lookup("cols"), lookup("boundary")),
		fmt.Sprintf("%s  tool %s  delay %s  %s", state, st.Tool, st.Delay, load),
	}
	if msg := strings.TrimSpace(st.Message); msg != "" {
		lines = append(lines, msg)
	}
	return lines
}

// Help lists the keyboard bindings.
const Help = "enter/space play  n step  1-4 tool  c clear  r reseed  b boundary  s save  l load  up/down delay  q quit"
