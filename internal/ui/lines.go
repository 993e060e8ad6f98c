package ui

import (
	"fmt"

	"lifeterrain/internal/core"
)

// Status is the run state shown to the user.
type Status int

const (
	// StatusStopped means no run is active.
	StatusStopped Status = iota
	// StatusRunning means the terrain is being iterated.
	StatusRunning
	// StatusStable means the last run ended because generations repeated.
	StatusStable
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusStable:
		return "stable"
	default:
		return "stopped"
	}
}

// HelpLines lists the key bindings shared by the GUI and terminal views.
var HelpLines = []string{
	"Space   start / stop",
	"R       reset",
	"Up/Down density +/- 5%",
	"H       toggle help",
	"Q/Esc   quit",
}

// Lines formats the readout for one snapshot. stats must come from the same
// Snapshot call as the cells being drawn.
func Lines(stats core.Stats, params core.ParameterSnapshot, status Status, nextDensityPct int) []string {
	lines := []string{
		fmt.Sprintf("Generation: %d", stats.Iteration),
		fmt.Sprintf("Population: %d", stats.Population),
	}
	if p, ok := params.Lookup("size"); ok {
		lines = append(lines, fmt.Sprintf("Size: %sx%s", p.Value, p.Value))
	}
	if p, ok := params.Lookup("density"); ok {
		lines = append(lines, "Seed density: "+p.Value)
	}
	lines = append(lines,
		fmt.Sprintf("Next density: %d%%", nextDensityPct),
		"Status: "+status.String(),
	)
	return lines
}
