package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/colorlink/internal/engine"
	"github.com/Garsondee/colorlink/internal/level"
)

// reportEvents is how many trailing engine events a debug report includes.
const reportEvents = 20

// debugReport renders the current level as plain text for pasting into bug
// reports.
func debugReport(s *engine.Session) string {
	snap := s.State()
	cfg := s.Config()

	var b strings.Builder
	fmt.Fprintf(&b, "--- ColorLink debug report ---\n")
	fmt.Fprintf(&b, "level=%d/%d grid=%d pairs=%d viewport=%.0fx%.0f complete=%v\n\n",
		snap.Level, s.FinalLevel(), cfg.GridSize, len(cfg.Connections), snap.Width, snap.Height, snap.Complete)

	b.WriteString("layout:\n")
	b.WriteString(cfg.Layout())
	b.WriteByte('\n')

	b.WriteString("dots:\n")
	for i, d := range snap.Dots {
		state := "open"
		if d.Connected {
			state = "connected"
		}
		fmt.Fprintf(&b, "  #%d %-7s (%.0f,%.0f) %s\n", i, level.ColorName(d.Color), d.X, d.Y, state)
	}

	if len(snap.Paths) > 0 {
		colors := make([]int, 0, len(snap.Paths))
		for ci := range snap.Paths {
			colors = append(colors, ci)
		}
		sort.Ints(colors)
		b.WriteString("paths:\n")
		for _, ci := range colors {
			fmt.Fprintf(&b, "  %-7s points=%d\n", level.ColorName(ci), len(snap.Paths[ci]))
		}
	}

	entries := s.Events().Entries()
	if len(entries) > reportEvents {
		entries = entries[len(entries)-reportEvents:]
	}
	if len(entries) > 0 {
		b.WriteString("events:\n")
		for _, e := range entries {
			b.WriteString("  ")
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}
	return b.String()
}
