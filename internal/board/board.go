// Package board holds the live state of one level: the projected dots, the
// committed paths, and the dot-aware geometry queries used to validate a
// stroke against them.
package board

import (
	"github.com/Garsondee/colorlink/internal/geom"
	"github.com/Garsondee/colorlink/internal/level"
)

const (
	// TouchRadius is the half-width of the box used to pick a dot.
	TouchRadius = 100.0
	// DotRadius is the Euclidean distance at which a stroke pierces a dot.
	DotRadius = 45.0
	// PathSamples is how many equal-length segments approximate a committed
	// path during intersection tests.
	PathSamples = 20
)

// Dot is one projected endpoint.
type Dot struct {
	X, Y      float64
	Color     int
	Connected bool
}

// Pos returns the dot centre.
func (d Dot) Pos() geom.Point {
	return geom.Point{X: d.X, Y: d.Y}
}

// State is the grid and paths of the active level. It is owned by a single
// session; callers outside the engine should only read it.
type State struct {
	Level  int
	Config level.Config
	Width  float64
	Height float64

	Dots     []Dot
	Paths    map[int][]geom.Point
	Complete bool
}

// Build projects a config into viewport space. Each grid cell maps to
// x*width/(gridSize+1), leaving a one-cell margin on every side.
func Build(lvl int, cfg level.Config, width, height float64) *State {
	s := &State{Level: lvl, Config: cfg}
	s.project(width, height)
	return s
}

func (s *State) project(width, height float64) {
	s.Width, s.Height = width, height
	cellW := width / float64(s.Config.GridSize+1)
	cellH := height / float64(s.Config.GridSize+1)

	s.Dots = make([]Dot, 0, s.Config.DotCount())
	for _, dc := range s.Config.Connections {
		s.Dots = append(s.Dots,
			Dot{X: float64(dc.Dot1.X) * cellW, Y: float64(dc.Dot1.Y) * cellH, Color: dc.ColorIndex},
			Dot{X: float64(dc.Dot2.X) * cellW, Y: float64(dc.Dot2.Y) * cellH, Color: dc.ColorIndex},
		)
	}
	s.Paths = make(map[int][]geom.Point)
	s.Complete = false
}

// Reset rebuilds the level from its config and last viewport.
func (s *State) Reset() {
	s.project(s.Width, s.Height)
}

// Resize rebuilds the level for a new viewport. Progress is discarded since
// committed paths are in the old coordinate space.
func (s *State) Resize(width, height float64) {
	s.project(width, height)
}

// AllConnected reports whether every dot has been connected.
func (s *State) AllConnected() bool {
	for _, d := range s.Dots {
		if !d.Connected {
			return false
		}
	}
	return true
}

// ConnectedCount returns how many dots are connected.
func (s *State) ConnectedCount() int {
	n := 0
	for _, d := range s.Dots {
		if d.Connected {
			n++
		}
	}
	return n
}

// Commit stores a path for a colour and marks both endpoints connected.
func (s *State) Commit(color int, path []geom.Point, start, end int) {
	s.Paths[color] = path
	s.Dots[start].Connected = true
	s.Dots[end].Connected = true
}

// Snapshot is a deep copy of a State, safe to hand to a renderer.
type Snapshot struct {
	Level    int
	Width    float64
	Height   float64
	Dots     []Dot
	Paths    map[int][]geom.Point
	Complete bool
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	paths := make(map[int][]geom.Point, len(s.Paths))
	for c, p := range s.Paths {
		paths[c] = append([]geom.Point(nil), p...)
	}
	return Snapshot{
		Level:    s.Level,
		Width:    s.Width,
		Height:   s.Height,
		Dots:     append([]Dot(nil), s.Dots...),
		Paths:    paths,
		Complete: s.Complete,
	}
}
