package level

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

const (
	// FinalLevel is the campaign length. Completing it ends the campaign.
	FinalLevel = 100
	// PaletteSize is the number of distinct dot colours.
	PaletteSize = 7

	generatedGridSize = 6
	minDots           = 6
	maxDots           = 8 // inclusive
)

// ErrInvalidLevelIndex is returned for indices outside [1, FinalLevel].
var ErrInvalidLevelIndex = errors.New("level: level index out of range")

// Position is a 1-based cell on the abstract grid.
type Position struct {
	X, Y int
}

// DotConnection is a required pairing of two cells with one colour.
type DotConnection struct {
	Dot1       Position
	Dot2       Position
	ColorIndex int
}

// Config describes one level. Treat it as immutable once generated.
type Config struct {
	GridSize    int
	Connections []DotConnection
}

// curated holds the hand-authored opening levels.
var curated = map[int]Config{
	1: {
		GridSize: 3,
		Connections: []DotConnection{
			{Position{1, 1}, Position{2, 2}, 0},
			{Position{1, 2}, Position{2, 1}, 1},
			{Position{3, 1}, Position{3, 2}, 2},
		},
	},
	2: {
		GridSize: 4,
		Connections: []DotConnection{
			{Position{1, 1}, Position{3, 3}, 0},
			{Position{2, 1}, Position{2, 3}, 1},
			{Position{3, 1}, Position{1, 3}, 2},
			{Position{4, 1}, Position{4, 4}, 3},
		},
	},
	3: {
		GridSize: 5,
		Connections: []DotConnection{
			{Position{1, 1}, Position{4, 4}, 0},
			{Position{2, 2}, Position{3, 3}, 1},
			{Position{4, 1}, Position{1, 4}, 2},
			{Position{5, 2}, Position{3, 5}, 3},
			{Position{5, 5}, Position{2, 3}, 4},
		},
	},
}

// Generate returns the layout for a level. Levels with a curated layout get
// it; every other level is derived from a PRNG seeded with the index, so the
// same index always yields the same config.
func Generate(levelIndex int) (Config, error) {
	if levelIndex < 1 || levelIndex > FinalLevel {
		return Config{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidLevelIndex, levelIndex, FinalLevel)
	}
	if c, ok := curated[levelIndex]; ok {
		return c.clone(), nil
	}

	rng := rand.New(rand.NewSource(int64(levelIndex))) // #nosec G404 -- deterministic layouts
	numDots := minDots + rng.Intn(maxDots-minDots+1)
	pairs := numDots / 2

	used := make(map[Position]struct{}, pairs*2)
	draw := func() Position {
		for {
			p := Position{
				X: 1 + rng.Intn(generatedGridSize),
				Y: 1 + rng.Intn(generatedGridSize),
			}
			if _, taken := used[p]; !taken {
				used[p] = struct{}{}
				return p
			}
		}
	}

	conns := make([]DotConnection, 0, pairs)
	for i := 0; i < pairs; i++ {
		d1 := draw()
		d2 := draw()
		conns = append(conns, DotConnection{Dot1: d1, Dot2: d2, ColorIndex: i % PaletteSize})
	}
	return Config{GridSize: generatedGridSize, Connections: conns}, nil
}

func (c Config) clone() Config {
	out := c
	out.Connections = append([]DotConnection(nil), c.Connections...)
	return out
}

// DotCount returns the number of dots the level places.
func (c Config) DotCount() int {
	return len(c.Connections) * 2
}

// Distinct reports whether every position in the config is unique and inside
// the grid.
func (c Config) Distinct() bool {
	seen := make(map[Position]struct{}, c.DotCount())
	for _, dc := range c.Connections {
		for _, p := range []Position{dc.Dot1, dc.Dot2} {
			if p.X < 1 || p.Y < 1 || p.X > c.GridSize || p.Y > c.GridSize {
				return false
			}
			if _, dup := seen[p]; dup {
				return false
			}
			seen[p] = struct{}{}
		}
	}
	return true
}

// Equal reports whether two configs describe the same layout.
func (c Config) Equal(o Config) bool {
	if c.GridSize != o.GridSize || len(c.Connections) != len(o.Connections) {
		return false
	}
	for i := range c.Connections {
		if c.Connections[i] != o.Connections[i] {
			return false
		}
	}
	return true
}

// Layout renders the grid as text, one row per line. Each dot is drawn with
// its colour index; empty cells are dots. Level 1 renders as:
//
//	0 1 2
//	1 0 2
//	. . .
func (c Config) Layout() string {
	cells := make(map[Position]int, c.DotCount())
	for _, dc := range c.Connections {
		cells[dc.Dot1] = dc.ColorIndex
		cells[dc.Dot2] = dc.ColorIndex
	}
	var b strings.Builder
	for y := 1; y <= c.GridSize; y++ {
		for x := 1; x <= c.GridSize; x++ {
			if x > 1 {
				b.WriteByte(' ')
			}
			if ci, ok := cells[Position{x, y}]; ok {
				fmt.Fprintf(&b, "%d", ci)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var colorNames = [PaletteSize]string{"red", "blue", "yellow", "green", "magenta", "cyan", "orange"}

// ColorName returns the palette name for a colour index.
func ColorName(ci int) string {
	if ci < 0 || ci >= PaletteSize {
		return fmt.Sprintf("color%d", ci)
	}
	return colorNames[ci]
}
