package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/colorlink/internal/geom"
	"github.com/Garsondee/colorlink/internal/level"
)

func levelOne(t *testing.T) *State {
	t.Helper()
	cfg, err := level.Generate(1)
	require.NoError(t, err)
	return Build(1, cfg, 400, 400)
}

func pts(xy ...float64) []geom.Point {
	out := make([]geom.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, geom.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func TestBuild_ProjectsWithMargin(t *testing.T) {
	s := levelOne(t)
	require.Len(t, s.Dots, 6)

	want := []Dot{
		{X: 100, Y: 100, Color: 0},
		{X: 200, Y: 200, Color: 0},
		{X: 100, Y: 200, Color: 1},
		{X: 200, Y: 100, Color: 1},
		{X: 300, Y: 100, Color: 2},
		{X: 300, Y: 200, Color: 2},
	}
	assert.Equal(t, want, s.Dots)
	assert.Empty(t, s.Paths)
	assert.False(t, s.Complete)
}

func TestBuild_NonSquareViewport(t *testing.T) {
	cfg, err := level.Generate(2)
	require.NoError(t, err)
	s := Build(2, cfg, 500, 1000)
	// grid 4 => cell 100 x 200
	assert.Equal(t, Dot{X: 100, Y: 200, Color: 0}, s.Dots[0])
	assert.Equal(t, Dot{X: 300, Y: 600, Color: 0}, s.Dots[1])
}

func TestResetClearsProgress(t *testing.T) {
	s := levelOne(t)
	s.Commit(0, pts(100, 100, 150, 150, 200, 200), 0, 1)
	s.Complete = true
	require.Equal(t, 2, s.ConnectedCount())

	s.Reset()
	assert.Equal(t, 0, s.ConnectedCount())
	assert.Empty(t, s.Paths)
	assert.False(t, s.Complete)
	assert.Equal(t, 400.0, s.Width)
}

func TestResize(t *testing.T) {
	s := levelOne(t)
	s.Commit(0, pts(100, 100, 200, 200), 0, 1)
	s.Resize(800, 400)
	assert.Equal(t, Dot{X: 200, Y: 100, Color: 0}, s.Dots[0])
	assert.Empty(t, s.Paths)
}

func TestNearestDot_BoxMetricFirstMatchWins(t *testing.T) {
	s := levelOne(t)

	i, ok := s.NearestDot(100, 100, TouchRadius)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	// (150,150) is inside the box of all four inner dots; grid order decides.
	i, ok = s.NearestDot(150, 150, TouchRadius)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	// Box corner: Euclidean distance ~127 but inside the box.
	i, ok = s.NearestDot(390, 10, TouchRadius)
	require.True(t, ok)
	assert.Equal(t, 4, i)

	_, ok = s.NearestDot(100, 320, TouchRadius)
	assert.False(t, ok)
}

func TestPathsIntersect(t *testing.T) {
	s := levelOne(t)
	assert.False(t, s.PathsIntersect(pts(100, 100, 200, 200)), "no committed paths")

	s.Commit(0, pts(100, 100, 150, 150, 200, 200), 0, 1)
	assert.True(t, s.PathsIntersect(pts(110, 190, 150, 150, 190, 110)), "crossing the diagonal")
	assert.False(t, s.PathsIntersect(pts(290, 110, 290, 150, 290, 190)), "parallel stroke elsewhere")
	assert.False(t, s.PathsIntersect(pts(290, 110)), "single point has no segments")
}

func TestPassesThroughForeignDot(t *testing.T) {
	s := levelOne(t)

	// Red stroke from dot0 to dot1 that bends past the blue dot at (100,200).
	detour := pts(100, 120, 100, 180, 110, 200, 200, 200)
	assert.True(t, s.PassesThroughForeignDot(detour, 0, 1, DotRadius))

	// Endpoints are skipped even when they sit on a foreign dot.
	edges := pts(100, 200, 150, 150, 200, 100)
	assert.False(t, s.PassesThroughForeignDot(edges, 0, 1, DotRadius))

	// Connected dots are ignored.
	s.Dots[2].Connected = true
	assert.False(t, s.PassesThroughForeignDot(detour, 0, 1, DotRadius))

	// Start and end dots are ignored.
	assert.False(t, s.PassesThroughForeignDot(pts(0, 0, 100, 100, 200, 200, 0, 0), 0, 1, DotRadius))
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := levelOne(t)
	s.Commit(0, pts(100, 100, 200, 200), 0, 1)
	snap := s.Snapshot()

	s.Dots[2].Connected = true
	s.Paths[0][0] = geom.Point{X: -1, Y: -1}

	assert.False(t, snap.Dots[2].Connected)
	assert.Equal(t, geom.Point{X: 100, Y: 100}, snap.Paths[0][0])
}

func TestAllConnected(t *testing.T) {
	s := levelOne(t)
	assert.False(t, s.AllConnected())
	for i := range s.Dots {
		s.Dots[i].Connected = true
	}
	assert.True(t, s.AllConnected())
}
