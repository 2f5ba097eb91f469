package engine

import (
	"math"

	"github.com/Garsondee/colorlink/internal/geom"
)

// Drag replays a whole gesture: begin at the first point, extend through every
// following point, end at the last. It returns the result of the final call
// that ran; a begin that is ignored short-circuits.
func (s *Session) Drag(points ...geom.Point) Result {
	if len(points) == 0 {
		return s.result(OutcomeIgnored, ReasonNone, EventNone)
	}
	first := points[0]
	if r := s.OnStrokeBegin(first.X, first.Y); r.Outcome != OutcomeActive {
		return r
	}
	for _, p := range points[1:] {
		s.OnStrokeExtend(p.X, p.Y)
	}
	last := points[len(points)-1]
	return s.OnStrokeEnd(last.X, last.Y)
}

// Trace densifies a route through the given corners so that consecutive
// points are at most step apart, the way a pointer device would sample it.
func Trace(step float64, corners ...geom.Point) []geom.Point {
	if len(corners) == 0 {
		return nil
	}
	if step <= 0 {
		step = 1
	}
	out := []geom.Point{corners[0]}
	for i := 1; i < len(corners); i++ {
		a, b := corners[i-1], corners[i]
		n := int(math.Ceil(a.Dist(b) / step))
		for k := 1; k < n; k++ {
			t := float64(k) / float64(n)
			out = append(out, geom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
		}
		if n > 0 {
			out = append(out, b)
		}
	}
	return out
}
