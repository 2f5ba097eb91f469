package engine

import (
	"fmt"
	"math"

	"github.com/Garsondee/colorlink/internal/board"
	"github.com/Garsondee/colorlink/internal/geom"
	"github.com/Garsondee/colorlink/internal/level"
)

// moveThreshold is how far (per axis) the pointer must travel from the start
// dot before a stroke counts as a drag rather than a tap.
const moveThreshold = 10.0

// jitterTolerance is the pointer tremor absorbed before checking a stroke
// for loops.
const jitterTolerance = moveThreshold / 2

// strokeState is either idle{} or *activeStroke.
type strokeState interface {
	strokePhase() string
}

type idle struct{}

func (idle) strokePhase() string { return "idle" }

type activeStroke struct {
	start  int
	color  int
	points []geom.Point
	moved  bool
}

func (*activeStroke) strokePhase() string { return "active" }

// StrokeView describes the stroke in progress for rendering.
type StrokeView struct {
	Color  int
	Start  geom.Point
	Points []geom.Point
}

// Stroke returns the stroke in progress, if any.
func (s *Session) Stroke() (StrokeView, bool) {
	st, ok := s.stroke.(*activeStroke)
	if !ok {
		return StrokeView{}, false
	}
	return StrokeView{
		Color:  st.color,
		Start:  s.state.Dots[st.start].Pos(),
		Points: append([]geom.Point(nil), st.points...),
	}, true
}

// OnStrokeBegin starts a stroke on the dot under (x, y). Touches that miss
// every dot, land on a connected dot, or arrive after the level is complete
// are ignored.
func (s *Session) OnStrokeBegin(x, y float64) Result {
	if s.state == nil || s.state.Complete {
		return s.result(OutcomeIgnored, ReasonNone, EventNone)
	}
	if _, ok := s.stroke.(idle); !ok {
		return s.result(OutcomeIgnored, ReasonNone, EventNone)
	}
	i, ok := s.state.NearestDot(x, y, board.TouchRadius)
	if !ok || s.state.Dots[i].Connected {
		return s.result(OutcomeIgnored, ReasonNone, EventNone)
	}
	s.stroke = &activeStroke{start: i, color: s.state.Dots[i].Color}
	s.record("stroke", "begin", level.ColorName(s.state.Dots[i].Color))
	return s.result(OutcomeActive, ReasonNone, EventNone)
}

// OnStrokeExtend appends a pointer sample to the active stroke.
func (s *Session) OnStrokeExtend(x, y float64) Result {
	st, ok := s.stroke.(*activeStroke)
	if !ok {
		return s.result(OutcomeIgnored, ReasonNone, EventNone)
	}
	start := s.state.Dots[st.start]
	if math.Abs(x-start.X) > moveThreshold || math.Abs(y-start.Y) > moveThreshold {
		st.moved = true
	}
	st.points = append(st.points, geom.Point{X: x, Y: y})
	return s.result(OutcomeActive, ReasonNone, EventNone)
}

// OnStrokeEnd finishes the active stroke at (x, y). A valid stroke is
// committed as a path and both of its dots become connected; anything else is
// discarded without touching the level. The session is idle afterwards.
func (s *Session) OnStrokeEnd(x, y float64) Result {
	st, ok := s.stroke.(*activeStroke)
	if !ok {
		return s.result(OutcomeIgnored, ReasonNone, EventNone)
	}
	s.stroke = idle{}

	end, reason := s.validate(st, x, y)
	if reason != ReasonNone {
		s.record("stroke", "rejected", fmt.Sprintf("%s %s", reason, level.ColorName(st.color)))
		return s.result(OutcomeRejected, reason, EventNone)
	}

	startDot, endDot := s.state.Dots[st.start], s.state.Dots[end]
	path := make([]geom.Point, 0, len(st.points)+2)
	path = append(path, startDot.Pos())
	path = append(path, st.points...)
	path = append(path, endDot.Pos())
	s.state.Commit(st.color, path, st.start, end)
	s.record("stroke", "committed", fmt.Sprintf("%s points=%d", level.ColorName(st.color), len(path)))

	return s.result(OutcomeCommitted, ReasonNone, s.evaluate())
}

// OnStrokeCancel drops any stroke in progress. Committed state is untouched.
func (s *Session) OnStrokeCancel() Result {
	if _, ok := s.stroke.(*activeStroke); !ok {
		return s.result(OutcomeIgnored, ReasonNone, EventNone)
	}
	s.stroke = idle{}
	s.record("stroke", "cancelled", "")
	return s.result(OutcomeCancelled, ReasonNone, EventNone)
}

// validate returns the end dot index, or the first reason the stroke fails.
// Checks run cheapest first.
func (s *Session) validate(st *activeStroke, x, y float64) (int, RejectReason) {
	if !st.moved {
		return -1, ReasonTap
	}
	end, ok := s.state.NearestDot(x, y, board.TouchRadius)
	switch {
	case !ok:
		return -1, ReasonNoEndDot
	case s.state.Dots[end].Color != st.color:
		return -1, ReasonColorMismatch
	case end == st.start:
		return -1, ReasonSameDot
	case s.state.Dots[end].Connected:
		return -1, ReasonEndConnected
	}
	if geom.SelfIntersects(st.points, jitterTolerance) {
		return -1, ReasonSelfIntersect
	}
	if s.state.PathsIntersect(st.points) {
		return -1, ReasonPathIntersect
	}
	if s.state.PassesThroughForeignDot(st.points, st.start, end, board.DotRadius) {
		return -1, ReasonPassThrough
	}
	return end, ReasonNone
}

// evaluate marks the level complete on the first commit that connects every
// dot and notifies the listener.
func (s *Session) evaluate() Event {
	if s.state.Complete || !s.state.AllConnected() {
		return EventNone
	}
	s.state.Complete = true
	if s.state.Level == s.finalLevel {
		s.record("level", "campaign_complete", "")
		s.listener.OnCampaignComplete()
		return EventCampaignComplete
	}
	s.record("level", "complete", "")
	s.listener.OnLevelComplete(s.state.Level)
	return EventLevelComplete
}
