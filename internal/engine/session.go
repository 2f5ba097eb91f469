// Package engine drives one interactive session of the puzzle: it owns the
// level state, runs strokes through validation and fires completion events.
package engine

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/colorlink/internal/board"
	"github.com/Garsondee/colorlink/internal/level"
)

const (
	defaultWidth  = 720
	defaultHeight = 720
)

// Levels supplies level configs by index. *level.Catalog satisfies it.
type Levels interface {
	Get(levelIndex int) (level.Config, error)
}

// Option configures a Session.
type Option func(*Session)

// WithViewport sets the viewport used to project levels.
func WithViewport(w, h float64) Option {
	return func(s *Session) {
		s.width, s.height = w, h
	}
}

// WithFinalLevel overrides the level whose completion ends the campaign.
func WithFinalLevel(n int) Option {
	return func(s *Session) {
		s.finalLevel = n
	}
}

// WithLevels replaces the level source.
func WithLevels(l Levels) Option {
	return func(s *Session) {
		s.levels = l
	}
}

// WithListener registers the completion observer.
func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listener = l
	}
}

// WithLogger routes engine events to a logrus logger at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithEventLog shares an event log with the caller.
func WithEventLog(el *EventLog) Option {
	return func(s *Session) {
		s.events = el
	}
}

// Session is the single owner of the active level. It is not safe for
// concurrent use.
type Session struct {
	levels     Levels
	finalLevel int
	width      float64
	height     float64

	state  *board.State
	stroke strokeState

	listener Listener
	log      logrus.FieldLogger
	events   *EventLog
}

// New creates a session. No level is loaded until NewGame is called.
func New(opts ...Option) *Session {
	s := &Session{
		finalLevel: level.FinalLevel,
		width:      defaultWidth,
		height:     defaultHeight,
		stroke:     idle{},
		listener:   ListenerFuncs{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.levels == nil {
		s.levels = level.NewCatalog()
	}
	if s.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		s.log = quiet
	}
	if s.events == nil {
		s.events = NewEventLog()
	}
	return s
}

// NewGame loads a level, discarding all progress and any stroke in flight.
func (s *Session) NewGame(levelIndex int) (board.Snapshot, error) {
	cfg, err := s.levels.Get(levelIndex)
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("new game: %w", err)
	}
	s.state = board.Build(levelIndex, cfg, s.width, s.height)
	s.stroke = idle{}
	s.record("level", "start", fmt.Sprintf("grid=%d pairs=%d", cfg.GridSize, len(cfg.Connections)))
	return s.state.Snapshot(), nil
}

// ResetLevel rebuilds the current level from scratch.
func (s *Session) ResetLevel() board.Snapshot {
	if s.state == nil {
		return board.Snapshot{}
	}
	s.state.Reset()
	s.stroke = idle{}
	s.record("level", "reset", "")
	return s.state.Snapshot()
}

// Resize reprojects the current level for a new viewport. Like a reset, it
// clears progress.
func (s *Session) Resize(w, h float64) board.Snapshot {
	s.width, s.height = w, h
	if s.state == nil {
		return board.Snapshot{}
	}
	s.state.Resize(w, h)
	s.stroke = idle{}
	s.record("level", "resize", fmt.Sprintf("%.0fx%.0f", w, h))
	return s.state.Snapshot()
}

// IsLevelComplete reports whether every dot of the current level is connected.
func (s *Session) IsLevelComplete() bool {
	return s.state != nil && s.state.Complete
}

// CurrentLevel returns the loaded level index, or 0 before the first NewGame.
func (s *Session) CurrentLevel() int {
	if s.state == nil {
		return 0
	}
	return s.state.Level
}

// FinalLevel returns the campaign length.
func (s *Session) FinalLevel() int {
	return s.finalLevel
}

// State returns a copy of the current level state.
func (s *Session) State() board.Snapshot {
	if s.state == nil {
		return board.Snapshot{}
	}
	return s.state.Snapshot()
}

// Config returns the layout of the current level.
func (s *Session) Config() level.Config {
	if s.state == nil {
		return level.Config{}
	}
	return s.state.Config
}

// Events returns the session's event log.
func (s *Session) Events() *EventLog {
	return s.events
}

func (s *Session) record(category, key, value string) {
	lvl := s.CurrentLevel()
	s.events.Add(lvl, category, key, value)
	s.log.WithFields(logrus.Fields{
		"level":    lvl,
		"category": category,
		"key":      key,
	}).Debug(value)
}

func (s *Session) result(o Outcome, r RejectReason, e Event) Result {
	return Result{Outcome: o, Reason: r, Event: e, State: s.State()}
}
