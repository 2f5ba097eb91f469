package engine

import "github.com/Garsondee/colorlink/internal/board"

// Outcome is what a stroke call did.
type Outcome int

const (
	// OutcomeIgnored means the call was out of sequence or hit nothing.
	OutcomeIgnored Outcome = iota
	OutcomeActive
	OutcomeCommitted
	OutcomeRejected
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeActive:
		return "active"
	case OutcomeCommitted:
		return "committed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "ignored"
	}
}

// RejectReason explains why a finished stroke was discarded.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonTap
	ReasonNoEndDot
	ReasonColorMismatch
	ReasonSameDot
	ReasonEndConnected
	ReasonSelfIntersect
	ReasonPathIntersect
	ReasonPassThrough
)

func (r RejectReason) String() string {
	switch r {
	case ReasonTap:
		return "tap"
	case ReasonNoEndDot:
		return "no_end_dot"
	case ReasonColorMismatch:
		return "color_mismatch"
	case ReasonSameDot:
		return "same_dot"
	case ReasonEndConnected:
		return "end_connected"
	case ReasonSelfIntersect:
		return "self_intersect"
	case ReasonPathIntersect:
		return "path_intersect"
	case ReasonPassThrough:
		return "pass_through"
	default:
		return "none"
	}
}

// Event is a completion transition fired by a committed stroke.
type Event int

const (
	EventNone Event = iota
	EventLevelComplete
	EventCampaignComplete
)

func (e Event) String() string {
	switch e {
	case EventLevelComplete:
		return "level_complete"
	case EventCampaignComplete:
		return "campaign_complete"
	default:
		return "none"
	}
}

// Result is returned by every stroke call.
type Result struct {
	Outcome Outcome
	Reason  RejectReason
	Event   Event
	State   board.Snapshot
}

// Listener observes completion events. Calls happen synchronously inside
// OnStrokeEnd.
type Listener interface {
	OnLevelComplete(level int)
	OnCampaignComplete()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	LevelComplete    func(level int)
	CampaignComplete func()
}

func (l ListenerFuncs) OnLevelComplete(level int) {
	if l.LevelComplete != nil {
		l.LevelComplete(level)
	}
}

func (l ListenerFuncs) OnCampaignComplete() {
	if l.CampaignComplete != nil {
		l.CampaignComplete()
	}
}
