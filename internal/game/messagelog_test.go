package game

import (
	"fmt"
	"testing"

	"github.com/Garsondee/colorlink/internal/engine"
)

func TestMessageLog_Empty(t *testing.T) {
	ml := NewMessageLog()
	if got := len(ml.Recent()); got != 0 {
		t.Fatalf("expected empty log, got %d entries", got)
	}
}

func TestMessageLog_WrapsOldestFirst(t *testing.T) {
	ml := NewMessageLog()
	for i := 0; i < logMaxEntries+5; i++ {
		ml.Add(1, "stroke", fmt.Sprintf("m%d", i))
	}
	recent := ml.Recent()
	if len(recent) != logMaxEntries {
		t.Fatalf("len = %d, want %d", len(recent), logMaxEntries)
	}
	if recent[0].Message != "m5" {
		t.Fatalf("oldest = %q, want m5", recent[0].Message)
	}
	if last := recent[len(recent)-1].Message; last != fmt.Sprintf("m%d", logMaxEntries+4) {
		t.Fatalf("newest = %q", last)
	}
}

func TestMessageLog_AddEvent(t *testing.T) {
	ml := NewMessageLog()
	ml.AddEvent(engine.LogEntry{Seq: 1, Level: 2, Category: "level", Key: "complete"})
	ml.AddEvent(engine.LogEntry{Seq: 2, Level: 2, Category: "stroke", Key: "rejected", Value: "tap red"})

	recent := ml.Recent()
	if recent[0].Message != "complete" || recent[0].Kind != "level" || recent[0].Level != 2 {
		t.Fatalf("unexpected first entry: %+v", recent[0])
	}
	if recent[1].Message != "rejected tap red" {
		t.Fatalf("second message = %q", recent[1].Message)
	}
}

func TestMessageLog_VisibleFitsPanel(t *testing.T) {
	ml := NewMessageLog()
	for i := 0; i < 10; i++ {
		ml.Add(1, "stroke", fmt.Sprintf("m%d", i))
	}

	// Title plus padding leaves room for three lines.
	visible := ml.Visible(logTitleHeight + 4 + 3*logLineHeight)
	if len(visible) != 3 || visible[0].Message != "m7" {
		t.Fatalf("visible = %+v, want m7..m9", visible)
	}
	if got := len(ml.Visible(1000)); got != 10 {
		t.Fatalf("tall panel shows %d entries, want 10", got)
	}
}

func TestMessageLog_VisibleTinyPanel(t *testing.T) {
	ml := NewMessageLog()
	ml.Add(1, "level", "start")
	for _, h := range []int{0, 5, logTitleHeight} {
		if got := len(ml.Visible(h)); got != 0 {
			t.Fatalf("panel height %d shows %d entries, want 0", h, got)
		}
	}
}
