package game

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestGame opens a level on a 400x400 board.
func newTestGame(t *testing.T, lvl int) *Game {
	t.Helper()
	g, err := New(lvl, 400+panelWidth, 400+hudHeight, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func connectedDots(g *Game) int {
	n := 0
	for _, d := range g.session.State().Dots {
		if d.Connected {
			n++
		}
	}
	return n
}

func TestNew_LayoutSplitsWindow(t *testing.T) {
	g := newTestGame(t, 1)
	if g.boardW != 400 || g.boardH != 400 {
		t.Fatalf("board = %dx%d, want 400x400", g.boardW, g.boardH)
	}
	if g.boardY != hudHeight {
		t.Fatalf("boardY = %d, want %d", g.boardY, hudHeight)
	}
	snap := g.session.State()
	if snap.Width != 400 || snap.Height != 400 {
		t.Fatalf("session viewport = %.0fx%.0f", snap.Width, snap.Height)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(0, 800, 600, quietLogger()); err == nil {
		t.Fatal("expected error for level 0")
	}
}

func TestToBoard_OffsetsHUD(t *testing.T) {
	g := newTestGame(t, 1)
	x, y := g.toBoard(100, 100+hudHeight)
	if x != 100 || y != 100 {
		t.Fatalf("toBoard = (%.0f,%.0f), want (100,100)", x, y)
	}
}

func TestPointer_DragCommitsStroke(t *testing.T) {
	g := newTestGame(t, 1)
	// Red pair on level 1 sits on the main diagonal.
	g.pointerDown(sourceMouse, 0, 100, 100)
	if !g.ptr.active() {
		t.Fatal("pointer should track an accepted begin")
	}
	g.pointerMove(150, 150)
	g.pointerMove(200, 200)
	g.pointerUp(200, 200)

	if g.ptr.active() {
		t.Fatal("pointer should be released")
	}
	if got := connectedDots(g); got != 2 {
		t.Fatalf("connected dots = %d, want 2", got)
	}
}

func TestPointer_DownOffDotIgnored(t *testing.T) {
	g := newTestGame(t, 1)
	g.pointerDown(sourceMouse, 0, 390, 390)
	if g.ptr.active() {
		t.Fatal("begin away from every dot should not track the pointer")
	}
	if _, ok := g.session.Stroke(); ok {
		t.Fatal("no stroke expected")
	}
}

func TestPointer_CancelDropsStroke(t *testing.T) {
	g := newTestGame(t, 1)
	g.pointerDown(sourceTouch, 3, 100, 100)
	g.pointerMove(150, 150)
	g.cancelStroke()

	if _, ok := g.session.Stroke(); ok {
		t.Fatal("stroke should be cancelled")
	}
	if got := connectedDots(g); got != 0 {
		t.Fatalf("connected dots = %d, want 0", got)
	}
}

func TestBanner_LevelCompleteAdvances(t *testing.T) {
	g := newTestGame(t, 1)
	g.OnLevelComplete(1)
	if g.banner != bannerLevel {
		t.Fatalf("banner = %d, want level banner", g.banner)
	}
	g.nextLevel()
	if g.banner != bannerNone {
		t.Fatal("banner should clear on the next level")
	}
	if got := g.session.CurrentLevel(); got != 2 {
		t.Fatalf("level = %d, want 2", got)
	}
}

func TestNextLevel_WrapsAfterFinal(t *testing.T) {
	g := newTestGame(t, 100)
	g.OnCampaignComplete()
	if g.banner != bannerCampaign {
		t.Fatal("expected campaign banner")
	}
	g.nextLevel()
	if got := g.session.CurrentLevel(); got != 1 {
		t.Fatalf("level = %d, want 1", got)
	}
}

func TestLayout_ResizeReprojects(t *testing.T) {
	g := newTestGame(t, 1)
	g.pointerDown(sourceMouse, 0, 100, 100)

	w, h := g.Layout(600+panelWidth, 600+hudHeight)
	if w != 600+panelWidth || h != 600+hudHeight {
		t.Fatalf("Layout returned %dx%d", w, h)
	}
	if g.ptr.active() {
		t.Fatal("resize should drop the tracked pointer")
	}
	snap := g.session.State()
	if snap.Width != 600 || snap.Height != 600 {
		t.Fatalf("viewport = %.0fx%.0f, want 600x600", snap.Width, snap.Height)
	}
	if snap.Dots[0].X != 150 || snap.Dots[0].Y != 150 {
		t.Fatalf("dot 0 not reprojected: %+v", snap.Dots[0])
	}
}

func TestLayout_SameSizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, 1)
	g.pointerDown(sourceMouse, 0, 100, 100)
	g.pointerMove(200, 200)
	g.pointerUp(200, 200)

	g.Layout(g.width, g.height)
	if got := connectedDots(g); got != 2 {
		t.Fatalf("connected dots = %d after no-op layout, want 2", got)
	}
}

func TestSyncMessages_CopiesNewEventsOnce(t *testing.T) {
	g := newTestGame(t, 1)
	g.syncMessages()
	first := len(g.messages.Recent())
	if first == 0 {
		t.Fatal("level start should reach the message panel")
	}
	if !strings.HasPrefix(g.messages.Recent()[0].Message, "start") {
		t.Fatalf("first message = %q", g.messages.Recent()[0].Message)
	}
	g.syncMessages()
	if got := len(g.messages.Recent()); got != first {
		t.Fatalf("messages = %d after resync, want %d", got, first)
	}
}

func TestSyncMessages_EventLogStaysBounded(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < eventLogLimit*2; i++ {
		g.session.ResetLevel()
		g.syncMessages()
	}
	if got := len(g.session.Events().Entries()); got != eventLogLimit {
		t.Fatalf("event log holds %d entries, want %d", got, eventLogLimit)
	}
	g.session.ResetLevel()
	g.syncMessages()
	recent := g.messages.Recent()
	if recent[len(recent)-1].Message != "reset" {
		t.Fatalf("last message = %q, want reset", recent[len(recent)-1].Message)
	}
}

func TestCopyReport(t *testing.T) {
	g := newTestGame(t, 1)
	var copied string
	g.copyText = func(s string) error {
		copied = s
		return nil
	}
	g.copyReport()
	if !strings.Contains(copied, "level=1/100 grid=3 pairs=3") {
		t.Fatalf("unexpected report:\n%s", copied)
	}
	recent := g.messages.Recent()
	if recent[len(recent)-1].Message != "report copied" {
		t.Fatalf("last message = %q", recent[len(recent)-1].Message)
	}
}

func TestCopyReport_ClipboardFailure(t *testing.T) {
	g := newTestGame(t, 1)
	g.copyText = func(string) error { return errors.New("no clipboard") }
	g.copyReport()
	recent := g.messages.Recent()
	if recent[len(recent)-1].Message != "clipboard unavailable" {
		t.Fatalf("last message = %q", recent[len(recent)-1].Message)
	}
}

func TestDebugReport(t *testing.T) {
	g := newTestGame(t, 1)
	g.pointerDown(sourceMouse, 0, 100, 100)
	g.pointerMove(200, 200)
	g.pointerUp(200, 200)

	r := debugReport(g.session)
	for _, want := range []string{
		"layout:\n0 1 2\n1 0 2\n. . .\n",
		"red     (100,100) connected",
		"paths:\n  red     points=",
		"stroke   committed",
	} {
		if !strings.Contains(r, want) {
			t.Errorf("report missing %q:\n%s", want, r)
		}
	}
}

func TestPaletteColor_OutOfRange(t *testing.T) {
	if paletteColor(0) != palette[0] {
		t.Fatal("index 0 should map to red")
	}
	fallback := paletteColor(-1)
	if fallback != paletteColor(len(palette)) {
		t.Fatal("out-of-range indices should share the fallback colour")
	}
}
