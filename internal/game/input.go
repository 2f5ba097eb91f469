package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/colorlink/internal/engine"
)

type pointerSource int

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
)

// pointer tracks the device currently driving a stroke. Coordinates are
// board-local.
type pointer struct {
	source       pointerSource
	touchID      ebiten.TouchID
	lastX, lastY float64
}

func (p *pointer) reset() { *p = pointer{} }

func (p *pointer) active() bool { return p.source != sourceNone }

// toBoard converts screen coordinates to board-local ones.
func (g *Game) toBoard(sx, sy int) (float64, float64) {
	return float64(sx - g.boardX), float64(sy - g.boardY)
}

// handleKeys processes edge-triggered key presses.
func (g *Game) handleKeys() {
	current := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		current[k] = ebiten.IsKeyPressed(k)
		return current[k] && !g.prevKeys[k]
	}

	// Each key is polled every frame so prevKeys stays accurate.
	esc := pressed(ebiten.KeyEscape)
	reset := pressed(ebiten.KeyR)
	cp := pressed(ebiten.KeyC)
	next := pressed(ebiten.KeyN)
	enter := pressed(ebiten.KeyEnter)
	yes := pressed(ebiten.KeyY)
	g.prevKeys = current

	if cp {
		g.copyReport()
	}

	switch g.banner {
	case bannerLevel:
		if next || enter {
			g.nextLevel()
		}
		return
	case bannerCampaign:
		switch {
		case yes:
			if err := g.startLevel(1); err != nil {
				g.log.WithError(err).Error("restart campaign")
			}
		case next:
			g.banner = bannerNone
		}
		return
	}

	if esc {
		g.cancelStroke()
	}
	if reset {
		g.ptr.reset()
		g.session.ResetLevel()
	}
}

// handleBannerPointer lets a click or tap dismiss the level banner.
func (g *Game) handleBannerPointer() {
	g.ptr.reset()
	if g.banner != bannerLevel {
		return
	}
	tapped := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	if tapped {
		g.nextLevel()
	}
}

// handlePointer feeds mouse and touch input into the session.
func (g *Game) handlePointer() {
	touches := ebiten.AppendTouchIDs(nil)
	if len(touches) > 1 {
		g.cancelStroke()
		return
	}

	switch g.ptr.source {
	case sourceNone:
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) == 1 && len(touches) == 1 {
			x, y := g.toBoard(ebiten.TouchPosition(ids[0]))
			g.pointerDown(sourceTouch, ids[0], x, y)
			return
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := g.toBoard(ebiten.CursorPosition())
			g.pointerDown(sourceMouse, 0, x, y)
		}
	case sourceMouse:
		x, y := g.toBoard(ebiten.CursorPosition())
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.pointerUp(x, y)
			return
		}
		g.pointerMove(x, y)
	case sourceTouch:
		if inpututil.IsTouchJustReleased(g.ptr.touchID) {
			// Released touches no longer report a position.
			g.pointerUp(g.ptr.lastX, g.ptr.lastY)
			return
		}
		g.pointerMove(g.toBoard(ebiten.TouchPosition(g.ptr.touchID)))
	}
}

// pointerDown starts a stroke. The device is only tracked if the session
// accepted the begin.
func (g *Game) pointerDown(src pointerSource, id ebiten.TouchID, x, y float64) {
	if r := g.session.OnStrokeBegin(x, y); r.Outcome != engine.OutcomeActive {
		return
	}
	g.ptr = pointer{source: src, touchID: id, lastX: x, lastY: y}
}

func (g *Game) pointerMove(x, y float64) {
	if !g.ptr.active() || (x == g.ptr.lastX && y == g.ptr.lastY) {
		return
	}
	g.ptr.lastX, g.ptr.lastY = x, y
	g.session.OnStrokeExtend(x, y)
}

func (g *Game) pointerUp(x, y float64) {
	if !g.ptr.active() {
		return
	}
	g.ptr.reset()
	r := g.session.OnStrokeEnd(x, y)
	if r.Outcome == engine.OutcomeRejected {
		g.log.WithField("reason", r.Reason.String()).Debug("stroke rejected")
	}
}

func (g *Game) cancelStroke() {
	if !g.ptr.active() {
		return
	}
	g.ptr.reset()
	g.session.OnStrokeCancel()
}
