package game

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/colorlink/internal/engine"
)

// eventLogLimit bounds the engine events kept for the panel and reports.
const eventLogLimit = 256

type bannerKind int

const (
	bannerNone bannerKind = iota
	bannerLevel
	bannerCampaign
)

// Game is the ebiten frontend. It turns pointer input into strokes, draws the
// session state and shows completion banners; all rules live in the engine.
type Game struct {
	session  *engine.Session
	log      logrus.FieldLogger
	messages *MessageLog
	lastSeq  int
	face     text.Face

	// Screen layout: HUD strip on top, board below it, message panel right.
	width, height  int
	boardX, boardY int
	boardW, boardH int

	banner   bannerKind
	ptr      pointer
	prevKeys map[ebiten.Key]bool

	// copyText is swapped out in tests.
	copyText func(string) error
}

// New creates the frontend and loads startLevel on a width x height window.
func New(startLevel, width, height int, log logrus.FieldLogger) (*Game, error) {
	g := &Game{
		log:      log,
		messages: NewMessageLog(),
		face:     newFace(),
		copyText: clipboard.WriteAll,
	}
	g.layoutBoard(width, height)
	g.session = engine.New(
		engine.WithViewport(float64(g.boardW), float64(g.boardH)),
		engine.WithListener(g),
		engine.WithLogger(log),
		engine.WithEventLog(engine.NewCappedEventLog(eventLogLimit)),
	)
	if err := g.startLevel(startLevel); err != nil {
		return nil, err
	}
	return g, nil
}

// OnLevelComplete implements engine.Listener.
func (g *Game) OnLevelComplete(level int) {
	g.log.WithField("level", level).Info("level complete")
	g.banner = bannerLevel
}

// OnCampaignComplete implements engine.Listener.
func (g *Game) OnCampaignComplete() {
	g.log.Info("campaign complete")
	g.banner = bannerCampaign
}

func (g *Game) startLevel(lvl int) error {
	if _, err := g.session.NewGame(lvl); err != nil {
		return fmt.Errorf("start level %d: %w", lvl, err)
	}
	g.banner = bannerNone
	g.ptr.reset()
	g.log.WithField("level", lvl).Info("level started")
	return nil
}

// nextLevel advances after a level-complete banner. Past the final level the
// campaign starts over at level 1.
func (g *Game) nextLevel() {
	next := g.session.CurrentLevel() + 1
	if next > g.session.FinalLevel() {
		next = 1
	}
	if err := g.startLevel(next); err != nil {
		g.log.WithError(err).Error("advance level")
	}
}

// layoutBoard splits the window into HUD, board and message panel.
func (g *Game) layoutBoard(width, height int) {
	g.width, g.height = width, height
	g.boardX, g.boardY = 0, hudHeight
	g.boardW = max(width-panelWidth, 1)
	g.boardH = max(height-hudHeight, 1)
}

func (g *Game) Update() error {
	g.handleKeys()
	if g.banner != bannerNone {
		g.handleBannerPointer()
	} else {
		g.handlePointer()
	}
	g.syncMessages()
	return nil
}

// syncMessages copies new engine events into the on-screen panel.
func (g *Game) syncMessages() {
	for _, e := range g.session.Events().Since(g.lastSeq) {
		g.messages.AddEvent(e)
		g.lastSeq = e.Seq
	}
}

func (g *Game) copyReport() {
	if err := g.copyText(debugReport(g.session)); err != nil {
		g.log.WithError(err).Warn("copy report to clipboard")
		g.messages.Add(g.session.CurrentLevel(), "ui", "clipboard unavailable")
		return
	}
	g.messages.Add(g.session.CurrentLevel(), "ui", "report copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := g.session.State()
	g.drawBoard(screen, snap)
	g.drawHUD(screen, snap)
	g.messages.Draw(screen, g.face, g.boardW, g.height)
	g.drawBanner(screen)
}

// Layout keeps a 1:1 pixel mapping. A window resize reprojects the level,
// which clears progress the same way a reset does.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.layoutBoard(outsideWidth, outsideHeight)
		g.ptr.reset()
		g.session.Resize(float64(g.boardW), float64(g.boardH))
	}
	return outsideWidth, outsideHeight
}
