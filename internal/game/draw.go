package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/colorlink/internal/board"
	"github.com/Garsondee/colorlink/internal/geom"
	"github.com/Garsondee/colorlink/internal/level"
)

const (
	pathWidth      = 20
	dotRadius      = 40
	dotInnerRadius = 20
	hudHeight      = 48
	titleScale     = 2
)

// palette follows level.ColorName order.
var palette = [level.PaletteSize]color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},   // red
	{R: 0, G: 0, B: 255, A: 255},   // blue
	{R: 255, G: 255, B: 0, A: 255}, // yellow
	{R: 0, G: 255, B: 0, A: 255},   // green
	{R: 255, G: 0, B: 255, A: 255}, // magenta
	{R: 0, G: 255, B: 255, A: 255}, // cyan
	{R: 255, G: 165, B: 0, A: 255}, // orange
}

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 14, A: 255}
	hudColor        = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	gridColor       = color.RGBA{R: 36, G: 36, B: 48, A: 255}
)

func paletteColor(ci int) color.RGBA {
	if ci < 0 || ci >= len(palette) {
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
	return palette[ci]
}

// newFace wraps the fixed 7x13 bitmap font for text/v2.
func newFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawTextCentered(dst *ebiten.Image, s string, face text.Face, cx, y int, scale float64, clr color.Color) {
	w := text.Advance(s, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-w/2, float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawPolyline strokes a path with round joints.
func drawPolyline(dst *ebiten.Image, ox, oy float32, points []geom.Point, clr color.Color) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(dst, ox+float32(a.X), oy+float32(a.Y), ox+float32(b.X), oy+float32(b.Y), pathWidth, clr, true)
	}
	for _, pt := range points {
		vector.FillCircle(dst, ox+float32(pt.X), oy+float32(pt.Y), pathWidth/2, clr, true)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, snap board.Snapshot) {
	ox, oy := float32(g.boardX), float32(g.boardY)

	// Faint cell grid so layouts read as a board.
	if grid := g.session.Config().GridSize; grid > 0 {
		cellW := snap.Width / float64(grid+1)
		cellH := snap.Height / float64(grid+1)
		for i := 1; i <= grid; i++ {
			x := ox + float32(float64(i)*cellW)
			y := oy + float32(float64(i)*cellH)
			vector.StrokeLine(screen, x, oy+float32(cellH), x, oy+float32(float64(grid)*cellH), 1, gridColor, false)
			vector.StrokeLine(screen, ox+float32(cellW), y, ox+float32(float64(grid)*cellW), y, 1, gridColor, false)
		}
	}

	for ci, path := range snap.Paths {
		drawPolyline(screen, ox, oy, path, paletteColor(ci))
	}

	if st, ok := g.session.Stroke(); ok {
		pts := append([]geom.Point{st.Start}, st.Points...)
		c := paletteColor(st.Color)
		drawPolyline(screen, ox, oy, pts, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 200})
	}

	for _, d := range snap.Dots {
		vector.FillCircle(screen, ox+float32(d.X), oy+float32(d.Y), dotRadius, paletteColor(d.Color), true)
		if d.Connected {
			vector.FillCircle(screen, ox+float32(d.X), oy+float32(d.Y), dotInnerRadius, color.White, true)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap board.Snapshot) {
	vector.FillRect(screen, 0, 0, float32(g.boardW), hudHeight, hudColor, false)
	drawTextCentered(screen, fmt.Sprintf("Level %d", snap.Level), g.face, g.boardW/2, 6, titleScale, color.White)

	connected := 0
	for _, d := range snap.Dots {
		if d.Connected {
			connected++
		}
	}
	status := fmt.Sprintf("%d/%d dots  [R]eset  [C]opy report  [Esc] cancel", connected, len(snap.Dots))
	drawText(screen, status, g.face, 8, hudHeight-16, color.RGBA{R: 160, G: 160, B: 180, A: 255})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), g.boardW-64, 4)
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	var title, hint string
	switch g.banner {
	case bannerLevel:
		title = fmt.Sprintf("Level %d complete!", g.session.CurrentLevel())
		hint = "[N] / [Enter] / tap: next level"
	case bannerCampaign:
		title = "You've completed all levels!"
		hint = "Start over? [Y]es / [N]o"
	default:
		return
	}

	w, h := float32(g.boardW)*0.8, float32(110)
	x := float32(g.boardX) + (float32(g.boardW)-w)/2
	y := float32(g.boardY) + (float32(g.boardH)-h)/2
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 20, G: 20, B: 30, A: 235}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 120, G: 120, B: 160, A: 255}, false)

	cx := g.boardX + g.boardW/2
	drawTextCentered(screen, title, g.face, cx, int(y)+20, titleScale, color.White)
	drawTextCentered(screen, hint, g.face, cx, int(y)+70, 1, color.RGBA{R: 200, G: 200, B: 220, A: 255})
}
