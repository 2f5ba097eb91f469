package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/colorlink/internal/engine"
)

const (
	panelWidth     = 280
	logMaxEntries  = 40
	logLineHeight  = 15
	logTitleHeight = 20
)

// MessageEntry is a single line in the message panel.
type MessageEntry struct {
	Level   int
	Kind    string // category of the engine event it came from
	Message string
}

// MessageLog is a ring buffer of recent engine events rendered on-screen.
type MessageLog struct {
	entries []MessageEntry
	head    int
	count   int
}

// NewMessageLog creates a message log with a fixed capacity.
func NewMessageLog() *MessageLog {
	return &MessageLog{
		entries: make([]MessageEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (ml *MessageLog) Add(level int, kind, msg string) {
	ml.entries[ml.head] = MessageEntry{
		Level:   level,
		Kind:    kind,
		Message: msg,
	}
	ml.head = (ml.head + 1) % logMaxEntries
	if ml.count < logMaxEntries {
		ml.count++
	}
}

// AddEvent copies an engine log entry into the panel.
func (ml *MessageLog) AddEvent(e engine.LogEntry) {
	msg := e.Key
	if e.Value != "" {
		msg += " " + e.Value
	}
	ml.Add(e.Level, e.Category, msg)
}

// Recent returns entries in chronological order (oldest first).
func (ml *MessageLog) Recent() []MessageEntry {
	result := make([]MessageEntry, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + logMaxEntries) % logMaxEntries
		result[i] = ml.entries[idx]
	}
	return result
}

// Visible returns the newest entries that fit in a panel panelH pixels tall.
func (ml *MessageLog) Visible(panelH int) []MessageEntry {
	entries := ml.Recent()
	fit := max((panelH-logTitleHeight-4)/logLineHeight, 0)
	if len(entries) > fit {
		entries = entries[len(entries)-fit:]
	}
	return entries
}

// Draw renders the panel along the right edge of the screen.
func (ml *MessageLog) Draw(screen *ebiten.Image, face text.Face, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, panelWidth, float32(panelH), color.RGBA{R: 18, G: 18, B: 24, A: 255}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)
	vector.FillRect(screen, px, 0, panelWidth, logTitleHeight, color.RGBA{R: 30, G: 30, B: 44, A: 255}, false)
	drawText(screen, "MESSAGES", face, panelX+8, 4, color.White)

	entries := ml.Visible(panelH)

	y := logTitleHeight + 4
	for i, e := range entries {
		clr := color.RGBA{R: 150, G: 150, B: 160, A: 255}
		if i == len(entries)-1 {
			clr = color.RGBA{R: 240, G: 240, B: 255, A: 255}
		}
		if e.Kind == "level" {
			vector.FillRect(screen, px+2, float32(y), panelWidth-4, logLineHeight, color.RGBA{R: 34, G: 44, B: 34, A: 200}, false)
		}
		drawText(screen, e.Message, face, panelX+8, y+1, clr)
		y += logLineHeight
	}
}
