package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/colorlink/internal/game"
)

func main() {
	var (
		startLevel int
		width      int
		height     int
		logLevel   string
	)
	flag.IntVar(&startLevel, "level", 1, "level to start on (1-100)")
	flag.IntVar(&width, "width", 1000, "window width in pixels")
	flag.IntVar(&height, "height", 768, "window height in pixels")
	flag.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logrus.New()
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid -log-level")
	}
	log.SetLevel(lvl)

	g, err := game.New(startLevel, width, height, log)
	if err != nil {
		log.WithError(err).Fatal("start game")
	}

	ebiten.SetWindowTitle("Color Link")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("run game")
	}
}
