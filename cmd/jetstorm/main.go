package main

import (
	"errors"
	"flag"
	"log"

	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/audio/beepaudio"
	"github.com/cobbes/jetstorm/gamescanner"
	"github.com/cobbes/jetstorm/internal/game"
	ebitenrender "github.com/cobbes/jetstorm/internal/render/ebiten"
	"github.com/cobbes/jetstorm/maze"
)

func main() {
	dataDir := flag.String("data", "data", "path to the room, enemy and item data files")
	soundDir := flag.String("sounds", "sounds", "path to the sound files")
	flag.Parse()

	report, err := gamescanner.ScanDataDirectory(*dataDir)
	if err != nil {
		log.Fatalf("failed to scan data directory: %v", err)
	}
	if !report.Complete() {
		for _, f := range report.Missing {
			log.Printf("missing data file: %s", f)
		}
		log.Fatalf("data directory %s is incomplete: %d files missing", *dataDir, len(report.Missing))
	}
	log.Printf("found data for %d rooms", report.Rooms)

	var sfx audio.Player
	backend, err := beepaudio.New(*soundDir)
	if err != nil {
		log.Printf("audio disabled: %v", err)
		sfx = audio.Nop{}
	} else {
		sfx = backend
	}

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.NewGame(renderer, inputMgr, sfx, *dataDir)
	manager := game.NewManager(g, renderer, inputMgr, int(maze.WindowW), int(maze.WindowH))

	engine.SetWindowSize(int(maze.WindowW), int(maze.WindowH))
	engine.SetWindowTitle("Jetstorm")

	if err := engine.RunGame(manager); err != nil && !errors.Is(err, game.ErrQuit) {
		log.Fatal(err)
	}
}
