// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"go-hex-strategy/internal/config"
	"go-hex-strategy/internal/event"
	"go-hex-strategy/internal/game"
	"go-hex-strategy/internal/state"
	"go-hex-strategy/internal/utils"
	"go-hex-strategy/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxDeltaTime = 0.06

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var configPath string
	var seed int64
	var selfMove bool
	flag.StringVar(&configPath, "config", "", "board settings JSON file (defaults when empty)")
	flag.Int64Var(&seed, "seed", 0, "board RNG seed (0 = time based)")
	flag.BoolVar(&selfMove, "self-move", false, "let the selected piece's own tile show in the move overlay")
	flag.Parse()

	settings := hexmap.DefaultBoardSettings()
	if configPath != "" {
		var err error
		settings, err = config.LoadBoardSettings(configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	prng := utils.NewPRNGService(seed)
	logger := log.New(os.Stdout, "", log.LstdFlags)
	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.PieceMoved, event.ListenerFunc(func(e event.Event) {
		if pe, ok := e.Data.(event.PieceEvent); ok {
			logger.Printf("piece %d (%s) now at %v", pe.PieceID, pe.Name, pe.To)
		}
	}))

	g, err := game.NewGame(settings, prng,
		game.WithLogger(logger),
		game.WithDispatcher(dispatcher),
		game.WithSelfBlocks(!selfMove),
	)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := g.SpawnSettler(); err != nil {
		if !errors.Is(err, game.ErrOffBoard) {
			log.Fatal(err)
		}
		log.Printf("no settler: %v", err)
	}
	logger.Printf("board radius=%d tiles=%d seed=%d", settings.BoardRadius, g.Board.Len(), prng.Seed())

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewPlayState(sm, g))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
