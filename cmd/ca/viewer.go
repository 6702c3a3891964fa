//go:build ebiten

package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"wordlife/internal/app"
)

func showReplay(replay *app.Replay, scale int) error {
	game := app.New(replay, scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("wordlife: " + replay.Word())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
