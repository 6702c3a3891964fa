//go:build !ebiten

package main

import (
	"errors"

	"wordlife/internal/app"
)

func showReplay(*app.Replay, int) error {
	return errors.New("the replay window requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/ca -gui ...`")
}
