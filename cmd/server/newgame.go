package main

import (
	"net/http"

	"github.com/vancomm/minesweeper-classic/internal/game"
)

func (app *application) handleNewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeNewGame(r.URL.Query())
	if err != nil {
		app.badRequest(w, game.ErrUnknownDifficulty)
		return
	}

	difficulty, err := game.ParseDifficulty(dto.Difficulty)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	app.replyWith(w, app.session.NewGame(difficulty))
}
