package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-classic/internal/game"
	"github.com/vancomm/minesweeper-classic/internal/handlers"
)

func (app *application) handleMove(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeMove(r.URL.Query())
	if err != nil {
		app.badRequest(w, err)
		return
	}

	move, err := decodeGameMove(dto.Move)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	switch move {
	case Open:
		res, rerr := app.session.Reveal(dto.Row, dto.Col)
		if rerr == nil {
			app.logger.Debug("reveal",
				slog.Int("row", dto.Row), slog.Int("col", dto.Col),
				slog.String("result", res.String()),
			)
		}
		err = rerr
	case Flag:
		err = app.session.ToggleFlag(dto.Row, dto.Col)
	}

	if errors.Is(err, game.ErrGameOver) {
		app.conflict(w, err)
		return
	}
	if err != nil {
		handlers.InternalError(w, app.logger, "unable to apply move", err)
		return
	}

	app.replyWith(w, app.session.State())
}
