package main

import (
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vancomm/minesweeper-classic/internal/config"
	"github.com/vancomm/minesweeper-classic/internal/game"
	"github.com/vancomm/minesweeper-classic/internal/handlers"
	"github.com/vancomm/minesweeper-classic/internal/middleware"
)

type application struct {
	logger  *slog.Logger
	session *game.Session
	ws      *config.WebSocket
}

func (app *application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", app.handleHealth)
	mux.HandleFunc("POST /game", app.handleNewGame)
	mux.HandleFunc("GET /game", app.handleFetchGame)
	mux.HandleFunc("POST /game/move", app.handleMove)
	mux.HandleFunc("GET /game/connect", app.wsConnect)
	return mux
}

// Handler is the mux behind the full middleware stack.
func (app *application) Handler() http.Handler {
	return middleware.Wrap(
		app.ServeMux(),
		chimw.Recoverer,
		chimw.RealIP,
		middleware.Logging(app.logger),
		middleware.Cors(),
	)
}

func (app *application) badRequest(w http.ResponseWriter, err error) {
	handlers.SendErrorOrLog(w, app.logger, http.StatusBadRequest, err)
}

func (app *application) conflict(w http.ResponseWriter, err error) {
	handlers.SendErrorOrLog(w, app.logger, http.StatusConflict, err)
}

func (app *application) replyWith(w http.ResponseWriter, v any) {
	handlers.SendJSONOrLog(w, app.logger, http.StatusOK, v)
}

func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	app.replyWith(w, map[string]string{"status": "ok"})
}

func (app *application) handleFetchGame(w http.ResponseWriter, r *http.Request) {
	app.replyWith(w, app.session.State())
}
