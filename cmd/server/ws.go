package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-classic/internal/handlers"
)

// runCommands executes the newline separated commands in message, stopping
// at the first one that fails.
func (app *application) runCommands(message string) error {
	for _, line := range byPiece(strings.TrimSpace(message), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		app.logger.Debug("\t> " + line)
		if err := app.session.Execute(line); err != nil {
			return fmt.Errorf("%q: %w", line, err)
		}
	}
	return nil
}

func (app *application) wsLoop(conn *websocket.Conn) error {
	for {
		if err := conn.SetReadDeadline(time.Now().Add(app.ws.IdleLimit)); err != nil {
			return err
		}
		mt, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		if err := app.runCommands(string(message)); err != nil {
			app.logger.Debug("command failed", slog.Any("error", err))
			if err := conn.WriteJSON(handlers.ErrorBody{Error: err.Error()}); err != nil {
				return fmt.Errorf("unable to write json: %w", err)
			}
		}

		if err := conn.WriteJSON(app.session.State()); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
		app.logger.Debug("\t< <game state>")
	}
}

func (app *application) wsConnect(w http.ResponseWriter, r *http.Request) {
	conn, err := app.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		app.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	app.logger.Debug("established WS connection")

	if err := app.wsLoop(conn); err != nil {
		if websocket.IsCloseError(err,
			websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return
		}
		app.logger.Warn("abnormal ws break", slog.Any("error", err))
	}
}
