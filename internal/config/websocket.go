package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader  websocket.Upgrader
	IdleLimit time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	idle := 10 * time.Minute
	if s, ok := os.LookupEnv("WS_IDLE_SECONDS"); ok {
		secs, err := strconv.Atoi(s)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("WS_IDLE_SECONDS must be a positive int, got %q", s)
		}
		idle = time.Duration(secs) * time.Second
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		IdleLimit: idle,
	}

	return ws, nil
}
