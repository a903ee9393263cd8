package main

import (
	"context"
	"errors"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-classic/internal/config"
	"github.com/vancomm/minesweeper-classic/internal/game"
	"github.com/vancomm/minesweeper-classic/internal/mines"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func newLogger() *slog.Logger {
	if config.Development() {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger()
	mines.Log = logger.With(slog.String("component", "mines"))

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	difficulty, err := game.ParseDifficulty(config.Difficulty())
	if err != nil {
		logger.Error("invalid APP_DIFFICULTY", slog.Any("error", err))
		os.Exit(1)
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		logger.Error("failed to read ws config", slog.Any("error", err))
		os.Exit(1)
	}

	app := &application{
		logger:  logger,
		session: game.New(logger, createRand(), difficulty),
		ws:      ws,
	}

	port := config.Port()
	server := &http.Server{
		Addr:              port,
		Handler:           app.Handler(),
		ReadHeaderTimeout: time.Second * 15,
		IdleTimeout:       time.Second * 60,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("minesweeper listening", slog.String("addr", port))
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
