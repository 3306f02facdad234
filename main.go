package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/4cecoder/arena/config"
	"github.com/4cecoder/arena/game"
	"github.com/4cecoder/arena/handlers"
	"github.com/4cecoder/arena/protocol"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	codec, err := protocol.NewCodec(cfg.SnapshotCodec)
	if err != nil {
		log.Fatal(err)
	}

	engine := game.NewEngine(game.Options{
		Seed:              cfg.Seed,
		PlacementAttempts: cfg.PlacementAttempts,
	})
	hub := handlers.NewHub(engine, codec, cfg.TickInterval, cfg.BroadcastEvery)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", hub.HandleRoot)
	r.Get("/ws", hub.HandleWebSocket)
	r.Get("/state", hub.HandleState)
	r.Get("/eliminated", hub.HandleEliminated)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go hub.Run(ctx)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("shutdown:", err)
		}
	}()

	log.Printf("Server started on :%s (tick %v, codec %s)", cfg.Port, cfg.TickInterval, codec.Name())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
