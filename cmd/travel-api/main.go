// Command travel-api serves the vacation package booking API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"reservio/internal/config"
	"reservio/internal/http/handlers"
	"reservio/internal/metrics"
	"reservio/internal/storage"
	"reservio/internal/storage/memstore"
	"reservio/internal/storage/sqlstore"

	router "reservio/internal/http"
)

func main() {
	env := config.LoadEnv()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Str("service", "travel-api").Logger()

	var store storage.TravelStore
	switch env.Storage {
	case "mysql":
		db, err := config.OpenDB(env.DBDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("open database")
		}
		defer db.Close()
		store = sqlstore.NewTravel(db)
	default:
		store = memstore.NewTravel()
	}

	metrics.Register()

	h := handlers.NewTravelHandler(store, &log)
	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewTravelRouter(env, h, &log),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", env.AppAddr).Str("storage", env.Storage).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("shutdown")
	}
	log.Info().Msg("stopped")
}
