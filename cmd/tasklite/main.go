package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"tasklite/internal/config"
	"tasklite/internal/httpapi"
	"tasklite/internal/store/filestore"
	"tasklite/internal/store/memorystore"
	"tasklite/internal/store/sqlitestore"
	"tasklite/internal/task"
)

func main() {
	// .env is for local development; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Logging.Level)

	store, cleanup, err := newStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init store")
	}
	defer cleanup()

	service := task.NewService(store)
	handler := httpapi.NewServer(service, log)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Str("backend", cfg.Storage.Backend).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "tasklite").
		Logger()
}

func newStore(cfg *config.Config, log zerolog.Logger) (task.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memorystore.New(), func() {}, nil
	case config.BackendSQLite:
		st, err := sqlitestore.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	default:
		return filestore.New(cfg.Storage.File, log), func() {}, nil
	}
}
