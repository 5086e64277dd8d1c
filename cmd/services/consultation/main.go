package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	config "github.com/felixmccuaig/lyrebird-health-interview/config/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/pkg/logger"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/clients/openai"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/clients/whisper"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/server"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/usecase"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(logger.Config{
		Level:      slog.LevelDebug,
		Output:     os.Stderr,
		AddSource:  true,
		JSONFormat: false,
	})
	logger.SetDefault(log)

	cfg := config.MustLoad()

	ctx := logger.WithContext(context.Background(), log)

	rootCtx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("failed to run()", slog.String("error", err.Error()))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	entPsqlConnect := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Name,
		cfg.Database.Password,
		cfg.Database.SSLMode,
	)
	client, err := ent.Open("postgres", entPsqlConnect)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer client.Close()

	if err := client.Schema.Create(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	files, err := storage.NewFileStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	if err != nil {
		return fmt.Errorf("failed to create file store: %w", err)
	}

	stg := storage.New(client)
	usc := usecase.New(stg, files, whisper.New(&cfg.OpenAI), openai.New(&cfg.OpenAI))

	srv := server.NewServerOptions(cfg, usc)

	address := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:    address,
		Handler: srv.NewRouter(),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		serverErrors <- httpServer.ListenAndServe()
	}()
	log.Info("consultation service started", slog.String("address", address))

	select {
	case err := <-serverErrors:
		log.Info("http server has closed")
		return fmt.Errorf("http server has closed: %w", err)
	case sig := <-shutdown:
		log.Info("start shutdown", slog.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case <-ctx.Done():
		log.Info("closing http server due to context cancellation")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
