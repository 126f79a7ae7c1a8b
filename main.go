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

	"agenticdb/application"
	"agenticdb/config"
	"agenticdb/domain"
	"agenticdb/infrastructure/chat"
	"agenticdb/infrastructure/embedding"
	"agenticdb/infrastructure/vectorstore"
	"agenticdb/server"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:          "agenticdb",
		Short:        "Agentic DB: manifest registry with semantic search",
		SilenceUsage: true,
	}

	var addr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ADDR)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	root.AddCommand(serveCmd, versionCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// serve wires the process-wide collaborators once, then runs the HTTP
// server until interrupted.
func serve(ctx context.Context, addr string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(logger)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	embedder, err := embedding.NewOpenAIEmbeddingClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel)
	if err != nil {
		return err
	}

	store, err := vectorstore.NewQdrantStore(cfg.QdrantAddr, embedder, cfg.EmbeddingDim)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := store.EnsureCollections(ctx); err != nil {
		return fmt.Errorf("failed to initialize collections: %w", err)
	}

	completer, err := buildChatCompleter(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Registry:    application.NewRegistryService(store, cfg.SearchTopK, logger),
		Ratings:     application.NewRatingService(store, logger),
		Maintenance: application.NewMaintenanceService(store, logger),
		Chat:        completer,
		StaticDir:   cfg.StaticDir,
		Logger:      logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", cfg.Addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}

func buildChatCompleter(cfg *config.Config) (domain.ChatCompleter, error) {
	if cfg.ChatProvider == config.ChatProviderAnthropic {
		return chat.NewAnthropicChatClient(cfg.AnthropicAPIKey)
	}
	return chat.NewOpenAIChatClient(cfg.OpenAIAPIKey, cfg.ChatModel)
}
