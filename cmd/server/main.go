package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"seogen-go/internal/config"
	"seogen-go/internal/handler"
	"seogen-go/pkg/deploy"
	"seogen-go/pkg/llm"
	"seogen-go/pkg/logger"
	"seogen-go/pkg/storage"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/dev.yaml", "Configuration file path")
	flag.Parse()

	if err := run(configPath); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run(configPath string) error {
	manager := config.NewManager()
	cfg, err := manager.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appLogger := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	logger.SetLogger(appLogger)
	logger.SetGlobalLogger(appLogger)
	mainLog := logger.Component("server")

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	var completionClient llm.CompletionClient
	if cfg.LLM.BaseURL != "" {
		completionClient, err = llm.NewHTTPCompletionClient(llm.ClientConfig{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			Timeout: time.Duration(cfg.LLM.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return fmt.Errorf("failed to create completion client: %w", err)
		}
	} else {
		mainLog.Warn("No completion API configured, all pages will use the template tier")
	}

	var deployer *deploy.Client
	if cfg.Deploy.BaseURL != "" {
		deployer, err = deploy.NewClient(deploy.Config{
			BaseURL:    cfg.Deploy.BaseURL,
			APIKey:     cfg.Deploy.APIKey,
			BatchSize:  cfg.Deploy.BatchSize,
			EnableGzip: cfg.Deploy.EnableGzip,
		})
		if err != nil {
			return fmt.Errorf("failed to create deploy client: %w", err)
		}
	}

	controller := handler.NewController(store, completionClient, deployer, cfg.Generator.BatchSize)

	app := fiber.New(fiber.Config{
		AppName:               "seogen",
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
	})
	controller.Register(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Listen(addr)
	}()
	mainLog.WithField("addr", addr).Info("Server started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		mainLog.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	mainLog.Info("Server stopped")
	return nil
}

func buildStore(cfg *config.Config) (*storage.SiteStore, error) {
	if cfg.Storage.EncryptData {
		backend, err := storage.NewEncryptedFileStorage(storage.StorageConfig{
			DataDir:     cfg.Storage.DataDir,
			EncryptData: true,
		}, cfg.Storage.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create encrypted storage: %w", err)
		}
		return storage.NewSiteStore(backend), nil
	}
	return storage.NewSiteStore(storage.NewMemoryStorage()), nil
}
