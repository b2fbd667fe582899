// cmd/satya/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := InitLogger(cfg.LogPath, ParseLogLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := openDatabase(cfg.DatabasePath)
	if err != nil {
		Logger().Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	cache := NewCacheStore(db, CacheTTL)
	store := NewCheckStore(db)

	providers := newProviders(newProviderClient(cache, cfg))
	collector := NewCollector(providers)

	var llm LLMBackend
	if cfg.OpenAIAPIKey != "" {
		llm = NewOpenAIBackend(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		Logger().Info("LLM adjudication enabled (model %s)", cfg.OpenAIModel)
	}

	var classifier ClassifierBackend
	if cfg.ClassifierURL != "" {
		classifier = NewZeroShotClassifier(cfg.ClassifierURL, cfg.ClassifierAPIKey)
		Logger().Info("Classifier fallback enabled (%s)", cfg.ClassifierURL)
	}

	checker := NewChecker(collector, NewResolver(llm, classifier))
	extractor := NewClaimExtractor(cfg.AnalyzeTimeout(), cfg.UserAgentString)

	scheduler := StartScheduler(store, cfg.HistoryRetentionDays)
	defer scheduler.Stop()

	server := NewAPIServer(cfg, checker, store, extractor)
	go func() {
		if err := server.Start(); err != nil {
			Logger().Error("Server failed: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	Logger().Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		Logger().Error("Shutdown error: %v", err)
	}

	Logger().Close()
}
