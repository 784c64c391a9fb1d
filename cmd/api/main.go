package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinscribe/transcript-correction/backend/internal/adapters/dictionary"
	"github.com/clinscribe/transcript-correction/backend/internal/adapters/ner"
	"github.com/clinscribe/transcript-correction/backend/internal/adapters/oracle"
	"github.com/clinscribe/transcript-correction/backend/internal/adapters/sink"
	"github.com/clinscribe/transcript-correction/backend/internal/api/handlers"
	"github.com/clinscribe/transcript-correction/backend/internal/api/routes"
	"github.com/clinscribe/transcript-correction/backend/internal/application/services"
	"github.com/clinscribe/transcript-correction/backend/internal/correction"
	"github.com/clinscribe/transcript-correction/backend/internal/domain/providers"
	"github.com/clinscribe/transcript-correction/backend/internal/domain/repositories"
	"github.com/clinscribe/transcript-correction/backend/internal/infrastructure/clients/postgres"
	"github.com/clinscribe/transcript-correction/backend/internal/infrastructure/clients/redis"
	"github.com/clinscribe/transcript-correction/backend/internal/infrastructure/observability"
	"github.com/clinscribe/transcript-correction/backend/pkg/config"
)

func main() {

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize the dictionary source
	var dictRepo repositories.DictionaryRepository
	switch cfg.Dictionary.Source {
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
		}
		defer pgClient.Close()
		dictRepo = dictionary.NewPostgresAdapter(pgClient, cfg.Dictionary.Table)
	default:
		dictRepo = dictionary.NewCSVAdapter(cfg.Dictionary.CSVPath)
	}

	dict, err := dictRepo.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load correction dictionary: %v", err)
	}

	// Initialize Redis client for the unknown-word sink
	var unknownSink providers.UnknownWordSink
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		unknownSink = sink.NewFileSink(cfg.Corrector.UnknownWordsPath)
		log.Println("Unknown words will be recorded to file")
	} else {
		defer redisClient.Close()
		unknownSink = sink.NewRedisSink(redisClient, cfg.Corrector.UnknownWordsKey)
		log.Println("Redis client initialized successfully")
	}

	// Load vocabulary oracles
	englishWords, err := oracle.FromFile(cfg.Corrector.EnglishWordsPath)
	if err != nil {
		log.Fatalf("Failed to load English wordlist: %v", err)
	}
	stopwords, err := oracle.FromFile(cfg.Corrector.StopwordsPath)
	if err != nil {
		log.Fatalf("Failed to load stopword list: %v", err)
	}

	// Initialize the entity extractor
	var extractor providers.EntityExtractor
	switch cfg.NER.Provider {
	case "http":
		if cfg.NER.URL == "" {
			log.Println("Warning: NER_URL is not set; using mock entity extractor")
			extractor = ner.NewMockProvider()
		} else {
			extractor = ner.NewHTTPProvider(cfg.NER.URL)
		}
	default:
		extractor = ner.NewMockProvider()
	}

	// Initialize services
	corrector := correction.NewCorrector(
		dict,
		englishWords,
		stopwords,
		unknownSink,
		cfg.Corrector.Threshold,
	)
	correctionService := services.NewCorrectionService(corrector, extractor)

	// Initialize handlers
	correctionHandler := handlers.NewCorrectionHandler(correctionService)

	// Set up router
	router := routes.NewRouter(correctionHandler, metrics)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
