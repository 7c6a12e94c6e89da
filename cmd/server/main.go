// Command server starts the résumé ingestion HTTP API server.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/joho/godotenv"

	"github.com/learnbot/resume-pipeline/internal/llmextract"
	"github.com/learnbot/resume-pipeline/internal/orchestrator"
	"github.com/learnbot/resume-pipeline/internal/pipeline"
	"github.com/learnbot/resume-pipeline/internal/store/blob"
	"github.com/learnbot/resume-pipeline/internal/store/postgres"
	"github.com/learnbot/resume-pipeline/internal/transport"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", ":8080", "HTTP server address")
	dbURL := flag.String("db", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	flag.Parse()

	logger := log.New(os.Stdout, "[resume-pipeline] ", log.LstdFlags|log.Lshortfile)

	if *dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable or -db flag is required")
	}

	db, err := sql.Open("postgres", *dbURL)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	logger.Println("connected to database")

	blobCtx, blobCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer blobCancel()
	blobStore, err := blob.New(blobCtx, blob.Config{
		AccessKey: os.Getenv("BLOB_ACCESS_KEY"),
		SecretKey: os.Getenv("BLOB_SECRET_KEY"),
		Region:    getEnv("BLOB_REGION", "us-east-1"),
		Endpoint:  os.Getenv("BLOB_ENDPOINT"),
		CDNDomain: os.Getenv("BLOB_CDN_DOMAIN"),
	})
	if err != nil {
		logger.Fatalf("failed to build object store client: %v", err)
	}

	metaStore := postgres.New(db)

	var llmAdapter *llmextract.Adapter
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		llmClient := llmextract.NewClient(apiKey, os.Getenv("ANTHROPIC_MODEL"))
		llmAdapter = llmextract.NewAdapter(llmClient)
	} else {
		logger.Println("ANTHROPIC_API_KEY not set, running without LLM fallback extraction")
	}

	orch := orchestrator.New(llmAdapter)
	pipe := pipeline.New(blobStore, metaStore, orch, func() int64 { return time.Now().UnixMilli() }, nil)

	handler := transport.NewHandler(pipe, blobStore, logger)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Printf("starting server on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	logger.Println("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("forced shutdown: %v", err)
	}

	logger.Println("server stopped")
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
