package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/fiskaldesk/belegwerk/internal/config"
	"github.com/fiskaldesk/belegwerk/internal/pipeline"
	"github.com/fiskaldesk/belegwerk/internal/recognition"
	repo "github.com/fiskaldesk/belegwerk/internal/repository"
	"github.com/fiskaldesk/belegwerk/internal/vendors"
)

// belegctl runs the extraction pipeline over a single text document and
// prints the result as JSON. Supplier matching runs against an in-memory
// store by default; set SQLITE_DB to a file path to keep learned patterns
// across invocations.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "belegctl <document.txt>")
		os.Exit(2)
	}
	path := os.Args[1]
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read document", "path", path, "error", err)
		os.Exit(1)
	}

	settings := config.DefaultSettings()
	if sf := os.Getenv("SETTINGS_FILE"); sf != "" {
		raw, err := os.ReadFile(sf)
		if err != nil {
			logger.Error("read settings", "path", sf, "error", err)
			os.Exit(1)
		}
		settings, err = config.ParseSettings(raw)
		if err != nil {
			logger.Error("invalid settings", "path", sf, "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var store vendors.Store = vendors.NewMemoryStore()
	if db := os.Getenv("SQLITE_DB"); db != "" {
		entc, err := repo.OpenSQLite(db, logger)
		if err != nil {
			logger.Error("open sqlite", "path", db, "error", err)
			os.Exit(1)
		}
		defer entc.Close()
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("migrate sqlite", "path", db, "error", err)
			os.Exit(1)
		}
		store = repo.NewVendorPatternStore(entc, logger)
	}

	orchestrator := pipeline.NewOrchestrator(logger, recognition.PlainTextProvider{}, 30*time.Second, store, nil)

	start := time.Now()
	res := orchestrator.Extract(ctx, pipeline.Request{
		FileBytes: content,
		FileName:  filepath.Base(path),
		MimeType:  "text/plain",
		CompanyID: uuid.New(),
		Settings:  settings,
	})
	dur := time.Since(start)

	if !res.Success {
		logger.Error("extraction failed",
			"issues", len(res.Validation.Issues), "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
