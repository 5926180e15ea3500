// Package recognition defines the boundary to the upstream OCR/text
// recognition engine. How pixels become text is the provider's business;
// this package only guarantees that a provider failure degrades into an
// empty, zero-confidence result instead of propagating as a crash.
package recognition

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

// Result is what a provider returns for one document.
type Result struct {
	Text       string
	Blocks     []entity.TextBlock
	Confidence float64 // 0..100
}

// Provider turns raw file bytes into recognized text.
type Provider interface {
	Name() string
	Recognize(ctx context.Context, data []byte, mimeType string) (Result, error)
}

// Run calls the provider under a bounded timeout and converts any failure
// into a degraded empty-text result. The error is returned alongside for
// diagnostics; callers continue with the degraded result either way.
func Run(ctx context.Context, p Provider, data []byte, mimeType string, timeout time.Duration, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := p.Recognize(ctx, data, mimeType)
	if err != nil {
		err = fmt.Errorf("%w: %w", common.ErrRecognition, err)
		logger.Warn("recognition.failed", "provider", p.Name(), "err", err)
		return Result{}, err
	}
	return res, nil
}

// PlainTextProvider treats the input bytes as already-recognized UTF-8 text.
// It serves the CLI (re-running extraction over stored OCR dumps) and tests.
type PlainTextProvider struct {
	// ReportedConfidence is handed through as the OCR confidence; zero
	// means "unavailable" and lets the pipeline apply its default.
	ReportedConfidence float64
}

func (p PlainTextProvider) Name() string { return "plaintext" }

func (p PlainTextProvider) Recognize(_ context.Context, data []byte, _ string) (Result, error) {
	return Result{Text: string(data), Confidence: p.ReportedConfidence}, nil
}
