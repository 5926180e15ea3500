package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/fiskaldesk/belegwerk/gen/proto/belegwerk/v1"
	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/export"
	"github.com/fiskaldesk/belegwerk/internal/pipeline"
	"github.com/fiskaldesk/belegwerk/internal/recognition"
	repo "github.com/fiskaldesk/belegwerk/internal/repository"
	svc "github.com/fiskaldesk/belegwerk/internal/server"
	"github.com/fiskaldesk/belegwerk/internal/vatlookup"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	companyRepo := repo.NewCompanyRepository(entc, logger)
	recordRepo := repo.NewRecordRepository(entc, logger)
	patternStore := repo.NewVendorPatternStore(entc, logger)

	provider := providerByName(cfg.Recognition.ProviderName, logger)

	var vat vatlookup.Validator
	if cfg.VATLookup.BaseURL != "" {
		vat = vatlookup.NewHTTPValidator(cfg.VATLookup.BaseURL, cfg.VATLookup.Timeout, logger)
	}

	orchestrator := pipeline.NewOrchestrator(logger, provider, cfg.Recognition.Timeout, patternStore, vat)

	companyService := svc.NewCompanyService(companyRepo, logger)
	v1.RegisterCompanyServiceServer(grpcServer, companyService)
	extractionService := svc.NewExtractionService(orchestrator, companyRepo, recordRepo, logger)
	v1.RegisterExtractionServiceServer(grpcServer, extractionService)
	exportService := svc.NewExportService(export.NewService(recordRepo, logger), logger)
	v1.RegisterExportServiceServer(grpcServer, exportService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("belegd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}

// providerByName selects the recognition boundary; unknown names fall back
// to the plaintext provider so a misconfigured daemon still serves text
// documents instead of refusing to start.
func providerByName(name string, logger *slog.Logger) recognition.Provider {
	switch name {
	case "", "stub", "plaintext":
		return recognition.PlainTextProvider{}
	default:
		logger.Warn("unknown recognition provider, using plaintext", "provider", name)
		return recognition.PlainTextProvider{}
	}
}
