package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/jromarion/arc-classifier/gen/proto/arc/v1"
	"github.com/jromarion/arc-classifier/internal/classifier"
	"github.com/jromarion/arc-classifier/internal/common"
	"github.com/jromarion/arc-classifier/internal/export"
	"github.com/jromarion/arc-classifier/internal/ingest"
	"github.com/jromarion/arc-classifier/internal/ocr"
	processor "github.com/jromarion/arc-classifier/internal/pipeline"
	"github.com/jromarion/arc-classifier/internal/repository"
	"github.com/jromarion/arc-classifier/internal/server"
	"github.com/jromarion/arc-classifier/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := newLogger()
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database
	entClient, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entClient, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	// OCR engine
	backend, err := ocr.NewTesseractBackend(cfg.OCR.Language, cfg.OCR.TessdataDir)
	if err != nil {
		logger.Error("ocr engine unavailable", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
		MaxChars:    cfg.OCR.MaxChars,
	}, backend, logger)

	// Pipeline
	archive, err := storage.NewArchive(cfg.Storage.ArchiveDir, logger)
	if err != nil {
		logger.Error("archive unavailable", "error", err)
		os.Exit(1)
	}
	docs := repository.NewDocumentRepository(entClient, logger)
	sequences := repository.NewSequenceRepository(entClient, logger)
	cls := classifier.New(cfg.Classifier, logger)
	proc := processor.NewProcessor(logger, docs, archive,
		processor.NewOCRStage(docs, extractor, logger),
		processor.NewClassifyStage(docs, cls, cfg.Classifier.RoutingThreshold, logger))

	// Drop-folder ingestion, if configured
	if len(cfg.Storage.WatchRoots) > 0 {
		drop := ingest.NewDropFolder(proc, cfg.Storage.WatchRoots, "", logger)
		go func() {
			if err := drop.Run(ctx, ingest.WatchConfig{InitialScan: true}); err != nil && ctx.Err() == nil {
				logger.Error("drop folder ingestion stopped", "error", err)
			}
		}()
	}

	// gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.RequestIDInterceptor(logger)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	exporter := export.NewService(docs, logger)
	svc := server.NewDocumentService(proc, docs, sequences, archive, exporter, int(cfg.Server.MaxUploadMB), logger)
	v1.RegisterDocumentServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
