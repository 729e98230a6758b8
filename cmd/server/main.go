package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"doccheck/internal/checklist"
	"doccheck/internal/checklist/catalog"
	checklistHandler "doccheck/internal/checklist/handler"
	checklistMetrics "doccheck/internal/checklist/metrics"
	"doccheck/internal/platform/config"
	"doccheck/internal/platform/httpserver"
	"doccheck/internal/platform/logger"
	platformMetrics "doccheck/internal/platform/metrics"
	httptransport "doccheck/internal/transport/http"
	auditpublisher "doccheck/pkg/platform/audit/publisher"
	auditmemory "doccheck/pkg/platform/audit/store/memory"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/checklist.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "doccheck server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	overlays, err := config.LoadOverlays(cfg.OverlaysFile)
	if err != nil {
		return err
	}

	var publisherOpts []auditpublisher.Option
	publisherOpts = append(publisherOpts, auditpublisher.WithLogger(log))
	if cfg.AuditBuffer > 0 {
		publisherOpts = append(publisherOpts, auditpublisher.WithAsyncBuffer(cfg.AuditBuffer))
	}
	publisher := auditpublisher.NewPublisher(
		auditmemory.NewInMemoryStore(auditmemory.WithCapacity(cfg.AuditCapacity)),
		publisherOpts...,
	)
	defer publisher.Close()

	engine := checklist.NewEngine(
		checklist.WithCatalog(catalog.Default()),
		checklist.WithOverlays(overlays),
	)
	service := checklist.NewService(engine,
		checklist.WithLogger(log),
		checklist.WithMetrics(checklistMetrics.New()),
		checklist.WithAuditPublisher(publisher),
		checklist.WithBatchLimit(cfg.BatchLimit),
	)

	router := httptransport.NewRouter(httptransport.Dependencies{
		Checklist: checklistHandler.New(service, log),
		Metrics:   platformMetrics.New(),
		Logger:    log,
	})

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting doccheck",
		"addr", cfg.Addr,
		"default_business_returns_years", overlays.DefaultBusinessReturnsYears,
		"require_condo_docs", overlays.RequireCondoDocs,
		"batch_limit", cfg.BatchLimit,
		"audit_capacity", cfg.AuditCapacity,
	)
	return httpserver.Serve(ctx, httpserver.New(cfg.Addr, router), ln, log)
}
