package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/SirJonasM/fpga-router/pkg/api"
	"github.com/SirJonasM/fpga-router/pkg/auth"
	"github.com/SirJonasM/fpga-router/pkg/export"
	"github.com/SirJonasM/fpga-router/pkg/history"
	"github.com/SirJonasM/fpga-router/pkg/metrics"
	"github.com/SirJonasM/fpga-router/pkg/router"
)

// runServe starts the HTTP control surface over a graph, wiring in
// JWT/API-key auth, S3 artifact export, and Postgres run history whenever
// their configuration is present in the environment, each optional
// independently of the others (§11).
func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", getEnvOrDefault("ROUTER_ADDR", ":8080"), "listen address")
	graphPath := fs.String("graph", "", "routing-resource graph file")
	solver := fs.String("solver", "independent_paths", "default solver: independent_paths | steiner | simple_steiner")
	histFactor := fs.Float64("hist-factor", 0.1, "default historic cost growth factor")
	presentFactor := fs.Float64("present-factor", 1.0, "default present cost scale factor")
	maxIterations := fs.Int("max-iterations", 2000, "default iteration cap")
	fs.Parse(args)

	if *graphPath == "" {
		fmt.Fprintln(os.Stderr, "usage: router serve -graph <file> [-addr :8080] [options]")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	g, err := loadGraph(*graphPath)
	if err != nil {
		logger.Error("failed to load graph", "error", err)
		os.Exit(1)
	}
	logger.Info("graph loaded", "nodes", g.NumNodes())

	cfg := router.Config{
		Solver:        *solver,
		HistFactor:    *histFactor,
		PresentFactor: *presentFactor,
		MaxIterations: *maxIterations,
	}

	jwtManager := buildJWTManager(logger)
	apiKeyChecker := buildAPIKeyChecker()

	server := api.NewServer(g, cfg, jwtManager, apiKeyChecker, metrics.DefaultRegistry())

	if uploader := buildUploader(logger); uploader != nil {
		server.SetUploader(uploader)
	}
	if store := buildHistoryStore(logger); store != nil {
		defer store.Close()
		server.SetHistoryStore(store)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		os.Exit(0)
	}()

	logger.Info("server starting", "addr", *addr)
	if err := server.Start(*addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// buildJWTManager wires ROUTER_JWT_SECRET into a JWTManager when configured;
// with no secret set, the server's requireAuth middleware treats every
// caller as authenticated, the expected shape for local invocations.
func buildJWTManager(logger *slog.Logger) *auth.JWTManager {
	secret := os.Getenv("ROUTER_JWT_SECRET")
	if secret == "" {
		return nil
	}
	m, err := auth.NewJWTManager(secret, 24*time.Hour)
	if err != nil {
		logger.Warn("ROUTER_JWT_SECRET rejected, JWT auth disabled", "error", err)
		return nil
	}
	return m
}

// buildAPIKeyChecker wires ROUTER_API_KEY_HMAC_SECRET and ROUTER_API_KEY
// into a StaticAPIKeyChecker; both must be set to enable API-key auth.
func buildAPIKeyChecker() *auth.StaticAPIKeyChecker {
	hmacSecret := os.Getenv("ROUTER_API_KEY_HMAC_SECRET")
	key := os.Getenv("ROUTER_API_KEY")
	if hmacSecret == "" || key == "" {
		return nil
	}
	return auth.NewStaticAPIKeyChecker(hmacSecret, key)
}

// buildUploader wires ROUTER_S3_BUCKET into an export.Uploader, using static
// credentials when ROUTER_S3_ACCESS_KEY and ROUTER_S3_SECRET_KEY are both set
// and the default AWS credential chain otherwise.
func buildUploader(logger *slog.Logger) *export.Uploader {
	bucket := os.Getenv("ROUTER_S3_BUCKET")
	if bucket == "" {
		return nil
	}
	opts := []func(*awsconfig.LoadOptions) error{}
	if accessKey, secretKey := os.Getenv("ROUTER_S3_ACCESS_KEY"), os.Getenv("ROUTER_S3_SECRET_KEY"); accessKey != "" && secretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		logger.Warn("ROUTER_S3_BUCKET set but AWS config failed to load, export disabled", "error", err)
		return nil
	}
	return export.New(s3.NewFromConfig(awsCfg), bucket)
}

// buildHistoryStore wires ROUTER_HISTORY_DATABASE_URL into a Postgres-backed
// history.Store.
func buildHistoryStore(logger *slog.Logger) *history.Store {
	databaseURL := os.Getenv("ROUTER_HISTORY_DATABASE_URL")
	if databaseURL == "" {
		return nil
	}
	store, err := history.Open(context.Background(), databaseURL)
	if err != nil {
		logger.Warn("ROUTER_HISTORY_DATABASE_URL set but connection failed, history disabled", "error", err)
		return nil
	}
	return store
}
