package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	charmlog "charm.land/log/v2"
	kitlog "github.com/go-kit/log"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/taemindang/taemindang/config"
	"github.com/taemindang/taemindang/id"
	taemindangminio "github.com/taemindang/taemindang/minio"
	"github.com/taemindang/taemindang/postgres"
	"github.com/taemindang/taemindang/postgres/migrator"
	"github.com/taemindang/taemindang/pubsub"
	"github.com/taemindang/taemindang/service"
	httptransport "github.com/taemindang/taemindang/transport/http"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 0 && args[0] == "token" {
		return issueToken(args[1:])
	}

	errLogger := slog.New(charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
	}))
	infoLogger := slog.New(charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
	}))

	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open postgres connection pool: %w", err)
	}

	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}

	migrationStart := time.Now()
	infoLogger.Info("starting postgres migrations")

	applied, err := migrator.Migrate(ctx, dbPool, postgres.MigrationsFS)
	if err != nil {
		return fmt.Errorf("migrate postgres schema: %w", err)
	}

	infoLogger.Info("finished postgres migrations", "applied", len(applied), "took", time.Since(migrationStart))

	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return fmt.Errorf("create minio client: %w", err)
	}

	images := taemindangminio.New(context.Background(), minioClient, cfg.CleanupTimeout)
	go func() {
		for err := range images.Errs() {
			errLogger.Error("minio error", "error", err)
		}
	}()

	bucketsStart := time.Now()
	infoLogger.Info("creating minio buckets")

	if err := images.EnsurePublicBucket(ctx, service.ChatImagesBucket); err != nil {
		return fmt.Errorf("create minio bucket: %w", err)
	}

	infoLogger.Info("finished creating minio buckets", "took", time.Since(bucketsStart))

	svcCfg := &service.Config{
		Store:             postgres.New(dbPool),
		Images:            images,
		TokenKey:          cfg.TokenKey,
		AssetsURLPrefix:   cfg.AssetsURLPrefix,
		MediaURLPrefix:    cfg.MediaURLPrefix,
		SellerCacheSize:   cfg.SellerCacheSize,
		SellerCacheTTL:    cfg.SellerCacheTTL,
		BaseCtx:           context.Background(),
		BackgroundTimeout: cfg.BackgroundTimeout,
	}

	if cfg.NATSURL != "" {
		natsErrs := make(chan error, 1)
		conn, err := pubsub.Connect(cfg.NATSURL, natsErrs)
		if err != nil {
			return err
		}

		go func() {
			for err := range natsErrs {
				errLogger.Error("nats error", "error", err)
			}
		}()

		publisher := pubsub.New(conn)
		defer func() {
			if err := publisher.Close(); err != nil {
				errLogger.Error("close nats", "error", err)
			}
		}()

		svcCfg.Publisher = publisher
		svcCfg.Subscriber = publisher
		infoLogger.Info("publishing chat events", "nats_url", cfg.NATSURL)
	}

	svc := service.New(svcCfg)
	svcErrsDone := make(chan struct{})
	go func() {
		defer close(svcErrsDone)
		for err := range svc.Errs() {
			errLogger.Error("service error", "error", err)
		}
	}()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "component", "http")

	streamsCtx, endStreams := context.WithCancel(context.Background())
	defer endStreams()

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: httptransport.New(httptransport.Config{
			Service:        svc,
			Logger:         logger,
			Production:     cfg.Production,
			AllowedOrigins: strings.Fields(cfg.CORSOrigins),
			StreamsCtx:     streamsCtx,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(endStreams)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		infoLogger.Info("starting taemindang server", "url", fmt.Sprintf("http://localhost:%d", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start taemindang server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		infoLogger.Info("shutting down taemindang server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown taemindang server: %w", err)
		}
		return nil
	})

	err = g.Wait()

	_ = svc.Close()
	<-svcErrsDone

	return err
}

// issueToken prints a bearer token for a member id. Handy for local testing
// since login lives in another service.
func issueToken(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: taemindang token <member-id>")
	}

	memberID, ok := id.Parse(args[0])
	if !ok {
		return fmt.Errorf("invalid member id %q", args[0])
	}

	cfg, err := config.Load(nil)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	svc := service.New(&service.Config{TokenKey: cfg.TokenKey})
	defer svc.Close()

	out, err := svc.IssueToken(memberID)
	if err != nil {
		return err
	}

	fmt.Println(out.Token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", out.ExpiresAt.Format(time.RFC3339))
	return nil
}
