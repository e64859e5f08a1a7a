package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/potalake/potalake/internal/aggregate"
	"github.com/potalake/potalake/internal/api"
	"github.com/potalake/potalake/internal/collect"
	"github.com/potalake/potalake/internal/config"
	"github.com/potalake/potalake/internal/geo"
	"github.com/potalake/potalake/internal/manifest"
	"github.com/potalake/potalake/internal/metrics"
	"github.com/potalake/potalake/internal/objstore"
	"github.com/potalake/potalake/internal/pota"
	"github.com/potalake/potalake/internal/scheduler"
	"github.com/potalake/potalake/internal/spots"
	"github.com/potalake/potalake/internal/summary"
)

var version = "dev"

func main() {
	startTime := time.Now()

	envFile := flag.String("env-file", "", "path to .env file (default .env)")
	addr := flag.String("addr", "", "HTTP listen address (overrides HTTP_ADDR)")
	logLevel := flag.String("log-level", "", "log level (overrides LOG_LEVEL)")
	jobName := flag.String("job", "", "run one job and exit: collect, aggregate-hour, aggregate-day, aggregate-month, summarize")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("potalake " + version)
		return
	}

	// Config
	cfg, err := config.Load(config.Overrides{
		EnvFile:  *envFile,
		HTTPAddr: *addr,
		LogLevel: *logLevel,
	})
	if err != nil {
		early := zerolog.New(os.Stderr).With().Timestamp().Logger()
		early.Fatal().Err(err).Msg("failed to load config")
	}

	// Logger
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
	log.Info().Str("version", version).Msg("potalake starting")

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Object store
	store, err := objstore.NewS3Store(ctx, objstore.S3Options{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Prefix:    cfg.S3Prefix,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create object store")
	}
	if err := store.HeadBucket(ctx); err != nil {
		log.Fatal().Err(err).Str("bucket", cfg.S3Bucket).Msg("bucket unreachable")
	}

	// Upstream client
	client := pota.NewClient(cfg.UpstreamURL, cfg.FetchTimeout)
	ua := cfg.UserAgent
	if ua == "" {
		ua = fmt.Sprintf("potalake/%s (+https://github.com/potalake/potalake)", version)
	}
	client.SetUserAgent(ua)

	// Pipeline components
	collector := collect.New(client, store, spots.NewNormalizer(geo.NewLookup()), log)
	publisher := manifest.NewPublisher(store, log)
	aggregator := aggregate.New(aggregate.Options{
		Store:           store,
		Manifest:        publisher,
		ReadConcurrency: cfg.ReadConcurrency,
		HourlyMax:       cfg.ManifestHourlyMax,
		DailyMax:        cfg.ManifestDailyMax,
		MonthlyMax:      cfg.ManifestMonthlyMax,
	}, log)
	builder := summary.New(summary.Options{
		Store:           store,
		ReadConcurrency: cfg.ReadConcurrency,
	}, log)

	// Jobs
	runner := scheduler.NewRunner(cfg.JobTimeout, log)
	runner.Register(scheduler.JobCollect, func(ctx context.Context) error {
		_, err := collector.Run(ctx)
		return err
	})
	runner.Register(scheduler.JobAggregateHour, func(ctx context.Context) error {
		_, err := aggregator.AggregateHour(ctx, scheduler.TargetTime(scheduler.JobAggregateHour, time.Now()))
		return err
	})
	runner.Register(scheduler.JobAggregateDay, func(ctx context.Context) error {
		_, err := aggregator.AggregateDay(ctx, scheduler.TargetTime(scheduler.JobAggregateDay, time.Now()))
		return err
	})
	runner.Register(scheduler.JobAggregateMonth, func(ctx context.Context) error {
		_, err := aggregator.AggregateMonth(ctx, scheduler.TargetTime(scheduler.JobAggregateMonth, time.Now()))
		return err
	})
	runner.Register(scheduler.JobSummarize, func(ctx context.Context) error {
		_, err := builder.Run(ctx)
		return err
	})

	// One-shot mode
	if *jobName != "" {
		job, ok := scheduler.JobFromName(*jobName)
		if !ok {
			log.Fatal().Str("job", *jobName).Msg("unknown job")
		}
		if err := runner.Run(ctx, job); err != nil {
			log.Fatal().Err(err).Str("job", job.String()).Msg("job failed")
		}
		return
	}

	// Scheduler mode
	prometheus.MustRegister(metrics.NewCollector(runner))

	sched, err := scheduler.Start(runner, scheduler.Schedule{
		Collect:   cfg.ScheduleCollect,
		Hourly:    cfg.ScheduleHourly,
		Daily:     cfg.ScheduleDaily,
		Monthly:   cfg.ScheduleMonthly,
		Summarize: cfg.ScheduleSummarize,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}

	// HTTP Server
	httpLog := log.With().Str("component", "http").Logger()
	srv := api.NewServer(cfg, version, startTime, httpLog)

	// Start HTTP server in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("http server error")
		}
	}

	// Graceful shutdown with 10s timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := sched.Shutdown(); err != nil {
		log.Error().Err(err).Msg("scheduler shutdown error")
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	log.Info().Msg("potalake stopped")
}
