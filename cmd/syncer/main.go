package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"board_syncer/internal/config"
	"board_syncer/internal/display"
	"board_syncer/internal/publisher"
	"board_syncer/internal/scheduler"
	"board_syncer/internal/service"
	"board_syncer/internal/source/board"
	"board_syncer/internal/storage/postgres"
)

var version = "dev"

type Options struct {
	Config   string `short:"c" long:"config" description:"Path to config file" default:"config.yaml"`
	LogLevel string `short:"l" long:"log-level" description:"Log level: debug|info|warn|error, overrides the config file"`
	Once     bool   `long:"once" description:"Bootstrap, run a single sync cycle and exit"`
	Version  bool   `short:"v" long:"version" description:"Show version information"`
}

// ParseCLI parses command-line arguments, without the program name.
func ParseCLI(args []string) (*Options, error) {
	opts := new(Options)
	parser := flags.NewParser(opts, flags.HelpFlag)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return opts, err
	}
	if len(rest) > 0 {
		return opts, fmt.Errorf("unknown argument(s): %v", rest)
	}
	return opts, nil
}

func main() {
	opts, err := ParseCLI(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if opts.Version {
		fmt.Printf("board_syncer version %s\n", version)
		return
	}

	logger := setupLogger("info")

	cfg, err := config.Load(opts.Config)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	logger = setupLogger(cfg.LogLevel)

	var listeners []service.AppendListener

	if cfg.Database.Enabled {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		logger.Info("connected to database")

		listeners = append(listeners, postgres.NewArchive(db, logger))
	}

	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:          cfg.RabbitMQ.URL,
			Exchange:     cfg.RabbitMQ.Exchange,
			RoutingKey:   cfg.RabbitMQ.RoutingKey,
			QueueName:    cfg.RabbitMQ.QueueName,
			AuthorPrefix: cfg.Sync.AuthorPrefix,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()

		listeners = append(listeners, rabbitMQ)
	}

	boardSource := board.New(board.Config{
		Name:           cfg.Board.Name,
		BaseURL:        cfg.Board.BaseURL,
		BatchSize:      cfg.Board.BatchSize,
		Timeout:        cfg.Board.Timeout,
		UserAgent:      cfg.Board.UserAgent,
		MaxAttempts:    cfg.Board.Retry.MaxAttempts,
		InitialBackoff: cfg.Board.Retry.InitialBackoff,
		MaxBackoff:     cfg.Board.Retry.MaxBackoff,
		JitterPercent:  cfg.Board.Retry.JitterPercent,
	}, logger)

	engine := service.NewEngine(
		boardSource,
		display.NewBoard(os.Stdout, logger),
		display.NewFormatter(cfg.Sync.AuthorPrefix),
		display.NewComposer(),
		service.NewLogReporter(logger),
		logger,
		cfg.Sync,
		listeners...,
	)

	sched := scheduler.NewScheduler(engine, cfg.Sync.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting board syncer",
		"board", boardSource.ID(),
		"base_url", cfg.Board.BaseURL,
		"interval", cfg.Sync.Interval,
		"listeners", len(listeners),
	)

	if opts.Once {
		if err := sched.RunOnce(ctx); err != nil {
			logger.Error("sync failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	// stdout carries the board itself
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
