package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/assembleally/client/internal/client/api"
	"github.com/assembleally/client/internal/client/auth"
	"github.com/assembleally/client/internal/client/cli"
	"github.com/assembleally/client/internal/client/messaging"
	"github.com/assembleally/client/internal/client/storage/boltdb"
	"github.com/assembleally/client/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги, перекрывают переменные окружения
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "API base URL")
	dbPath := flag.String("db", "", "Path to local session database")
	pollInterval := flag.Duration("poll-interval", 0, "Conversation poll interval")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			cfg.ServerURL = *serverURL
		case "db":
			cfg.DBPath = *dbPath
		case "poll-interval":
			cfg.PollInterval = *pollInterval
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	cfg.Normalize()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		return 1
	}
	command := args[0]

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL, boltStorage, logger)
	apiClient.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Please run 'assembleally login' again.")
	})

	authService := auth.NewService(apiClient, boltStorage)
	poller := messaging.NewPoller(apiClient, cfg.PollInterval, logger)

	app := cli.New(apiClient, authService, poller, boltStorage)
	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger настраивает zerolog с консольным выводом в stderr
func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger(), nil
}

func printVersion() {
	fmt.Println("AssembleAlly Client")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
