package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	configloader "github.com/reviewstream/reviewnotes/external/config"
	githostimpl "github.com/reviewstream/reviewnotes/external/githost"
	mailimpl "github.com/reviewstream/reviewnotes/external/mail"
	storeimpl "github.com/reviewstream/reviewnotes/external/store"
	videohostimpl "github.com/reviewstream/reviewnotes/external/videohost"
	"github.com/reviewstream/reviewnotes/internal/config"
	"github.com/reviewstream/reviewnotes/internal/notes"
	"github.com/reviewstream/reviewnotes/internal/summary"
	"github.com/samber/do/v2"
)

func main() {
	var (
		dateArg      = flag.String("date", "", "review date to publish, YYYY-MM-DD (default: today)")
		backfillFrom = flag.String("backfill-from", "", "publish every recorded review date from this date on, YYYY-MM-DD")
		skipVideo    = flag.Bool("skip-video", false, "do not update the video description")
		skipComments = flag.Bool("skip-comments", false, "do not annotate feedback comments")
		skipCommit   = flag.Bool("skip-commit", false, "do not commit the notes file")
		skipEmail    = flag.Bool("skip-email", false, "do not send the notes email")
	)
	flag.Parse()

	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	runner, err := do.Invoke[*notes.Runner](injector)
	if err != nil {
		slog.Error("failed to resolve runner", "error", err)
		os.Exit(1)
	}

	opts := summary.Options{
		UpdateVideo:    !*skipVideo,
		UpdateComments: !*skipComments,
		CommitNotes:    !*skipCommit,
		SendEmail:      !*skipEmail,
	}

	ctx := context.Background()
	if *backfillFrom != "" {
		from := mustParseDate(*backfillFrom, cfg)
		if err := runner.Backfill(ctx, from, opts); err != nil {
			slog.Error("backfill failed", "error", err)
			os.Exit(1)
		}
		return
	}

	date := time.Now().In(cfg.Location())
	if *dateArg != "" {
		date = mustParseDate(*dateArg, cfg)
	}

	s, report, err := runner.RunDate(ctx, date, opts)
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
	slog.Info("run complete",
		"date", s.Date.Format(time.DateOnly),
		"entries", len(s.Entries),
		"comments_updated", report.CommentsUpdated,
		"commit_created", report.CommitCreated)
	if err := report.Err(); err != nil {
		slog.Error("publish incomplete", "error", err)
		os.Exit(1)
	}
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func mustParseDate(s string, cfg *config.Config) time.Time {
	d, err := time.ParseInLocation(time.DateOnly, s, cfg.Location())
	if err != nil {
		slog.Error("invalid date", "value", s, "error", err)
		os.Exit(1)
	}
	return d
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	githostimpl.RegisterDI(injector)
	videohostimpl.RegisterDI(injector)
	mailimpl.RegisterDI(injector)
	storeimpl.RegisterDI(injector)
	summary.RegisterDI(injector)
	notes.RegisterDI(injector)

	return injector
}
