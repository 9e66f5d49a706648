// Command mergebot watches a single pull request and merges it once it is
// mergeable with passing checks.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	githubadapter "github.com/dessaya/mergebot/internal/adapter/driven/github"
	"github.com/dessaya/mergebot/internal/adapter/driven/notify"
	"github.com/dessaya/mergebot/internal/application"
	"github.com/dessaya/mergebot/internal/config"
	"github.com/dessaya/mergebot/internal/domain/model"
	"github.com/dessaya/mergebot/internal/domain/port/driven"
	"github.com/dessaya/mergebot/internal/ui"
)

// CLI defines the command-line surface: one positional PR URL plus a few
// overrides for config file values.
type CLI struct {
	URL         string         `arg:"" name:"url" help:"Pull request URL, e.g. https://github.com/owner/repo/pull/1234"`
	Interval    *time.Duration `help:"Poll interval (overrides config file and MERGEBOT_POLL_INTERVAL)."`
	MergeMethod string         `help:"Merge method: squash, merge or rebase." enum:",squash,merge,rebase" default:""`
	NoNotify    bool           `help:"Disable desktop notifications."`
	Debug       bool           `short:"d" help:"Enable debug output."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("mergebot"),
		kong.Description("Poll a pull request and merge it once it is mergeable with passing checks."),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	reporter := ui.NewReporter(os.Stdout, cli.Debug)
	setupLogging(cli.Debug)

	ref, err := model.ParsePRURL(cli.URL)
	if err != nil {
		return fmt.Errorf("%w\n    example: mergebot https://github.com/owner/repo/pull/1234", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, cli); err != nil {
		return err
	}

	if cfg.Token == "" {
		return fmt.Errorf("GITHUB_ACCESS_TOKEN environment variable missing.\n"+
			"Create your Personal Access Token (with permissions [read:user,repo]) at https://%s/settings/tokens\n"+
			"Then: GITHUB_ACCESS_TOKEN=\"...\" mergebot %s", ref.Host, ref)
	}

	ghClient, err := githubadapter.NewClient(cfg.Token, ref)
	if err != nil {
		return err
	}

	var notifier driven.Notifier = notify.NewDesktop()
	if !cfg.Notify {
		notifier = notify.NewNop()
	}

	svc := application.NewMergeService(ghClient, notifier, reporter, ref, cfg.PollInterval, cfg.MergeMethod)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("mergebot started",
		"pr", ref.String(),
		"poll_interval", cfg.PollInterval,
		"merge_method", string(cfg.MergeMethod),
	)

	if err := svc.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			reporter.Info("Interrupted. Mergebot out.")
			return nil
		}
		return err
	}
	return nil
}

// applyFlags overlays CLI flags onto the resolved config. Flags win over
// both the config file and environment variables.
func applyFlags(cfg *config.Config, cli *CLI) error {
	if cli.Interval != nil {
		if *cli.Interval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", *cli.Interval)
		}
		cfg.PollInterval = *cli.Interval
	}
	if cli.MergeMethod != "" {
		cfg.MergeMethod = model.MergeMethod(cli.MergeMethod)
	}
	if cli.NoNotify {
		cfg.Notify = false
	}
	return nil
}

// setupLogging routes slog to stderr so structured diagnostics never mix
// with the user-facing report on stdout.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
