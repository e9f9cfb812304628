package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/autorelease/pkg/cli/config"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/infra"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	options []infra.Option
}

type Option func(*CLI)

// WithClients overrides clients built from flags, such as the notifier
func WithClients(options ...infra.Option) Option {
	return func(x *CLI) {
		x.options = append(x.options, options...)
	}
}

func New(options ...Option) *CLI {
	c := &CLI{}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		prepare    bool
		postStatus bool

		github    config.GitHub
		gitConfig config.Git
		probe     config.Probe
		ledger    config.Ledger
		sentry    config.Sentry
	)

	app := &cli.Command{
		Name:  "autorelease",
		Usage: "Select release candidates of release branches by CI status",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("AUTORELEASE_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("AUTORELEASE_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("AUTORELEASE_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
			&cli.BoolFlag{
				Name:        "prepare",
				Usage:       "Check open release pull requests and save release decisions",
				Destination: &prepare,
			},
			&cli.BoolFlag{
				Name:        "post-status",
				Usage:       "Notify release decisions saved by --prepare",
				Destination: &postStatus,
			},
		}, github.Flags(), gitConfig.Flags(), probe.Flags(), ledger.Flags(), sentry.Flags()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}

			runID, ctx := logging.CtxRunID(ctx)
			ctx = logging.With(ctx, logging.Default().With(slog.String("run_id", string(runID))))
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if prepare == postStatus {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one of --prepare or --post-status is required",
					goerr.V("prepare", prepare),
					goerr.V("post-status", postStatus),
				)
			}

			flush, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flush()

			store, err := ledger.NewStore(ctx)
			if err != nil {
				return err
			}

			logging.From(ctx).Debug("Starting autorelease",
				slog.Bool("prepare", prepare),
				slog.Any("github", github),
				slog.Any("git", &gitConfig),
				slog.Any("probe", &probe),
				slog.Any("ledger", &ledger),
				slog.Any("sentry", &sentry),
			)

			if prepare {
				return x.runPrepare(ctx, &github, &gitConfig, &probe, store)
			}
			return x.runPostStatus(ctx, store)
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
