package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 2 * time.Second

type Sentry struct {
	dsn         string
	environment string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("AUTORELEASE_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("AUTORELEASE_SENTRY_ENV"),
		},
	}
}

func (x *Sentry) Enabled() bool {
	return x.dsn != ""
}

// Configure initializes the Sentry client. The returned function flushes
// pending events and must be called before the process exits.
func (x *Sentry) Configure(ctx context.Context) (func(), error) {
	if !x.Enabled() {
		logging.From(ctx).Debug("sentry is not configured")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              x.dsn,
		Environment:      x.environment,
		AttachStacktrace: true,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() {
		if !sentry.Flush(sentryFlushTimeout) {
			logging.From(ctx).Warn("failed to flush sentry events", slog.Duration("timeout", sentryFlushTimeout))
		}
	}, nil
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", x.Enabled()),
		slog.String("environment", x.environment),
	)
}
