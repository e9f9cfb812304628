package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Probe struct {
	attempts int64
	interval time.Duration
	timeout  time.Duration
}

func (x *Probe) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "probe-attempts",
			Usage:       "Number of attempts to get commit status",
			Category:    "Probe",
			Value:       model.DefaultProbeAttempts,
			Destination: &x.attempts,
			Sources:     cli.EnvVars("AUTORELEASE_PROBE_ATTEMPTS"),
		},
		&cli.DurationFlag{
			Name:        "probe-interval",
			Usage:       "Wait between attempts to get commit status",
			Category:    "Probe",
			Value:       model.DefaultProbeInterval,
			Destination: &x.interval,
			Sources:     cli.EnvVars("AUTORELEASE_PROBE_INTERVAL"),
		},
		&cli.DurationFlag{
			Name:        "probe-timeout",
			Usage:       "Timeout of each attempt to get commit status",
			Category:    "Probe",
			Value:       model.DefaultProbeTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("AUTORELEASE_PROBE_TIMEOUT"),
		},
	}
}

func (x *Probe) RetryPolicy() model.RetryPolicy {
	return model.RetryPolicy{
		MaxAttempts: int(x.attempts),
		Interval:    x.interval,
		Timeout:     x.timeout,
	}
}

func (x *Probe) LogValue() slog.Value {
	return x.RetryPolicy().LogValue()
}
