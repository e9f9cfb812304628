package model

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultProbeAttempts = 3
	DefaultProbeInterval = time.Second
	DefaultProbeTimeout  = 5 * time.Second
)

// RetryPolicy bounds calls to the commit status API. Interval is a fixed
// delay between attempts and Timeout applies to each attempt.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
	Timeout     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultProbeAttempts,
		Interval:    DefaultProbeInterval,
		Timeout:     DefaultProbeTimeout,
	}
}

func (x RetryPolicy) Validate() error {
	if x.MaxAttempts < 1 {
		return goerr.Wrap(types.ErrInvalidOption, "max attempts must be positive", goerr.V("max_attempts", x.MaxAttempts))
	}
	if x.Interval < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "retry interval must not be negative", goerr.V("interval", x.Interval))
	}
	if x.Timeout <= 0 {
		return goerr.Wrap(types.ErrInvalidOption, "timeout must be positive", goerr.V("timeout", x.Timeout))
	}
	return nil
}

func (x RetryPolicy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("max_attempts", x.MaxAttempts),
		slog.Duration("interval", x.Interval),
		slog.Duration("timeout", x.Timeout),
	)
}
