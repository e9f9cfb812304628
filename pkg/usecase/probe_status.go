package usecase

import (
	"context"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/utils/errutil"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ProbeStatus returns the combined CI state of sha. It never fails: when the
// status API does not answer within the retry policy, the state is
// types.CIStateUnknown so that the caller can go on with other branches.
func (x *UseCase) ProbeStatus(ctx context.Context, sha types.CommitSHA) types.CIState {
	logger := logging.From(ctx)
	policy := x.retryPolicy

	var (
		state    types.CIState
		attempts int
	)
	probe := func() error {
		attempts++
		callCtx, cancel := context.WithTimeout(ctx, policy.Timeout)
		defer cancel()

		s, err := x.clients.GitHub().GetCombinedStatus(callCtx, sha)
		if err != nil {
			logger.Warn("failed to get commit status",
				slog.String("sha", sha.String()),
				slog.Int("attempt", attempts),
				slog.Int("max_attempts", policy.MaxAttempts),
				slog.Any("error", err),
			)
			return err
		}
		state = s
		return nil
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(policy.Interval), uint64(max(policy.MaxAttempts-1, 0))),
		ctx,
	)
	if err := backoff.Retry(probe, b); err != nil {
		errutil.HandleError(ctx, "commit status is unavailable", goerr.Wrap(types.ErrProbeUnavailable, "gave up probing commit status",
			goerr.V("sha", sha),
			goerr.V("attempts", attempts),
			goerr.V("error", err.Error()),
		))
		return types.CIStateUnknown
	}

	logger.Debug("got commit status", slog.String("sha", sha.String()), slog.String("state", state.String()))
	return state
}
