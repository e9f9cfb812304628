package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// PrepareReleases checks every open release pull request and saves one
// decision per branch as the release ledger. Credential, tag and git
// failures abort the run before anything is saved.
func (x *UseCase) PrepareReleases(ctx context.Context) (*model.ReleaseLedger, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if x.clients.SnapshotStore() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "snapshot store is not configured")
	}
	if err := x.retryPolicy.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx)

	if err := x.clients.GitHub().VerifyAccess(ctx); err != nil {
		return nil, err
	}

	pulls, err := x.clients.GitHub().ListReleasePulls(ctx)
	if err != nil {
		return nil, err
	}

	branches := make([]string, 0, len(pulls))
	for _, pr := range pulls {
		branches = append(branches, pr.Branch.String())
	}
	logger.Info("Found release branches", slog.Any("branches", branches))

	ledger := model.NewReleaseLedger()
	for i, pr := range pulls {
		branchCtx := logging.With(ctx, logger.With(
			slog.String("branch", pr.Branch.String()),
			slog.Int("pr", pr.Number),
		))
		logging.From(branchCtx).Info("Checking PR", slog.Int("progress", i+1), slog.Int("total", len(pulls)))

		decision, err := x.SelectCandidate(branchCtx, pr.Branch)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to check release branch",
				goerr.V("branch", pr.Branch),
				goerr.V("pr", pr.Number),
			)
		}

		if err := ledger.Add(*decision); err != nil {
			return nil, err
		}
	}

	if err := x.SaveLedger(ctx, ledger); err != nil {
		return nil, err
	}

	logger.Info("Completed release preparation",
		slog.Int("branches", ledger.Len()),
		slog.Int("ready", len(ledger.ReadyReleases())),
	)
	return ledger, nil
}
