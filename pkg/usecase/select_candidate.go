package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SelectCandidate decides whether branch can be released now.
//
// Only the tip-most un-released commit is examined. History yields up to
// model.MaxLookback commits but the loop below always stops after the first
// status check, whatever the status is. Walking further back would change
// which commits get released, so keep it this way.
func (x *UseCase) SelectCandidate(ctx context.Context, branch types.BranchName) (*model.ReleaseDecision, error) {
	logger := logging.From(ctx)

	history, err := x.WalkHistory(ctx, branch)
	if err != nil {
		return nil, err
	}

	decision := &model.ReleaseDecision{
		Branch:     branch,
		NumPatches: history.Total,
	}

	var checked bool
	for sha, err := range history.Commits(ctx) {
		if err != nil {
			return nil, goerr.Wrap(err, "failed to walk release branch", goerr.V("branch", branch))
		}

		checked = true
		decision.CommitSHA = sha
		logger.Info("Check if commit is ready for release",
			slog.String("sha", sha.String()),
			slog.String("ref", history.Ref),
		)

		decision.CIStatus = x.ProbeStatus(ctx, sha)
		decision.Ready = decision.CIStatus == types.CIStateSuccess
		break
	}

	switch {
	case decision.Ready:
		logger.Info("Add release ready info",
			slog.String("sha", decision.CommitSHA.String()),
			slog.Int("num_patches", decision.NumPatches),
		)
	case checked:
		logger.Error("CI is failed, check CI status of the branch",
			slog.String("sha", decision.CommitSHA.String()),
			slog.String("ci_status", decision.CIStatus.String()),
		)
	default:
		logger.Warn("No commits to release since the last release tag",
			slog.String("tag", history.Tag.Name.String()),
		)
	}

	return decision, nil
}
