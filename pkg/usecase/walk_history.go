package usecase

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// WalkHistory returns the commits of branch that are newer than its last
// release tag.
func (x *UseCase) WalkHistory(ctx context.Context, branch types.BranchName) (*model.History, error) {
	tag, err := x.ResolveReleaseTag(ctx, branch)
	if err != nil {
		return nil, err
	}

	// The tag target SHA does not require tags to be fetched into the checkout
	from := tag.CommitSHA.String()
	if from == "" {
		from = tag.Name.String()
	}

	ref := x.remote + "/" + branch.String()
	total, err := x.clients.Git().CountCommits(ctx, from, ref)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count commits since last release",
			goerr.V("branch", branch),
			goerr.V("tag", tag.Name),
		)
	}

	logging.From(ctx).Info("Previous release",
		slog.String("tag", tag.Name.String()),
		slog.String("tag_commit", tag.CommitSHA.String()),
		slog.Int("commits_since", total),
		slog.Time("date", tag.Date),
	)

	return model.NewHistory(branch, ref, *tag, total, x.clients.Git().CommitAt), nil
}

// ResolveReleaseTag finds the most recent tag named v<branch>.* and resolves
// the commit it points to. Having no such tag is types.ErrTagResolution.
func (x *UseCase) ResolveReleaseTag(ctx context.Context, branch types.BranchName) (*model.ReleaseTag, error) {
	prefix := "v" + branch.String()
	refs, err := x.clients.GitHub().ListMatchingTags(ctx, prefix)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list release tags", goerr.V("branch", branch))
	}

	// "v23.1" also matches v23.10.*; keep tags of this branch only
	refs = slices.DeleteFunc(refs, func(ref *interfaces.TagRef) bool {
		name := ref.Name.String()
		return name != prefix && !strings.HasPrefix(name, prefix+".")
	})

	latest := latestTagRef(refs)
	if latest == nil {
		return nil, goerr.Wrap(types.ErrTagResolution, "no release tag found for branch",
			goerr.V("branch", branch),
			goerr.V("prefix", prefix),
		)
	}

	tag, err := x.clients.GitHub().GetTag(ctx, latest)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve release tag",
			goerr.V("branch", branch),
			goerr.V("tag", latest.Name),
		)
	}
	return tag, nil
}

func latestTagRef(refs []*interfaces.TagRef) *interfaces.TagRef {
	if len(refs) == 0 {
		return nil
	}
	return slices.MaxFunc(refs, func(a, b *interfaces.TagRef) int {
		return compareTagNames(a.Name.String(), b.Name.String())
	})
}

// compareTagNames orders release tags by version. Names that semver can not
// parse, such as v23.8.1.2992-lts, are compared by their numeric dot
// separated segments, and by plain string order as the last resort.
func compareTagNames(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		if c := va.Compare(vb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	}

	na, nb := numericSegments(a), numericSegments(b)
	if na != nil && nb != nil {
		if c := slices.Compare(na, nb); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

func numericSegments(name string) []int {
	version, _, _ := strings.Cut(strings.TrimPrefix(name, "v"), "-")
	parts := strings.Split(version, ".")

	segments := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		segments = append(segments, n)
	}
	return segments
}
