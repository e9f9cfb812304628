package model

import (
	"context"
	"iter"
	"time"

	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// MaxLookback is the maximum number of commits from the branch tip that a
// history will yield.
const MaxLookback = 5

// ReleaseDecision is the outcome of checking one release branch
type ReleaseDecision struct {
	Ready      bool             `json:"ready"`
	CIStatus   types.CIState    `json:"ci_status"`
	NumPatches int              `json:"num_patches"`
	Branch     types.BranchName `json:"release_branch"`
	CommitSHA  types.CommitSHA  `json:"commit_sha"`
}

func (x *ReleaseDecision) Validate() error {
	if x.Branch == "" {
		return goerr.New("release branch is empty")
	}
	if x.CIStatus != "" && types.ParseCIState(x.CIStatus.String()) != x.CIStatus {
		return goerr.New("unknown CI status",
			goerr.V("branch", x.Branch),
			goerr.V("ci_status", x.CIStatus),
		)
	}
	if x.Ready && x.CIStatus != types.CIStateSuccess {
		return goerr.New("ready decision must have success status",
			goerr.V("branch", x.Branch),
			goerr.V("ci_status", x.CIStatus),
		)
	}
	if x.Ready && x.CommitSHA == "" {
		return goerr.New("ready decision must have commit", goerr.V("branch", x.Branch))
	}
	if x.NumPatches < 0 {
		return goerr.New("number of patches is negative",
			goerr.V("branch", x.Branch),
			goerr.V("num_patches", x.NumPatches),
		)
	}
	return nil
}

// ReleaseTag is the most recent release tag of a branch
type ReleaseTag struct {
	Name      types.TagName
	CommitSHA types.CommitSHA
	Date      time.Time
}

// CommitLookup returns the commit that is skip commits behind the tip of ref
type CommitLookup func(ctx context.Context, ref string, skip int) (types.CommitSHA, error)

// History is the un-released part of a release branch. Commits are looked up
// only when the sequence is consumed.
type History struct {
	Branch types.BranchName
	Ref    string
	Tag    ReleaseTag
	Total  int

	lookup CommitLookup
}

func NewHistory(branch types.BranchName, ref string, tag ReleaseTag, total int, lookup CommitLookup) *History {
	return &History{
		Branch: branch,
		Ref:    ref,
		Tag:    tag,
		Total:  total,
		lookup: lookup,
	}
}

// Len returns how many commits Commits yields at most
func (x *History) Len() int {
	return max(0, min(x.Total, MaxLookback))
}

// Commits yields commits from the tip backward. A lookup failure is yielded
// once with an empty SHA and ends the sequence.
func (x *History) Commits(ctx context.Context) iter.Seq2[types.CommitSHA, error] {
	return func(yield func(types.CommitSHA, error) bool) {
		for i := 0; i < x.Len(); i++ {
			sha, err := x.lookup(ctx, x.Ref, i)
			if err != nil {
				yield("", goerr.Wrap(err, "failed to look up commit",
					goerr.V("ref", x.Ref),
					goerr.V("skip", i),
				))
				return
			}
			if !yield(sha, nil) {
				return
			}
		}
	}
}
