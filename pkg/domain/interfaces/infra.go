package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Git SnapshotStore Notifier

import (
	"context"

	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
)

type GitHub interface {
	// VerifyAccess fails with types.ErrCredential if the credential can not read the repository
	VerifyAccess(ctx context.Context) error
	ListReleasePulls(ctx context.Context) ([]*model.ReleasePull, error)
	// ListMatchingTags returns tag refs whose name starts with prefix, e.g. "v23.8"
	ListMatchingTags(ctx context.Context, prefix string) ([]*TagRef, error)
	GetTag(ctx context.Context, ref *TagRef) (*model.ReleaseTag, error)
	GetCombinedStatus(ctx context.Context, sha types.CommitSHA) (types.CIState, error)
}

// TagRef is a refs/tags/* reference. ObjectType is "tag" for annotated tags
// and "commit" for lightweight tags.
type TagRef struct {
	Name       types.TagName
	ObjectSHA  string
	ObjectType string
}

type Git interface {
	// CountCommits returns the number of commits reachable from to but not from from
	CountCommits(ctx context.Context, from, to string) (int, error)
	// CommitAt returns the commit skip commits behind the tip of ref
	CommitAt(ctx context.Context, ref string, skip int) (types.CommitSHA, error)
}

// SnapshotStore keeps a single ledger snapshot. Load returns an error
// wrapping repository.ErrNotFound if no snapshot was saved.
type SnapshotStore interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
}

type Notifier interface {
	Notify(ctx context.Context, decision model.ReleaseDecision) error
}
