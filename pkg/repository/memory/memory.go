package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type snapshotStore struct {
	mu   sync.Mutex
	data []byte
}

// New creates a new in-memory snapshot store
func New() interfaces.SnapshotStore {
	return &snapshotStore{}
}

func (x *snapshotStore) Save(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "snapshot is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.data = slices.Clone(data)
	return nil
}

func (x *snapshotStore) Load(ctx context.Context) ([]byte, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.data == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "no snapshot in memory")
	}
	return slices.Clone(x.data), nil
}
