package testhelper

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for SnapshotStore. newStore must return a
// store that has no snapshot yet.
func TestAll(t *testing.T, newStore func() interfaces.SnapshotStore) {
	t.Run("LoadMissing", func(t *testing.T) {
		TestLoadMissing(t, newStore())
	})
	t.Run("SaveAndLoad", func(t *testing.T) {
		TestSaveAndLoad(t, newStore())
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, newStore())
	})
	t.Run("SaveEmpty", func(t *testing.T) {
		TestSaveEmpty(t, newStore())
	})
}

// TestLoadMissing checks that loading before any save reports ErrNotFound
func TestLoadMissing(t *testing.T, store interfaces.SnapshotStore) {
	ctx := context.Background()

	data, err := store.Load(ctx)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
	gt.V(t, len(data)).Equal(0)
}

// TestSaveAndLoad checks that saved bytes are loaded unchanged
func TestSaveAndLoad(t *testing.T, store interfaces.SnapshotStore) {
	ctx := context.Background()
	data := []byte(`{"releases": [{"ready": true, "ci_status": "success", "num_patches": 3, "release_branch": "23.8", "commit_sha": "abc123"}]}`)

	gt.NoError(t, store.Save(ctx, data))

	loaded := gt.R1(store.Load(ctx)).NoError(t)
	gt.V(t, string(loaded)).Equal(string(data))
}

// TestOverwrite checks that a save replaces the previous snapshot as a whole
func TestOverwrite(t *testing.T, store interfaces.SnapshotStore) {
	ctx := context.Background()
	first := []byte(`{"releases": [{"ready": false, "ci_status": "", "num_patches": 0, "release_branch": "24.1", "commit_sha": ""}, {"ready": false, "ci_status": "pending", "num_patches": 2, "release_branch": "24.2", "commit_sha": "def456"}]}`)
	second := []byte(`{"releases": []}`)

	gt.NoError(t, store.Save(ctx, first))
	gt.NoError(t, store.Save(ctx, second))

	loaded := gt.R1(store.Load(ctx)).NoError(t)
	gt.V(t, string(loaded)).Equal(string(second))
}

// TestSaveEmpty checks that an empty snapshot is rejected and the previous one is kept
func TestSaveEmpty(t *testing.T, store interfaces.SnapshotStore) {
	ctx := context.Background()
	data := []byte(`{"releases": []}`)
	gt.NoError(t, store.Save(ctx, data))

	err := store.Save(ctx, nil)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	loaded := gt.R1(store.Load(ctx)).NoError(t)
	gt.V(t, string(loaded)).Equal(string(data))
}
