package file

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/repository"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/autorelease/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultPath is where the prepare phase leaves the ledger for the notify phase
const DefaultPath = "/tmp/autorelease_info.json"

type snapshotStore struct {
	path string
}

// New creates a snapshot store backed by a single file at path
func New(path string) interfaces.SnapshotStore {
	return &snapshotStore{path: filepath.Clean(path)}
}

// Save replaces the file atomically so a reader never sees a partial snapshot
func (x *snapshotStore) Save(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "snapshot is empty", goerr.V("path", x.path))
	}

	tmp, err := os.CreateTemp(filepath.Dir(x.path), filepath.Base(x.path)+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file for snapshot", goerr.V("path", x.path))
	}
	tmpName := tmp.Name()
	defer safe.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to write snapshot", goerr.V("path", tmpName))
	}
	if err := tmp.Sync(); err != nil {
		safe.Close(tmp)
		return goerr.Wrap(err, "failed to sync snapshot", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close snapshot", goerr.V("path", tmpName))
	}
	if err := os.Rename(tmpName, x.path); err != nil {
		return goerr.Wrap(err, "failed to move snapshot into place",
			goerr.V("from", tmpName),
			goerr.V("to", x.path),
		)
	}

	logging.From(ctx).Info("Dumped release info", slog.String("path", x.path), slog.Int("size", len(data)))
	return nil
}

func (x *snapshotStore) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(x.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "snapshot file does not exist", goerr.V("path", x.path))
		}
		return nil, goerr.Wrap(err, "failed to read snapshot", goerr.V("path", x.path))
	}

	logging.From(ctx).Debug("Loaded release info", slog.String("path", x.path), slog.Int("size", len(data)))
	return data, nil
}
