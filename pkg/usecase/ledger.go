package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/repository"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SaveLedger writes ledger as the single snapshot, replacing any previous one
func (x *UseCase) SaveLedger(ctx context.Context, ledger *model.ReleaseLedger) error {
	if x.clients.SnapshotStore() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "snapshot store is not configured")
	}

	var buf bytes.Buffer
	if err := model.EncodeLedger(&buf, ledger); err != nil {
		return err
	}

	if err := x.clients.SnapshotStore().Save(ctx, buf.Bytes()); err != nil {
		return goerr.Wrap(err, "failed to save release ledger")
	}

	logging.From(ctx).Info("Saved release ledger", slog.Int("releases", ledger.Len()))
	return nil
}

// LoadLedger reads the whole snapshot back. A missing snapshot is
// types.ErrMissingSnapshot and broken content is types.ErrMalformedSnapshot.
func (x *UseCase) LoadLedger(ctx context.Context) (*model.ReleaseLedger, error) {
	if x.clients.SnapshotStore() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "snapshot store is not configured")
	}

	data, err := x.clients.SnapshotStore().Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrMissingSnapshot, "release ledger snapshot does not exist", goerr.V("error", err.Error()))
		}
		return nil, goerr.Wrap(err, "failed to load release ledger")
	}

	ledger, err := model.DecodeLedger(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Loaded release ledger", slog.Int("releases", ledger.Len()))
	return ledger, nil
}
