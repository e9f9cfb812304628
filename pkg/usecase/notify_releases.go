package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// NotifyReleases loads the ledger saved by PrepareReleases and passes every
// decision to the notifier in ledger order.
func (x *UseCase) NotifyReleases(ctx context.Context) error {
	if x.clients.Notifier() == nil {
		return goerr.Wrap(types.ErrInvalidOption, "notifier is not configured")
	}

	ledger, err := x.LoadLedger(ctx)
	if err != nil {
		return err
	}

	for _, decision := range ledger.Releases {
		if err := x.clients.Notifier().Notify(ctx, decision); err != nil {
			return goerr.Wrap(err, "failed to notify release decision", goerr.V("branch", decision.Branch))
		}
	}

	logging.From(ctx).Info("Notified release decisions",
		slog.Int("releases", ledger.Len()),
		slog.Int("ready", len(ledger.ReadyReleases())),
	)
	return nil
}
