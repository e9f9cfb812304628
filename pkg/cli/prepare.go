package cli

import (
	"context"

	"github.com/m-mizutani/autorelease/pkg/cli/config"
	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/infra"
	"github.com/m-mizutani/autorelease/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

func (x *CLI) runPrepare(ctx context.Context, github *config.GitHub, gitConfig *config.Git, probe *config.Probe, store interfaces.SnapshotStore) error {
	repo, err := github.Repository(gitConfig.Dir(), gitConfig.Remote())
	if err != nil {
		return goerr.Wrap(err, "failed to determine GitHub repository")
	}

	ghClient, err := github.NewClient(repo)
	if err != nil {
		return err
	}

	clients := infra.New(append([]infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithGit(gitConfig.NewClient()),
		infra.WithSnapshotStore(store),
	}, x.options...)...)

	uc := usecase.New(clients,
		usecase.WithRetryPolicy(probe.RetryPolicy()),
		usecase.WithRemote(gitConfig.Remote()),
	)

	if _, err := uc.PrepareReleases(ctx); err != nil {
		return err
	}
	return nil
}

func (x *CLI) runPostStatus(ctx context.Context, store interfaces.SnapshotStore) error {
	clients := infra.New(append([]infra.Option{
		infra.WithSnapshotStore(store),
	}, x.options...)...)

	return usecase.New(clients).NotifyReleases(ctx)
}
