package config

import (
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/infra/githubapi"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	repository   string
	token        types.GitHubToken `masq:"secret"`
	appID        types.GitHubAppID
	installID    types.GitHubAppInstallID
	privateKey   types.GitHubAppPrivateKey `masq:"secret"`
	releaseLabel string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-repository",
			Usage:       "GitHub repository as owner/repo (auto-detect from git remote if not specified)",
			Category:    "GitHub",
			Destination: &x.repository,
			Sources:     cli.EnvVars("AUTORELEASE_GITHUB_REPOSITORY", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("AUTORELEASE_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used instead of token",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("AUTORELEASE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("AUTORELEASE_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("AUTORELEASE_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "release-label",
			Usage:       "Label of pull requests that track release branches",
			Category:    "GitHub",
			Destination: &x.releaseLabel,
			Sources:     cli.EnvVars("AUTORELEASE_RELEASE_LABEL"),
			Value:       githubapi.DefaultReleaseLabel,
		},
	}
}

// Repository returns the target repository. When it is not given by flag,
// it is detected from the URL of remote in the git repository at dir.
func (x *GitHub) Repository(dir, remote string) (model.GitHubRepo, error) {
	if x.repository != "" {
		return model.ParseGitHubRepo(x.repository)
	}
	return DetectGitHubRepo(dir, remote)
}

// DetectGitHubRepo reads owner and repo name from a git remote URL
func DetectGitHubRepo(dir, remote string) (model.GitHubRepo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return model.GitHubRepo{}, goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	r, err := repo.Remote(remote)
	if err != nil {
		return model.GitHubRepo{}, goerr.Wrap(err, "failed to get git remote", goerr.V("remote", remote))
	}
	if len(r.Config().URLs) == 0 {
		return model.GitHubRepo{}, goerr.New("no remote URL found", goerr.V("remote", remote))
	}

	return model.ParseGitHubRemoteURL(r.Config().URLs[0])
}

func (x *GitHub) NewClient(repo model.GitHubRepo) (*githubapi.Client, error) {
	var opts []githubapi.Option
	if x.releaseLabel != "" {
		opts = append(opts, githubapi.WithReleaseLabel(x.releaseLabel))
	}
	if x.token != "" {
		opts = append(opts, githubapi.WithToken(x.token))
	}
	if x.appID != 0 {
		opts = append(opts, githubapi.WithApp(x.appID, x.installID, x.privateKey))
	}
	return githubapi.New(repo, opts...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("repository", x.repository),
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("releaseLabel", x.releaseLabel),
	)
}
