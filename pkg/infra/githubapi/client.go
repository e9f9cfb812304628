package githubapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultReleaseLabel = "release"

	// Shorter tokens can not be valid GitHub credentials
	minTokenLength = 11
)

type Client struct {
	repo         model.GitHubRepo
	releaseLabel string
	transport    http.RoundTripper

	token      types.GitHubToken
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey

	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithToken authenticates with a personal access token or a workflow token
func WithToken(token types.GitHubToken) Option {
	return func(x *Client) {
		x.token = token
	}
}

// WithApp authenticates as a GitHub App installation
func WithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, privateKey types.GitHubAppPrivateKey) Option {
	return func(x *Client) {
		x.appID = appID
		x.installID = installID
		x.privateKey = privateKey
	}
}

func WithReleaseLabel(label string) Option {
	return func(x *Client) {
		x.releaseLabel = label
	}
}

// WithTransport replaces the base HTTP transport. Authentication is layered on top of it.
func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(repo model.GitHubRepo, options ...Option) (*Client, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	client := &Client{
		repo:         repo,
		releaseLabel: DefaultReleaseLabel,
		transport:    http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	ghClient, err := client.buildGithubClient()
	if err != nil {
		return nil, err
	}
	client.client = ghClient

	return client, nil
}

func (x *Client) buildGithubClient() (*github.Client, error) {
	switch {
	case x.token != "" && x.appID != 0:
		return nil, goerr.Wrap(types.ErrInvalidOption, "either token or GitHub App can be used, not both")

	case x.token != "":
		if len(x.token) < minTokenLength {
			return nil, goerr.Wrap(types.ErrCredential, "GitHub token is too short", goerr.V("length", len(x.token)))
		}
		tr := &tokenTransport{base: x.transport, token: x.token}
		return github.NewClient(&http.Client{Transport: tr}), nil

	case x.appID != 0:
		if x.installID == 0 {
			return nil, goerr.Wrap(types.ErrCredential, "GitHub App installation ID is empty")
		}
		if x.privateKey == "" {
			return nil, goerr.Wrap(types.ErrCredential, "GitHub App private key is empty")
		}

		itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(x.installID), []byte(x.privateKey))
		if err != nil {
			return nil, goerr.Wrap(types.ErrCredential, "failed to create GitHub App transport", goerr.V("error", err.Error()))
		}
		return github.NewClient(&http.Client{Transport: itr}), nil

	default:
		return nil, goerr.Wrap(types.ErrCredential, "no GitHub credential is configured")
	}
}

// tokenTransport sets the token as bearer credential on every request
type tokenTransport struct {
	base  http.RoundTripper
	token types.GitHubToken
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper must not modify the given request
	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+string(x.token))
	return x.base.RoundTrip(authed)
}

func statusCode(err error) int {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}
	return 0
}

func (x *Client) VerifyAccess(ctx context.Context) error {
	repo, _, err := x.client.Repositories.Get(ctx, x.repo.Owner, x.repo.RepoName)
	if err != nil {
		switch statusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return goerr.Wrap(types.ErrCredential, "GitHub credential can not access repository",
				goerr.V("repo", x.repo.FullName()),
				goerr.V("error", err.Error()),
			)
		}
		return goerr.Wrap(err, "failed to get repository", goerr.V("repo", x.repo.FullName()))
	}

	logging.From(ctx).Debug("verified GitHub access",
		slog.String("repo", repo.GetFullName()),
		slog.Any("token", x.token),
	)
	return nil
}

func hasLabel(pr *github.PullRequest, label string) bool {
	for _, l := range pr.Labels {
		if l.GetName() == label {
			return true
		}
	}
	return false
}

func (x *Client) ListReleasePulls(ctx context.Context) ([]*model.ReleasePull, error) {
	var pulls []*model.ReleasePull
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		prs, resp, err := x.client.PullRequests.List(ctx, x.repo.Owner, x.repo.RepoName, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull requests", goerr.V("repo", x.repo.FullName()))
		}

		for _, pr := range prs {
			if !hasLabel(pr, x.releaseLabel) {
				continue
			}
			pulls = append(pulls, &model.ReleasePull{
				Number: pr.GetNumber(),
				Title:  pr.GetTitle(),
				Branch: types.BranchName(pr.GetHead().GetRef()),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Info("listed release pull requests",
		slog.String("repo", x.repo.FullName()),
		slog.String("label", x.releaseLabel),
		slog.Int("count", len(pulls)),
	)

	return pulls, nil
}

func (x *Client) ListMatchingTags(ctx context.Context, prefix string) ([]*interfaces.TagRef, error) {
	var tags []*interfaces.TagRef
	opts := &github.ReferenceListOptions{
		Ref:         "tags/" + prefix,
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		refs, resp, err := x.client.Git.ListMatchingRefs(ctx, x.repo.Owner, x.repo.RepoName, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list matching tag refs",
				goerr.V("repo", x.repo.FullName()),
				goerr.V("prefix", prefix),
			)
		}

		for _, ref := range refs {
			tags = append(tags, &interfaces.TagRef{
				Name:       types.TagName(strings.TrimPrefix(ref.GetRef(), "refs/tags/")),
				ObjectSHA:  ref.GetObject().GetSHA(),
				ObjectType: ref.GetObject().GetType(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return tags, nil
}

func (x *Client) GetTag(ctx context.Context, ref *interfaces.TagRef) (*model.ReleaseTag, error) {
	// Lightweight tags point at the commit directly and carry no tagger date
	if ref.ObjectType == "commit" {
		return &model.ReleaseTag{
			Name:      ref.Name,
			CommitSHA: types.CommitSHA(ref.ObjectSHA),
		}, nil
	}

	tag, _, err := x.client.Git.GetTag(ctx, x.repo.Owner, x.repo.RepoName, ref.ObjectSHA)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tag object",
			goerr.V("repo", x.repo.FullName()),
			goerr.V("tag", ref.Name),
			goerr.V("sha", ref.ObjectSHA),
		)
	}
	if tag.GetObject().GetSHA() == "" {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "tag object has no target", goerr.V("tag", ref.Name))
	}

	return &model.ReleaseTag{
		Name:      types.TagName(tag.GetTag()),
		CommitSHA: types.CommitSHA(tag.GetObject().GetSHA()),
		Date:      tag.GetTagger().GetDate().Time,
	}, nil
}

func (x *Client) GetCombinedStatus(ctx context.Context, sha types.CommitSHA) (types.CIState, error) {
	// https://docs.github.com/en/rest/commits/statuses#get-the-combined-status-for-a-specific-reference
	status, _, err := x.client.Repositories.GetCombinedStatus(ctx, x.repo.Owner, x.repo.RepoName, string(sha), nil)
	if err != nil {
		return types.CIStateUnknown, goerr.Wrap(err, "failed to get combined status",
			goerr.V("repo", x.repo.FullName()),
			goerr.V("sha", sha),
		)
	}

	return types.ParseCIState(status.GetState()), nil
}
