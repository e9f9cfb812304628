package model

import (
	"strings"

	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type GitHubRepo struct {
	Owner    string `json:"owner"`
	RepoName string `json:"repo_name"`
}

func (x *GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrInvalidOption, "repository name is empty")
	}
	return nil
}

// FullName returns "owner/repo"
func (x *GitHubRepo) FullName() string {
	return x.Owner + "/" + x.RepoName
}

// ParseGitHubRepo parses "owner/repo" format
func ParseGitHubRepo(s string) (GitHubRepo, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return GitHubRepo{}, goerr.Wrap(types.ErrInvalidOption, "repository must be owner/repo", goerr.V("value", s))
	}
	return GitHubRepo{Owner: parts[0], RepoName: parts[1]}, nil
}

// ParseGitHubRemoteURL extracts owner and repo from a git remote URL such as
// git@github.com:owner/repo.git or https://github.com/owner/repo.git
func ParseGitHubRemoteURL(url string) (GitHubRepo, error) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		parts := strings.SplitN(url, "github.com/", 2)
		path = parts[1]
	default:
		return GitHubRepo{}, goerr.Wrap(types.ErrInvalidOption, "not a GitHub remote URL", goerr.V("url", url))
	}

	repo, err := ParseGitHubRepo(strings.TrimSuffix(path, ".git"))
	if err != nil {
		return GitHubRepo{}, goerr.Wrap(err, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	return repo, nil
}

// ReleasePull is an open pull request that tracks a release branch
type ReleasePull struct {
	Number int
	Title  string
	Branch types.BranchName
}
