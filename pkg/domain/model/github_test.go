package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestGitHubRepoValidate(t *testing.T) {
	t.Run("valid repo passes validation", func(t *testing.T) {
		repo := &model.GitHubRepo{Owner: "ClickHouse", RepoName: "ClickHouse"}
		gt.NoError(t, repo.Validate())
		gt.V(t, repo.FullName()).Equal("ClickHouse/ClickHouse")
	})

	t.Run("missing owner fails validation", func(t *testing.T) {
		repo := &model.GitHubRepo{RepoName: "ClickHouse"}
		gt.True(t, errors.Is(repo.Validate(), types.ErrInvalidOption))
	})

	t.Run("missing repo name fails validation", func(t *testing.T) {
		repo := &model.GitHubRepo{Owner: "ClickHouse"}
		gt.True(t, errors.Is(repo.Validate(), types.ErrInvalidOption))
	})
}

func TestParseGitHubRepo(t *testing.T) {
	repo := gt.R1(model.ParseGitHubRepo("ClickHouse/ClickHouse")).NoError(t)
	gt.V(t, repo).Equal(model.GitHubRepo{Owner: "ClickHouse", RepoName: "ClickHouse"})

	for _, s := range []string{"", "ClickHouse", "/ClickHouse", "ClickHouse/", "a/b/c"} {
		t.Run(s, func(t *testing.T) {
			_, err := model.ParseGitHubRepo(s)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}

func TestParseGitHubRemoteURL(t *testing.T) {
	testCases := map[string]struct {
		url    string
		expect model.GitHubRepo
		isErr  bool
	}{
		"ssh": {
			url:    "git@github.com:ClickHouse/ClickHouse.git",
			expect: model.GitHubRepo{Owner: "ClickHouse", RepoName: "ClickHouse"},
		},
		"https": {
			url:    "https://github.com/ClickHouse/ClickHouse.git",
			expect: model.GitHubRepo{Owner: "ClickHouse", RepoName: "ClickHouse"},
		},
		"https without suffix": {
			url:    "https://github.com/m-mizutani/autorelease",
			expect: model.GitHubRepo{Owner: "m-mizutani", RepoName: "autorelease"},
		},
		"ssh scheme": {
			url:    "ssh://git@github.com/m-mizutani/autorelease.git",
			expect: model.GitHubRepo{Owner: "m-mizutani", RepoName: "autorelease"},
		},
		"other host": {
			url:   "https://gitlab.com/ClickHouse/ClickHouse.git",
			isErr: true,
		},
		"no repo": {
			url:   "https://github.com/ClickHouse",
			isErr: true,
		},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			repo, err := model.ParseGitHubRemoteURL(tc.url)
			if tc.isErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.V(t, repo).Equal(tc.expect)
		})
	}
}
