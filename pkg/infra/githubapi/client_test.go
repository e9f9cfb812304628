package githubapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/infra/githubapi"
	"github.com/m-mizutani/autorelease/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

const testToken = types.GitHubToken("ghp_test_token_0123456789")

var testRepo = model.GitHubRepo{Owner: "ClickHouse", RepoName: "ClickHouse"}

type mockTransport struct {
	requests []*http.Request
	mockDo   func(req *http.Request) (int, string)
	mockLink func(req *http.Request) string
}

func (x *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	x.requests = append(x.requests, req)
	code, body := x.mockDo(req)

	header := http.Header{"Content-Type": []string{"application/json"}}
	if x.mockLink != nil {
		if link := x.mockLink(req); link != "" {
			header.Set("Link", link)
		}
	}

	return &http.Response{
		StatusCode: code,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func newClient(t *testing.T, tr *mockTransport, opts ...githubapi.Option) *githubapi.Client {
	t.Helper()
	opts = append([]githubapi.Option{
		githubapi.WithToken(testToken),
		githubapi.WithTransport(tr),
	}, opts...)
	return gt.R1(githubapi.New(testRepo, opts...)).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("token client", func(t *testing.T) {
		_, err := githubapi.New(testRepo, githubapi.WithToken(testToken))
		gt.NoError(t, err)
	})

	t.Run("short token is a credential failure", func(t *testing.T) {
		client, err := githubapi.New(testRepo, githubapi.WithToken("short"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrCredential))
		gt.V(t, client).Equal(nil)
	})

	t.Run("no credential is a credential failure", func(t *testing.T) {
		_, err := githubapi.New(testRepo)
		gt.True(t, errors.Is(err, types.ErrCredential))
	})

	t.Run("token and app together are rejected", func(t *testing.T) {
		_, err := githubapi.New(testRepo,
			githubapi.WithToken(testToken),
			githubapi.WithApp(1, 2, "key"),
		)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("app with invalid key is a credential failure", func(t *testing.T) {
		_, err := githubapi.New(testRepo, githubapi.WithApp(12345, 67890, "invalid-key"))
		gt.True(t, errors.Is(err, types.ErrCredential))
	})

	t.Run("app without installation ID is a credential failure", func(t *testing.T) {
		_, err := githubapi.New(testRepo, githubapi.WithApp(12345, 0, "key"))
		gt.True(t, errors.Is(err, types.ErrCredential))
	})

	t.Run("invalid repository", func(t *testing.T) {
		_, err := githubapi.New(model.GitHubRepo{Owner: "ClickHouse"}, githubapi.WithToken(testToken))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestVerifyAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("accessible repository", func(t *testing.T) {
		tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
			return http.StatusOK, `{"full_name":"ClickHouse/ClickHouse"}`
		}}
		client := newClient(t, tr)

		gt.NoError(t, client.VerifyAccess(ctx))
		gt.A(t, tr.requests).Length(1)
		gt.V(t, tr.requests[0].URL.Path).Equal("/repos/ClickHouse/ClickHouse")
		gt.V(t, tr.requests[0].Header.Get("Authorization")).Equal("Bearer " + string(testToken))
	})

	t.Run("rejected credential", func(t *testing.T) {
		tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
			return http.StatusUnauthorized, `{"message":"Bad credentials"}`
		}}
		client := newClient(t, tr)

		err := client.VerifyAccess(ctx)
		gt.True(t, errors.Is(err, types.ErrCredential))
	})

	t.Run("server error is not a credential failure", func(t *testing.T) {
		tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
			return http.StatusInternalServerError, `{"message":"oops"}`
		}}
		client := newClient(t, tr)

		err := client.VerifyAccess(ctx)
		gt.Error(t, err)
		gt.False(t, errors.Is(err, types.ErrCredential))
	})
}

func TestListReleasePulls(t *testing.T) {
	ctx := context.Background()

	t.Run("filter by label and follow pages", func(t *testing.T) {
		tr := &mockTransport{}
		tr.mockLink = func(req *http.Request) string {
			if req.URL.Query().Get("page") == "2" {
				return ""
			}
			return `<https://api.github.com/repos/ClickHouse/ClickHouse/pulls?page=2&state=open>; rel="next"`
		}
		tr.mockDo = func(req *http.Request) (int, string) {
			gt.V(t, req.URL.Path).Equal("/repos/ClickHouse/ClickHouse/pulls")
			gt.V(t, req.URL.Query().Get("state")).Equal("open")

			if req.URL.Query().Get("page") == "2" {
				return http.StatusOK, `[
					{"number": 3, "title": "Release pull request for branch 24.1", "head": {"ref": "24.1"}, "labels": [{"name": "release"}]}
				]`
			}
			return http.StatusOK, `[
				{"number": 1, "title": "Release pull request for branch 23.8", "head": {"ref": "23.8"}, "labels": [{"name": "release"}, {"name": "lts"}]},
				{"number": 2, "title": "Fix typo", "head": {"ref": "fix-typo"}, "labels": [{"name": "pr-documentation"}]}
			]`
		}
		client := newClient(t, tr)

		pulls := gt.R1(client.ListReleasePulls(ctx)).NoError(t)
		gt.A(t, tr.requests).Length(2)
		gt.A(t, pulls).Length(2)
		gt.V(t, pulls[0].Number).Equal(1)
		gt.V(t, pulls[0].Branch).Equal(types.BranchName("23.8"))
		gt.V(t, pulls[0].Title).Equal("Release pull request for branch 23.8")
		gt.V(t, pulls[1].Branch).Equal(types.BranchName("24.1"))

		// every page is sent with the token
		for _, req := range tr.requests {
			gt.V(t, req.Header.Get("Authorization")).Equal("Bearer " + string(testToken))
		}
	})

	t.Run("custom label", func(t *testing.T) {
		tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
			return http.StatusOK, `[
				{"number": 1, "head": {"ref": "23.8"}, "labels": [{"name": "release"}]},
				{"number": 2, "head": {"ref": "23.3"}, "labels": [{"name": "release-lts"}]}
			]`
		}}
		client := newClient(t, tr, githubapi.WithReleaseLabel("release-lts"))

		pulls := gt.R1(client.ListReleasePulls(ctx)).NoError(t)
		gt.A(t, pulls).Length(1)
		gt.V(t, pulls[0].Branch).Equal(types.BranchName("23.3"))
	})

	t.Run("API error", func(t *testing.T) {
		tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
			return http.StatusBadGateway, `{"message":"bad gateway"}`
		}}
		client := newClient(t, tr)

		_, err := client.ListReleasePulls(ctx)
		gt.Error(t, err)
	})
}

func TestListMatchingTags(t *testing.T) {
	ctx := context.Background()

	tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
		gt.V(t, req.URL.Path).Equal("/repos/ClickHouse/ClickHouse/git/matching-refs/tags/v23.8")
		return http.StatusOK, `[
			{"ref": "refs/tags/v23.8.1.2992-lts", "object": {"sha": "1111111111111111111111111111111111111111", "type": "tag"}},
			{"ref": "refs/tags/v23.8.2.7-lts", "object": {"sha": "2222222222222222222222222222222222222222", "type": "commit"}}
		]`
	}}
	client := newClient(t, tr)

	tags := gt.R1(client.ListMatchingTags(ctx, "v23.8")).NoError(t)
	gt.A(t, tags).Length(2)
	gt.V(t, tags[0].Name).Equal(types.TagName("v23.8.1.2992-lts"))
	gt.V(t, tags[0].ObjectType).Equal("tag")
	gt.V(t, tags[1].ObjectSHA).Equal("2222222222222222222222222222222222222222")
}

func TestGetTag(t *testing.T) {
	ctx := context.Background()

	t.Run("annotated tag", func(t *testing.T) {
		tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
			gt.V(t, req.URL.Path).Equal("/repos/ClickHouse/ClickHouse/git/tags/1111111111111111111111111111111111111111")
			return http.StatusOK, `{
				"tag": "v23.8.1.2992-lts",
				"object": {"sha": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "type": "commit"},
				"tagger": {"name": "robot", "date": "2023-08-30T10:00:00Z"}
			}`
		}}
		client := newClient(t, tr)

		tag := gt.R1(client.GetTag(ctx, &interfaces.TagRef{
			Name:       "v23.8.1.2992-lts",
			ObjectSHA:  "1111111111111111111111111111111111111111",
			ObjectType: "tag",
		})).NoError(t)
		gt.V(t, tag.Name).Equal(types.TagName("v23.8.1.2992-lts"))
		gt.V(t, tag.CommitSHA).Equal(types.CommitSHA("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
		gt.V(t, tag.Date.Year()).Equal(2023)
	})

	t.Run("lightweight tag does not call API", func(t *testing.T) {
		tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
			t.Error("unexpected request")
			return http.StatusInternalServerError, ""
		}}
		client := newClient(t, tr)

		tag := gt.R1(client.GetTag(ctx, &interfaces.TagRef{
			Name:       "v23.8.2.7-lts",
			ObjectSHA:  "2222222222222222222222222222222222222222",
			ObjectType: "commit",
		})).NoError(t)
		gt.V(t, tag.CommitSHA).Equal(types.CommitSHA("2222222222222222222222222222222222222222"))
		gt.True(t, tag.Date.IsZero())
	})
}

func TestGetCombinedStatus(t *testing.T) {
	ctx := context.Background()

	testCases := map[string]struct {
		body   string
		expect types.CIState
	}{
		"success": {body: `{"state":"success"}`, expect: types.CIStateSuccess},
		"pending": {body: `{"state":"pending"}`, expect: types.CIStatePending},
		"failure": {body: `{"state":"failure"}`, expect: types.CIStateFailure},
		"other":   {body: `{"state":"neutral"}`, expect: types.CIStateUnknown},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
				gt.V(t, req.URL.Path).Equal("/repos/ClickHouse/ClickHouse/commits/abc123/status")
				return http.StatusOK, tc.body
			}}
			client := newClient(t, tr)

			state := gt.R1(client.GetCombinedStatus(ctx, "abc123")).NoError(t)
			gt.V(t, state).Equal(tc.expect)
		})
	}

	t.Run("API error", func(t *testing.T) {
		tr := &mockTransport{mockDo: func(req *http.Request) (int, string) {
			return http.StatusServiceUnavailable, `{"message":"unavailable"}`
		}}
		client := newClient(t, tr)

		state, err := client.GetCombinedStatus(ctx, "abc123")
		gt.Error(t, err)
		gt.V(t, state).Equal(types.CIStateUnknown)
	})
}

func TestClient_Integration(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	repoName := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPOSITORY")

	repo := gt.R1(model.ParseGitHubRepo(repoName)).NoError(t)
	client := gt.R1(githubapi.New(repo, githubapi.WithToken(types.GitHubToken(token)))).NoError(t)

	ctx := context.Background()
	gt.NoError(t, client.VerifyAccess(ctx))

	pulls := gt.R1(client.ListReleasePulls(ctx)).NoError(t)
	for _, pr := range pulls {
		t.Logf("release PR #%d: %s", pr.Number, pr.Branch)
	}
}
