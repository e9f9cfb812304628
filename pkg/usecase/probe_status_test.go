package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/autorelease/pkg/domain/mock"
	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/infra"
	"github.com/m-mizutani/autorelease/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestProbeStatus(t *testing.T) {
	t.Run("first attempt", func(t *testing.T) {
		gh := &mock.GitHubMock{
			GetCombinedStatusFunc: func(ctx context.Context, sha types.CommitSHA) (types.CIState, error) {
				return types.CIStateSuccess, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithRetryPolicy(fastRetry))

		gt.V(t, uc.ProbeStatus(context.Background(), "abc")).Equal(types.CIStateSuccess)
		gt.A(t, gh.GetCombinedStatusCalls()).Length(1)
		gt.V(t, gh.GetCombinedStatusCalls()[0].Sha).Equal(types.CommitSHA("abc"))
	})

	t.Run("failure state is not retried", func(t *testing.T) {
		gh := &mock.GitHubMock{
			GetCombinedStatusFunc: func(ctx context.Context, sha types.CommitSHA) (types.CIState, error) {
				return types.CIStateFailure, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithRetryPolicy(fastRetry))

		gt.V(t, uc.ProbeStatus(context.Background(), "abc")).Equal(types.CIStateFailure)
		gt.A(t, gh.GetCombinedStatusCalls()).Length(1)
	})

	t.Run("recover after transient error", func(t *testing.T) {
		var n int
		gh := &mock.GitHubMock{
			GetCombinedStatusFunc: func(ctx context.Context, sha types.CommitSHA) (types.CIState, error) {
				n++
				if n == 1 {
					return types.CIStateUnknown, errors.New("connection reset")
				}
				return types.CIStatePending, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithRetryPolicy(fastRetry))

		gt.V(t, uc.ProbeStatus(context.Background(), "abc")).Equal(types.CIStatePending)
		gt.A(t, gh.GetCombinedStatusCalls()).Length(2)
	})

	t.Run("give up after all attempts", func(t *testing.T) {
		gh := &mock.GitHubMock{
			GetCombinedStatusFunc: func(ctx context.Context, sha types.CommitSHA) (types.CIState, error) {
				return types.CIStateUnknown, errors.New("service unavailable")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithRetryPolicy(fastRetry))

		gt.V(t, uc.ProbeStatus(context.Background(), "abc")).Equal(types.CIStateUnknown)
		gt.A(t, gh.GetCombinedStatusCalls()).Length(fastRetry.MaxAttempts)
	})

	t.Run("each attempt has deadline", func(t *testing.T) {
		gh := &mock.GitHubMock{
			GetCombinedStatusFunc: func(ctx context.Context, sha types.CommitSHA) (types.CIState, error) {
				_, ok := ctx.Deadline()
				gt.True(t, ok)
				<-ctx.Done()
				return types.CIStateUnknown, ctx.Err()
			},
		}
		policy := model.RetryPolicy{MaxAttempts: 2, Interval: time.Millisecond, Timeout: 5 * time.Millisecond}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithRetryPolicy(policy))

		gt.V(t, uc.ProbeStatus(context.Background(), "abc")).Equal(types.CIStateUnknown)
		gt.A(t, gh.GetCombinedStatusCalls()).Length(2)
	})

	t.Run("canceled context", func(t *testing.T) {
		gh := &mock.GitHubMock{
			GetCombinedStatusFunc: func(ctx context.Context, sha types.CommitSHA) (types.CIState, error) {
				return types.CIStateUnknown, ctx.Err()
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)), usecase.WithRetryPolicy(fastRetry))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		gt.V(t, uc.ProbeStatus(ctx, "abc")).Equal(types.CIStateUnknown)
	})
}
