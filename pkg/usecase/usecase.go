package usecase

import (
	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/infra"
	"github.com/m-mizutani/autorelease/pkg/infra/git"
)

type UseCase struct {
	clients     *infra.Clients
	retryPolicy model.RetryPolicy
	remote      string
}

type Option func(*UseCase)

// WithRetryPolicy sets how the commit status API is retried
func WithRetryPolicy(policy model.RetryPolicy) Option {
	return func(x *UseCase) {
		x.retryPolicy = policy
	}
}

// WithRemote sets the git remote that release branches are read from
func WithRemote(remote string) Option {
	return func(x *UseCase) {
		x.remote = remote
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:     clients,
		retryPolicy: model.DefaultRetryPolicy(),
		remote:      git.DefaultRemote,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
