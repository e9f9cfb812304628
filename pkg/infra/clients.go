package infra

import (
	"os"

	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/infra/git"
	"github.com/m-mizutani/autorelease/pkg/infra/notify"
)

type Clients struct {
	github        interfaces.GitHub
	git           interfaces.Git
	snapshotStore interfaces.SnapshotStore
	notifier      interfaces.Notifier
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		git:      git.New("git"),
		notifier: notify.NewWriter(os.Stdout),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) SnapshotStore() interfaces.SnapshotStore {
	return x.snapshotStore
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithSnapshotStore(store interfaces.SnapshotStore) Option {
	return func(x *Clients) {
		x.snapshotStore = store
	}
}

func WithNotifier(notifier interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = notifier
	}
}
