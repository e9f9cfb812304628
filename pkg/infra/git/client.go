package git

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultRemote is the remote whose branches are read
const DefaultRemote = "origin"

// Client runs the git binary against a local checkout
type Client struct {
	path string
	dir  string
}

var _ interfaces.Git = (*Client)(nil)

type Option func(*Client)

// WithDir sets the working tree the commands run in. Default is the current directory.
func WithDir(dir string) Option {
	return func(x *Client) {
		x.dir = dir
	}
}

func New(path string, options ...Option) *Client {
	client := &Client{path: path}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) run(ctx context.Context, args ...string) (string, error) {
	logging.From(ctx).Debug("Run git command", slog.Any("args", args), slog.String("dir", x.dir))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, x.path, args...)
	cmd.Dir = x.dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(err, "failed to run git command",
			goerr.V("args", args),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (x *Client) CountCommits(ctx context.Context, from, to string) (int, error) {
	out, err := x.run(ctx, "rev-list", "--count", from+".."+to)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, goerr.Wrap(err, "unexpected output of rev-list --count",
			goerr.V("output", out),
			goerr.V("range", from+".."+to),
		)
	}
	return n, nil
}

func (x *Client) CommitAt(ctx context.Context, ref string, skip int) (types.CommitSHA, error) {
	out, err := x.run(ctx, "rev-list", "--max-count=1", "--skip="+strconv.Itoa(skip), ref)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", goerr.New("no commit at offset",
			goerr.V("ref", ref),
			goerr.V("skip", skip),
		)
	}
	return types.CommitSHA(out), nil
}
