package config

import (
	"log/slog"

	"github.com/m-mizutani/autorelease/pkg/infra/git"
	"github.com/urfave/cli/v3"
)

type Git struct {
	path   string
	dir    string
	remote string
}

func (x *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "git-path",
			Usage:       "Path to git binary",
			Category:    "Git",
			Value:       "git",
			Destination: &x.path,
			Sources:     cli.EnvVars("AUTORELEASE_GIT_PATH"),
		},
		&cli.StringFlag{
			Name:        "git-dir",
			Usage:       "Path to the checkout of the repository",
			Category:    "Git",
			Value:       ".",
			Destination: &x.dir,
			Sources:     cli.EnvVars("AUTORELEASE_GIT_DIR"),
		},
		&cli.StringFlag{
			Name:        "git-remote",
			Usage:       "Remote that release branches are fetched from",
			Category:    "Git",
			Value:       git.DefaultRemote,
			Destination: &x.remote,
			Sources:     cli.EnvVars("AUTORELEASE_GIT_REMOTE"),
		},
	}
}

func (x *Git) Dir() string {
	return x.dir
}

func (x *Git) Remote() string {
	return x.remote
}

func (x *Git) NewClient() *git.Client {
	return git.New(x.path, git.WithDir(x.dir))
}

func (x *Git) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.String("dir", x.dir),
		slog.String("remote", x.remote),
	)
}
