package config

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/repository/file"
	"github.com/m-mizutani/autorelease/pkg/repository/gcs"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

type Ledger struct {
	path            string
	credentialsFile string
}

func (x *Ledger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ledger-path",
			Usage:       "Where release decisions are kept between phases, a file path or gs://bucket/object",
			Category:    "Ledger",
			Value:       file.DefaultPath,
			Destination: &x.path,
			Sources:     cli.EnvVars("AUTORELEASE_LEDGER_PATH"),
		},
		&cli.StringFlag{
			Name:        "ledger-gcs-credentials",
			Usage:       "Credentials file for Cloud Storage (Application Default Credentials if not specified)",
			Category:    "Ledger",
			Destination: &x.credentialsFile,
			Sources:     cli.EnvVars("AUTORELEASE_LEDGER_GCS_CREDENTIALS"),
		},
	}
}

func (x *Ledger) IsGCS() bool {
	return strings.HasPrefix(x.path, "gs://")
}

func (x *Ledger) NewStore(ctx context.Context) (interfaces.SnapshotStore, error) {
	if !x.IsGCS() {
		return file.New(x.path), nil
	}

	var opts []option.ClientOption
	if x.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(x.credentialsFile))
	}
	return gcs.New(ctx, x.path, opts...)
}

func (x *Ledger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.String("credentialsFile", x.credentialsFile),
	)
}
