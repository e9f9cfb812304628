package gcs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/repository"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/autorelease/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

type snapshotStore struct {
	client *storage.Client
	bucket string
	object string
}

// ParseURL splits gs://bucket/path/to/object into bucket and object
func ParseURL(url string) (bucket, object string, err error) {
	path, ok := strings.CutPrefix(url, "gs://")
	if !ok {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "GCS location must start with gs://", goerr.V("url", url))
	}

	bucket, object, ok = strings.Cut(path, "/")
	if !ok || bucket == "" || object == "" || strings.HasSuffix(object, "/") {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "GCS location must be gs://bucket/object", goerr.V("url", url))
	}
	return bucket, object, nil
}

// New creates a snapshot store that keeps the ledger as one Cloud Storage object
func New(ctx context.Context, url string, opts ...option.ClientOption) (interfaces.SnapshotStore, error) {
	bucket, object, err := ParseURL(url)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &snapshotStore{
		client: client,
		bucket: bucket,
		object: object,
	}, nil
}

// Save uploads data. Cloud Storage makes the object visible only when the
// writer is closed successfully, so readers get the old or the new snapshot.
func (x *snapshotStore) Save(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "snapshot is empty")
	}

	w := x.client.Bucket(x.bucket).Object(x.object).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(data); err != nil {
		safe.Close(w)
		return goerr.Wrap(err, "failed to write snapshot object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.object),
		)
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to upload snapshot object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.object),
		)
	}

	logging.From(ctx).Info("Uploaded release info",
		slog.String("bucket", x.bucket),
		slog.String("object", x.object),
		slog.Int("size", len(data)),
	)
	return nil
}

func (x *snapshotStore) Load(ctx context.Context) ([]byte, error) {
	r, err := x.client.Bucket(x.bucket).Object(x.object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(repository.ErrNotFound, "snapshot object does not exist",
				goerr.V("bucket", x.bucket),
				goerr.V("object", x.object),
			)
		}
		return nil, goerr.Wrap(err, "failed to open snapshot object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.object),
		)
	}
	defer safe.Close(r)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read snapshot object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.object),
		)
	}
	return data, nil
}
