package gcs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/autorelease/pkg/repository/gcs"
	"github.com/m-mizutani/autorelease/pkg/repository/testhelper"
	"github.com/m-mizutani/autorelease/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestParseURL(t *testing.T) {
	t.Run("bucket and nested object", func(t *testing.T) {
		bucket, object, err := gcs.ParseURL("gs://ci-artifacts/autorelease/info.json")
		gt.NoError(t, err)
		gt.V(t, bucket).Equal("ci-artifacts")
		gt.V(t, object).Equal("autorelease/info.json")
	})

	for _, url := range []string{
		"s3://bucket/object",
		"gs://bucket",
		"gs://bucket/",
		"gs:///object",
		"gs://bucket/dir/",
	} {
		t.Run("invalid "+url, func(t *testing.T) {
			_, _, err := gcs.ParseURL(url)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}

func TestGCSSnapshotStore(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")
	ctx := context.Background()

	testhelper.TestAll(t, func() interfaces.SnapshotStore {
		url := fmt.Sprintf("gs://%s/autorelease-test/%s.json", bucket, uuid.NewString())
		return gt.R1(gcs.New(ctx, url)).NoError(t)
	})
}
