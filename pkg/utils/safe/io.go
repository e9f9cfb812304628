package safe

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/autorelease/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Remove removes the file and logs error if any. A file that is already gone is not an error.
func Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Default().Warn("Fail to remove file", slog.String("path", path), slog.Any("error", err))
	}
}
