package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/autorelease/pkg/domain/interfaces"
	"github.com/m-mizutani/autorelease/pkg/domain/model"
	"github.com/m-mizutani/autorelease/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Message is a rendered notification for one release decision
type Message struct {
	Title string
	Body  string
}

// Render builds a human readable message from decision
func Render(decision model.ReleaseDecision) Message {
	if decision.Ready {
		return Message{
			Title: fmt.Sprintf("Release branch %s is ready for release", decision.Branch),
			Body: fmt.Sprintf("Commit %s passed CI with status [%s]. %d commit(s) since the last release.",
				decision.CommitSHA, decision.CIStatus, decision.NumPatches),
		}
	}

	if decision.CommitSHA == "" {
		return Message{
			Title: fmt.Sprintf("Release branch %s has nothing to release", decision.Branch),
			Body:  "No commits since the last release.",
		}
	}

	return Message{
		Title: fmt.Sprintf("Release branch %s is not ready for release", decision.Branch),
		Body: fmt.Sprintf("CI status of commit %s is [%s]. %d commit(s) since the last release. Check CI status of the branch.",
			decision.CommitSHA, decision.CIStatus, decision.NumPatches),
	}
}

// Writer prints messages to w, one block per decision
type Writer struct {
	w io.Writer
}

var _ interfaces.Notifier = (*Writer)(nil)

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (x *Writer) Notify(ctx context.Context, decision model.ReleaseDecision) error {
	msg := Render(decision)

	var b strings.Builder
	b.WriteString("## " + msg.Title + "\n\n")
	b.WriteString(msg.Body + "\n\n")

	if _, err := io.WriteString(x.w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write notification", goerr.V("branch", decision.Branch))
	}

	logging.From(ctx).Info("notified release decision",
		slog.String("branch", decision.Branch.String()),
		slog.String("title", msg.Title),
	)
	return nil
}
