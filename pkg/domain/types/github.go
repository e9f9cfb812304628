package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	BranchName          string
	CommitSHA           string
	TagName             string
	CIState             string
	RunID               string
)

// CIState values reported by the combined status API. CIStateUnknown is
// never returned by GitHub; it marks a probe that could not get an answer.
const (
	CIStateSuccess CIState = "success"
	CIStatePending CIState = "pending"
	CIStateFailure CIState = "failure"
	CIStateError   CIState = "error"
	CIStateUnknown CIState = "unknown"
)

// ParseCIState maps a raw state string into the closed set of CIState.
// Anything GitHub is not documented to return becomes CIStateUnknown.
func ParseCIState(s string) CIState {
	switch state := CIState(s); state {
	case CIStateSuccess, CIStatePending, CIStateFailure, CIStateError:
		return state
	default:
		return CIStateUnknown
	}
}

func (x CIState) String() string {
	return string(x)
}

func (x BranchName) String() string {
	return string(x)
}

func (x CommitSHA) String() string {
	return string(x)
}

func (x TagName) String() string {
	return string(x)
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
