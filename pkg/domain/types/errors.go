package types

import "errors"

var (
	// ErrInvalidOption is returned when a flag or config value is not acceptable
	ErrInvalidOption = errors.New("invalid option")

	// ErrCredential is returned when the GitHub credential is missing, malformed or rejected
	ErrCredential = errors.New("credential failure")

	// ErrTagResolution is returned when no release tag can anchor a branch's history
	ErrTagResolution = errors.New("release tag resolution failure")

	// ErrProbeUnavailable is returned when the commit status API did not answer after all retries
	ErrProbeUnavailable = errors.New("commit status probe unavailable")

	// ErrMissingSnapshot is returned when the ledger snapshot does not exist
	ErrMissingSnapshot = errors.New("ledger snapshot is missing")

	// ErrMalformedSnapshot is returned when the ledger snapshot can not be parsed
	ErrMalformedSnapshot = errors.New("ledger snapshot is malformed")

	// ErrInvalidGitHubData is returned when GitHub responds with data of unexpected shape
	ErrInvalidGitHubData = errors.New("invalid GitHub data")
)
