package model

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/m-mizutani/autorelease/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ReleaseLedger collects the decisions of one prepare run in the order they
// were made.
type ReleaseLedger struct {
	Releases []ReleaseDecision `json:"releases"`
}

func NewReleaseLedger() *ReleaseLedger {
	return &ReleaseLedger{Releases: []ReleaseDecision{}}
}

// Add appends decision without deduplication
func (x *ReleaseLedger) Add(decision ReleaseDecision) error {
	if err := decision.Validate(); err != nil {
		return goerr.Wrap(err, "invalid release decision")
	}
	x.Releases = append(x.Releases, decision)
	return nil
}

func (x *ReleaseLedger) Len() int {
	return len(x.Releases)
}

// ReadyReleases returns decisions with Ready set, keeping order
func (x *ReleaseLedger) ReadyReleases() []ReleaseDecision {
	var ready []ReleaseDecision
	for _, r := range x.Releases {
		if r.Ready {
			ready = append(ready, r)
		}
	}
	return ready
}

// EncodeLedger writes ledger as an indented JSON document
func EncodeLedger(w io.Writer, ledger *ReleaseLedger) error {
	releases := ledger.Releases
	if releases == nil {
		releases = []ReleaseDecision{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&ReleaseLedger{Releases: releases}); err != nil {
		return goerr.Wrap(err, "failed to encode release ledger")
	}
	return nil
}

// DecodeLedger reads a whole ledger document. Any content that does not
// form a complete ledger is reported as types.ErrMalformedSnapshot.
func DecodeLedger(r io.Reader) (*ReleaseLedger, error) {
	var raw struct {
		Releases *[]ReleaseDecision `json:"releases"`
	}

	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedSnapshot, "failed to decode release ledger", goerr.V("error", err.Error()))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(types.ErrMalformedSnapshot, "unexpected data after release ledger")
	}
	if raw.Releases == nil {
		return nil, goerr.Wrap(types.ErrMalformedSnapshot, "releases field is missing")
	}

	ledger := NewReleaseLedger()
	for i, decision := range *raw.Releases {
		if err := ledger.Add(decision); err != nil {
			return nil, goerr.Wrap(types.ErrMalformedSnapshot, "invalid release decision in ledger",
				goerr.V("index", i),
				goerr.V("error", err.Error()),
			)
		}
	}

	return ledger, nil
}
