//
// Package assessment defines the per-request inputs of a self-assessment:
// the status recorded against each control, the organization metadata
// used for the SSP header, and the free-text implementation notes.
//
// Inputs arrive as loosely shaped JSON. Normalization is fail-soft: any
// part of the input with the wrong shape becomes an empty value. Strict
// rejection is a separate step (Validate) applied at the API boundary.
//
package assessment

import (
	"github.com/pkg/errors"
)

// Status is the assessor's finding for one control.
type Status string

const (
	StatusMet     Status = "met"
	StatusPartial Status = "partial"
	StatusNotMet  Status = "not-met"
	StatusNA      Status = "na"
)

// Valid reports whether s is one of the four recognised tokens.
func (s Status) Valid() bool {
	switch s {
	case StatusMet, StatusPartial, StatusNotMet, StatusNA:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

//
// ParseStatus accepts exactly the four wire tokens; matching is case
// sensitive because the tokens are also map values in exported files.
//
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", errors.Errorf("invalid status: %s", s)
	}
	return st, nil
}

//
// Responses maps control id to status. A missing id means the control
// has not been assessed. Values are kept as received, so a token that
// is not Valid() may be present; scoring treats it as unassessed.
//
type Responses map[string]Status

// Notes maps control id to an implementation note.
type Notes map[string]string

//
// OrgInfo is the organization metadata printed in the SSP header.
// None of it affects the score.
//
type OrgInfo struct {
	OrgName        string `json:"orgName,omitempty" yaml:"orgName,omitempty"`
	CageCode       string `json:"cageCode,omitempty" yaml:"cageCode,omitempty"`
	AssessorName   string `json:"assessorName,omitempty" yaml:"assessorName,omitempty"`
	AssessDate     string `json:"assessDate,omitempty" yaml:"assessDate,omitempty"`
	SystemName     string `json:"systemName,omitempty" yaml:"systemName,omitempty"`
	SystemBoundary string `json:"systemBoundary,omitempty" yaml:"systemBoundary,omitempty"`
	// 1 or 2; zero means not supplied
	TargetLevel int `json:"targetLevel,omitempty" yaml:"targetLevel,omitempty"`
}

// DefaultTargetLevel is used when no valid target level was supplied.
const DefaultTargetLevel = 2

// Level returns the target CMMC level, defaulting to level 2.
func (o OrgInfo) Level() int {
	if o.TargetLevel == 1 || o.TargetLevel == 2 {
		return o.TargetLevel
	}
	return DefaultTargetLevel
}

//
// Assessment bundles everything needed to score an assessment and
// render its SSP.
//
type Assessment struct {
	Responses Responses `json:"responses"`
	OrgInfo   OrgInfo   `json:"orgInfo"`
	Notes     Notes     `json:"notes"`
}
