//
// Package scoring computes the SPRS score, level achievement and
// per-domain breakdown for a set of assessment responses.
//
// Scoring walks the catalog, never the response map, so each control is
// counted exactly once whatever keys the caller sent.
//
package scoring

import (
	"github.com/cmmc-tools/cmmc-assess/internal/assessment"
	"github.com/cmmc-tools/cmmc-assess/internal/catalog"
)

// MaxSPRS is the SPRS ceiling every assessment starts from.
const MaxSPRS = 110

// Bucket is the classification of one control's response.
type Bucket int

const (
	Unassessed Bucket = iota
	Met
	Partial
	NotMet
	NA
)

//
// Classify maps a response token to its bucket. Absent and unrecognised
// tokens are both Unassessed.
//
func Classify(s assessment.Status) Bucket {
	switch s {
	case assessment.StatusMet:
		return Met
	case assessment.StatusPartial:
		return Partial
	case assessment.StatusNotMet:
		return NotMet
	case assessment.StatusNA:
		return NA
	}
	return Unassessed
}

//
// Satisfied reports whether the bucket counts as met for both the SPRS
// deduction and level achievement. N/A is treated as met.
//
func (b Bucket) Satisfied() bool {
	return b == Met || b == NA
}

//
// Deduction is the SPRS points lost for control c in bucket b: nothing
// when satisfied, otherwise the control's full weight. Partial earns no
// credit.
//
func Deduction(c catalog.Control, b Bucket) int {
	if b.Satisfied() {
		return 0
	}
	return c.Weight
}

// LevelScore is the achievement tally for one CMMC level.
type LevelScore struct {
	Met      int  `json:"met"`
	Total    int  `json:"total"`
	Achieved bool `json:"achieved"`
}

//
// Percent is the share of the level's controls counted as met, rounded
// to the nearest whole percent. An empty level is 0%.
//
func (l LevelScore) Percent() int {
	if l.Total == 0 {
		return 0
	}
	return (l.Met*100 + l.Total/2) / l.Total
}

// DomainScore holds the five bucket counters for one domain.
type DomainScore struct {
	Met        int `json:"met"`
	Partial    int `json:"partial"`
	NotMet     int `json:"notMet"`
	NA         int `json:"na"`
	Unassessed int `json:"unassessed"`
	Total      int `json:"total"`
}

func (d *DomainScore) add(b Bucket) {
	switch b {
	case Met:
		d.Met++
	case Partial:
		d.Partial++
	case NotMet:
		d.NotMet++
	case NA:
		d.NA++
	default:
		d.Unassessed++
	}
}

//
// Result is the full scoring outcome. It is derived data and is
// recomputed from scratch on every call.
//
type Result struct {
	SPRS          int                    `json:"sprs"`
	TotalControls int                    `json:"totalControls"`
	Met           int                    `json:"met"`
	Partial       int                    `json:"partial"`
	NotMet        int                    `json:"notMet"`
	NA            int                    `json:"na"`
	Unassessed    int                    `json:"unassessed"`
	L1            LevelScore             `json:"l1"`
	L2            LevelScore             `json:"l2"`
	Domains       map[string]DomainScore `json:"domains"`
}

// Level returns the tally for level 1 or 2.
func (r Result) Level(n int) LevelScore {
	if n == 1 {
		return r.L1
	}
	return r.L2
}

//
// Calculate scores responses against the catalog. A nil map is the
// same as an empty one: every control is unassessed.
//
func Calculate(responses assessment.Responses) Result {
	var (
		overall   DomainScore
		deduction int
		l1, l2    LevelScore
	)

	domains := make(map[string]DomainScore)
	for _, d := range catalog.Domains() {
		domains[d.Abbr] = DomainScore{}
	}

	for _, c := range catalog.Controls() {
		b := Classify(responses[c.ID])

		dom := domains[c.Domain]
		dom.Total++
		dom.add(b)
		domains[c.Domain] = dom

		overall.Total++
		overall.add(b)
		deduction += Deduction(c, b)

		lvl := &l2
		if c.Level == 1 {
			lvl = &l1
		}
		lvl.Total++
		if b.Satisfied() {
			lvl.Met++
		}
	}

	l1.Achieved = l1.Met == l1.Total
	l2.Achieved = l2.Met == l2.Total

	return Result{
		SPRS:          MaxSPRS - deduction,
		TotalControls: overall.Total,
		Met:           overall.Met,
		Partial:       overall.Partial,
		NotMet:        overall.NotMet,
		NA:            overall.NA,
		Unassessed:    overall.Unassessed,
		L1:            l1,
		L2:            l2,
		Domains:       domains,
	}
}
