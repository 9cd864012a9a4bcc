//
// Package ssp renders a plain-text System Security Plan from an
// assessment. The embedded SPRS score comes from the scoring package so
// the document always agrees with the score API.
//
package ssp

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmmc-tools/cmmc-assess/internal/assessment"
	"github.com/cmmc-tools/cmmc-assess/internal/catalog"
	"github.com/cmmc-tools/cmmc-assess/internal/scoring"
)

const (
	ruleWidth   = 72
	notProvided = "Not Provided"
	// matches the browser's locale timestamp in the US locale
	timestampLayout = "1/2/2006, 3:04:05 PM"
)

var (
	heavyRule = strings.Repeat("=", ruleWidth)
	lightRule = strings.Repeat("-", ruleWidth)
)

//
// Generate renders the SSP for a, stamped with the current local time.
//
func Generate(a assessment.Assessment) string {
	return Render(a, time.Now())
}

//
// Render renders the SSP for a with the given generation time. Apart
// from the Generated line, output depends only on a.
//
func Render(a assessment.Assessment, generated time.Time) string {
	var sb strings.Builder
	org := a.OrgInfo

	sb.WriteString(heavyRule + "\n")
	sb.WriteString("         SYSTEM SECURITY PLAN (SSP)\n")
	sb.WriteString("         CMMC 2.0 Self-Assessment\n")
	sb.WriteString(heavyRule + "\n\n")

	fmt.Fprintf(&sb, "Organization:    %s\n", orDefault(org.OrgName))
	fmt.Fprintf(&sb, "CAGE Code:       %s\n", orDefault(org.CageCode))
	fmt.Fprintf(&sb, "Assessor:        %s\n", orDefault(org.AssessorName))
	fmt.Fprintf(&sb, "Assessment Date: %s\n", orDefault(org.AssessDate))
	fmt.Fprintf(&sb, "System Name:     %s\n", orDefault(org.SystemName))
	fmt.Fprintf(&sb, "Target Level:    CMMC Level %d\n", org.Level())
	fmt.Fprintf(&sb, "Generated:       %s\n\n", generated.Format(timestampLayout))

	sb.WriteString(lightRule + "\n")
	sb.WriteString("SYSTEM ENVIRONMENT & BOUNDARY\n")
	sb.WriteString(lightRule + "\n")
	sb.WriteString(orDefault(org.SystemBoundary) + "\n\n")

	score := scoring.Calculate(a.Responses)
	sb.WriteString(lightRule + "\n")
	fmt.Fprintf(&sb, "SPRS SCORE: %d / %d\n", score.SPRS, scoring.MaxSPRS)
	sb.WriteString(lightRule + "\n\n")

	for _, d := range catalog.Domains() {
		controls := catalog.DomainControls(d.Abbr)
		sb.WriteString("\n" + heavyRule + "\n")
		fmt.Fprintf(&sb, "%s - %s (%d requirements)\n", d.Abbr, strings.ToUpper(d.Name), len(controls))
		sb.WriteString(heavyRule + "\n\n")

		for _, c := range controls {
			b := scoring.Classify(a.Responses[c.ID])
			fmt.Fprintf(&sb, "%s [%s] %s\n", Label(b), c.LevelTag(), c.ID)
			fmt.Fprintf(&sb, "  %s\n", c.Text)
			if note := a.Notes[c.ID]; note != "" {
				fmt.Fprintf(&sb, "  Implementation Notes: %s\n", cleanNote(note))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n" + heavyRule + "\n")
	sb.WriteString("END OF SYSTEM SECURITY PLAN\n")
	sb.WriteString(heavyRule + "\n")

	return sb.String()
}

//
// Label is the fixed-width bracketed status tag printed before each
// control, e.g. "[ PARTIALLY MET ]".
//
func Label(b scoring.Bucket) string {
	var s string
	switch b {
	case scoring.Met:
		s = "MET"
	case scoring.Partial:
		s = "PARTIALLY MET"
	case scoring.NotMet:
		s = "NOT MET"
	case scoring.NA:
		s = "N/A"
	default:
		s = "NOT ASSESSED"
	}
	return fmt.Sprintf("[ %-13s ]", s)
}

func orDefault(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

//
// cleanNote keeps note text verbatim except for control characters,
// and indents continuation lines so a note line can never begin at
// column 0 and pass for one of the document's rules.
//
func cleanNote(note string) string {
	note = strings.ReplaceAll(note, "\r\n", "\n")
	note = strings.ReplaceAll(note, "\r", "\n")
	note = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, note)
	return strings.ReplaceAll(note, "\n", "\n    ")
}
