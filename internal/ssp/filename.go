package ssp

import (
	"regexp"
	"time"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	// path separators, characters reserved on windows, and controls
	unportable = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f\x7f]`)
)

//
// FileName is the download name for an SSP:
// SSP_<org name, whitespace runs as "_">_<UTC date>.txt.
// An empty org name is written as "SSP". Characters that are not safe in
// a single path element become "_", so the name never leaves the
// directory it is joined to.
//
func FileName(orgName string, t time.Time) string {
	if orgName == "" {
		orgName = "SSP"
	}
	name := whitespace.ReplaceAllString(orgName, "_")
	name = unportable.ReplaceAllString(name, "_")
	return "SSP_" + name + "_" + t.UTC().Format("2006-01-02") + ".txt"
}
