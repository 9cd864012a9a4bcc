package assessment

import (
	"strings"

	"github.com/tidwall/gjson"
)

//
// Parse normalizes a raw JSON document of the form
// {responses, orgInfo, notes[, targetLevel]} into an Assessment.
// It never fails: invalid JSON or a non-object document yields an
// empty Assessment, and each member is coerced independently.
//
// A top-level targetLevel (the exported assessment file format) is
// used when orgInfo does not carry one.
//
func Parse(body []byte) Assessment {
	if !gjson.ValidBytes(body) {
		return Assessment{Responses: Responses{}, Notes: Notes{}}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Assessment{Responses: Responses{}, Notes: Notes{}}
	}

	a := Assessment{
		Responses: ResponsesFrom(root.Get("responses")),
		OrgInfo:   OrgInfoFrom(root.Get("orgInfo")),
		Notes:     NotesFrom(root.Get("notes")),
	}
	if a.OrgInfo.TargetLevel == 0 {
		a.OrgInfo.TargetLevel = levelFrom(root.Get("targetLevel"))
	}
	return a
}

//
// ResponsesFrom coerces a JSON value into Responses. Anything other
// than an object gives an empty map; members whose value is not a
// string are dropped, which scores them as unassessed.
//
func ResponsesFrom(r gjson.Result) Responses {
	out := Responses{}
	if !r.IsObject() {
		return out
	}
	r.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			out[key.String()] = Status(value.Str)
		}
		return true
	})
	return out
}

//
// NotesFrom coerces a JSON value into Notes. Empty, null, false and
// zero values are dropped; other scalars keep their text form.
//
func NotesFrom(r gjson.Result) Notes {
	out := Notes{}
	if !r.IsObject() {
		return out
	}
	r.ForEach(func(key, value gjson.Result) bool {
		if note, ok := text(value); ok {
			out[key.String()] = note
		}
		return true
	})
	return out
}

// OrgInfoFrom coerces a JSON value into OrgInfo.
func OrgInfoFrom(r gjson.Result) OrgInfo {
	if !r.IsObject() {
		return OrgInfo{}
	}
	field := func(name string) string {
		s, _ := text(r.Get(name))
		return s
	}
	return OrgInfo{
		OrgName:        field("orgName"),
		CageCode:       field("cageCode"),
		AssessorName:   field("assessorName"),
		AssessDate:     field("assessDate"),
		SystemName:     field("systemName"),
		SystemBoundary: field("systemBoundary"),
		TargetLevel:    levelFrom(r.Get("targetLevel")),
	}
}

// levelFrom accepts 1 or 2 as a number or a numeric string.
func levelFrom(r gjson.Result) int {
	switch r.Type {
	case gjson.Number:
		if r.Num == 1 || r.Num == 2 {
			return int(r.Num)
		}
	case gjson.String:
		switch strings.TrimSpace(r.Str) {
		case "1":
			return 1
		case "2":
			return 2
		}
	}
	return 0
}

// text returns the printable form of a scalar, false for falsy values.
func text(r gjson.Result) (string, bool) {
	switch r.Type {
	case gjson.String:
		return r.Str, r.Str != ""
	case gjson.Number:
		return r.Raw, r.Num != 0
	case gjson.True:
		return "true", true
	}
	return "", false
}
