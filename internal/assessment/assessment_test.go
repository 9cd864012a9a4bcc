package assessment

import (
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"met", StatusMet, false},
		{"partial", StatusPartial, false},
		{"not-met", StatusNotMet, false},
		{"na", StatusNA, false},
		{"MET", "", true},
		{"bogus", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFailSoft(t *testing.T) {
	inputs := []string{
		``,
		`not json`,
		`null`,
		`[]`,
		`42`,
		`"responses"`,
		`{"responses": [], "orgInfo": "acme", "notes": 7}`,
		`{"responses": null, "orgInfo": null, "notes": null}`,
	}
	for _, in := range inputs {
		a := Parse([]byte(in))
		if a.Responses == nil || len(a.Responses) != 0 {
			t.Errorf("Parse(%q) responses = %v, want empty map", in, a.Responses)
		}
		if a.Notes == nil || len(a.Notes) != 0 {
			t.Errorf("Parse(%q) notes = %v, want empty map", in, a.Notes)
		}
		if a.OrgInfo != (OrgInfo{}) {
			t.Errorf("Parse(%q) orgInfo = %+v, want zero", in, a.OrgInfo)
		}
	}
}

func TestParseKeepsTokensAsGiven(t *testing.T) {
	a := Parse([]byte(`{"responses": {
		"AC.L1-3.1.1": "met",
		"AC.L1-3.1.2": "bogus",
		"AC.L2-3.1.3": 5,
		"AC.L2-3.1.4": null,
		"XX.L9-1": "met"
	}}`))

	if a.Responses["AC.L1-3.1.1"] != StatusMet {
		t.Errorf("expected met, got %q", a.Responses["AC.L1-3.1.1"])
	}
	if a.Responses["AC.L1-3.1.2"] != "bogus" {
		t.Errorf("expected unknown token kept, got %q", a.Responses["AC.L1-3.1.2"])
	}
	if _, ok := a.Responses["AC.L2-3.1.3"]; ok {
		t.Error("non-string status should be dropped")
	}
	if _, ok := a.Responses["AC.L2-3.1.4"]; ok {
		t.Error("null status should be dropped")
	}
	if len(a.Responses) != 3 {
		t.Errorf("expected 3 responses, got %d", len(a.Responses))
	}
}

func TestParseOrgInfoAndNotes(t *testing.T) {
	a := Parse([]byte(`{
		"orgInfo": {"orgName": "Acme", "cageCode": 12345, "assessorName": "", "targetLevel": 1},
		"notes": {"AC.L1-3.1.1": "note", "AC.L1-3.1.2": "", "AC.L2-3.1.3": 0, "AC.L2-3.1.4": false, "AC.L2-3.1.5": 3}
	}`))

	if a.OrgInfo.OrgName != "Acme" || a.OrgInfo.CageCode != "12345" || a.OrgInfo.AssessorName != "" {
		t.Errorf("unexpected org info %+v", a.OrgInfo)
	}
	if a.OrgInfo.Level() != 1 {
		t.Errorf("expected level 1, got %d", a.OrgInfo.Level())
	}
	want := Notes{"AC.L1-3.1.1": "note", "AC.L2-3.1.5": "3"}
	if len(a.Notes) != len(want) {
		t.Fatalf("notes = %v, want %v", a.Notes, want)
	}
	for k, v := range want {
		if a.Notes[k] != v {
			t.Errorf("notes[%s] = %q, want %q", k, a.Notes[k], v)
		}
	}
}

func TestTargetLevel(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{`{}`, 2},
		{`{"orgInfo": {"targetLevel": 3}}`, 2},
		{`{"orgInfo": {"targetLevel": "1"}}`, 1},
		{`{"orgInfo": {"targetLevel": "3"}}`, 2},
		{`{"orgInfo": {"targetLevel": true}}`, 2},
		{`{"orgInfo": {"targetLevel": 1}}`, 1},
		{`{"targetLevel": 1}`, 1},
		{`{"targetLevel": 1, "orgInfo": {"targetLevel": 2}}`, 2},
	}
	for _, tt := range tests {
		if got := Parse([]byte(tt.body)).OrgInfo.Level(); got != tt.want {
			t.Errorf("Parse(%s) level = %d, want %d", tt.body, got, tt.want)
		}
	}
}

func TestValidateResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty object", `{}`, ""},
		{"valid", `{"AC.L1-3.1.1": "met", "SI.L2-3.14.7": "na"}`, ""},
		{"null", `null`, "responses must be a non-null object"},
		{"array", `["met"]`, "responses must be a non-null object"},
		{"string", `"met"`, "responses must be a non-null object"},
		{"unknown id", `{"AC.L1-3.1.1": "met", "ZZ.L1-9.9.9": "met"}`, "Unknown control ID: ZZ.L1-9.9.9"},
		{"bad token", `{"AC.L1-3.1.1": "done"}`, `Invalid status "done" for control AC.L1-3.1.1. Must be met|partial|not-met|na`},
		{"non-string token", `{"AC.L1-3.1.1": 1}`, `Invalid status "1" for control AC.L1-3.1.1. Must be met|partial|not-met|na`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResponses(gjson.Parse(tt.body))
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q", tt.want)
			}
			if !IsValidationError(err) {
				t.Errorf("expected ValidationError, got %T", err)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		body     string
		required bool
		want     string
	}{
		{`{"responses": {}}`, true, ""},
		{`{}`, true, "responses must be a non-null object"},
		{`{}`, false, ""},
		{`{"responses": null}`, false, ""},
		{`{"responses": []}`, false, "responses must be a non-null object"},
		{`{"orgInfo": []}`, false, "orgInfo must be an object"},
		{`{"notes": "x"}`, false, "notes must be an object"},
		{`{"orgInfo": {"targetLevel": 3}}`, false, ""},
		{`{"orgInfo": {"targetLevel": "2"}}`, false, ""},
		{`{"targetLevel": 0}`, false, ""},
		{`[]`, false, "request body must be a JSON object"},
		{`{`, false, "request body must be valid JSON"},
	}
	for _, tt := range tests {
		err := ValidateDocument([]byte(tt.body), tt.required)
		got := ""
		if err != nil {
			got = err.Error()
		}
		if got != tt.want {
			t.Errorf("ValidateDocument(%s, %v) = %q, want %q", tt.body, tt.required, got, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	for _, name := range []string{"acme.yaml", "acme.json"} {
		t.Run(name, func(t *testing.T) {
			a, body, err := LoadFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatal(err)
			}
			if !gjson.ValidBytes(body) {
				t.Errorf("returned body is not json: %s", body)
			}
			if a.OrgInfo.OrgName != "Acme Widgets Inc" {
				t.Errorf("orgName = %q", a.OrgInfo.OrgName)
			}
			if a.Responses["AC.L1-3.1.1"] != StatusMet {
				t.Errorf("AC.L1-3.1.1 = %q", a.Responses["AC.L1-3.1.1"])
			}
		})
	}

	a, _, err := LoadFile(filepath.Join("testdata", "acme.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if a.OrgInfo.Level() != 1 {
		t.Errorf("expected top-level targetLevel 1, got %d", a.OrgInfo.Level())
	}
	if a.OrgInfo.AssessDate != "2026-10-01" {
		t.Errorf("assessDate = %q", a.OrgInfo.AssessDate)
	}
	if len(a.Notes) != 1 {
		t.Errorf("expected 1 note, got %d", len(a.Notes))
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, _, err := LoadFile(filepath.Join("testdata", "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	_, _, err := LoadFile(filepath.Join("testdata", "bad.yaml"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsValidationError(err) {
		t.Errorf("expected wrapped ValidationError, got %v", err)
	}
}
