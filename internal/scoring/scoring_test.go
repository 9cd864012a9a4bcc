package scoring

import (
	"encoding/json"
	"testing"

	"github.com/cmmc-tools/cmmc-assess/internal/assessment"
	"github.com/cmmc-tools/cmmc-assess/internal/catalog"
)

func allAs(s assessment.Status) assessment.Responses {
	r := assessment.Responses{}
	for _, c := range catalog.Controls() {
		r[c.ID] = s
	}
	return r
}

func totalWeight() int {
	sum := 0
	for _, c := range catalog.Controls() {
		sum += c.Weight
	}
	return sum
}

// checkInvariants verifies the totals and partition properties hold.
func checkInvariants(t *testing.T, r Result) {
	t.Helper()
	if r.TotalControls != catalog.Len() {
		t.Errorf("totalControls = %d, want %d", r.TotalControls, catalog.Len())
	}
	if sum := r.Met + r.Partial + r.NotMet + r.NA + r.Unassessed; sum != r.TotalControls {
		t.Errorf("bucket counters sum to %d, want %d", sum, r.TotalControls)
	}
	if len(r.Domains) != len(catalog.Domains()) {
		t.Errorf("expected %d domain entries, got %d", len(catalog.Domains()), len(r.Domains))
	}
	var total, met, partial, notMet, na, unassessed int
	for abbr, d := range r.Domains {
		if d.Met+d.Partial+d.NotMet+d.NA+d.Unassessed != d.Total {
			t.Errorf("domain %s counters do not sum to total %d", abbr, d.Total)
		}
		if d.Total != len(catalog.DomainControls(abbr)) {
			t.Errorf("domain %s total = %d, want %d", abbr, d.Total, len(catalog.DomainControls(abbr)))
		}
		total += d.Total
		met += d.Met
		partial += d.Partial
		notMet += d.NotMet
		na += d.NA
		unassessed += d.Unassessed
	}
	if total != r.TotalControls {
		t.Errorf("domain totals sum to %d, want %d", total, r.TotalControls)
	}
	if met != r.Met || partial != r.Partial || notMet != r.NotMet || na != r.NA || unassessed != r.Unassessed {
		t.Error("domain counters disagree with overall counters")
	}
	if r.L1.Total+r.L2.Total != r.TotalControls {
		t.Errorf("level totals %d+%d != %d", r.L1.Total, r.L2.Total, r.TotalControls)
	}
}

func TestEmptyResponses(t *testing.T) {
	for _, in := range []assessment.Responses{nil, {}} {
		r := Calculate(in)
		checkInvariants(t, r)

		if r.Unassessed != r.TotalControls {
			t.Errorf("unassessed = %d, want %d", r.Unassessed, r.TotalControls)
		}
		if r.Met != 0 || r.Partial != 0 || r.NotMet != 0 || r.NA != 0 {
			t.Errorf("unexpected counters %+v", r)
		}
		if want := MaxSPRS - totalWeight(); r.SPRS != want {
			t.Errorf("sprs = %d, want %d", r.SPRS, want)
		}
		if r.SPRS != -250 {
			t.Errorf("sprs = %d, want -250 for the reference catalog", r.SPRS)
		}
		if r.L1.Achieved || r.L2.Achieved {
			t.Error("no level should be achieved with no responses")
		}
		if r.L1.Total != 17 || r.L2.Total != 93 {
			t.Errorf("level totals = %d/%d, want 17/93", r.L1.Total, r.L2.Total)
		}
	}
}

func TestAllMetAndAllNA(t *testing.T) {
	for _, s := range []assessment.Status{assessment.StatusMet, assessment.StatusNA} {
		r := Calculate(allAs(s))
		checkInvariants(t, r)
		if r.SPRS != MaxSPRS {
			t.Errorf("%s: sprs = %d, want %d", s, r.SPRS, MaxSPRS)
		}
		if !r.L1.Achieved || !r.L2.Achieved {
			t.Errorf("%s: both levels should be achieved", s)
		}
		if r.Unassessed != 0 || r.Partial != 0 || r.NotMet != 0 {
			t.Errorf("%s: unexpected counters %+v", s, r)
		}
		if r.L1.Percent() != 100 || r.L2.Percent() != 100 {
			t.Errorf("%s: expected 100%% on both levels", s)
		}
	}
}

func TestPartialChargesFullWeight(t *testing.T) {
	partial := Calculate(allAs(assessment.StatusPartial))
	notMet := Calculate(allAs(assessment.StatusNotMet))
	empty := Calculate(nil)
	checkInvariants(t, partial)
	checkInvariants(t, notMet)

	if partial.SPRS != notMet.SPRS || partial.SPRS != empty.SPRS {
		t.Errorf("partial %d, not-met %d and unassessed %d should score the same",
			partial.SPRS, notMet.SPRS, empty.SPRS)
	}
	if partial.Partial != partial.TotalControls {
		t.Errorf("partial = %d, want %d", partial.Partial, partial.TotalControls)
	}
}

func TestUnknownTokenIsUnassessed(t *testing.T) {
	got, err := json.Marshal(Calculate(assessment.Responses{"AC.L1-3.1.1": "bogus"}))
	if err != nil {
		t.Fatal(err)
	}
	want, err := json.Marshal(Calculate(assessment.Responses{}))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Errorf("bogus token scored differently:\n got %s\nwant %s", got, want)
	}
}

func TestExtraneousKeysIgnored(t *testing.T) {
	r := Calculate(assessment.Responses{"NOT-A-CONTROL": "met", "AC.L1-3.1.1": "met"})
	checkInvariants(t, r)
	if r.Met != 1 {
		t.Errorf("met = %d, want 1", r.Met)
	}
	if r.SPRS != -245 {
		t.Errorf("sprs = %d, want -245", r.SPRS)
	}
}

func TestMixedResponses(t *testing.T) {
	responses := allAs(assessment.StatusMet)
	responses["AC.L1-3.1.1"] = assessment.StatusPartial // L1, weight 5
	responses["AC.L2-3.1.6"] = assessment.StatusNotMet  // L2, weight 1
	responses["SC.L2-3.13.11"] = assessment.StatusNA    // L2, weight 5
	delete(responses, "PE.L1-3.10.3")                   // L1, weight 1

	r := Calculate(responses)
	checkInvariants(t, r)

	if r.SPRS != MaxSPRS-5-1-1 {
		t.Errorf("sprs = %d, want %d", r.SPRS, MaxSPRS-7)
	}
	if r.Partial != 1 || r.NotMet != 1 || r.NA != 1 || r.Unassessed != 1 {
		t.Errorf("unexpected counters %+v", r)
	}
	if r.L1.Achieved {
		t.Error("level 1 should not be achieved")
	}
	if r.L2.Achieved {
		t.Error("level 2 should not be achieved")
	}
	if r.L1.Met != r.L1.Total-2 {
		t.Errorf("l1 met = %d, want %d", r.L1.Met, r.L1.Total-2)
	}
	if r.L2.Met != r.L2.Total-1 {
		t.Errorf("l2 met = %d, want %d", r.L2.Met, r.L2.Total-1)
	}

	ac := r.Domains["AC"]
	if ac.Partial != 1 || ac.NotMet != 1 || ac.Met != 20 || ac.Total != 22 {
		t.Errorf("AC breakdown = %+v", ac)
	}
	if sc := r.Domains["SC"]; sc.NA != 1 || sc.Met != 15 {
		t.Errorf("SC breakdown = %+v", sc)
	}
	if pe := r.Domains["PE"]; pe.Unassessed != 1 {
		t.Errorf("PE breakdown = %+v", pe)
	}
}

func TestLevelOneOnly(t *testing.T) {
	responses := assessment.Responses{}
	for _, c := range catalog.Controls() {
		if c.Level == 1 {
			responses[c.ID] = assessment.StatusMet
		}
	}
	r := Calculate(responses)
	if !r.L1.Achieved {
		t.Error("level 1 should be achieved")
	}
	if r.L2.Achieved {
		t.Error("level 2 should not be achieved")
	}
	if r.Level(1) != r.L1 || r.Level(2) != r.L2 {
		t.Error("Level accessor mismatch")
	}
}

func TestDeterministic(t *testing.T) {
	in := assessment.Responses{"AC.L1-3.1.1": "met", "IA.L2-3.5.3": "partial", "RA.L2-3.11.2": "not-met"}
	copyIn := assessment.Responses{}
	for k, v := range in {
		copyIn[k] = v
	}
	a, _ := json.Marshal(Calculate(in))
	b, _ := json.Marshal(Calculate(copyIn))
	c, _ := json.Marshal(Calculate(in))
	if string(a) != string(b) || string(a) != string(c) {
		t.Error("Calculate is not deterministic")
	}
}

func TestResultJSONFields(t *testing.T) {
	b, err := json.Marshal(Calculate(nil))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"sprs", "totalControls", "met", "partial", "notMet", "na", "unassessed", "l1", "l2", "domains"} {
		if _, ok := m[k]; !ok {
			t.Errorf("missing field %q in %s", k, b)
		}
	}
	l1 := m["l1"].(map[string]interface{})
	for _, k := range []string{"met", "total", "achieved"} {
		if _, ok := l1[k]; !ok {
			t.Errorf("missing l1 field %q", k)
		}
	}
	ac := m["domains"].(map[string]interface{})["AC"].(map[string]interface{})
	for _, k := range []string{"met", "partial", "notMet", "na", "unassessed", "total"} {
		if _, ok := ac[k]; !ok {
			t.Errorf("missing domain field %q", k)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		l    LevelScore
		want int
	}{
		{LevelScore{Met: 0, Total: 0}, 0},
		{LevelScore{Met: 1, Total: 3}, 33},
		{LevelScore{Met: 2, Total: 3}, 67},
		{LevelScore{Met: 17, Total: 17}, 100},
	}
	for _, tt := range tests {
		if got := tt.l.Percent(); got != tt.want {
			t.Errorf("%+v.Percent() = %d, want %d", tt.l, got, tt.want)
		}
	}
}
