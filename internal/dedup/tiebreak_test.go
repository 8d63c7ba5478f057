package dedup_test

import (
	"strings"
	"testing"

	"github.com/ybdn/DoublonsIDPP/internal/dedup"
	"github.com/ybdn/DoublonsIDPP/internal/logging"
	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
	"github.com/ybdn/DoublonsIDPP/internal/testsupport"
)

func newGroup(records []*signalisation.Record) *dedup.Group {
	return &dedup.Group{
		ID:      "Groupe_1",
		Key:     signalisation.KeyOf(records[0]),
		Members: records,
	}
}

func tieBreak(t *testing.T, records []*signalisation.Record) *dedup.ResolvedGroup {
	t.Helper()
	engine := dedup.NewEngine(logging.NewNop())
	resolved, err := engine.TieBreak(newGroup(records))
	if err != nil {
		t.Fatalf("TieBreak failed: %v", err)
	}
	return resolved
}

func decisionsByNumero(g *dedup.ResolvedGroup) map[string]signalisation.Decision {
	out := make(map[string]signalisation.Decision, len(g.Members))
	for _, m := range g.Members {
		out[m.Numero()] = m.Decision
	}
	return out
}

func TestTri1KeepsSignalisationMatchingPersonne(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1001", Personne: "1001", IDPP: "GN1"},
		testsupport.RecordSpec{Numero: "1002", Personne: "1001", IDPP: "GN1"},
	)
	resolved := tieBreak(t, records)

	if resolved.Stage != dedup.StageTri1 {
		t.Fatalf("expected Tri 1, got %s", resolved.Stage)
	}
	d := decisionsByNumero(resolved)
	if d["1001"] != signalisation.DecisionKeep || d["1002"] != signalisation.DecisionRemove {
		t.Fatalf("unexpected decisions: %v", d)
	}
	for _, m := range resolved.Members {
		if m.Rule != dedup.RuleTri1 {
			t.Errorf("member %s carries rule %q", m.Numero(), m.Rule)
		}
		if m.GroupID != "Groupe_1" {
			t.Errorf("member %s carries group %q", m.Numero(), m.GroupID)
		}
	}
	kept, removed := resolved.Kept(), resolved.Removed()
	if len(kept) != 1 || len(removed) != 1 {
		t.Fatalf("expected a strict split, got %d kept / %d removed", len(kept), len(removed))
	}
}

func TestTri1AllMatchKeepsEveryMember(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1001", Personne: "1001", IDPP: "GN1"},
		testsupport.RecordSpec{Numero: "1001", Personne: "1001", IDPP: "GN1"},
	)
	resolved := tieBreak(t, records)
	if resolved.Stage != dedup.StageTri1 {
		t.Fatalf("expected Tri 1, got %s", resolved.Stage)
	}
	if len(resolved.Removed()) != 0 {
		t.Fatalf("all-match groups keep every member, removed %d", len(resolved.Removed()))
	}
}

func TestTri1PrecedesTri2(t *testing.T) {
	// Both conditions hold; the earlier rule must win.
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1001", Personne: "1001", IDPP: "GN0010022024X", Procedure: "001/002/2024"},
		testsupport.RecordSpec{Numero: "1002", Personne: "1001", IDPP: "GN999", Procedure: "555/666/2024"},
	)
	resolved := tieBreak(t, records)
	if resolved.Stage != dedup.StageTri1 {
		t.Fatalf("Tri 1 must take precedence, got %s", resolved.Stage)
	}
	if resolved.Members[0].Rule != dedup.RuleTri1 {
		t.Fatalf("rule label should be Tri 1, got %q", resolved.Members[0].Rule)
	}
}

func TestTri2CoherenceMixed(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN0010022024X", Procedure: "001/002/2024"},
		testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN999", Procedure: "001/002/2024"},
	)
	resolved := tieBreak(t, records)

	if resolved.Stage != dedup.StageTri2 {
		t.Fatalf("expected Tri 2, got %s", resolved.Stage)
	}
	d := decisionsByNumero(resolved)
	if d["1"] != signalisation.DecisionKeep || d["2"] != signalisation.DecisionRemove {
		t.Fatalf("unexpected decisions: %v", d)
	}
}

func TestTri2ThreeWaySplitKeepsEveryCoherentMember(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN0010022024", Procedure: "001/002/2024"},
		testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN0010022024", Procedure: "0010022024"},
		testsupport.RecordSpec{Numero: "3", Personne: "9", IDPP: "GN0010022024", Procedure: "777/888/2024"},
	)
	resolved := tieBreak(t, records)

	if resolved.Stage != dedup.StageTri2 {
		t.Fatalf("expected Tri 2, got %s", resolved.Stage)
	}
	d := decisionsByNumero(resolved)
	if d["1"] != signalisation.DecisionKeep || d["2"] != signalisation.DecisionKeep {
		t.Fatalf("both coherent members must be kept: %v", d)
	}
	if d["3"] != signalisation.DecisionRemove {
		t.Fatalf("incoherent member must be removed: %v", d)
	}
}

func TestTri2AllCoherentDefers(t *testing.T) {
	// UNA contained in the IDPP for every member: Tri 2 must defer, and the
	// identical metadata pushes resolution all the way to Tri 3.3.
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "500", Personne: "9", IDPP: "GN0010022024", Procedure: "001/002/2024"},
		testsupport.RecordSpec{Numero: "300", Personne: "9", IDPP: "GN0010022024", Procedure: "001/002/2024"},
	)
	resolved := tieBreak(t, records)
	if resolved.Stage == dedup.StageTri2 {
		t.Fatal("Tri 2 must not resolve an all-coherent group")
	}
}

func TestTri2EmptyUNANeverMatches(t *testing.T) {
	// Empty procedure numbers on every member: all fail, Tri 2 defers.
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN1", Procedure: "", Creation: "01/01/2023"},
		testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN1", Procedure: "", Creation: "02/01/2023"},
	)
	resolved := tieBreak(t, records)
	if resolved.Stage != dedup.StageTri31 {
		t.Fatalf("expected fallthrough to Tri 3.1, got %s", resolved.Stage)
	}
}

func TestTri31KeepsEarliestDate(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN1", Creation: "01/01/2023"},
		testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN1", Creation: "02/01/2023"},
	)
	resolved := tieBreak(t, records)

	if resolved.Stage != dedup.StageTri31 {
		t.Fatalf("expected Tri 3.1, got %s", resolved.Stage)
	}
	d := decisionsByNumero(resolved)
	if d["1"] != signalisation.DecisionKeep || d["2"] != signalisation.DecisionRemove {
		t.Fatalf("unexpected decisions: %v", d)
	}
	for _, m := range resolved.Kept() {
		if !strings.Contains(m.RuleDetail, "01/01/2023") {
			t.Errorf("kept detail should cite the earliest date: %q", m.RuleDetail)
		}
	}
}

func TestTri31MixedFormatsCompareAsDates(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN1", Creation: "20230102"},
		testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN1", Creation: "01/01/2023"},
	)
	resolved := tieBreak(t, records)
	if resolved.Stage != dedup.StageTri31 {
		t.Fatalf("expected Tri 3.1, got %s", resolved.Stage)
	}
	d := decisionsByNumero(resolved)
	if d["2"] != signalisation.DecisionKeep {
		t.Fatalf("record 2 holds the earlier date: %v", d)
	}
}

func TestTri31UnparseableDateIsRemoved(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN1", Creation: "01/01/2023"},
		testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN1", Creation: "02/01/2023"},
		testsupport.RecordSpec{Numero: "3", Personne: "9", IDPP: "GN1", Creation: "illisible"},
	)
	resolved := tieBreak(t, records)
	if resolved.Stage != dedup.StageTri31 {
		t.Fatalf("expected Tri 3.1, got %s", resolved.Stage)
	}
	d := decisionsByNumero(resolved)
	if d["3"] != signalisation.DecisionRemove {
		t.Fatalf("null-date member must be removed when dates diverge: %v", d)
	}
}

func TestTri32KeepsPhotoWhenDatesIdentical(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN1", Creation: "01/01/2023", Cliche: "C001"},
		testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN1", Creation: "01/01/2023", Cliche: ""},
	)
	resolved := tieBreak(t, records)

	if resolved.Stage != dedup.StageTri32 {
		t.Fatalf("expected Tri 3.2, got %s", resolved.Stage)
	}
	d := decisionsByNumero(resolved)
	if d["1"] != signalisation.DecisionKeep || d["2"] != signalisation.DecisionRemove {
		t.Fatalf("unexpected decisions: %v", d)
	}
}

func TestTri33KeepsSmallestNumero(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "500", Personne: "9", IDPP: "GN1", Creation: "01/01/2023", Cliche: "C1"},
		testsupport.RecordSpec{Numero: "300", Personne: "9", IDPP: "GN1", Creation: "01/01/2023", Cliche: "C2"},
	)
	resolved := tieBreak(t, records)

	if resolved.Stage != dedup.StageTri33 {
		t.Fatalf("expected Tri 3.3, got %s", resolved.Stage)
	}
	d := decisionsByNumero(resolved)
	if d["300"] != signalisation.DecisionKeep || d["500"] != signalisation.DecisionRemove {
		t.Fatalf("unexpected decisions: %v", d)
	}
	for _, m := range resolved.Kept() {
		if !strings.Contains(m.RuleDetail, "300") {
			t.Errorf("kept detail should cite the winning number: %q", m.RuleDetail)
		}
	}
}

func TestTri33ComparesNumerically(t *testing.T) {
	// "1000" < "999" lexicographically; the comparison must be numeric.
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1000", Personne: "9", IDPP: "GN1"},
		testsupport.RecordSpec{Numero: "999", Personne: "9", IDPP: "GN1"},
	)
	resolved := tieBreak(t, records)
	d := decisionsByNumero(resolved)
	if d["999"] != signalisation.DecisionKeep {
		t.Fatalf("numeric comparison broken: %v", d)
	}
}

func TestTieBreakTotality(t *testing.T) {
	// Fully identical members fall through every discriminating rule and
	// still end resolved by Tri 3.3.
	groups := [][]*signalisation.Record{
		testsupport.NewRecords(
			testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN1"},
			testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN1"},
		),
		testsupport.NewRecords(
			testsupport.RecordSpec{Numero: "1", Personne: "9", IDPP: "GN1", Creation: "illisible"},
			testsupport.RecordSpec{Numero: "2", Personne: "9", IDPP: "GN1", Creation: "aussi illisible"},
			testsupport.RecordSpec{Numero: "3", Personne: "9", IDPP: "GN1", Creation: ""},
		),
	}
	for _, records := range groups {
		resolved := tieBreak(t, records)
		for _, m := range resolved.Members {
			if !m.Decision.Resolved() {
				t.Fatalf("member %s left unresolved after the full chain", m.Numero())
			}
			if m.Rule == "" || m.RuleDetail == "" {
				t.Fatalf("member %s missing justification", m.Numero())
			}
		}
		if len(resolved.Kept()) == 0 || len(resolved.Removed()) == 0 {
			t.Fatal("expected both kept and removed members")
		}
	}
}

func TestTieBreakDoesNotMutateInput(t *testing.T) {
	records := testsupport.NewRecords(
		testsupport.RecordSpec{Numero: "1001", Personne: "1001", IDPP: "GN1"},
		testsupport.RecordSpec{Numero: "1002", Personne: "1001", IDPP: "GN1"},
	)
	tieBreak(t, records)
	for _, rec := range records {
		if rec.Decision != signalisation.DecisionUnresolved || rec.Rule != "" || rec.GroupID != "" {
			t.Fatalf("TieBreak mutated its input: %+v", rec.Classification)
		}
	}
}
