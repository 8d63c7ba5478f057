package dedup

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

// Stage identifies which rule of the cascade resolved a group.
type Stage string

const (
	StageTri1  Stage = "tri_1"
	StageTri2  Stage = "tri_2"
	StageTri31 Stage = "tri_3_1"
	StageTri32 Stage = "tri_3_2"
	StageTri33 Stage = "tri_3_3"
)

// ResolvedGroup is the outcome of the tie-break chain for one group. Members
// are clones of the group's records with their classification stamped; the
// input group is never modified.
type ResolvedGroup struct {
	ID      string
	Key     signalisation.DuplicateKey
	Members []*signalisation.Record
	Stage   Stage
}

// Kept returns the members marked for conservation.
func (g *ResolvedGroup) Kept() []*signalisation.Record {
	return g.withDecision(signalisation.DecisionKeep)
}

// Removed returns the members marked for deletion.
func (g *ResolvedGroup) Removed() []*signalisation.Record {
	return g.withDecision(signalisation.DecisionRemove)
}

func (g *ResolvedGroup) withDecision(d signalisation.Decision) []*signalisation.Record {
	var out []*signalisation.Record
	for _, m := range g.Members {
		if m.Decision == d {
			out = append(out, m)
		}
	}
	return out
}

// TieBreak runs the rule cascade on one duplicate group. Rules are applied
// in fixed order and the first one whose condition holds resolves the whole
// group; later rules never see a group an earlier rule could settle. The
// returned group is built from clones, so the caller's records stay
// untouched. ErrUnresolvedGroup is returned only on a broken contract (a
// member left unresolved after Tri 3.3).
func (e *Engine) TieBreak(group *Group) (*ResolvedGroup, error) {
	resolved := &ResolvedGroup{ID: group.ID, Key: group.Key}
	resolved.Members = make([]*signalisation.Record, len(group.Members))
	for i, m := range group.Members {
		clone := m.Clone()
		clone.GroupID = group.ID
		resolved.Members[i] = clone
	}

	switch {
	case applyTri1(resolved.Members):
		resolved.Stage = StageTri1
	case applyTri2(resolved.Members):
		resolved.Stage = StageTri2
	default:
		resolved.Stage = e.applyTri3(group.ID, resolved.Members)
	}

	for _, m := range resolved.Members {
		if !m.Decision.Resolved() {
			return nil, fmt.Errorf("%w: groupe %s, signalisation %s", ErrUnresolvedGroup, group.ID, m.Numero())
		}
	}
	return resolved, nil
}

// applyTri1 keeps every member whose signalisation number equals its person
// number. The rule resolves as soon as one member matches; with no match the
// group moves on untouched.
func applyTri1(members []*signalisation.Record) bool {
	matched := make([]bool, len(members))
	any := false
	for i, m := range members {
		numero := signalisation.NormalizeIdentifier(m.Field(signalisation.ColSignalisation))
		personne := signalisation.NormalizeIdentifier(m.Field(signalisation.ColPersonne))
		if numero != "" && numero == personne {
			matched[i] = true
			any = true
		}
	}
	if !any {
		return false
	}
	for i, m := range members {
		m.Rule = RuleTri1
		if matched[i] {
			m.Decision = signalisation.DecisionKeep
			m.RuleDetail = DetailTri1Kept
		} else {
			m.Decision = signalisation.DecisionRemove
			m.RuleDetail = DetailTri1Removed
		}
	}
	return true
}

// unaConcat flattens a slash-separated procedure number ("00116/00149/2024"
// becomes "00116001492024"). Missing values flatten to the empty string.
func unaConcat(procedure string) string {
	return strings.ReplaceAll(strings.TrimSpace(procedure), "/", "")
}

// applyTri2 tests procedure/identifier coherence: a member passes when its
// concatenated UNA is a substring of its GASPARD identifier (an empty UNA
// never passes). The rule resolves only on a mixed outcome; all-pass and
// all-fail groups move on. With three or more members a 2/1 split keeps or
// removes several records at once, which is the intended behavior.
func applyTri2(members []*signalisation.Record) bool {
	coherent := make([]bool, len(members))
	anyTrue, anyFalse := false, false
	for i, m := range members {
		una := unaConcat(m.Field(signalisation.ColProcedure))
		if una != "" && strings.Contains(m.Field(signalisation.ColIDPP), una) {
			coherent[i] = true
			anyTrue = true
		} else {
			anyFalse = true
		}
	}
	if !anyTrue || !anyFalse {
		return false
	}
	for i, m := range members {
		m.Rule = RuleTri2
		if coherent[i] {
			m.Decision = signalisation.DecisionKeep
			m.RuleDetail = DetailTri2Kept
		} else {
			m.Decision = signalisation.DecisionRemove
			m.RuleDetail = DetailTri2Removed
		}
	}
	return true
}

// applyTri3 runs the temporal/photo sub-cascade. Tri 3.3 always resolves, so
// the returned stage is one of the three Tri 3 variants.
func (e *Engine) applyTri3(groupID string, members []*signalisation.Record) Stage {
	// 3.1 — earliest creation date wins when dates diverge. Unparseable
	// dates stay null: they are excluded from the distinct-date set and the
	// records carrying them are removed alongside the later ones.
	parsed := make([]time.Time, len(members))
	hasDate := make([]bool, len(members))
	distinct := make(map[time.Time]struct{})
	for i, m := range members {
		raw := m.Field(signalisation.ColCreationFAED)
		t, ok := ParseCreationDate(raw)
		if !ok && strings.TrimSpace(raw) != "" {
			e.dateFailures++
			e.logger.Warn("date de création illisible",
				slog.String("groupe", groupID),
				slog.String("signalisation", m.Numero()),
				slog.String("valeur", raw))
		}
		parsed[i], hasDate[i] = t, ok
		if ok {
			distinct[t] = struct{}{}
		}
	}
	if len(distinct) > 1 {
		min := time.Time{}
		for t := range distinct {
			if min.IsZero() || t.Before(min) {
				min = t
			}
		}
		minLabel := min.Format("02/01/2006")
		for i, m := range members {
			m.Rule = RuleTri31
			if hasDate[i] && parsed[i].Equal(min) {
				m.Decision = signalisation.DecisionKeep
				m.RuleDetail = fmt.Sprintf(detailTri31KeptFmt, minLabel)
			} else {
				m.Decision = signalisation.DecisionRemove
				m.RuleDetail = DetailTri31Removed
			}
		}
		return StageTri31
	}

	// 3.2 — with identical or unavailable dates, mixed photo presence
	// decides: members holding a cliché number survive.
	withPhoto := make([]bool, len(members))
	anyPhoto, anyWithout := false, false
	for i, m := range members {
		if strings.TrimSpace(m.Field(signalisation.ColCliche)) != "" {
			withPhoto[i] = true
			anyPhoto = true
		} else {
			anyWithout = true
		}
	}
	if anyPhoto && anyWithout {
		for i, m := range members {
			m.Rule = RuleTri32
			if withPhoto[i] {
				m.Decision = signalisation.DecisionKeep
				m.RuleDetail = DetailTri32Kept
			} else {
				m.Decision = signalisation.DecisionRemove
				m.RuleDetail = DetailTri32Removed
			}
		}
		return StageTri32
	}

	// 3.3 — fallback of last resort: the smallest signalisation number is
	// the oldest registration and survives.
	minIdx := 0
	for i := 1; i < len(members); i++ {
		if numeroLess(members[i].Numero(), members[minIdx].Numero()) {
			minIdx = i
		}
	}
	minNumero := signalisation.NormalizeIdentifier(members[minIdx].Numero())
	for _, m := range members {
		m.Rule = RuleTri33
		if signalisation.NormalizeIdentifier(m.Numero()) == minNumero {
			m.Decision = signalisation.DecisionKeep
			m.RuleDetail = fmt.Sprintf(detailTri33KeptFmt, minNumero)
		} else {
			m.Decision = signalisation.DecisionRemove
			m.RuleDetail = DetailTri33Removed
		}
	}
	return StageTri33
}

// numeroLess orders signalisation numbers numerically when both sides parse
// as integers. Non-numeric values sort after every numeric one and fall back
// to lexicographic order among themselves, keeping the Tri 3.3 fallback
// total on dirty data.
func numeroLess(a, b string) bool {
	na, okA := parseNumero(a)
	nb, okB := parseNumero(b)
	switch {
	case okA && okB:
		return na < nb
	case okA:
		return true
	case okB:
		return false
	default:
		return strings.TrimSpace(a) < strings.TrimSpace(b)
	}
}

func parseNumero(value string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	return n, err == nil
}
