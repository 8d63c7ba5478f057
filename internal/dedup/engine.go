package dedup

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

// Engine drives the full deduplication pipeline. It holds no state between
// runs beyond the logger; Classify is a pure batch computation over the
// records it is handed.
type Engine struct {
	logger *slog.Logger

	dateFailures int
}

// NewEngine returns an engine logging through the provided logger. A nil
// logger is replaced with a discard logger so wiring code cannot fail.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{logger: logger}
}

// Stats summarizes one classification run for the summary reports.
type Stats struct {
	Total    int `json:"total"`
	Kept     int `json:"kept"`
	Removed  int `json:"removed"`
	Excluded int `json:"excluded"`

	CountGN    int `json:"count_gn"`
	CountPN    int `json:"count_pn"`
	CountOther int `json:"count_other"`

	Groups          int            `json:"groups"`
	GroupsByStage   map[Stage]int  `json:"groups_by_stage"`
	RecordsByRule   map[string]int `json:"records_by_rule"`
	DateParseErrors int            `json:"date_parse_errors"`
}

// Result is the fully classified record set produced by Classify. Records
// holds every input record exactly once, classified, in input order; Groups
// lists the resolved duplicate groups in discovery order; Excluded carries
// the PN records.
type Result struct {
	RunID    string
	Records  []*signalisation.Record
	Groups   []*ResolvedGroup
	Excluded []*signalisation.Record
	Stats    Stats
}

// Kept returns every non-excluded record marked for conservation.
func (r *Result) Kept() []*signalisation.Record {
	return r.selectRecords(signalisation.DecisionKeep, false)
}

// Removed returns every non-excluded record marked for deletion.
func (r *Result) Removed() []*signalisation.Record {
	return r.selectRecords(signalisation.DecisionRemove, false)
}

func (r *Result) selectRecords(d signalisation.Decision, includePN bool) []*signalisation.Record {
	var out []*signalisation.Record
	for _, rec := range r.Records {
		if rec.GroupID == signalisation.GroupExcludedPN && !includePN {
			continue
		}
		if rec.Decision == d {
			out = append(out, rec)
		}
	}
	return out
}

// Classify runs the whole pipeline: schema check, PN exclusion, duplicate
// grouping, singleton stamping, and the per-group tie-break cascade. The
// input slice and its records are left untouched; the result holds
// classified clones in input order. The only failure modes are a missing
// required column (nothing is processed) and the unresolved-group contract
// violation, which cannot occur with an intact rule chain.
func (e *Engine) Classify(header []string, records []*signalisation.Record) (*Result, error) {
	if err := signalisation.ValidateSchema(header); err != nil {
		return nil, err
	}
	e.dateFailures = 0

	result := &Result{
		RunID: uuid.NewString(),
		Stats: Stats{
			Total:         len(records),
			GroupsByStage: make(map[Stage]int),
			RecordsByRule: make(map[string]int),
		},
	}
	logger := e.logger.With(slog.String("run_id", result.RunID))
	logger.Info("démarrage du traitement", slog.Int("signalisations", len(records)))

	part := Partition(records)
	result.Excluded = part.Excluded
	result.Stats.CountGN = part.CountGN
	result.Stats.CountPN = part.CountPN
	result.Stats.CountOther = part.CountOther
	logger.Info("répartition des identifiants",
		slog.Int("gn", part.CountGN),
		slog.Int("pn_exclus", part.CountPN),
		slog.Int("autres", part.CountOther))

	grouped := GroupRecords(part.ToProcess)
	logger.Info("groupes de doublons identifiés", slog.Int("groupes", len(grouped.Groups)))

	classified := make(map[int]*signalisation.Record, len(records))
	for _, rec := range part.Excluded {
		classified[rec.Index] = rec
	}
	for _, rec := range grouped.Singletons {
		single := rec.Clone()
		single.Classification = signalisation.Classification{
			Decision:   signalisation.DecisionKeep,
			Rule:       RuleSingleton,
			RuleDetail: DetailSingleton,
			GroupID:    signalisation.GroupNone,
		}
		classified[single.Index] = single
	}

	for i, group := range grouped.Groups {
		group.ID = fmt.Sprintf("Groupe_%d", i+1)
		resolved, err := e.TieBreak(group)
		if err != nil {
			return nil, err
		}
		result.Groups = append(result.Groups, resolved)
		result.Stats.GroupsByStage[resolved.Stage]++
		for _, member := range resolved.Members {
			classified[member.Index] = member
		}
	}
	result.Stats.Groups = len(result.Groups)
	result.Stats.DateParseErrors = e.dateFailures

	// Reassemble in input order. Every input index must be present exactly
	// once; a gap would mean the partition dropped or duplicated a record.
	result.Records = make([]*signalisation.Record, 0, len(records))
	for _, rec := range records {
		out, ok := classified[rec.Index]
		if !ok {
			return nil, fmt.Errorf("signalisation %s absente du résultat (index %d)", rec.Numero(), rec.Index)
		}
		result.Records = append(result.Records, out)
	}
	if len(classified) != len(records) {
		return nil, fmt.Errorf("partition incohérente: %d signalisations classées pour %d en entrée", len(classified), len(records))
	}

	for _, rec := range result.Records {
		result.Stats.RecordsByRule[rec.Rule]++
		switch {
		case rec.GroupID == signalisation.GroupExcludedPN:
			result.Stats.Excluded++
		case rec.Decision == signalisation.DecisionKeep:
			result.Stats.Kept++
		case rec.Decision == signalisation.DecisionRemove:
			result.Stats.Removed++
		}
	}

	logger.Info("traitement terminé",
		slog.Int("conservées", result.Stats.Kept),
		slog.Int("à_supprimer", result.Stats.Removed),
		slog.Int("exclues_pn", result.Stats.Excluded),
		slog.Int("groupes", result.Stats.Groups))
	return result, nil
}
