package dedup

import (
	"strings"

	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

// IdentifierKind buckets a GASPARD identifier by prefix. GN and "other"
// identifiers are processed for duplicates; PN identifiers are excluded
// outright.
type IdentifierKind int

const (
	KindGN IdentifierKind = iota
	KindPN
	KindOther
)

// KindOf classifies a raw GASPARD identifier. The prefix match is
// case-sensitive on the trimmed value.
func KindOf(idpp string) IdentifierKind {
	trimmed := strings.TrimSpace(idpp)
	switch {
	case strings.HasPrefix(trimmed, "GN"):
		return KindGN
	case strings.HasPrefix(trimmed, "PN"):
		return KindPN
	default:
		return KindOther
	}
}

// PartitionResult carries the exclusion split and the informational prefix
// counts surfaced in the run summary.
type PartitionResult struct {
	ToProcess []*signalisation.Record
	Excluded  []*signalisation.Record

	CountGN    int
	CountPN    int
	CountOther int
}

// Partition separates PN-prefixed records from the processing set before any
// grouping happens. Excluded records are cloned and stamped with their final
// classification: they are always removed, carry the fixed exclusion rule,
// and never join a duplicate group. All remaining records pass through
// unmodified, GN-prefixed or not.
func Partition(records []*signalisation.Record) PartitionResult {
	res := PartitionResult{}
	for _, rec := range records {
		switch KindOf(rec.Field(signalisation.ColIDPP)) {
		case KindPN:
			res.CountPN++
			excluded := rec.Clone()
			excluded.Classification = signalisation.Classification{
				Decision:   signalisation.DecisionRemove,
				Rule:       RuleExclusionPN,
				RuleDetail: DetailExclusionPN,
				GroupID:    signalisation.GroupExcludedPN,
			}
			res.Excluded = append(res.Excluded, excluded)
		case KindGN:
			res.CountGN++
			res.ToProcess = append(res.ToProcess, rec)
		default:
			res.CountOther++
			res.ToProcess = append(res.ToProcess, rec)
		}
	}
	return res
}
