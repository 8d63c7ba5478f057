package signalisation

// Canonical column names of the signalisation export consumed by the tool.
const (
	ColSignalisation = "NUMERO_SIGNALISATION"
	ColPersonne      = "NUMERO_PERSONNE"
	ColIDPP          = "IDENTIFIANT_GASPARD"
	ColNom           = "NOM"
	ColPrenom        = "PRENOM"
	ColNaissance     = "DATE_NAISSANCE_MIN"
	ColCreationFAED  = "DATE_CREATION_FAED"
	ColProcedure     = "NUM_PROCEDURE"
	ColCliche        = "NUMERO_CLICHE"
)

// Columns appended by the decision engine when records are exported.
const (
	ColGroupe      = "ID_GROUPE"
	ColASupprimer  = "A_SUPPRIMER"
	ColRegle       = "REGLE_APPLIQUEE"
	ColDetailRegle = "DETAIL_REGLE"
)

// Decision is the tri-state outcome of the tie-break chain for one record.
// The zero value is DecisionUnresolved so a freshly loaded record is never
// accidentally classified.
type Decision int

const (
	DecisionUnresolved Decision = iota
	DecisionKeep
	DecisionRemove
)

// String renders the decision the way the exported reports expect it
// (A_SUPPRIMER column semantics: removal is "True").
func (d Decision) String() string {
	switch d {
	case DecisionKeep:
		return "False"
	case DecisionRemove:
		return "True"
	default:
		return "None"
	}
}

// Resolved reports whether the decision is terminal.
func (d Decision) Resolved() bool {
	return d == DecisionKeep || d == DecisionRemove
}

// Group id sentinels used when a record never joins a duplicate group.
const (
	GroupNone       = "Aucun"
	GroupExcludedPN = "Exclus_PN"
)

// Classification is the decision payload stamped onto a record by the
// engine. Rule and RuleDetail are the operator-facing justification strings;
// they are written in French to match the reports the FAED analysts review.
type Classification struct {
	Decision   Decision
	Rule       string
	RuleDetail string
	GroupID    string
}

// Record is one signalisation row. Values holds the raw CSV fields keyed by
// column name; Columns preserves the input column order for export. Index is
// the zero-based position of the row in the input file and pins the original
// ordering through the pipeline.
type Record struct {
	Index   int
	Columns []string
	Values  map[string]string

	Classification
}

// Field returns the raw value of the named column, or the empty string when
// the column is absent. Missing and empty values are deliberately
// indistinguishable here; the schema check rejects files whose required
// columns are absent before any field is read.
func (r *Record) Field(name string) string {
	if r.Values == nil {
		return ""
	}
	return r.Values[name]
}

// Numero returns the raw signalisation number.
func (r *Record) Numero() string { return r.Field(ColSignalisation) }

// IDPP returns the raw GASPARD identifier.
func (r *Record) IDPP() string { return r.Field(ColIDPP) }

// Clone returns a copy of the record with an independent Values map.
// The engine classifies clones so callers keep an unmodified view of the
// input set.
func (r *Record) Clone() *Record {
	clone := &Record{
		Index:          r.Index,
		Columns:        r.Columns,
		Classification: r.Classification,
	}
	if r.Values != nil {
		clone.Values = make(map[string]string, len(r.Values))
		for k, v := range r.Values {
			clone.Values[k] = v
		}
	}
	return clone
}
