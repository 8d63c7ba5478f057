package testsupport

import (
	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

// RecordSpec describes one test signalisation with readable field names.
// Zero-valued fields stay empty in the produced record.
type RecordSpec struct {
	Numero    string
	Personne  string
	IDPP      string
	Nom       string
	Prenom    string
	Naissance string
	Creation  string
	Procedure string
	Cliche    string
}

// NewRecords builds records over the full required schema, indexed in order.
func NewRecords(specs ...RecordSpec) []*signalisation.Record {
	header := append([]string(nil), signalisation.RequiredColumns...)
	records := make([]*signalisation.Record, len(specs))
	for i, spec := range specs {
		records[i] = &signalisation.Record{
			Index:   i,
			Columns: header,
			Values: map[string]string{
				signalisation.ColSignalisation: spec.Numero,
				signalisation.ColPersonne:      spec.Personne,
				signalisation.ColIDPP:          spec.IDPP,
				signalisation.ColNom:           spec.Nom,
				signalisation.ColPrenom:        spec.Prenom,
				signalisation.ColNaissance:     spec.Naissance,
				signalisation.ColCreationFAED:  spec.Creation,
				signalisation.ColProcedure:     spec.Procedure,
				signalisation.ColCliche:        spec.Cliche,
			},
		}
	}
	return records
}

// Header returns the canonical test header.
func Header() []string {
	return append([]string(nil), signalisation.RequiredColumns...)
}

// DuplicatePair builds two records sharing the same identity and IDPP so
// they land in one duplicate group; the callbacks tweak the individual
// members before construction.
func DuplicatePair(base RecordSpec, first, second func(*RecordSpec)) []*signalisation.Record {
	a, b := base, base
	if first != nil {
		first(&a)
	}
	if second != nil {
		second(&b)
	}
	return NewRecords(a, b)
}
