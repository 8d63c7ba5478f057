package signalisation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperFR = cases.Upper(language.French)

// NormalizeIdentifier canonicalizes numeric identifiers (signalisation and
// person numbers, GASPARD ids) for key comparison: the value is kept as a
// string with surrounding whitespace removed. Missing values normalize to
// the empty string and compare equal to each other.
func NormalizeIdentifier(value string) string {
	return strings.TrimSpace(value)
}

// NormalizeName upper-cases and trims a name field. Casing is locale-aware
// so accented surnames fold the same way regardless of how the export was
// produced.
func NormalizeName(value string) string {
	return strings.TrimSpace(upperFR.String(value))
}

// NormalizeBirthDate trims the minimal birth date. The value stays a literal
// string: birth dates take part in key equality textually, they are never
// parsed.
func NormalizeBirthDate(value string) string {
	return strings.TrimSpace(value)
}

// Identity is the normalized (surname, given name, birth date) triple.
type Identity struct {
	Nom       string
	Prenom    string
	Naissance string
}

// DuplicateKey is the composite grouping key. Two records are duplicate
// candidates iff their keys are equal.
type DuplicateKey struct {
	IDPP     string
	Personne string
	Identity Identity
}

// KeyOf computes the duplicate key from a record's raw fields.
func KeyOf(r *Record) DuplicateKey {
	return DuplicateKey{
		IDPP:     NormalizeIdentifier(r.Field(ColIDPP)),
		Personne: NormalizeIdentifier(r.Field(ColPersonne)),
		Identity: Identity{
			Nom:       NormalizeName(r.Field(ColNom)),
			Prenom:    NormalizeName(r.Field(ColPrenom)),
			Naissance: NormalizeBirthDate(r.Field(ColNaissance)),
		},
	}
}
