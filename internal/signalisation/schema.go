package signalisation

import (
	"fmt"
	"strings"
)

// RequiredColumns lists every column the pipeline reads. A file missing any
// of them is rejected before grouping starts.
var RequiredColumns = []string{
	ColSignalisation,
	ColPersonne,
	ColIDPP,
	ColNom,
	ColPrenom,
	ColNaissance,
	ColCreationFAED,
	ColProcedure,
	ColCliche,
}

// MissingColumnsError reports required columns absent from the input header.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("colonnes requises manquantes: %s", strings.Join(e.Missing, ", "))
}

// ValidateSchema checks the input header against RequiredColumns and returns
// a MissingColumnsError naming every absent column, or nil when the schema
// is complete. Column matching is exact; the exports this tool consumes use
// fixed upper-case headers.
func ValidateSchema(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = struct{}{}
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}
