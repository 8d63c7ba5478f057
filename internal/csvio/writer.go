package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

// Banner is the commented explanation block written above a report's CSV
// content. Description lines are emitted one per '#' comment line.
type Banner struct {
	Title       string
	Description []string
	GeneratedAt time.Time
}

// WriteFile writes records as CSV to path, preceded by the banner when one
// is provided. Columns selects and orders the emitted fields; decision
// columns (ID_GROUPE, A_SUPPRIMER, REGLE_APPLIQUEE, DETAIL_REGLE) are filled
// from each record's classification, every other column from its raw values.
func WriteFile(path string, columns []string, records []*signalisation.Record, banner *Banner) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("création de %s: %w", path, err)
	}
	if err := Write(f, columns, records, banner); err != nil {
		f.Close()
		return fmt.Errorf("écriture de %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("fermeture de %s: %w", path, err)
	}
	return nil
}

// Write streams a report to w.
func Write(w io.Writer, columns []string, records []*signalisation.Record, banner *Banner) error {
	bw := bufio.NewWriter(w)
	if banner != nil {
		when := banner.GeneratedAt
		if when.IsZero() {
			when = time.Now()
		}
		fmt.Fprintf(bw, "# %s\n", banner.Title)
		fmt.Fprintf(bw, "# Traitement effectué le %s\n", when.Format("02/01/2006 à 15:04:05"))
		for _, line := range banner.Description {
			fmt.Fprintf(bw, "# %s\n", line)
		}
		fmt.Fprintln(bw, "#")
	}

	cw := csv.NewWriter(bw)
	if err := cw.Write(columns); err != nil {
		return err
	}
	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = fieldValue(rec, col)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

func fieldValue(rec *signalisation.Record, col string) string {
	switch col {
	case signalisation.ColGroupe:
		return rec.GroupID
	case signalisation.ColASupprimer:
		return rec.Decision.String()
	case signalisation.ColRegle:
		return rec.Rule
	case signalisation.ColDetailRegle:
		return rec.RuleDetail
	default:
		return rec.Field(col)
	}
}
