package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ybdn/DoublonsIDPP/internal/csvio"
	"github.com/ybdn/DoublonsIDPP/internal/dedup"
	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

// Options tunes report generation.
type Options struct {
	// HTML and Text toggle the two summary flavours. Both default to on.
	HTML bool
	Text bool
	// Now overrides the report clock, for deterministic tests.
	Now func() time.Time
}

// Bundle lists the artifacts produced by one run.
type Bundle struct {
	Dir          string
	KeptReport   string
	RemoveReport string
	DeletionList string
	HTMLSummary  string
	TextSummary  string
}

// detailColumns is the column set of the two detailed reports. A_SUPPRIMER
// is deliberately absent: the file a record lands in already encodes the
// decision.
var detailColumns = []string{
	signalisation.ColSignalisation,
	signalisation.ColPersonne,
	signalisation.ColIDPP,
	signalisation.ColNom,
	signalisation.ColPrenom,
	signalisation.ColNaissance,
	signalisation.ColCreationFAED,
	signalisation.ColProcedure,
	signalisation.ColCliche,
	signalisation.ColGroupe,
	signalisation.ColRegle,
	signalisation.ColDetailRegle,
}

// listColumns is the minimal deletion list consumed by the GASPARD import.
var listColumns = []string{
	signalisation.ColSignalisation,
	signalisation.ColIDPP,
	signalisation.ColNom,
	signalisation.ColPrenom,
	signalisation.ColRegle,
}

// Write renders the full export bundle for a run into a fresh timestamped
// directory under exportsDir. inputName is the base name of the processed
// file, echoed in the summaries. PN-excluded records appear in no report;
// their count is surfaced in the summaries only.
func Write(result *dedup.Result, inputName, exportsDir string, opts Options) (*Bundle, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stamp := now().Format("20060102_1504")

	dir := filepath.Join(exportsDir, stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("création du dossier d'exports: %w", err)
	}
	bundle := &Bundle{Dir: dir}

	kept := sortForReport(result.Kept())
	removed := sortForReport(result.Removed())

	bundle.KeptReport = filepath.Join(dir, fmt.Sprintf("RAPPORT_Signalisations_Conservees_%s.csv", stamp))
	if err := csvio.WriteFile(bundle.KeptReport, detailColumns, kept, &csvio.Banner{
		Title:       "SIGNALISATIONS CONSERVÉES",
		GeneratedAt: now(),
		Description: []string{
			"Ce fichier contient toutes les signalisations qui ont été CONSERVÉES après analyse des doublons.",
			"La colonne 'REGLE_APPLIQUEE' indique la règle qui a été utilisée pour conserver cette signalisation.",
			"La colonne 'DETAIL_REGLE' fournit une explication détaillée de la décision.",
			"La colonne 'ID_GROUPE' permet d'identifier les groupes de doublons (même valeur = même groupe).",
		},
	}); err != nil {
		return nil, err
	}

	bundle.RemoveReport = filepath.Join(dir, fmt.Sprintf("RAPPORT_Signalisations_A_Supprimer_%s.csv", stamp))
	if err := csvio.WriteFile(bundle.RemoveReport, detailColumns, removed, &csvio.Banner{
		Title:       "SIGNALISATIONS À SUPPRIMER",
		GeneratedAt: now(),
		Description: []string{
			"Ce fichier contient toutes les signalisations qui ont été marquées comme DOUBLONS et qui doivent être SUPPRIMÉES.",
			"La colonne 'REGLE_APPLIQUEE' indique la règle qui a déterminé que cette signalisation est un doublon.",
			"La colonne 'DETAIL_REGLE' fournit une explication détaillée de la décision.",
			"La colonne 'ID_GROUPE' permet d'identifier les groupes de doublons (même valeur = même groupe).",
			"Note: Les signalisations avec IDPP commençant par 'PN' ne sont pas incluses dans ce rapport.",
		},
	}); err != nil {
		return nil, err
	}

	bundle.DeletionList = filepath.Join(dir, fmt.Sprintf("LISTE_Numeros_Signalisations_A_Supprimer_%s.csv", stamp))
	if err := csvio.WriteFile(bundle.DeletionList, listColumns, removed, &csvio.Banner{
		Title:       "LISTE DES NUMÉROS DE SIGNALISATION À SUPPRIMER",
		GeneratedAt: now(),
		Description: []string{
			"Ce fichier contient uniquement les NUMÉROS DE SIGNALISATION à supprimer.",
			"Il est conçu pour être facilement importé dans votre système de gestion.",
			"Pour plus de détails sur les raisons de suppression, consultez le fichier de rapport complet.",
			"Note: Les signalisations avec IDPP commençant par 'PN' ne sont pas incluses dans cette liste.",
		},
	}); err != nil {
		return nil, err
	}

	summary := buildSummary(result, inputName, stamp, now(), bundle, len(kept), len(removed))
	if opts.HTML {
		bundle.HTMLSummary = filepath.Join(dir, fmt.Sprintf("RESUME_Traitement_Doublons_%s.html", stamp))
		if err := writeHTMLSummary(bundle.HTMLSummary, summary); err != nil {
			return nil, err
		}
	}
	if opts.Text {
		bundle.TextSummary = filepath.Join(dir, fmt.Sprintf("RESUME_Traitement_Doublons_%s.txt", stamp))
		if err := writeTextSummary(bundle.TextSummary, summary); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// sortForReport orders records for the detailed reports: singletons first,
// then groups in numeric order, signalisation number ascending within each
// bucket. The returned slice is fresh; the result set keeps input order.
func sortForReport(records []*signalisation.Record) []*signalisation.Record {
	sorted := make([]*signalisation.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		gi, gj := groupRank(sorted[i].GroupID), groupRank(sorted[j].GroupID)
		if gi != gj {
			return gi < gj
		}
		return numeroRank(sorted[i].Numero()) < numeroRank(sorted[j].Numero())
	})
	return sorted
}

func groupRank(groupID string) int {
	if n, ok := strings.CutPrefix(groupID, "Groupe_"); ok {
		if v, err := strconv.Atoi(n); err == nil {
			return v
		}
	}
	// Singletons ("Aucun") lead the report.
	return 0
}

func numeroRank(numero string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(numero), 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return v
}
