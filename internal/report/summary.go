package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ybdn/DoublonsIDPP/internal/dedup"
)

// Summary is the data shared by the HTML and text renderings.
type Summary struct {
	RunID     string
	InputName string
	Date      string
	Dir       string

	TotalSansPN int
	Kept        int
	Removed     int
	Groups      int
	ExcludedPN  int

	CountGN    int
	CountPN    int
	CountOther int
	TotalAll   int

	Rules []RuleCount
	Files []FileEntry
}

// RuleCount is one row of the per-rule breakdown.
type RuleCount struct {
	Rule    string
	Count   int
	Percent string
}

// FileEntry describes one generated artifact.
type FileEntry struct {
	Name        string
	Description string
	Count       int
}

func buildSummary(result *dedup.Result, inputName, stamp string, now time.Time, bundle *Bundle, keptCount, removedCount int) *Summary {
	stats := result.Stats
	totalSansPN := stats.Total - stats.Excluded
	s := &Summary{
		RunID:       result.RunID,
		InputName:   inputName,
		Date:        now.Format("02/01/2006 à 15:04"),
		Dir:         bundle.Dir,
		TotalSansPN: totalSansPN,
		Kept:        stats.Kept,
		Removed:     stats.Removed,
		Groups:      stats.Groups,
		ExcludedPN:  stats.Excluded,
		CountGN:     stats.CountGN,
		CountPN:     stats.CountPN,
		CountOther:  stats.CountOther,
		TotalAll:    stats.Total,
	}

	rules := make([]RuleCount, 0, len(stats.RecordsByRule))
	for rule, count := range stats.RecordsByRule {
		if rule == dedup.RuleExclusionPN {
			continue
		}
		rules = append(rules, RuleCount{
			Rule:    rule,
			Count:   count,
			Percent: percent(count, totalSansPN),
		})
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Count != rules[j].Count {
			return rules[i].Count > rules[j].Count
		}
		return rules[i].Rule < rules[j].Rule
	})
	s.Rules = rules

	s.Files = []FileEntry{
		{Name: filepath.Base(bundle.KeptReport), Description: "Rapport détaillé des signalisations conservées", Count: keptCount},
		{Name: filepath.Base(bundle.RemoveReport), Description: "Rapport détaillé des signalisations à supprimer", Count: removedCount},
		{Name: filepath.Base(bundle.DeletionList), Description: "Liste simplifiée des numéros de signalisation à supprimer", Count: removedCount},
	}
	return s
}

func percent(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}

var htmlSummaryTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Résumé du traitement des doublons</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        h1 { color: #003366; }
        h2 { color: #0066cc; margin-top: 20px; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
        .footer { margin-top: 30px; font-size: 0.8em; color: #666; }
        .note { color: #cc0000; margin: 15px 0; }
    </style>
</head>
<body>
    <h1>Résumé du traitement des doublons de signalisations</h1>
    <p><strong>Date du traitement:</strong> {{.Date}}</p>
    <p><strong>Fichier traité:</strong> {{.InputName}}</p>
    <p><strong>Identifiant de traitement:</strong> {{.RunID}}</p>

    <div class="note">
        <p><strong>Note importante:</strong> Les {{.ExcludedPN}} signalisations avec IDPP commençant par 'PN' ont été exclues des statistiques et des rapports de suppression.</p>
    </div>

    <h2>Statistiques globales (hors PN)</h2>
    <table>
        <tr><th>Catégorie</th><th>Nombre</th></tr>
        <tr><td>Total des signalisations (hors PN)</td><td>{{.TotalSansPN}}</td></tr>
        <tr><td>Signalisations à conserver</td><td>{{.Kept}}</td></tr>
        <tr><td>Signalisations à supprimer</td><td>{{.Removed}}</td></tr>
        <tr><td>Nombre de groupes de doublons identifiés</td><td>{{.Groups}}</td></tr>
    </table>

    <h2>Répartition par type d'identifiant GASPARD</h2>
    <table>
        <tr><th>Type d'IDPP</th><th>Nombre</th><th>Traitement</th></tr>
        <tr><td>IDPP commençant par GN</td><td>{{.CountGN}}</td><td>Analysés pour doublons</td></tr>
        <tr><td>IDPP commençant par PN</td><td>{{.CountPN}}</td><td>Exclus automatiquement</td></tr>
        <tr><td>Autres formats d'IDPP</td><td>{{.CountOther}}</td><td>Analysés pour doublons</td></tr>
    </table>

    <h2>Détail des règles appliquées (hors PN)</h2>
    <table>
        <tr><th>Règle</th><th>Nombre</th><th>Pourcentage</th></tr>
        {{range .Rules}}<tr><td>{{.Rule}}</td><td>{{.Count}}</td><td>{{.Percent}}</td></tr>
        {{end}}
    </table>

    <h2>Fichiers générés</h2>
    <table>
        <tr><th>Fichier</th><th>Description</th><th>Nombre d'enregistrements</th></tr>
        {{range .Files}}<tr><td>{{.Name}}</td><td>{{.Description}}</td><td>{{.Count}}</td></tr>
        {{end}}
    </table>

    <div class="footer">
        <p>Rapport généré automatiquement par l'outil de traitement des doublons de signalisations.</p>
        <p>Pôle Judiciaire de la Gendarmerie Nationale - Département du Fichier Automatisé des Empreintes Digitales.</p>
        <p>Tous les fichiers se trouvent dans le dossier: {{.Dir}}</p>
    </div>
</body>
</html>
`))

func writeHTMLSummary(path string, s *Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("création du résumé HTML: %w", err)
	}
	if err := htmlSummaryTmpl.Execute(f, s); err != nil {
		f.Close()
		return fmt.Errorf("rendu du résumé HTML: %w", err)
	}
	return f.Close()
}

func writeTextSummary(path string, s *Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("création du résumé texte: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "RÉSUMÉ DU TRAITEMENT DES DOUBLONS IDPP - %s\n\n", s.Date)
	fmt.Fprintf(f, "Fichier traité: %s\n", s.InputName)
	fmt.Fprintf(f, "Identifiant de traitement: %s\n", s.RunID)
	fmt.Fprintf(f, "Dossier des exports: %s\n", s.Dir)
	fmt.Fprintf(f, "Note: Les %d signalisations avec IDPP commençant par 'PN' ont été exclues des statistiques.\n\n", s.ExcludedPN)

	global := table.NewWriter()
	global.SetOutputMirror(f)
	global.SetStyle(table.StyleLight)
	global.SetTitle("Statistiques globales (hors PN)")
	global.AppendHeader(table.Row{"Catégorie", "Nombre"})
	global.AppendRows([]table.Row{
		{"Total des signalisations (hors PN)", s.TotalSansPN},
		{"Signalisations à conserver", s.Kept},
		{"Signalisations à supprimer", s.Removed},
		{"Groupes de doublons identifiés", s.Groups},
	})
	global.Render()
	fmt.Fprintln(f)

	split := table.NewWriter()
	split.SetOutputMirror(f)
	split.SetStyle(table.StyleLight)
	split.SetTitle("Répartition par type d'identifiant GASPARD")
	split.AppendHeader(table.Row{"Type d'IDPP", "Nombre", "Traitement"})
	split.AppendRows([]table.Row{
		{"GN", s.CountGN, "Analysés pour doublons"},
		{"PN", s.CountPN, "Exclus automatiquement"},
		{"Autres", s.CountOther, "Analysés pour doublons"},
	})
	split.Render()
	fmt.Fprintln(f)

	rules := table.NewWriter()
	rules.SetOutputMirror(f)
	rules.SetStyle(table.StyleLight)
	rules.SetTitle("Détail des règles appliquées (hors PN)")
	rules.AppendHeader(table.Row{"Règle", "Nombre", "Pourcentage"})
	for _, r := range s.Rules {
		rules.AppendRow(table.Row{r.Rule, r.Count, r.Percent})
	}
	rules.Render()
	fmt.Fprintln(f)

	files := table.NewWriter()
	files.SetOutputMirror(f)
	files.SetStyle(table.StyleLight)
	files.SetTitle("Fichiers générés")
	files.AppendHeader(table.Row{"Fichier", "Description", "Enregistrements"})
	for _, fe := range s.Files {
		files.AppendRow(table.Row{fe.Name, fe.Description, fe.Count})
	}
	files.Render()
	return nil
}
