package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/ybdn/DoublonsIDPP/internal/dedup"
)

var stageLabels = []struct {
	stage dedup.Stage
	label string
}{
	{dedup.StageTri1, "Tri 1 (signalisation = personne)"},
	{dedup.StageTri2, "Tri 2 (UNA dans IDPP)"},
	{dedup.StageTri31, "Tri 3.1 (dates différentes)"},
	{dedup.StageTri32, "Tri 3.2 (présence photos)"},
	{dedup.StageTri33, "Tri 3.3 (numéro de signalisation)"},
}

func renderSummary(out io.Writer, result *dedup.Result) {
	stats := result.Stats

	fmt.Fprintln(out, renderTable("Statistiques globales",
		[]string{"Catégorie", "Nombre"},
		[][]string{
			{"Signalisations en entrée", strconv.Itoa(stats.Total)},
			{"Conservées (hors PN)", strconv.Itoa(stats.Kept)},
			{"À supprimer (hors PN)", strconv.Itoa(stats.Removed)},
			{"Exclues (IDPP 'PN')", strconv.Itoa(stats.Excluded)},
			{"Groupes de doublons", strconv.Itoa(stats.Groups)},
		},
		[]columnAlignment{alignLeft, alignRight}))

	fmt.Fprintln(out, renderTable("Répartition par identifiant GASPARD",
		[]string{"Préfixe", "Nombre"},
		[][]string{
			{"GN", strconv.Itoa(stats.CountGN)},
			{"PN", strconv.Itoa(stats.CountPN)},
			{"Autres", strconv.Itoa(stats.CountOther)},
		},
		[]columnAlignment{alignLeft, alignRight}))

	if stats.Groups > 0 {
		rows := make([][]string, 0, len(stageLabels))
		for _, entry := range stageLabels {
			rows = append(rows, []string{entry.label, strconv.Itoa(stats.GroupsByStage[entry.stage])})
		}
		fmt.Fprintln(out, renderTable("Groupes résolus par tri",
			[]string{"Tri", "Groupes"},
			rows,
			[]columnAlignment{alignLeft, alignRight}))
	}

	rules := make([]string, 0, len(stats.RecordsByRule))
	for rule := range stats.RecordsByRule {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		if stats.RecordsByRule[rules[i]] != stats.RecordsByRule[rules[j]] {
			return stats.RecordsByRule[rules[i]] > stats.RecordsByRule[rules[j]]
		}
		return rules[i] < rules[j]
	})
	ruleRows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		ruleRows = append(ruleRows, []string{rule, strconv.Itoa(stats.RecordsByRule[rule])})
	}
	fmt.Fprintln(out, renderTable("Règles appliquées",
		[]string{"Règle", "Signalisations"},
		ruleRows,
		[]columnAlignment{alignLeft, alignRight}))

	if stats.DateParseErrors > 0 {
		fmt.Fprintf(out, "Attention: %d date(s) de création illisible(s), voir le journal.\n", stats.DateParseErrors)
	}
}
