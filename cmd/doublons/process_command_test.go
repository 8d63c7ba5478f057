package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ybdn/DoublonsIDPP/internal/dedup"
	"github.com/ybdn/DoublonsIDPP/internal/report"
)

func TestProcessCommandGeneratesReports(t *testing.T) {
	env := setupCLITestEnv(t)
	input := writeInputCSV(t, env.baseDir)

	out, _, err := runCLI(t, []string{"process", input}, env.configPath)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	requireContains(t, out, "Rapports générés dans:")
	requireContains(t, out, "Statistiques globales")

	entries, err := os.ReadDir(env.cfg.Paths.ExportsDir)
	if err != nil {
		t.Fatalf("read exports dir: %v", err)
	}
	var runDir string
	for _, e := range entries {
		if e.IsDir() {
			runDir = filepath.Join(env.cfg.Paths.ExportsDir, e.Name())
		}
	}
	if runDir == "" {
		t.Fatal("no timestamped export directory created")
	}
	files, err := os.ReadDir(runDir)
	if err != nil {
		t.Fatal(err)
	}
	// Two detailed reports, the deletion list, and both summaries.
	if len(files) != 5 {
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Name())
		}
		t.Fatalf("expected 5 artifacts, got %v", names)
	}

	backups, err := os.ReadDir(env.cfg.Paths.BackupsDir)
	if err != nil {
		t.Fatalf("read backups dir: %v", err)
	}
	if len(backups) != 1 || !strings.HasPrefix(backups[0].Name(), "backup_") {
		t.Fatalf("expected one backup, got %v", backups)
	}
}

func TestProcessCommandNoBackup(t *testing.T) {
	env := setupCLITestEnv(t)
	input := writeInputCSV(t, env.baseDir)

	if _, _, err := runCLI(t, []string{"process", "--no-backup", input}, env.configPath); err != nil {
		t.Fatalf("process: %v", err)
	}
	entries, err := os.ReadDir(env.cfg.Paths.BackupsDir)
	if err != nil {
		t.Fatalf("read backups dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("backup created despite --no-backup: %v", entries)
	}
}

func TestProcessCommandJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	input := writeInputCSV(t, env.baseDir)

	out, _, err := runCLI(t, []string{"process", "--json", input}, env.configPath)
	if err != nil {
		t.Fatalf("process --json: %v", err)
	}

	var payload struct {
		RunID   string         `json:"run_id"`
		Stats   dedup.Stats    `json:"stats"`
		Exports *report.Bundle `json:"exports"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if payload.RunID == "" {
		t.Fatal("run_id missing from JSON output")
	}
	if payload.Stats.Total != 4 || payload.Stats.Excluded != 1 {
		t.Fatalf("unexpected stats: %+v", payload.Stats)
	}
	if payload.Exports == nil || payload.Exports.Dir == "" {
		t.Fatal("exports bundle missing from JSON output")
	}
}

func TestProcessCommandExportsDirOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	input := writeInputCSV(t, env.baseDir)
	override := filepath.Join(env.baseDir, "autre-exports")

	if _, _, err := runCLI(t, []string{"process", "--exports-dir", override, input}, env.configPath); err != nil {
		t.Fatalf("process: %v", err)
	}
	entries, err := os.ReadDir(override)
	if err != nil {
		t.Fatalf("override dir not used: %v", err)
	}
	foundRun := false
	for _, e := range entries {
		if e.IsDir() {
			foundRun = true
		}
	}
	if !foundRun {
		t.Fatal("no run directory under the override exports dir")
	}
}

func TestProcessCommandMissingInput(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"process", filepath.Join(env.baseDir, "absent.csv")}, env.configPath)
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}

func TestProcessCommandMissingColumns(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "tronque.csv")
	if err := os.WriteFile(input, []byte("NUMERO_SIGNALISATION\n123\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, []string{"process", input}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "colonnes requises manquantes") {
		t.Fatalf("expected a missing-columns error, got %v", err)
	}
}
