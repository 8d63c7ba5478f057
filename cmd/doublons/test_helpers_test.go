package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ybdn/DoublonsIDPP/internal/config"
	"github.com/ybdn/DoublonsIDPP/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	cfg := testsupport.NewConfig(t)
	configPath := filepath.Join(homeDir, ".config", "doublons", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nbackups_dir = %q\nexports_dir = %q\nlog_dir = %q\n",
		cfg.Paths.BackupsDir,
		cfg.Paths.ExportsDir,
		cfg.Paths.LogDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeInputCSV drops a small valid signalisation export into the test dir.
func writeInputCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "export_gaspard.csv")
	content := strings.Join([]string{
		"NUMERO_SIGNALISATION,NUMERO_PERSONNE,IDENTIFIANT_GASPARD,NOM,PRENOM,DATE_NAISSANCE_MIN,DATE_CREATION_FAED,NUM_PROCEDURE,NUMERO_CLICHE",
		"1001,1001,GNA,DUPONT,JEAN,01/01/1980,01/01/2023,111/222/2023,C1",
		"1002,1001,GNA,DUPONT,JEAN,01/01/1980,02/01/2023,111/222/2023,C2",
		"7,7,GNC,MARTIN,PAUL,02/02/1990,05/05/2022,333/444/2022,C3",
		"8,8,PN0001,EXCLU,TEST,03/03/1970,06/06/2021,555/666/2021,",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input csv: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
