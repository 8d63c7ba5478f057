package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ybdn/DoublonsIDPP/internal/backup"
	"github.com/ybdn/DoublonsIDPP/internal/csvio"
	"github.com/ybdn/DoublonsIDPP/internal/dedup"
	"github.com/ybdn/DoublonsIDPP/internal/report"
	"github.com/ybdn/DoublonsIDPP/internal/runlock"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var exportsDir string
	var noBackup bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "process <fichier.csv>",
		Short: "Traite un fichier de signalisations et génère les rapports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			exports := cfg.Paths.ExportsDir
			if exportsDir != "" {
				exports, err = expandDir(exportsDir)
				if err != nil {
					return err
				}
			}

			lock, err := runlock.Acquire(exports)
			if err != nil {
				if errors.Is(err, runlock.ErrLocked) {
					return fmt.Errorf("%w (dossier: %s)", err, exports)
				}
				return err
			}
			defer lock.Release()

			inputPath := args[0]
			if !noBackup {
				saved, err := backup.Save(inputPath, cfg.Paths.BackupsDir)
				if err != nil {
					return fmt.Errorf("sauvegarde préalable: %w", err)
				}
				logger.Info("sauvegarde des données originales créée", "chemin", saved)
			}

			file, err := csvio.ReadFile(inputPath, csvio.ReadOptions{
				Encoding:  cfg.Input.Encoding,
				Separator: cfg.SeparatorRune(),
			})
			if err != nil {
				return err
			}

			engine := dedup.NewEngine(logger)
			result, err := engine.Classify(file.Header, file.Records)
			if err != nil {
				return err
			}

			bundle, err := report.Write(result, filepath.Base(inputPath), exports, report.Options{
				HTML: cfg.Reports.HTML,
				Text: cfg.Reports.Text,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, processOutput{
					RunID:   result.RunID,
					Stats:   result.Stats,
					Exports: bundle,
				})
			}

			out := cmd.OutOrStdout()
			renderSummary(out, result)
			fmt.Fprintf(out, "Rapports générés dans: %s\n", bundle.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&exportsDir, "exports-dir", "", "Dossier des exports (remplace la configuration)")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Ne pas copier le fichier d'entrée avant traitement")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Sortie JSON du résumé")
	return cmd
}

type processOutput struct {
	RunID   string         `json:"run_id"`
	Stats   dedup.Stats    `json:"stats"`
	Exports *report.Bundle `json:"exports"`
}
