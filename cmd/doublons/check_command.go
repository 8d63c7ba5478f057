package main

import (
	"github.com/spf13/cobra"

	"github.com/ybdn/DoublonsIDPP/internal/csvio"
	"github.com/ybdn/DoublonsIDPP/internal/dedup"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check <fichier.csv>",
		Short: "Analyse un fichier sans rien écrire (ni sauvegarde, ni rapports)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			file, err := csvio.ReadFile(args[0], csvio.ReadOptions{
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

			if jsonOutput {
				return writeJSON(cmd, checkOutput{RunID: result.RunID, Stats: result.Stats})
			}
			renderSummary(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Sortie JSON du résumé")
	return cmd
}

type checkOutput struct {
	RunID string      `json:"run_id"`
	Stats dedup.Stats `json:"stats"`
}
