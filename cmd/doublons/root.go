package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "doublons",
		Short:         "Traitement des doublons de signalisations IDPP",
		Long: "doublons analyse un export CSV de signalisations, identifie les groupes de doublons " +
			"par identifiant GASPARD, numéro de personne et identité, applique la cascade de tris " +
			"(Tri 1, Tri 2, Tri 3.1 à 3.3) et génère les rapports de conservation et de suppression.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Chemin du fichier de configuration")

	rootCmd.AddCommand(newProcessCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
