package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [positions-file]",
		Short: "Validate a positions file",
		Long: `Validate a positions file and, with --rates, the tax settings file.
Legacy benefit entries are migrated while loading; use --write to save the
migrated file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			catalog, err := a.parser.LoadCatalog(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Positions file %s is valid (%d companies, %d positions)\n",
				args[0], len(catalog.Companies), len(catalog.Positions))

			if write, _ := cmd.Flags().GetBool("write"); write {
				if err := a.parser.SaveCatalog(args[0], catalog); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().Bool("write", false, "Save the file back in the current format")
	return cmd
}
