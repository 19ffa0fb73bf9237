package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/facet/internal/components"
	"github.com/alexisbeaulieu97/facet/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a dropdown definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := root.openLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			def, err := config.ParseFile(args[0])
			if err != nil {
				log.Error(err, "definition rejected")
				fmt.Fprintln(cmd.ErrOrStderr(), components.ErrorAlert(err.Error()).View())
				return newCommandError("validate dropdown definition", args[0], err, "Fix the reported field and run validate again")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d options, dropdown %q is valid\n", args[0], len(def.Options), def.ID)
			return nil
		},
	}

	return cmd
}
