package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/facet/internal/config"
	"github.com/alexisbeaulieu97/facet/internal/dropdown"
)

type filterOptions struct {
	JSON bool
}

type filterOutput struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

func newFilterCmd(root *rootFlags) *cobra.Command {
	opts := filterOptions{}

	cmd := &cobra.Command{
		Use:   "filter <file> <term>",
		Short: "Print the options whose label matches a search term",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closer, err := root.openLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			def, err := config.ParseFile(args[0])
			if err != nil {
				return newCommandError("load dropdown definition", args[0], err, "Run 'facet validate' on the file for details")
			}

			matches := dropdown.Filter(def.Catalog(), args[1])
			log.Event("filter", map[string]any{"term": args[1], "matches": len(matches), "options": len(def.Options)})

			if opts.JSON {
				return writeFilterJSON(cmd, matches)
			}
			return writeFilterTable(cmd, matches)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output JSON")

	return cmd
}

func writeFilterTable(cmd *cobra.Command, matches dropdown.Catalog) error {
	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No options")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "VALUE\tLABEL\tSTATE")
	for _, opt := range matches {
		state := "enabled"
		if opt.Disabled {
			state = "disabled"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", opt.Value, opt.Label, state)
	}
	return writer.Flush()
}

func writeFilterJSON(cmd *cobra.Command, matches dropdown.Catalog) error {
	payload := make([]filterOutput, len(matches))
	for i, opt := range matches {
		payload[i] = filterOutput{Value: opt.Value, Label: opt.Label, Disabled: opt.Disabled}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
