package main

import (
	"fmt"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/32bitkid/anotherworld/resource"
)

func newResourcesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resources SNAPSHOT",
		Short: "List every resource in a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := ctx.inspect(cmd, args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, resources)
			}

			rows := make([][]string, 0, len(resources))
			for _, res := range resources {
				rows = append(rows, resourceRow(res))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				cmd.OutOrStdout(),
				[]string{"ID", "Class", "Type", "Size", "Contents"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the decoded catalog as JSON")
	return cmd
}

func resourceRow(res resource.Resource) []string {
	return []string{
		resource.Hex(res.ID, 2),
		res.Class.Name(),
		resource.Hex(int(res.Code), 2),
		humanize.Bytes(uint64(res.Size)),
		res.Summary(),
	}
}
