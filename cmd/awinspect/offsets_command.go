package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/32bitkid/anotherworld/resource"
)

func newOffsetsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "offsets SNAPSHOT",
		Short: "List the polygon buffer offsets drawn by scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := ctx.inspect(cmd, args[0])
			if err != nil {
				return err
			}

			table := make(map[string][]string)
			rows := [][]string{}
			for _, res := range resources {
				if len(res.Offsets) == 0 {
					continue
				}
				id := resource.Hex(res.ID, 2)
				table[id] = res.Offsets
				rows = append(rows, []string{id, fmt.Sprint(len(res.Offsets)), strings.Join(res.Offsets, " ")})
			}
			if asJSON {
				return writeJSON(cmd, table)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				cmd.OutOrStdout(),
				[]string{"Buffer", "Count", "Offsets"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the offsets as JSON")
	return cmd
}
