package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/32bitkid/anotherworld/resource"
)

func newScriptCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "script SNAPSHOT ID",
		Short: "Show the classified disassembly of a script resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := ctx.inspect(cmd, args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1], len(resources))
			if err != nil {
				return err
			}
			s, ok := resources[id].Payload.(resource.Script)
			if !ok {
				return fmt.Errorf("resource %s is %s, not a script", resource.Hex(id, 2), resources[id].Class.Name())
			}
			if asJSON {
				return writeJSON(cmd, s.Lines)
			}

			rows := make([][]string, 0, len(s.Lines))
			for _, l := range s.Lines {
				rows = append(rows, lineRow(l))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				cmd.OutOrStdout(),
				[]string{"Addr", "Instruction", "References"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the script lines as JSON")
	return cmd
}

func lineRow(l resource.Line) []string {
	var (
		words []string
		refs  []string
	)
	for _, p := range l.Parts {
		if p.Value != "" {
			words = append(words, p.Value)
		}
		switch p.Role {
		case resource.RoleOpcode, resource.RoleText:
		case resource.RoleAddress:
			if p.Target >= 0 {
				refs = append(refs, fmt.Sprintf("line %d", p.Target))
			} else {
				refs = append(refs, "addr "+p.Value+" unresolved")
			}
		default:
			refs = append(refs, p.Role.String()+" "+p.Value)
		}
	}
	if l.Draw != nil {
		refs = append(refs, fmt.Sprintf("poly%d x=%s y=%s zoom=%s", l.Draw.Buffer, l.Draw.X, l.Draw.Y, l.Draw.Zoom))
	}
	return []string{l.AddressHex(), strings.Join(words, " "), strings.Join(refs, ", ")}
}
