package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EclecticGriffin/cider-parallel-test/internal/engine"
	"github.com/EclecticGriffin/cider-parallel-test/internal/ir"
)

// NewCellsCommand creates the cells command: list a translated component's
// cells, and optionally report which cells a group's assignments write.
func NewCellsCommand(opts *RootOptions) *cobra.Command {
	var groupName string

	cmd := &cobra.Command{
		Use:   "cells <netlist>",
		Short: "List a translated component's cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := loadComponent(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			for _, cell := range comp.Cells() {
				fmt.Fprintf(out, "%s: %s\n", cell.Name(), ir.PrototypeString(cell.Prototype()))
				for _, p := range cell.Ports() {
					fmt.Fprintf(out, "  %s: %d bit %s\n", p.Name(), p.Width(), p.Direction())
				}
			}

			if groupName == "" {
				return nil
			}
			group, ok := comp.FindGroup(ir.NewId(groupName))
			if !ok {
				return fmt.Errorf("component %q has no group %q", comp.Name(), groupName)
			}
			fmt.Fprintf(out, "group %s writes:\n", group.Name())
			for _, cell := range engine.DestCells(group.Assignments(), nil) {
				fmt.Fprintf(out, "  %s\n", cell.Name())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&groupName, "group", "", "also report the destination cells of this group's assignments")
	return cmd
}
