package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EclecticGriffin/cider-parallel-test/internal/ir"
	"github.com/EclecticGriffin/cider-parallel-test/internal/netlist"
	"github.com/EclecticGriffin/cider-parallel-test/internal/translator"
)

// NewInspectCommand creates the inspect command: load, translate and print a
// component.
func NewInspectCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <netlist>",
		Short: "Translate a netlist and print the concurrent graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := loadComponent(args[0])
			if err != nil {
				return err
			}
			return ir.Print(cmd.OutOrStdout(), comp)
		},
	}
}

// loadComponent runs the netlist → source graph → concurrent graph pipeline.
func loadComponent(path string) (*ir.Component, error) {
	spec, err := netlist.Load(path)
	if err != nil {
		return nil, err
	}
	src, err := spec.Build()
	if err != nil {
		return nil, fmt.Errorf("build netlist %s: %w", path, err)
	}
	comp, err := translator.Translate(src)
	if err != nil {
		return nil, fmt.Errorf("translate netlist %s: %w", path, err)
	}
	return comp, nil
}
