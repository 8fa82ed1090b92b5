package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tetratelabs/asimd/asm/arm64"
)

func getTableCmd(gs *globalState) *cobra.Command {
	var (
		dump   bool
		opName string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the modified immediate table",
		Long: `Print the number of distinct 64-bit values reachable through a modified
immediate. With --dump, list them in ascending order with their slots.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter *arm64.ImmediateOp
			if opName != "" {
				op, err := arm64.ImmediateOpFromString(opName)
				if err != nil {
					return err
				}
				filter = &op
			}

			header := gs.color(color.Bold)
			fmt.Fprintln(gs.stdOut, header.Sprintf("entries: %d", arm64.ImmediateTableSize()))
			if !dump {
				return nil
			}

			var rows int
			arm64.WalkImmediateTable(func(value uint64, slots []arm64.ImmediateSlot) bool {
				if filter != nil && !arm64.IsImmediateEncodable(value, *filter) {
					return true
				}
				fmt.Fprintf(gs.stdOut, "0x%016x  %s\n", value, formatSlots(slots))
				rows++
				return limit <= 0 || rows < limit
			})
			gs.logger.Debugf("printed %d rows", rows)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "list every value")
	cmd.Flags().StringVar(&opName, "op", "", "only list values encodable by this family")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many rows, 0 for no limit")
	return cmd
}
