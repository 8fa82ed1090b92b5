package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tetratelabs/asimd/asm/arm64"
)

// parseValue accepts any Go integer literal. Negative values are taken as
// their two's complement.
func parseValue(s string) (uint64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return v, nil
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %s", s)
	}
	return uint64(v), nil
}

// parseOps returns every ImmediateOp, or the one named.
func parseOps(name string) ([]arm64.ImmediateOp, error) {
	if name == "" {
		return arm64.ImmediateOps(), nil
	}
	op, err := arm64.ImmediateOpFromString(name)
	if err != nil {
		return nil, err
	}
	return []arm64.ImmediateOp{op}, nil
}

func formatSlots(slots []arm64.ImmediateSlot) string {
	s := make([]string, len(slots))
	for i, slot := range slots {
		s[i] = slot.String()
	}
	return strings.Join(s, ", ")
}

func getImmCmd(gs *globalState) *cobra.Command {
	var opName string
	cmd := &cobra.Command{
		Use:   "imm VALUE...",
		Short: "Show how 64-bit values encode as modified immediates",
		Long: `For each value, print the instruction families able to materialize it
with their op:abc:cmode:defgh bits, followed by every producing slot.`,
		Example: `  asimd imm 0xff 0x3f8000003f800000
  asimd imm --op fmovdp 0x3ff0000000000000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOps(opName)
			if err != nil {
				return err
			}
			yes, no := gs.color(color.FgGreen), gs.color(color.FgRed)
			for _, arg := range args {
				value, err := parseValue(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(gs.stdOut, "0x%016x\n", value)
				for _, op := range ops {
					if arm64.IsImmediateEncodable(value, op) {
						fmt.Fprintf(gs.stdOut, "  %-6s %s\n", op, yes.Sprintf("0x%08x", arm64.ImmediateEncoding(value, op)))
					} else {
						fmt.Fprintf(gs.stdOut, "  %-6s %s\n", op, no.Sprint("not encodable"))
					}
				}
				if slots := arm64.ImmediateSlots(value); len(slots) > 0 {
					fmt.Fprintf(gs.stdOut, "  slots: %s\n", formatSlots(slots))
				}
				gs.logger.Debugf("%#x is encodable by %v", value, arm64.ImmediateOpsFor(value))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opName, "op", "", "only show one family: MOVI, MVNI, ORR, BIC, FMOVSP or FMOVDP")
	return cmd
}
