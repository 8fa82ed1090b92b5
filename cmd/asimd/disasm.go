package main

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tetratelabs/asimd/asm/arm64"
)

// parseWords reads instruction words written in hex, with or without 0x.
func parseWords(args []string) ([]byte, error) {
	code := make([]byte, 0, 4*len(args))
	for _, arg := range args {
		s := strings.TrimPrefix(strings.ToLower(arg), "0x")
		w, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid instruction word %s", arg)
		}
		code = binary.LittleEndian.AppendUint32(code, uint32(w))
	}
	return code, nil
}

func getDisasmCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:     "disasm WORD...",
		Short:   "Disassemble instruction words",
		Example: `  asimd disasm 4ea38441 0x4f07e7e1`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseWords(args)
			if err != nil {
				return err
			}
			lines, err := arm64.Disassemble(code)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(gs.stdOut, line)
			}
			return nil
		},
	}
}
