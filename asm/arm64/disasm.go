package arm64

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/arch/arm64/arm64asm"
)

// Disassemble returns one line per instruction word of code, formatted as
// "offset: word  text" in GNU syntax. Words the decoder does not recognize,
// which includes the ARMv8.2 cryptographic extensions, are printed as .word.
//
// This is a debugging aid; len(code) must be a multiple of four.
func Disassemble(code []byte) ([]string, error) {
	if len(code)%4 != 0 {
		return nil, fmt.Errorf("code length %d is not a multiple of 4", len(code))
	}
	lines := make([]string, 0, len(code)/4)
	for offset := 0; offset < len(code); offset += 4 {
		word := binary.LittleEndian.Uint32(code[offset:])
		text := fmt.Sprintf(".word %#08x", word)
		if inst, err := arm64asm.Decode(code[offset:]); err == nil {
			text = arm64asm.GNUSyntax(inst)
		}
		lines = append(lines, fmt.Sprintf("%#06x: %08x  %s", offset, word, text))
	}
	return lines, nil
}
