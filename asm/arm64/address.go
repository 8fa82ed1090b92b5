package arm64

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tetratelabs/asimd/asm"
)

// AddressingMode is the addressing mode of a structure load or store.
type AddressingMode byte

const (
	// AddressingModeBase addresses [base].
	AddressingModeBase AddressingMode = iota
	// AddressingModePostIndexRegister addresses [base] and then adds the
	// offset register to base.
	AddressingModePostIndexRegister
	// AddressingModePostIndexImmediate addresses [base] and then adds the
	// transfer size to base.
	AddressingModePostIndexImmediate
)

// String implements fmt.Stringer.
func (m AddressingMode) String() string {
	switch m {
	case AddressingModeBase:
		return "base"
	case AddressingModePostIndexRegister:
		return "post-index register"
	case AddressingModePostIndexImmediate:
		return "post-index immediate"
	default:
		return fmt.Sprintf("AddressingMode(%d)", byte(m))
	}
}

// AddressOperand is the memory operand of the structure loads and stores.
type AddressOperand struct {
	Mode AddressingMode
	// Base is a general-purpose register or RegSP.
	Base asm.Register
	// Offset is only set for AddressingModePostIndexRegister.
	Offset asm.Register
	// Imm is only set for AddressingModePostIndexImmediate. The architecture
	// fixes the increment to the transfer size, so Imm is not encoded: it is
	// checked against that size.
	Imm int64
}

// BaseAddress returns the operand [base].
func BaseAddress(base asm.Register) AddressOperand {
	return AddressOperand{Mode: AddressingModeBase, Base: base}
}

// PostIndexRegister returns the operand [base], offset.
func PostIndexRegister(base, offset asm.Register) AddressOperand {
	return AddressOperand{Mode: AddressingModePostIndexRegister, Base: base, Offset: offset}
}

// PostIndexImmediate returns the operand [base], #imm.
func PostIndexImmediate(base asm.Register, imm int64) AddressOperand {
	return AddressOperand{Mode: AddressingModePostIndexImmediate, Base: base, Imm: imm}
}

// String implements fmt.Stringer.
func (a AddressOperand) String() string {
	switch a.Mode {
	case AddressingModePostIndexRegister:
		return fmt.Sprintf("[%s], %s", RegisterName(a.Base), RegisterName(a.Offset))
	case AddressingModePostIndexImmediate:
		return fmt.Sprintf("[%s], #%d", RegisterName(a.Base), a.Imm)
	default:
		return fmt.Sprintf("[%s]", RegisterName(a.Base))
	}
}

// ErrInvalidAddress is returned by ParseAddressOperand.
var ErrInvalidAddress = errors.New("invalid address operand")

// ParseAddressOperand parses the forms printed by AddressOperand.String:
// "[x0]", "[x0], x1" and "[x0], #16".
func ParseAddressOperand(s string) (AddressOperand, error) {
	s = strings.TrimSpace(s)
	end := strings.IndexByte(s, ']')
	if !strings.HasPrefix(s, "[") || end < 0 {
		return AddressOperand{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	base, err := RegisterByName(strings.TrimSpace(s[1:end]))
	if err != nil {
		return AddressOperand{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}

	rest := strings.TrimSpace(s[end+1:])
	if rest == "" {
		return BaseAddress(base), nil
	}
	if !strings.HasPrefix(rest, ",") {
		return AddressOperand{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	rest = strings.TrimSpace(rest[1:])
	if imm, ok := strings.CutPrefix(rest, "#"); ok {
		v, err := strconv.ParseInt(imm, 0, 64)
		if err != nil {
			return AddressOperand{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
		}
		return PostIndexImmediate(base, v), nil
	}
	offset, err := RegisterByName(rest)
	if err != nil {
		return AddressOperand{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	return PostIndexRegister(base, offset), nil
}

// encoding returns the post-index flag (bit 23), Rm and Rn of a structure
// load or store. Rm=31 selects the immediate form.
func (a AddressOperand) encoding() uint32 {
	switch a.Mode {
	case AddressingModePostIndexRegister:
		return 0b1<<23 | Encoding(a.Offset)<<16 | Encoding(a.Base)<<5
	case AddressingModePostIndexImmediate:
		return 0b1<<23 | 0b11111<<16 | Encoding(a.Base)<<5
	default:
		return Encoding(a.Base) << 5
	}
}
