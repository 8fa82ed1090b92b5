package arm64

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tetratelabs/asimd/asm"
)

// Arm64 registers.
// https://developer.arm.com/documentation/dui0801/a/Overview-of-AArch64-state/Predeclared-core-register-names-in-AArch64-state
// Note: naming convention follows the Go assembler: https://go.dev/doc/asm
const (
	// General purpose registers.

	RegR0 asm.Register = asm.NilRegister + 1 + iota
	RegR1
	RegR2
	RegR3
	RegR4
	RegR5
	RegR6
	RegR7
	RegR8
	RegR9
	RegR10
	RegR11
	RegR12
	RegR13
	RegR14
	RegR15
	RegR16
	RegR17
	RegR18
	RegR19
	RegR20
	RegR21
	RegR22
	RegR23
	RegR24
	RegR25
	RegR26
	RegR27
	RegR28
	RegR29
	RegR30
	// RegRZR is the zero register. It shares hardware index 31 with RegSP.
	RegRZR
	// RegSP is the stack pointer, valid as a load/store base.
	RegSP

	// Vector registers.

	RegV0
	RegV1
	RegV2
	RegV3
	RegV4
	RegV5
	RegV6
	RegV7
	RegV8
	RegV9
	RegV10
	RegV11
	RegV12
	RegV13
	RegV14
	RegV15
	RegV16
	RegV17
	RegV18
	RegV19
	RegV20
	RegV21
	RegV22
	RegV23
	RegV24
	RegV25
	RegV26
	RegV27
	RegV28
	RegV29
	RegV30
	RegV31
)

// RegisterCategory distinguishes the two register files an ASIMD instruction
// can reference.
type RegisterCategory byte

const (
	// RegisterCategoryInvalid is returned for registers outside of both files,
	// including asm.NilRegister.
	RegisterCategoryInvalid RegisterCategory = iota
	RegisterCategoryGeneral
	RegisterCategoryVector
)

// String implements fmt.Stringer.
func (c RegisterCategory) String() string {
	switch c {
	case RegisterCategoryGeneral:
		return "general-purpose"
	case RegisterCategoryVector:
		return "vector"
	default:
		return "invalid"
	}
}

// ErrUnknownRegister is returned by RegisterByName for unknown names.
var ErrUnknownRegister = errors.New("unknown register")

// Category returns the register file r belongs to.
func Category(r asm.Register) RegisterCategory {
	switch {
	case isIntRegister(r):
		return RegisterCategoryGeneral
	case isVectorRegister(r):
		return RegisterCategoryVector
	default:
		return RegisterCategoryInvalid
	}
}

// Encoding returns the 5-bit hardware index of r. Both RegRZR and RegSP
// encode as 31; which one is meant depends on the instruction field.
func Encoding(r asm.Register) uint32 {
	switch {
	case r == RegSP:
		return 31
	case isIntRegister(r):
		return uint32(r - RegR0)
	case isVectorRegister(r):
		return uint32(r - RegV0)
	default:
		return 0
	}
}

// RegisterName returns the Go assembler name of r.
func RegisterName(r asm.Register) string {
	switch {
	case r == asm.NilRegister:
		return "nil"
	case r == RegRZR:
		return "RZR"
	case r == RegSP:
		return "RSP"
	case isIntRegister(r):
		return fmt.Sprintf("R%d", r-RegR0)
	case isVectorRegister(r):
		return fmt.Sprintf("V%d", r-RegV0)
	default:
		return "invalid"
	}
}

// RegisterByName parses a register name. Besides the names returned by
// RegisterName it accepts the A64 spellings xN, wN, xzr, wzr, sp and vN, in
// any case.
func RegisterByName(name string) (asm.Register, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "rzr", "xzr", "wzr", "zr":
		return RegRZR, nil
	case "rsp", "sp", "wsp":
		return RegSP, nil
	case "":
		return asm.NilRegister, fmt.Errorf("%w: empty name", ErrUnknownRegister)
	}

	var base asm.Register
	var limit uint64
	switch n[0] {
	case 'r', 'x', 'w':
		base, limit = RegR0, 30
	case 'v':
		base, limit = RegV0, 31
	default:
		return asm.NilRegister, fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	idx, err := strconv.ParseUint(n[1:], 10, 8)
	if err != nil || idx > limit {
		return asm.NilRegister, fmt.Errorf("%w: %s", ErrUnknownRegister, name)
	}
	return base + asm.Register(idx), nil
}

func isIntRegister(r asm.Register) bool {
	return RegR0 <= r && r <= RegSP
}

func isVectorRegister(r asm.Register) bool {
	return RegV0 <= r && r <= RegV31
}
