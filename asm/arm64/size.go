package arm64

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidElementSize is returned when a width does not name a lane size.
	ErrInvalidElementSize = errors.New("invalid element size")
	// ErrInvalidASIMDSize is returned when a width does not name a register size.
	ErrInvalidASIMDSize = errors.New("invalid ASIMD register size")
)

// ElementSize is the width of one vector lane.
//
// The value is the 2-bit size code used by most ASIMD encodings.
type ElementSize byte

const (
	// ElementSizeByte is an 8-bit lane (B).
	ElementSizeByte ElementSize = iota
	// ElementSizeHalfWord is a 16-bit lane (H).
	ElementSizeHalfWord
	// ElementSizeWord is a 32-bit lane (S).
	ElementSizeWord
	// ElementSizeDoubleWord is a 64-bit lane (D).
	ElementSizeDoubleWord
)

// Bits returns the lane width in bits.
func (e ElementSize) Bits() int {
	return 8 << e
}

// Bytes returns the lane width in bytes.
func (e ElementSize) Bytes() int {
	return 1 << e
}

// encoding returns the 2-bit size code.
func (e ElementSize) encoding() uint32 {
	return uint32(e) & 0b11
}

// String implements fmt.Stringer.
func (e ElementSize) String() string {
	switch e {
	case ElementSizeByte:
		return "B"
	case ElementSizeHalfWord:
		return "H"
	case ElementSizeWord:
		return "S"
	case ElementSizeDoubleWord:
		return "D"
	default:
		return fmt.Sprintf("ElementSize(%d)", byte(e))
	}
}

// Expand returns the next wider lane size.
func (e ElementSize) Expand() (ElementSize, error) {
	return ElementSizeFromBits(e.Bits() * 2)
}

// Narrow returns the next narrower lane size.
func (e ElementSize) Narrow() (ElementSize, error) {
	return ElementSizeFromBits(e.Bits() / 2)
}

// ElementSizeFromBits returns the lane size with the given bit width.
func ElementSizeFromBits(bits int) (ElementSize, error) {
	switch bits {
	case 8:
		return ElementSizeByte, nil
	case 16:
		return ElementSizeHalfWord, nil
	case 32:
		return ElementSizeWord, nil
	case 64:
		return ElementSizeDoubleWord, nil
	}
	return 0, fmt.Errorf("%w: %d bits", ErrInvalidElementSize, bits)
}

// ElementSizeFromStride returns the lane size of an array with the given
// stride in bytes.
func ElementSizeFromStride(stride int) (ElementSize, error) {
	switch stride {
	case 1, 2, 4, 8:
		return ElementSizeFromBits(stride * 8)
	}
	return 0, fmt.Errorf("%w: stride %d", ErrInvalidElementSize, stride)
}

// ASIMDSize is the width of the register an operation works on.
type ASIMDSize byte

const (
	// ASIMDSizeHalfReg operates on the low 64 bits of the register.
	ASIMDSizeHalfReg ASIMDSize = iota
	// ASIMDSizeFullReg operates on all 128 bits of the register.
	ASIMDSizeFullReg
)

// Bits returns the register width in bits.
func (s ASIMDSize) Bits() int {
	if s == ASIMDSizeFullReg {
		return 128
	}
	return 64
}

// Bytes returns the register width in bytes.
func (s ASIMDSize) Bytes() int {
	return s.Bits() / 8
}

// String implements fmt.Stringer.
func (s ASIMDSize) String() string {
	if s == ASIMDSizeFullReg {
		return "FullReg"
	}
	return "HalfReg"
}

// ASIMDSizeFromBits returns the register size used for a vector of the given
// width. 32-bit vectors live in the low half of a register.
func ASIMDSizeFromBits(bits int) (ASIMDSize, error) {
	switch bits {
	case 32, 64:
		return ASIMDSizeHalfReg, nil
	case 128:
		return ASIMDSizeFullReg, nil
	}
	return 0, fmt.Errorf("%w: %d bits", ErrInvalidASIMDSize, bits)
}

// usesMultipleLanes is false only for a 64-bit register holding a single
// 64-bit lane.
func usesMultipleLanes(size ASIMDSize, eSize ElementSize) bool {
	return !(size == ASIMDSizeHalfReg && eSize == ElementSizeDoubleWord)
}

// VectorArrangement is the arrangement specifier written after a vector
// register in assembly, e.g. the "4S" of "V1.4S".
type VectorArrangement byte

const (
	VectorArrangementNone VectorArrangement = iota
	VectorArrangement8B
	VectorArrangement16B
	VectorArrangement4H
	VectorArrangement8H
	VectorArrangement2S
	VectorArrangement4S
	VectorArrangement1D
	VectorArrangement2D

	// Element forms, used for lane indexing. They carry no register width.

	VectorArrangementB
	VectorArrangementH
	VectorArrangementS
	VectorArrangementD
)

var vectorArrangementNames = [...]string{
	VectorArrangementNone: "none",
	VectorArrangement8B:   "8B",
	VectorArrangement16B:  "16B",
	VectorArrangement4H:   "4H",
	VectorArrangement8H:   "8H",
	VectorArrangement2S:   "2S",
	VectorArrangement4S:   "4S",
	VectorArrangement1D:   "1D",
	VectorArrangement2D:   "2D",
	VectorArrangementB:    "B",
	VectorArrangementH:    "H",
	VectorArrangementS:    "S",
	VectorArrangementD:    "D",
}

// String implements fmt.Stringer.
func (v VectorArrangement) String() string {
	if int(v) < len(vectorArrangementNames) {
		return vectorArrangementNames[v]
	}
	return fmt.Sprintf("VectorArrangement(%d)", byte(v))
}

// ParseVectorArrangement parses names such as "16b" or "S".
func ParseVectorArrangement(s string) (VectorArrangement, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i := VectorArrangement8B; int(i) < len(vectorArrangementNames); i++ {
		if vectorArrangementNames[i] == u {
			return i, nil
		}
	}
	return VectorArrangementNone, fmt.Errorf("invalid vector arrangement: %q", s)
}

// ElementSizeFromArrangement returns the lane size of arr.
func ElementSizeFromArrangement(arr VectorArrangement) (ElementSize, error) {
	switch arr {
	case VectorArrangement8B, VectorArrangement16B, VectorArrangementB:
		return ElementSizeByte, nil
	case VectorArrangement4H, VectorArrangement8H, VectorArrangementH:
		return ElementSizeHalfWord, nil
	case VectorArrangement2S, VectorArrangement4S, VectorArrangementS:
		return ElementSizeWord, nil
	case VectorArrangement1D, VectorArrangement2D, VectorArrangementD:
		return ElementSizeDoubleWord, nil
	}
	return 0, fmt.Errorf("%w: arrangement %s", ErrInvalidElementSize, arr)
}

// ASIMDSizeFromArrangement returns the register size of arr. Element forms
// such as VectorArrangementS have none.
func ASIMDSizeFromArrangement(arr VectorArrangement) (ASIMDSize, error) {
	switch arr {
	case VectorArrangement8B, VectorArrangement4H, VectorArrangement2S, VectorArrangement1D:
		return ASIMDSizeHalfReg, nil
	case VectorArrangement16B, VectorArrangement8H, VectorArrangement4S, VectorArrangement2D:
		return ASIMDSizeFullReg, nil
	}
	return 0, fmt.Errorf("%w: arrangement %s", ErrInvalidASIMDSize, arr)
}

// Arrangement is the inverse of ElementSizeFromArrangement and
// ASIMDSizeFromArrangement.
func Arrangement(size ASIMDSize, eSize ElementSize) VectorArrangement {
	arr := VectorArrangement8B + VectorArrangement(eSize)*2
	if size == ASIMDSizeFullReg {
		arr++
	}
	return arr
}
