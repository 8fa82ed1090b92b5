package arm64

import (
	"fmt"

	"github.com/tetratelabs/asimd/asm"
)

// Assembler encodes ASIMD instructions into a asm.CodeSink, one 32-bit word
// per operation.
//
// Method names follow the mnemonic with a suffix describing the operands in
// order: V is a vector register, S a scalar held in a vector register, G a
// general-purpose register, X a vector lane and I an immediate. Operands are
// validated before encoding; see PreconditionError.
//
// An Assembler is not safe for concurrent use.
type Assembler struct {
	sink asm.CodeSink
}

// NewAssembler returns an Assembler writing into sink.
func NewAssembler(sink asm.CodeSink) *Assembler {
	return &Assembler{sink: sink}
}

// Sink returns the sink the Assembler writes into.
func (a *Assembler) Sink() asm.CodeSink {
	return a.sink
}

func (a *Assembler) emit(word uint32) {
	a.sink.WriteUint32(word)
}

func (a *Assembler) fail(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Offset: a.sink.Len(), Msg: fmt.Sprintf(format, args...)})
}

func (a *Assembler) checkVector(op string, regs ...asm.Register) {
	if !checksEnabled {
		return
	}
	for _, r := range regs {
		if !isVectorRegister(r) {
			a.fail(op, "%s is not a vector register", RegisterName(r))
		}
	}
}

// checkGeneral accepts the general-purpose registers usable as a data
// operand, which excludes RegSP.
func (a *Assembler) checkGeneral(op string, r asm.Register) {
	if checksEnabled && (!isIntRegister(r) || r == RegSP) {
		a.fail(op, "%s is not a general-purpose register", RegisterName(r))
	}
}

func (a *Assembler) checkElementSize(op string, eSize ElementSize, allowed ...ElementSize) {
	if !checksEnabled {
		return
	}
	for _, e := range allowed {
		if e == eSize {
			return
		}
	}
	a.fail(op, "invalid lane size %s, expected one of %v", eSize, allowed)
}

var allElementSizes = []ElementSize{ElementSizeByte, ElementSizeHalfWord, ElementSizeWord, ElementSizeDoubleWord}

var (
	floatElementSizes     = []ElementSize{ElementSizeWord, ElementSizeDoubleWord}
	nonDoubleElementSizes = []ElementSize{ElementSizeByte, ElementSizeHalfWord, ElementSizeWord}
)

// checkSizes validates the register and lane size of an operation that
// accepts every lane size.
func (a *Assembler) checkSizes(op string, size ASIMDSize, eSize ElementSize) {
	if !checksEnabled {
		return
	}
	if size != ASIMDSizeHalfReg && size != ASIMDSizeFullReg {
		a.fail(op, "invalid register size %d", byte(size))
	}
	a.checkElementSize(op, eSize, allElementSizes...)
}

// checkMultipleLanes rejects a 64-bit register holding a single 64-bit lane,
// which is reserved for every vector form.
func (a *Assembler) checkMultipleLanes(op string, size ASIMDSize, eSize ElementSize) {
	a.checkSizes(op, size, eSize)
	if checksEnabled && !usesMultipleLanes(size, eSize) {
		a.fail(op, "must use multiple lanes: %s %s", size, eSize)
	}
}

// checkAcrossLanes validates the arrangements of the across lanes reductions:
// 8B, 16B, 4H, 8H and 4S.
func (a *Assembler) checkAcrossLanes(op string, size ASIMDSize, eSize ElementSize) {
	a.checkSizes(op, size, eSize)
	a.checkElementSize(op, eSize, nonDoubleElementSizes...)
	if checksEnabled && size == ASIMDSizeHalfReg && eSize == ElementSizeWord {
		a.fail(op, "invalid size and lane combination: %s %s", size, eSize)
	}
}

// checkLaneIndex validates the index of an eSize lane in a 128-bit register.
func (a *Assembler) checkLaneIndex(op string, eSize ElementSize, index int) {
	a.checkElementSize(op, eSize, allElementSizes...)
	a.checkRange(op, "lane index", index, 0, ASIMDSizeFullReg.Bytes()/eSize.Bytes())
}

// checkRange validates lo <= v < hi.
func (a *Assembler) checkRange(op, name string, v, lo, hi int) {
	if checksEnabled && (v < lo || v >= hi) {
		a.fail(op, "%s %d out of range [%d, %d)", name, v, lo, hi)
	}
}

// checkConsecutive validates a register list: vector registers whose
// indexes increase by one, wrapping from 31 to 0.
func (a *Assembler) checkConsecutive(op string, regs ...asm.Register) {
	if !checksEnabled {
		return
	}
	a.checkVector(op, regs...)
	for i := 1; i < len(regs); i++ {
		if (Encoding(regs[i-1])+1)%32 != Encoding(regs[i]) {
			a.fail(op, "registers %s and %s are not consecutive", RegisterName(regs[i-1]), RegisterName(regs[i]))
		}
	}
}

func (a *Assembler) checkImmediate(op string, immOp ImmediateOp, imm uint64) {
	if checksEnabled && !IsImmediateEncodable(imm, immOp) {
		a.fail(op, "%#x cannot be encoded as %s immediate", imm, immOp)
	}
}

// checkAddress validates a structure load/store address. transfer is the
// number of bytes accessed, the only valid post-index immediate.
func (a *Assembler) checkAddress(op string, addr AddressOperand, transfer int) {
	if !checksEnabled {
		return
	}
	if !isIntRegister(addr.Base) || addr.Base == RegRZR {
		a.fail(op, "invalid base register %s", RegisterName(addr.Base))
	}
	switch addr.Mode {
	case AddressingModeBase:
	case AddressingModePostIndexRegister:
		if !isIntRegister(addr.Offset) || Encoding(addr.Offset) == 31 {
			a.fail(op, "invalid post-index register %s", RegisterName(addr.Offset))
		}
	case AddressingModePostIndexImmediate:
		if addr.Imm != int64(transfer) {
			a.fail(op, "post-index immediate must be %d but was %d", transfer, addr.Imm)
		}
	default:
		a.fail(op, "unsupported addressing mode %s", addr.Mode)
	}
}
