// Package golang_asm assembles single arm64 vector instructions with
// golang-asm, a fork of the Go toolchain assembler. Tests use it as an
// independent oracle for the encodings of asm/arm64.
package golang_asm

import (
	"encoding/binary"
	"fmt"

	goasm "github.com/twitchyliquid64/golang-asm"
	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/arm64"

	"github.com/tetratelabs/asimd/asm"
	asm_arm64 "github.com/tetratelabs/asimd/asm/arm64"
)

// castAsGolangAsmArrangement maps the arrangements golang-asm accepts in
// its register operands.
var castAsGolangAsmArrangement = map[asm_arm64.VectorArrangement]int16{
	asm_arm64.VectorArrangement8B:  arm64.ARNG_8B,
	asm_arm64.VectorArrangement16B: arm64.ARNG_16B,
	asm_arm64.VectorArrangement4H:  arm64.ARNG_4H,
	asm_arm64.VectorArrangement8H:  arm64.ARNG_8H,
	asm_arm64.VectorArrangement2S:  arm64.ARNG_2S,
	asm_arm64.VectorArrangement4S:  arm64.ARNG_4S,
	asm_arm64.VectorArrangement1D:  arm64.ARNG_1D,
	asm_arm64.VectorArrangement2D:  arm64.ARNG_2D,
}

// vectorOperand returns the golang-asm register value of r.T.
//
// See https://github.com/twitchyliquid64/golang-asm/blob/v0.15.1/obj/link.go#L172-L177
func vectorOperand(r asm.Register, arr asm_arm64.VectorArrangement) (int16, error) {
	if asm_arm64.Category(r) != asm_arm64.RegisterCategoryVector {
		return 0, fmt.Errorf("%s is not a vector register", asm_arm64.RegisterName(r))
	}
	a, ok := castAsGolangAsmArrangement[arr]
	if !ok {
		return 0, fmt.Errorf("unsupported arrangement %s", arr)
	}
	vreg := arm64.REG_V0 + int16(asm_arm64.Encoding(r))
	return vreg&31 + arm64.REG_ARNG + (a&15)<<5, nil
}

// assembleOne assembles p, which must expand to a single instruction.
func assembleOne(build func(b *goasm.Builder) (*obj.Prog, error)) (uint32, error) {
	b, err := goasm.NewBuilder("arm64", 16)
	if err != nil {
		return 0, fmt.Errorf("failed to create a new assembly builder: %w", err)
	}

	// The first instruction is taken as the function entry and never encoded.
	nop := b.NewProg()
	nop.As = obj.ANOP
	b.AddInstruction(nop)

	p, err := build(b)
	if err != nil {
		return 0, err
	}
	b.AddInstruction(p)

	// The output is padded up to the function alignment.
	code := b.Assemble()
	if len(code) < 4 {
		return 0, fmt.Errorf("golang-asm produced %d bytes for %v", len(code), p)
	}
	return binary.LittleEndian.Uint32(code), nil
}

// ThreeSame returns the encoding golang-asm produces for
// "as src2.T, src1.T, dst.T", which is "as dst.T, src1.T, src2.T" in A64
// syntax. as is one of arm64.AVADD, arm64.AVSUB, arm64.AVAND and the other
// vector instructions of golang-asm's three register form.
func ThreeSame(as obj.As, arr asm_arm64.VectorArrangement, dst, src1, src2 asm.Register) (uint32, error) {
	return assembleOne(func(b *goasm.Builder) (*obj.Prog, error) {
		d, err := vectorOperand(dst, arr)
		if err != nil {
			return nil, err
		}
		n, err := vectorOperand(src1, arr)
		if err != nil {
			return nil, err
		}
		m, err := vectorOperand(src2, arr)
		if err != nil {
			return nil, err
		}
		p := b.NewProg()
		p.As = as
		p.To.Type = obj.TYPE_REG
		p.To.Reg = d
		p.Reg = n
		p.From.Type = obj.TYPE_REG
		p.From.Reg = m
		return p, nil
	})
}

// TwoReg returns the encoding golang-asm produces for "as src.T, dst.T".
// as is one of arm64.AVCNT, arm64.AVRBIT, arm64.AVREV16, arm64.AVREV32 and
// arm64.AVREV64.
func TwoReg(as obj.As, arr asm_arm64.VectorArrangement, dst, src asm.Register) (uint32, error) {
	return assembleOne(func(b *goasm.Builder) (*obj.Prog, error) {
		d, err := vectorOperand(dst, arr)
		if err != nil {
			return nil, err
		}
		n, err := vectorOperand(src, arr)
		if err != nil {
			return nil, err
		}
		p := b.NewProg()
		p.As = as
		p.To.Type = obj.TYPE_REG
		p.To.Reg = d
		p.From.Type = obj.TYPE_REG
		p.From.Reg = n
		return p, nil
	})
}
