package arm64

import "github.com/tetratelabs/asimd/asm"

// leftShiftImm7 returns immh:immb for a left shift by amount, in [0, esize).
func (a *Assembler) leftShiftImm7(op string, eSize ElementSize, amount int) uint32 {
	a.checkRange(op, "shift amount", amount, 0, eSize.Bits())
	return uint32(eSize.Bits() + amount)
}

// rightShiftImm7 returns immh:immb for a right shift by amount, in (0, esize].
func (a *Assembler) rightShiftImm7(op string, eSize ElementSize, amount int) uint32 {
	a.checkRange(op, "shift amount", amount, 1, eSize.Bits()+1)
	return uint32(2*eSize.Bits() - amount)
}

func (a *Assembler) shiftByImm(op string, inst Instruction, size ASIMDSize, imm7 uint32, dst, src asm.Register) {
	a.checkVector(op, dst, src)
	a.emit(encodeShiftByImm(inst, size, imm7, Encoding(dst), Encoding(src)))
}

// ShlVVI implements SHL dst.T, src.T, #amount.
func (a *Assembler) ShlVVI(size ASIMDSize, eSize ElementSize, dst, src asm.Register, amount int) {
	const op = "ShlVVI"
	a.checkMultipleLanes(op, size, eSize)
	a.shiftByImm(op, SHL, size, a.leftShiftImm7(op, eSize, amount), dst, src)
}

// SshrVVI implements SSHR dst.T, src.T, #amount, an arithmetic right shift.
func (a *Assembler) SshrVVI(size ASIMDSize, eSize ElementSize, dst, src asm.Register, amount int) {
	const op = "SshrVVI"
	a.checkMultipleLanes(op, size, eSize)
	a.shiftByImm(op, SSHR, size, a.rightShiftImm7(op, eSize, amount), dst, src)
}

// UshrVVI implements USHR dst.T, src.T, #amount, a logical right shift.
func (a *Assembler) UshrVVI(size ASIMDSize, eSize ElementSize, dst, src asm.Register, amount int) {
	const op = "UshrVVI"
	a.checkMultipleLanes(op, size, eSize)
	a.shiftByImm(op, USHR, size, a.rightShiftImm7(op, eSize, amount), dst, src)
}

// UsraVVI implements USRA dst.T, src.T, #amount: dst += src >> amount.
func (a *Assembler) UsraVVI(size ASIMDSize, eSize ElementSize, dst, src asm.Register, amount int) {
	const op = "UsraVVI"
	a.checkMultipleLanes(op, size, eSize)
	a.shiftByImm(op, USRA, size, a.rightShiftImm7(op, eSize, amount), dst, src)
}

// longShift is a widening left shift of the lower (upper when size is
// ASIMDSizeFullReg) half of src.
func (a *Assembler) longShift(op string, inst Instruction, size ASIMDSize, srcESize ElementSize, dst, src asm.Register, amount int) {
	a.checkElementSize(op, srcESize, nonDoubleElementSizes...)
	a.shiftByImm(op, inst, size, a.leftShiftImm7(op, srcESize, amount), dst, src)
}

// SshllVVI implements SSHLL dst.Ta, src.Tb, #amount. An amount of zero is
// SXTL.
func (a *Assembler) SshllVVI(srcESize ElementSize, dst, src asm.Register, amount int) {
	a.longShift("SshllVVI", SSHLL, ASIMDSizeHalfReg, srcESize, dst, src, amount)
}

// Sshll2VVI implements SSHLL2 dst.Ta, src.Tb, #amount.
func (a *Assembler) Sshll2VVI(srcESize ElementSize, dst, src asm.Register, amount int) {
	a.longShift("Sshll2VVI", SSHLL, ASIMDSizeFullReg, srcESize, dst, src, amount)
}

// UshllVVI implements USHLL dst.Ta, src.Tb, #amount. An amount of zero is
// UXTL.
func (a *Assembler) UshllVVI(srcESize ElementSize, dst, src asm.Register, amount int) {
	a.longShift("UshllVVI", USHLL, ASIMDSizeHalfReg, srcESize, dst, src, amount)
}

// Ushll2VVI implements USHLL2 dst.Ta, src.Tb, #amount.
func (a *Assembler) Ushll2VVI(srcESize ElementSize, dst, src asm.Register, amount int) {
	a.longShift("Ushll2VVI", USHLL, ASIMDSizeFullReg, srcESize, dst, src, amount)
}

// UshrSSI implements USHR Dd, Dn, #amount. Only DoubleWord is encodable.
func (a *Assembler) UshrSSI(eSize ElementSize, dst, src asm.Register, amount int) {
	const op = "UshrSSI"
	a.checkElementSize(op, eSize, ElementSizeDoubleWord)
	a.checkVector(op, dst, src)
	imm7 := a.rightShiftImm7(op, eSize, amount)
	a.emit(encodeScalarShiftByImm(USHR, imm7, Encoding(dst), Encoding(src)))
}

func (a *Assembler) modifiedImm(op string, immOp ImmediateOp, size ASIMDSize, dst asm.Register, imm uint64) {
	a.checkSizes(op, size, ElementSizeByte)
	a.checkVector(op, dst)
	a.checkImmediate(op, immOp, imm)
	a.emit(encodeModifiedImm(immOp, size, imm, Encoding(dst)))
}

// MoviVI implements MOVI dst.T, #imm. imm is the 64-bit pattern written to
// each doubleword of dst.
//
// Single-precision float patterns such as 0x3f8000003f800000 resolve to
// cmode=1111 op=0, so the emitted word is the FMOV (vector, immediate)
// encoding of the same value.
func (a *Assembler) MoviVI(size ASIMDSize, dst asm.Register, imm uint64) {
	a.modifiedImm("MoviVI", ImmediateOpMOVI, size, dst, imm)
}

// MvniVI implements MVNI dst.T, #imm: dst receives the bitwise NOT of imm.
func (a *Assembler) MvniVI(size ASIMDSize, dst asm.Register, imm uint64) {
	a.modifiedImm("MvniVI", ImmediateOpMVNI, size, dst, imm)
}

// OrrVI implements ORR dst.T, #imm: dst |= imm.
func (a *Assembler) OrrVI(size ASIMDSize, dst asm.Register, imm uint64) {
	a.modifiedImm("OrrVI", ImmediateOpORR, size, dst, imm)
}

// BicVI implements BIC dst.T, #imm: dst &^= imm.
func (a *Assembler) BicVI(size ASIMDSize, dst asm.Register, imm uint64) {
	a.modifiedImm("BicVI", ImmediateOpBIC, size, dst, imm)
}

// FmovVI implements FMOV dst.T, #imm. imm is the 64-bit pattern of the
// register half: the float bits repeated for Word lanes.
func (a *Assembler) FmovVI(size ASIMDSize, eSize ElementSize, dst asm.Register, imm uint64) {
	const op = "FmovVI"
	a.checkMultipleLanes(op, size, eSize)
	a.checkElementSize(op, eSize, floatElementSizes...)
	immOp := ImmediateOpFMOVSP
	if eSize == ElementSizeDoubleWord {
		immOp = ImmediateOpFMOVDP
	}
	a.modifiedImm(op, immOp, size, dst, imm)
}
