package arm64

import "github.com/tetratelabs/asimd/asm"

func (a *Assembler) cryptoAES(op string, inst Instruction, dst, src asm.Register) {
	a.checkVector(op, dst, src)
	a.emit(encodeCryptoAES(inst, Encoding(dst), Encoding(src)))
}

// AESD implements AESD dst.16B, src.16B.
func (a *Assembler) AESD(dst, src asm.Register) { a.cryptoAES("AESD", AESD, dst, src) }

// AESE implements AESE dst.16B, src.16B.
func (a *Assembler) AESE(dst, src asm.Register) { a.cryptoAES("AESE", AESE, dst, src) }

// AESIMC implements AESIMC dst.16B, src.16B.
func (a *Assembler) AESIMC(dst, src asm.Register) { a.cryptoAES("AESIMC", AESIMC, dst, src) }

// AESMC implements AESMC dst.16B, src.16B.
func (a *Assembler) AESMC(dst, src asm.Register) { a.cryptoAES("AESMC", AESMC, dst, src) }

func (a *Assembler) cryptoThreeSHA(op string, inst Instruction, dst, src1, src2 asm.Register) {
	a.checkVector(op, dst, src1, src2)
	a.emit(encodeCryptoThreeSHA(inst, Encoding(dst), Encoding(src1), Encoding(src2)))
}

func (a *Assembler) cryptoTwoSHA(op string, inst Instruction, dst, src asm.Register) {
	a.checkVector(op, dst, src)
	a.emit(encodeCryptoTwoSHA(inst, Encoding(dst), Encoding(src)))
}

// SHA1C implements SHA1C Qd, Sn, Vm.4S.
func (a *Assembler) SHA1C(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA("SHA1C", SHA1C, dst, src1, src2)
}

// SHA1H implements SHA1H Sd, Sn.
func (a *Assembler) SHA1H(dst, src asm.Register) {
	a.cryptoTwoSHA("SHA1H", SHA1H, dst, src)
}

// SHA1M implements SHA1M Qd, Sn, Vm.4S.
func (a *Assembler) SHA1M(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA("SHA1M", SHA1M, dst, src1, src2)
}

// SHA1P implements SHA1P Qd, Sn, Vm.4S.
func (a *Assembler) SHA1P(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA("SHA1P", SHA1P, dst, src1, src2)
}

// SHA1SU0 implements SHA1SU0 Vd.4S, Vn.4S, Vm.4S.
func (a *Assembler) SHA1SU0(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA("SHA1SU0", SHA1SU0, dst, src1, src2)
}

// SHA1SU1 implements SHA1SU1 Vd.4S, Vn.4S.
func (a *Assembler) SHA1SU1(dst, src asm.Register) {
	a.cryptoTwoSHA("SHA1SU1", SHA1SU1, dst, src)
}

// SHA256H implements SHA256H Qd, Qn, Vm.4S.
func (a *Assembler) SHA256H(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA("SHA256H", SHA256H, dst, src1, src2)
}

// SHA256H2 implements SHA256H2 Qd, Qn, Vm.4S.
func (a *Assembler) SHA256H2(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA("SHA256H2", SHA256H2, dst, src1, src2)
}

// SHA256SU0 implements SHA256SU0 Vd.4S, Vn.4S.
func (a *Assembler) SHA256SU0(dst, src asm.Register) {
	a.cryptoTwoSHA("SHA256SU0", SHA256SU0, dst, src)
}

// SHA256SU1 implements SHA256SU1 Vd.4S, Vn.4S, Vm.4S.
func (a *Assembler) SHA256SU1(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA("SHA256SU1", SHA256SU1, dst, src1, src2)
}

func (a *Assembler) cryptoThreeSHA512(op string, inst Instruction, dst, src1, src2 asm.Register) {
	a.checkVector(op, dst, src1, src2)
	a.emit(encodeCryptoThreeSHA512(inst, Encoding(dst), Encoding(src1), Encoding(src2)))
}

// SHA512H implements SHA512H Qd, Qn, Vm.2D.
func (a *Assembler) SHA512H(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA512("SHA512H", SHA512H, dst, src1, src2)
}

// SHA512H2 implements SHA512H2 Qd, Qn, Vm.2D.
func (a *Assembler) SHA512H2(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA512("SHA512H2", SHA512H2, dst, src1, src2)
}

// SHA512SU0 implements SHA512SU0 Vd.2D, Vn.2D.
func (a *Assembler) SHA512SU0(dst, src asm.Register) {
	const op = "SHA512SU0"
	a.checkVector(op, dst, src)
	a.emit(encodeCryptoTwoSHA512(SHA512SU0, Encoding(dst), Encoding(src)))
}

// SHA512SU1 implements SHA512SU1 Vd.2D, Vn.2D, Vm.2D.
func (a *Assembler) SHA512SU1(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA512("SHA512SU1", SHA512SU1, dst, src1, src2)
}

// Rax1VVV implements RAX1 dst.2D, src1.2D, src2.2D: src1 XOR (src2 rotated
// left by one).
func (a *Assembler) Rax1VVV(dst, src1, src2 asm.Register) {
	a.cryptoThreeSHA512("Rax1VVV", RAX1, dst, src1, src2)
}

// Eor3VVVV implements EOR3 dst.16B, src1.16B, src2.16B, src3.16B.
func (a *Assembler) Eor3VVVV(dst, src1, src2, src3 asm.Register) {
	const op = "Eor3VVVV"
	a.checkVector(op, dst, src1, src2, src3)
	a.emit(encodeCryptoFour(EOR3, Encoding(dst), Encoding(src1), Encoding(src2), Encoding(src3)))
}

// BcaxVVVV implements BCAX dst.16B, src1.16B, src2.16B, src3.16B:
// src1 XOR (src2 AND NOT src3).
func (a *Assembler) BcaxVVVV(dst, src1, src2, src3 asm.Register) {
	const op = "BcaxVVVV"
	a.checkVector(op, dst, src1, src2, src3)
	a.emit(encodeCryptoFour(BCAX, Encoding(dst), Encoding(src1), Encoding(src2), Encoding(src3)))
}

// XarVVVI implements XAR dst.2D, src1.2D, src2.2D, #imm6: src1 XOR src2,
// rotated right by imm6.
func (a *Assembler) XarVVVI(dst, src1, src2 asm.Register, imm6 int) {
	const op = "XarVVVI"
	a.checkVector(op, dst, src1, src2)
	a.checkRange(op, "rotate amount", imm6, 0, 64)
	a.emit(encodeCryptoXAR(Encoding(dst), Encoding(src1), Encoding(src2), uint32(imm6)))
}
