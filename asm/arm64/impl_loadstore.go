package arm64

import "github.com/tetratelabs/asimd/asm"

// loadStoreMultiple implements LD1-LD4 and ST1-ST4 (multiple structures).
// regs is the consecutive register list; with 2 or 4 structure elements the
// arrangement must use several lanes.
func (a *Assembler) loadStoreMultiple(op string, inst Instruction, interleaved bool, size ASIMDSize, eSize ElementSize, addr AddressOperand, regs ...asm.Register) {
	if interleaved {
		a.checkMultipleLanes(op, size, eSize)
	} else {
		a.checkSizes(op, size, eSize)
	}
	a.checkConsecutive(op, regs...)
	a.checkAddress(op, addr, size.Bytes()*len(regs))
	a.emit(encodeLoadStoreMultiple(inst, size, eSize, Encoding(regs[0]), addr.encoding()))
}

// Ld1MultipleV implements LD1 {dst.T}, [addr].
func (a *Assembler) Ld1MultipleV(size ASIMDSize, eSize ElementSize, dst asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("Ld1MultipleV", LD1Multiple1R, false, size, eSize, addr, dst)
}

// Ld1MultipleVV implements LD1 {dst1.T, dst2.T}, [addr].
func (a *Assembler) Ld1MultipleVV(size ASIMDSize, eSize ElementSize, dst1, dst2 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("Ld1MultipleVV", LD1Multiple2R, false, size, eSize, addr, dst1, dst2)
}

// Ld1MultipleVVV implements LD1 {dst1.T-dst3.T}, [addr].
func (a *Assembler) Ld1MultipleVVV(size ASIMDSize, eSize ElementSize, dst1, dst2, dst3 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("Ld1MultipleVVV", LD1Multiple3R, false, size, eSize, addr, dst1, dst2, dst3)
}

// Ld1MultipleVVVV implements LD1 {dst1.T-dst4.T}, [addr].
func (a *Assembler) Ld1MultipleVVVV(size ASIMDSize, eSize ElementSize, dst1, dst2, dst3, dst4 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("Ld1MultipleVVVV", LD1Multiple4R, false, size, eSize, addr, dst1, dst2, dst3, dst4)
}

// Ld2MultipleVV implements LD2 {dst1.T, dst2.T}, [addr], which deinterleaves
// pairs of elements.
func (a *Assembler) Ld2MultipleVV(size ASIMDSize, eSize ElementSize, dst1, dst2 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("Ld2MultipleVV", LD2Multiple2R, true, size, eSize, addr, dst1, dst2)
}

// Ld4MultipleVVVV implements LD4 {dst1.T-dst4.T}, [addr].
func (a *Assembler) Ld4MultipleVVVV(size ASIMDSize, eSize ElementSize, dst1, dst2, dst3, dst4 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("Ld4MultipleVVVV", LD4Multiple4R, true, size, eSize, addr, dst1, dst2, dst3, dst4)
}

// St1MultipleV implements ST1 {src.T}, [addr].
func (a *Assembler) St1MultipleV(size ASIMDSize, eSize ElementSize, src asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("St1MultipleV", ST1Multiple1R, false, size, eSize, addr, src)
}

// St1MultipleVV implements ST1 {src1.T, src2.T}, [addr].
func (a *Assembler) St1MultipleVV(size ASIMDSize, eSize ElementSize, src1, src2 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("St1MultipleVV", ST1Multiple2R, false, size, eSize, addr, src1, src2)
}

// St1MultipleVVV implements ST1 {src1.T-src3.T}, [addr].
func (a *Assembler) St1MultipleVVV(size ASIMDSize, eSize ElementSize, src1, src2, src3 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("St1MultipleVVV", ST1Multiple3R, false, size, eSize, addr, src1, src2, src3)
}

// St1MultipleVVVV implements ST1 {src1.T-src4.T}, [addr].
func (a *Assembler) St1MultipleVVVV(size ASIMDSize, eSize ElementSize, src1, src2, src3, src4 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("St1MultipleVVVV", ST1Multiple4R, false, size, eSize, addr, src1, src2, src3, src4)
}

// St2MultipleVV implements ST2 {src1.T, src2.T}, [addr], which interleaves
// the elements of the two registers.
func (a *Assembler) St2MultipleVV(size ASIMDSize, eSize ElementSize, src1, src2 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("St2MultipleVV", ST2Multiple2R, true, size, eSize, addr, src1, src2)
}

// St4MultipleVVVV implements ST4 {src1.T-src4.T}, [addr].
func (a *Assembler) St4MultipleVVVV(size ASIMDSize, eSize ElementSize, src1, src2, src3, src4 asm.Register, addr AddressOperand) {
	a.loadStoreMultiple("St4MultipleVVVV", ST4Multiple4R, true, size, eSize, addr, src1, src2, src3, src4)
}

// Ld1rV implements LD1R {dst.T}, [addr]: one element is loaded and
// replicated to every lane.
func (a *Assembler) Ld1rV(size ASIMDSize, eSize ElementSize, dst asm.Register, addr AddressOperand) {
	const op = "Ld1rV"
	a.checkSizes(op, size, eSize)
	a.checkVector(op, dst)
	a.checkAddress(op, addr, eSize.Bytes())
	a.emit(encodeLoadStoreSingle(LD1R, size, eSize, Encoding(dst), addr.encoding()))
}

// Ld4rVVVV implements LD4R {dst1.T-dst4.T}, [addr]: four consecutive
// elements are loaded, each replicated to every lane of one register.
func (a *Assembler) Ld4rVVVV(size ASIMDSize, eSize ElementSize, dst1, dst2, dst3, dst4 asm.Register, addr AddressOperand) {
	const op = "Ld4rVVVV"
	a.checkSizes(op, size, eSize)
	a.checkConsecutive(op, dst1, dst2, dst3, dst4)
	a.checkAddress(op, addr, 4*eSize.Bytes())
	a.emit(encodeLoadStoreSingle(LD4R, size, eSize, Encoding(dst1), addr.encoding()))
}
