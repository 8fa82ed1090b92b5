package arm64

import "github.com/tetratelabs/asimd/asm"

func (a *Assembler) tableLookup(op string, inst Instruction, size ASIMDSize, dst, index asm.Register, table ...asm.Register) {
	a.checkSizes(op, size, ElementSizeByte)
	a.checkVector(op, dst, index)
	a.checkConsecutive(op, table...)
	a.emit(encodeTableLookup(inst, size, len(table), Encoding(dst), Encoding(table[0]), Encoding(index)))
}

// TblVVV implements TBL dst.T, {table.16B}, index.T. Out of range indexes
// produce zero.
func (a *Assembler) TblVVV(size ASIMDSize, dst, table, index asm.Register) {
	a.tableLookup("TblVVV", TBL, size, dst, index, table)
}

// TblVVVV implements TBL dst.T, {table1.16B, table2.16B}, index.T.
func (a *Assembler) TblVVVV(size ASIMDSize, dst, table1, table2, index asm.Register) {
	a.tableLookup("TblVVVV", TBL, size, dst, index, table1, table2)
}

// TbxVVV implements TBX dst.T, {table.16B}, index.T. Out of range indexes
// leave the destination lane unchanged.
func (a *Assembler) TbxVVV(size ASIMDSize, dst, table, index asm.Register) {
	a.tableLookup("TbxVVV", TBX, size, dst, index, table)
}

func (a *Assembler) permute(op string, inst Instruction, size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.checkMultipleLanes(op, size, eSize)
	a.checkVector(op, dst, src1, src2)
	a.emit(encodePermute(inst, size, eSize, Encoding(dst), Encoding(src1), Encoding(src2)))
}

// Trn1VVV implements TRN1 dst.T, src1.T, src2.T.
func (a *Assembler) Trn1VVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.permute("Trn1VVV", TRN1, size, eSize, dst, src1, src2)
}

// Trn2VVV implements TRN2 dst.T, src1.T, src2.T.
func (a *Assembler) Trn2VVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.permute("Trn2VVV", TRN2, size, eSize, dst, src1, src2)
}

// Uzp1VVV implements UZP1 dst.T, src1.T, src2.T.
func (a *Assembler) Uzp1VVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.permute("Uzp1VVV", UZP1, size, eSize, dst, src1, src2)
}

// Uzp2VVV implements UZP2 dst.T, src1.T, src2.T.
func (a *Assembler) Uzp2VVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.permute("Uzp2VVV", UZP2, size, eSize, dst, src1, src2)
}

// Zip1VVV implements ZIP1 dst.T, src1.T, src2.T.
func (a *Assembler) Zip1VVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.permute("Zip1VVV", ZIP1, size, eSize, dst, src1, src2)
}

// Zip2VVV implements ZIP2 dst.T, src1.T, src2.T.
func (a *Assembler) Zip2VVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.permute("Zip2VVV", ZIP2, size, eSize, dst, src1, src2)
}

// ExtVVV implements EXT dst.T, src1.T, src2.T, #index: the bytes of src2:src1
// starting at byte index of src1. At least one byte of src1 is included.
func (a *Assembler) ExtVVV(size ASIMDSize, dst, src1, src2 asm.Register, index int) {
	const op = "ExtVVV"
	a.checkSizes(op, size, ElementSizeByte)
	a.checkVector(op, dst, src1, src2)
	a.checkRange(op, "index", index, 0, size.Bytes())
	a.emit(encodeExtract(size, index, Encoding(dst), Encoding(src1), Encoding(src2)))
}

// DupSX implements DUP dst, src.T[index]: lane index of src copied to the
// scalar dst.
func (a *Assembler) DupSX(eSize ElementSize, dst, src asm.Register, index int) {
	const op = "DupSX"
	a.checkVector(op, dst, src)
	a.checkLaneIndex(op, eSize, index)
	a.emit(encodeScalarCopy(eSize, index, Encoding(dst), Encoding(src)))
}

// DupVX implements DUP dst.T, src.T[index]: lane index of src replicated to
// every lane of dst.
func (a *Assembler) DupVX(dstSize ASIMDSize, eSize ElementSize, dst, src asm.Register, index int) {
	const op = "DupVX"
	a.checkMultipleLanes(op, dstSize, eSize)
	a.checkVector(op, dst, src)
	a.checkLaneIndex(op, eSize, index)
	a.emit(encodeCopy(DUPElem, dstSize, eSize, index, 0, Encoding(dst), Encoding(src)))
}

// DupVG implements DUP dst.T, src: the general-purpose src replicated to
// every lane of dst.
func (a *Assembler) DupVG(dstSize ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	const op = "DupVG"
	a.checkMultipleLanes(op, dstSize, eSize)
	a.checkVector(op, dst)
	a.checkGeneral(op, src)
	a.emit(encodeCopy(DUPGen, dstSize, eSize, 0, 0, Encoding(dst), Encoding(src)))
}

// InsXX implements INS dst.T[dstIndex], src.T[srcIndex]. The other lanes of
// dst are preserved.
func (a *Assembler) InsXX(eSize ElementSize, dst asm.Register, dstIndex int, src asm.Register, srcIndex int) {
	const op = "InsXX"
	a.checkVector(op, dst, src)
	a.checkLaneIndex(op, eSize, dstIndex)
	a.checkLaneIndex(op, eSize, srcIndex)
	imm4 := uint32(srcIndex*eSize.Bytes()) << 11
	a.emit(encodeCopy(INSElem, ASIMDSizeFullReg, eSize, dstIndex, imm4, Encoding(dst), Encoding(src)))
}

// InsXG implements INS dst.T[index], src with a general-purpose src.
func (a *Assembler) InsXG(eSize ElementSize, dst asm.Register, index int, src asm.Register) {
	const op = "InsXG"
	a.checkVector(op, dst)
	a.checkGeneral(op, src)
	a.checkLaneIndex(op, eSize, index)
	a.emit(encodeCopy(INSGen, ASIMDSizeFullReg, eSize, index, 0, Encoding(dst), Encoding(src)))
}

// SmovGX implements SMOV dst, src.T[index]: the lane is sign extended to the
// general-purpose dst, 32 bits wide for dstESize Word and 64 bits for
// DoubleWord.
func (a *Assembler) SmovGX(dstESize, srcESize ElementSize, dst, src asm.Register, index int) {
	const op = "SmovGX"
	a.checkElementSize(op, dstESize, ElementSizeWord, ElementSizeDoubleWord)
	a.checkElementSize(op, srcESize, nonDoubleElementSizes...)
	if checksEnabled && srcESize >= dstESize {
		a.fail(op, "source lane %s must be narrower than destination %s", srcESize, dstESize)
	}
	a.checkGeneral(op, dst)
	a.checkVector(op, src)
	a.checkLaneIndex(op, srcESize, index)
	size := fullRegIf(dstESize == ElementSizeDoubleWord)
	a.emit(encodeCopy(SMOV, size, srcESize, index, 0, Encoding(dst), Encoding(src)))
}

// UmovGX implements UMOV dst, src.T[index]: the lane is zero extended to the
// general-purpose dst. DoubleWord lanes use the 64-bit form.
func (a *Assembler) UmovGX(eSize ElementSize, dst, src asm.Register, index int) {
	const op = "UmovGX"
	a.checkGeneral(op, dst)
	a.checkVector(op, src)
	a.checkLaneIndex(op, eSize, index)
	size := fullRegIf(eSize == ElementSizeDoubleWord)
	a.emit(encodeCopy(UMOV, size, eSize, index, 0, Encoding(dst), Encoding(src)))
}
