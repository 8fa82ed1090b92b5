package arm64

import "github.com/tetratelabs/asimd/asm"

func (a *Assembler) twoRegMisc(op string, inst Instruction, size ASIMDSize, sizeField uint32, dst, src asm.Register) {
	a.checkVector(op, dst, src)
	a.emit(encodeTwoRegMisc(inst, size, sizeField, Encoding(dst), Encoding(src)))
}

// integerTwoRegMisc is a two-register miscellaneous operation on integer lanes.
func (a *Assembler) integerTwoRegMisc(op string, inst Instruction, size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.checkMultipleLanes(op, size, eSize)
	a.twoRegMisc(op, inst, size, elemSizeXX(eSize), dst, src)
}

// floatTwoRegMisc is a two-register miscellaneous operation on
// floating-point lanes whose size field is 1x.
func (a *Assembler) floatTwoRegMisc(op string, inst Instruction, size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.checkMultipleLanes(op, size, eSize)
	a.checkElementSize(op, eSize, floatElementSizes...)
	a.twoRegMisc(op, inst, size, elemSize1X(eSize), dst, src)
}

// AbsVV implements ABS dst.T, src.T.
func (a *Assembler) AbsVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.integerTwoRegMisc("AbsVV", ABS, size, eSize, dst, src)
}

// NegVV implements NEG dst.T, src.T.
func (a *Assembler) NegVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.integerTwoRegMisc("NegVV", NEG, size, eSize, dst, src)
}

// CmeqZeroVV implements CMEQ dst.T, src.T, #0.
func (a *Assembler) CmeqZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.integerTwoRegMisc("CmeqZeroVV", CMEQZero, size, eSize, dst, src)
}

// CmgeZeroVV implements CMGE dst.T, src.T, #0.
func (a *Assembler) CmgeZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.integerTwoRegMisc("CmgeZeroVV", CMGEZero, size, eSize, dst, src)
}

// CmgtZeroVV implements CMGT dst.T, src.T, #0.
func (a *Assembler) CmgtZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.integerTwoRegMisc("CmgtZeroVV", CMGTZero, size, eSize, dst, src)
}

// CmleZeroVV implements CMLE dst.T, src.T, #0.
func (a *Assembler) CmleZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.integerTwoRegMisc("CmleZeroVV", CMLEZero, size, eSize, dst, src)
}

// CmltZeroVV implements CMLT dst.T, src.T, #0.
func (a *Assembler) CmltZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.integerTwoRegMisc("CmltZeroVV", CMLTZero, size, eSize, dst, src)
}

// byteTwoRegMisc is a two-register miscellaneous operation on byte lanes
// whose size field is fixed by the instruction.
func (a *Assembler) byteTwoRegMisc(op string, inst Instruction, size ASIMDSize, sizeField uint32, dst, src asm.Register) {
	a.checkSizes(op, size, ElementSizeByte)
	a.twoRegMisc(op, inst, size, sizeField, dst, src)
}

// CntVV implements CNT dst.T, src.T: the population count of each byte.
func (a *Assembler) CntVV(size ASIMDSize, dst, src asm.Register) {
	a.byteTwoRegMisc("CntVV", CNT, size, elemSize00, dst, src)
}

// NotVV implements NOT dst.T, src.T.
func (a *Assembler) NotVV(size ASIMDSize, dst, src asm.Register) {
	a.byteTwoRegMisc("NotVV", NOT, size, elemSize00, dst, src)
}

// RbitVV implements RBIT dst.T, src.T: the bit order of each byte reversed.
func (a *Assembler) RbitVV(size ASIMDSize, dst, src asm.Register) {
	a.byteTwoRegMisc("RbitVV", RBIT, size, elemSize01, dst, src)
}

// Rev16VV implements REV16 dst.T, src.T: the bytes of each halfword reversed.
func (a *Assembler) Rev16VV(size ASIMDSize, dst, src asm.Register) {
	a.byteTwoRegMisc("Rev16VV", REV16, size, elemSize00, dst, src)
}

// Rev32VV implements REV32 dst.T, src.T: the elements of size revGranularity
// in each word reversed.
func (a *Assembler) Rev32VV(size ASIMDSize, revGranularity ElementSize, dst, src asm.Register) {
	const op = "Rev32VV"
	a.checkSizes(op, size, revGranularity)
	a.checkElementSize(op, revGranularity, ElementSizeByte, ElementSizeHalfWord)
	a.twoRegMisc(op, REV32, size, elemSizeXX(revGranularity), dst, src)
}

// Rev64VV implements REV64 dst.T, src.T: the elements of size revGranularity
// in each doubleword reversed.
func (a *Assembler) Rev64VV(size ASIMDSize, revGranularity ElementSize, dst, src asm.Register) {
	const op = "Rev64VV"
	a.checkSizes(op, size, revGranularity)
	a.checkElementSize(op, revGranularity, nonDoubleElementSizes...)
	a.twoRegMisc(op, REV64, size, elemSizeXX(revGranularity), dst, src)
}

// XtnVV implements XTN dst.Tb, src.Ta: each lane of src narrowed to dstESize
// into the lower half of dst.
func (a *Assembler) XtnVV(dstESize ElementSize, dst, src asm.Register) {
	const op = "XtnVV"
	a.checkElementSize(op, dstESize, nonDoubleElementSizes...)
	a.twoRegMisc(op, XTN, ASIMDSizeHalfReg, elemSizeXX(dstESize), dst, src)
}

// Xtn2VV implements XTN2 dst.Tb, src.Ta, writing the upper half of dst.
func (a *Assembler) Xtn2VV(dstESize ElementSize, dst, src asm.Register) {
	const op = "Xtn2VV"
	a.checkElementSize(op, dstESize, nonDoubleElementSizes...)
	a.twoRegMisc(op, XTN, ASIMDSizeFullReg, elemSizeXX(dstESize), dst, src)
}

// FabsVV implements FABS dst.T, src.T.
func (a *Assembler) FabsVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FabsVV", FABS, size, eSize, dst, src)
}

// FnegVV implements FNEG dst.T, src.T.
func (a *Assembler) FnegVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FnegVV", FNEG, size, eSize, dst, src)
}

// FsqrtVV implements FSQRT dst.T, src.T.
func (a *Assembler) FsqrtVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FsqrtVV", FSQRT, size, eSize, dst, src)
}

// FcvtzsVV implements FCVTZS dst.T, src.T: conversion to signed integers,
// rounding toward zero.
func (a *Assembler) FcvtzsVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FcvtzsVV", FCVTZS, size, eSize, dst, src)
}

// FcmeqZeroVV implements FCMEQ dst.T, src.T, #0.0.
func (a *Assembler) FcmeqZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FcmeqZeroVV", FCMEQZero, size, eSize, dst, src)
}

// FcmgeZeroVV implements FCMGE dst.T, src.T, #0.0.
func (a *Assembler) FcmgeZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FcmgeZeroVV", FCMGEZero, size, eSize, dst, src)
}

// FcmgtZeroVV implements FCMGT dst.T, src.T, #0.0.
func (a *Assembler) FcmgtZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FcmgtZeroVV", FCMGTZero, size, eSize, dst, src)
}

// FcmleZeroVV implements FCMLE dst.T, src.T, #0.0.
func (a *Assembler) FcmleZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FcmleZeroVV", FCMLEZero, size, eSize, dst, src)
}

// FcmltZeroVV implements FCMLT dst.T, src.T, #0.0.
func (a *Assembler) FcmltZeroVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.floatTwoRegMisc("FcmltZeroVV", FCMLTZero, size, eSize, dst, src)
}

// ScvtfVV implements SCVTF dst.T, src.T: conversion from signed integers.
func (a *Assembler) ScvtfVV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	const op = "ScvtfVV"
	a.checkMultipleLanes(op, size, eSize)
	a.checkElementSize(op, eSize, floatElementSizes...)
	a.twoRegMisc(op, SCVTF, size, elemSize0X(eSize), dst, src)
}

// FcvtlVV implements FCVTL dst.Ta, src.Tb: the lower half of src widened,
// HalfWord to Word or Word to DoubleWord.
func (a *Assembler) FcvtlVV(srcESize ElementSize, dst, src asm.Register) {
	const op = "FcvtlVV"
	a.checkElementSize(op, srcESize, ElementSizeHalfWord, ElementSizeWord)
	// sz is set for the 2S to 2D form.
	sizeField := elemSize00
	if srcESize == ElementSizeWord {
		sizeField = elemSize01
	}
	a.twoRegMisc(op, FCVTL, ASIMDSizeHalfReg, sizeField, dst, src)
}

// FcvtnVV implements FCVTN dst.Tb, src.Ta: src narrowed into the lower half
// of dst, Word to HalfWord or DoubleWord to Word.
func (a *Assembler) FcvtnVV(srcESize ElementSize, dst, src asm.Register) {
	const op = "FcvtnVV"
	a.checkElementSize(op, srcESize, floatElementSizes...)
	a.twoRegMisc(op, FCVTN, ASIMDSizeHalfReg, elemSize0X(srcESize), dst, src)
}

func (a *Assembler) acrossLanes(op string, inst Instruction, size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.checkAcrossLanes(op, size, eSize)
	a.checkVector(op, dst, src)
	a.emit(encodeAcrossLanes(inst, size, elemSizeXX(eSize), Encoding(dst), Encoding(src)))
}

// AddvSV implements ADDV dst, src.T: the sum of the lanes.
func (a *Assembler) AddvSV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.acrossLanes("AddvSV", ADDV, size, eSize, dst, src)
}

// SaddlvSV implements SADDLV dst, src.T: the signed sum of the lanes, into a
// scalar twice the lane width.
func (a *Assembler) SaddlvSV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.acrossLanes("SaddlvSV", SADDLV, size, eSize, dst, src)
}

// UaddlvSV implements UADDLV dst, src.T: the unsigned sum of the lanes, into
// a scalar twice the lane width.
func (a *Assembler) UaddlvSV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.acrossLanes("UaddlvSV", UADDLV, size, eSize, dst, src)
}

// UmaxvSV implements UMAXV dst, src.T.
func (a *Assembler) UmaxvSV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.acrossLanes("UmaxvSV", UMAXV, size, eSize, dst, src)
}

// UminvSV implements UMINV dst, src.T.
func (a *Assembler) UminvSV(size ASIMDSize, eSize ElementSize, dst, src asm.Register) {
	a.acrossLanes("UminvSV", UMINV, size, eSize, dst, src)
}
