package arm64

import "github.com/tetratelabs/asimd/asm"

func (a *Assembler) threeSame(op string, inst Instruction, size ASIMDSize, sizeField uint32, dst, src1, src2 asm.Register) {
	a.checkVector(op, dst, src1, src2)
	a.emit(encodeThreeSame(inst, size, sizeField, Encoding(dst), Encoding(src1), Encoding(src2)))
}

// integerThreeSame is a three same operation on integer lanes. multiple
// rejects a single 64-bit lane, noDoubleWord rejects 64-bit lanes entirely.
func (a *Assembler) integerThreeSame(op string, inst Instruction, multiple, noDoubleWord bool, size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	if multiple {
		a.checkMultipleLanes(op, size, eSize)
	} else {
		a.checkSizes(op, size, eSize)
	}
	if noDoubleWord {
		a.checkElementSize(op, eSize, nonDoubleElementSizes...)
	}
	a.threeSame(op, inst, size, elemSizeXX(eSize), dst, src1, src2)
}

// floatThreeSame is a three same operation on floating-point lanes.
// sizeField is elemSize0X or elemSize1X, depending on the instruction.
func (a *Assembler) floatThreeSame(op string, inst Instruction, sizeField func(ElementSize) uint32, size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.checkMultipleLanes(op, size, eSize)
	a.checkElementSize(op, eSize, floatElementSizes...)
	a.threeSame(op, inst, size, sizeField(eSize), dst, src1, src2)
}

// logicalThreeSame is a bitwise three same operation, whose size field is
// part of the opcode.
func (a *Assembler) logicalThreeSame(op string, inst Instruction, size ASIMDSize, sizeField uint32, dst, src1, src2 asm.Register) {
	a.checkSizes(op, size, ElementSizeByte)
	a.threeSame(op, inst, size, sizeField, dst, src1, src2)
}

// AddVVV implements ADD dst.T, src1.T, src2.T.
// HalfReg with DoubleWord lanes is not rejected and emits the 1D form, which
// the architecture reserves.
func (a *Assembler) AddVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("AddVVV", ADD, false, false, size, eSize, dst, src1, src2)
}

// SubVVV implements SUB dst.T, src1.T, src2.T.
// HalfReg with DoubleWord lanes is not rejected and emits the 1D form, which
// the architecture reserves.
func (a *Assembler) SubVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("SubVVV", SUB, false, false, size, eSize, dst, src1, src2)
}

// AddpVVV implements ADDP dst.T, src1.T, src2.T: sums of adjacent pairs of
// src2:src1.
func (a *Assembler) AddpVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("AddpVVV", ADDP, true, false, size, eSize, dst, src1, src2)
}

// MlaVVV implements MLA dst.T, src1.T, src2.T: dst += src1 * src2.
func (a *Assembler) MlaVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("MlaVVV", MLA, false, true, size, eSize, dst, src1, src2)
}

// MlsVVV implements MLS dst.T, src1.T, src2.T: dst -= src1 * src2.
func (a *Assembler) MlsVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("MlsVVV", MLS, false, true, size, eSize, dst, src1, src2)
}

// MulVVV implements MUL dst.T, src1.T, src2.T.
func (a *Assembler) MulVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("MulVVV", MUL, false, true, size, eSize, dst, src1, src2)
}

// CmeqVVV implements CMEQ dst.T, src1.T, src2.T.
func (a *Assembler) CmeqVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("CmeqVVV", CMEQ, true, false, size, eSize, dst, src1, src2)
}

// CmgeVVV implements CMGE dst.T, src1.T, src2.T (signed).
func (a *Assembler) CmgeVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("CmgeVVV", CMGE, true, false, size, eSize, dst, src1, src2)
}

// CmgtVVV implements CMGT dst.T, src1.T, src2.T (signed).
func (a *Assembler) CmgtVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("CmgtVVV", CMGT, true, false, size, eSize, dst, src1, src2)
}

// CmhiVVV implements CMHI dst.T, src1.T, src2.T (unsigned greater than).
func (a *Assembler) CmhiVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("CmhiVVV", CMHI, true, false, size, eSize, dst, src1, src2)
}

// CmhsVVV implements CMHS dst.T, src1.T, src2.T (unsigned greater or equal).
func (a *Assembler) CmhsVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("CmhsVVV", CMHS, true, false, size, eSize, dst, src1, src2)
}

// CmtstVVV implements CMTST dst.T, src1.T, src2.T: all ones where
// src1 AND src2 is non-zero.
func (a *Assembler) CmtstVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("CmtstVVV", CMTST, true, false, size, eSize, dst, src1, src2)
}

// SmaxVVV implements SMAX dst.T, src1.T, src2.T.
func (a *Assembler) SmaxVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("SmaxVVV", SMAX, true, true, size, eSize, dst, src1, src2)
}

// SminVVV implements SMIN dst.T, src1.T, src2.T.
func (a *Assembler) SminVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("SminVVV", SMIN, true, true, size, eSize, dst, src1, src2)
}

// SminpVVV implements SMINP dst.T, src1.T, src2.T.
func (a *Assembler) SminpVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("SminpVVV", SMINP, true, true, size, eSize, dst, src1, src2)
}

// UmaxVVV implements UMAX dst.T, src1.T, src2.T.
func (a *Assembler) UmaxVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("UmaxVVV", UMAX, true, true, size, eSize, dst, src1, src2)
}

// UmaxpVVV implements UMAXP dst.T, src1.T, src2.T.
func (a *Assembler) UmaxpVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("UmaxpVVV", UMAXP, true, true, size, eSize, dst, src1, src2)
}

// UminVVV implements UMIN dst.T, src1.T, src2.T.
func (a *Assembler) UminVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("UminVVV", UMIN, true, true, size, eSize, dst, src1, src2)
}

// UminpVVV implements UMINP dst.T, src1.T, src2.T.
func (a *Assembler) UminpVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("UminpVVV", UMINP, true, true, size, eSize, dst, src1, src2)
}

// SshlVVV implements SSHL dst.T, src1.T, src2.T: src1 shifted by the signed
// lanes of src2, left when positive and arithmetic right when negative.
func (a *Assembler) SshlVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("SshlVVV", SSHL, true, false, size, eSize, dst, src1, src2)
}

// UshlVVV implements USHL dst.T, src1.T, src2.T, shifting right logically
// for negative amounts.
func (a *Assembler) UshlVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.integerThreeSame("UshlVVV", USHL, true, false, size, eSize, dst, src1, src2)
}

// AndVVV implements AND dst.T, src1.T, src2.T.
func (a *Assembler) AndVVV(size ASIMDSize, dst, src1, src2 asm.Register) {
	a.logicalThreeSame("AndVVV", AND, size, elemSize00, dst, src1, src2)
}

// BicVVV implements BIC dst.T, src1.T, src2.T: src1 AND NOT src2.
func (a *Assembler) BicVVV(size ASIMDSize, dst, src1, src2 asm.Register) {
	a.logicalThreeSame("BicVVV", BIC, size, elemSize01, dst, src1, src2)
}

// OrrVVV implements ORR dst.T, src1.T, src2.T.
func (a *Assembler) OrrVVV(size ASIMDSize, dst, src1, src2 asm.Register) {
	a.logicalThreeSame("OrrVVV", ORR, size, elemSize10, dst, src1, src2)
}

// OrnVVV implements ORN dst.T, src1.T, src2.T: src1 OR NOT src2.
func (a *Assembler) OrnVVV(size ASIMDSize, dst, src1, src2 asm.Register) {
	a.logicalThreeSame("OrnVVV", ORN, size, elemSize11, dst, src1, src2)
}

// EorVVV implements EOR dst.T, src1.T, src2.T.
func (a *Assembler) EorVVV(size ASIMDSize, dst, src1, src2 asm.Register) {
	a.logicalThreeSame("EorVVV", EOR, size, elemSize00, dst, src1, src2)
}

// BslVVV implements BSL dst.T, src1.T, src2.T: the bits of src1 where dst is
// set, of src2 elsewhere.
func (a *Assembler) BslVVV(size ASIMDSize, dst, src1, src2 asm.Register) {
	a.logicalThreeSame("BslVVV", BSL, size, elemSize01, dst, src1, src2)
}

// BitVVV implements BIT dst.T, src1.T, src2.T: src1 bits inserted into dst
// where src2 is set.
func (a *Assembler) BitVVV(size ASIMDSize, dst, src1, src2 asm.Register) {
	a.logicalThreeSame("BitVVV", BIT, size, elemSize10, dst, src1, src2)
}

// BifVVV implements BIF dst.T, src1.T, src2.T: src1 bits inserted into dst
// where src2 is clear.
func (a *Assembler) BifVVV(size ASIMDSize, dst, src1, src2 asm.Register) {
	a.logicalThreeSame("BifVVV", BIF, size, elemSize11, dst, src1, src2)
}

// MovVV implements MOV dst.T, src.T, the alias of ORR dst.T, src.T, src.T.
func (a *Assembler) MovVV(size ASIMDSize, dst, src asm.Register) {
	a.logicalThreeSame("MovVV", ORR, size, elemSize10, dst, src, src)
}

// FaddVVV implements FADD dst.T, src1.T, src2.T.
func (a *Assembler) FaddVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FaddVVV", FADD, elemSize0X, size, eSize, dst, src1, src2)
}

// FsubVVV implements FSUB dst.T, src1.T, src2.T.
func (a *Assembler) FsubVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FsubVVV", FSUB, elemSize1X, size, eSize, dst, src1, src2)
}

// FmulVVV implements FMUL dst.T, src1.T, src2.T.
func (a *Assembler) FmulVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FmulVVV", FMUL, elemSize0X, size, eSize, dst, src1, src2)
}

// FdivVVV implements FDIV dst.T, src1.T, src2.T.
func (a *Assembler) FdivVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FdivVVV", FDIV, elemSize0X, size, eSize, dst, src1, src2)
}

// FmaxVVV implements FMAX dst.T, src1.T, src2.T.
func (a *Assembler) FmaxVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FmaxVVV", FMAX, elemSize0X, size, eSize, dst, src1, src2)
}

// FminVVV implements FMIN dst.T, src1.T, src2.T.
func (a *Assembler) FminVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FminVVV", FMIN, elemSize1X, size, eSize, dst, src1, src2)
}

// FmlaVVV implements FMLA dst.T, src1.T, src2.T: dst += src1 * src2, fused.
func (a *Assembler) FmlaVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FmlaVVV", FMLA, elemSize0X, size, eSize, dst, src1, src2)
}

// FmlsVVV implements FMLS dst.T, src1.T, src2.T: dst -= src1 * src2, fused.
func (a *Assembler) FmlsVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FmlsVVV", FMLS, elemSize1X, size, eSize, dst, src1, src2)
}

// FcmeqVVV implements FCMEQ dst.T, src1.T, src2.T.
func (a *Assembler) FcmeqVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FcmeqVVV", FCMEQ, elemSize0X, size, eSize, dst, src1, src2)
}

// FcmgeVVV implements FCMGE dst.T, src1.T, src2.T.
func (a *Assembler) FcmgeVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FcmgeVVV", FCMGE, elemSize0X, size, eSize, dst, src1, src2)
}

// FcmgtVVV implements FCMGT dst.T, src1.T, src2.T.
func (a *Assembler) FcmgtVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FcmgtVVV", FCMGT, elemSize1X, size, eSize, dst, src1, src2)
}

// FacgeVVV implements FACGE dst.T, src1.T, src2.T: |src1| >= |src2|.
func (a *Assembler) FacgeVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FacgeVVV", FACGE, elemSize0X, size, eSize, dst, src1, src2)
}

// FacgtVVV implements FACGT dst.T, src1.T, src2.T: |src1| > |src2|.
func (a *Assembler) FacgtVVV(size ASIMDSize, eSize ElementSize, dst, src1, src2 asm.Register) {
	a.floatThreeSame("FacgtVVV", FACGT, elemSize1X, size, eSize, dst, src1, src2)
}

func (a *Assembler) scalarThreeSame(op string, inst Instruction, sizeField uint32, dst, src1, src2 asm.Register) {
	a.checkVector(op, dst, src1, src2)
	a.emit(encodeScalarThreeSame(inst, sizeField, Encoding(dst), Encoding(src1), Encoding(src2)))
}

// AddSSS implements ADD Dd, Dn, Dm. Only DoubleWord is encodable.
func (a *Assembler) AddSSS(eSize ElementSize, dst, src1, src2 asm.Register) {
	const op = "AddSSS"
	a.checkElementSize(op, eSize, ElementSizeDoubleWord)
	a.scalarThreeSame(op, ADD, elemSizeXX(eSize), dst, src1, src2)
}

// SubSSS implements SUB Dd, Dn, Dm. Only DoubleWord is encodable.
func (a *Assembler) SubSSS(eSize ElementSize, dst, src1, src2 asm.Register) {
	const op = "SubSSS"
	a.checkElementSize(op, eSize, ElementSizeDoubleWord)
	a.scalarThreeSame(op, SUB, elemSizeXX(eSize), dst, src1, src2)
}

// FacgtSSS implements FACGT on scalars: |src1| > |src2|.
func (a *Assembler) FacgtSSS(eSize ElementSize, dst, src1, src2 asm.Register) {
	const op = "FacgtSSS"
	a.checkElementSize(op, eSize, floatElementSizes...)
	a.scalarThreeSame(op, FACGT, elemSize1X(eSize), dst, src1, src2)
}

// threeDifferent is a widening operation on the lower (upper when size is
// ASIMDSizeFullReg) halves of the sources.
func (a *Assembler) threeDifferent(op string, inst Instruction, size ASIMDSize, srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.checkElementSize(op, srcESize, nonDoubleElementSizes...)
	a.checkVector(op, dst, src1, src2)
	a.emit(encodeThreeDifferent(inst, size, elemSizeXX(srcESize), Encoding(dst), Encoding(src1), Encoding(src2)))
}

// SsublVVV implements SSUBL dst.Ta, src1.Tb, src2.Tb.
func (a *Assembler) SsublVVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.threeDifferent("SsublVVV", SSUBL, ASIMDSizeHalfReg, srcESize, dst, src1, src2)
}

// Ssubl2VVV implements SSUBL2 dst.Ta, src1.Tb, src2.Tb.
func (a *Assembler) Ssubl2VVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.threeDifferent("Ssubl2VVV", SSUBL, ASIMDSizeFullReg, srcESize, dst, src1, src2)
}

// UsublVVV implements USUBL dst.Ta, src1.Tb, src2.Tb.
func (a *Assembler) UsublVVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.threeDifferent("UsublVVV", USUBL, ASIMDSizeHalfReg, srcESize, dst, src1, src2)
}

// Usubl2VVV implements USUBL2 dst.Ta, src1.Tb, src2.Tb.
func (a *Assembler) Usubl2VVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.threeDifferent("Usubl2VVV", USUBL, ASIMDSizeFullReg, srcESize, dst, src1, src2)
}

// SmlalVVV implements SMLAL dst.Ta, src1.Tb, src2.Tb.
func (a *Assembler) SmlalVVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.threeDifferent("SmlalVVV", SMLAL, ASIMDSizeHalfReg, srcESize, dst, src1, src2)
}

// SmlslVVV implements SMLSL dst.Ta, src1.Tb, src2.Tb.
func (a *Assembler) SmlslVVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.threeDifferent("SmlslVVV", SMLSL, ASIMDSizeHalfReg, srcESize, dst, src1, src2)
}

// UmlalVVV implements UMLAL dst.Ta, src1.Tb, src2.Tb.
func (a *Assembler) UmlalVVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.threeDifferent("UmlalVVV", UMLAL, ASIMDSizeHalfReg, srcESize, dst, src1, src2)
}

// UmlslVVV implements UMLSL dst.Ta, src1.Tb, src2.Tb.
func (a *Assembler) UmlslVVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	a.threeDifferent("UmlslVVV", UMLSL, ASIMDSizeHalfReg, srcESize, dst, src1, src2)
}

// PmullVVV implements PMULL dst.Ta, src1.Tb, src2.Tb, the polynomial multiply
// of 8B into 8H or 1D into 1Q.
func (a *Assembler) PmullVVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	const op = "PmullVVV"
	a.checkElementSize(op, srcESize, ElementSizeByte, ElementSizeDoubleWord)
	a.checkVector(op, dst, src1, src2)
	a.emit(encodeThreeDifferent(PMULL, ASIMDSizeHalfReg, elemSizeXX(srcESize), Encoding(dst), Encoding(src1), Encoding(src2)))
}

// Pmull2VVV implements PMULL2 on the upper halves of the sources.
func (a *Assembler) Pmull2VVV(srcESize ElementSize, dst, src1, src2 asm.Register) {
	const op = "Pmull2VVV"
	a.checkElementSize(op, srcESize, ElementSizeByte, ElementSizeDoubleWord)
	a.checkVector(op, dst, src1, src2)
	a.emit(encodeThreeDifferent(PMULL, ASIMDSizeFullReg, elemSizeXX(srcESize), Encoding(dst), Encoding(src1), Encoding(src2)))
}
