package arm64

// Register arguments of the encode functions below are 5-bit hardware
// indexes, as returned by Encoding.

// qBit returns bit 30, set when the operation writes the whole 128-bit register.
func qBit(size ASIMDSize) uint32 {
	if size == ASIMDSizeFullReg {
		return 0b1 << 30
	}
	return 0
}

// fullRegIf returns ASIMDSizeFullReg if full is true.
func fullRegIf(full bool) ASIMDSize {
	if full {
		return ASIMDSizeFullReg
	}
	return ASIMDSizeHalfReg
}

// Values of the size field at bits 23:22.
const (
	elemSize00 uint32 = 0b00 << 22
	elemSize01 uint32 = 0b01 << 22
	elemSize10 uint32 = 0b10 << 22
	elemSize11 uint32 = 0b11 << 22
)

// elemSizeXX is the size field of integer operations.
func elemSizeXX(eSize ElementSize) uint32 {
	return eSize.encoding() << 22
}

// elemSize0X is the size field of floating-point operations whose bit 23 is
// clear: bit 22 (sz) selects double precision.
func elemSize0X(eSize ElementSize) uint32 {
	if eSize == ElementSizeDoubleWord {
		return elemSize01
	}
	return elemSize00
}

// elemSize1X is elemSize0X with bit 23 set.
func elemSize1X(eSize ElementSize) uint32 {
	if eSize == ElementSizeDoubleWord {
		return elemSize11
	}
	return elemSize10
}

// encodeLoadStoreMultiple encodes as "Advanced SIMD load/store multiple structures" and its
// post-indexed form in
// https://developer.arm.com/documentation/ddi0602/2024-12/Index-by-Encoding/Loads-and-Stores?lang=en
//
// The element size lives at bits 11:10. addr is AddressOperand.encoding.
func encodeLoadStoreMultiple(inst Instruction, size ASIMDSize, eSize ElementSize, rt, addr uint32) uint32 {
	const base = 0b0_0_001100_0_0_0_00000_0000_00_00000_00000
	return inst.Encoding() | base | qBit(size) | eSize.encoding()<<10 | addr | rt
}

// encodeLoadStoreSingle encodes as "Advanced SIMD load/store single structure" and its
// post-indexed form. Only the replicating forms (LD1R, LD4R) are used.
func encodeLoadStoreSingle(inst Instruction, size ASIMDSize, eSize ElementSize, rt, addr uint32) uint32 {
	const base = 0b0_0_001101_0_0_0_00000_000_0_00_00000_00000
	return inst.Encoding() | base | qBit(size) | eSize.encoding()<<10 | addr | rt
}

// encodeCryptoAES encodes as "Cryptographic AES" in
// https://developer.arm.com/documentation/ddi0602/2024-12/Index-by-Encoding/Data-Processing----Scalar-Floating-Point-and-Advanced-SIMD?lang=en
func encodeCryptoAES(inst Instruction, rd, rn uint32) uint32 {
	const base = 0b01001110_00_10100_00000_10_00000_00000
	return inst.Encoding() | base | rn<<5 | rd
}

// encodeCryptoThreeSHA encodes as "Cryptographic three-register SHA".
func encodeCryptoThreeSHA(inst Instruction, rd, rn, rm uint32) uint32 {
	const base = 0b01011110_00_0_00000_0_000_00_00000_00000
	return inst.Encoding() | base | rm<<16 | rn<<5 | rd
}

// encodeCryptoTwoSHA encodes as "Cryptographic two-register SHA".
func encodeCryptoTwoSHA(inst Instruction, rd, rn uint32) uint32 {
	const base = 0b01011110_00_10100_00000_10_00000_00000
	return inst.Encoding() | base | rn<<5 | rd
}

// encodeCryptoThreeSHA512 encodes as "Cryptographic three-register SHA 512" (ARMv8.2-SHA).
func encodeCryptoThreeSHA512(inst Instruction, rd, rn, rm uint32) uint32 {
	const base = 0b11001110011_00000_1_0_00_00_00000_00000
	return inst.Encoding() | base | rm<<16 | rn<<5 | rd
}

// encodeCryptoTwoSHA512 encodes as "Cryptographic two-register SHA 512" (ARMv8.2-SHA).
func encodeCryptoTwoSHA512(inst Instruction, rd, rn uint32) uint32 {
	const base = 0b11001110110000001000_00_00000_00000
	return inst.Encoding() | base | rn<<5 | rd
}

// encodeCryptoFour encodes as "Cryptographic four-register" (ARMv8.2-SHA3).
func encodeCryptoFour(inst Instruction, rd, rn, rm, ra uint32) uint32 {
	const base = 0b110011100_00_00000_0_00000_00000_00000
	return inst.Encoding() | base | rm<<16 | ra<<10 | rn<<5 | rd
}

// encodeCryptoXAR encodes XAR, "Cryptographic two-register, imm6" (ARMv8.2-SHA3).
//
// imm6 must be in [0, 64).
func encodeCryptoXAR(rd, rn, rm, imm6 uint32) uint32 {
	const base = 0b110011101_00_00000_000000_00000_00000
	return XAR.Encoding() | base | rm<<16 | imm6<<10 | rn<<5 | rd
}

// encodeScalarThreeSame encodes as "Advanced SIMD scalar three same".
func encodeScalarThreeSame(inst Instruction, sizeField, rd, rn, rm uint32) uint32 {
	const base = 0b01_0_11110_00_1_00000_00000_1_00000_00000
	return inst.Encoding() | base | sizeField | rm<<16 | rn<<5 | rd
}

// encodeScalarShiftByImm encodes as "Advanced SIMD scalar shift by immediate".
//
// imm7 is immh:immb, see encodeShiftByImm.
func encodeScalarShiftByImm(inst Instruction, imm7, rd, rn uint32) uint32 {
	const base = 0b01_0_111110_0000_000_00000_1_00000_00000
	return inst.Encoding() | base | imm7<<16 | rn<<5 | rd
}

// copyImm5 is the imm5 field of the copy formats: the lowest set bit selects
// the lane size and the bits above it hold the lane index.
func copyImm5(eSize ElementSize, index int) uint32 {
	return uint32(index*2*eSize.Bytes()|eSize.Bytes()) << 16
}

// encodeScalarCopy encodes as "Advanced SIMD scalar copy". DUP (element) is
// the only instruction of the format.
func encodeScalarCopy(eSize ElementSize, index int, rd, rn uint32) uint32 {
	const base = 0b01_0_11110000_00000_0_0000_1_00000_00000
	return DUPElem.Encoding() | base | copyImm5(eSize, index) | rn<<5 | rd
}

// encodeTableLookup encodes as "Advanced SIMD table lookup". tableRegs is the
// length of the consecutive table register list starting at rn.
func encodeTableLookup(inst Instruction, size ASIMDSize, tableRegs int, rd, rn, rm uint32) uint32 {
	const base = 0b0_0_001110_00_0_00000_0_000_00_00000_00000
	return inst.Encoding() | base | qBit(size) | uint32(tableRegs-1)<<13 | rm<<16 | rn<<5 | rd
}

// encodePermute encodes as "Advanced SIMD permute".
func encodePermute(inst Instruction, size ASIMDSize, eSize ElementSize, rd, rn, rm uint32) uint32 {
	const base = 0b0_0_001110_00_0_00000_0_000_10_00000_00000
	return inst.Encoding() | base | qBit(size) | elemSizeXX(eSize) | rm<<16 | rn<<5 | rd
}

// encodeExtract encodes EXT as "Advanced SIMD extract". index is the first
// byte of rn included in the result.
func encodeExtract(size ASIMDSize, index int, rd, rn, rm uint32) uint32 {
	const base = 0b0_0_101110_00_0_00000_0_0000_0_00000_00000
	return EXT.Encoding() | base | qBit(size) | uint32(index)<<11 | rm<<16 | rn<<5 | rd
}

// encodeCopy encodes as "Advanced SIMD copy". imm4 carries the source lane
// of INS (element) and is zero otherwise.
func encodeCopy(inst Instruction, size ASIMDSize, eSize ElementSize, index int, imm4, rd, rn uint32) uint32 {
	const base = 0b0_0_0_01110000_00000_0_0000_1_00000_00000
	return inst.Encoding() | base | qBit(size) | copyImm5(eSize, index) | imm4 | rn<<5 | rd
}

// encodeTwoRegMisc encodes as "Advanced SIMD two-register miscellaneous".
func encodeTwoRegMisc(inst Instruction, size ASIMDSize, sizeField, rd, rn uint32) uint32 {
	const base = 0b0_0_0_01110_00_10000_00000_10_00000_00000
	return inst.Encoding() | base | qBit(size) | sizeField | rn<<5 | rd
}

// encodeAcrossLanes encodes as "Advanced SIMD across lanes".
func encodeAcrossLanes(inst Instruction, size ASIMDSize, sizeField, rd, rn uint32) uint32 {
	const base = 0b0_0_0_01110_00_11000_00000_10_00000_00000
	return inst.Encoding() | base | qBit(size) | sizeField | rn<<5 | rd
}

// encodeThreeDifferent encodes as "Advanced SIMD three different". Q selects
// the upper half of the sources (the "2" variants).
func encodeThreeDifferent(inst Instruction, size ASIMDSize, sizeField, rd, rn, rm uint32) uint32 {
	const base = 0b0_0_0_01110_00_1_00000_0000_00_00000_00000
	return inst.Encoding() | base | qBit(size) | sizeField | rm<<16 | rn<<5 | rd
}

// encodeThreeSame encodes as "Advanced SIMD three same".
func encodeThreeSame(inst Instruction, size ASIMDSize, sizeField, rd, rn, rm uint32) uint32 {
	const base = 0b0_0_0_01110_00_1_00000_00000_1_00000_00000
	return inst.Encoding() | base | qBit(size) | sizeField | rm<<16 | rn<<5 | rd
}

// encodeModifiedImm encodes as "Advanced SIMD modified immediate". imm must
// be encodable by op, see IsImmediateEncodable.
func encodeModifiedImm(op ImmediateOp, size ASIMDSize, imm uint64, rd uint32) uint32 {
	const base = 0b0_0_0_0111100000_000_0000_0_1_00000_00000
	return base | qBit(size) | ImmediateEncoding(imm, op) | rd
}

// encodeShiftByImm encodes as "Advanced SIMD shift by immediate".
//
// imm7 is immh:immb. The position of the highest set bit of immh selects the
// lane size, so a left shift is encoded as esize+amount and a right shift as
// 2*esize-amount.
func encodeShiftByImm(inst Instruction, size ASIMDSize, imm7, rd, rn uint32) uint32 {
	const base = 0b0_0_0_011110_0000_000_00000_1_00000_00000
	return inst.Encoding() | base | qBit(size) | imm7<<16 | rn<<5 | rd
}
