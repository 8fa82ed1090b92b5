package arm64

// Instruction is one ASIMD mnemonic variant. Each carries the bits of its
// encoding that do not depend on operands; the format composers in
// encoding.go supply the rest.
//
// Section names follow "C4.1 A64 instruction set encoding" in
// https://developer.arm.com/documentation/ddi0487/latest
type Instruction byte

const (
	uBit          uint32 = 0b1 << 29
	loadFlag      uint32 = 0b1 << 22
	replicateFlag uint32 = 0b1 << 21
)

const (
	// Advanced SIMD load/store multiple structures.

	ST4Multiple4R Instruction = iota
	ST1Multiple4R
	ST1Multiple3R
	ST1Multiple1R
	ST2Multiple2R
	ST1Multiple2R
	LD4Multiple4R
	LD1Multiple4R
	LD1Multiple3R
	LD1Multiple1R
	LD2Multiple2R
	LD1Multiple2R

	// Advanced SIMD load/store single structure.

	LD1R
	LD4R

	// Cryptographic AES.

	AESE
	AESD
	AESMC
	AESIMC

	// Cryptographic three-register SHA.

	SHA1C
	SHA1P
	SHA1M
	SHA1SU0
	SHA256H
	SHA256H2
	SHA256SU1

	// Cryptographic two-register SHA.

	SHA1H
	SHA1SU1
	SHA256SU0

	// Cryptographic three-register SHA512.

	SHA512H
	SHA512H2
	SHA512SU1
	RAX1

	// Cryptographic two-register SHA512.

	SHA512SU0

	// Cryptographic four-register.

	EOR3
	BCAX

	// Cryptographic two-register with imm6. All bits live in the format.

	XAR

	// Advanced SIMD table lookup.

	TBL
	TBX

	// Advanced SIMD permute.

	UZP1
	TRN1
	ZIP1
	UZP2
	TRN2
	ZIP2

	// Advanced SIMD extract.

	EXT

	// Advanced SIMD copy.

	DUPElem
	DUPGen
	INSGen
	SMOV
	UMOV
	INSElem

	// Advanced SIMD two-register miscellaneous, size xx.

	REV64
	REV16
	CNT
	CMGTZero
	CMEQZero
	CMLTZero
	ABS
	XTN

	// Two-register miscellaneous, size 0x.

	FCVTN
	FCVTL
	SCVTF

	// Two-register miscellaneous, size 1x.

	FCMGTZero
	FCMEQZero
	FCMLTZero
	FABS
	FCVTZS

	// Two-register miscellaneous, U=1.

	REV32
	CMGEZero
	CMLEZero
	NEG
	NOT
	RBIT
	FCMGEZero
	FCMLEZero
	FNEG
	FSQRT

	// Advanced SIMD across lanes.

	SADDLV
	ADDV
	UADDLV
	UMAXV
	UMINV

	// Advanced SIMD three different.

	SSUBL
	SMLAL
	SMLSL
	PMULL
	USUBL
	UMLAL
	UMLSL

	// Advanced SIMD three same and scalar three same, size xx.

	CMGT
	CMGE
	SSHL
	SMAX
	SMIN
	SMINP
	ADD
	CMTST
	MLA
	MUL
	ADDP

	// Three same, size 0x.

	FMLA
	FADD
	FCMEQ
	FMAX

	// Three same logical. The size field selects the operation.

	AND
	BIC
	ORR
	ORN

	// Three same, size 1x.

	FMLS
	FSUB
	FMIN

	// Three same, U=1.

	CMHI
	CMHS
	USHL
	UMAX
	UMAXP
	UMIN
	UMINP
	SUB
	CMEQ
	MLS
	FMUL
	FCMGE
	FACGE
	FDIV
	EOR
	BSL
	BIT
	BIF
	FCMGT
	FACGT

	// Advanced SIMD shift by immediate and scalar shift by immediate.

	SSHR
	SHL
	SSHLL
	USHR
	USRA
	USHLL

	// instructionEnd is always placed at the bottom of this iota definition to be used in the test.
	instructionEnd
)

var instructionTable = [instructionEnd]struct {
	name     string
	encoding uint32
}{
	ST4Multiple4R: {"ST4Multiple4R", 0b0000 << 12},
	ST1Multiple4R: {"ST1Multiple4R", 0b0010 << 12},
	ST1Multiple3R: {"ST1Multiple3R", 0b0110 << 12},
	ST1Multiple1R: {"ST1Multiple1R", 0b0111 << 12},
	ST2Multiple2R: {"ST2Multiple2R", 0b1000 << 12},
	ST1Multiple2R: {"ST1Multiple2R", 0b1010 << 12},
	LD4Multiple4R: {"LD4Multiple4R", loadFlag | 0b0000<<12},
	LD1Multiple4R: {"LD1Multiple4R", loadFlag | 0b0010<<12},
	LD1Multiple3R: {"LD1Multiple3R", loadFlag | 0b0110<<12},
	LD1Multiple1R: {"LD1Multiple1R", loadFlag | 0b0111<<12},
	LD2Multiple2R: {"LD2Multiple2R", loadFlag | 0b1000<<12},
	LD1Multiple2R: {"LD1Multiple2R", loadFlag | 0b1010<<12},
	LD1R:          {"LD1R", loadFlag | 0b110<<13},
	LD4R:          {"LD4R", loadFlag | replicateFlag | 0b111<<13},
	AESE:          {"AESE", 0b00100 << 12},
	AESD:          {"AESD", 0b00101 << 12},
	AESMC:         {"AESMC", 0b00110 << 12},
	AESIMC:        {"AESIMC", 0b00111 << 12},
	SHA1C:         {"SHA1C", 0b000 << 12},
	SHA1P:         {"SHA1P", 0b001 << 12},
	SHA1M:         {"SHA1M", 0b010 << 12},
	SHA1SU0:       {"SHA1SU0", 0b011 << 12},
	SHA256H:       {"SHA256H", 0b100 << 12},
	SHA256H2:      {"SHA256H2", 0b101 << 12},
	SHA256SU1:     {"SHA256SU1", 0b110 << 12},
	SHA1H:         {"SHA1H", 0b00000 << 12},
	SHA1SU1:       {"SHA1SU1", 0b00001 << 12},
	SHA256SU0:     {"SHA256SU0", 0b00010 << 12},
	SHA512H:       {"SHA512H", 0b00 << 10},
	SHA512H2:      {"SHA512H2", 0b01 << 10},
	SHA512SU1:     {"SHA512SU1", 0b10 << 10},
	RAX1:          {"RAX1", 0b11 << 10},
	SHA512SU0:     {"SHA512SU0", 0b00 << 10},
	EOR3:          {"EOR3", 0b00 << 21},
	BCAX:          {"BCAX", 0b01 << 21},
	XAR:           {"XAR", 0},
	TBL:           {"TBL", 0b0 << 12},
	TBX:           {"TBX", 0b1 << 12},
	UZP1:          {"UZP1", 0b001 << 12},
	TRN1:          {"TRN1", 0b010 << 12},
	ZIP1:          {"ZIP1", 0b011 << 12},
	UZP2:          {"UZP2", 0b101 << 12},
	TRN2:          {"TRN2", 0b110 << 12},
	ZIP2:          {"ZIP2", 0b111 << 12},
	EXT:           {"EXT", 0b00 << 22},
	DUPElem:       {"DUPElem", 0b0000 << 11},
	DUPGen:        {"DUPGen", 0b0001 << 11},
	INSGen:        {"INSGen", 0b0011 << 11},
	SMOV:          {"SMOV", 0b0101 << 11},
	UMOV:          {"UMOV", 0b0111 << 11},
	INSElem:       {"INSElem", 0b1 << 29},
	REV64:         {"REV64", 0b00000 << 12},
	REV16:         {"REV16", 0b00001 << 12},
	CNT:           {"CNT", 0b00101 << 12},
	CMGTZero:      {"CMGTZero", 0b01000 << 12},
	CMEQZero:      {"CMEQZero", 0b01001 << 12},
	CMLTZero:      {"CMLTZero", 0b01010 << 12},
	ABS:           {"ABS", 0b01011 << 12},
	XTN:           {"XTN", 0b10010 << 12},
	FCVTN:         {"FCVTN", 0b10110 << 12},
	FCVTL:         {"FCVTL", 0b10111 << 12},
	SCVTF:         {"SCVTF", 0b11101 << 12},
	FCMGTZero:     {"FCMGTZero", 0b01100 << 12},
	FCMEQZero:     {"FCMEQZero", 0b01101 << 12},
	FCMLTZero:     {"FCMLTZero", 0b01110 << 12},
	FABS:          {"FABS", 0b01111 << 12},
	FCVTZS:        {"FCVTZS", 0b11011 << 12},
	REV32:         {"REV32", uBit | 0b00000<<12},
	CMGEZero:      {"CMGEZero", uBit | 0b01000<<12},
	CMLEZero:      {"CMLEZero", uBit | 0b01001<<12},
	NEG:           {"NEG", uBit | 0b01011<<12},
	NOT:           {"NOT", uBit | 0b00101<<12},
	RBIT:          {"RBIT", uBit | 0b00101<<12},
	FCMGEZero:     {"FCMGEZero", uBit | 0b01100<<12},
	FCMLEZero:     {"FCMLEZero", uBit | 0b01101<<12},
	FNEG:          {"FNEG", uBit | 0b01111<<12},
	FSQRT:         {"FSQRT", uBit | 0b11111<<12},
	SADDLV:        {"SADDLV", 0b00011 << 12},
	ADDV:          {"ADDV", 0b11011 << 12},
	UADDLV:        {"UADDLV", uBit | 0b00011<<12},
	UMAXV:         {"UMAXV", uBit | 0b01010<<12},
	UMINV:         {"UMINV", uBit | 0b11010<<12},
	SSUBL:         {"SSUBL", 0b0010 << 12},
	SMLAL:         {"SMLAL", 0b1000 << 12},
	SMLSL:         {"SMLSL", 0b1010 << 12},
	PMULL:         {"PMULL", 0b1110 << 12},
	USUBL:         {"USUBL", uBit | 0b0010<<12},
	UMLAL:         {"UMLAL", uBit | 0b1000<<12},
	UMLSL:         {"UMLSL", uBit | 0b1010<<12},
	CMGT:          {"CMGT", 0b00110 << 11},
	CMGE:          {"CMGE", 0b00111 << 11},
	SSHL:          {"SSHL", 0b01000 << 11},
	SMAX:          {"SMAX", 0b01100 << 11},
	SMIN:          {"SMIN", 0b01101 << 11},
	SMINP:         {"SMINP", 0b10101 << 11},
	ADD:           {"ADD", 0b10000 << 11},
	CMTST:         {"CMTST", 0b10001 << 11},
	MLA:           {"MLA", 0b10010 << 11},
	MUL:           {"MUL", 0b10011 << 11},
	ADDP:          {"ADDP", 0b10111 << 11},
	FMLA:          {"FMLA", 0b11001 << 11},
	FADD:          {"FADD", 0b11010 << 11},
	FCMEQ:         {"FCMEQ", 0b11100 << 11},
	FMAX:          {"FMAX", 0b11110 << 11},
	AND:           {"AND", 0b00011 << 11},
	BIC:           {"BIC", 0b00011 << 11},
	ORR:           {"ORR", 0b00011 << 11},
	ORN:           {"ORN", 0b00011 << 11},
	FMLS:          {"FMLS", 0b11001 << 11},
	FSUB:          {"FSUB", 0b11010 << 11},
	FMIN:          {"FMIN", 0b11110 << 11},
	CMHI:          {"CMHI", uBit | 0b00110<<11},
	CMHS:          {"CMHS", uBit | 0b00111<<11},
	USHL:          {"USHL", uBit | 0b01000<<11},
	UMAX:          {"UMAX", uBit | 0b01100<<11},
	UMAXP:         {"UMAXP", uBit | 0b10100<<11},
	UMIN:          {"UMIN", uBit | 0b01101<<11},
	UMINP:         {"UMINP", uBit | 0b10101<<11},
	SUB:           {"SUB", uBit | 0b10000<<11},
	CMEQ:          {"CMEQ", uBit | 0b10001<<11},
	MLS:           {"MLS", uBit | 0b10010<<11},
	FMUL:          {"FMUL", uBit | 0b11011<<11},
	FCMGE:         {"FCMGE", uBit | 0b11100<<11},
	FACGE:         {"FACGE", uBit | 0b11101<<11},
	FDIV:          {"FDIV", uBit | 0b11111<<11},
	EOR:           {"EOR", uBit | 0b00011<<11},
	BSL:           {"BSL", uBit | 0b00011<<11},
	BIT:           {"BIT", uBit | 0b00011<<11},
	BIF:           {"BIF", uBit | 0b00011<<11},
	FCMGT:         {"FCMGT", uBit | 0b11100<<11},
	FACGT:         {"FACGT", uBit | 0b11101<<11},
	SSHR:          {"SSHR", 0b00000 << 11},
	SHL:           {"SHL", 0b01010 << 11},
	SSHLL:         {"SSHLL", 0b10100 << 11},
	USHR:          {"USHR", uBit | 0b00000<<11},
	USRA:          {"USRA", uBit | 0b00010<<11},
	USHLL:         {"USHLL", uBit | 0b10100<<11},
}

// Encoding returns the operand independent bits of the instruction.
func (i Instruction) Encoding() uint32 {
	return instructionTable[i].encoding
}

// String implements fmt.Stringer.
func (i Instruction) String() string {
	if i < instructionEnd {
		return instructionTable[i].name
	}
	return "UNKNOWN"
}
