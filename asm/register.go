// Package asm holds the architecture independent pieces shared by the
// encoders in its subpackages.
package asm

// Register represents architecture-specific registers.
type Register byte

// NilRegister is the only architecture-independent register, and
// can be used to indicate that no register is specified.
const NilRegister Register = 0

// CodeSink receives encoded instructions.
//
// Implementations are append-only and owned by the caller. Encoders never
// read back what they wrote, and never synchronize access.
type CodeSink interface {
	// WriteUint32 appends u in little-endian byte order.
	WriteUint32(u uint32)
	// Len returns the current write position in bytes.
	Len() int
}
