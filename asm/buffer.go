package asm

import "encoding/binary"

// functionAlignment is the boundary Next pads the segment to.
const functionAlignment = 16

// CodeSegment accumulates machine code for one or more functions.
//
// Each function is written through a Buffer obtained from Next, which starts
// on a 16-byte boundary. The segment lives in ordinary Go memory: mapping it
// executable is up to the caller.
//
// The zero value is an empty segment, the same as NewCodeSegment(nil).
type CodeSegment struct {
	code []byte
}

// NewCodeSegment returns a CodeSegment reusing the storage of code. Its
// contents are overwritten.
func NewCodeSegment(code []byte) *CodeSegment {
	return &CodeSegment{code: code[:0]}
}

// Size returns the number of bytes written, padding included.
func (seg *CodeSegment) Size() int {
	return len(seg.code)
}

// Bytes returns the segment contents. The slice is invalidated by the next
// write through any of its buffers.
func (seg *CodeSegment) Bytes() []byte {
	n := len(seg.code)
	return seg.code[:n:n]
}

// Next pads the segment with zeros to the next 16-byte boundary and returns
// a Buffer writing from there.
//
// A Buffer is a small value that refers back to seg, so copies of it write
// to the same place.
func (seg *CodeSegment) Next() Buffer {
	for len(seg.code)%functionAlignment != 0 {
		seg.code = append(seg.code, 0)
	}
	return Buffer{seg: seg, off: len(seg.code)}
}

// Buffer is the tail of a CodeSegment, starting where Next left it.
//
// Buffer implements CodeSink.
type Buffer struct {
	seg *CodeSegment
	off int
}

var _ CodeSink = Buffer{}

// Cap returns how many bytes fit before the segment reallocates.
func (buf Buffer) Cap() int {
	return cap(buf.seg.code) - buf.off
}

// Len implements CodeSink.Len.
func (buf Buffer) Len() int {
	return len(buf.seg.code) - buf.off
}

// Bytes returns what was written through buf.
func (buf Buffer) Bytes() []byte {
	end := len(buf.seg.code)
	return buf.seg.code[buf.off:end:end]
}

// Reset drops everything written through buf.
func (buf Buffer) Reset() {
	buf.Truncate(0)
}

// Truncate keeps the first n bytes written through buf.
func (buf Buffer) Truncate(n int) {
	buf.seg.code = buf.seg.code[:buf.off+n]
}

// WriteUint32 implements CodeSink.WriteUint32.
func (buf Buffer) WriteUint32(u uint32) {
	buf.seg.code = binary.LittleEndian.AppendUint32(buf.seg.code, u)
}
