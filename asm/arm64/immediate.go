package arm64

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ImmediateOp is an instruction family taking a modified immediate, i.e. a
// constant written as op:abc:cmode:defgh in bits 29:18-16:15-12:9-5 and
// expanded by the hardware as described by AdvSIMDExpandImm.
type ImmediateOp byte

const (
	ImmediateOpMOVI ImmediateOp = iota
	ImmediateOpMVNI
	ImmediateOpORR
	ImmediateOpBIC
	// ImmediateOpFMOVSP is FMOV (vector, immediate) on single-precision lanes.
	ImmediateOpFMOVSP
	// ImmediateOpFMOVDP is FMOV (vector, immediate) on double-precision lanes.
	ImmediateOpFMOVDP

	immediateOpEnd
)

var immediateOpNames = [immediateOpEnd]string{
	ImmediateOpMOVI:   "MOVI",
	ImmediateOpMVNI:   "MVNI",
	ImmediateOpORR:    "ORR",
	ImmediateOpBIC:    "BIC",
	ImmediateOpFMOVSP: "FMOVSP",
	ImmediateOpFMOVDP: "FMOVDP",
}

// immediateOpSlots lists, per family, the cmode:op slots the family may use,
// in the order they are tried. Transcribed from the "Advanced SIMD modified
// immediate" encoding table.
var immediateOpSlots = [immediateOpEnd][]byte{
	ImmediateOpMOVI: {
		0b00000, 0b00100, 0b01000, 0b01100, // 0xx00
		0b10000, 0b10100, // 10x00
		0b11000, 0b11010, // 110x0
		0b11100, 0b11101, // 1110x
		0b11110, // 11110
	},
	ImmediateOpMVNI: {
		0b00001, 0b00101, 0b01001, 0b01101, // 0xx01
		0b10001, 0b10101, // 10x01
		0b11001, 0b11011, // 110x1
	},
	ImmediateOpORR: {
		0b00010, 0b00110, 0b01010, 0b01110, // 0xx10
		0b10010, 0b10110, // 10x10
	},
	ImmediateOpBIC: {
		0b00011, 0b00111, 0b01011, 0b01111, // 0xx11
		0b10011, 0b10111, // 10x11
	},
	ImmediateOpFMOVSP: {0b11110},
	ImmediateOpFMOVDP: {0b11111},
}

// String implements fmt.Stringer.
func (op ImmediateOp) String() string {
	if op < immediateOpEnd {
		return immediateOpNames[op]
	}
	return fmt.Sprintf("ImmediateOp(%d)", byte(op))
}

// ImmediateOpFromString parses the names returned by ImmediateOp.String, in
// any case.
func ImmediateOpFromString(s string) (ImmediateOp, error) {
	for op, name := range immediateOpNames {
		if strings.EqualFold(name, s) {
			return ImmediateOp(op), nil
		}
	}
	return 0, fmt.Errorf("unknown immediate op: %q", s)
}

// ImmediateOps returns every ImmediateOp.
func ImmediateOps() []ImmediateOp {
	ret := make([]ImmediateOp, immediateOpEnd)
	for i := range ret {
		ret[i] = ImmediateOp(i)
	}
	return ret
}

const (
	immediateOpOffset    = 29
	immediateCmodeOffset = 12
	immediateABCOffset   = 16
	immediateDEFGHOffset = 5
)

// ImmediateSlot is one way of producing a value: imm8 expanded under cmode
// and op.
type ImmediateSlot struct {
	Cmode, Op, Imm8 byte
}

// Index returns the slot position cmode:op in [0, 32).
func (s ImmediateSlot) Index() byte {
	return (s.Cmode&0b1111)<<1 | s.Op&1
}

// Encoding returns the instruction bits for the slot: op, cmode, and imm8
// split into abc and defgh.
func (s ImmediateSlot) Encoding() uint32 {
	return uint32(s.Imm8>>5&0b111)<<immediateABCOffset |
		uint32(s.Imm8&0b11111)<<immediateDEFGHOffset |
		uint32(s.Op&1)<<immediateOpOffset |
		uint32(s.Cmode&0b1111)<<immediateCmodeOffset
}

// String implements fmt.Stringer.
func (s ImmediateSlot) String() string {
	return fmt.Sprintf("cmode=%04b op=%d imm8=%#02x", s.Cmode, s.Op, s.Imm8)
}

// bitValues is the set of values a cmode<0> or op bit may take for an
// expansion. The architecture leaves some of them unconstrained.
type bitValues byte

const (
	bitZero bitValues = 0b01
	bitOne  bitValues = 0b10
	bitAny            = bitZero | bitOne
)

// immediateEntry holds every slot producing value.
type immediateEntry struct {
	value uint64
	// valid has bit i set when slot i produces value.
	valid uint32
	imm8  [32]byte
}

func (e *immediateEntry) add(imm8, cmodeHigh byte, cmode0, op bitValues) {
	for b0 := byte(0); b0 < 2; b0++ {
		if cmode0&(1<<b0) == 0 {
			continue
		}
		for o := byte(0); o < 2; o++ {
			if op&(1<<o) == 0 {
				continue
			}
			slot := cmodeHigh<<2 | b0<<1 | o
			if e.valid&(1<<slot) != 0 {
				panic(fmt.Sprintf("BUG: immediate %#x produced twice by cmode:op %05b", e.value, slot))
			}
			e.valid |= 1 << slot
			e.imm8[slot] = imm8
		}
	}
}

func (e *immediateEntry) slots() []ImmediateSlot {
	var ret []ImmediateSlot
	for slot := byte(0); slot < 32; slot++ {
		if e.valid&(1<<slot) != 0 {
			ret = append(ret, ImmediateSlot{Cmode: slot >> 1, Op: slot & 1, Imm8: e.imm8[slot]})
		}
	}
	return ret
}

var immediateTable struct {
	once    sync.Once
	entries []immediateEntry
}

// immediateEntries returns the table sorted by value, building it on first use.
func immediateEntries() []immediateEntry {
	immediateTable.once.Do(func() {
		immediateTable.entries = buildImmediateTable()
	})
	return immediateTable.entries
}

// buildImmediateTable evaluates every expansion for every imm8 and groups the
// results by value.
func buildImmediateTable() []immediateEntry {
	byValue := make(map[uint64]*immediateEntry, 2048)
	register := func(value uint64, imm8, cmodeHigh byte, cmode0, op bitValues) {
		e, ok := byValue[value]
		if !ok {
			e = &immediateEntry{value: value}
			byValue[value] = e
		}
		e.add(imm8, cmodeHigh, cmode0, op)
	}

	for i := 0; i < 256; i++ {
		imm8 := byte(i)
		v := uint64(imm8)

		// 32-bit lanes, shifted by 0, 8, 16 or 24.
		register(v<<32|v, imm8, 0, bitAny, bitAny)
		register(v<<40|v<<8, imm8, 1, bitAny, bitAny)
		register(v<<48|v<<16, imm8, 2, bitAny, bitAny)
		register(v<<56|v<<24, imm8, 3, bitAny, bitAny)

		// 16-bit lanes, shifted by 0 or 8.
		register(v<<48|v<<32|v<<16|v, imm8, 4, bitAny, bitAny)
		register(v<<56|v<<40|v<<24|v<<8, imm8, 5, bitAny, bitAny)

		// 32-bit lanes, shifting ones in.
		register(v<<40|0xff<<32|v<<8|0xff, imm8, 6, bitZero, bitAny)
		register(v<<48|0xffff<<32|v<<16|0xffff, imm8, 6, bitOne, bitAny)

		// Bytes.
		register(v<<56|v<<48|v<<40|v<<32|v<<24|v<<16|v<<8|v, imm8, 7, bitZero, bitZero)
		var mask uint64
		for bit := 0; bit < 8; bit++ {
			mask |= replicateBit(v>>bit&1, 8) << (bit * 8)
		}
		register(mask, imm8, 7, bitZero, bitOne)

		// Floating point.
		b7, b6 := v>>7, v>>6&1
		imm32 := b7<<31 | (b6^1)<<30 | replicateBit(b6, 5)<<25 | (v&0x3f)<<19
		register(imm32<<32|imm32, imm8, 7, bitOne, bitZero)
		register(b7<<63|(b6^1)<<62|replicateBit(b6, 8)<<54|(v&0x3f)<<48, imm8, 7, bitOne, bitOne)
	}

	entries := make([]immediateEntry, 0, len(byValue))
	for _, e := range byValue {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].value < entries[j].value
	})
	return entries
}

// replicateBit returns n copies of the single bit b.
func replicateBit(b uint64, n int) uint64 {
	if b == 0 {
		return 0
	}
	return 1<<n - 1
}

func findImmediate(imm uint64) *immediateEntry {
	entries := immediateEntries()
	i := sort.Search(len(entries), func(i int) bool {
		return entries[i].value >= imm
	})
	if i < len(entries) && entries[i].value == imm {
		return &entries[i]
	}
	return nil
}

// IsImmediateEncodable returns true if op can materialize imm. For 128-bit
// destinations the 64-bit value is written to both halves.
func IsImmediateEncodable(imm uint64, op ImmediateOp) bool {
	e := findImmediate(imm)
	if e == nil {
		return false
	}
	for _, slot := range immediateOpSlots[op] {
		if e.valid&(1<<slot) != 0 {
			return true
		}
	}
	return false
}

// ImmediateEncoding returns the op, cmode and imm8 bits encoding imm for op.
//
// The caller must have checked IsImmediateEncodable; this panics otherwise.
func ImmediateEncoding(imm uint64, op ImmediateOp) uint32 {
	if e := findImmediate(imm); e != nil {
		for _, slot := range immediateOpSlots[op] {
			if e.valid&(1<<slot) != 0 {
				return ImmediateSlot{Cmode: slot >> 1, Op: slot & 1, Imm8: e.imm8[slot]}.Encoding()
			}
		}
	}
	panic(fmt.Sprintf("BUG: %#x cannot be encoded by %s", imm, op))
}

// ImmediateSlots returns every slot producing imm, ordered by slot index, or
// nil when imm has no modified immediate form.
func ImmediateSlots(imm uint64) []ImmediateSlot {
	if e := findImmediate(imm); e != nil {
		return e.slots()
	}
	return nil
}

// ImmediateTableSize returns the number of distinct values in the table.
func ImmediateTableSize() int {
	return len(immediateEntries())
}

// WalkImmediateTable calls fn for each value in ascending order until fn
// returns false.
func WalkImmediateTable(fn func(value uint64, slots []ImmediateSlot) bool) {
	entries := immediateEntries()
	for i := range entries {
		if !fn(entries[i].value, entries[i].slots()) {
			return
		}
	}
}

// ImmediateOpsFor returns the families able to materialize imm.
func ImmediateOpsFor(imm uint64) []ImmediateOp {
	var ret []ImmediateOp
	for op := ImmediateOp(0); op < immediateOpEnd; op++ {
		if IsImmediateEncodable(imm, op) {
			ret = append(ret, op)
		}
	}
	return ret
}

// ExpandImmediate is AdvSIMDExpandImm: the 64-bit value the hardware derives
// from imm8 under cmode and op.
func ExpandImmediate(cmode, op, imm8 byte) uint64 {
	v := uint64(imm8)
	switch cmode >> 1 & 0b111 {
	case 0b000:
		return replicate(v, 32)
	case 0b001:
		return replicate(v<<8, 32)
	case 0b010:
		return replicate(v<<16, 32)
	case 0b011:
		return replicate(v<<24, 32)
	case 0b100:
		return replicate(v, 16)
	case 0b101:
		return replicate(v<<8, 16)
	case 0b110:
		if cmode&1 == 0 {
			return replicate(v<<8|0xff, 32)
		}
		return replicate(v<<16|0xffff, 32)
	}

	switch {
	case cmode&1 == 0 && op&1 == 0:
		return replicate(v, 8)
	case cmode&1 == 0:
		var ret uint64
		for i := 0; i < 8; i++ {
			if imm8&(1<<i) != 0 {
				ret |= 0xff << (8 * i)
			}
		}
		return ret
	case op&1 == 0:
		// imm8<7>:NOT(imm8<6>):Replicate(imm8<6>,5):imm8<5:0>:Zeros(19)
		exp := uint64(0b100000)
		if imm8&0x40 != 0 {
			exp = 0b011111
		}
		imm32 := uint64(imm8>>7)<<31 | exp<<25 | uint64(imm8&0x3f)<<19
		return replicate(imm32, 32)
	default:
		// imm8<7>:NOT(imm8<6>):Replicate(imm8<6>,8):imm8<5:0>:Zeros(48)
		exp := uint64(0b100000000)
		if imm8&0x40 != 0 {
			exp = 0b011111111
		}
		return uint64(imm8>>7)<<63 | exp<<54 | uint64(imm8&0x3f)<<48
	}
}

// replicate repeats the low width bits of v across 64 bits.
func replicate(v uint64, width int) uint64 {
	v &= 1<<width - 1
	var ret uint64
	for i := 0; i < 64; i += width {
		ret |= v << i
	}
	return ret
}
