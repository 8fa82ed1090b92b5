package arm64

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tetratelabs/asimd/internal/testing/hammer"
)

// TestExpandImmediate_table checks the table against AdvSIMDExpandImm: every
// (cmode, op, imm8) lands on its expansion, and nothing else is in the table.
func TestExpandImmediate_table(t *testing.T) {
	expected := map[uint64]int{}
	for slot := byte(0); slot < 32; slot++ {
		cmode, op := slot>>1, slot&1
		for i := 0; i < 256; i++ {
			imm8 := byte(i)
			value := ExpandImmediate(cmode, op, imm8)
			expected[value]++

			found := false
			for _, s := range ImmediateSlots(value) {
				require.Equal(t, value, ExpandImmediate(s.Cmode, s.Op, s.Imm8))
				if s.Index() == slot {
					require.Equal(t, imm8, s.Imm8)
					found = true
				}
			}
			require.True(t, found, "%#x is missing slot %05b", value, slot)
		}
	}
	require.Equal(t, len(expected), ImmediateTableSize())
	require.Equal(t, 3046, ImmediateTableSize())
}

func TestExpandImmediate(t *testing.T) {
	for _, tc := range []struct {
		name           string
		cmode, op, imm uint8
		exp            uint64
	}{
		{name: "32-bit lsl 0", cmode: 0b0000, imm: 0xab, exp: 0x000000ab000000ab},
		{name: "32-bit lsl 8", cmode: 0b0011, imm: 0xab, exp: 0x0000ab000000ab00},
		{name: "32-bit lsl 16", cmode: 0b0100, op: 1, imm: 0xab, exp: 0x00ab000000ab0000},
		{name: "32-bit lsl 24", cmode: 0b0110, imm: 0xab, exp: 0xab000000ab000000},
		{name: "16-bit lsl 0", cmode: 0b1000, imm: 0xab, exp: 0x00ab00ab00ab00ab},
		{name: "16-bit lsl 8", cmode: 0b1010, imm: 0xab, exp: 0xab00ab00ab00ab00},
		{name: "msl 8", cmode: 0b1100, imm: 0xab, exp: 0x0000abff0000abff},
		{name: "msl 16", cmode: 0b1101, imm: 0xab, exp: 0x00abffff00abffff},
		{name: "bytes", cmode: 0b1110, imm: 0xab, exp: 0xabababababababab},
		{name: "byte mask", cmode: 0b1110, op: 1, imm: 0b10100101, exp: 0xff00ff0000ff00ff},
		{name: "single 1.0", cmode: 0b1111, imm: 0x70, exp: 0x3f8000003f800000},
		{name: "single -2.0", cmode: 0b1111, imm: 0x80, exp: 0xc0000000c0000000},
		{name: "single 0.125", cmode: 0b1111, imm: 0x40, exp: 0x3e0000003e000000},
		{name: "double 1.0", cmode: 0b1111, op: 1, imm: 0x70, exp: 0x3ff0000000000000},
		{name: "double -31.0", cmode: 0b1111, op: 1, imm: 0xbf, exp: 0xc03f000000000000},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.exp, ExpandImmediate(tc.cmode, tc.op, tc.imm))
		})
	}
}

func TestImmediateOpsFor(t *testing.T) {
	allIntegers := []ImmediateOp{ImmediateOpMOVI, ImmediateOpMVNI, ImmediateOpORR, ImmediateOpBIC}
	for _, tc := range []struct {
		name string
		imm  uint64
		exp  []ImmediateOp
	}{
		{name: "zero", imm: 0, exp: allIntegers},
		{name: "low byte of a doubleword", imm: 0xff, exp: []ImmediateOp{ImmediateOpMOVI}},
		{name: "all ones", imm: 0xffffffffffffffff, exp: []ImmediateOp{ImmediateOpMOVI}},
		{name: "32-bit lanes", imm: 0x0000ff000000ff00, exp: allIntegers},
		{name: "16-bit lanes", imm: 0x00ff00ff00ff00ff, exp: allIntegers},
		{name: "ones shifted in", imm: 0x0000ffff0000ffff, exp: []ImmediateOp{ImmediateOpMOVI, ImmediateOpMVNI}},
		{name: "single 1.0", imm: 0x3f8000003f800000, exp: []ImmediateOp{ImmediateOpMOVI, ImmediateOpFMOVSP}},
		{name: "double 1.0", imm: 0x3ff0000000000000, exp: []ImmediateOp{ImmediateOpFMOVDP}},
		{name: "not encodable", imm: 0x0123456789abcdef},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.exp, ImmediateOpsFor(tc.imm))
			for op := ImmediateOp(0); op < immediateOpEnd; op++ {
				expected := false
				for _, e := range tc.exp {
					expected = expected || e == op
				}
				require.Equal(t, expected, IsImmediateEncodable(tc.imm, op), op.String())
			}
		})
	}
}

func TestImmediateSlots(t *testing.T) {
	require.Nil(t, ImmediateSlots(0x0123456789abcdef))
	require.Equal(t, []ImmediateSlot{
		{Cmode: 0b1110, Op: 0, Imm8: 0xff},
		{Cmode: 0b1110, Op: 1, Imm8: 0xff},
	}, ImmediateSlots(0xffffffffffffffff))
	require.Equal(t, []ImmediateSlot{
		{Cmode: 0b1100, Op: 0, Imm8: 0xff},
		{Cmode: 0b1100, Op: 1, Imm8: 0xff},
		{Cmode: 0b1101, Op: 0, Imm8: 0},
		{Cmode: 0b1101, Op: 1, Imm8: 0},
		{Cmode: 0b1110, Op: 1, Imm8: 0b00110011},
	}, ImmediateSlots(0x0000ffff0000ffff))
}

func TestImmediateEncoding(t *testing.T) {
	for _, tc := range []struct {
		name string
		imm  uint64
		op   ImmediateOp
		exp  uint32
	}{
		// The first slot of the family wins.
		{name: "movi lsl 0", imm: 0x000000ff000000ff, op: ImmediateOpMOVI, exp: 0x000703e0},
		{name: "movi ones", imm: 0xffffffffffffffff, op: ImmediateOpMOVI, exp: 0x0007e3e0},
		{name: "mvni lsl 8", imm: 0x0000ab000000ab00, op: ImmediateOpMVNI, exp: 0x20052160},
		{name: "orr 16-bit", imm: 0x0012001200120012, op: ImmediateOpORR, exp: 0x00009240},
		{name: "bic lsl 24", imm: 0x80000000_80000000, op: ImmediateOpBIC, exp: 0x20047000},
		{name: "movi msl 16", imm: 0x00abffff00abffff, op: ImmediateOpMOVI, exp: 0x0005d160},
		{name: "fmov single", imm: 0x3f8000003f800000, op: ImmediateOpFMOVSP, exp: 0x0003f200},
		{name: "fmov double", imm: 0x3ff0000000000000, op: ImmediateOpFMOVDP, exp: 0x2003f200},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.exp, ImmediateEncoding(tc.imm, tc.op))
		})
	}

	require.PanicsWithValue(t, "BUG: 0x123456789abcdef cannot be encoded by MOVI", func() {
		ImmediateEncoding(0x0123456789abcdef, ImmediateOpMOVI)
	})
	require.PanicsWithValue(t, "BUG: 0xffffffffffffffff cannot be encoded by ORR", func() {
		ImmediateEncoding(0xffffffffffffffff, ImmediateOpORR)
	})
}

func TestImmediateSlot(t *testing.T) {
	s := ImmediateSlot{Cmode: 0b1110, Op: 1, Imm8: 0xa5}
	require.Equal(t, byte(0b11101), s.Index())
	require.Equal(t, uint32(0x2005e0a0), s.Encoding())
	require.Equal(t, "cmode=1110 op=1 imm8=0xa5", s.String())
}

func TestImmediateOp_String(t *testing.T) {
	for _, op := range ImmediateOps() {
		parsed, err := ImmediateOpFromString(op.String())
		require.NoError(t, err)
		require.Equal(t, op, parsed)
	}
	require.Equal(t, "ImmediateOp(9)", ImmediateOp(9).String())

	op, err := ImmediateOpFromString("fmovsp")
	require.NoError(t, err)
	require.Equal(t, ImmediateOpFMOVSP, op)

	_, err = ImmediateOpFromString("fmov")
	require.EqualError(t, err, `unknown immediate op: "fmov"`)
}

func TestWalkImmediateTable(t *testing.T) {
	var count int
	prev := uint64(0)
	WalkImmediateTable(func(value uint64, slots []ImmediateSlot) bool {
		if count > 0 {
			require.Greater(t, value, prev)
		}
		require.NotEmpty(t, slots)
		prev = value
		count++
		return true
	})
	require.Equal(t, ImmediateTableSize(), count)

	count = 0
	WalkImmediateTable(func(value uint64, _ []ImmediateSlot) bool {
		count++
		return count < 3
	})
	require.Equal(t, 3, count)
}

func TestImmediateEntry_add(t *testing.T) {
	e := immediateEntry{value: 1}
	e.add(1, 0, bitAny, bitZero)
	require.Equal(t, uint32(0b0101), e.valid)
	require.PanicsWithValue(t, "BUG: immediate 0x1 produced twice by cmode:op 00100", func() {
		e.add(2, 1, bitZero, bitZero)
		e.add(3, 1, bitZero, bitZero)
	})
}

// TestImmediateTable_concurrentFirstUse builds the table from many goroutines
// at once.
func TestImmediateTable_concurrentFirstUse(t *testing.T) {
	defer goleak.VerifyNone(t)
	immediateTable.once = sync.Once{}
	immediateTable.entries = nil

	P, N := 8, 100
	if testing.Short() {
		P, N = 4, 50
	}
	hammer.NewHammer(t, P, N).Run(func(p, n int) {
		require.True(t, IsImmediateEncodable(0xffffffffffffffff, ImmediateOpMOVI))
		require.Equal(t, uint32(0x0003f200), ImmediateEncoding(0x3f8000003f800000, ImmediateOpFMOVSP))
	}, nil)
	if t.Failed() {
		return
	}
	require.Equal(t, 3046, ImmediateTableSize())
}
