//go:build asimd_nochecks

package arm64

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/asimd/asm"
)

func TestChecksEnabled(t *testing.T) {
	require.False(t, ChecksEnabled())
}

// TestAssembler_noChecks ensures invalid operands are encoded without
// panicking when checks are compiled out.
func TestAssembler_noChecks(t *testing.T) {
	code := asm.NewCodeSegment(nil)
	buf := code.Next()
	a := NewAssembler(buf)

	require.NotPanics(t, func() {
		a.AddVVV(ASIMDSizeFullReg, ElementSizeByte, RegV0, RegR1, RegV2)
		a.AddpVVV(ASIMDSizeHalfReg, ElementSizeDoubleWord, RegV0, RegV1, RegV2)
		a.ExtVVV(ASIMDSizeHalfReg, RegV0, RegV1, RegV2, 8)
		a.TblVVVV(ASIMDSizeFullReg, RegV0, RegV1, RegV3, RegV4)
		a.St1MultipleV(ASIMDSizeFullReg, ElementSizeWord, RegV0, BaseAddress(RegRZR))
	})
	require.Equal(t, 20, buf.Len())
}
