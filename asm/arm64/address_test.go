package arm64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressOperand_String(t *testing.T) {
	require.Equal(t, "[R0]", BaseAddress(RegR0).String())
	require.Equal(t, "[RSP], R3", PostIndexRegister(RegSP, RegR3).String())
	require.Equal(t, "[R2], #64", PostIndexImmediate(RegR2, 64).String())
}

func TestParseAddressOperand(t *testing.T) {
	for _, tc := range []struct {
		in  string
		exp AddressOperand
	}{
		{in: "[x0]", exp: BaseAddress(RegR0)},
		{in: " [ sp ] ", exp: BaseAddress(RegSP)},
		{in: "[x2], x3", exp: PostIndexRegister(RegR2, RegR3)},
		{in: "[R2],R30", exp: PostIndexRegister(RegR2, RegR30)},
		{in: "[x2], #16", exp: PostIndexImmediate(RegR2, 16)},
		{in: "[x2], #0x40", exp: PostIndexImmediate(RegR2, 64)},
	} {
		t.Run(tc.in, func(t *testing.T) {
			actual, err := ParseAddressOperand(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.exp, actual)
		})
	}
}

func TestParseAddressOperand_roundTrip(t *testing.T) {
	for _, addr := range []AddressOperand{
		BaseAddress(RegR7),
		PostIndexRegister(RegSP, RegR1),
		PostIndexImmediate(RegR29, 48),
	} {
		actual, err := ParseAddressOperand(addr.String())
		require.NoError(t, err)
		require.Equal(t, addr, actual)
	}
}

func TestParseAddressOperand_errors(t *testing.T) {
	for _, in := range []string{"", "x0", "[x0", "[q0]", "[x0] x1", "[x0], #abc", "[x0], v1x"} {
		_, err := ParseAddressOperand(in)
		require.ErrorIs(t, err, ErrInvalidAddress, in)
	}
}

func TestAddressOperand_encoding(t *testing.T) {
	require.Equal(t, uint32(2<<5), BaseAddress(RegR2).encoding())
	require.Equal(t, uint32(1<<23|3<<16|31<<5), PostIndexRegister(RegSP, RegR3).encoding())
	require.Equal(t, uint32(1<<23|31<<16|2<<5), PostIndexImmediate(RegR2, 16).encoding())
}

func TestAddressingMode_String(t *testing.T) {
	require.Equal(t, "base", AddressingModeBase.String())
	require.Equal(t, "post-index register", AddressingModePostIndexRegister.String())
	require.Equal(t, "post-index immediate", AddressingModePostIndexImmediate.String())
	require.Equal(t, "AddressingMode(9)", AddressingMode(9).String())
}
