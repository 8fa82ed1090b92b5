package arm64

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/asimd/asm"
)

func TestRegisterName(t *testing.T) {
	for _, tc := range []struct {
		reg  asm.Register
		name string
		enc  uint32
		cat  RegisterCategory
	}{
		{reg: RegR0, name: "R0", enc: 0, cat: RegisterCategoryGeneral},
		{reg: RegR17, name: "R17", enc: 17, cat: RegisterCategoryGeneral},
		{reg: RegR30, name: "R30", enc: 30, cat: RegisterCategoryGeneral},
		{reg: RegRZR, name: "RZR", enc: 31, cat: RegisterCategoryGeneral},
		{reg: RegSP, name: "RSP", enc: 31, cat: RegisterCategoryGeneral},
		{reg: RegV0, name: "V0", enc: 0, cat: RegisterCategoryVector},
		{reg: RegV9, name: "V9", enc: 9, cat: RegisterCategoryVector},
		{reg: RegV31, name: "V31", enc: 31, cat: RegisterCategoryVector},
		{reg: asm.NilRegister, name: "nil", enc: 0, cat: RegisterCategoryInvalid},
		{reg: RegV31 + 1, name: "invalid", enc: 0, cat: RegisterCategoryInvalid},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.name, RegisterName(tc.reg))
			require.Equal(t, tc.enc, Encoding(tc.reg))
			require.Equal(t, tc.cat, Category(tc.reg))
		})
	}
}

func TestRegisterByName(t *testing.T) {
	for _, tc := range []struct {
		name string
		exp  asm.Register
	}{
		{name: "R0", exp: RegR0},
		{name: "x1", exp: RegR1},
		{name: "W30", exp: RegR30},
		{name: "xzr", exp: RegRZR},
		{name: "wzr", exp: RegRZR},
		{name: "RZR", exp: RegRZR},
		{name: "sp", exp: RegSP},
		{name: "RSP", exp: RegSP},
		{name: "v0", exp: RegV0},
		{name: " V31 ", exp: RegV31},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := RegisterByName(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.exp, actual)
		})
	}
}

func TestRegisterByName_roundTrip(t *testing.T) {
	for r := RegR0; r <= RegV31; r++ {
		actual, err := RegisterByName(RegisterName(r))
		require.NoError(t, err)
		require.Equal(t, r, actual)
	}
}

func TestRegisterByName_errors(t *testing.T) {
	for _, name := range []string{"", "x31", "v32", "q1", "v", "x-1", "r1a"} {
		_, err := RegisterByName(name)
		require.ErrorIs(t, err, ErrUnknownRegister, name)
	}
}

func TestRegisterCategory_String(t *testing.T) {
	require.Equal(t, "general-purpose", RegisterCategoryGeneral.String())
	require.Equal(t, "vector", RegisterCategoryVector.String())
	require.Equal(t, "invalid", RegisterCategoryInvalid.String())
}
