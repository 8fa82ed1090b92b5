package arm64

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementSize(t *testing.T) {
	for _, tc := range []struct {
		eSize       ElementSize
		bits, bytes int
		str         string
	}{
		{eSize: ElementSizeByte, bits: 8, bytes: 1, str: "B"},
		{eSize: ElementSizeHalfWord, bits: 16, bytes: 2, str: "H"},
		{eSize: ElementSizeWord, bits: 32, bytes: 4, str: "S"},
		{eSize: ElementSizeDoubleWord, bits: 64, bytes: 8, str: "D"},
	} {
		t.Run(tc.str, func(t *testing.T) {
			require.Equal(t, tc.bits, tc.eSize.Bits())
			require.Equal(t, tc.bytes, tc.eSize.Bytes())
			require.Equal(t, tc.str, tc.eSize.String())

			fromBits, err := ElementSizeFromBits(tc.bits)
			require.NoError(t, err)
			require.Equal(t, tc.eSize, fromBits)

			fromStride, err := ElementSizeFromStride(tc.bytes)
			require.NoError(t, err)
			require.Equal(t, tc.eSize, fromStride)
		})
	}
	require.Equal(t, "ElementSize(7)", ElementSize(7).String())
}

func TestElementSize_invalid(t *testing.T) {
	for _, bits := range []int{0, 1, 4, 24, 128} {
		_, err := ElementSizeFromBits(bits)
		require.ErrorIs(t, err, ErrInvalidElementSize)
	}
	for _, stride := range []int{0, 3, 16} {
		_, err := ElementSizeFromStride(stride)
		require.ErrorIs(t, err, ErrInvalidElementSize)
	}
}

func TestElementSize_ExpandNarrow(t *testing.T) {
	e, err := ElementSizeByte.Expand()
	require.NoError(t, err)
	require.Equal(t, ElementSizeHalfWord, e)

	e, err = ElementSizeWord.Expand()
	require.NoError(t, err)
	require.Equal(t, ElementSizeDoubleWord, e)

	_, err = ElementSizeDoubleWord.Expand()
	require.ErrorIs(t, err, ErrInvalidElementSize)

	e, err = ElementSizeDoubleWord.Narrow()
	require.NoError(t, err)
	require.Equal(t, ElementSizeWord, e)

	_, err = ElementSizeByte.Narrow()
	require.ErrorIs(t, err, ErrInvalidElementSize)
}

func TestASIMDSize(t *testing.T) {
	require.Equal(t, 64, ASIMDSizeHalfReg.Bits())
	require.Equal(t, 8, ASIMDSizeHalfReg.Bytes())
	require.Equal(t, "HalfReg", ASIMDSizeHalfReg.String())
	require.Equal(t, 128, ASIMDSizeFullReg.Bits())
	require.Equal(t, 16, ASIMDSizeFullReg.Bytes())
	require.Equal(t, "FullReg", ASIMDSizeFullReg.String())

	for _, tc := range []struct {
		bits int
		exp  ASIMDSize
	}{
		{bits: 32, exp: ASIMDSizeHalfReg},
		{bits: 64, exp: ASIMDSizeHalfReg},
		{bits: 128, exp: ASIMDSizeFullReg},
	} {
		actual, err := ASIMDSizeFromBits(tc.bits)
		require.NoError(t, err)
		require.Equal(t, tc.exp, actual)
	}

	_, err := ASIMDSizeFromBits(256)
	require.ErrorIs(t, err, ErrInvalidASIMDSize)
}

func TestUsesMultipleLanes(t *testing.T) {
	for _, size := range []ASIMDSize{ASIMDSizeHalfReg, ASIMDSizeFullReg} {
		for _, eSize := range allElementSizes {
			exp := !(size == ASIMDSizeHalfReg && eSize == ElementSizeDoubleWord)
			require.Equal(t, exp, usesMultipleLanes(size, eSize), "%s %s", size, eSize)
		}
	}
}

func TestVectorArrangement(t *testing.T) {
	for _, tc := range []struct {
		name  string
		arr   VectorArrangement
		size  ASIMDSize
		eSize ElementSize
	}{
		{name: "8B", arr: VectorArrangement8B, size: ASIMDSizeHalfReg, eSize: ElementSizeByte},
		{name: "16B", arr: VectorArrangement16B, size: ASIMDSizeFullReg, eSize: ElementSizeByte},
		{name: "4H", arr: VectorArrangement4H, size: ASIMDSizeHalfReg, eSize: ElementSizeHalfWord},
		{name: "8H", arr: VectorArrangement8H, size: ASIMDSizeFullReg, eSize: ElementSizeHalfWord},
		{name: "2S", arr: VectorArrangement2S, size: ASIMDSizeHalfReg, eSize: ElementSizeWord},
		{name: "4S", arr: VectorArrangement4S, size: ASIMDSizeFullReg, eSize: ElementSizeWord},
		{name: "1D", arr: VectorArrangement1D, size: ASIMDSizeHalfReg, eSize: ElementSizeDoubleWord},
		{name: "2D", arr: VectorArrangement2D, size: ASIMDSizeFullReg, eSize: ElementSizeDoubleWord},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.name, tc.arr.String())
			require.Equal(t, tc.arr, Arrangement(tc.size, tc.eSize))

			parsed, err := ParseVectorArrangement(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.arr, parsed)

			// Lower case is what disassemblers print.
			parsed, err = ParseVectorArrangement(" " + strings.ToLower(tc.name))
			require.NoError(t, err)
			require.Equal(t, tc.arr, parsed)

			size, err := ASIMDSizeFromArrangement(tc.arr)
			require.NoError(t, err)
			require.Equal(t, tc.size, size)

			eSize, err := ElementSizeFromArrangement(tc.arr)
			require.NoError(t, err)
			require.Equal(t, tc.eSize, eSize)
		})
	}
}

func TestVectorArrangement_elements(t *testing.T) {
	arr, err := ParseVectorArrangement("s")
	require.NoError(t, err)
	require.Equal(t, VectorArrangementS, arr)

	eSize, err := ElementSizeFromArrangement(arr)
	require.NoError(t, err)
	require.Equal(t, ElementSizeWord, eSize)

	_, err = ASIMDSizeFromArrangement(arr)
	require.ErrorIs(t, err, ErrInvalidASIMDSize)

	_, err = ElementSizeFromArrangement(VectorArrangementNone)
	require.ErrorIs(t, err, ErrInvalidElementSize)

	_, err = ParseVectorArrangement("3S")
	require.EqualError(t, err, `invalid vector arrangement: "3S"`)

	_, err = ParseVectorArrangement("none")
	require.Error(t, err)

	require.Equal(t, "VectorArrangement(200)", VectorArrangement(200).String())
}
