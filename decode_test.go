package huffman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	root, err := BuildTree(letterWeights())
	require.NoError(t, err)

	for symbol, hc := range Extract(root) {
		actual, err := Decode(hc, root)
		require.NoError(t, err)
		require.Equal(t, symbol, actual)
	}
}

func TestDecode_Errors(t *testing.T) {
	root, err := BuildTree(letterWeights())
	require.NoError(t, err)

	type testRow struct {
		code     string
		target   error
		consumed int
	}

	testData := [...]testRow{
		{"", ErrShortCode, 0},
		{"1", ErrShortCode, 1},
		{"101", ErrShortCode, 3},
		{"110", ErrTrailingBits, 2},
		{"00011", ErrTrailingBits, 3},
	}
	for _, row := range testData {
		hc := MustParseCode(row.code)
		t.Run(hc.String(), func(t *testing.T) {
			_, err := Decode(hc, root)
			require.ErrorIs(t, err, row.target)
			require.ErrorIs(t, err, ErrDecode)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			require.Equal(t, row.consumed, decodeErr.Consumed)
			require.Equal(t, hc, decodeErr.Code)
		})
	}
}

func TestDecodePrefix(t *testing.T) {
	root, err := BuildTree(letterWeights())
	require.NoError(t, err)

	symbol, consumed, err := DecodePrefix(MustParseCode("1101010"), root)
	require.NoError(t, err)
	require.Equal(t, "F", symbol)
	require.Equal(t, 2, consumed)

	symbol, consumed, err = DecodePrefix(MustParseCode("1010"), root)
	require.NoError(t, err)
	require.Equal(t, "A", symbol)
	require.Equal(t, 4, consumed)

	_, consumed, err = DecodePrefix(MustParseCode("10"), root)
	require.ErrorIs(t, err, ErrShortCode)
	require.Equal(t, 2, consumed)
}

func TestDecode_SingleLeaf(t *testing.T) {
	root := NewLeaf(1, "x")

	symbol, err := Decode(Code{}, root)
	require.NoError(t, err)
	require.Equal(t, "x", symbol)

	_, err = Decode(MustParseCode("0"), root)
	require.ErrorIs(t, err, ErrTrailingBits)
}

func TestDecode_HandBuiltTree(t *testing.T) {
	root := NewInternal(
		NewLeaf(0.5, 'a'),
		NewInternal(NewLeaf(0.25, 'b'), NewLeaf(0.25, 'c')),
	)
	require.Equal(t, 1.0, root.Weight())
	require.Equal(t, 1.5, root.Cost())

	for str, expect := range map[string]rune{"0": 'a', "10": 'b', "11": 'c'} {
		actual, err := Decode(MustParseCode(str), root)
		require.NoError(t, err)
		require.Equal(t, expect, actual)
	}
}
