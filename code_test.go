package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeCode(t *testing.T) {
	type testRow struct {
		size  int
		value uint64
		str   string
	}

	testData := [...]testRow{
		{0, 0, `""`},
		{1, 0, `"0"`},
		{1, 1, `"1"`},
		{3, 2, `"010"`},
		{4, 14, `"1110"`},
		{2, 7, `"11"`},
		{66, 1, `"` + "000000000000000000000000000000000000000000000000000000000000000001" + `"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.value)
		t.Run(row.str, func(t *testing.T) {
			if hc.Len() != row.size {
				t.Errorf("expected size %d, got %d", row.size, hc.Len())
			}
			if str := hc.String(); str != row.str {
				t.Errorf("expected %s, got %s", row.str, str)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	hc, err := ParseCode("0110")
	require.NoError(t, err)
	require.True(t, hc.Equal(Code{false, true, true, false}), "wrong code: %s", hc)

	value, ok := hc.Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(6), value)

	_, err = ParseCode("012")
	require.Error(t, err)

	_, ok = MakeCode(65, 0).Uint64()
	require.False(t, ok)
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MustParseCode("1011")
	for _, prefix := range []string{"", "1", "10", "101", "1011"} {
		require.True(t, hc.HasPrefix(MustParseCode(prefix)), "prefix %q", prefix)
	}
	for _, prefix := range []string{"0", "11", "1010", "10110"} {
		require.False(t, hc.HasPrefix(MustParseCode(prefix)), "prefix %q", prefix)
	}
}

func TestCode_Append(t *testing.T) {
	base := MustParseCode("10")
	require.Equal(t, `"100"`, base.Append(false).String())
	require.Equal(t, `"101"`, base.Append(true).String())
	require.Equal(t, `"10"`, base.String())
}
