package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestDecoder() Decoder[int] {
	var d Decoder[int]
	err := d.Init(map[int]int{0: 4, 1: 4, 2: 3, 3: 3, 4: 3, 5: 1})
	if err != nil {
		panic(err)
	}
	return d
}

func TestDecoder_Lengths(t *testing.T) {
	d := makeTestDecoder()
	require.Equal(t, map[int]int{0: 4, 1: 4, 2: 3, 3: 3, 4: 3, 5: 1}, d.Lengths())
	require.Equal(t, 1, d.MinSize())
	require.Equal(t, 4, d.MaxSize())
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		code string
		min  int
		max  int
		sym  int
		ok   bool
	}

	testData := [...]testRow{
		{code: "", min: 1, max: 4},
		{code: "0", min: 1, max: 1, sym: 5, ok: true},
		{code: "1", min: 3, max: 4},
		{code: "01", min: 0, max: 0},
		{code: "10", min: 3, max: 3},
		{code: "11", min: 3, max: 4},
		{code: "100", min: 3, max: 3, sym: 2, ok: true},
		{code: "101", min: 3, max: 3, sym: 3, ok: true},
		{code: "110", min: 3, max: 3, sym: 4, ok: true},
		{code: "111", min: 4, max: 4},
		{code: "1110", min: 4, max: 4, sym: 0, ok: true},
		{code: "1111", min: 4, max: 4, sym: 1, ok: true},
		{code: "11111", min: 0, max: 0},
	}
	for _, row := range testData {
		hc := MustParseCode(row.code)
		t.Run(hc.String(), func(t *testing.T) {
			sym, min, max, ok := d.Decode(hc)
			if ok != row.ok {
				t.Errorf("expected ok %v, got %v", row.ok, ok)
			}
			if ok && sym != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, sym)
			}
			if min != row.min {
				t.Errorf("expected minimum size %d, got %d", row.min, min)
			}
			if max != row.max {
				t.Errorf("expected maximum size %d, got %d", row.max, max)
			}
		})
	}
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tDecode(\"\") = {-, 1, 4}\n",
		"\tDecode(\"0\") = {5, 1, 1}\n",
		"\tDecode(\"1\") = {-, 3, 4}\n",
		"\tDecode(\"10\") = {-, 3, 3}\n",
		"\tDecode(\"11\") = {-, 3, 4}\n",
		"\tDecode(\"100\") = {2, 3, 3}\n",
		"\tDecode(\"101\") = {3, 3, 3}\n",
		"\tDecode(\"110\") = {4, 3, 3}\n",
		"\tDecode(\"111\") = {-, 4, 4}\n",
		"\tDecode(\"1110\") = {0, 4, 4}\n",
		"\tDecode(\"1111\") = {1, 4, 4}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_SingleSymbol(t *testing.T) {
	var d Decoder[string]
	require.NoError(t, d.Init(map[string]int{"x": 0}))

	sym, min, max, ok := d.Decode(MustParseCode("0"))
	require.True(t, ok)
	require.Equal(t, "x", sym)
	require.Equal(t, 1, min)
	require.Equal(t, 1, max)

	_, min, max, ok = d.Decode(MustParseCode("1"))
	require.False(t, ok)
	require.Equal(t, 0, min)
	require.Equal(t, 0, max)
}

func TestDecoder_Empty(t *testing.T) {
	var d Decoder[string]
	require.NoError(t, d.Init(nil))

	_, _, _, ok := d.Decode(Code{})
	require.False(t, ok)
}

func TestDecoder_Kraft(t *testing.T) {
	var d Decoder[string]
	err := d.Init(map[string]int{"a": 1, "b": 1, "c": 1})
	require.ErrorIs(t, err, ErrKraft)
}
