package louis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWide(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []uint32
	}{
		{"ascii ucs2", "abc", 2, []uint32{'a', 'b', 'c'}},
		{"ascii ucs4", "abc", 4, []uint32{'a', 'b', 'c'}},
		{"umlauts", "äöü", 2, []uint32{0xE4, 0xF6, 0xFC}},
		{"braille cell", "⠁", 4, []uint32{0x2801}},
		{"astral ucs2 pair", "𝄞", 2, []uint32{0xD834, 0xDD1E}},
		{"astral ucs4 single", "𝄞", 4, []uint32{0x1D11E}},
		{"replacement char is valid", "�", 2, []uint32{0xFFFD}},
		{"empty", "", 2, []uint32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeWide(tt.in, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeWideInvalidUTF8(t *testing.T) {
	_, err := EncodeWide("ab\xffcd", 4)
	require.ErrorIs(t, err, ErrEncoding)

	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 2, encErr.Offset)
}

func TestEncodeWideBadWidth(t *testing.T) {
	_, err := EncodeWide("a", 3)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestDecodeWide(t *testing.T) {
	got, err := DecodeWide([]uint32{0xD834, 0xDD1E, 'x'}, 2)
	require.NoError(t, err)
	assert.Equal(t, "𝄞x", got)

	got, err = DecodeWide([]uint32{0x2801, 0x2803}, 4)
	require.NoError(t, err)
	assert.Equal(t, "⠁⠃", got)

	got, err = DecodeWide(nil, 2)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDecodeWideRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		units  []uint32
		width  int
		offset int
	}{
		{"lone high at end", []uint32{'a', 0xD834}, 2, 1},
		{"high then ascii", []uint32{0xD834, 'a'}, 2, 0},
		{"lone low", []uint32{0xDD1E}, 2, 0},
		{"surrogate in ucs4", []uint32{'a', 'b', 0xD834}, 4, 2},
		{"beyond unicode", []uint32{0x110000}, 4, 0},
		{"too wide for ucs2", []uint32{0x1D11E}, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWide(tt.units, tt.width)
			var encErr *EncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, tt.offset, encErr.Offset)
		})
	}
}

func TestWideRoundTrip(t *testing.T) {
	for _, width := range []int{2, 4} {
		for _, s := range []string{"Dies ist ein kurzer Satz.", "syzygy", "⠠⠞⠥⠗⠝", "emoji 😀 ok"} {
			units, err := EncodeWide(s, width)
			require.NoError(t, err)
			back, err := DecodeWide(units, width)
			require.NoError(t, err)
			assert.Equal(t, s, back)
		}
	}
}

func TestOutputCapacity(t *testing.T) {
	assert.Equal(t, 1, OutputCapacity(0, 2))
	assert.Equal(t, 1, OutputCapacity(-3, 4))
	assert.Equal(t, 8, OutputCapacity(1, 2))
	assert.Equal(t, 12, OutputCapacity(1, 4))
	assert.Equal(t, 25*12, OutputCapacity(25, 4))
}
