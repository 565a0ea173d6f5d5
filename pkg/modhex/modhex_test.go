package modhex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"ascending digits", "ubnu01234567", "ubnucbdefghi"},
		{"high digits", "ubnu89890123", "ubnujkjkcbde"},
		{"all zeros", "ubnu00000000", "ubnucccccccc"},
		{"all nines", "ubnu99999999", "ubnukkkkkkkk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_EachDigit(t *testing.T) {
	want := map[byte]byte{
		'0': 'c', '1': 'b', '2': 'd', '3': 'e', '4': 'f',
		'5': 'g', '6': 'h', '7': 'i', '8': 'j', '9': 'k',
	}

	seen := make(map[byte]bool)
	for digit, symbol := range want {
		raw := Prefix + strings.Repeat(string(digit), DigitsLength)
		got, err := Encode(raw)
		require.NoError(t, err)

		require.Len(t, got, TokenLength)
		assert.True(t, strings.HasPrefix(got, Prefix), "prefix must be preserved")
		for i := len(Prefix); i < TokenLength; i++ {
			assert.Equal(t, symbol, got[i], "digit %c", digit)
		}
		assert.False(t, seen[symbol], "symbol %c produced twice", symbol)
		seen[symbol] = true
	}
	assert.Len(t, seen, 10)
}

func TestEncode_PositionalMapping(t *testing.T) {
	// Sampled digit strings: every output position must be the image of
	// the input digit at the same position.
	for n := 0; n < 100000000; n += 7654321 {
		digits := fmt.Sprintf("%08d", n)
		got, err := Encode(Prefix + digits)
		require.NoError(t, err)
		require.Len(t, got, TokenLength)
		for i := 0; i < DigitsLength; i++ {
			assert.Equal(t, alphabet[digits[i]-'0'], got[len(Prefix)+i])
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode("ubnu31415926")
	require.NoError(t, err)
	b, err := Encode("ubnu31415926")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_InvalidFormat(t *testing.T) {
	tests := []string{
		"",
		"ubnu1234",
		"ubnu0123456",
		"ubnu012345678",
		"UBNU01234567",
		"abcd01234567",
		"ubnu0123456x",
		"ubnu0123 567",
		"ubnu０1234567",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := Encode(raw)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestParseRaw(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr bool
	}{
		{"exact", "ubnu01234567", "ubnu01234567", false},
		{"full device output", "ubnu01234567vrbnhcclbtkehdjkjtbljkgfhlfrdrtr", "ubnu01234567", false},
		{"too short", "ubnu1234", "", true},
		{"empty", "", "", true},
		{"wrong prefix", "cccc01234567", "", true},
		{"letters in digits", "ubnu0123abcd", "", true},
		{"leading space", " ubnu01234567", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRaw(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode("ubnucbdefghi")
	require.NoError(t, err)
	assert.Equal(t, "ubnu01234567", got)

	got, err = Decode("ubnuCBDEFGHI")
	require.NoError(t, err)
	assert.Equal(t, "ubnu01234567", got)

	_, err = Decode("ubnucbdefghz")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecode_RoundTrip(t *testing.T) {
	for n := 0; n < 100000000; n += 9876543 {
		raw := fmt.Sprintf("%s%08d", Prefix, n)
		enc, err := Encode(raw)
		require.NoError(t, err)
		dec, err := Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, raw, dec)
	}
}

func TestIsEncoded(t *testing.T) {
	assert.True(t, IsEncoded("ubnucbdefghi"))
	assert.True(t, IsEncoded("ubnuKKKKKKKK"))
	assert.False(t, IsEncoded("ubnu01234567"))
	assert.False(t, IsEncoded("ubnucbdefgh"))
	assert.False(t, IsEncoded("ubnucbdefghl"), "l is not part of the alphabet")
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("ubnucbdefghi", "UBNUCBDEFGHI"))
	assert.False(t, Equal("ubnucbdefghi", "ubnucbdefghj"))
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		stored string
		want   string
	}{
		{"cbdefghi", "ubnucbdefghi"},
		{" CBDEFGHI ", "ubnuCBDEFGHI"},
		{"ubnucbdefghi", "ubnucbdefghi"},
		{"cbdefghl", "cbdefghl"},
		{"cbdefgh", "cbdefgh"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonical(tt.stored), "Canonical(%q)", tt.stored)
	}
}
