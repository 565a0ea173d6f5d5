package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow(t *testing.T) {
	row, err := NewRow([]string{"2024-01-01", "desk", "5", "cbdefghi", "alice"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "cbdefghi", row.Token())
	assert.Equal(t, "alice", row.Owner())

	_, err = NewRow([]string{"a", "b", "c", "d"}, 3)
	assert.True(t, errors.Is(err, ErrMalformedRow))
}

func TestRow_Matches(t *testing.T) {
	row, err := NewRow([]string{"", "", "", "  UBNUCBDEFGHI ", " Alice"}, 2)
	require.NoError(t, err)

	assert.True(t, row.MatchesToken("ubnucbdefghi"))
	assert.False(t, row.MatchesToken("ubnucbdefghj"))
	assert.True(t, row.MatchesOwner("alice"))
	assert.True(t, row.MatchesOwner("ALICE "))
	assert.False(t, row.MatchesOwner("alic"))
	assert.Equal(t, " Alice", row.Owner(), "owner is returned as stored")
}

func TestRow_MatchesToken_Unprefixed(t *testing.T) {
	row, err := NewRow([]string{"...", "...", "...", "cbdefghi", "alice"}, 2)
	require.NoError(t, err)

	assert.True(t, row.MatchesToken("ubnucbdefghi"))
	assert.True(t, row.MatchesToken("UBNUCBDEFGHI"))
	assert.True(t, row.MatchesToken("cbdefghi"))
	assert.False(t, row.MatchesToken("ubnucbdefghj"))
	assert.Equal(t, "cbdefghi", row.Token(), "token is returned as stored")
}

func TestRow_Clone(t *testing.T) {
	row, err := NewRow([]string{"a", "b", "c", "d", "e", "f"}, 7)
	require.NoError(t, err)

	c := row.Clone()
	c.Fields[4] = "changed"
	assert.Equal(t, "e", row.Fields[4])
	assert.Equal(t, 7, c.Line)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", Forward, false},
		{"1", Forward, false},
		{"Forward", Forward, false},
		{" 2 ", Reverse, false},
		{"reverse", Reverse, false},
		{"3", "", true},
		{"sideways", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
