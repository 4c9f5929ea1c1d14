package strategy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  Strategy
	}{
		{
			name:  "no flags",
			flags: Flags{},
			want:  None,
		},
		{
			name:  "split per abi wins over everything",
			flags: Flags{SplitPerABI: true, SupportArmeabi: str("3"), Extension: num(2)},
			want:  None,
		},
		{
			name:  "split per abi skips parsing",
			flags: Flags{SplitPerABI: true, SupportArmeabi: str("not-a-number")},
			want:  None,
		},
		{
			name:  "convenience flag alone",
			flags: Flags{SupportArmeabi: str("2")},
			want:  Move,
		},
		{
			name:  "convenience flag with whitespace",
			flags: Flags{SupportArmeabi: str(" 1 ")},
			want:  Copy,
		},
		{
			name:  "extension alone",
			flags: Flags{Extension: num(3)},
			want:  Override,
		},
		{
			name:  "extension wins over convenience flag",
			flags: Flags{SupportArmeabi: str("3"), Extension: num(1)},
			want:  Copy,
		},
		{
			name:  "explicit zero extension disables",
			flags: Flags{SupportArmeabi: str("3"), Extension: num(0)},
			want:  None,
		},
		{
			name:  "out of range clamps to none",
			flags: Flags{SupportArmeabi: str("7")},
			want:  None,
		},
		{
			name:  "negative clamps to none",
			flags: Flags{Extension: num(-1)},
			want:  None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelect_InvalidValue(t *testing.T) {
	for _, v := range []string{"copy", "", "1.5", "0x2"} {
		t.Run(v, func(t *testing.T) {
			got, err := Select(Flags{SupportArmeabi: str(v)})
			require.Error(t, err)
			assert.Equal(t, None, got)
			assert.True(t, errors.Is(err, ErrInvalidStrategy))

			var invalid *InvalidStrategyError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, v, invalid.Value)
		})
	}
}

func TestStrategy_Mode(t *testing.T) {
	tests := []struct {
		s    Strategy
		want Mode
	}{
		{None, Mode{}},
		{Copy, Mode{Enabled: true}},
		{Move, Mode{Enabled: true, RemoveSource: true}},
		{Override, Mode{Enabled: true, Overwrite: true, RemoveSource: true}},
		{Strategy(9), Mode{}},
	}

	for _, tt := range tests {
		t.Run(tt.s.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.s.Mode())
		})
	}
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "override", Override.String())
	assert.Equal(t, "strategy(5)", Strategy(5).String())

	text, err := Move.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "move", string(text))
}
