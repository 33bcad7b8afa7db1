package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptionTable(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		wantErr error
	}{
		{
			name:    "valid table",
			options: []Option{{Name: "Normal", BaseOdds: 1, Multiplier: 1}, {Name: "Bronze", BaseOdds: 10, Multiplier: 2.5}},
		},
		{
			name:    "empty table",
			options: nil,
			wantErr: ErrInvalidTable,
		},
		{
			name:    "missing name",
			options: []Option{{Name: " ", BaseOdds: 1, Multiplier: 1}},
			wantErr: ErrInvalidTable,
		},
		{
			name:    "duplicate name ignores case",
			options: []Option{{Name: "Gold", BaseOdds: 1, Multiplier: 1}, {Name: "gold", BaseOdds: 5, Multiplier: 1}},
			wantErr: ErrDuplicateOption,
		},
		{
			name:    "odds below one",
			options: []Option{{Name: "Gold", BaseOdds: 0.5, Multiplier: 1}},
			wantErr: ErrInvalidOdds,
		},
		{
			name:    "negative multiplier",
			options: []Option{{Name: "Gold", BaseOdds: 1, Multiplier: -1}},
			wantErr: ErrInvalidTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewOptionTable(CategoryMold, tt.options)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.options), table.Len())
		})
	}
}

func TestOptionTable_IsImmutable(t *testing.T) {
	src := []Option{{Name: "Normal", BaseOdds: 1, Multiplier: 1}, {Name: "Bronze", BaseOdds: 10, Multiplier: 2.5}}
	table, err := NewOptionTable(CategoryMold, src)
	require.NoError(t, err)

	src[0].Name = "Changed"
	opts := table.Options()
	opts[1].BaseOdds = 99

	assert.Equal(t, "Normal", table.At(0).Name)
	assert.Equal(t, 10.0, table.At(1).BaseOdds)
}

func TestOptionTable_Lookup(t *testing.T) {
	table, err := NewOptionTable(CategoryQuality, []Option{
		{Name: "Rough", BaseOdds: 3, Multiplier: 1.25},
		{Name: "Broken", BaseOdds: 1, Multiplier: 1},
	})
	require.NoError(t, err)

	opt, ok := table.Lookup("ROUGH")
	require.True(t, ok)
	assert.Equal(t, 1.25, opt.Multiplier)

	_, ok = table.Lookup("Missing")
	assert.False(t, ok)

	assert.Equal(t, 1.0, table.MinBaseOdds())
	assert.Equal(t, CategoryQuality, table.Category())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "cd7f32", want: Color{R: 0xcd, G: 0x7f, B: 0x32, A: 255}},
		{in: "#00FFFF", want: Color{R: 0, G: 255, B: 255, A: 255}},
		{in: "#11223380", want: Color{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
		{in: "", want: White},
		{in: "fff", wantErr: true},
		{in: "zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "#CD7F32", Color{R: 0xcd, G: 0x7f, B: 0x32}.Hex())
}
