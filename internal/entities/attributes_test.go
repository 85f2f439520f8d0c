package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgw4/cetools/internal/entities"
)

func TestNewAttributes(t *testing.T) {
	attrs, err := entities.NewAttributes(7, 12, 9, 10, 15, 16)
	require.NoError(t, err)

	assert.Equal(t, "7", attrs.Strength)
	assert.Equal(t, "C", attrs.Dexterity)
	assert.Equal(t, "9", attrs.Endurance)
	assert.Equal(t, "A", attrs.Intelligence)
	assert.Equal(t, "F", attrs.Education)
	assert.Equal(t, "16", attrs.SocialStanding)

	_, err = entities.NewAttributes(-1, 7, 7, 7, 7, 7)
	assert.Error(t, err)
}

func TestAttributes_Modifier(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{name: "zero", score: 0, want: -2},
		{name: "two", score: 2, want: -2},
		{name: "three", score: 3, want: -1},
		{name: "five", score: 5, want: -1},
		{name: "six", score: 6, want: 0},
		{name: "eight", score: 8, want: 0},
		{name: "nine", score: 9, want: 1},
		{name: "eleven", score: 11, want: 1},
		{name: "twelve", score: 12, want: 2},
		{name: "fourteen", score: 14, want: 2},
		{name: "fifteen", score: 15, want: 3},
		{name: "eighteen", score: 18, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := entities.NewAttributes(tt.score, 7, 7, 7, 7, 7)
			require.NoError(t, err)

			mod, err := attrs.Modifier(entities.AttributeStrength)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mod)
		})
	}
}

func TestAttributes_Normalize(t *testing.T) {
	attrs := &entities.Attributes{
		Strength:       "0xC",
		Dexterity:      "b",
		Endurance:      "7",
		Intelligence:   "11",
		Education:      "F",
		SocialStanding: "16",
	}

	require.NoError(t, attrs.Normalize())
	assert.Equal(t, "C", attrs.Strength)
	assert.Equal(t, "B", attrs.Dexterity)
	assert.Equal(t, "7", attrs.Endurance)
	assert.Equal(t, "11", attrs.Intelligence)

	bad := &entities.Attributes{Strength: "zz"}
	assert.Error(t, bad.Normalize())
}

func TestAttributes_Validate(t *testing.T) {
	attrs, err := entities.NewAttributes(7, 8, 9, 10, 11, 12)
	require.NoError(t, err)
	assert.NoError(t, attrs.Validate())

	attrs.Education = "G"
	assert.Error(t, attrs.Validate())
}
