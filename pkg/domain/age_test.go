package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	fixed := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		raw   string
		today time.Time
		want  int
	}{
		{"birthday is today", "820101/1234", fixed, 42},
		{"birthday already occurred", "820101/1234", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), 42},
		{"birthday not yet occurred", "820601/1234", fixed, 41},
		{"day before birthday", "820102/1234", fixed, 41},
		{"female month offset", "825101/1234", fixed, 42},
		{"previous century", "300101/1234", fixed, 94},
		{"current century", "200101/1234", fixed, 4},
		{"born this year", "240101/1234", time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bn, err := ParseBirthNumber(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Age(bn, tt.today))
		})
	}
}

func TestAge_LeapDayBirthday(t *testing.T) {
	bn, err := ParseBirthNumber("840229/1234")
	require.NoError(t, err)

	// In a common year the anniversary clamps to February 28.
	assert.Equal(t, 38, Age(bn, time.Date(2023, time.February, 27, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 39, Age(bn, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 39, Age(bn, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)))

	// In a leap year the real anniversary applies.
	assert.Equal(t, 39, Age(bn, time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 40, Age(bn, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
}
