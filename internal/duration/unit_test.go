package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"", Milliseconds},
		{"milliseconds", Milliseconds},
		{"ms", Milliseconds},
		{"seconds", Seconds},
		{"second", Seconds},
		{"s", Seconds},
		{"Minutes", Minutes},
		{"m", Minutes},
		{"hour", Hours},
		{"h", Hours},
		{"days", Days},
		{"w", Weeks},
		{"month", Months},
		{"M", Months},
		{"YEARS", Years},
		{"y", Years},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUnit(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseUnit("fortnights")
	assert.Error(t, err)
}

func TestUnit_RoundTrip(t *testing.T) {
	for _, u := range Units() {
		got, err := ParseUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
}

func TestUnit_Millis(t *testing.T) {
	assert.Equal(t, 1.0, Milliseconds.Millis())
	assert.Equal(t, 2628000000.0, Months.Millis())
	assert.Equal(t, 31536000000.0, Years.Millis())
	assert.Equal(t, 1.0, Unit(42).Millis())
	assert.Equal(t, "Unit(42)", Unit(42).String())
}

func TestConvert(t *testing.T) {
	assert.Equal(t, Day, Convert(Day, Milliseconds))
	assert.Equal(t, 1.0, Convert(Day, Days))
	assert.Equal(t, 12.0, Convert(Year, Months))
	assert.Equal(t, 0.5, Convert(Week/2, Weeks))
}
