package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayFilter(t *testing.T) {
	mon := MustParse("09:00-10:00 MON")
	tue := MustParse("09:00-10:00 TUE")
	sun := MustParse("09:00-10:00 SUN")

	all := NewDayFilter()
	assert.True(t, all.Match(mon))
	assert.True(t, all.Match(sun))
	assert.Len(t, all.Days(), 7)

	var zero DayFilter
	assert.True(t, zero.Match(tue))

	monOnly := NewDayFilter(Monday)
	assert.True(t, monOnly.Match(mon))
	assert.False(t, monOnly.Match(tue))
	assert.Equal(t, "MON", monOnly.String())
}

func TestParseDayFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Day
	}{
		{"empty matches all", "", AllDays[:]},
		{"blank matches all", "   ", AllDays[:]},
		{"single", "mon", []Day{Monday}},
		{"spaces", "sun  MON", []Day{Monday, Sunday}},
		{"commas", "WED,fri", []Day{Wednesday, Friday}},
		{"duplicates collapse", "tue tue TUE", []Day{Tuesday}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseDayFilter(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Days())
		})
	}

	_, err := ParseDayFilter("MON FUNDAY")
	assert.ErrorIs(t, err, ErrInvalidDay)
}
