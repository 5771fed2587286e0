package appointment

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical", "10:00-12:00 SUN", "10:00-12:00 SUN"},
		{"lowercase day", "09:30-10:15 mon", "09:30-10:15 MON"},
		{"mixed case day", "09:30-10:15 Wed", "09:30-10:15 WED"},
		{"extra whitespace", "08:00-09:00   FRI", "08:00-09:00 FRI"},
		{"midnight start", "00:00-00:01 TUE", "00:00-00:01 TUE"},
		{"last minute", "22:59-23:59 SAT", "22:59-23:59 SAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"hour out of range", "25:00-26:00 MON"},
		{"end before start", "10:00-09:00 MON"},
		{"zero length", "10:00-10:00 MON"},
		{"minute out of range", "10:60-11:00 MON"},
		{"unknown day", "10:00-11:00 MOO"},
		{"full day name", "10:00-11:00 MONDAY"},
		{"single digit hour", "9:00-10:00 MON"},
		{"missing day", "10:00-11:00"},
		{"missing separator", "10:00 11:00 MON"},
		{"no space before day", "10:00-11:00MON"},
		{"leading space", " 10:00-11:00 MON"},
		{"24:00 end", "23:00-24:00 MON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFormat))
			assert.True(t, httperr.IsBusiness(err, CodeInvalidFormat))
			assert.False(t, IsValid(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	start, err := NewClock(9, 0)
	require.NoError(t, err)
	end, err := ParseClock("10:30")
	require.NoError(t, err)

	a, err := New(Thursday, start, end)
	require.NoError(t, err)
	assert.Equal(t, MustParse("09:00-10:30 THU"), a)
	assert.Equal(t, Thursday, a.Day())
	assert.Equal(t, 9, a.Start().Hour())
	assert.Equal(t, 30, a.End().Minute())

	_, err = New(Thursday, end, start)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = New(Day(8), start, end)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewClock(24, 0)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{
		"10:00-12:00 SUN",
		"00:00-23:59 MON",
		"13:05-13:06 WED",
	} {
		a := MustParse(text)
		again := MustParse(a.String())
		assert.Equal(t, a, again)
		assert.Equal(t, text, again.String())
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"partial overlap", "10:00-12:00 SUN", "11:00-13:00 SUN", true},
		{"back to back", "10:00-12:00 SUN", "12:00-14:00 SUN", false},
		{"contained", "10:00-14:00 MON", "11:00-12:00 MON", true},
		{"identical", "10:00-11:00 MON", "10:00-11:00 MON", true},
		{"same start", "10:00-11:00 MON", "10:00-10:30 MON", true},
		{"disjoint", "08:00-09:00 MON", "10:00-11:00 MON", false},
		{"different day", "10:00-12:00 MON", "10:00-12:00 TUE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestCompare(t *testing.T) {
	mon := MustParse("09:00-10:00 MON")
	tue := MustParse("10:00-11:00 TUE")
	sun := MustParse("08:00-09:00 SUN")
	monLate := MustParse("11:00-12:00 MON")

	assert.Equal(t, -1, mon.Compare(tue))
	assert.Equal(t, 1, tue.Compare(mon))
	assert.Equal(t, 0, mon.Compare(mon))
	assert.Equal(t, -1, tue.Compare(sun), "sunday is the last day of the week")
	assert.Equal(t, -1, mon.Compare(monLate))

	list := []Appointment{tue, sun, monLate, mon}
	slices.SortFunc(list, Compare)
	assert.Equal(t, []Appointment{mon, monLate, tue, sun}, list)
}

func TestHasOverlapping(t *testing.T) {
	assert.False(t, HasOverlapping(nil))
	assert.False(t, HasOverlapping([]Appointment{MustParse("10:00-11:00 MON")}))
	assert.False(t, HasOverlapping([]Appointment{
		MustParse("10:00-11:00 MON"),
		MustParse("11:00-12:00 MON"),
		MustParse("10:00-11:00 TUE"),
	}))
	assert.True(t, HasOverlapping([]Appointment{
		MustParse("10:00-11:00 MON"),
		MustParse("09:00-10:00 TUE"),
		MustParse("10:30-11:30 MON"),
	}))
}

func TestJSON(t *testing.T) {
	type payload struct {
		Slots []Appointment `json:"slots"`
	}

	in := payload{Slots: []Appointment{MustParse("10:00-12:00 SUN"), MustParse("08:15-09:00 TUE")}}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"slots":["10:00-12:00 SUN","08:15-09:00 TUE"]}`, string(raw))

	var out payload
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"slots":["10:00-09:00 SUN"]}`), &out)
	assert.Error(t, err)
}

func TestDay(t *testing.T) {
	d, ok := ParseDay("sun")
	require.True(t, ok)
	assert.Equal(t, Sunday, d)
	assert.Equal(t, "SUN", d.String())

	_, ok = ParseDay("XYZ")
	assert.False(t, ok)
}
