package appointment

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
)

// textPattern is the canonical "HH:MM-HH:MM DAY" shape. Ranges are checked
// after matching.
var textPattern = regexp.MustCompile(`^(\d{2}):(\d{2})-(\d{2}):(\d{2})\s+([A-Za-z]{3})$`)

// Clock is a wall-clock time of day in minutes since midnight.
type Clock int

const minutesPerDay = 24 * 60

// NewClock validates hour in [0,23] and minute in [0,59].
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidFormat
	}
	return Clock(hour*60 + minute), nil
}

// ParseClock reads a 24-hour "HH:MM".
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidFormat
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return NewClock(h, m)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Appointment is one weekly recurring slot. The zero value is not a valid
// appointment; build one with New or Parse. Values are comparable with ==.
type Appointment struct {
	day   Day
	start Clock
	end   Clock
}

// New builds an appointment from structured input.
func New(day Day, start, end Clock) (Appointment, error) {
	if start < 0 || start >= minutesPerDay || end < 0 || end >= minutesPerDay {
		return Appointment{}, ErrInvalidFormat
	}
	if start >= end {
		return Appointment{}, ErrInvalidFormat
	}
	if !day.Valid() {
		return Appointment{}, ErrInvalidFormat
	}
	return Appointment{day: day, start: start, end: end}, nil
}

// Parse reads the canonical text form, e.g. "10:00-12:00 SUN". The day code
// is case-insensitive.
func Parse(text string) (Appointment, error) {
	m := textPattern.FindStringSubmatch(text)
	if m == nil {
		return Appointment{}, ErrInvalidFormat
	}

	start, err := clockFromParts(m[1], m[2])
	if err != nil {
		return Appointment{}, err
	}
	end, err := clockFromParts(m[3], m[4])
	if err != nil {
		return Appointment{}, err
	}
	if start >= end {
		return Appointment{}, ErrInvalidFormat
	}

	day, ok := ParseDay(m[5])
	if !ok {
		return Appointment{}, ErrInvalidFormat
	}

	return Appointment{day: day, start: start, end: end}, nil
}

// MustParse is Parse for fixtures and constants.
func MustParse(text string) Appointment {
	a, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("appointment: MustParse(%q): %v", text, err))
	}
	return a
}

// IsValid reports whether text parses.
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

func clockFromParts(hh, mm string) (Clock, error) {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return NewClock(h, m)
}

func (a Appointment) Day() Day     { return a.day }
func (a Appointment) Start() Clock { return a.start }
func (a Appointment) End() Clock   { return a.end }

// IsZero reports whether a was never constructed.
func (a Appointment) IsZero() bool {
	return a == Appointment{}
}

// String renders the canonical text form.
func (a Appointment) String() string {
	return a.start.String() + "-" + a.end.String() + " " + a.day.String()
}

// Overlaps reports a strict interior intersection on the same day.
// Back-to-back slots (end == other.start) do not overlap.
func (a Appointment) Overlaps(other Appointment) bool {
	if a.day != other.day {
		return false
	}
	return a.start < other.end && other.start < a.end
}

// Compare orders by day (Monday first), then start time. End time breaks
// the remaining ties so distinct slots never compare equal.
func (a Appointment) Compare(other Appointment) int {
	if c := cmp.Compare(a.day, other.day); c != 0 {
		return c
	}
	if c := cmp.Compare(a.start, other.start); c != 0 {
		return c
	}
	return cmp.Compare(a.end, other.end)
}

// HasOverlapping reports whether any two slots in the list overlap.
func HasOverlapping(slots []Appointment) bool {
	for i := 0; i < len(slots)-1; i++ {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].Overlaps(slots[j]) {
				return true
			}
		}
	}
	return false
}

// Compare is the free-function form of Appointment.Compare, handy for
// slices.SortFunc.
func Compare(a, b Appointment) int {
	return a.Compare(b)
}

func (a Appointment) MarshalText() ([]byte, error) {
	if a.IsZero() {
		return nil, ErrInvalidFormat
	}
	return []byte(a.String()), nil
}

func (a *Appointment) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
