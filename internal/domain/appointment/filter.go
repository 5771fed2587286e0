package appointment

import "strings"

// DayFilter matches appointments falling on a set of days. The zero value
// matches every day.
type DayFilter struct {
	days [Sunday + 1]bool
	set  bool
}

// NewDayFilter matches the given days; with no days it matches all seven.
func NewDayFilter(days ...Day) DayFilter {
	var f DayFilter
	for _, d := range days {
		if d.Valid() {
			f.days[d] = true
			f.set = true
		}
	}
	return f
}

// ParseDayFilter reads day codes separated by whitespace or commas, in any
// case. An empty input matches every day.
func ParseDayFilter(input string) (DayFilter, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	days := make([]Day, 0, len(fields))
	for _, f := range fields {
		d, ok := ParseDay(f)
		if !ok {
			return DayFilter{}, ErrInvalidDay
		}
		days = append(days, d)
	}
	return NewDayFilter(days...), nil
}

func (f DayFilter) Match(a Appointment) bool {
	if !f.set {
		return true
	}
	return f.days[a.Day()]
}

// Days lists the matched days in week order.
func (f DayFilter) Days() []Day {
	out := make([]Day, 0, len(AllDays))
	for _, d := range AllDays {
		if !f.set || f.days[d] {
			out = append(out, d)
		}
	}
	return out
}

// String renders the matched days as comma separated codes, e.g. "MON,WED".
func (f DayFilter) String() string {
	codes := make([]string, 0, len(AllDays))
	for _, d := range f.Days() {
		codes = append(codes, d.String())
	}
	return strings.Join(codes, ",")
}
