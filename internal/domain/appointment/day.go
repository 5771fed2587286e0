package appointment

import (
	"strconv"
	"strings"
)

// Day is a day of the week numbered Monday=1 … Sunday=7.
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// dayCodes is indexed by Day; index 0 is unused.
var dayCodes = [...]string{"", "MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// AllDays lists the week in order.
var AllDays = [...]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDay accepts a three-letter code in any case.
func ParseDay(code string) (Day, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for d := Monday; d <= Sunday; d++ {
		if dayCodes[d] == code {
			return d, true
		}
	}
	return 0, false
}

func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the three-letter code, e.g. "MON".
func (d Day) String() string {
	if !d.Valid() {
		return "Day(" + strconv.Itoa(int(d)) + ")"
	}
	return dayCodes[d]
}
