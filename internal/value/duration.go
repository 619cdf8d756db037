package value

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// YearMonthDuration is a period expressed in whole months, normalized so
// Months carries the sign (spec.md §3.1: "years/months, normalized").
type YearMonthDuration struct {
	Months int
}

func NewYearMonthDuration(years, months int) YearMonthDuration {
	return YearMonthDuration{Months: years*12 + months}
}

func (d YearMonthDuration) Kind() Kind { return KindYearMonthDuration }
func (d YearMonthDuration) String() string {
	months := d.Months
	sign := ""
	if months < 0 {
		sign = "-"
		months = -months
	}
	y, m := months/12, months%12
	switch {
	case y != 0 && m != 0:
		return fmt.Sprintf("%sP%dY%dM", sign, y, m)
	case y != 0:
		return fmt.Sprintf("%sP%dY", sign, y)
	default:
		return fmt.Sprintf("%sP%dM", sign, m)
	}
}
func (d YearMonthDuration) Equals(v Value) bool {
	other, ok := v.(YearMonthDuration)
	return ok && d.Months == other.Months
}
func (d YearMonthDuration) Cmp(other YearMonthDuration) int {
	switch {
	case d.Months < other.Months:
		return -1
	case d.Months > other.Months:
		return 1
	default:
		return 0
	}
}
func (d YearMonthDuration) Add(other YearMonthDuration) YearMonthDuration {
	return YearMonthDuration{Months: d.Months + other.Months}
}
func (d YearMonthDuration) Sub(other YearMonthDuration) YearMonthDuration {
	return YearMonthDuration{Months: d.Months - other.Months}
}
func (d YearMonthDuration) Negate() YearMonthDuration { return YearMonthDuration{Months: -d.Months} }

// MulNumber multiplies by a whole-number scalar; the arithmetic callers
// pass the factor's integer part, so a fractional factor is truncated.
func (d YearMonthDuration) MulNumber(n int64) YearMonthDuration {
	return YearMonthDuration{Months: d.Months * int(n)}
}

// DivNumber divides, truncating the result to whole months (spec.md §4.3:
// "months-integer-truncate on ÷"; §9 flags this as an open question for
// non-integer divisors).
func (d YearMonthDuration) DivNumber(n float64) YearMonthDuration {
	return YearMonthDuration{Months: int(float64(d.Months) / n)}
}

// DayTimeDuration is a duration expressed in seconds/nanoseconds (spec.md
// §3.1), represented as a Go time.Duration internally.
type DayTimeDuration struct {
	D time.Duration
}

func NewDayTimeDuration(d time.Duration) DayTimeDuration { return DayTimeDuration{D: d} }

func (d DayTimeDuration) Kind() Kind { return KindDayTimeDuration }
func (d DayTimeDuration) String() string {
	total := d.D
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	days := int64(total / (24 * time.Hour))
	rem := total % (24 * time.Hour)
	hours := int64(rem / time.Hour)
	rem %= time.Hour
	minutes := int64(rem / time.Minute)
	rem %= time.Minute
	seconds := float64(rem) / float64(time.Second)

	out := sign + "P"
	if days != 0 {
		out += fmt.Sprintf("%dD", days)
	}
	if hours != 0 || minutes != 0 || seconds != 0 {
		out += "T"
		if hours != 0 {
			out += fmt.Sprintf("%dH", hours)
		}
		if minutes != 0 {
			out += fmt.Sprintf("%dM", minutes)
		}
		if seconds != 0 {
			out += trimTrailingZeros(seconds) + "S"
		}
	}
	if out == sign+"P" {
		out += "T0S"
	}
	return out
}

func trimTrailingZeros(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return s
}

func (d DayTimeDuration) Equals(v Value) bool {
	other, ok := v.(DayTimeDuration)
	return ok && d.D == other.D
}
func (d DayTimeDuration) Cmp(other DayTimeDuration) int {
	switch {
	case d.D < other.D:
		return -1
	case d.D > other.D:
		return 1
	default:
		return 0
	}
}
func (d DayTimeDuration) Add(other DayTimeDuration) DayTimeDuration {
	return DayTimeDuration{D: d.D + other.D}
}
func (d DayTimeDuration) Sub(other DayTimeDuration) DayTimeDuration {
	return DayTimeDuration{D: d.D - other.D}
}
func (d DayTimeDuration) Negate() DayTimeDuration { return DayTimeDuration{D: -d.D} }
func (d DayTimeDuration) MulNumber(n float64) DayTimeDuration {
	return DayTimeDuration{D: time.Duration(float64(d.D) * n)}
}

// DivNumber divides, truncating to whole milliseconds (spec.md §4.3:
// "millis-integer-truncate on ÷").
func (d DayTimeDuration) DivNumber(n float64) DayTimeDuration {
	millis := float64(d.D/time.Millisecond) / n
	return DayTimeDuration{D: time.Duration(int64(millis)) * time.Millisecond}
}

var (
	ymRe = regexp.MustCompile(`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?$`)
	dtRe = regexp.MustCompile(`^(-)?P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:([\d.]+)S)?)?$`)
)

// ParseYearMonthDuration parses an ISO-8601-style year/month period such as
// "P1Y2M", "P6M", or "-P1Y".
func ParseYearMonthDuration(s string) (YearMonthDuration, error) {
	m := ymRe.FindStringSubmatch(s)
	if m == nil || (m[2] == "" && m[3] == "") {
		return YearMonthDuration{}, fmt.Errorf("invalid year-month duration literal %q", s)
	}
	years, _ := strconv.Atoi(m[2])
	months, _ := strconv.Atoi(m[3])
	total := years*12 + months
	if m[1] == "-" {
		total = -total
	}
	return YearMonthDuration{Months: total}, nil
}

// ParseDayTimeDuration parses an ISO-8601-style day/time duration such as
// "P1DT2H3M4S", "PT30M", or "-PT1H".
func ParseDayTimeDuration(s string) (DayTimeDuration, error) {
	m := dtRe.FindStringSubmatch(s)
	if m == nil || (m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "") {
		return DayTimeDuration{}, fmt.Errorf("invalid day-time duration literal %q", s)
	}
	days, _ := strconv.Atoi(m[2])
	hours, _ := strconv.Atoi(m[3])
	minutes, _ := strconv.Atoi(m[4])
	seconds, _ := strconv.ParseFloat(orZero(m[5]), 64)

	total := time.Duration(days) * 24 * time.Hour
	total += time.Duration(hours) * time.Hour
	total += time.Duration(minutes) * time.Minute
	total += time.Duration(seconds * float64(time.Second))
	if m[1] == "-" {
		total = -total
	}
	return DayTimeDuration{D: total}, nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
