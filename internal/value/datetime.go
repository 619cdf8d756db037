package value

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	T time.Time // normalized to midnight UTC; only Y/M/D are meaningful
}

func NewDate(y int, m time.Month, d int) Date {
	return Date{T: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Kind() Kind     { return KindDate }
func (d Date) String() string { return d.T.Format("2006-01-02") }
func (d Date) Equals(v Value) bool {
	other, ok := v.(Date)
	return ok && d.T.Equal(other.T)
}
func (d Date) Cmp(other Date) int {
	switch {
	case d.T.Before(other.T):
		return -1
	case d.T.After(other.T):
		return 1
	default:
		return 0
	}
}
func (d Date) AddDays(days int) Date  { return Date{T: d.T.AddDate(0, 0, days)} }
func (d Date) AddMonths(m int) Date   { return Date{T: d.T.AddDate(0, m, 0)} }
func (d Date) Sub(other Date) DayTimeDuration {
	return DayTimeDuration{D: d.T.Sub(other.T)}
}

// LocalTime is a time-of-day without any zone/offset information.
type LocalTime struct {
	T time.Time // date components are fixed at year 0; only H/M/S/ns matter
}

func NewLocalTime(h, m, s, ns int) LocalTime {
	return LocalTime{T: time.Date(0, 1, 1, h, m, s, ns, time.UTC)}
}

func (t LocalTime) Kind() Kind     { return KindLocalTime }
func (t LocalTime) String() string { return formatClock(t.T) }
func (t LocalTime) Equals(v Value) bool {
	other, ok := v.(LocalTime)
	return ok && t.T.Equal(other.T)
}
func (t LocalTime) Cmp(other LocalTime) int {
	switch {
	case t.T.Before(other.T):
		return -1
	case t.T.After(other.T):
		return 1
	default:
		return 0
	}
}

// AddDuration adds a day-time duration, wrapping within a 24h clock as FEEL
// time-of-day values do.
func (t LocalTime) AddDuration(dur DayTimeDuration) LocalTime {
	return LocalTime{T: wrapClock(t.T.Add(dur.D))}
}
func (t LocalTime) Sub(other LocalTime) DayTimeDuration {
	return DayTimeDuration{D: t.T.Sub(other.T)}
}

// Time is a time-of-day with a zone offset.
type Time struct {
	T             time.Time // H/M/S/ns meaningful, year fixed at 0
	OffsetSeconds int       // seconds east of UTC
}

func NewTime(h, m, s, ns, offsetSeconds int) Time {
	loc := time.FixedZone("", offsetSeconds)
	return Time{T: time.Date(0, 1, 1, h, m, s, ns, loc), OffsetSeconds: offsetSeconds}
}

func (t Time) Kind() Kind { return KindTime }
func (t Time) String() string {
	return formatClock(t.T) + formatOffset(t.OffsetSeconds)
}
func (t Time) Equals(v Value) bool {
	other, ok := v.(Time)
	return ok && t.T.Equal(other.T) && t.OffsetSeconds == other.OffsetSeconds
}

// instant returns a comparable absolute instant for ordering two Time
// values that may carry different offsets.
func (t Time) instant() time.Time { return t.T.UTC() }
func (t Time) Cmp(other Time) int {
	a, b := t.instant(), other.instant()
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
func (t Time) AddDuration(dur DayTimeDuration) Time {
	return Time{T: wrapClockZoned(t.T.Add(dur.D), t.T.Location()), OffsetSeconds: t.OffsetSeconds}
}
func (t Time) Sub(other Time) DayTimeDuration {
	return DayTimeDuration{D: t.instant().Sub(other.instant())}
}

// LocalDateTime is a date and time-of-day without zone/offset.
type LocalDateTime struct {
	T time.Time
}

func NewLocalDateTime(y int, mo time.Month, d, h, mi, s, ns int) LocalDateTime {
	return LocalDateTime{T: time.Date(y, mo, d, h, mi, s, ns, time.UTC)}
}

func (dt LocalDateTime) Kind() Kind     { return KindLocalDateTime }
func (dt LocalDateTime) String() string { return dt.T.Format("2006-01-02T15:04:05") }
func (dt LocalDateTime) Equals(v Value) bool {
	other, ok := v.(LocalDateTime)
	return ok && dt.T.Equal(other.T)
}
func (dt LocalDateTime) Cmp(other LocalDateTime) int {
	switch {
	case dt.T.Before(other.T):
		return -1
	case dt.T.After(other.T):
		return 1
	default:
		return 0
	}
}
func (dt LocalDateTime) AddDayTime(dur DayTimeDuration) LocalDateTime {
	return LocalDateTime{T: dt.T.Add(dur.D)}
}
func (dt LocalDateTime) AddYearMonth(dur YearMonthDuration) LocalDateTime {
	return LocalDateTime{T: dt.T.AddDate(0, dur.Months, 0)}
}
func (dt LocalDateTime) Sub(other LocalDateTime) DayTimeDuration {
	return DayTimeDuration{D: dt.T.Sub(other.T)}
}

// DateTime is a date and time-of-day with a zone offset.
type DateTime struct {
	T             time.Time
	OffsetSeconds int
}

func NewDateTime(y int, mo time.Month, d, h, mi, s, ns, offsetSeconds int) DateTime {
	loc := time.FixedZone("", offsetSeconds)
	return DateTime{T: time.Date(y, mo, d, h, mi, s, ns, loc), OffsetSeconds: offsetSeconds}
}

func (dt DateTime) Kind() Kind { return KindDateTime }
func (dt DateTime) String() string {
	return dt.T.Format("2006-01-02T15:04:05") + formatOffset(dt.OffsetSeconds)
}
func (dt DateTime) Equals(v Value) bool {
	other, ok := v.(DateTime)
	return ok && dt.T.Equal(other.T) && dt.OffsetSeconds == other.OffsetSeconds
}
func (dt DateTime) instant() time.Time { return dt.T.UTC() }
func (dt DateTime) Cmp(other DateTime) int {
	a, b := dt.instant(), other.instant()
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
func (dt DateTime) AddDayTime(dur DayTimeDuration) DateTime {
	return DateTime{T: dt.T.Add(dur.D), OffsetSeconds: dt.OffsetSeconds}
}
func (dt DateTime) AddYearMonth(dur YearMonthDuration) DateTime {
	return DateTime{T: dt.T.AddDate(0, dur.Months, 0), OffsetSeconds: dt.OffsetSeconds}
}
func (dt DateTime) Sub(other DateTime) DayTimeDuration {
	return DayTimeDuration{D: dt.instant().Sub(other.instant())}
}

func formatClock(t time.Time) string { return t.Format("15:04:05") }

func formatOffset(seconds int) string {
	if seconds == 0 {
		return "Z"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// wrapClock normalizes t's time-of-day into [00:00:00, 24:00:00) on the
// fixed year-0 date used by LocalTime, carrying day overflow away.
func wrapClock(t time.Time) time.Time {
	return wrapClockZoned(t, time.UTC)
}

func wrapClockZoned(t time.Time, loc *time.Location) time.Time {
	h, mi, s := t.Clock()
	return time.Date(0, 1, 1, h, mi, s, t.Nanosecond(), loc)
}

// ---- literal parsing (spec.md §3.3, TemporalLit) ----

var offsetRe = regexp.MustCompile(`^(Z)|([+-])(\d{2}):(\d{2})$`)

func parseOffset(s string) (int, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	m := offsetRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false, fmt.Errorf("invalid zone offset %q", s)
	}
	if m[1] == "Z" {
		return 0, true, nil
	}
	hh, _ := strconv.Atoi(m[3])
	mm, _ := strconv.Atoi(m[4])
	secs := hh*3600 + mm*60
	if m[2] == "-" {
		secs = -secs
	}
	return secs, true, nil
}

var clockRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)

func splitClock(s string) (h, m, sec, ns int, offset string, err error) {
	mm := clockRe.FindStringSubmatch(s)
	if mm == nil {
		return 0, 0, 0, 0, "", fmt.Errorf("invalid time literal %q", s)
	}
	h, _ = strconv.Atoi(mm[1])
	m, _ = strconv.Atoi(mm[2])
	sec, _ = strconv.Atoi(mm[3])
	if mm[4] != "" {
		frac := mm[4][1:]
		for len(frac) < 9 {
			frac += "0"
		}
		ns, _ = strconv.Atoi(frac[:9])
	}
	return h, m, sec, ns, mm[5], nil
}

// ParseDate parses a FEEL date literal "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date literal %q: %w", s, err)
	}
	return Date{T: t}, nil
}

// ParseTimeOfDay parses a time-of-day literal, returning either a
// LocalTime or a Time depending on whether a zone offset is present.
func ParseTimeOfDay(s string) (Value, error) {
	h, m, sec, ns, offset, err := splitClock(s)
	if err != nil {
		return nil, err
	}
	if offset == "" {
		return NewLocalTime(h, m, sec, ns), nil
	}
	secs, _, err := parseOffset(offset)
	if err != nil {
		return nil, err
	}
	return NewTime(h, m, sec, ns, secs), nil
}

// ParseDateTime parses a "date T time" literal, returning either a
// LocalDateTime or a DateTime depending on whether a zone offset is
// present on the time-of-day part.
func ParseDateTime(s string) (Value, error) {
	idx := regexp.MustCompile(`T`).FindStringIndex(s)
	if idx == nil {
		return nil, fmt.Errorf("invalid date-time literal %q: missing 'T'", s)
	}
	datePart, timePart := s[:idx[0]], s[idx[1]:]
	d, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return nil, fmt.Errorf("invalid date-time literal %q: %w", s, err)
	}
	h, m, sec, ns, offset, err := splitClock(timePart)
	if err != nil {
		return nil, err
	}
	if offset == "" {
		return LocalDateTime{T: time.Date(d.Year(), d.Month(), d.Day(), h, m, sec, ns, time.UTC)}, nil
	}
	secs, _, err := parseOffset(offset)
	if err != nil {
		return nil, err
	}
	loc := time.FixedZone("", secs)
	return DateTime{
		T:             time.Date(d.Year(), d.Month(), d.Day(), h, m, sec, ns, loc),
		OffsetSeconds: secs,
	}, nil
}
