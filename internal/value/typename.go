package value

// TypeName returns the canonical `instance of` type name for v (spec.md
// §4.4). LocalTime and Time both map to "time"; LocalDateTime and DateTime
// both map to "date time" (note the space) — FEEL's `instance of` does not
// distinguish the zoned and unzoned forms.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Date:
		return "date"
	case LocalTime, Time:
		return "time"
	case LocalDateTime, DateTime:
		return "date time"
	case YearMonthDuration:
		return "year-month-duration"
	case DayTimeDuration:
		return "day-time-duration"
	case Null:
		return "null"
	case *List:
		return "list"
	case *Context:
		return "context"
	case *Function:
		return "function"
	default:
		return "unknown"
	}
}

// IsOrdered reports whether v's type participates in the total ordering
// used by inequality unary tests and comparisons (spec.md §4.2).
func IsOrdered(v Value) bool {
	switch v.(type) {
	case Number, Date, LocalTime, Time, LocalDateTime, DateTime, YearMonthDuration, DayTimeDuration:
		return true
	default:
		return false
	}
}
