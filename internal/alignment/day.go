package alignment

import "time"

// dayKeyLayout is the calendar-day key format (local calendar).
const dayKeyLayout = "2006-01-02"

// DayKey returns the calendar-day key for t.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// validDayKey reports whether s parses as a day key.
func validDayKey(s string) bool {
	_, err := time.Parse(dayKeyLayout, s)
	return err == nil
}
