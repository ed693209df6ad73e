package services

import (
	"time"
	"unicode/utf8"
)

const MaxDayNotesLength = 2000

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// TrimDayNotes caps notes at MaxDayNotesLength bytes without splitting a character.
func TrimDayNotes(value string) string {
	if len(value) <= MaxDayNotesLength {
		return value
	}
	cut := MaxDayNotesLength
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}

// CalendarDaysBetween counts whole calendar days from a to b, reading each value in its own location.
// Clock time and DST shifts never produce partial days.
func CalendarDaysBetween(a time.Time, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func SameCalendarDay(a time.Time, b time.Time, location *time.Location) bool {
	return DateAtLocation(a, location).Equal(DateAtLocation(b, location))
}
