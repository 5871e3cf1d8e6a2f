package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30). Entry dates and
// log timestamps are always interpreted in outlet-local time.
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Layouts used across persistence and exports.
const (
	DateLayout     = "2006-01-02"
	MonthLayout    = "2006-01"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(IST)
}

// ParseDate parses a YYYY-MM-DD calendar date in IST.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, IST)
}

// ParseMonth parses a YYYY-MM calendar month in IST.
func ParseMonth(s string) (time.Time, error) {
	return time.ParseInLocation(MonthLayout, s, IST)
}

// PreviousDate returns the calendar date one day before the given
// YYYY-MM-DD date.
func PreviousDate(s string) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, -1).Format(DateLayout), nil
}
