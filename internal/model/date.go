// Package model defines the ledger's record types.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Year bounds accepted by Valid.
const (
	MinYear = 1900
	MaxYear = 3000
)

// Date is a calendar day without time or zone.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns the date for y-m-d. It does not validate.
func NewDate(y, m, d int) Date { return Date{Year: y, Month: m, Day: d} }

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DaysIn returns the number of days of month m in year y, or 0 for a bad month.
func DaysIn(y, m int) int {
	switch m {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(y) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Valid reports whether d is a real calendar day within [MinYear, MaxYear].
func (d Date) Valid() bool {
	if d.Year < MinYear || d.Year > MaxYear {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// Compare returns -1, 0 or +1 ordering by year, month, then day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(d.Month, o.Month)
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses YYYY-MM-DD (single-digit month and day allowed) and
// rejects dates that are not Valid.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("date %q: %w", s, err)
		}
		nums[i] = n
	}
	d := NewDate(nums[0], nums[1], nums[2])
	if !d.Valid() {
		return Date{}, fmt.Errorf("date %q is not a calendar day in [%d..%d]", s, MinYear, MaxYear)
	}
	return d, nil
}
