package hijri

import (
	"time"

	"github.com/tartampluch/go-hijri/internal/umalqura"
)

// Date is a calendar day seen in both calendars. The zero value is not a
// valid date; see [Date.IsZero].
type Date struct {
	cjdn int

	year, month, day int
	monthLen         int

	gYear  int
	gMonth time.Month
	gDay   int
}

// fromJulianDay derives both triples from a day number already known to be
// inside the table.
func fromJulianDay(cjdn int) Date {
	y, m, d, ln := umalqura.CJDNToHijri(cjdn)
	gy, gm, gd := umalqura.CJDNToGregorian(cjdn)
	return Date{
		cjdn:     cjdn,
		year:     y,
		month:    m,
		day:      d,
		monthLen: ln,
		gYear:    gy,
		gMonth:   time.Month(gm),
		gDay:     gd,
	}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.cjdn == 0 }

// Year returns the Hijri year.
func (d Date) Year() int { return d.year }

// Month returns the Hijri month, 1-12.
func (d Date) Month() int { return d.month }

// Day returns the day of the Hijri month.
func (d Date) Day() int { return d.day }

// MonthLen returns the number of days of the Hijri month d falls in.
func (d Date) MonthLen() int { return d.monthLen }

// Hijri returns the Hijri year, month and day.
func (d Date) Hijri() (year, month, day int) { return d.year, d.month, d.day }

// GregorianYear returns the Gregorian year.
func (d Date) GregorianYear() int { return d.gYear }

// GregorianMonth returns the Gregorian month.
func (d Date) GregorianMonth() time.Month { return d.gMonth }

// GregorianDay returns the day of the Gregorian month.
func (d Date) GregorianDay() int { return d.gDay }

// Gregorian returns the Gregorian year, month and day.
func (d Date) Gregorian() (year int, month time.Month, day int) {
	return d.gYear, d.gMonth, d.gDay
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return time.Weekday((d.cjdn + 1) % 7) }

// JulianDay returns the Chronological Julian Day Number of d.
func (d Date) JulianDay() int { return d.cjdn }

// Time returns midnight UTC of the Gregorian day.
func (d Date) Time() time.Time {
	return time.Date(d.gYear, d.gMonth, d.gDay, 0, 0, 0, 0, time.UTC)
}
