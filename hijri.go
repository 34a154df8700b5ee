// Package hijri converts dates between the Gregorian calendar and the
// Umm al-Qura Hijri calendar used in Saudi Arabia.
//
// Conversions are table driven: the Hijri side follows the published
// Umm al-Qura month starts, compiled into the package at build time. Nothing
// is computed astronomically and nothing is extrapolated, so only
// Hijri years 1357-1499 and Gregorian years 1938-2076 are accepted.
//
// Basic usage:
//
//	d, err := hijri.FromGregorian(2000, time.July, 31)
//	if err != nil {
//		return err
//	}
//	d.Hijri()              // 1421, 4, 29
//	d.Format("%d %M %Y")   // "29 ربيع الثاني 1421"
//
//	next, err := d.Add(hijri.Days(30))
//
// A [Date] holds both calendar triples and the Chronological Julian Day
// Number they share. Dates are plain comparable values: == and [Date.Equal]
// agree, and [Date.Compare] orders them on the day line.
package hijri

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-hijri/internal/umalqura"
)

// Supported range, inclusive.
const (
	MinHijriYear     = 1357
	MaxHijriYear     = 1499
	MinGregorianYear = 1938
	MaxGregorianYear = 2076
)

// Day numbers bounding the supported Gregorian range.
var (
	minJulianDay = umalqura.GregorianToCJDN(MinGregorianYear, 1, 1)
	maxJulianDay = umalqura.GregorianToCJDN(MaxGregorianYear, 12, 31)
)

// MonthLength returns the number of days of a Hijri month.
func MonthLength(year, month int) (int, error) {
	if err := checkRange("hijri month", month, 1, 12); err != nil {
		return 0, err
	}
	if err := checkRange("hijri year", year, MinHijriYear, MaxHijriYear); err != nil {
		return 0, err
	}
	return umalqura.MonthLength(year, month), nil
}

// FromHijri returns the date of an Umm al-Qura day. The day is checked
// against 1-30, not against the actual month length: day 30 of a 29-day
// month is the first day of the next month.
func FromHijri(year, month, day int) (Date, error) {
	if err := checkRange("hijri month", month, 1, 12); err != nil {
		return Date{}, err
	}
	if err := checkRange("hijri day", day, 1, 30); err != nil {
		return Date{}, err
	}
	if err := checkRange("hijri year", year, MinHijriYear, MaxHijriYear); err != nil {
		return Date{}, err
	}
	return fromJulianDay(umalqura.HijriToCJDN(year, month, day)), nil
}

// FromGregorian returns the date of a Gregorian calendar day.
func FromGregorian(year int, month time.Month, day int) (Date, error) {
	if err := checkRange("gregorian month", int(month), 1, 12); err != nil {
		return Date{}, err
	}
	if err := checkRange("gregorian year", year, MinGregorianYear, MaxGregorianYear); err != nil {
		return Date{}, err
	}
	if err := checkRange("gregorian day", day, 1, daysIn(year, month)); err != nil {
		return Date{}, err
	}
	return fromJulianDay(umalqura.GregorianToCJDN(year, int(month), day)), nil
}

// FromTime returns the date of the calendar day of t in its own location.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return FromGregorian(y, m, d)
}

// FromJulianDay returns the date of a Chronological Julian Day Number.
func FromJulianDay(cjdn int) (Date, error) {
	if err := checkRange("julian day", cjdn, minJulianDay, maxJulianDay); err != nil {
		return Date{}, err
	}
	y, m, d := umalqura.CJDNToGregorian(cjdn)
	return FromGregorian(y, time.Month(m), d)
}

// MustFromHijri is like FromHijri but panics on error. It is meant for
// package-level variables and tests.
func MustFromHijri(year, month, day int) Date {
	d, err := FromHijri(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("hijri.MustFromHijri(%d, %d, %d): %v", year, month, day, err))
	}
	return d
}

// MustFromGregorian is like FromGregorian but panics on error.
func MustFromGregorian(year int, month time.Month, day int) Date {
	d, err := FromGregorian(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("hijri.MustFromGregorian(%d, %d, %d): %v", year, month, day, err))
	}
	return d
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
