// Package umalqura converts between Gregorian dates and the Umm al-Qura Hijri
// calendar using the tabulated month starts of the Saudi calendar.
//
// The package performs no validation of user input: a date outside the table
// is a programming error and causes a panic. Callers are expected to check
// ranges first (see the root hijri package).
package umalqura

import (
	"fmt"
	"sort"
)

const (
	// MCJDNOffset is the difference between a Chronological Julian Day Number
	// and the Modified CJDN stored in the table.
	MCJDNOffset = 2400000

	// epochOffset is the lunation count elapsed before the first tabulated month.
	epochOffset = (firstYear - 1) * 12

	panicPrefix = "umalqura: "
)

// Len returns the number of entries in the month-start table, sentinel included.
func Len() int { return len(monthStarts) }

// At returns the i-th month start (MCJDN). It panics if i is out of bounds.
func At(i int) int { return monthStarts[i] }

// FirstCJDN returns the first day covered by the table.
func FirstCJDN() int { return monthStarts[0] + MCJDNOffset }

// LastCJDN returns the last day covered by the table.
func LastCJDN() int { return monthStarts[len(monthStarts)-1] + MCJDNOffset - 1 }

// FirstYear returns the first tabulated Hijri year.
func FirstYear() int { return firstYear }

// LastYear returns the last tabulated Hijri year.
func LastYear() int { return firstYear + (len(monthStarts)-1)/12 - 1 }

// monthIndex returns i such that monthStarts[i-1] <= mcjdn < monthStarts[i].
func monthIndex(mcjdn int) int {
	i := sort.Search(len(monthStarts), func(i int) bool {
		return monthStarts[i] > mcjdn
	})
	if i == 0 || i == len(monthStarts) {
		panic(fmt.Sprintf(panicPrefix+"day %d outside table [%d, %d]",
			mcjdn+MCJDNOffset, FirstCJDN(), LastCJDN()))
	}
	return i
}

// tableIndex returns the index of the month following (year, month).
func tableIndex(year, month int) int {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf(panicPrefix+"month %d out of bounds", month))
	}
	i := (year-1)*12 + month - epochOffset
	if i < 1 || i >= len(monthStarts) {
		panic(fmt.Sprintf(panicPrefix+"year %d outside table [%d, %d]",
			year, FirstYear(), LastYear()))
	}
	return i
}

// CJDNToHijri returns the Hijri date of a day and the length of its month.
func CJDNToHijri(cjdn int) (year, month, day, monthLen int) {
	mcjdn := cjdn - MCJDNOffset
	i := monthIndex(mcjdn)

	lunation := i + epochOffset
	elapsed := (lunation - 1) / 12
	year = elapsed + 1
	month = lunation - 12*elapsed
	day = mcjdn - monthStarts[i-1] + 1
	monthLen = monthStarts[i] - monthStarts[i-1]
	return year, month, day, monthLen
}

// HijriToCJDN returns the day number of a Hijri date. The day is not checked
// against the month length: days past the end roll into the following month.
func HijriToCJDN(year, month, day int) int {
	i := tableIndex(year, month)
	return day + monthStarts[i-1] - 1 + MCJDNOffset
}

// GregorianToHijri converts a Gregorian date to its Hijri equivalent.
func GregorianToHijri(year, month, day int) (hYear, hMonth, hDay, monthLen int) {
	return CJDNToHijri(GregorianToCJDN(year, month, day))
}

// HijriToGregorian converts a Hijri date to its Gregorian equivalent.
func HijriToGregorian(year, month, day int) (gYear, gMonth, gDay int) {
	return CJDNToGregorian(HijriToCJDN(year, month, day))
}

// MonthLength returns the number of days (29 or 30, once 28) of a Hijri month.
func MonthLength(year, month int) int {
	i := tableIndex(year, month)
	return monthStarts[i] - monthStarts[i-1]
}
