package umalqura

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Day numbers from the Gregorian reform onwards; the bridge applies the
// Gregorian correction unconditionally.
var julianDayData = []struct {
	cjdn int
	date time.Time
}{
	{2299161, time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC)},
	{2415021, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)},
	{2428607, time.Date(1937, time.March, 14, 0, 0, 0, 0, time.UTC)},
	{2440587, time.Date(1969, time.December, 31, 0, 0, 0, 0, time.UTC)},
	{2440588, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)},
	{2447893, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)},
	{2451545, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)},
	{2451605, time.Date(2000, time.March, 1, 0, 0, 0, 0, time.UTC)},
	{2453750, time.Date(2006, time.January, 14, 0, 0, 0, 0, time.UTC)},
	{2455281, time.Date(2010, time.March, 25, 0, 0, 0, 0, time.UTC)},
	{2457188, time.Date(2015, time.June, 14, 0, 0, 0, 0, time.UTC)},
	{2457202, time.Date(2015, time.June, 28, 0, 0, 0, 0, time.UTC)},
	{5373484, time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)},
}

func TestGregorianToCJDN(t *testing.T) {
	t.Parallel()

	for _, tc := range julianDayData {
		got := GregorianToCJDN(tc.date.Year(), int(tc.date.Month()), tc.date.Day())
		assert.Equal(t, tc.cjdn, got, "date %s", tc.date.Format(time.DateOnly))
	}
}

func TestCJDNToGregorian(t *testing.T) {
	t.Parallel()

	for _, tc := range julianDayData {
		y, m, d := CJDNToGregorian(tc.cjdn)
		assert.Equal(t, tc.date.Year(), y, "cjdn %d", tc.cjdn)
		assert.Equal(t, int(tc.date.Month()), m, "cjdn %d", tc.cjdn)
		assert.Equal(t, tc.date.Day(), d, "cjdn %d", tc.cjdn)
	}
}

// TestJulianBridge_MatchesTimePackage walks every day of the supported span
// and compares with the day count of the time package.
func TestJulianBridge_MatchesTimePackage(t *testing.T) {
	t.Parallel()

	start := time.Date(1937, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2078, time.January, 1, 0, 0, 0, 0, time.UTC)
	base := GregorianToCJDN(1937, 1, 1)

	for day, i := start, 0; day.Before(end); day, i = day.AddDate(0, 0, 1), i+1 {
		cjdn := GregorianToCJDN(day.Year(), int(day.Month()), day.Day())
		if cjdn != base+i {
			t.Fatalf("GregorianToCJDN(%s) = %d, want %d", day.Format(time.DateOnly), cjdn, base+i)
		}
		y, m, d := CJDNToGregorian(cjdn)
		if y != day.Year() || m != int(day.Month()) || d != day.Day() {
			t.Fatalf("CJDNToGregorian(%d) = %04d-%02d-%02d, want %s", cjdn, y, m, d, day.Format(time.DateOnly))
		}
	}
}

func TestFloorDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, floorDiv(tc.a, tc.b), "%d / %d", tc.a, tc.b)
	}
}
