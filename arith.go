package hijri

import "cmp"

// Add returns d shifted by dur days. Leaving the supported range is an
// error wrapping ErrInvalidRange; the result is never clamped.
func (d Date) Add(dur Duration) (Date, error) {
	n := int(dur)
	// Checked before adding so huge durations cannot overflow.
	if n > maxJulianDay-d.cjdn || n < minJulianDay-d.cjdn {
		return Date{}, &RangeError{Field: "day offset", Value: n, Min: minJulianDay - d.cjdn, Max: maxJulianDay - d.cjdn}
	}
	return FromJulianDay(d.cjdn + n)
}

// AddDays is shorthand for d.Add(Days(n)).
func (d Date) AddDays(n int) (Date, error) { return d.Add(Days(n)) }

// Subtract returns d shifted back by dur days. Errors report dur itself
// against the range of offsets that can be subtracted from d.
func (d Date) Subtract(dur Duration) (Date, error) {
	n := int(dur)
	if n > d.cjdn-minJulianDay || n < d.cjdn-maxJulianDay {
		return Date{}, &RangeError{Field: "day offset", Value: n, Min: d.cjdn - maxJulianDay, Max: d.cjdn - minJulianDay}
	}
	return FromJulianDay(d.cjdn - n)
}

// Sub returns the number of days from u to d.
func (d Date) Sub(u Date) Duration { return Duration(d.cjdn - u.cjdn) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after u.
func (d Date) Compare(u Date) int { return cmp.Compare(d.cjdn, u.cjdn) }

// Before reports whether d is before u.
func (d Date) Before(u Date) bool { return d.cjdn < u.cjdn }

// After reports whether d is after u.
func (d Date) After(u Date) bool { return d.cjdn > u.cjdn }

// Equal reports whether d and u are the same day.
func (d Date) Equal(u Date) bool { return d.cjdn == u.cjdn }
