package hijri

import "strconv"

// Duration is a signed number of days.
type Duration int

// Days returns a Duration of n days.
func Days(n int) Duration { return Duration(n) }

// Days returns the number of days in d.
func (d Duration) Days() int { return int(d) }

// String formats d as a day count, e.g. "16d" or "-3d".
func (d Duration) String() string { return strconv.Itoa(int(d)) + "d" }
