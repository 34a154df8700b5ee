package umalqura

// GregorianToCJDN returns the Chronological Julian Day Number of a proleptic
// Gregorian date. Out-of-range components are not rejected; the formula is
// simply evaluated.
func GregorianToCJDN(year, month, day int) int {
	// January and February count as months 13 and 14 of the previous year.
	if month < 3 {
		year--
		month += 12
	}

	// Julian/Gregorian calendar correction, taken from the century.
	century := floorDiv(year, 100)
	correction := 2 - century + floorDiv(century, 4)

	return floorDiv(1461*(year+4716), 4) +
		floorDiv(306001*(month+1), 10000) +
		day + correction - 1524
}

// CJDNToGregorian returns the proleptic Gregorian date of a Chronological
// Julian Day Number.
func CJDNToGregorian(cjdn int) (year, month, day int) {
	alpha := floorDiv(cjdn*100-186721625, 3652425)
	a := cjdn + 1 + alpha - floorDiv(alpha, 4)
	b := a + 1524
	c := floorDiv(b*100-12210, 36525)
	d := floorDiv(36525*c, 100)
	e := floorDiv((b-d)*10000, 306001)

	day = b - d - floorDiv(306001*e, 10000)
	if e > 13 {
		month = e - 13
	} else {
		month = e - 1
	}
	if month > 2 {
		year = c - 4716
	} else {
		year = c - 4715
	}

	// There is no year zero.
	if year <= 0 {
		year--
	}
	return year, month, day
}

// floorDiv divides rounding towards negative infinity, as the JD formulas
// are defined on floor().
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
