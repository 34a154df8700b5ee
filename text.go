package hijri

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// String returns the Hijri date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// GregorianString returns the Gregorian date as YYYY-MM-DD.
func (d Date) GregorianString() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.gYear, int(d.gMonth), d.gDay)
}

// MarshalText implements encoding.TextMarshaler using the Hijri
// YYYY-MM-DD form. The zero Date marshals to an empty string.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts what
// MarshalText produces.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseHijri(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseHijri parses a Hijri date written YYYY-MM-DD or YYYY/MM/DD.
func ParseHijri(s string) (Date, error) {
	y, m, d, err := parseTriple(s)
	if err != nil {
		return Date{}, err
	}
	return FromHijri(y, m, d)
}

// ParseGregorian parses a Gregorian date written YYYY-MM-DD or YYYY/MM/DD.
func ParseGregorian(s string) (Date, error) {
	y, m, d, err := parseTriple(s)
	if err != nil {
		return Date{}, err
	}
	return FromGregorian(y, time.Month(m), d)
}

func parseTriple(s string) (y, m, d int, err error) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == '/'
	})
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	var v [3]int
	for i, p := range parts {
		if v[i], err = strconv.Atoi(p); err != nil || v[i] < 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}
	return v[0], v[1], v[2], nil
}
