package hijri

import (
	"strconv"
	"strings"

	"github.com/tartampluch/go-hijri/internal/i18n"
	"golang.org/x/text/language"
)

// Names holds the display names of a date in one language.
type Names struct {
	Month          string // Hijri month
	Day            string // weekday
	GregorianMonth string
	GregorianDay   string // weekday
}

// MonthName returns the Arabic name of the Hijri month.
func (d Date) MonthName() string {
	return i18n.Quiet().HijriMonth(language.Arabic, d.month)
}

// DayName returns the Arabic name of the weekday.
func (d Date) DayName() string {
	if d.IsZero() {
		return ""
	}
	return i18n.Quiet().Weekday(language.Arabic, d.Weekday())
}

// GregorianMonthName returns the English name of the Gregorian month.
func (d Date) GregorianMonthName() string {
	return i18n.Quiet().GregorianMonth(language.English, d.gMonth)
}

// GregorianDayName returns the English name of the weekday.
func (d Date) GregorianDayName() string {
	if d.IsZero() {
		return ""
	}
	return i18n.Quiet().Weekday(language.English, d.Weekday())
}

// NamesIn returns every name of d in the language closest to tag. English
// is used when no catalog matches.
func (d Date) NamesIn(tag language.Tag) Names {
	if d.IsZero() {
		return Names{}
	}
	c := i18n.Quiet()
	wd := c.Weekday(tag, d.Weekday())
	return Names{
		Month:          c.HijriMonth(tag, d.month),
		Day:            wd,
		GregorianMonth: c.GregorianMonth(tag, d.gMonth),
		GregorianDay:   wd,
	}
}

func (d Date) defaultNames() Names {
	return Names{
		Month:          d.MonthName(),
		Day:            d.DayName(),
		GregorianMonth: d.GregorianMonthName(),
		GregorianDay:   d.GregorianDayName(),
	}
}

// Format returns a textual representation of d following layout. Hijri
// names are in Arabic and Gregorian names in English.
//
// Recognized tokens:
//
//	%Y   Hijri year               %gY  Gregorian year
//	%m   Hijri month, 01-12       %gm  Gregorian month, 01-12
//	%d   Hijri day, 01-30         %gd  Gregorian day, 01-31
//	%M   Hijri month name         %gM  Gregorian month name
//	%D   weekday name             %gD  Gregorian weekday name
//	%l   length of the Hijri month
//	%%   a literal %
//
// Any other sequence is copied unchanged.
func (d Date) Format(layout string) string {
	return d.format(layout, d.defaultNames())
}

// FormatIn is like Format but takes every name from the language closest
// to tag.
func (d Date) FormatIn(tag language.Tag, layout string) string {
	return d.format(layout, d.NamesIn(tag))
}

func (d Date) format(layout string, n Names) string {
	var b strings.Builder
	b.Grow(len(layout) + 16)

	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' || i+1 == len(layout) {
			b.WriteByte(c)
			continue
		}

		next := layout[i+1]
		if next == 'g' && i+2 < len(layout) {
			if s, ok := d.gregorianToken(layout[i+2], n); ok {
				b.WriteString(s)
				i += 2
				continue
			}
		}
		if s, ok := d.hijriToken(next, n); ok {
			b.WriteString(s)
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (d Date) hijriToken(c byte, n Names) (string, bool) {
	switch c {
	case 'Y':
		return strconv.Itoa(d.year), true
	case 'm':
		return pad2(d.month), true
	case 'd':
		return pad2(d.day), true
	case 'M':
		return n.Month, true
	case 'D':
		return n.Day, true
	case 'l':
		return strconv.Itoa(d.monthLen), true
	case '%':
		return "%", true
	}
	return "", false
}

func (d Date) gregorianToken(c byte, n Names) (string, bool) {
	switch c {
	case 'Y':
		return strconv.Itoa(d.gYear), true
	case 'm':
		return pad2(int(d.gMonth)), true
	case 'd':
		return pad2(d.gDay), true
	case 'M':
		return n.GregorianMonth, true
	case 'D':
		return n.GregorianDay, true
	}
	return "", false
}

func pad2(v int) string {
	if v >= 0 && v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
