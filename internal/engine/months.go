package engine

import (
	"fmt"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-hijri"
	"github.com/tartampluch/go-hijri/internal/config"
)

// MonthStarts renders an iCalendar feed with one all-day event on the first
// day of every Hijri month from firstYear through lastYear.
func (g *Generator) MonthStarts(firstYear, lastYear int) ([]byte, error) {
	if firstYear > lastYear {
		return nil, fmt.Errorf("%s: %d > %d", config.ErrYearRange, firstYear, lastYear)
	}
	for _, y := range []int{firstYear, lastYear} {
		if _, err := hijri.MonthLength(y, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrYearRange, err)
		}
	}

	cal := newCalendar(g.message(config.TKeyCalMonthsName, nil, config.ICalMonthsCal))
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(g.clock().Now().UTC())

	for y := firstYear; y <= lastYear; y++ {
		for m := 1; m <= 12; m++ {
			start, err := hijri.FromHijri(y, m, 1)
			if err != nil {
				return nil, err
			}

			event := ical.NewEvent()
			event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatMonthUID, y, m, config.ICalDomain))
			event.Props.SetText(config.PropSummary, g.monthTitle(start))
			event.Props.SetText(config.PropDescription, g.monthLength(start.MonthLen()))

			dtStartProp := ical.NewProp(config.PropDTStart)
			dtStartProp.SetDate(start.Time())
			event.Props.Set(dtStartProp)
			event.Props.Set(dtStampProp)

			cal.Children = append(cal.Children, event.Component)
		}
	}
	return encodeCalendar(cal)
}

func (g *Generator) monthTitle(d hijri.Date) string {
	if g.Catalog == nil {
		return fmt.Sprintf(config.FallbackMonthStart, d.MonthName(), d.Year())
	}
	return g.Catalog.Message(g.Lang, config.TKeyEvtMonthStart, map[string]any{
		"Month": g.Catalog.HijriMonth(g.Lang, d.Month()),
		"Year":  d.Year(),
	})
}

func (g *Generator) monthLength(n int) string {
	if g.Catalog == nil {
		return fmt.Sprintf(config.FallbackMonthLength, n)
	}
	return g.Catalog.Plural(g.Lang, config.TKeyEvtMonthLength, n, map[string]any{"Length": n})
}
