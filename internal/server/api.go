package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tartampluch/go-hijri"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/i18n"
	"golang.org/x/text/language"
)

// DateJSON is the API view of one day in both calendars.
type DateJSON struct {
	Hijri          string `json:"hijri"`
	Gregorian      string `json:"gregorian"`
	JulianDay      int    `json:"julian_day"`
	MonthLength    int    `json:"month_length"`
	Weekday        string `json:"weekday"`
	HijriMonth     string `json:"hijri_month"`
	GregorianMonth string `json:"gregorian_month"`
	Lang           string `json:"lang"`
}

// MonthJSON describes one Hijri month.
type MonthJSON struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Name   string `json:"name"`
	Length int    `json:"length"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Lang   string `json:"lang"`
}

type errorJSON struct {
	Error string `json:"error"`
}

func (s *CalendarServer) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	calendar := q.Get(config.QueryCalendar)
	if calendar == "" {
		calendar = config.CalendarGregorian
	}

	value := q.Get(config.QueryDate)
	var (
		d   hijri.Date
		err error
	)
	switch {
	case value == "":
		err = fmt.Errorf("%s: %s", config.ErrQueryMissing, config.QueryDate)
	case calendar == config.CalendarHijri:
		d, err = hijri.ParseHijri(value)
	case calendar == config.CalendarGregorian:
		d, err = hijri.ParseGregorian(value)
	default:
		err = fmt.Errorf("%s: %q", config.ErrCalendarKind, calendar)
	}
	s.metrics.conversion(calendar, err)

	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	tag := s.lang(r)
	writeJSON(w, http.StatusOK, newDateJSON(s.catalog(), tag, d))
}

func (s *CalendarServer) handleToday(w http.ResponseWriter, r *http.Request) {
	clock := s.Clock
	if clock == nil {
		clock = hijri.RealClock{}
	}
	d, err := hijri.TodayFrom(clock)
	if err != nil {
		slog.Error(config.HTTPMsgInternalErr,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		writeJSON(w, http.StatusInternalServerError, errorJSON{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, newDateJSON(s.catalog(), s.lang(r), d))
}

func (s *CalendarServer) handleMonth(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, config.QueryYear)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	month, err := queryInt(r, config.QueryMonth)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}

	length, err := hijri.MonthLength(year, month)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	start := hijri.MustFromHijri(year, month, 1)
	end := hijri.MustFromHijri(year, month, length)

	c, tag := s.catalog(), s.lang(r)
	writeJSON(w, http.StatusOK, MonthJSON{
		Year:   year,
		Month:  month,
		Name:   c.HijriMonth(tag, month),
		Length: length,
		Start:  start.GregorianString(),
		End:    end.GregorianString(),
		Lang:   c.Match(tag).String(),
	})
}

func newDateJSON(c *i18n.Catalog, tag language.Tag, d hijri.Date) DateJSON {
	return DateJSON{
		Hijri:          d.String(),
		Gregorian:      d.GregorianString(),
		JulianDay:      d.JulianDay(),
		MonthLength:    d.MonthLen(),
		Weekday:        c.Weekday(tag, d.Weekday()),
		HijriMonth:     c.HijriMonth(tag, d.Month()),
		GregorianMonth: c.GregorianMonth(tag, d.GregorianMonth()),
		Lang:           c.Match(tag).String(),
	}
}

func (s *CalendarServer) catalog() *i18n.Catalog {
	if s.Catalog == nil {
		return i18n.Default()
	}
	return s.Catalog
}

// lang reads the lang parameter, then Accept-Language. Unknown or malformed
// values fall back to English in the catalog.
func (s *CalendarServer) lang(r *http.Request) language.Tag {
	if v := r.URL.Query().Get(config.QueryLang); v != "" {
		return language.Make(v)
	}
	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get(config.HeaderAcceptLang)); err == nil && len(tags) > 0 {
		return tags[0]
	}
	return language.English
}

func (s *CalendarServer) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	slog.Debug(config.MsgConvertAPI,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyURL, r.URL.String(),
		config.LogKeyError, err,
	)
	writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, fmt.Errorf("%s: %s", config.ErrQueryMissing, key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", config.ErrQueryInt, key, err)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
