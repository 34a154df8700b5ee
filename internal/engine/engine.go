package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-hijri"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/i18n"
	"golang.org/x/text/language"
)

// uidSpace is the UUID namespace of every generated event.
var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(config.UIDNamespace))

// SyncConfig contains all parameters required to perform a synchronization.
type SyncConfig struct {
	Mode            string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath       string // Absolute path to the .vcf file
	Web             Source // Remote collection for config.SourceModeWeb
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D")
}

// Generator turns vCard birthdays into Hijri anniversary events.
type Generator struct {
	Clock   hijri.Clock   // Interface for time mocking.
	Fetcher VCardFetcher  // Interface for network abstraction.
	Catalog *i18n.Catalog // Localized summaries; nil uses the English fallbacks.
	Lang    language.Tag
}

// stats counts what a generation pass saw.
type stats struct{ processed, withBday, today int }

// RunSync executes the fetching, parsing, and generation pipeline.
// It returns the ICS data, the list of contacts, the count of anniversaries
// falling today, and any error.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) ([]byte, []AnniversaryEntry, int, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	reader, err := g.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	ics, contacts, count, err := g.generateCalendar(ctx, reader, cfg.ReminderTrigger)
	if err == nil {
		log.Debug("Sync finished", config.LogKeyDuration, time.Since(start).Milliseconds())
	}
	return ics, contacts, count, err
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.Web.URL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.Web)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// newCalendar returns a VCALENDAR carrying the standard headers.
func newCalendar(name string) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, name)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)
	return cal
}

func encodeCalendar(cal *ical.Calendar) ([]byte, error) {
	var buf bytes.Buffer
	if len(cal.Children) == 0 {
		// Clients flag an empty VCALENDAR from the encoder as invalid.
		buf.WriteString(config.StubVCalendar)
		return buf.Bytes(), nil
	}
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// generateCalendar parses the vCard stream and constructs the iCalendar object.
func (g *Generator) generateCalendar(ctx context.Context, r io.Reader, reminderTrigger string) ([]byte, []AnniversaryEntry, int, error) {
	clock := g.clock()
	now := clock.Now()
	today, err := hijri.TodayFrom(clock)
	if err != nil {
		return nil, nil, 0, err
	}

	cal := newCalendar(g.message(config.TKeyCalName, nil, config.ICalCalName))
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	decoder := vcard.NewDecoder(r)
	var st stats
	var contacts []AnniversaryEntry

	for {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		// The stream cannot be resumed past a size overflow.
		if errors.Is(err, ErrTooLarge) {
			return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		st.processed++
		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}

		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		birth, err := hijri.FromTime(birthDate)
		if err != nil {
			slog.Info(config.MsgSkippedRange,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyDOB, birthDate.Format(config.DateFormatFullDash),
				config.LogKeyError, err)
			continue
		}
		st.withBday++

		// Deterministic UID for stability across refreshes.
		input := fmt.Sprintf(config.FormatHashInput, name, birthDate.Format(config.DateFormatFullDash), config.UIDNamespace)
		uidBase := uuid.NewSHA1(uidSpace, []byte(input)).String()

		next, ageNext := nextOccurrence(today, birth)
		contacts = append(contacts, AnniversaryEntry{
			UID:            uidBase,
			Name:           name,
			DateOfBirth:    birthDate,
			BirthHijri:     birth,
			NextOccurrence: next,
			AgeNext:        ageNext,
		})

		events, isToday := g.createEvents(name, birth, reminderTrigger, today, uidBase)
		if isToday {
			st.today++
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, name,
				config.LogKeyHijri, birth.String())
		}

		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	ics, err := encodeCalendar(cal)
	if err != nil {
		return nil, nil, 0, err
	}
	g.logSuccess(st)
	return ics, contacts, st.today, nil
}

// logSuccess logs the final statistics of the generation process.
func (g *Generator) logSuccess(st stats) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, st.processed),
			slog.Int(config.LogKeyFound, st.withBday),
			slog.Int(config.LogKeyToday, st.today),
		),
	)
}

// anniversary returns the day birth recurs on in Hijri year y. A day past
// the end of a shorter month is clamped to its last day.
func anniversary(birth hijri.Date, y int) (hijri.Date, bool) {
	length, err := hijri.MonthLength(y, birth.Month())
	if err != nil {
		return hijri.Date{}, false
	}
	d, err := hijri.FromHijri(y, birth.Month(), min(birth.Day(), length))
	if err != nil {
		return hijri.Date{}, false
	}
	return d, true
}

// nextOccurrence finds the first anniversary on or after today.
func nextOccurrence(today, birth hijri.Date) (hijri.Date, int) {
	for _, y := range []int{today.Year(), today.Year() + 1} {
		if y < birth.Year() {
			continue
		}
		d, ok := anniversary(birth, y)
		if !ok {
			continue
		}
		if !d.Before(today) {
			return d, y - birth.Year()
		}
	}
	return hijri.Date{}, 0
}

// createEvents generates events for the Hijri years around today. No event is
// created before the person is born.
func (g *Generator) createEvents(name string, birth hijri.Date, reminderTrigger string, today hijri.Date, uidBase string) ([]*ical.Event, bool) {
	var events []*ical.Event
	isToday := false

	for y := today.Year() - config.AnniversaryYearSpan; y <= today.Year()+config.AnniversaryYearSpan; y++ {
		if y < birth.Year() {
			continue
		}
		day, ok := anniversary(birth, y)
		if !ok {
			continue
		}
		if day.Equal(today) {
			isToday = true
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		summary := g.summary(name, y-birth.Year())
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(day.Time())
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}
		events = append(events, event)
	}
	return events, isToday
}

// summary renders the event title for a given Hijri age.
func (g *Generator) summary(name string, age int) string {
	data := map[string]any{"Name": name, "Age": age}
	if age == 0 {
		return g.message(config.TKeyEvtSummaryBirth, data, fmt.Sprintf(config.FallbackSummaryBirth, name))
	}
	if g.Catalog == nil {
		return fmt.Sprintf(config.FallbackSummaryAge, name, age)
	}
	return g.Catalog.Plural(g.Lang, config.TKeyEvtSummaryAge, age, data)
}

// message translates id, or returns fallback when no catalog is set.
func (g *Generator) message(id string, data map[string]any, fallback string) string {
	if g.Catalog == nil {
		return fallback
	}
	return g.Catalog.Message(g.Lang, id, data)
}

func (g *Generator) clock() hijri.Clock {
	if g.Clock == nil {
		return hijri.RealClock{}
	}
	return g.Clock
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

// parseDate handles the vCard date forms that carry a year. Truncated
// --MM-DD dates cannot be placed in the Hijri calendar and are rejected.
func parseDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
