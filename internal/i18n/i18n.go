// Package i18n serves the month names, weekday names and feed messages of
// the embedded locale catalogs.
package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-hijri/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Names holds the month and weekday names of one language.
type Names struct {
	Tag             language.Tag
	HijriMonths     [12]string
	GregorianMonths [12]string
	Weekdays        [7]string // indexed by time.Weekday
}

// Catalog resolves localized strings. It is immutable once built and safe
// for concurrent use.
type Catalog struct {
	tags       []language.Tag // tags[0] is the fallback language
	matcher    language.Matcher
	localizers []*goi18n.Localizer
	names      []Names
	quiet      bool // never log
}

// Default returns the process-wide catalog holding every embedded language.
var Default = sync.OnceValue(func() *Catalog { return New() })

// Quiet returns the process-wide catalog that never logs. Library code
// outside the application uses it.
var Quiet = sync.OnceValue(func() *Catalog { return NewQuiet() })

// New loads the embedded locale files. When langs is not empty only those
// languages are kept. The default language is always loaded.
func New(langs ...string) *Catalog {
	return load(false, langs)
}

// NewQuiet is like New but the catalog logs nothing, neither while loading
// nor on missing keys.
func NewQuiet(langs ...string) *Catalog {
	return load(true, langs)
}

func load(quiet bool, langs []string) *Catalog {
	c := &Catalog{quiet: quiet}
	log := c.logger()

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		log.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	detected := []string{config.DefaultLanguage}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			log.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			log.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}
		if langCode != config.DefaultLanguage && len(langs) > 0 && !slices.Contains(langs, langCode) {
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			log.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		log.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
		if langCode != config.DefaultLanguage {
			detected = append(detected, langCode)
		}
	}

	for _, code := range detected {
		tag := language.Make(code)
		c.tags = append(c.tags, tag)
		c.localizers = append(c.localizers, goi18n.NewLocalizer(bundle, code))
	}
	c.matcher = language.NewMatcher(c.tags)

	// Name tables are resolved once so lookups never hit the bundle.
	for i, tag := range c.tags {
		n := Names{Tag: tag}
		for m := range n.HijriMonths {
			n.HijriMonths[m] = c.localize(i, &goi18n.LocalizeConfig{MessageID: config.TKeyHijriMonthPrefix + strconv.Itoa(m+1)})
			n.GregorianMonths[m] = c.localize(i, &goi18n.LocalizeConfig{MessageID: config.TKeyGregorianMonthPrefix + strconv.Itoa(m+1)})
		}
		for wd := range n.Weekdays {
			n.Weekdays[wd] = c.localize(i, &goi18n.LocalizeConfig{MessageID: config.TKeyWeekdayPrefix + strconv.Itoa(wd)})
		}
		c.names = append(c.names, n)
	}
	return c
}

// Tags lists the loaded languages, fallback first.
func (c *Catalog) Tags() []language.Tag {
	return slices.Clone(c.tags)
}

// Match returns the loaded language closest to tag.
func (c *Catalog) Match(tag language.Tag) language.Tag {
	return c.tags[c.index(tag)]
}

// Names returns the name tables of the language closest to tag.
func (c *Catalog) Names(tag language.Tag) Names {
	return c.names[c.index(tag)]
}

// HijriMonth returns the name of Hijri month m (1-12), or "" if m is out of range.
func (c *Catalog) HijriMonth(tag language.Tag, m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return c.names[c.index(tag)].HijriMonths[m-1]
}

// GregorianMonth returns the name of a Gregorian month, or "" if out of range.
func (c *Catalog) GregorianMonth(tag language.Tag, m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return c.names[c.index(tag)].GregorianMonths[m-1]
}

// Weekday returns the name of a weekday, or "" if out of range.
func (c *Catalog) Weekday(tag language.Tag, wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return ""
	}
	return c.names[c.index(tag)].Weekdays[wd]
}

// Message translates id with the given template data. A missing key is
// returned as is.
func (c *Catalog) Message(tag language.Tag, id string, data map[string]any) string {
	return c.localize(c.index(tag), &goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
}

// Plural translates id choosing the plural form for count.
func (c *Catalog) Plural(tag language.Tag, id string, count int, data map[string]any) string {
	return c.localize(c.index(tag), &goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  count,
	})
}

func (c *Catalog) index(tag language.Tag) int {
	_, i, conf := c.matcher.Match(tag)
	if conf == language.No {
		return 0
	}
	return i
}

func (c *Catalog) localize(i int, lc *goi18n.LocalizeConfig) string {
	// A message found only in the fallback language comes back with an error.
	msg, err := c.localizers[i].Localize(lc)
	if err != nil {
		c.logger().Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, c.tags[i].String(),
			config.LogKeyKey, lc.MessageID,
			config.LogKeyError, err,
		)
	}
	if msg == "" {
		return lc.MessageID
	}
	return msg
}

func (c *Catalog) logger() *slog.Logger {
	if c.quiet {
		return slog.New(slog.DiscardHandler)
	}
	return slog.Default()
}
