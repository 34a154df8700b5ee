// Package app runs the periodic anniversary sync behind the feed server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/tartampluch/go-hijri"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/engine"
	"github.com/tartampluch/go-hijri/internal/i18n"
	"github.com/tartampluch/go-hijri/internal/server"
	"github.com/tartampluch/go-hijri/internal/settings"
	"github.com/zalando/go-keyring"
	"golang.org/x/text/language"
)

// Service keeps the served calendar in step with the contacts source.
type Service struct {
	Settings *settings.Settings
	Server   *server.CalendarServer
	Fetcher  engine.VCardFetcher
	Clock    hijri.Clock // Injected clock for testability
	Catalog  *i18n.Catalog

	refresh chan struct{}

	contactsMut sync.RWMutex
	contacts    []engine.AnniversaryEntry
	today       int
}

// New wires a service around an already constructed server and fetcher.
func New(s *settings.Settings, srv *server.CalendarServer, fetcher engine.VCardFetcher) *Service {
	return &Service{
		Settings: s,
		Server:   srv,
		Fetcher:  fetcher,
		Clock:    hijri.RealClock{},
		Catalog:  i18n.Default(),
		refresh:  make(chan struct{}, config.ChannelBufferSize),
	}
}

// Run starts the HTTP server and the sync worker, and blocks until ctx is
// cancelled or the server fails.
func (svc *Service) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, config.ChannelBufferSize)
	go func() {
		serverErr <- svc.Server.Start(ctx)
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.backgroundWorker(ctx)
	}()

	var err error
	select {
	case <-ctx.Done():
		err = <-serverErr
	case err = <-serverErr:
		slog.Error(config.ErrServerStartup,
			config.LogKeyComponent, config.CompApp,
			config.LogKeyError, err)
	}
	cancel()
	wg.Wait()
	return err
}

// Refresh asks the worker for an immediate sync. It never blocks.
func (svc *Service) Refresh() {
	select {
	case svc.refresh <- struct{}{}:
	default:
		slog.Debug(config.MsgRefreshQueued, config.LogKeyComponent, config.CompApp)
	}
}

// Contacts returns a copy of the entries seen by the last successful sync.
func (svc *Service) Contacts() []engine.AnniversaryEntry {
	svc.contactsMut.RLock()
	defer svc.contactsMut.RUnlock()
	return slices.Clone(svc.contacts)
}

// TodayCount returns how many anniversaries fell on the day of the last sync.
func (svc *Service) TodayCount() int {
	svc.contactsMut.RLock()
	defer svc.contactsMut.RUnlock()
	return svc.today
}

// backgroundWorker manages the periodic synchronization schedule.
func (svc *Service) backgroundWorker(ctx context.Context) {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	_ = svc.performSync(ctx, false)

	interval := svc.interval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart, config.LogKeyInterval, interval)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-svc.refresh:
			_ = svc.performSync(ctx, true)
			ticker.Reset(interval)

		case <-ticker.C:
			_ = svc.performSync(ctx, false)
		}
	}
}

// interval returns the sync period. Zero or negative settings use the default.
func (svc *Service) interval() time.Duration {
	val := svc.Settings.RefreshMin
	if val <= config.DisabledInterval {
		val = config.DefaultRefreshMin
	}
	return time.Duration(val) * time.Minute
}

// performSync executes the pipeline (Fetch -> Parse -> Generate) and
// publishes the result.
func (svc *Service) performSync(ctx context.Context, manual bool) error {
	slog.Info(config.MsgSyncReq,
		config.LogKeyComponent, config.CompApp,
		config.LogKeyManual, manual)

	gen := &engine.Generator{
		Clock:   svc.Clock,
		Fetcher: svc.Fetcher,
		Catalog: svc.Catalog,
		Lang:    language.Make(svc.Settings.Language),
	}

	icsData, contacts, countToday, err := gen.RunSync(ctx, svc.loadSyncConfig())
	if err != nil {
		slog.Error(config.MsgSyncFailed,
			config.LogKeyComponent, config.CompApp,
			config.LogKeyError, err)
		return err
	}

	svc.contactsMut.Lock()
	svc.contacts = contacts
	svc.today = countToday
	svc.contactsMut.Unlock()

	svc.Server.Update(icsData)

	slog.Info(config.MsgSyncDone,
		config.LogKeyComponent, config.CompApp,
		config.LogKeyCount, len(contacts),
		config.LogKeyToday, countToday)
	return nil
}

// loadSyncConfig assembles the engine configuration from the settings and
// the OS keyring.
func (svc *Service) loadSyncConfig() engine.SyncConfig {
	s := svc.Settings
	cfg := engine.SyncConfig{
		Mode:      s.SourceMode,
		LocalPath: s.LocalPath,
		Web: engine.Source{
			URL:  s.WebURL,
			User: s.WebUser,
			Pass: s.WebPass,
		},
		ReminderTrigger: ReminderTrigger(s),
	}

	if cfg.Web.User != "" && cfg.Web.Pass == "" {
		if p, err := keyring.Get(config.KeyringService, cfg.Web.User); err == nil {
			cfg.Web.Pass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyComponent, config.CompApp,
				config.LogKeyUser, cfg.Web.User,
				config.LogKeyError, err)
		}
	}
	return cfg
}

// ReminderTrigger renders the alarm offset of s as an ISO 8601 duration, or
// "" when reminders are off.
func ReminderTrigger(s *settings.Settings) string {
	if !s.ReminderEnabled {
		return ""
	}

	sign := config.ISOPeriodPrefix
	if s.ReminderDir != config.DirAfter {
		sign = config.ISONegativePrefix
	}

	switch s.ReminderUnit {
	case config.UnitHours:
		return fmt.Sprintf("%s%s%d%s", sign, config.ISOTimePrefix, s.ReminderValue, config.ISOHour)
	case config.UnitMinutes:
		return fmt.Sprintf("%s%s%d%s", sign, config.ISOTimePrefix, s.ReminderValue, config.ISOMinute)
	default:
		return fmt.Sprintf("%s%d%s", sign, s.ReminderValue, config.ISODay)
	}
}
