package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/settings"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), config.FilePermUserRW))
	return path
}

func validSettings() settings.Settings {
	return settings.Settings{
		Port:          config.DefaultPort,
		SourceMode:    config.SourceModeLocal,
		LocalPath:     "/tmp/contacts.vcf",
		Language:      config.DefaultLanguage,
		RefreshMin:    config.DefaultRefreshMin,
		ReminderValue: config.DefaultReminderValue,
		ReminderUnit:  config.UnitDays,
		ReminderDir:   config.DirBefore,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOHIJRI_LOCAL_PATH", "/tmp/contacts.vcf")

	s, err := settings.Load(settings.NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPort, s.Port)
	assert.Equal(t, config.SourceModeLocal, s.SourceMode)
	assert.Equal(t, "/tmp/contacts.vcf", s.LocalPath)
	assert.Equal(t, config.DefaultLanguage, s.Language)
	assert.Equal(t, config.DefaultRefreshMin, s.RefreshMin)
	assert.False(t, s.ReminderEnabled)
	assert.Equal(t, config.UnitDays, s.ReminderUnit)
	assert.Equal(t, config.DirBefore, s.ReminderDir)
}

func TestLoad_File(t *testing.T) {
	path := writeSettings(t, `
server_port: "19000"
source_mode: web
web_url: https://dav.example.org/contacts.vcf
web_user: alice
language: ar
refresh_interval_min: 15
reminder_enabled: true
reminder_value: 2
reminder_unit: h
reminder_direction: after
`)

	s, err := settings.Load(settings.NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "19000", s.Port)
	assert.Equal(t, config.SourceModeWeb, s.SourceMode)
	assert.Equal(t, "https://dav.example.org/contacts.vcf", s.WebURL)
	assert.Equal(t, "alice", s.WebUser)
	assert.Equal(t, "ar", s.Language)
	assert.Equal(t, 15, s.RefreshMin)
	assert.True(t, s.ReminderEnabled)
	assert.Equal(t, 2, s.ReminderValue)
	assert.Equal(t, config.UnitHours, s.ReminderUnit)
	assert.Equal(t, config.DirAfter, s.ReminderDir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeSettings(t, "server_port: \"19000\"\nlocal_path: /a.vcf\n")
	t.Setenv("GOHIJRI_SERVER_PORT", "19001")
	t.Setenv("GOHIJRI_WEB_PASS", "s3cret")

	s, err := settings.Load(settings.NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "19001", s.Port)
	assert.Equal(t, "s3cret", s.WebPass)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := settings.Load(settings.NewViper(), filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsLoad)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeSettings(t, "server_port: [unterminated\n")

	_, err := settings.Load(settings.NewViper(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsLoad)
}

func TestLoad_Rejected(t *testing.T) {
	path := writeSettings(t, "local_path: /a.vcf\nlanguage: fr\n")

	_, err := settings.Load(settings.NewViper(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsInvalid)
}

func TestSettings_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*settings.Settings)
		wantField string
	}{
		{"Port zero", func(s *settings.Settings) { s.Port = "0" }, "Port"},
		{"Port too high", func(s *settings.Settings) { s.Port = "65536" }, "Port"},
		{"Port not a number", func(s *settings.Settings) { s.Port = "http" }, "Port"},
		{"Port empty", func(s *settings.Settings) { s.Port = "" }, "Port"},
		{"Unknown mode", func(s *settings.Settings) { s.SourceMode = "ftp" }, "SourceMode"},
		{"Local without path", func(s *settings.Settings) { s.LocalPath = "" }, "LocalPath"},
		{"Web without URL", func(s *settings.Settings) { s.SourceMode = config.SourceModeWeb }, "WebURL"},
		{"Web with bad URL", func(s *settings.Settings) {
			s.SourceMode = config.SourceModeWeb
			s.WebURL = "not a url"
		}, "WebURL"},
		{"Unsupported language", func(s *settings.Settings) { s.Language = "de" }, "Language"},
		{"Negative interval", func(s *settings.Settings) { s.RefreshMin = -1 }, "RefreshMin"},
		{"Negative reminder", func(s *settings.Settings) { s.ReminderValue = -1 }, "ReminderValue"},
		{"Unknown unit", func(s *settings.Settings) { s.ReminderUnit = "w" }, "ReminderUnit"},
		{"Unknown direction", func(s *settings.Settings) { s.ReminderDir = "during" }, "ReminderDir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := validSettings()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}

func TestSettings_Validate_Accepts(t *testing.T) {
	t.Parallel()

	s := validSettings()
	assert.NoError(t, s.Validate())

	web := validSettings()
	web.SourceMode = config.SourceModeWeb
	web.LocalPath = ""
	web.WebURL = "https://dav.example.org/addressbook/"
	assert.NoError(t, web.Validate())

	for _, lang := range config.SupportedLanguages {
		s := validSettings()
		s.Language = lang
		assert.NoError(t, s.Validate(), lang)
	}

	for _, port := range []string{"1", "65535"} {
		s := validSettings()
		s.Port = port
		assert.NoError(t, s.Validate(), port)
	}
}
