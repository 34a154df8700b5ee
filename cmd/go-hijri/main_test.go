package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri/internal/config"
)

type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, c *cli, args ...string) (string, error) {
	t.Helper()
	if c == nil {
		c = &cli{}
	}
	root := newRootCmd(c)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func fixedClock() *cli {
	return &cli{clock: MockClock{CurrentTime: time.Date(2025, 10, 21, 8, 0, 0, 0, time.UTC)}}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Gregorian default layout", []string{"convert", "2000-07-31"}, "1421-04-29 (2000-07-31)\n"},
		{"Hijri input", []string{"convert", "--from", "hijri", "1400/11/19"}, "1400-11-19 (1980-09-28)\n"},
		{"Custom layout in English", []string{"convert", "--format", "%d %M %Y, %D", "--lang", "en", "2000-07-31"}, "29 Rabi' al-Thani 1421, Monday\n"},
		{"Month length token", []string{"convert", "--format", "%l", "2000-07-31"}, "29\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, nil, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"No argument", []string{"convert"}, config.ErrArgCount},
		{"Unknown calendar", []string{"convert", "--from", "julian", "2000-01-01"}, config.ErrCalendarKind},
		{"Out of range", []string{"convert", "2077-01-01"}, "out of range"},
		{"Malformed", []string{"convert", "tomorrow"}, "invalid date syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, nil, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToday(t *testing.T) {
	out, err := execute(t, fixedClock(), "today", "--format", "%Y/%m/%d")
	require.NoError(t, err)
	assert.Equal(t, "1447/04/29\n", out)
}

func TestMonth(t *testing.T) {
	out, err := execute(t, nil, "month", "1447", "9")
	require.NoError(t, err)
	assert.Equal(t, "1447-09 Ramadan: 30 days, 2026-02-18 .. 2026-03-19\n", out)

	out, err = execute(t, nil, "month", "1364", "8")
	require.NoError(t, err)
	assert.Contains(t, out, ": 28 days,")
}

func TestMonth_Errors(t *testing.T) {
	_, err := execute(t, nil, "month", "1447")
	assert.ErrorContains(t, err, config.ErrArgCount)

	_, err = execute(t, nil, "month", "1447", "ninth")
	assert.ErrorContains(t, err, config.ErrArgInt)

	_, err = execute(t, nil, "month", "1500", "1")
	assert.ErrorContains(t, err, "out of range")
}

func TestCalendar_Stdout(t *testing.T) {
	out, err := execute(t, fixedClock(), "calendar", "--from", "1447", "--to", "1447")
	require.NoError(t, err)

	assert.Equal(t, 12, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:month-1447-09@gohijri")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20260218")
}

func TestCalendar_DefaultsToCurrentYear(t *testing.T) {
	out, err := execute(t, fixedClock(), "calendar")
	require.NoError(t, err)

	assert.Equal(t, 12, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:month-1447-01@gohijri")
}

func TestCalendar_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "months.ics")

	out, err := execute(t, fixedClock(), "calendar", "--from", "1446", "--to", "1447", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 24, strings.Count(string(data), "BEGIN:VEVENT"))
}

func TestCalendar_InvalidRange(t *testing.T) {
	_, err := execute(t, fixedClock(), "calendar", "--from", "1448", "--to", "1447")
	assert.ErrorContains(t, err, config.ErrYearRange)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, config.AppName+" version "+config.Version))
}

func TestServe_InvalidSettings(t *testing.T) {
	// The default source is a local file, which requires a path.
	_, err := execute(t, nil, "serve", "--port", "18096")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsInvalid)

	_, err = execute(t, nil, "serve", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrSettingsLoad)
}

func TestServe_FlagsReachSettings(t *testing.T) {
	_, err := execute(t, nil, "serve", "--source", "web", "--url", "::bad::")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WebURL")
}

func TestSetupLogging_SkippedWithoutHook(t *testing.T) {
	c := &cli{}
	_, err := execute(t, c, "version")
	require.NoError(t, err)
	assert.Nil(t, c.logCloser)
}
