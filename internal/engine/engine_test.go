package engine_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-hijri"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/engine"
	"github.com/tartampluch/go-hijri/internal/i18n"
	"golang.org/x/text/language"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockFetcher simulates the network layer for unit tests using `testify/mock`.
type MockFetcher struct {
	mock.Mock
}

// Fetch implements the engine.VCardFetcher interface.
func (m *MockFetcher) Fetch(ctx context.Context, src engine.Source) (io.ReadCloser, error) {
	args := m.Called(ctx, src)
	if r := args.Get(0); r != nil {
		return r.(io.ReadCloser), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// hijriToday is 29 Rabi' al-Thani 1447.
var hijriToday = time.Date(2025, 10, 21, 10, 0, 0, 0, time.UTC)

func webGenerator(t *testing.T, vcardContent string) *engine.Generator {
	t.Helper()
	mockFetcher := new(MockFetcher)
	mockFetcher.On("Fetch", mock.Anything, mock.Anything).
		Return(io.NopCloser(strings.NewReader(vcardContent)), nil)
	return &engine.Generator{
		Clock:   MockClock{CurrentTime: hijriToday},
		Fetcher: mockFetcher,
	}
}

var webConfig = engine.SyncConfig{
	Mode: config.SourceModeWeb,
	Web:  engine.Source{URL: "http://test.local"},
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestRunSync_Local_Success(t *testing.T) {
	// Born 1421/04/29, and today is 1447/04/29.
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:John Doe
BDAY:2000-07-31
END:VCARD`

	path := filepath.Join(t.TempDir(), "contacts.vcf")
	require.NoError(t, os.WriteFile(path, []byte(vcardContent), config.FilePermUserRW))

	gen := &engine.Generator{Clock: MockClock{CurrentTime: hijriToday}}
	cfg := engine.SyncConfig{Mode: config.SourceModeLocal, LocalPath: path}

	icsData, contacts, count, err := gen.RunSync(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, 1, count, "Should identify one anniversary today")

	require.Len(t, contacts, 1)
	assert.Equal(t, "John Doe", contacts[0].Name)
	assert.Equal(t, "1421-04-29", contacts[0].BirthHijri.String())
	assert.Equal(t, "1447-04-29", contacts[0].NextOccurrence.String())
	assert.Equal(t, 26, contacts[0].AgeNext)
	assert.Len(t, contacts[0].UID, 36)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR")
	assert.Contains(t, icsStr, "SUMMARY:Hijri birthday: John Doe (26)")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20241101")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20251021")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20261010")
	assert.Equal(t, 3, strings.Count(icsStr, "BEGIN:VEVENT"))
}

func TestRunSync_LocalizedSummary(t *testing.T) {
	gen := webGenerator(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Amina\nBDAY:2000-07-31\nEND:VCARD")
	gen.Catalog = i18n.New()
	gen.Lang = language.English

	icsData, _, _, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "X-WR-CALNAME:Hijri Anniversaries")
	assert.Contains(t, icsStr, "SUMMARY:Amina turns 26 Hijri years")
	assert.Contains(t, icsStr, "SUMMARY:Amina turns 25 Hijri years")
}

func TestRunSync_ClampsShortMonths(t *testing.T) {
	// Born 1421/03/30; Rabi' al-Awwal 1448 has only 29 days.
	gen := webGenerator(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Clamp\nBDAY:2000-07-02\nEND:VCARD")

	icsData, contacts, count, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20241003") // 1446/03/30
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250922") // 1447/03/30
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20260911") // 1448/03/29

	require.Len(t, contacts, 1)
	assert.Equal(t, "1448-03-29", contacts[0].NextOccurrence.String())
	assert.Equal(t, 27, contacts[0].AgeNext)
}

func TestRunSync_BabyBornThisYear(t *testing.T) {
	// Born 1447/02/10: no event in 1446, a birth event in 1447, age 1 in 1448.
	gen := webGenerator(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Baby\nBDAY:2025-08-04\nEND:VCARD")

	icsData, contacts, _, err := gen.RunSync(context.Background(), webConfig)
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250804")
	assert.Contains(t, icsStr, "SUMMARY:Hijri birthday: Baby (birth)")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20260724")
	assert.Contains(t, icsStr, "SUMMARY:Hijri birthday: Baby (1)")
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VEVENT"))

	require.Len(t, contacts, 1)
	assert.Equal(t, "1448-02-10", contacts[0].NextOccurrence.String())
	assert.Equal(t, 1, contacts[0].AgeNext)
}

func TestRunSync_SkipsUnsupportedBirthdays(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:3.0
FN:Too Old
BDAY:1930-05-01
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:No Year
BDAY:--07-31
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:No Birthday
END:VCARD`

	gen := webGenerator(t, vcardContent)
	icsData, contacts, count, err := gen.RunSync(context.Background(), webConfig)

	require.NoError(t, err)
	assert.Empty(t, contacts)
	assert.Equal(t, 0, count)
	assert.Equal(t, config.StubVCalendar, string(icsData))
}

func TestRunSync_Web_NetworkError(t *testing.T) {
	mockFetcher := new(MockFetcher)
	expectedErr := errors.New("network unreachable")
	mockFetcher.On("Fetch", mock.Anything, engine.Source{URL: "http://bad-url.com", User: "u", Pass: "p"}).
		Return(nil, expectedErr)

	gen := &engine.Generator{
		Clock:   MockClock{CurrentTime: hijriToday},
		Fetcher: mockFetcher,
	}
	cfg := engine.SyncConfig{
		Mode: config.SourceModeWeb,
		Web:  engine.Source{URL: "http://bad-url.com", User: "u", Pass: "p"},
	}

	icsData, contacts, count, err := gen.RunSync(context.Background(), cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Contains(t, err.Error(), config.ErrVCardParse)
	assert.Nil(t, icsData)
	assert.Nil(t, contacts)
	assert.Equal(t, 0, count)
	mockFetcher.AssertExpectations(t)
}

func TestRunSync_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		gen     *engine.Generator
		cfg     engine.SyncConfig
		wantErr string
	}{
		{"Local path empty", &engine.Generator{}, engine.SyncConfig{Mode: config.SourceModeLocal}, config.ErrLocalPathEmpty},
		{"Web URL empty", &engine.Generator{}, engine.SyncConfig{Mode: config.SourceModeWeb}, config.ErrWebURLEmpty},
		{"Fetcher missing", &engine.Generator{}, webConfig, config.ErrFetcherMissing},
		{"Unknown mode", &engine.Generator{}, engine.SyncConfig{Mode: "ftp"}, config.ErrModeUnsupport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.gen.RunSync(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunSync_ClockOutsideRange(t *testing.T) {
	gen := webGenerator(t, "BEGIN:VCARD\nVERSION:3.0\nFN:A\nBDAY:2000-07-31\nEND:VCARD")
	gen.Clock = MockClock{CurrentTime: time.Date(2090, 1, 1, 0, 0, 0, 0, time.UTC)}

	_, _, _, err := gen.RunSync(context.Background(), webConfig)
	assert.ErrorIs(t, err, hijri.ErrInvalidRange)
}

func TestRunSync_WithReminders(t *testing.T) {
	gen := webGenerator(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Alarm Test\nBDAY:1990-01-01\nEND:VCARD")

	cfg := webConfig
	cfg.ReminderTrigger = "-P1D"

	icsData, _, _, err := gen.RunSync(context.Background(), cfg)
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VALARM")
	assert.Contains(t, icsStr, "TRIGGER:-P1D")
	assert.Contains(t, icsStr, "ACTION:DISPLAY")
}

func TestRunSync_StableUIDs(t *testing.T) {
	content := "BEGIN:VCARD\nVERSION:3.0\nFN:Stable\nBDAY:1990-01-01\nEND:VCARD"

	_, first, _, err := webGenerator(t, content).RunSync(context.Background(), webConfig)
	require.NoError(t, err)
	_, second, _, err := webGenerator(t, content).RunSync(context.Background(), webConfig)
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].UID, second[0].UID)
}

func TestRunSync_DateFormats_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		bdayValue string
		expectEvt bool
	}{
		{"ISO8601 Standard", "1990-10-25", true},
		{"Basic Format", "19901025", true},
		{"RFC3339", "1990-10-25T00:00:00Z", true},
		{"Truncated (Month-Day)", "--10-25", false},
		{"Truncated Basic", "--1025", false},
		{"Garbage Data", "not-a-date", false},
		{"Empty Date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "BEGIN:VCARD\nVERSION:3.0\nFN:Test\nBDAY:" + tt.bdayValue + "\nEND:VCARD"
			ics, _, _, _ := webGenerator(t, content).RunSync(context.Background(), webConfig)

			icsStr := string(ics)
			if tt.expectEvt {
				assert.Contains(t, icsStr, "BEGIN:VEVENT", "Valid date should produce an event")
			} else {
				assert.NotContains(t, icsStr, "BEGIN:VEVENT", "Invalid date should be skipped silently")
			}
		})
	}
}

func TestRunSync_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "cancel.vcf")
	require.NoError(t, os.WriteFile(path, nil, config.FilePermUserRW))

	gen := &engine.Generator{Clock: MockClock{CurrentTime: hijriToday}}
	_, _, _, err := gen.RunSync(ctx, engine.SyncConfig{Mode: config.SourceModeLocal, LocalPath: path})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestMonthStarts(t *testing.T) {
	gen := &engine.Generator{
		Clock:   MockClock{CurrentTime: hijriToday},
		Catalog: i18n.New(),
		Lang:    language.English,
	}

	icsData, err := gen.MonthStarts(1447, 1447)
	require.NoError(t, err)

	icsStr := string(icsData)
	assert.Equal(t, 12, strings.Count(icsStr, "BEGIN:VEVENT"))
	assert.Contains(t, icsStr, "X-WR-CALNAME:Hijri Months")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20250626") // 1 Muharram 1447
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20260218") // 1 Ramadan 1447
	assert.Contains(t, icsStr, "SUMMARY:1 Ramadan 1447")
	assert.Contains(t, icsStr, "DESCRIPTION:30 days")
	assert.Contains(t, icsStr, "UID:month-1447-09@"+config.ICalDomain)
}

func TestMonthStarts_Arabic(t *testing.T) {
	gen := &engine.Generator{
		Clock:   MockClock{CurrentTime: hijriToday},
		Catalog: i18n.New(),
		Lang:    language.Arabic,
	}

	icsData, err := gen.MonthStarts(1447, 1447)
	require.NoError(t, err)
	assert.Contains(t, string(icsData), "SUMMARY:1 رمضان 1447")
}

func TestMonthStarts_InvalidRange(t *testing.T) {
	gen := &engine.Generator{Clock: MockClock{CurrentTime: hijriToday}}

	for _, r := range [][2]int{{1450, 1440}, {1356, 1357}, {1499, 1500}} {
		_, err := gen.MonthStarts(r[0], r[1])
		require.Error(t, err, "range %v", r)
		assert.Contains(t, err.Error(), config.ErrYearRange)
	}

	_, err := gen.MonthStarts(1356, 1357)
	assert.ErrorIs(t, err, hijri.ErrInvalidRange)
}
