package config_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-hijri/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"UIDNamespace", config.UIDNamespace},
		{"HijriFormatDefault", config.HijriFormatDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Greater(t, config.DefaultRefreshMin, 0, "Default refresh interval must be positive")
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	assert.Equal(t, "en", config.SupportedLanguages[0], "English is the fallback catalog")
	assert.GreaterOrEqual(t, config.AnniversaryYearSpan, 1)
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Hijri/"), "UserAgent must start with AppName/")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")

	assert.Greater(t, config.MaxHTTPResponseSize, 0, "MaxHTTPResponseSize must be positive")
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024), "MaxHTTPResponseSize should stay under 1GB to protect RAM")

	assert.Greater(t, config.APIRateBurst, 0)
	assert.GreaterOrEqual(t, config.APIRateBurst, config.APIRateLimit, "Burst must admit at least one second of traffic")
}

// TestFormats_Render checks the printf layouts against the arguments their
// callers pass.
func TestFormats_Render(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc-1447@gohijri", fmt.Sprintf(config.FormatUID, "abc", 1447, config.ICalDomain))
	assert.Equal(t, "month-1447-09@gohijri", fmt.Sprintf(config.FormatMonthUID, 1447, 9, config.ICalDomain))
	assert.Equal(t, "Hijri birthday: Ali (30)", fmt.Sprintf(config.FallbackSummaryAge, "Ali", 30))
	assert.Equal(t, "1 Ramadan 1447", fmt.Sprintf(config.FallbackMonthStart, "Ramadan", 1447))
	assert.True(t, strings.HasSuffix(config.StubVCalendar, "END:VCALENDAR\r\n"))
}
