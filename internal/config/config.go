package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Hijri/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Hijri"
	AppID             = "com.github.tartampluch.go-hijri"
	KeyringService    = "com.github.tartampluch.go-hijri"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "go-hijri.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// FilePermPublic represents -rw-r--r--, used for generated calendars.
	FilePermPublic fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdRoot     = "go-hijri"
	CmdConvert  = "convert [YYYY-MM-DD]"
	CmdToday    = "today"
	CmdMonth    = "month [YEAR] [MONTH]"
	CmdCalendar = "calendar"
	CmdServe    = "serve"
	CmdVersion  = "version"

	CmdDescRoot     = "Umm al-Qura Hijri / Gregorian calendar converter"
	CmdDescConvert  = "Convert a date between the Hijri and Gregorian calendars"
	CmdDescToday    = "Print today's date in both calendars"
	CmdDescMonth    = "Print the length and Gregorian span of a Hijri month"
	CmdDescCalendar = "Write an iCalendar feed of Hijri month starts"
	CmdDescServe    = "Serve the Hijri anniversary feed and the conversion API"
	CmdDescVersion  = "Show application version and exit"

	FlagDebug      = "debug"
	FlagConfig     = "config"
	FlagFrom       = "from"
	FlagTo         = "to"
	FlagFormat     = "format"
	FlagLang       = "lang"
	FlagOutput     = "output"
	FlagPort       = "port"
	FlagSourceMode = "source"
	FlagLocalPath  = "vcf"
	FlagWebURL     = "url"
	FlagWebUser    = "user"

	FlagDescDebug      = "Enable debug logging"
	FlagDescConfig     = "Path to a settings file (default ./go-hijri.yaml)"
	FlagDescFromCal    = "Calendar of the input date (hijri or gregorian)"
	FlagDescFromYear   = "First Hijri year of the feed"
	FlagDescToYear     = "Last Hijri year of the feed"
	FlagDescFormat     = "Output layout (%Y %m %d %D %M %l %gY %gm %gd %gD %gM)"
	FlagDescLang       = "Language of month and weekday names (ar, en)"
	FlagDescOutput     = "Output file (default stdout)"
	FlagDescPort       = "HTTP port of the feed server"
	FlagDescSourceMode = "Contacts source (local or web)"
	FlagDescLocalPath  = "Path to a local .vcf file"
	FlagDescWebURL     = "CardDAV / WebDAV URL of the contacts"
	FlagDescWebUser    = "HTTP Basic Auth user (password is read from the keyring)"

	MsgVersionOutput = "%s version %s (%s, %s) %s/%s\n"

	// FormatMonthLine prints YEAR-MONTH, name, length and the Gregorian span.
	FormatMonthLine = "%04d-%02d %s: %s, %s .. %s\n"
)

// -----------------------------------------------------------------------------
// Settings Keys (viper) & Sources
// -----------------------------------------------------------------------------

const (
	SettingPort            = "server_port"
	SettingSourceMode      = "source_mode"
	SettingLocalPath       = "local_path"
	SettingWebURL          = "web_url"
	SettingWebUser         = "web_user"
	SettingWebPass         = "web_pass"
	SettingLanguage        = "language"
	SettingInterval        = "refresh_interval_min"
	SettingReminderEnabled = "reminder_enabled"
	SettingReminderValue   = "reminder_value"
	SettingReminderUnit    = "reminder_unit"
	SettingReminderDir     = "reminder_direction"

	EnvPrefix      = "GOHIJRI"
	ConfigFileName = "go-hijri"
	ConfigFileType = "yaml"
	ConfigFilePath = "."
	DotEnvFile     = ".env"
)

// SupportedLanguages defines the list of available name catalogs (ISO 639-1).
var SupportedLanguages = []string{"en", "ar"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Name catalogs. The month or weekday number is appended (1-12, 0-6).
	TKeyHijriMonthPrefix     = "hijri_month_"
	TKeyGregorianMonthPrefix = "gregorian_month_"
	TKeyWeekdayPrefix        = "weekday_"

	TKeyCalName         = "cal_name"            // Anniversary feed title
	TKeyCalMonthsName   = "cal_months_name"     // Month-start feed title
	TKeyEvtSummary      = "event_summary"       // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age (plural)
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)
	TKeyEvtMonthStart   = "event_month_start"   // Requires Month, Year
	TKeyEvtMonthLength  = "event_month_length"  // Requires Length (plural)
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb        = "web"
	SourceModeLocal      = "local"
	DefaultPort          = "18081"
	DefaultRefreshMin    = 60
	DefaultLanguage      = "en"
	DefaultReminderValue = 1
	DisabledInterval     = 0

	// UIDNamespace seeds the name-based UUIDs of generated events.
	UIDNamespace = "go-hijri-v1"

	// AnniversaryYearSpan is the number of Hijri years generated on each side of the current one.
	AnniversaryYearSpan = 1
)

// ISO8601 Duration Components for Reminders
const (
	ISOPeriodPrefix   = "P"
	ISONegativePrefix = "-P"
	ISOTimePrefix     = "T"
	ISODay            = "D"
	ISOHour           = "H"
	ISOMinute         = "M"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Hijri//Engine//EN"
	ICalCalName   = "Hijri Anniversaries"
	ICalMonthsCal = "Hijri Months"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gohijri"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// HijriFormatDefault is the layout used when no --format is given.
	HijriFormatDefault = "%Y-%m-%d (%gY-%gm-%gd)"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
	FormatMonthUID  = "month-%d-%02d@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"

	// API rate limiting (token bucket, per process).
	APIRateLimit = 20 // requests per second
	APIRateBurst = 40
	CORSMaxAge   = 300 // seconds
)

// -----------------------------------------------------------------------------
// HTTP Routes & Query Parameters
// -----------------------------------------------------------------------------

const (
	RouteRoot     = "/"
	RouteCalendar = "/calendar.ics"
	RouteAPI      = "/api"
	RouteConvert  = "/convert"
	RouteToday    = "/today"
	RouteMonth    = "/month"
	RouteMetrics  = "/metrics"

	QueryCalendar = "calendar"
	QueryDate     = "date"
	QueryLang     = "lang"
	QueryYear     = "year"
	QueryMonth    = "month"

	CalendarHijri     = "hijri"
	CalendarGregorian = "gregorian"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"
	HeaderAccept          = "Accept"
	HeaderAcceptLang      = "Accept-Language"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeVCardAccept     = "text/vcard, text/x-vcard;q=0.9, */*;q=0.1"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Metrics (Prometheus)
// -----------------------------------------------------------------------------

const (
	MetricNamespace   = "gohijri"
	MetricRequests    = "http_requests_total"
	MetricConversions = "conversions_total"
	MetricFeedBytes   = "feed_size_bytes"
	MetricHelpReq     = "HTTP requests served, by route and status code."
	MetricHelpConv    = "Date conversions served by the API, by source calendar and outcome."
	MetricHelpFeed    = "Size of the currently served iCalendar feed."
	MetricLabelRoute  = "route"
	MetricLabelCode   = "code"
	MetricLabelCal    = "calendar"
	MetricLabelResult = "result"
	MetricResultOK    = "ok"
	MetricResultError = "error"
	MetricRouteNone   = "unmatched"
	MetricCalOther    = "other"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty  = "configuration error: local path is empty"
	ErrWebURLEmpty     = "configuration error: web URL is empty"
	ErrFetcherMissing  = "internal error: network fetcher is not initialized"
	ErrModeUnsupport   = "configuration error: unsupported source mode"
	ErrSettingsLoad    = "failed to load settings"
	ErrSettingsInvalid = "invalid settings"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortRequired    = "server port is required"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrFetchRequest    = "failed to create request"
	ErrFetchNetwork    = "network error during fetch"
	ErrFetchStatus     = "server returned unexpected status"
	ErrFetchTooLarge   = "vCard response exceeds size limit"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrDateParse       = "unable to parse date"
	ErrYearRange       = "invalid Hijri year range"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrWriteResp       = "failed to write response body"
	ErrWriteOutput     = "failed to write output"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrArgCount        = "unexpected number of arguments"
	ErrArgInt          = "argument must be an integer"
	ErrCalendarKind    = "unknown calendar (expected hijri or gregorian)"
	ErrQueryMissing    = "missing query parameter"
	ErrQueryInt        = "query parameter must be an integer"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
	HTTPMsgTooMany      = "Too Many Requests"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackSummaryAge   = "Hijri birthday: %s (%d)"
	FallbackSummaryBirth = "Hijri birthday: %s (birth)"
	FallbackMonthStart   = "1 %s %d"
	FallbackMonthLength  = "%d days"
	FallbackName         = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgSyncStarted   = "Synchronization started..."
	MsgSyncFailed    = "Synchronization failed. Check logs."
	MsgSyncReq       = "Sync requested"
	MsgWorkerStart   = "Background worker started"
	MsgWorkerStop    = "Worker stopping due to context cancellation"
	MsgSyncDone      = "Synchronization finished"
	MsgRefreshQueued = "Refresh already pending"
	MsgRefreshSignal = "Refresh requested by signal"
	MsgAppStop       = "Application stopped gracefully"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedRange  = "Skipping birthday outside the Umm al-Qura range"
	MsgGenSuccess    = "Calendar generation successful"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgBdayToday     = "Hijri birthday found today"
	MsgSettingsFile  = "Settings file loaded"
	MsgNoSettings    = "No settings file found, using defaults and environment"
	MsgDotEnvSkip    = "No .env file loaded"
	MsgConvertAPI    = "Conversion request rejected"
	MsgRateLimited   = "API rate limit exceeded"
	MsgFetchStart    = "Initiating vCard download"
	MsgFetchStatus   = "Server returned error status"
	MsgFetchOK       = "vCards downloading"
)

// -----------------------------------------------------------------------------
// Reminder Units & Directions
// -----------------------------------------------------------------------------

const (
	UnitDays    = "d"
	UnitHours   = "h"
	UnitMinutes = "m"
	DirBefore   = "before"
	DirAfter    = "after"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyToday     = "birthdays_today"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyManual    = "manual"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyHijri     = "hijri_date"
	LogKeyDuration  = "duration_ms"
	LogKeyRemote    = "remote"
	LogKeyLength    = "content_length"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine   = "engine"
	CompServer   = "server"
	CompFetcher  = "fetcher"
	CompWorker   = "worker"
	CompMain     = "main"
	CompI18n     = "i18n"
	CompSettings = "settings"
	CompApp      = "app"
)
