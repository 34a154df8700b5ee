// Package settings loads and validates the runtime options of the serve
// command.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/tartampluch/go-hijri/internal/config"
)

// Settings holds the runtime options of the serve command.
type Settings struct {
	Port       string `mapstructure:"server_port" validate:"required,port"`
	SourceMode string `mapstructure:"source_mode" validate:"oneof=web local"`
	LocalPath  string `mapstructure:"local_path" validate:"required_if=SourceMode local"`
	WebURL     string `mapstructure:"web_url" validate:"required_if=SourceMode web,omitempty,url"`
	WebUser    string `mapstructure:"web_user"`
	WebPass    string `mapstructure:"web_pass"`
	Language   string `mapstructure:"language" validate:"oneof=en ar"`
	RefreshMin int    `mapstructure:"refresh_interval_min" validate:"gte=0"`

	ReminderEnabled bool   `mapstructure:"reminder_enabled"`
	ReminderValue   int    `mapstructure:"reminder_value" validate:"gte=0"`
	ReminderUnit    string `mapstructure:"reminder_unit" validate:"oneof=d h m"`
	ReminderDir     string `mapstructure:"reminder_direction" validate:"oneof=before after"`
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("port", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Field().String())
		return err == nil && n >= config.MinPort && n <= config.MaxPort
	})
	return v
})

// NewViper returns a viper instance with every setting defaulted and the
// GOHIJRI_* environment bound.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(config.SettingPort, config.DefaultPort)
	v.SetDefault(config.SettingSourceMode, config.SourceModeLocal)
	v.SetDefault(config.SettingLocalPath, "")
	v.SetDefault(config.SettingWebURL, "")
	v.SetDefault(config.SettingWebUser, "")
	v.SetDefault(config.SettingWebPass, "")
	v.SetDefault(config.SettingLanguage, config.DefaultLanguage)
	v.SetDefault(config.SettingInterval, config.DefaultRefreshMin)
	v.SetDefault(config.SettingReminderEnabled, false)
	v.SetDefault(config.SettingReminderValue, config.DefaultReminderValue)
	v.SetDefault(config.SettingReminderUnit, config.UnitDays)
	v.SetDefault(config.SettingReminderDir, config.DirBefore)

	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(config.ConfigFileName)
	v.SetConfigType(config.ConfigFileType)
	v.AddConfigPath(config.ConfigFilePath)
	return v
}

// Load reads .env, the optional settings file and the environment
// into v, then validates the result. An empty file searches the default
// location; a missing default file is not an error.
func Load(v *viper.Viper, file string) (*Settings, error) {
	log := slog.With(config.LogKeyComponent, config.CompSettings)

	if err := godotenv.Load(config.DotEnvFile); err != nil {
		log.Debug(config.MsgDotEnvSkip, config.LogKeyError, err)
	}

	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%s: %w", config.ErrSettingsLoad, err)
		}
		log.Debug(config.MsgNoSettings)
	} else {
		log.Info(config.MsgSettingsFile, config.LogKeyFile, v.ConfigFileUsed())
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSettingsLoad, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every field against its constraints.
func (s *Settings) Validate() error {
	if err := validate().Struct(s); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSettingsInvalid, err)
	}
	return nil
}
