package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tartampluch/go-hijri/internal/app"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/engine"
	"github.com/tartampluch/go-hijri/internal/i18n"
	"github.com/tartampluch/go-hijri/internal/server"
	"github.com/tartampluch/go-hijri/internal/settings"
)

func serveCmd(c *cli) *cobra.Command {
	v := settings.NewViper()

	cmd := &cobra.Command{
		Use:   config.CmdServe,
		Short: config.CmdDescServe,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			logStartupInfo()

			s, err := settings.Load(v, c.configFile)
			if err != nil {
				return err
			}

			srv := server.NewCalendarServer(s.Port)
			srv.Catalog = i18n.Default()
			svc := app.New(s, srv, engine.NewHTTPFetcher())
			if c.clock != nil {
				srv.Clock = c.clock
				svc.Clock = c.clock
			}

			// SIGHUP forces an immediate resync.
			hup := make(chan os.Signal, config.ChannelBufferSize)
			signal.Notify(hup, syscall.SIGHUP)
			defer signal.Stop(hup)
			go func() {
				for range hup {
					slog.Info(config.MsgRefreshSignal, config.LogKeyComponent, config.CompMain)
					svc.Refresh()
				}
			}()

			if err := svc.Run(cmd.Context()); err != nil {
				return err
			}
			slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&c.configFile, config.FlagConfig, "", config.FlagDescConfig)
	flags.String(config.FlagPort, config.DefaultPort, config.FlagDescPort)
	flags.String(config.FlagSourceMode, config.SourceModeLocal, config.FlagDescSourceMode)
	flags.String(config.FlagLocalPath, "", config.FlagDescLocalPath)
	flags.String(config.FlagWebURL, "", config.FlagDescWebURL)
	flags.String(config.FlagWebUser, "", config.FlagDescWebUser)
	flags.String(config.FlagLang, config.DefaultLanguage, config.FlagDescLang)

	bindFlags(v, cmd, map[string]string{
		config.SettingPort:       config.FlagPort,
		config.SettingSourceMode: config.FlagSourceMode,
		config.SettingLocalPath:  config.FlagLocalPath,
		config.SettingWebURL:     config.FlagWebURL,
		config.SettingWebUser:    config.FlagWebUser,
		config.SettingLanguage:   config.FlagLang,
	})
	return cmd
}

// bindFlags lets explicitly set flags override the file and environment.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		// BindPFlag only fails on a nil flag.
		_ = v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}
