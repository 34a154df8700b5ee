package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-hijri"
	"github.com/tartampluch/go-hijri/internal/config"
	"github.com/tartampluch/go-hijri/internal/engine"
	"github.com/tartampluch/go-hijri/internal/i18n"
	"golang.org/x/text/language"
)

// cli carries the state shared by every command.
type cli struct {
	debug      bool
	configFile string

	// setupLog installs the logger; nil leaves slog untouched.
	setupLog  func(debug bool, console io.Writer) io.Closer
	logCloser io.Closer

	// clock overrides the system clock for today and calendar.
	clock hijri.Clock
}

func (c *cli) close() {
	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
}

func (c *cli) today() (hijri.Date, error) {
	if c.clock == nil {
		return hijri.Today()
	}
	return hijri.TodayFrom(c.clock)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           config.CmdRoot,
		Short:         config.CmdDescRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.setupLog == nil {
				return nil
			}
			// One-shot commands keep the console for their output.
			console := io.Discard
			if c.debug || cmd.Name() == config.CmdServe {
				console = cmd.ErrOrStderr()
			}
			c.logCloser = c.setupLog(c.debug, console)
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&c.debug, config.FlagDebug, false, config.FlagDescDebug)

	root.AddCommand(
		convertCmd(),
		todayCmd(c),
		monthCmd(),
		calendarCmd(c),
		serveCmd(c),
		versionCmd(),
	)
	return root
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%s: want %d, got %d", config.ErrArgCount, n, len(args))
		}
		return nil
	}
}

// render formats d in the requested language, or with the Arabic/English
// default names when lang is empty.
func render(d hijri.Date, layout, lang string) string {
	if lang == "" {
		return d.Format(layout)
	}
	return d.FormatIn(language.Make(lang), layout)
}

func convertCmd() *cobra.Command {
	var from, layout, lang string

	cmd := &cobra.Command{
		Use:   config.CmdConvert,
		Short: config.CmdDescConvert,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				d   hijri.Date
				err error
			)
			switch from {
			case config.CalendarGregorian:
				d, err = hijri.ParseGregorian(args[0])
			case config.CalendarHijri:
				d, err = hijri.ParseHijri(args[0])
			default:
				err = fmt.Errorf("%s: %q", config.ErrCalendarKind, from)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render(d, layout, lang))
			return err
		},
	}

	cmd.Flags().StringVar(&from, config.FlagFrom, config.CalendarGregorian, config.FlagDescFromCal)
	cmd.Flags().StringVar(&layout, config.FlagFormat, config.HijriFormatDefault, config.FlagDescFormat)
	cmd.Flags().StringVar(&lang, config.FlagLang, "", config.FlagDescLang)
	return cmd
}

func todayCmd(c *cli) *cobra.Command {
	var layout, lang string

	cmd := &cobra.Command{
		Use:   config.CmdToday,
		Short: config.CmdDescToday,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.today()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render(d, layout, lang))
			return err
		},
	}

	cmd.Flags().StringVar(&layout, config.FlagFormat, config.HijriFormatDefault, config.FlagDescFormat)
	cmd.Flags().StringVar(&lang, config.FlagLang, "", config.FlagDescLang)
	return cmd
}

func monthCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   config.CmdMonth,
		Short: config.CmdDescMonth,
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ym [2]int
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("%s: %w", config.ErrArgInt, err)
				}
				ym[i] = n
			}
			year, month := ym[0], ym[1]

			length, err := hijri.MonthLength(year, month)
			if err != nil {
				return err
			}
			start := hijri.MustFromHijri(year, month, 1)
			end := hijri.MustFromHijri(year, month, length)

			cat, tag := i18n.Default(), language.Make(lang)
			days := cat.Plural(tag, config.TKeyEvtMonthLength, length, map[string]any{"Length": length})
			_, err = fmt.Fprintf(cmd.OutOrStdout(), config.FormatMonthLine,
				year, month, cat.HijriMonth(tag, month), days,
				start.GregorianString(), end.GregorianString())
			return err
		},
	}

	cmd.Flags().StringVar(&lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	return cmd
}

func calendarCmd(c *cli) *cobra.Command {
	var from, to int
	var lang, output string

	cmd := &cobra.Command{
		Use:   config.CmdCalendar,
		Short: config.CmdDescCalendar,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == 0 || to == 0 {
				today, err := c.today()
				if err != nil {
					return err
				}
				if from == 0 {
					from = today.Year()
				}
				if to == 0 {
					to = from
				}
			}

			gen := &engine.Generator{
				Clock:   c.clock,
				Catalog: i18n.Default(),
				Lang:    language.Make(lang),
			}
			data, err := gen.MonthStarts(from, to)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, config.FilePermPublic); err != nil {
				return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&from, config.FlagFrom, 0, config.FlagDescFromYear)
	cmd.Flags().IntVar(&to, config.FlagTo, 0, config.FlagDescToYear)
	cmd.Flags().StringVar(&lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	cmd.Flags().StringVarP(&output, config.FlagOutput, "o", "", config.FlagDescOutput)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdVersion,
		Short: config.CmdDescVersion,
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), config.MsgVersionOutput,
				config.AppName,
				config.Version,
				config.Commit,
				config.Date,
				runtime.GOOS,
				runtime.GOARCH,
			)
			return err
		},
	}
}
