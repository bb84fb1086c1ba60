// Command bankholidays prints UK bank holiday information from GOV.UK
// data. It loads the live feed and falls back to the snapshot bundled
// into the binary when the feed is unreachable.
//
// The feed URL can be overridden with BANK_HOLIDAYS_URL, set in the
// environment or in a .env file in the working directory.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	govukholidays "github.com/rabitt1ove/govuk-bank-holidays"
)

var (
	logLevel string
	division string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bankholidays",
		Short:         "UK bank holiday information from GOV.UK data",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return errors.Wrap(err, "failed to load .env")
			}
			return setupLogger()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&division, "division", "d", "",
		`division to query: "england-and-wales", "scotland" or "northern-ireland"; defaults to holidays common to all divisions`)

	root.AddCommand(
		newTodayCommand(),
		newNextCommand(),
		newPreviousCommand(),
		newListCommand(),
		newFetchCommand(),
	)
	return root
}

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	return nil
}

func divisionFlag() (govukholidays.Division, error) {
	if division == "" {
		return govukholidays.Common, nil
	}
	return govukholidays.ParseDivision(division)
}

// remoteSource honors the BANK_HOLIDAYS_URL override.
func remoteSource() *govukholidays.RemoteSource {
	if url := os.Getenv("BANK_HOLIDAYS_URL"); url != "" {
		return govukholidays.NewRemoteSourceURL(url)
	}
	return govukholidays.NewRemoteSource()
}

// loadCalendar loads the live feed, falling back to the embedded
// snapshot. The library never falls back by itself; that policy lives
// here in the caller.
func loadCalendar(ctx context.Context) (*govukholidays.Calendar, error) {
	cal, err := govukholidays.New(ctx, remoteSource())
	if err != nil {
		logrus.WithError(err).Warn("failed to load bank holidays from GOV.UK, using cached data")
		return govukholidays.Cached()
	}
	return cal, nil
}

func newTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Report whether today is a bank holiday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			div, err := divisionFlag()
			if err != nil {
				return err
			}
			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}
			today := govukholidays.Today()
			if holiday, ok := cal.Holiday(today, div); ok {
				fmt.Printf("Today (%s) is a bank holiday in %s: %s\n", today, div, color.GreenString(holiday.Title))
			} else {
				fmt.Printf("Today (%s) is not a bank holiday in %s\n", today, div)
			}
			return nil
		},
	}
}

func newNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Print the next bank holiday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			div, err := divisionFlag()
			if err != nil {
				return err
			}
			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}
			holiday, ok := cal.NextHoliday(govukholidays.Today(), div)
			if !ok {
				return errors.New("no future bank holiday in the dataset")
			}
			fmt.Printf("The next bank holiday in %s is %s (%s)\n", div, color.GreenString(holiday.Title), holiday.Date)
			return nil
		},
	}
}

func newPreviousCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "previous",
		Short: "Print the previous bank holiday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			div, err := divisionFlag()
			if err != nil {
				return err
			}
			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}
			holiday, ok := cal.PreviousHoliday(govukholidays.Today(), div)
			if !ok {
				return errors.New("no past bank holiday in the dataset")
			}
			fmt.Printf("The previous bank holiday in %s was %s (%s)\n", div, color.GreenString(holiday.Title), holiday.Date)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known bank holidays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			div, err := divisionFlag()
			if err != nil {
				return err
			}
			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}
			var holidays []govukholidays.BankHoliday
			if year != 0 {
				holidays = cal.HolidaysInYear(year, div)
			} else {
				holidays = cal.Holidays(div)
			}
			for _, holiday := range holidays {
				suffix := ""
				if holiday.Substitute {
					suffix = color.YellowString(" (substitute day)")
				}
				fmt.Printf("%s  %s%s\n", color.CyanString(holiday.Date.String()), holiday.Title, suffix)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "only list holidays in this year")
	return cmd
}
