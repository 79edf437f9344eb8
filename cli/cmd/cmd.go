package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/malusev998/privat-rates"
	appConfig "github.com/malusev998/privat-rates/config"
	"github.com/malusev998/privat-rates/fetchers"
)

type (
	Config struct {
		Ctx  context.Context
		Now  func() time.Time
		Args []string
		Out  io.Writer
		Err  io.Writer
	}

	rootFlags struct {
		configFile string
		debug      bool
	}
)

func parseDays(arg string) (int, error) {
	arg = strings.TrimSpace(arg)

	days, err := strconv.Atoi(arg)
	if err != nil {
		// Integers beyond int are still integers, just over the limit.
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(arg, "-") {
			return 0, RangeError{Max: rates.MaxDays}
		}

		return 0, ErrInvalidDays
	}

	if days < 0 {
		return 0, ErrInvalidDays
	}

	if days > rates.MaxDays {
		return 0, RangeError{Max: rates.MaxDays}
	}

	return days, nil
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return UsageError{}
	}

	_, err := parseDays(args[0])

	return err
}

// A negative day count such as -3 never reaches validateArgs because pflag
// reads it as a shorthand flag.
func flagError(args []string) func(*cobra.Command, error) error {
	return func(_ *cobra.Command, err error) error {
		for _, arg := range args {
			if _, convErr := strconv.Atoi(arg); strings.HasPrefix(arg, "-") && !errors.Is(convErr, strconv.ErrSyntax) {
				return ErrInvalidDays
			}
		}

		return UsageError{Reason: err}
	}
}

// bindFlags lets command line flags override file and environment values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	bindings := map[string]string{
		"strict":      "strict",
		"api.url":     "api-url",
		"api.timeout": "timeout",
		"log.file":    "log-file",
	}

	for key, name := range bindings {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func newRootCommand(config *Config) *cobra.Command {
	flags := &rootFlags{}
	v := appConfig.New()

	rootCmd := &cobra.Command{
		Use:           "privat-rates <number_of_days>",
		Short:         "EUR and USD NBU exchange rates from PrivatBank for the last days",
		Version:       "v1.0.0",
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.configFile, "config", "", "Path to config file")
	persistent.BoolVar(&flags.debug, "debug", false, "Debug flag")
	persistent.Bool("strict", false, "Exit with status 1 when fetching or processing fails")
	persistent.String("api-url", fetchers.PrivatBankURL, "Exchange rates endpoint")
	persistent.Duration("timeout", 0, "Timeout of a single request, 0 for none")
	persistent.String("log-file", "", "Also write logs to this file")

	bindFlags(v, persistent)

	rootCmd.SetFlagErrorFunc(flagError(config.Args))
	rootCmd.RunE = fetchCobraCommand(config, v, flags)

	return rootCmd
}

// Execute runs the command line and returns the process exit status.
func Execute(config *Config) int {
	if config.Ctx == nil {
		config.Ctx = context.Background()
	}

	if config.Now == nil {
		config.Now = time.Now
	}

	if config.Out == nil {
		config.Out = os.Stdout
	}

	if config.Err == nil {
		config.Err = os.Stderr
	}

	rootCmd := newRootCommand(config)
	rootCmd.SetArgs(config.Args)
	rootCmd.SetOut(config.Out)
	rootCmd.SetErr(config.Err)

	err := rootCmd.ExecuteContext(config.Ctx)
	if err == nil {
		return 0
	}

	if !errors.Is(err, errReported) {
		fmt.Fprintln(config.Out, err)
	}

	return 1
}
