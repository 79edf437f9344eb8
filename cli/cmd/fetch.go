package cmd

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/malusev998/privat-rates"
	appConfig "github.com/malusev998/privat-rates/config"
	"github.com/malusev998/privat-rates/logger"
	"github.com/malusev998/privat-rates/reporter"
)

// handleFailure prints err the way the user expects to see it. Unless strict
// is set the run still counts as successful.
func handleFailure(out io.Writer, log logrus.FieldLogger, err error, strict bool) error {
	if rates.IsFetchError(err) {
		fmt.Fprintf(out, "Error fetching data: %v\n", err)
	} else {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
	}

	log.WithError(err).Debug("run failed")

	if strict {
		return errReported
	}

	return nil
}

func fetchCobraCommand(config *Config, v *viper.Viper, flags *rootFlags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		days, err := parseDays(args[0])
		if err != nil {
			return err
		}

		cfg, err := appConfig.Load(v, flags.configFile)
		if err != nil {
			return fmt.Errorf("An error occurred: %w", err)
		}

		if flags.debug {
			cfg.Log.Level = "debug"
		}

		appLogger := logger.New(logger.Options{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
			Out:   cmd.ErrOrStderr(),
		})
		defer appLogger.Close()

		log := appLogger.WithField("run_id", uuid.NewString())
		service := createService(cmd.Context(), cfg, log)
		dates := rates.DateRange(config.Now(), days)

		log.WithField("dates", len(dates)).Debug("fetching exchange rates")

		entries, err := service.Rates(dates)
		if err != nil {
			return handleFailure(cmd.OutOrStdout(), log, err, cfg.Strict)
		}

		if err := (reporter.Console{Out: cmd.OutOrStdout()}).Report(entries); err != nil {
			return handleFailure(cmd.OutOrStdout(), log, err, cfg.Strict)
		}

		return nil
	}
}
