package cmd

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/malusev998/privat-rates"
	appConfig "github.com/malusev998/privat-rates/config"
	"github.com/malusev998/privat-rates/fetchers"
	"github.com/malusev998/privat-rates/services"
)

func createService(ctx context.Context, cfg *appConfig.Config, log logrus.FieldLogger) rates.Service {
	return services.Service{
		Fetcher: fetchers.PrivatBankFetcher{
			Ctx:     ctx,
			URL:     cfg.API.URL,
			Timeout: cfg.API.Timeout,
			Logger:  log,
		},
		Logger: log,
	}
}
