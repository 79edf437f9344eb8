package fetchers

import (
	"io"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/malusev998/privat-rates"
)

const (
	PrivatBankURL = "https://api.privatbank.ua/p24api/exchange_rates"
)

func requestURL(base string, date rates.DateToken) string {
	return base + "?json&date=" + url.QueryEscape(string(date))
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
