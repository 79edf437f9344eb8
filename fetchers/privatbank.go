package fetchers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"

	"github.com/malusev998/privat-rates"
)

type PrivatBankFetcher struct {
	Ctx context.Context
	URL string
	// Timeout of a single request, zero leaves it to the transport.
	Timeout time.Duration
	Logger  logrus.FieldLogger
}

func (p PrivatBankFetcher) fetchRates(
	ctx context.Context,
	client *resty.Client,
	logger logrus.FieldLogger,
	url string,
	date rates.DateToken,
) (rates.RawRateResponse, error) {
	reqURL := requestURL(url, date)
	logger = logger.WithField("date", date)

	logger.Debug("requesting exchange rates")

	res, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(reqURL)

	if err != nil {
		return rates.RawRateResponse{}, &rates.NetworkError{URL: reqURL, Err: err}
	}

	logger.WithField("status", res.StatusCode()).Debug("exchange rates response")

	if res.StatusCode() != http.StatusOK {
		return rates.RawRateResponse{}, &rates.HTTPStatusError{StatusCode: res.StatusCode(), URL: reqURL}
	}

	var data rates.RawRateResponse

	if err := json.Unmarshal([]byte(res.String()), &data); err != nil {
		return rates.RawRateResponse{}, &rates.ParseError{URL: reqURL, Err: err}
	}

	if err := data.Validate(); err != nil {
		return rates.RawRateResponse{}, &rates.ParseError{URL: reqURL, Err: err}
	}

	return data, nil
}

// Fetch requests every date at once over a single client and waits for all
// of them. Results keep the order of dates. The first failure cancels the
// requests still in flight and is returned alone.
func (p PrivatBankFetcher) Fetch(dates []rates.DateToken) ([]rates.RawRateResponse, error) {
	url := p.URL

	if url == "" {
		url = PrivatBankURL
	}

	ctx := p.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	logger := p.Logger

	if logger == nil {
		logger = discardLogger()
	}

	client := resty.New().SetLogger(logger)
	defer client.Close()

	if p.Timeout > 0 {
		client.SetTimeout(p.Timeout)
	}

	result := make([]rates.RawRateResponse, len(dates))
	g, gctx := errgroup.WithContext(ctx)

	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			data, err := p.fetchRates(gctx, client, logger, url, date)
			if err != nil {
				return err
			}

			result[i] = data

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
