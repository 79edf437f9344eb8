package rates_test

import (
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/malusev998/privat-rates"
)

func currencyRate(currency, sale, purchase string) rates.CurrencyRate {
	return rates.CurrencyRate{
		BaseCurrency:   "UAH",
		Currency:       currency,
		SaleRateNB:     decimal.NewNullDecimal(decimal.RequireFromString(sale)),
		PurchaseRateNB: decimal.NewNullDecimal(decimal.RequireFromString(purchase)),
	}
}

// noise returns records for currencies other than EUR and USD.
func noise(n int) []rates.CurrencyRate {
	records := make([]rates.CurrencyRate, 0, n)

	for len(records) < n {
		c := faker.Currency()
		if c == rates.EUR || c == rates.USD {
			continue
		}

		records = append(records, currencyRate(c, "1.5", "1.4"))
	}

	return records
}

func response(date rates.DateToken, records ...rates.CurrencyRate) rates.RawRateResponse {
	return rates.RawRateResponse{
		Date:         date,
		Bank:         "PB",
		ExchangeRate: records,
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("BothCurrencies", func(t *testing.T) {
		asserts := require.New(t)
		records := append(noise(5),
			currencyRate(rates.USD, "39.5", "38.9"),
			currencyRate(rates.EUR, "42.1", "41.3"),
		)

		entries := rates.Extract([]rates.RawRateResponse{response("05.06.2024", records...)})

		asserts.Len(entries, 1)
		asserts.Equal(rates.DateToken("05.06.2024"), entries[0].Date)
		asserts.Equal("42.1", entries[0].EUR.Sale.String())
		asserts.Equal("41.3", entries[0].EUR.Purchase.String())
		asserts.Equal("39.5", entries[0].USD.Sale.String())
		asserts.Equal("38.9", entries[0].USD.Purchase.String())
	})

	t.Run("DropsDatesMissingACurrency", func(t *testing.T) {
		asserts := require.New(t)

		entries := rates.Extract([]rates.RawRateResponse{
			response("05.06.2024", currencyRate(rates.USD, "39.5", "38.9")),
			response("04.06.2024", append(noise(3), currencyRate(rates.EUR, "42.1", "41.3"))...),
			response("03.06.2024"),
		})

		asserts.NotNil(entries)
		asserts.Empty(entries)
	})

	t.Run("PreservesOrder", func(t *testing.T) {
		asserts := require.New(t)
		both := []rates.CurrencyRate{
			currencyRate(rates.EUR, "42.1", "41.3"),
			currencyRate(rates.USD, "39.5", "38.9"),
		}

		entries := rates.Extract([]rates.RawRateResponse{
			response("05.06.2024", both...),
			response("04.06.2024", currencyRate(rates.USD, "39.5", "38.9")),
			response("03.06.2024", both...),
			response("02.06.2024", both...),
		})

		asserts.Len(entries, 3)
		asserts.Equal(rates.DateToken("05.06.2024"), entries[0].Date)
		asserts.Equal(rates.DateToken("03.06.2024"), entries[1].Date)
		asserts.Equal(rates.DateToken("02.06.2024"), entries[2].Date)
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		asserts := require.New(t)

		entries := rates.Extract([]rates.RawRateResponse{
			response("05.06.2024",
				currencyRate(rates.EUR, "42.1", "41.3"),
				currencyRate(rates.EUR, "1", "1"),
				currencyRate(rates.USD, "39.5", "38.9"),
				currencyRate(rates.USD, "2", "2"),
			),
		})

		asserts.Len(entries, 1)
		asserts.Equal("42.1", entries[0].EUR.Sale.String())
		asserts.Equal("39.5", entries[0].USD.Sale.String())
	})

	t.Run("PureAndRepeatable", func(t *testing.T) {
		asserts := require.New(t)
		input := []rates.RawRateResponse{
			response("05.06.2024", append(noise(4),
				currencyRate(rates.EUR, "42.1", "41.3"),
				currencyRate(rates.USD, "39.5", "38.9"))...),
			response("04.06.2024", currencyRate(rates.USD, "39.5", "38.9")),
		}

		snapshot := make([]rates.RawRateResponse, len(input))
		for i, r := range input {
			snapshot[i] = r
			snapshot[i].ExchangeRate = append([]rates.CurrencyRate(nil), r.ExchangeRate...)
		}

		first := rates.Extract(input)
		second := rates.Extract(input)

		asserts.Equal(first, second)
		asserts.Equal(snapshot, input)
	})

	t.Run("NilInput", func(t *testing.T) {
		asserts := require.New(t)

		entries := rates.Extract(nil)
		asserts.NotNil(entries)
		asserts.Empty(entries)
	})
}
