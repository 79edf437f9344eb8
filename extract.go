package rates

func findCurrency(rates []CurrencyRate, currency string) (CurrencyRate, bool) {
	for _, r := range rates {
		if r.Currency == currency {
			return r, true
		}
	}

	return CurrencyRate{}, false
}

// Extract picks the EUR and USD NBU rates out of every response.
// Responses missing either currency are left out.
func Extract(responses []RawRateResponse) []ExtractedEntry {
	entries := make([]ExtractedEntry, 0, len(responses))

	for _, response := range responses {
		eur, ok := findCurrency(response.ExchangeRate, EUR)
		if !ok {
			continue
		}

		usd, ok := findCurrency(response.ExchangeRate, USD)
		if !ok {
			continue
		}

		entries = append(entries, ExtractedEntry{
			Date: response.Date,
			EUR:  Rate{Sale: eur.SaleRateNB.Decimal, Purchase: eur.PurchaseRateNB.Decimal},
			USD:  Rate{Sale: usd.SaleRateNB.Decimal, Purchase: usd.PurchaseRateNB.Decimal},
		})
	}

	return entries
}
