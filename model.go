package rates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	EUR = "EUR"
	USD = "USD"
)

type (
	// DateToken is a calendar date in the DD.MM.YYYY form used by the API,
	// both as a query parameter and as the key of a reported entry.
	DateToken string

	// CurrencyRate rates are nullable so that a missing or null value can be
	// told apart from a real zero.
	CurrencyRate struct {
		BaseCurrency   string              `json:"baseCurrency,omitempty"`
		Currency       string              `json:"currency"`
		SaleRateNB     decimal.NullDecimal `json:"saleRateNB"`
		PurchaseRateNB decimal.NullDecimal `json:"purchaseRateNB"`
	}

	RawRateResponse struct {
		Date         DateToken      `json:"date"`
		Bank         string         `json:"bank,omitempty"`
		ExchangeRate []CurrencyRate `json:"exchangeRate"`
	}

	Rate struct {
		Sale     decimal.Decimal
		Purchase decimal.Decimal
	}

	ExtractedEntry struct {
		Date DateToken
		EUR  Rate
		USD  Rate
	}
)

// Validate checks the fields Extract relies on: the date and both NBU rates
// of the EUR and USD records it would pick.
func (r RawRateResponse) Validate() error {
	if r.Date == "" {
		return ErrMissingDate
	}

	for _, currency := range []string{EUR, USD} {
		record, ok := findCurrency(r.ExchangeRate, currency)
		if !ok {
			continue
		}

		if !record.SaleRateNB.Valid {
			return fmt.Errorf("%w: %s saleRateNB", ErrMissingRate, currency)
		}

		if !record.PurchaseRateNB.Valid {
			return fmt.Errorf("%w: %s purchaseRateNB", ErrMissingRate, currency)
		}
	}

	return nil
}

// formatRate writes whole values with a trailing .0 the way the API sends them.
func formatRate(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func (r Rate) writeJSON(buf *bytes.Buffer) {
	buf.WriteString(`{"sale":`)
	buf.WriteString(formatRate(r.Sale))
	buf.WriteString(`,"purchase":`)
	buf.WriteString(formatRate(r.Purchase))
	buf.WriteByte('}')
}

func (r Rate) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	r.writeJSON(&buf)

	return buf.Bytes(), nil
}

// MarshalJSON keeps the key order date, EUR, USD which a map would not.
func (e ExtractedEntry) MarshalJSON() ([]byte, error) {
	date, err := json.Marshal(string(e.Date))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	buf.WriteByte('{')
	buf.Write(date)
	buf.WriteString(`:{"EUR":`)
	e.EUR.writeJSON(&buf)
	buf.WriteString(`,"USD":`)
	e.USD.writeJSON(&buf)
	buf.WriteString(`}}`)

	return buf.Bytes(), nil
}
