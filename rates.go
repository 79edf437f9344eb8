package rates

// MaxDays is the largest number of days back that can be requested in one run.
const MaxDays = 10

type (
	Fetcher interface {
		Fetch(dates []DateToken) ([]RawRateResponse, error)
	}

	Service interface {
		Rates(dates []DateToken) ([]ExtractedEntry, error)
	}

	Reporter interface {
		Report(entries []ExtractedEntry) error
	}
)
