package rates

import "time"

const DateFormat = "02.01.2006"

func FormatDate(t time.Time) DateToken {
	return DateToken(t.Format(DateFormat))
}

// DateRange returns days+1 tokens starting at now and going back one
// calendar day at a time.
func DateRange(now time.Time, days int) []DateToken {
	if days < 0 {
		return []DateToken{}
	}

	dates := make([]DateToken, 0, days+1)

	for i := 0; i <= days; i++ {
		dates = append(dates, FormatDate(now.AddDate(0, 0, -i)))
	}

	return dates
}
