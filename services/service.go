package services

import (
	"github.com/sirupsen/logrus"

	"github.com/malusev998/privat-rates"
)

type Service struct {
	Fetcher rates.Fetcher
	Logger  logrus.FieldLogger
}

func (s Service) Rates(dates []rates.DateToken) ([]rates.ExtractedEntry, error) {
	responses, err := s.Fetcher.Fetch(dates)
	if err != nil {
		return nil, err
	}

	entries := rates.Extract(responses)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"fetched": len(responses),
			"kept":    len(entries),
		}).Debug("exchange rates extracted")
	}

	return entries, nil
}
