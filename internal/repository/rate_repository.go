package repository

import (
	"backoffice-service/internal/domain"
)

// RateRepository persists admin-entered exchange rates. The newest row is the
// active rate.
type RateRepository interface {
	Save(rate *domain.ExchangeRate) error
	Latest() (*domain.ExchangeRate, error)
}
