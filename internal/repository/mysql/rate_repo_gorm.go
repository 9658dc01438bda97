package mysql

import (
	"errors"
	"log/slog"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/repository"

	"gorm.io/gorm"
)

type rateRepo struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) repository.RateRepository {
	return &rateRepo{db: db}
}

func (r *rateRepo) Save(rate *domain.ExchangeRate) error {
	result := r.db.Create(rate)
	if result.Error != nil {
		slog.Error("exchange rate save failed", "error", result.Error)
		return result.Error
	}
	if rate.ID == 0 {
		return errors.New("failed to assign exchange rate ID")
	}
	return nil
}

// Latest returns the most recently entered rate, or nil when none exists yet.
func (r *rateRepo) Latest() (*domain.ExchangeRate, error) {
	var rate domain.ExchangeRate
	if err := r.db.Order("created_at DESC").First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("exchange rate lookup failed", "error", err)
		return nil, err
	}
	return &rate, nil
}
