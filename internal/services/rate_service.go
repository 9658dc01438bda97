package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/repository"

	"github.com/go-redis/redis/v8"
)

var ErrRateNotSet = errors.New("exchange rate not set")

const MsgInvalidRate = "La tasa de cambio debe ser mayor que cero"

const (
	rateCacheKey = "exchange_rate:latest"
	rateCacheTTL = time.Minute
)

// RateService tracks the admin-entered USD to local currency rate. The
// backend converts order totals with whatever rate was active at checkout;
// this service only records and serves the current rate for display and entry.
type RateService struct {
	repo        repository.RateRepository
	redisClient *redis.Client
}

func NewRateService(repo repository.RateRepository) *RateService {
	return &RateService{repo: repo}
}

func (s *RateService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// SetRate records a new rate and makes it the active one.
func (s *RateService) SetRate(ctx context.Context, rate float64) (*domain.ExchangeRate, error) {
	if rate <= 0 {
		return nil, &domain.ValidationError{Message: MsgInvalidRate}
	}

	entry := &domain.ExchangeRate{Rate: rate}
	if err := s.repo.Save(entry); err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(entry); err == nil {
			s.redisClient.Set(ctx, rateCacheKey, data, rateCacheTTL)
		}
	}
	return entry, nil
}

// LatestRate returns the active rate, or ErrRateNotSet when no rate has ever
// been entered.
func (s *RateService) LatestRate(ctx context.Context) (*domain.ExchangeRate, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, rateCacheKey).Result()
		if err == nil {
			var entry domain.ExchangeRate
			if err := json.Unmarshal([]byte(cached), &entry); err == nil {
				return &entry, nil
			}
		}
	}

	entry, err := s.repo.Latest()
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrRateNotSet
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(entry); err == nil {
			s.redisClient.Set(ctx, rateCacheKey, data, rateCacheTTL)
		}
	}
	return entry, nil
}
