package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"backoffice-service/internal/domain"
	"backoffice-service/internal/infra"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

// MinSearchLength mirrors the SPA's rule: queries under three characters are
// never sent. The debounce stays client-side; the length floor is enforced
// here too.
const MinSearchLength = 3

const MsgQueryTooShort = "La búsqueda requiere al menos 3 caracteres"

const searchCacheTTL = 10 * time.Second

// CatalogService fronts product search for the add-item panel. Results are
// cached briefly and identical in-flight queries are collapsed, since a
// typing admin fires near-duplicate searches in bursts.
type CatalogService struct {
	orders      infra.OrderClientInterface
	redisClient *redis.Client
	group       singleflight.Group
}

func NewCatalogService(orders infra.OrderClientInterface) *CatalogService {
	return &CatalogService{orders: orders}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// SearchProducts returns catalog matches for the query text.
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchLength {
		return nil, &domain.ValidationError{Message: MsgQueryTooShort}
	}

	cacheKey := "products:search:" + strings.ToLower(query)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var products []domain.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	v, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		return s.orders.SearchProducts(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	products := v.([]domain.Product)

	if s.redisClient != nil {
		if data, err := json.Marshal(products); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, searchCacheTTL)
		}
	}
	return products, nil
}
