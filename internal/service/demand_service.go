package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"aidbridge/internal/domain"
	"aidbridge/internal/store"
)

const (
	demandCacheKey = "reports:high-demand"
	demandCacheTTL = time.Minute
)

// demandTopN limits the report to the highest-demand categories.
const demandTopN = 5

type DemandService interface {
	HighDemand(ctx context.Context) ([]domain.CategoryDemand, error)
}

type demandService struct {
	store *store.Store
	redis *redis.Client
}

func NewDemandService(st *store.Store, rdb *redis.Client) DemandService {
	return &demandService{store: st, redis: rdb}
}

// HighDemand sums the requested quantity of outstanding requests (status
// requested or approved) per category and returns the top categories by
// descending total. Ties keep the order in which a category first appears
// in the request list, so the sort must be stable.
func (s *demandService) HighDemand(ctx context.Context) ([]domain.CategoryDemand, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, demandCacheKey).Result(); err == nil {
			var result []domain.CategoryDemand
			if json.Unmarshal([]byte(cached), &result) == nil {
				return result, nil
			}
		}
	}

	totals := make(map[domain.Category]int)
	order := []domain.Category{}

	for _, req := range s.store.Requests() {
		if req.Status != domain.StatusRequested && req.Status != domain.StatusApproved {
			continue
		}
		if _, seen := totals[req.Category]; !seen {
			order = append(order, req.Category)
		}
		totals[req.Category] += req.Quantity
	}

	result := make([]domain.CategoryDemand, 0, len(order))
	for _, category := range order {
		result = append(result, domain.CategoryDemand{Category: category, Quantity: totals[category]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Quantity > result[j].Quantity
	})
	if len(result) > demandTopN {
		result = result[:demandTopN]
	}

	if s.redis != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.redis.Set(ctx, demandCacheKey, data, demandCacheTTL).Err()
		}
	}

	return result, nil
}
