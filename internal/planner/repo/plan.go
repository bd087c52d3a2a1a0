package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errx "github.com/strathwell/planner-engine/internal/core/error"
	"github.com/strathwell/planner-engine/internal/planner/model"
	logx "github.com/strathwell/planner-engine/pkg/logger"
)

// RedisPlanRepository stores the most recent plan per conversation so the
// frontend can re-fetch it without re-running the graph.
type RedisPlanRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisPlanRepository(rdb redis.Cmdable, ttl time.Duration) *RedisPlanRepository {
	return &RedisPlanRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisPlanRepository) planKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:plan", conversationID)
}

func (r *RedisPlanRepository) SavePlan(ctx context.Context, conversationID string, plan *model.Plan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		logx.Error().Err(err).Str("conversationID", conversationID).Msg("failed to marshal plan")
		return fmt.Errorf("marshal plan: %w", err)
	}
	key := r.planKey(conversationID)

	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save plan to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisPlanRepository) LatestPlan(ctx context.Context, conversationID string) (*model.Plan, error) {
	key := r.planKey(conversationID)

	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to load plan from redis")
		}
		return nil, errx.WrapRedis(err)
	}

	var plan model.Plan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		logx.Error().Err(err).Str("conversationID", conversationID).Msg("failed to unmarshal plan")
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &plan, nil
}

var _ model.PlanRepository = (*RedisPlanRepository)(nil)
