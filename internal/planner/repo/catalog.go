package repo

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	errx "github.com/strathwell/planner-engine/internal/core/error"
	"github.com/strathwell/planner-engine/internal/planner/catalog"
	"github.com/strathwell/planner-engine/internal/planner/model"
	logx "github.com/strathwell/planner-engine/pkg/logger"
)

const (
	venuesKey   = "catalog:venues"
	servicesKey = "catalog:services"
)

// RedisCatalogRepository serves catalog snapshots out of Redis. Listings are
// stored as JSON arrays under fixed keys and refreshed by an external sync
// job; only listings with status "active" are surfaced to the engine.
type RedisCatalogRepository struct {
	rdb redis.Cmdable
}

func NewRedisCatalogRepository(rdb redis.Cmdable) *RedisCatalogRepository {
	return &RedisCatalogRepository{rdb: rdb}
}

func (r *RedisCatalogRepository) ActiveVenues(ctx context.Context) ([]model.Venue, error) {
	raw, err := r.rdb.Get(ctx, venuesKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", venuesKey).Msg("failed to load venue snapshot from redis")
		return nil, errx.WrapRedis(err)
	}

	var venues []model.Venue
	if err := json.Unmarshal([]byte(raw), &venues); err != nil {
		logx.Error().Err(err).Str("key", venuesKey).Msg("failed to unmarshal venue snapshot")
		return nil, errx.Wrap(err, errx.CatalogErrorMessage)
	}

	active := venues[:0]
	for _, v := range venues {
		if v.Status == "active" {
			active = append(active, v)
		}
	}
	return active, nil
}

func (r *RedisCatalogRepository) ActiveServices(ctx context.Context) ([]model.Service, error) {
	raw, err := r.rdb.Get(ctx, servicesKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logx.Error().Err(err).Str("key", servicesKey).Msg("failed to load service snapshot from redis")
		return nil, errx.WrapRedis(err)
	}

	var services []model.Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		logx.Error().Err(err).Str("key", servicesKey).Msg("failed to unmarshal service snapshot")
		return nil, errx.Wrap(err, errx.CatalogErrorMessage)
	}

	active := services[:0]
	for _, s := range services {
		if s.Status == "active" {
			active = append(active, s)
		}
	}
	return active, nil
}

// Seed writes the demo catalog into Redis. Meant for local runs where no
// sync job populates the snapshot keys.
func (r *RedisCatalogRepository) Seed(ctx context.Context) error {
	vb, err := json.Marshal(catalog.DemoVenues)
	if err != nil {
		return err
	}
	sb, err := json.Marshal(catalog.DemoServices)
	if err != nil {
		return err
	}

	if err := r.rdb.Set(ctx, venuesKey, vb, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", venuesKey).Msg("failed to seed venue snapshot")
		return errx.WrapRedis(err)
	}
	if err := r.rdb.Set(ctx, servicesKey, sb, 0).Err(); err != nil {
		logx.Error().Err(err).Str("key", servicesKey).Msg("failed to seed service snapshot")
		return errx.WrapRedis(err)
	}

	logx.Debug().
		Int("venues", len(catalog.DemoVenues)).
		Int("services", len(catalog.DemoServices)).
		Msg("Seeded demo catalog into redis")
	return nil
}

var _ model.CatalogRepository = (*RedisCatalogRepository)(nil)

// StaticCatalogRepository serves an in-memory snapshot. Used in tests and
// as a fallback when Redis holds no catalog.
type StaticCatalogRepository struct {
	Venues   []model.Venue
	Services []model.Service
}

func NewDemoCatalogRepository() *StaticCatalogRepository {
	return &StaticCatalogRepository{
		Venues:   catalog.DemoVenues,
		Services: catalog.DemoServices,
	}
}

func (r *StaticCatalogRepository) ActiveVenues(ctx context.Context) ([]model.Venue, error) {
	active := make([]model.Venue, 0, len(r.Venues))
	for _, v := range r.Venues {
		if v.Status == "active" {
			active = append(active, v)
		}
	}
	return active, nil
}

func (r *StaticCatalogRepository) ActiveServices(ctx context.Context) ([]model.Service, error) {
	active := make([]model.Service, 0, len(r.Services))
	for _, s := range r.Services {
		if s.Status == "active" {
			active = append(active, s)
		}
	}
	return active, nil
}

var _ model.CatalogRepository = (*StaticCatalogRepository)(nil)
