package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/cache"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

const (
	positionsWarmupName = "positions-warmup"

	// positionsCacheKey текущие позиции планет, обновляются раз в сутки
	positionsCacheKey = "astro:positions:current"
)

// PositionsWarmup джоба прогрева кеша: позиции планет на текущие сутки,
// каждый день в 05:00 UTC. Позиции считаются для дефолтного места
// газетира — для витрины "планеты сегодня" точность по месту не важна.
type PositionsWarmup struct {
	positions     service.IPositionsService
	placeResolver service.IPlaceResolver
	cache         cache.Cache
	log           *slog.Logger
}

// NewPositionsWarmup создаёт джобу прогрева позиций
func NewPositionsWarmup(positions service.IPositionsService, placeResolver service.IPlaceResolver, c cache.Cache, log *slog.Logger) *PositionsWarmup {
	return &PositionsWarmup{
		positions:     positions,
		placeResolver: placeResolver,
		cache:         c,
		log:           log,
	}
}

func (j *PositionsWarmup) Name() string {
	return positionsWarmupName
}

// NextRun вычисляет следующее время запуска: 05:00 UTC
func (j *PositionsWarmup) NextRun(now time.Time) time.Time {
	nowUTC := now.UTC()

	next := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 5, 0, 0, 0, time.UTC)
	if next.Before(nowUTC) || next.Equal(nowUTC) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run обновляет позиции планет на текущие сутки в кеше
func (j *PositionsWarmup) Run(ctx context.Context) error {
	if j.cache == nil {
		j.log.Warn("cache is not configured, skipping positions warmup")
		return nil
	}

	now := time.Now().UTC()
	utc := domain.UtcInstant{
		Year:   now.Year(),
		Month:  int(now.Month()),
		Day:    now.Day(),
		Hour:   now.Hour(),
		Minute: now.Minute(),
		Second: now.Second(),
	}

	place, _ := j.placeResolver.Resolve("")

	positions, tier := j.positions.FetchAll(ctx, utc, place)
	if tier == domain.TierMock {
		return fmt.Errorf("positions warmup got mock data, all sources exhausted")
	}

	data, err := json.Marshal(positions)
	if err != nil {
		return fmt.Errorf("failed to marshal positions: %w", err)
	}

	ttl := 25 * time.Hour
	if err := j.cache.Set(ctx, positionsCacheKey, string(data), ttl); err != nil {
		return fmt.Errorf("failed to cache positions: %w", err)
	}

	j.log.Info("current positions warmed up",
		"source_tier", tier,
		"planets", len(positions),
	)
	return nil
}
