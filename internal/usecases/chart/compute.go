package chart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/admin/astro-services/chart-engine/internal/astro"
	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// cacheTTL время жизни мемоизированной карты. Вычисление чистое по
// (дата, время, место), поэтому кешировать безопасно.
const cacheTTL = 24 * time.Hour

// ComputeChartAngles полный расчёт карты: место → UTC → юлианский день →
// звёздное время → углы → дома → позиции планет. Плохие входные данные
// не роняют запрос: движок деградирует и помечает результат флагами.
// Жёсткая ошибка возможна только для нечитаемой даты рождения.
func (s *Service) ComputeChartAngles(ctx context.Context, requestID uuid.UUID, placeName, localDate, localTime string) (*domain.ChartAngles, error) {
	if cached := s.lookupCached(ctx, placeName, localDate, localTime, requestID); cached != nil {
		s.publishOrLog(ctx, requestID, cached)
		return cached, nil
	}

	var diags domain.Diagnostics

	place, confidence := s.PlaceResolver.Resolve(placeName)
	if confidence == service.ConfidenceFallback {
		diags.PlaceFallback = true
	}

	utc, report, err := s.TimeConverter.ToUtc(localDate, localTime, place)
	if err != nil {
		return nil, fmt.Errorf("failed to convert birth moment to UTC: %w", err)
	}
	diags.TimeCoerced = report.TimeCoerced
	diags.NaiveUTCFallback = report.NaiveFallback

	jd := astro.JulianDay(utc)
	gst := astro.GreenwichSiderealTime(jd)
	lst := astro.LocalSiderealTime(gst, place.Longitude)

	mc := astro.Midheaven(lst)
	asc, err := astro.Ascendant(lst, place.Latitude, astro.Obliquity)
	if err != nil {
		if !errors.Is(err, domain.ErrNumericDomain) {
			return nil, fmt.Errorf("failed to compute ascendant: %w", err)
		}
		// широта у полюса: сентинел 0° и флаг деградации вместо падения
		s.Log.Warn("ascendant computation degraded",
			"error", err,
			"latitude", place.Latitude,
		)
		asc = 0
		diags.DegradedAngles = true
	}

	houses := astro.BuildHouseSystem(asc, mc)

	positions, tier := s.Positions.FetchAll(ctx, utc, place)
	diags.MockData = tier == domain.TierMock

	planets := make(map[domain.Planet]domain.PlacedPlanet, len(positions))
	for planet, pos := range positions {
		placed := domain.PlacedPlanet{Position: pos}
		if pos.Available {
			placed.Placement = astro.Placement(pos.Longitude)
			placed.House = astro.HouseOf(pos.Longitude, houses)
		}
		planets[planet] = placed
	}

	chart := &domain.ChartAngles{
		RequestID:   requestID,
		Utc:         utc,
		JulianDay:   jd,
		GST:         gst,
		LST:         lst,
		Place:       place,
		Houses:      houses,
		Planets:     planets,
		Source:      tier,
		Diagnostics: diags,
	}

	s.Log.Info("chart angles computed",
		"request_id", requestID,
		"place", place.Name,
		"utc", utc.String(),
		"ascendant", houses.Ascendant,
		"mc", houses.MC,
		"source_tier", tier,
		"degraded", diags.Degraded(),
	)

	s.memoize(ctx, placeName, localDate, localTime, chart)
	s.publishOrLog(ctx, requestID, chart)

	return chart, nil
}

// cacheKey ключ мемоизации по тройке (дата, время, место)
func cacheKey(placeName, localDate, localTime string) string {
	return fmt.Sprintf("chart:angles:%s|%s|%s",
		localDate, localTime, strings.ToLower(strings.TrimSpace(placeName)))
}

// lookupCached возвращает мемоизированную карту, если она есть.
// RequestID подменяется на текущий: сама карта от него не зависит.
func (s *Service) lookupCached(ctx context.Context, placeName, localDate, localTime string, requestID uuid.UUID) *domain.ChartAngles {
	if s.Cache == nil {
		return nil
	}

	raw, err := s.Cache.Get(ctx, cacheKey(placeName, localDate, localTime))
	if err != nil || raw == "" {
		return nil
	}

	var chart domain.ChartAngles
	if err := json.Unmarshal([]byte(raw), &chart); err != nil {
		s.Log.Warn("failed to unmarshal cached chart, recomputing", "error", err)
		return nil
	}

	chart.RequestID = requestID
	s.Log.Debug("chart angles served from cache",
		"request_id", requestID,
		"place", chart.Place.Name,
	)
	return &chart
}

// memoize сохраняет карту в кеш, отказ кеша нефатален
func (s *Service) memoize(ctx context.Context, placeName, localDate, localTime string, chart *domain.ChartAngles) {
	if s.Cache == nil {
		return
	}

	data, err := json.Marshal(chart)
	if err != nil {
		s.Log.Warn("failed to marshal chart for cache", "error", err)
		return
	}

	if err := s.Cache.Set(ctx, cacheKey(placeName, localDate, localTime), string(data), cacheTTL); err != nil {
		s.Log.Warn("failed to cache chart (non-critical)", "error", err)
	}
}

// publishOrLog публикует карту в Kafka, не падает если продюсер не настроен
func (s *Service) publishOrLog(ctx context.Context, requestID uuid.UUID, chart *domain.ChartAngles) {
	if s.Producer == nil {
		return
	}

	if err := s.Producer.PublishChartAngles(ctx, requestID, chart); err != nil {
		s.Log.Warn("failed to publish chart angles (non-critical)",
			"error", err,
			"request_id", requestID,
		)
	}
}
