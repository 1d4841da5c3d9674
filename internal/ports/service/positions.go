package service

import (
	"context"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

// IPositionProvider один источник позиций планет в цепочке фоллбэков.
// Провайдер не знает про соседей по цепочке: порядок и переключение —
// ответственность сервиса позиций.
type IPositionProvider interface {
	// Name имя источника для логов
	Name() string
	// Tier уровень источника в цепочке
	Tier() domain.SourceTier
	// RateLimited true, если запросы по планетам нужно сериализовать с паузой
	RateLimited() bool
	// FetchPlanet позиция одной планеты на момент utc для координат места
	FetchPlanet(ctx context.Context, planet domain.Planet, utc domain.UtcInstant, place domain.GeoPlace) (domain.PlanetaryPosition, error)
}

// IPositionsService полный проход по цепочке источников для одной карты
type IPositionsService interface {
	// FetchAll возвращает позиции всех планет и уровень источника,
	// с которого они получены. Частично недоступные планеты приходят
	// с Available=false, ошибки наружу не выходят — при полном отказе
	// всех уровней возвращается TierMock с синтетическими данными.
	FetchAll(ctx context.Context, utc domain.UtcInstant, place domain.GeoPlace) (map[domain.Planet]domain.PlanetaryPosition, domain.SourceTier)
}
