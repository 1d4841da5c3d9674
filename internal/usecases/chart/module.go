package chart

import (
	"log/slog"

	"github.com/admin/astro-services/chart-engine/internal/ports/cache"
	"github.com/admin/astro-services/chart-engine/internal/ports/kafka"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// Service бизнес-логика расчёта карты: оркестрация от свободного текста
// места рождения до готового ChartAngles. Кеш и продюсер опциональны —
// без них движок просто считает и отдаёт результат.
type Service struct {
	PlaceResolver service.IPlaceResolver
	TimeConverter service.ICivilTimeConverter
	Positions     service.IPositionsService
	Cache         cache.Cache
	Producer      kafka.IKafkaProducer
	Log           *slog.Logger
}

// New создаёт новый сервис расчёта карт
func New(
	placeResolver service.IPlaceResolver,
	timeConverter service.ICivilTimeConverter,
	positions service.IPositionsService,
	chartCache cache.Cache,
	producer kafka.IKafkaProducer,
	log *slog.Logger,
) *Service {
	return &Service{
		PlaceResolver: placeResolver,
		TimeConverter: timeConverter,
		Positions:     positions,
		Cache:         chartCache,
		Producer:      producer,
		Log:           log,
	}
}
