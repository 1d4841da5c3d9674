package civiltime

import (
	"log/slog"

	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// Config выбор стратегии конвертации локального времени в UTC
type Config struct {
	Strategy string `envconfig:"STRATEGY" default:"tzdb"` // "tzdb" | "heuristic"
}

// New создаёт конвертер согласно конфигурации.
// Обе стратегии реализуют один интерфейс и взаимозаменяемы.
func New(cfg *Config, log *slog.Logger) service.ICivilTimeConverter {
	if cfg != nil && cfg.Strategy == "heuristic" {
		log.Info("civil time converter strategy", "strategy", "heuristic")
		return NewHeuristic(log)
	}
	log.Info("civil time converter strategy", "strategy", "tzdb")
	return NewTzdb(log)
}
