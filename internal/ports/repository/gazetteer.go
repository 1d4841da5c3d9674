package repository

import (
	"context"

	"github.com/admin/astro-services/chart-engine/internal/domain"
)

// IGazetteerRepo читает записи газетира из постоянного хранилища.
// Движку нужен только read-доступ: таблица заливается миграцией
// и внешними инструментами.
type IGazetteerRepo interface {
	LoadAll(ctx context.Context) ([]domain.GeoPlace, error)
}
