package gazetteerRepo

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/persistence"
	ports "github.com/admin/astro-services/chart-engine/internal/ports/repository"
)

type gazetteerColumns struct {
	TableName  string
	Name       string
	Longitude  string
	Latitude   string
	AltitudeKm string
	TimezoneID string
	Country    string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns gazetteerColumns
}

// New создаёт новый репозиторий газетира
func New(db persistence.Persistence, log *slog.Logger) ports.IGazetteerRepo {
	cols := gazetteerColumns{
		TableName:  "gazetteer",
		Name:       "name",
		Longitude:  "longitude",
		Latitude:   "latitude",
		AltitudeKm: "altitude_km",
		TimezoneID: "timezone_id",
		Country:    "country",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (6 колонок)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		r.columns.Name,
		r.columns.Longitude,
		r.columns.Latitude,
		r.columns.AltitudeKm,
		r.columns.TimezoneID,
		r.columns.Country)
}

// LoadAll загружает все записи газетира.
// Порядок вставки сохраняется: первая запись — дефолтное место при промахе резолвера.
func (r *Repository) LoadAll(ctx context.Context) ([]domain.GeoPlace, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id`,
		r.allColumns(),
		r.columns.TableName)

	var places []domain.GeoPlace
	if err := r.db.Select(ctx, &places, query); err != nil {
		return nil, fmt.Errorf("failed to load gazetteer: %w", err)
	}

	r.Log.Debug("gazetteer loaded", "places", len(places))

	return places, nil
}
