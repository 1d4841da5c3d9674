package places

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"log/slog"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	ports "github.com/admin/astro-services/chart-engine/internal/ports/repository"
	"github.com/admin/astro-services/chart-engine/internal/ports/storage"
)

// LoadGazetteer собирает газетир при старте процесса: базовый набор из БД,
// опциональное расширение из S3-датасета. Любой отказ здесь нефатален —
// резолвер умеет работать и со встроенным датасетом.
func LoadGazetteer(ctx context.Context, repo ports.IGazetteerRepo, s3 storage.IS3Client, datasetPath string, log *slog.Logger) []domain.GeoPlace {
	var places []domain.GeoPlace

	if repo != nil {
		loaded, err := repo.LoadAll(ctx)
		if err != nil {
			log.Warn("failed to load gazetteer from db, continuing without it", "error", err)
		} else {
			places = loaded
		}
	}

	if s3 != nil && datasetPath != "" {
		extended, err := loadExtendedDataset(ctx, s3, datasetPath)
		if err != nil {
			log.Warn("failed to load extended gazetteer dataset",
				"error", err,
				"path", datasetPath,
			)
		} else {
			places = mergePlaces(places, extended)
			log.Info("extended gazetteer dataset merged",
				"path", datasetPath,
				"extended", len(extended),
				"total", len(places),
			)
		}
	}

	return places
}

// loadExtendedDataset читает CSV-датасет из S3.
// Формат: name,longitude,latitude,altitude_km,timezone_id,country
func loadExtendedDataset(ctx context.Context, s3 storage.IS3Client, path string) ([]domain.GeoPlace, error) {
	data, err := s3.GetFile(ctx, path)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = 6

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	places := make([]domain.GeoPlace, 0, len(records))
	for i, rec := range records {
		// заголовок
		if i == 0 && strings.EqualFold(rec[0], "name") {
			continue
		}

		lon, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			continue
		}
		alt, _ := strconv.ParseFloat(rec[3], 64)

		places = append(places, domain.GeoPlace{
			Name:       rec[0],
			Longitude:  lon,
			Latitude:   lat,
			AltitudeKm: alt,
			TimezoneID: rec[4],
			Country:    rec[5],
		})
	}

	return places, nil
}

// mergePlaces добавляет расширенные записи, не перекрывая базовые по имени
func mergePlaces(base, extended []domain.GeoPlace) []domain.GeoPlace {
	seen := make(map[string]struct{}, len(base))
	for _, p := range base {
		seen[strings.ToLower(p.Name)] = struct{}{}
	}

	merged := base
	for _, p := range extended {
		key := strings.ToLower(p.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, p)
	}
	return merged
}
