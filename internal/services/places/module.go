package places

import (
	"strings"

	"log/slog"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/admin/astro-services/chart-engine/internal/ports/service"
)

// Service реализует IPlaceResolver поверх загруженного в память газетира.
// Газетир иммутабельный после старта, поэтому сервис безопасен для
// конкурентных запросов без блокировок.
type Service struct {
	places       []domain.GeoPlace
	defaultPlace domain.GeoPlace
	log          *slog.Logger
}

// New создаёт новый резолвер мест.
// При пустом газетире подставляется встроенный датасет,
// дефолтное место при промахе — первая запись.
func New(places []domain.GeoPlace, log *slog.Logger) service.IPlaceResolver {
	if len(places) == 0 {
		log.Warn("gazetteer is empty, falling back to embedded dataset")
		places = embeddedGazetteer
	}
	return &Service{
		places:       places,
		defaultPlace: places[0],
		log:          log,
	}
}

// Resolve резолвит свободный текст места рождения в запись газетира.
// Порядок: точное совпадение без учёта регистра, затем совпадение по токенам,
// затем дефолтное место. Ошибок не бывает: промах виден по уровню уверенности.
func (s *Service) Resolve(name string) (domain.GeoPlace, service.ResolutionConfidence) {
	query := strings.TrimSpace(name)
	if query == "" {
		s.log.Debug("empty place query, using default place", "default", s.defaultPlace.Name)
		return s.defaultPlace, service.ConfidenceFallback
	}

	queryLower := strings.ToLower(query)

	for _, place := range s.places {
		if strings.ToLower(place.Name) == queryLower {
			return place, service.ConfidenceExact
		}
	}

	queryTokens := tokenize(queryLower)
	for _, place := range s.places {
		if tokensOverlap(queryTokens, tokenize(strings.ToLower(place.Name))) {
			s.log.Debug("place resolved by token overlap",
				"query", query,
				"matched", place.Name,
			)
			return place, service.ConfidencePartial
		}
	}

	s.log.Debug("place not resolved, using default place",
		"query", query,
		"default", s.defaultPlace.Name,
	)
	return s.defaultPlace, service.ConfidenceFallback
}

// tokenize разбивает имя места на токены по запятым и пробелам
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// tokensOverlap проверяет совпадение по токенам: подстрочное совпадение
// в любую сторону, короткие токены (до 2 символов) игнорируются,
// чтобы коды стран и предлоги не давали ложных срабатываний
func tokensOverlap(query, candidate []string) bool {
	for _, qt := range query {
		if len(qt) <= 2 {
			continue
		}
		for _, ct := range candidate {
			if len(ct) <= 2 {
				continue
			}
			if strings.Contains(ct, qt) || strings.Contains(qt, ct) {
				return true
			}
		}
	}
	return false
}
