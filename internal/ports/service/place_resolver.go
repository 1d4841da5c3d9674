package service

import "github.com/admin/astro-services/chart-engine/internal/domain"

// ResolutionConfidence уверенность резолвера в найденном месте
type ResolutionConfidence string

const (
	ConfidenceExact    ResolutionConfidence = "exact"    // точное совпадение имени
	ConfidencePartial  ResolutionConfidence = "partial"  // совпадение по токенам
	ConfidenceFallback ResolutionConfidence = "fallback" // место не найдено, подставлен дефолт
)

// IPlaceResolver резолвит свободный текст места рождения в запись газетира.
// Никогда не возвращает ошибку: при промахе подставляется дефолтное место,
// а вызывающий узнаёт об этом по уровню уверенности.
type IPlaceResolver interface {
	Resolve(name string) (domain.GeoPlace, ResolutionConfidence)
}
