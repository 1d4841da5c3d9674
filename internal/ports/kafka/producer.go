package kafka

import (
	"context"

	"github.com/admin/astro-services/chart-engine/internal/domain"
	"github.com/google/uuid"
)

// IKafkaProducer интерфейс для отправки сообщений в Kafka
type IKafkaProducer interface {
	// PublishChartAngles публикует рассчитанную карту для рендеринга/персистентности
	PublishChartAngles(ctx context.Context, requestID uuid.UUID, chart *domain.ChartAngles) error
	// Send отправляет произвольное сообщение
	Send(ctx context.Context, key string, value []byte) error
	// Close закрывает producer
	Close() error
}
