package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	kafkaPorts "github.com/admin/astro-services/chart-engine/internal/ports/kafka"
	chartUsecase "github.com/admin/astro-services/chart-engine/internal/usecases/chart"
)

// ChartRequestHandler обрабатывает асинхронные запросы на расчёт карты
type ChartRequestHandler struct {
	ChartService *chartUsecase.Service
	Log          *slog.Logger
}

// NewChartRequestHandler создаёт новый handler для запросов на расчёт
func NewChartRequestHandler(chartService *chartUsecase.Service, log *slog.Logger) kafkaPorts.MessageHandler {
	return &ChartRequestHandler{
		ChartService: chartService,
		Log:          log,
	}
}

// HandleMessage обрабатывает запрос на расчёт карты.
// Ключ сообщения - request_id, он же идёт ключом в ответный топик,
// так что потребитель может сматчить запрос и результат.
func (h *ChartRequestHandler) HandleMessage(ctx context.Context, key string, value []byte) error {
	var request ChartRequestMessage
	if err := json.Unmarshal(value, &request); err != nil {
		return fmt.Errorf("failed to unmarshal chart request: %w", err)
	}

	requestID, err := uuid.Parse(key)
	if err != nil {
		requestID = uuid.New()
		h.Log.Warn("chart request key is not a valid uuid, generated new request_id",
			"key", key,
			"request_id", requestID,
		)
	}

	if request.BirthDate == "" {
		return fmt.Errorf("birth_date is required in chart request")
	}

	h.Log.Debug("processing chart request",
		"request_id", requestID,
		"place", request.PlaceName,
		"birth_date", request.BirthDate,
	)

	if _, err := h.ChartService.ComputeChartAngles(ctx, requestID, request.PlaceName, request.BirthDate, request.BirthTime); err != nil {
		return fmt.Errorf("failed to compute chart angles: %w", err)
	}

	return nil
}

// ChartRequestMessage структура запроса на расчёт карты
type ChartRequestMessage struct {
	PlaceName string `json:"place_name"`
	BirthDate string `json:"birth_date"` // "2006-01-02"
	BirthTime string `json:"birth_time"` // "15:04", допускается мусор
}
