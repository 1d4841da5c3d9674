package chartController

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	chartUsecase "github.com/admin/astro-services/chart-engine/internal/usecases/chart"
)

type Controller struct {
	ChartService *chartUsecase.Service
	Log          *slog.Logger
}

func New(chartService *chartUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		ChartService: chartService,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/charts/angles", c.handleComputeAngles)
	}
}

// handleComputeAngles синхронный расчёт карты.
// Деградация (fallback места, mock-позиции) — это всё ещё 200:
// клиент разбирает диагностику сам.
func (c *Controller) handleComputeAngles(ctx *gin.Context) {
	var req ComputeChartReq

	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		c.Log.Error(err.Error())
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := uuid.New()

	chart, err := c.ChartService.ComputeChartAngles(ctx.Request.Context(), requestID, req.PlaceName, req.BirthDate, req.BirthTime)
	if err != nil {
		// единственная жёсткая ошибка движка — нечитаемая дата
		c.Log.Warn("chart computation rejected",
			"error", err,
			"request_id", requestID,
		)
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, chart)
}
