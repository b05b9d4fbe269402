package handler

import (
	"context"
	"net/http"

	"sparky-backend/internal/model"
	"sparky-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const ServiceName = "AI Maintenance Advisor"

// Advisor produces advice for one analyze request.
type Advisor interface {
	GenerateAdvice(ctx context.Context, query string, history []model.ConversationTurn, vehicleContext string) (model.AdviceResult, error)
}

type AdvisorHandler struct {
	advisor Advisor
}

func NewAdvisorHandler(advisor Advisor) *AdvisorHandler {
	return &AdvisorHandler{
		advisor: advisor,
	}
}

func (h *AdvisorHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.POST("/analyze", h.Analyze)
}

// Health is a static liveness probe.
func (h *AdvisorHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:  "ok",
		Service: ServiceName,
	})
}

func (h *AdvisorHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.WithContext(ctx)

	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Info("rejecting analyze request")
		c.JSON(http.StatusUnprocessableEntity, model.ErrorResponse{Detail: err.Error()})
		return
	}

	vehicleContext := req.VehicleContext()
	log.WithFields(logrus.Fields{
		"vehicle": vehicleContext,
		"history": len(req.History),
	}).Info("analyze request")

	result, err := h.advisor.GenerateAdvice(ctx, req.QueryText(), req.History, vehicleContext)
	if err != nil {
		log.WithError(err).Error("error processing request")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Detail: err.Error()})
		return
	}

	if !result.OK() {
		log.WithField("kind", result.Kind).Warn("returning degraded advice")
	}
	c.JSON(http.StatusOK, result.ToResponse())
}
