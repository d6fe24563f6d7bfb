package api

import (
	"context"
	"net/http"

	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler serves the dashboard statistics.
type StatsHandler struct {
	statsService service.StatsService
	logger       *zap.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

// count returns a handler writing {key: n} from fn.
func (h *StatsHandler) count(key string, fn func(context.Context) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := fn(c.Request.Context())
		if err != nil {
			handleServiceError(c, h.logger, "count "+key, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: n})
	}
}

// MembersCount godoc
// @Summary Number of members
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/members [get]
func (h *StatsHandler) MembersCount() gin.HandlerFunc {
	return h.count("membersCount", h.statsService.MembersCount)
}

// TrainersCount godoc
// @Summary Number of trainers
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/trainers [get]
func (h *StatsHandler) TrainersCount() gin.HandlerFunc {
	return h.count("trainersCount", h.statsService.TrainersCount)
}

// ClassesCount godoc
// @Summary Number of classes
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/classes [get]
func (h *StatsHandler) ClassesCount() gin.HandlerFunc {
	return h.count("classesCount", h.statsService.ClassesCount)
}

// PlansCount godoc
// @Summary Number of membership packages
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /stats/plans [get]
func (h *StatsHandler) PlansCount() gin.HandlerFunc {
	return h.count("plansCount", h.statsService.PlansCount)
}

// ClassesPerDay godoc
// @Summary Classes per weekday
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]int
// @Router /stats/classes/count [get]
func (h *StatsHandler) ClassesPerDay(c *gin.Context) {
	counts, err := h.statsService.ClassesPerDay(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "classes per day", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// MonthlyRevenue godoc
// @Summary Revenue for the current month
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]float64
// @Router /stats/revenue [get]
func (h *StatsHandler) MonthlyRevenue(c *gin.Context) {
	total, err := h.statsService.MonthlyRevenue(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "monthly revenue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"monthlyRevenue": total})
}
