package api

import (
	"net/http"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrainerHandler serves the trainer endpoints.
type TrainerHandler struct {
	trainerService service.TrainerService
	logger         *zap.Logger
}

// NewTrainerHandler creates a new TrainerHandler.
func NewTrainerHandler(trainerService service.TrainerService, logger *zap.Logger) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService, logger: logger}
}

// --- Request/Response Structs ---

type TrainerRequest struct {
	Name            string `json:"name"`
	Speciality      string `json:"speciality"`
	AssignedClasses string `json:"assignedClasses"`
	ContactInfo     string `json:"contactInfo"`
	Status          string `json:"status"`
}

func (r TrainerRequest) toDomain() *domain.Trainer {
	return &domain.Trainer{
		Name:            r.Name,
		Speciality:      r.Speciality,
		AssignedClasses: r.AssignedClasses,
		ContactInfo:     r.ContactInfo,
		Status:          r.Status,
	}
}

type ScheduleRequest struct {
	TrainerID     string   `json:"trainerId"`
	ClassSchedule []string `json:"classSchedule"`
}

// --- Handler Methods ---

// CreateTrainer godoc
// @Summary Add a trainer
// @Description Status defaults to "active" when omitted.
// @Tags Trainers
// @Accept json
// @Produce json
// @Param trainer body TrainerRequest true "Trainer details"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} MessageResponse
// @Router /api/trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, domain.MsgFieldsRequired)
		return
	}

	id, err := h.trainerService.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		handleServiceError(c, h.logger, "create trainer", err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Message: "Trainer added successfully", ID: id})
}

// GetTrainer godoc
// @Summary Get a trainer
// @Tags Trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} domain.Trainer
// @Failure 404 {object} MessageResponse
// @Router /api/trainers/{id} [get]
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	trainer, err := h.trainerService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get trainer", err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// GetAllTrainers godoc
// @Summary List trainers
// @Tags Trainers
// @Produce json
// @Success 200 {array} domain.Trainer
// @Router /api/trainers [get]
func (h *TrainerHandler) GetAllTrainers(c *gin.Context) {
	trainers, err := h.trainerService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "list trainers", err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// UpdateTrainer godoc
// @Summary Update a trainer
// @Tags Trainers
// @Accept json
// @Produce json
// @Param id path string true "Trainer ID"
// @Param trainer body TrainerRequest true "Trainer details"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/trainers/{id} [put]
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, domain.MsgFieldsRequired)
		return
	}

	if err := h.trainerService.Update(c.Request.Context(), c.Param("id"), req.toDomain()); err != nil {
		handleServiceError(c, h.logger, "update trainer", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Trainer updated successfully"})
}

// DeleteTrainer godoc
// @Summary Delete a trainer
// @Tags Trainers
// @Produce json
// @Param id path string true "Trainer ID"
// @Success 200 {object} MessageResponse
// @Router /api/trainers/{id} [delete]
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	if err := h.trainerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete trainer", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Trainer deleted successfully"})
}

// SearchTrainers godoc
// @Summary Search trainers
// @Tags Trainers
// @Produce json
// @Param name query string false "Name"
// @Param speciality query string false "Speciality"
// @Param status query string false "Status"
// @Success 200 {object} map[string][]domain.Trainer
// @Router /api/trainers/search [get]
func (h *TrainerHandler) SearchTrainers(c *gin.Context) {
	filter := domain.TrainerFilter{
		Name:       c.Query("name"),
		Speciality: c.Query("speciality"),
		Status:     c.Query("status"),
	}
	trainers, err := h.trainerService.Search(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, h.logger, "search trainers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainers": trainers})
}

// ManageSchedule godoc
// @Summary Replace a trainer's class schedule
// @Tags Trainers
// @Accept json
// @Produce json
// @Param body body ScheduleRequest true "Trainer and class ids"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/trainers/schedule [post]
func (h *TrainerHandler) ManageSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TrainerID == "" || req.ClassSchedule == nil {
		abortWithError(c, http.StatusBadRequest, "Trainer ID and Class Schedule are required")
		return
	}

	if err := h.trainerService.ManageSchedule(c.Request.Context(), req.TrainerID, req.ClassSchedule); err != nil {
		handleServiceError(c, h.logger, "manage schedule", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Trainer schedule updated successfully"})
}
