package api

import (
	"net/http"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClassHandler serves the class timetable endpoints.
type ClassHandler struct {
	classService service.ClassService
	logger       *zap.Logger
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService service.ClassService, logger *zap.Logger) *ClassHandler {
	return &ClassHandler{classService: classService, logger: logger}
}

type ClassRequest struct {
	Name      string `json:"name"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (r ClassRequest) toDomain() *domain.Class {
	return &domain.Class{Name: r.Name, Day: r.Day, StartTime: r.StartTime, EndTime: r.EndTime}
}

// CreateClass godoc
// @Summary Add a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param class body ClassRequest true "Class details"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} MessageResponse
// @Router /api/classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, domain.MsgFieldsRequired)
		return
	}

	id, err := h.classService.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		handleServiceError(c, h.logger, "create class", err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Message: "Class created successfully", ID: id})
}

// GetClass godoc
// @Summary Get a class
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} domain.Class
// @Failure 404 {object} MessageResponse
// @Router /api/classes/{id} [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	class, err := h.classService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get class", err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// GetAllClasses godoc
// @Summary List classes
// @Tags Classes
// @Produce json
// @Success 200 {array} domain.Class
// @Router /api/classes [get]
func (h *ClassHandler) GetAllClasses(c *gin.Context) {
	classes, err := h.classService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "list classes", err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// UpdateClass godoc
// @Summary Update a class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param class body ClassRequest true "Class details"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/classes/{id} [put]
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var req ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, domain.MsgFieldsRequired)
		return
	}

	if err := h.classService.Update(c.Request.Context(), c.Param("id"), req.toDomain()); err != nil {
		handleServiceError(c, h.logger, "update class", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Class updated successfully"})
}

// DeleteClass godoc
// @Summary Delete a class
// @Tags Classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} MessageResponse
// @Router /api/classes/{id} [delete]
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	if err := h.classService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete class", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Class deleted successfully"})
}
