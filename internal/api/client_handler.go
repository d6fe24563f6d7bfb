package api

import (
	"net/http"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves the member endpoints.
type ClientHandler struct {
	clientService service.ClientService
	logger        *zap.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{clientService: clientService, logger: logger}
}

// --- Request/Response Structs ---

type ClientRequest struct {
	Name           string `json:"name"`
	MembershipType string `json:"membershipType"`
	Status         string `json:"status"`
	JoinDate       string `json:"joinDate"`
}

func (r ClientRequest) toDomain() *domain.Client {
	return &domain.Client{
		Name:           r.Name,
		MembershipType: r.MembershipType,
		Status:         r.Status,
		JoinDate:       r.JoinDate,
	}
}

type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// --- Handler Methods ---

// CreateClient godoc
// @Summary Add a member
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body ClientRequest true "Member details"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /api/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, domain.MsgFieldsRequired)
		return
	}

	id, err := h.clientService.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		handleServiceError(c, h.logger, "create client", err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Message: "Client added successfully", ID: id})
}

// GetClient godoc
// @Summary Get a member
// @Tags Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 404 {object} MessageResponse
// @Router /api/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get client", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetAllClients godoc
// @Summary List members
// @Tags Clients
// @Produce json
// @Success 200 {array} domain.Client
// @Router /api/clients [get]
func (h *ClientHandler) GetAllClients(c *gin.Context) {
	clients, err := h.clientService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "list clients", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// UpdateClient godoc
// @Summary Update a member
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body ClientRequest true "Member details"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, domain.MsgFieldsRequired)
		return
	}

	if err := h.clientService.Update(c.Request.Context(), c.Param("id"), req.toDomain()); err != nil {
		handleServiceError(c, h.logger, "update client", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Client updated successfully"})
}

// DeleteClient godoc
// @Summary Delete a member
// @Description Succeeds whether or not the member existed.
// @Tags Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} MessageResponse
// @Router /api/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clientService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete client", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Client deleted successfully"})
}

// SearchClients godoc
// @Summary Search members
// @Description Exact-match filters; omitted filters match everything.
// @Tags Clients
// @Produce json
// @Param name query string false "Name"
// @Param membershipType query string false "Membership type"
// @Param status query string false "Status"
// @Success 200 {object} map[string][]domain.Client
// @Router /api/clients/search [get]
func (h *ClientHandler) SearchClients(c *gin.Context) {
	filter := domain.ClientFilter{
		Name:           c.Query("name"),
		MembershipType: c.Query("membershipType"),
		Status:         c.Query("status"),
	}
	clients, err := h.clientService.Search(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, h.logger, "search clients", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// RequestPhotoUpload godoc
// @Summary Get an upload URL for a member photo
// @Description Returns a presigned PUT URL; the upload must send the same Content-Type.
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param body body PhotoUploadRequest true "Photo content type"
// @Success 200 {object} service.PhotoUpload
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 503 {object} MessageResponse
// @Router /api/clients/{id}/photo [post]
func (h *ClientHandler) RequestPhotoUpload(c *gin.Context) {
	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "contentType is required")
		return
	}

	upload, err := h.clientService.RequestPhotoUpload(c.Request.Context(), c.Param("id"), req.ContentType)
	if err != nil {
		handleServiceError(c, h.logger, "request photo upload", err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

// GetPhoto godoc
// @Summary Get a download URL for a member photo
// @Tags Clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} MessageResponse
// @Router /api/clients/{id}/photo [get]
func (h *ClientHandler) GetPhoto(c *gin.Context) {
	url, err := h.clientService.GetPhotoURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get photo", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}
