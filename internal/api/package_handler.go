package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PackageHandler serves the membership package endpoints.
type PackageHandler struct {
	packageService service.PackageService
	logger         *zap.Logger
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(packageService service.PackageService, logger *zap.Logger) *PackageHandler {
	return &PackageHandler{packageService: packageService, logger: logger}
}

// PackageRequest takes the price as a pointer so an absent price can be told
// apart from zero. A non-numeric price fails JSON decoding.
type PackageRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
}

// bindPackage decodes the body and returns the message for a bad request.
func bindPackage(c *gin.Context) (*domain.Package, string) {
	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "price" {
			return nil, domain.MsgPriceNotPositive
		}
		return nil, domain.MsgFieldsRequired
	}
	if req.Price == nil {
		return nil, domain.MsgFieldsRequired
	}
	return &domain.Package{
		Name:        req.Name,
		Price:       *req.Price,
		Duration:    req.Duration,
		Description: req.Description,
	}, ""
}

// CreatePackage godoc
// @Summary Add a membership package
// @Tags Packages
// @Accept json
// @Produce json
// @Param package body PackageRequest true "Package details"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} MessageResponse
// @Router /api/packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	pkg, msg := bindPackage(c)
	if pkg == nil {
		abortWithError(c, http.StatusBadRequest, msg)
		return
	}

	id, err := h.packageService.Create(c.Request.Context(), pkg)
	if err != nil {
		handleServiceError(c, h.logger, "create package", err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Message: "Package added successfully", ID: id})
}

// GetPackage godoc
// @Summary Get a membership package
// @Tags Packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} domain.Package
// @Failure 404 {object} MessageResponse
// @Router /api/packages/{id} [get]
func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkg, err := h.packageService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get package", err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// GetAllPackages godoc
// @Summary List membership packages
// @Tags Packages
// @Produce json
// @Success 200 {array} domain.Package
// @Router /api/packages [get]
func (h *PackageHandler) GetAllPackages(c *gin.Context) {
	packages, err := h.packageService.GetAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "list packages", err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// UpdatePackage godoc
// @Summary Update a membership package
// @Description createdAt is preserved.
// @Tags Packages
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param package body PackageRequest true "Package details"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /api/packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	pkg, msg := bindPackage(c)
	if pkg == nil {
		abortWithError(c, http.StatusBadRequest, msg)
		return
	}

	if err := h.packageService.Update(c.Request.Context(), c.Param("id"), pkg); err != nil {
		handleServiceError(c, h.logger, "update package", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Package updated successfully"})
}

// DeletePackage godoc
// @Summary Delete a membership package
// @Tags Packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} MessageResponse
// @Router /api/packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	if err := h.packageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete package", err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Package deleted successfully"})
}
