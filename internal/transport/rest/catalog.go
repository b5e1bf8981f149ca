package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon/internal/domain"
)

type serviceQuery struct {
	ProfessionalID string `form:"professional_id"`
	Category       string `form:"category"`
}

// @Summary List services
// @Tags Services
// @Produce json
// @Param professional_id query string false "Only services of this professional"
// @Param category query string false "Category"
// @Success 200 {object} successResponseBody{data=[]domain.Service}
// @Failure 500 {object} errorResponseBody
// @Router /services [get]
func (h *Handler) getServices(c *gin.Context) {
	var q serviceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	var filter domain.ServiceFilter
	if q.ProfessionalID != "" {
		filter.ProfessionalID = &q.ProfessionalID
	}
	if q.Category != "" {
		filter.Category = &q.Category
	}

	services, err := h.services.Catalog.List(c.Request.Context(), filter)
	if err != nil {
		serviceErrorResponse(c, err, "services not found")
		return
	}

	successResponse(c, http.StatusOK, services)
}

// @Summary Get a service
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} successResponseBody{data=domain.Service}
// @Failure 404 {object} errorResponseBody
// @Router /services/{id} [get]
func (h *Handler) getServiceByID(c *gin.Context) {
	svc, err := h.services.Catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err, "service not found")
		return
	}

	successResponse(c, http.StatusOK, svc)
}

// @Summary Create a service
// @Tags Admin
// @Accept json
// @Produce json
// @Param input body domain.CreateServiceDTO true "Service"
// @Success 201 {object} successResponseBody{data=domain.Service}
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/services [post]
func (h *Handler) createService(c *gin.Context) {
	var req domain.CreateServiceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	svc, err := h.services.Catalog.Create(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err, "service not found")
		return
	}

	createdResponse(c, svc)
}

// @Summary Update a service
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param input body domain.UpdateServiceDTO true "Fields to change"
// @Success 200 {object} successResponseBody{data=domain.Service}
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/services/{id} [put]
func (h *Handler) updateService(c *gin.Context) {
	var req domain.UpdateServiceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	svc, err := h.services.Catalog.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		serviceErrorResponse(c, err, "service not found")
		return
	}

	successResponse(c, http.StatusOK, svc)
}

// @Summary Delete a service
// @Description Fails with 409 while appointments reference the service
// @Tags Admin
// @Param id path string true "Service ID"
// @Success 204
// @Failure 404 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/services/{id} [delete]
func (h *Handler) deleteService(c *gin.Context) {
	if err := h.services.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err, "service not found")
		return
	}

	noContentResponse(c)
}
