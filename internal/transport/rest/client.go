package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type clientQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

// @Summary List clients
// @Description Clients ordered by most recent visit
// @Tags Admin
// @Produce json
// @Param search query string false "Name or phone fragment"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} paginatedResponse{data=[]domain.Client}
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/clients [get]
func (h *Handler) getClients(c *gin.Context) {
	var q clientQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}

	clients, total, err := h.services.Client.List(c.Request.Context(), domain.ClientFilter{
		Search: q.Search,
		Limit:  q.Limit,
		Offset: (q.Page - 1) * q.Limit,
	})
	if err != nil {
		serviceErrorResponse(c, err, "clients not found")
		return
	}

	paginatedSuccessResponse(c, clients, total, q.Page, q.Limit)
}

// @Summary Get a client
// @Description Client totals with every appointment in booking order
// @Tags Admin
// @Produce json
// @Param phone path string true "Phone"
// @Success 200 {object} successResponseBody{data=domain.Client}
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/clients/{phone} [get]
func (h *Handler) getClientByPhone(c *gin.Context) {
	client, err := h.services.Client.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		serviceErrorResponse(c, err, "client not found")
		return
	}

	successResponse(c, http.StatusOK, client)
}
