package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon/internal/domain"
)

// @Summary Salon settings
// @Tags Settings
// @Produce json
// @Success 200 {object} successResponseBody{data=domain.SalonSettings}
// @Router /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.services.Settings.Get(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err, "settings not found")
		return
	}

	successResponse(c, http.StatusOK, settings)
}

// @Summary Update salon settings
// @Tags Admin
// @Accept json
// @Produce json
// @Param input body domain.UpdateSettingsDTO true "Fields to change"
// @Success 200 {object} successResponseBody{data=domain.SalonSettings}
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/settings [put]
func (h *Handler) updateSettings(c *gin.Context) {
	var req domain.UpdateSettingsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	settings, err := h.services.Settings.Update(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err, "settings not found")
		return
	}

	successResponse(c, http.StatusOK, settings)
}

// @Summary Upload the salon cover photo
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Image (JPEG, PNG, GIF or WebP, up to 5 MB)"
// @Success 200 {object} successResponseBody{data=map[string]string}
// @Failure 400 {object} errorResponseBody
// @Failure 503 {object} errorResponseBody "File storage is not configured"
// @Security ApiKeyAuth
// @Router /admin/settings/cover [post]
func (h *Handler) uploadCoverPhoto(c *gin.Context) {
	data, filename, err := readPhoto(c)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	coverURL, err := h.services.Settings.UploadCover(c.Request.Context(), data, filename)
	if err != nil {
		serviceErrorResponse(c, err, "settings not found")
		return
	}

	successResponse(c, http.StatusOK, gin.H{"cover_photo": coverURL})
}
