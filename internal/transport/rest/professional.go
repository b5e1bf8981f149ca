package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon/internal/domain"
)

const maxPhotoBytes = 5 << 20

var errPhotoTooLarge = fmt.Errorf("photo exceeds %d MB", maxPhotoBytes>>20)

// readPhoto loads the multipart "photo" field into memory.
func readPhoto(c *gin.Context) ([]byte, string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes+1<<20)

	header, err := c.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, "", errPhotoTooLarge
		}
		return nil, "", fmt.Errorf("photo field is required: %w", err)
	}
	if header.Size > maxPhotoBytes {
		return nil, "", errPhotoTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > maxPhotoBytes {
		return nil, "", errPhotoTooLarge
	}

	return data, header.Filename, nil
}

// @Summary List professionals
// @Tags Professionals
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.Professional}
// @Failure 500 {object} errorResponseBody
// @Router /professionals [get]
func (h *Handler) getProfessionals(c *gin.Context) {
	professionals, err := h.services.Professional.List(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err, "professionals not found")
		return
	}

	successResponse(c, http.StatusOK, professionals)
}

// @Summary Get a professional
// @Tags Professionals
// @Produce json
// @Param id path string true "Professional ID"
// @Success 200 {object} successResponseBody{data=domain.Professional}
// @Failure 404 {object} errorResponseBody
// @Router /professionals/{id} [get]
func (h *Handler) getProfessionalByID(c *gin.Context) {
	professional, err := h.services.Professional.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	successResponse(c, http.StatusOK, professional)
}

// @Summary Create a professional
// @Tags Admin
// @Accept json
// @Produce json
// @Param input body domain.CreateProfessionalDTO true "Professional"
// @Success 201 {object} successResponseBody{data=domain.Professional}
// @Failure 400 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/professionals [post]
func (h *Handler) createProfessional(c *gin.Context) {
	var req domain.CreateProfessionalDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	professional, err := h.services.Professional.Create(c.Request.Context(), req)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	createdResponse(c, professional)
}

// @Summary Update a professional
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Professional ID"
// @Param input body domain.UpdateProfessionalDTO true "Fields to change"
// @Success 200 {object} successResponseBody{data=domain.Professional}
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/professionals/{id} [put]
func (h *Handler) updateProfessional(c *gin.Context) {
	var req domain.UpdateProfessionalDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	professional, err := h.services.Professional.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	successResponse(c, http.StatusOK, professional)
}

// @Summary Delete a professional
// @Description Fails with 409 while the professional has appointments
// @Tags Admin
// @Param id path string true "Professional ID"
// @Success 204
// @Failure 404 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/professionals/{id} [delete]
func (h *Handler) deleteProfessional(c *gin.Context) {
	if err := h.services.Professional.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	noContentResponse(c)
}

// @Summary Upload a professional's photo
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Professional ID"
// @Param photo formData file true "Image (JPEG, PNG, GIF or WebP, up to 5 MB)"
// @Success 200 {object} successResponseBody{data=map[string]string}
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Failure 503 {object} errorResponseBody "File storage is not configured"
// @Security ApiKeyAuth
// @Router /admin/professionals/{id}/photo [post]
func (h *Handler) uploadProfessionalPhoto(c *gin.Context) {
	data, filename, err := readPhoto(c)
	if err != nil {
		badRequestResponse(c, err.Error())
		return
	}

	photoURL, err := h.services.Professional.UploadPhoto(c.Request.Context(), c.Param("id"), data, filename)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	successResponse(c, http.StatusOK, gin.H{"photo": photoURL})
}

// @Summary Remove a professional's photo
// @Tags Admin
// @Param id path string true "Professional ID"
// @Success 204
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/professionals/{id}/photo [delete]
func (h *Handler) deleteProfessionalPhoto(c *gin.Context) {
	if err := h.services.Professional.DeletePhoto(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	noContentResponse(c)
}
