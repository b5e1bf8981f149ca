package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon/internal/domain"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

type successResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type messageResponseType struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type paginatedResponse struct {
	Data       any `json:"data"`
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

func successResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func validationErrorResponse(c *gin.Context, details map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponseBody{
		Status:  "error",
		Message: "validation failed",
		Code:    http.StatusBadRequest,
		Details: details,
	})
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponseType{
		Status:  "success",
		Message: message,
	})
}

func paginatedSuccessResponse(c *gin.Context, data any, totalCount, page, pageSize int) {
	totalPages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, paginatedResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

func createdResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func noContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context) {
	errorResponse(c, http.StatusUnauthorized, "authorization required")
}

func forbiddenResponse(c *gin.Context, message ...string) {
	msg := "access denied"
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	errorResponse(c, http.StatusForbidden, msg)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

func internalServerErrorResponse(c *gin.Context) {
	errorResponse(c, http.StatusInternalServerError, "internal server error")
}

// serviceErrorResponse maps a service error onto the matching status code.
// notFound is the message used for domain.ErrNotFound.
func serviceErrorResponse(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		notFoundResponse(c, notFound)
	case errors.Is(err, domain.ErrSlotTaken):
		errorResponse(c, http.StatusConflict, "this time slot is already booked")
	case errors.Is(err, domain.ErrProfessionalInUse):
		errorResponse(c, http.StatusConflict, "professional has appointments and cannot be deleted")
	case errors.Is(err, domain.ErrServiceInUse):
		errorResponse(c, http.StatusConflict, "service has appointments and cannot be deleted")
	case errors.Is(err, domain.ErrInvalidInput):
		badRequestResponse(c, err.Error())
	case errors.Is(err, domain.ErrStorageDisabled):
		errorResponse(c, http.StatusServiceUnavailable, "file storage is not configured")
	default:
		_ = c.Error(err)
		internalServerErrorResponse(c)
	}
}
