package rest

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon/internal/domain"
	"salon/pkg/validator"
)

type agendaQuery struct {
	ProfessionalID string `form:"professional_id"`
	Phone          string `form:"phone"`
	Date           string `form:"date" binding:"omitempty,isodate"`
	DateFrom       string `form:"date_from" binding:"omitempty,isodate"`
	DateTo         string `form:"date_to" binding:"omitempty,isodate"`
	Status         string `form:"status" binding:"omitempty,oneof=confirmed cancelled completed"`
}

func (q agendaQuery) filter() domain.AppointmentFilter {
	var f domain.AppointmentFilter
	if q.ProfessionalID != "" {
		f.ProfessionalID = &q.ProfessionalID
	}
	if phone := validator.NormalizePhone(q.Phone); phone != "" {
		f.Phone = &phone
	}
	if q.Date != "" {
		f.Date = &q.Date
	}
	if q.DateFrom != "" {
		f.DateFrom = &q.DateFrom
	}
	if q.DateTo != "" {
		f.DateTo = &q.DateTo
	}
	if q.Status != "" {
		status := domain.AppointmentStatus(q.Status)
		f.Status = &status
	}
	return f
}

// @Summary Book an appointment
// @Description Books a confirmed appointment. The date must be selectable and the time one of the professional's slots for that day.
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.BookAppointmentDTO true "Booking"
// @Success 201 {object} successResponseBody{data=domain.Appointment}
// @Failure 400 {object} errorResponseBody "Validation error or slot not offered"
// @Failure 409 {object} errorResponseBody "Slot already booked"
// @Failure 429 {object} errorResponseBody "Too many attempts"
// @Failure 500 {object} errorResponseBody
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.BookAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	ctx := c.Request.Context()

	selectable, err := h.services.Booking.IsDateSelectable(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}
	if !selectable {
		badRequestResponse(c, "the professional is not available on this date")
		return
	}

	slots, err := h.services.Booking.AvailableSlots(ctx, req.ProfessionalID, req.Date)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}
	if !slices.Contains(slots, req.Time) {
		badRequestResponse(c, "the professional does not offer this time")
		return
	}

	appointment, err := h.services.Booking.RecordAppointment(ctx, req)
	if err != nil {
		serviceErrorResponse(c, err, "appointment not found")
		return
	}

	createdResponse(c, appointment)
}

// @Summary Agenda
// @Description Appointments ordered by date and time, optionally filtered
// @Tags Admin
// @Produce json
// @Param professional_id query string false "Professional ID"
// @Param phone query string false "Client phone"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param date_from query string false "From date (YYYY-MM-DD)"
// @Param date_to query string false "To date (YYYY-MM-DD)"
// @Param status query string false "confirmed, cancelled or completed"
// @Success 200 {object} successResponseBody{data=[]domain.Appointment}
// @Failure 400 {object} errorResponseBody
// @Failure 401 {object} errorResponseBody
// @Failure 403 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/agenda [get]
func (h *Handler) getAgenda(c *gin.Context) {
	var q agendaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	appointments, err := h.services.Agenda.List(c.Request.Context(), q.filter())
	if err != nil {
		serviceErrorResponse(c, err, "appointments not found")
		return
	}

	successResponse(c, http.StatusOK, appointments)
}

// @Summary Cancel an appointment
// @Description Frees the slot. Cancelling twice is not an error.
// @Tags Admin
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/appointments/{id}/cancel [post]
func (h *Handler) cancelAppointment(c *gin.Context) {
	id := c.Param("id")

	if err := h.services.Booking.CancelAppointment(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err, "appointment not found")
		return
	}

	h.logger.Info("appointment cancelled by admin", zap.String("appointment_id", id), zap.String("subject", c.GetString(subjectCtx)))
	messageResponse(c, http.StatusOK, "appointment cancelled")
}

// @Summary Complete an appointment
// @Tags Admin
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Appointment is cancelled"
// @Failure 404 {object} errorResponseBody
// @Security ApiKeyAuth
// @Router /admin/appointments/{id}/complete [post]
func (h *Handler) completeAppointment(c *gin.Context) {
	if err := h.services.Booking.CompleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, err, "appointment not found")
		return
	}

	messageResponse(c, http.StatusOK, "appointment completed")
}
