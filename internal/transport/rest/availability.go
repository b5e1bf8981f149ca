package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type dayQuery struct {
	ProfessionalID string `form:"professional_id" binding:"required"`
	Date           string `form:"date" binding:"required,isodate"`
}

type slotQuery struct {
	ProfessionalID string `form:"professional_id" binding:"required"`
	Date           string `form:"date" binding:"required,isodate"`
	Time           string `form:"time" binding:"required,hhmm"`
}

type monthQuery struct {
	ProfessionalID string `form:"professional_id" binding:"required"`
	Year           int    `form:"year" binding:"required,min=1,max=9999"`
	Month          int    `form:"month" binding:"required,min=1,max=12"`
}

// @Summary Available time slots
// @Description Lists the start times a professional offers on a date. Booked slots stay in the list; use /availability/booked or /availability/board to tell them apart.
// @Tags Availability
// @Produce json
// @Param professional_id query string true "Professional ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=[]string}
// @Failure 400 {object} errorResponseBody
// @Router /availability/slots [get]
func (h *Handler) getAvailableSlots(c *gin.Context) {
	var q dayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	slots, err := h.services.Booking.AvailableSlots(c.Request.Context(), q.ProfessionalID, q.Date)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Is a slot booked
// @Tags Availability
// @Produce json
// @Param professional_id query string true "Professional ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Slot start (HH:MM)"
// @Success 200 {object} successResponseBody{data=map[string]bool}
// @Failure 400 {object} errorResponseBody
// @Router /availability/booked [get]
func (h *Handler) getSlotBooked(c *gin.Context) {
	var q slotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	booked, err := h.services.Booking.IsBooked(c.Request.Context(), q.ProfessionalID, q.Date, q.Time)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	successResponse(c, http.StatusOK, gin.H{"booked": booked})
}

// @Summary Slot board
// @Description Every slot of the day with its period and booked flag
// @Tags Availability
// @Produce json
// @Param professional_id query string true "Professional ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=[]domain.SlotView}
// @Failure 400 {object} errorResponseBody
// @Router /availability/board [get]
func (h *Handler) getSlotBoard(c *gin.Context) {
	var q dayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	board, err := h.services.Booking.SlotBoard(c.Request.Context(), q.ProfessionalID, q.Date)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	successResponse(c, http.StatusOK, board)
}

// @Summary Is a date selectable
// @Description A date is selectable when it is not in the past and the professional works that weekday
// @Tags Availability
// @Produce json
// @Param professional_id query string true "Professional ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=map[string]bool}
// @Failure 400 {object} errorResponseBody
// @Router /availability/selectable [get]
func (h *Handler) getDateSelectable(c *gin.Context) {
	var q dayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	selectable, err := h.services.Booking.IsDateSelectable(c.Request.Context(), q.ProfessionalID, q.Date)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	successResponse(c, http.StatusOK, gin.H{"selectable": selectable})
}

// @Summary Month calendar
// @Description Calendar grid of a month with the selectable flag for every day
// @Tags Availability
// @Produce json
// @Param professional_id query string true "Professional ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} successResponseBody{data=domain.MonthAvailability}
// @Failure 400 {object} errorResponseBody
// @Router /availability/calendar [get]
func (h *Handler) getMonthAvailability(c *gin.Context) {
	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}

	month, err := h.services.Booking.MonthAvailability(c.Request.Context(), q.ProfessionalID, q.Year, q.Month)
	if err != nil {
		serviceErrorResponse(c, err, "professional not found")
		return
	}

	successResponse(c, http.StatusOK, month)
}
