package rest

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard
// @Description Today's agenda with appointment, client and revenue totals
// @Tags Reports
// @Produce json
// @Success 200 {object} successResponseBody{data=domain.DashboardStats}
// @Security ApiKeyAuth
// @Router /admin/reports/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	stats, err := h.services.Report.Dashboard(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err, "report not found")
		return
	}

	successResponse(c, http.StatusOK, stats)
}

// @Summary Monthly revenue
// @Tags Reports
// @Produce json
// @Success 200 {object} successResponseBody{data=domain.RevenueReport}
// @Security ApiKeyAuth
// @Router /admin/reports/revenue [get]
func (h *Handler) getMonthlyRevenue(c *gin.Context) {
	report, err := h.services.Report.MonthlyRevenue(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err, "report not found")
		return
	}

	successResponse(c, http.StatusOK, report)
}

// @Summary Appointments per professional
// @Tags Reports
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.ProfessionalLoad}
// @Security ApiKeyAuth
// @Router /admin/reports/professionals [get]
func (h *Handler) getProfessionalLoad(c *gin.Context) {
	loads, err := h.services.Report.ByProfessional(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err, "report not found")
		return
	}

	successResponse(c, http.StatusOK, loads)
}

// @Summary Export appointments
// @Description All appointments as CSV
// @Tags Reports
// @Produce text/csv
// @Success 200 {file} file
// @Security ApiKeyAuth
// @Router /admin/reports/export [get]
func (h *Handler) exportAppointments(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.services.Report.ExportCSV(c.Request.Context(), &buf); err != nil {
		serviceErrorResponse(c, err, "report not found")
		return
	}

	filename := fmt.Sprintf("appointments-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
