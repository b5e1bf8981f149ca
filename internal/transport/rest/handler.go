package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon/config"
	"salon/internal/service"
	"salon/pkg/auth"
	"salon/pkg/validator"
)

// BookingLimiter throttles public booking attempts per key.
type BookingLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Window() time.Duration
}

// AgendaFeed serves the live agenda websocket.
type AgendaFeed interface {
	ServeWS(c *gin.Context)
}

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
	verifier *auth.Verifier
	limiter  BookingLimiter
	feed     AgendaFeed
}

// NewHandler builds the REST handler. limiter and feed may be nil, which
// disables booking throttling and the live agenda route respectively.
func NewHandler(
	services *service.Services,
	logger *zap.Logger,
	config *config.Config,
	verifier *auth.Verifier,
	limiter BookingLimiter,
	feed AgendaFeed,
) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
		verifier: verifier,
		limiter:  limiter,
		feed:     feed,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		availability := api.Group("/availability")
		{
			availability.GET("/slots", h.getAvailableSlots)
			availability.GET("/booked", h.getSlotBooked)
			availability.GET("/board", h.getSlotBoard)
			availability.GET("/selectable", h.getDateSelectable)
			availability.GET("/calendar", h.getMonthAvailability)
		}

		api.POST("/appointments", h.bookingRateLimitMiddleware(), h.createAppointment)

		professionals := api.Group("/professionals")
		{
			professionals.GET("", h.getProfessionals)
			professionals.GET("/:id", h.getProfessionalByID)
		}

		services := api.Group("/services")
		{
			services.GET("", h.getServices)
			services.GET("/:id", h.getServiceByID)
		}

		api.GET("/settings", h.getSettings)

		admin := api.Group("/admin", h.authMiddleware(), h.adminMiddleware())
		{
			admin.POST("/professionals", h.createProfessional)
			admin.PUT("/professionals/:id", h.updateProfessional)
			admin.DELETE("/professionals/:id", h.deleteProfessional)
			admin.POST("/professionals/:id/photo", h.uploadProfessionalPhoto)
			admin.DELETE("/professionals/:id/photo", h.deleteProfessionalPhoto)

			admin.POST("/services", h.createService)
			admin.PUT("/services/:id", h.updateService)
			admin.DELETE("/services/:id", h.deleteService)

			admin.PUT("/settings", h.updateSettings)
			admin.POST("/settings/cover", h.uploadCoverPhoto)

			admin.GET("/agenda", h.getAgenda)
			admin.POST("/appointments/:id/cancel", h.cancelAppointment)
			admin.POST("/appointments/:id/complete", h.completeAppointment)

			admin.GET("/clients", h.getClients)
			admin.GET("/clients/:phone", h.getClientByPhone)

			reports := admin.Group("/reports")
			{
				reports.GET("/dashboard", h.getDashboard)
				reports.GET("/revenue", h.getMonthlyRevenue)
				reports.GET("/professionals", h.getProfessionalLoad)
				reports.GET("/export", h.exportAppointments)
			}
		}
	}

	if h.feed != nil {
		router.GET("/ws/agenda", h.authMiddleware(), h.adminMiddleware(), h.feed.ServeWS)
	}
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindError answers a failed ShouldBind call, listing field errors when the
// validator produced them.
func (h *Handler) bindError(c *gin.Context, err error) {
	h.logger.Warn("invalid request", zap.String("path", c.Request.URL.Path), zap.Error(err))

	if details := validator.FormatValidationErrors(err); len(details) > 0 {
		validationErrorResponse(c, details)
		return
	}
	badRequestResponse(c, "invalid request format")
}
