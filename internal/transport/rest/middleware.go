package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	subjectCtx          = "subject"
	roleCtx             = "role"
)

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := h.logger.With(
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
		)

		if status >= 500 {
			logger.Error("server error")
		} else if status >= 400 {
			logger.Warn("client error")
		} else {
			logger.Info("request processed")
		}
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			h.logger.Error("request error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Length, Accept-Encoding, Origin, Accept, User-Agent, X-Requested-With, Cache-Control")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Type, Content-Disposition, Retry-After")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		origin := c.Request.Header.Get("Origin")
		if origin != "" && c.Request.Header.Get(authorizationHeader) != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authMiddleware accepts a Bearer token issued by the identity provider.
// Browsers cannot set headers on a websocket handshake, so the token may
// also come in the access_token query parameter.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("access_token")

		if header := c.GetHeader(authorizationHeader); header != "" {
			headerParts := strings.Split(header, " ")
			if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
				errorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				return
			}
			token = headerParts[1]
		}

		if token == "" {
			errorResponse(c, http.StatusUnauthorized, "empty authorization header")
			return
		}

		claims, err := h.verifier.Parse(token)
		if err != nil {
			h.logger.Warn("rejected token", zap.Error(err))
			unauthorizedResponse(c)
			return
		}

		c.Set(subjectCtx, claims.Subject)
		c.Set(roleCtx, claims.Role)

		c.Next()
	}
}

func (h *Handler) adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(roleCtx)
		if !exists {
			unauthorizedResponse(c)
			return
		}

		if r, ok := role.(string); !ok || r != h.config.JWT.AdminRole {
			forbiddenResponse(c)
			return
		}

		c.Next()
	}
}

// bookingRateLimitMiddleware caps booking attempts per client IP. With no
// limiter configured every request passes.
func (h *Handler) bookingRateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.limiter == nil {
			c.Next()
			return
		}

		allowed, err := h.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			if h.config.RateLimit.FailOpen {
				h.logger.Warn("rate limiter unavailable, letting request through", zap.Error(err))
				c.Next()
				return
			}
			h.logger.Error("rate limiter unavailable", zap.Error(err))
			errorResponse(c, http.StatusServiceUnavailable, "booking is temporarily unavailable")
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(h.limiter.Window().Seconds())))
			errorResponse(c, http.StatusTooManyRequests, "too many booking attempts, try again later")
			return
		}

		c.Next()
	}
}
