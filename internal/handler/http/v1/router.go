package v1

import (
	"github.com/dimassfeb-09/sima-app-web/internal/auth"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, tokens *auth.Manager) {
	// Публичные маршруты
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.GET("/counts/:type", h.getCountByType)
	api.GET("/system/health", h.healthCheck)

	// Маршруты под токеном
	protected := api.Group("")
	protected.Use(AuthMiddleware(tokens, h.logger))
	{
		protected.POST("/auth/logout", h.logout)

		protected.GET("/users/me", h.me)
		protected.PUT("/users/me", h.updateMe)

		protected.GET("/organizations", h.listOrganizations)
		protected.GET("/organizations/me", h.getMyOrganization)
		protected.PUT("/organizations/me", h.saveMyOrganization)

		protected.GET("/reports", h.listReports)
		protected.GET("/reports/:id", h.getReport)
		protected.PATCH("/reports/:id/status", h.changeReportStatus)
		protected.PATCH("/reports/:id/transfer", h.transferReport)
	}
}
