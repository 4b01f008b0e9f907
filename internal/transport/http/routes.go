package httpt

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *RequestHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	requests := h.router.Group("/requests")
	{
		requests.POST("", h.createRequestHandler)
		requests.GET("", h.listRequestsHandler)
		requests.GET("/:id", h.getRequestHandler)
		requests.PUT("/:id/reschedule", h.rescheduleHandler)
		requests.PATCH("/:id/status", h.transitionStatusHandler)
		requests.PATCH("/:id/payment", h.updatePaymentHandler)
	}

	warehouses := h.router.Group("/warehouses")
	{
		warehouses.GET("", h.listWarehousesHandler)
		warehouses.GET("/:id", h.getWarehouseHandler)
	}
}
