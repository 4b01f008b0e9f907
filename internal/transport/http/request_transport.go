package httpt

import (
	"github.com/urmii20/burrow/internal/service"
	"github.com/urmii20/burrow/pkg/logger"
	"github.com/urmii20/burrow/pkg/metric"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	svc     *service.RequestService
	log     logger.Logger
	metrics metric.HTTP
	router  *gin.Engine
}

func NewRequestHandler(
	svc *service.RequestService,
	log logger.Logger,
	metrics metric.HTTP,
) *RequestHandler {
	h := &RequestHandler{
		svc:     svc,
		log:     log,
		metrics: metrics,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.setupRoutes()

	return h
}

func (h *RequestHandler) Engine() *gin.Engine {
	return h.router
}
