package httpt

import (
	"context"
	"errors"
	"net/http"

	"github.com/urmii20/burrow/internal/entity"
	"github.com/urmii20/burrow/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *RequestHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	var (
		validationErr *entity.ValidationError
		statusErr     *entity.UnknownStatusError
	)

	switch {
	case errors.As(err, &validationErr):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request rejected",
			logger.String("op", op),
			logger.String("field", validationErr.Field),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Error()})
	case errors.As(err, &statusErr):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "unknown status rejected",
			logger.String("op", op),
			logger.String("status", statusErr.Status),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: statusErr.Error()})
	case errors.Is(err, entity.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Request reference is required"})
	case errors.Is(err, entity.ErrNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "not found",
			logger.String("op", op),
			logger.String("reference", c.Param("id")),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("op", op),
			logger.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Request timed out"})
	default:
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "internal server error",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal service error"})
	}
}

func (h *RequestHandler) handleMalformedBody(c *gin.Context, op string, err error) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "malformed request body",
		logger.String("op", op),
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Malformed request body"})
}
