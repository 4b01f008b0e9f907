package httpt

import (
	"context"
	"net/http"
	"time"

	"github.com/urmii20/burrow/internal/entity"
	"github.com/urmii20/burrow/internal/service"
	"github.com/urmii20/burrow/pkg/logger"

	"github.com/gin-gonic/gin"
)

const _defaultContextTimeout = 500 * time.Millisecond

type addressBody struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Landmark   string `json:"landmark"`
	Contact    string `json:"contact"`
}

type paymentBody struct {
	BaseHandlingFee *float64 `json:"baseHandlingFee"`
	StorageFee      *float64 `json:"storageFee"`
	DeliveryCharge  *float64 `json:"deliveryCharge"`
	GST             *float64 `json:"gst"`
	TotalAmount     *float64 `json:"totalAmount"`
	PaymentStatus   string   `json:"paymentStatus"`
	PaymentMethod   string   `json:"paymentMethod"`
}

type createRequestBody struct {
	UserID                string       `json:"userId"`
	OrderNumber           string       `json:"orderNumber"`
	Platform              string       `json:"platform"`
	ProductDescription    string       `json:"productDescription"`
	WarehouseID           string       `json:"warehouseId"`
	OriginalETA           string       `json:"originalEta"`
	ScheduledDeliveryDate string       `json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      string       `json:"deliveryTimeSlot"`
	DestinationAddress    addressBody  `json:"destinationAddress"`
	PaymentDetails        *paymentBody `json:"paymentDetails"`
}

type transitionBody struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type rescheduleBody struct {
	ScheduledDeliveryDate string `json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      string `json:"deliveryTimeSlot"`
	Note                  string `json:"note"`
}

type paymentUpdateBody struct {
	PaymentStatus   string   `json:"paymentStatus"`
	PaymentMethod   *string  `json:"paymentMethod"`
	BaseHandlingFee *float64 `json:"baseHandlingFee"`
	StorageFee      *float64 `json:"storageFee"`
	DeliveryCharge  *float64 `json:"deliveryCharge"`
	GST             *float64 `json:"gst"`
	TotalAmount     *float64 `json:"totalAmount"`
}

func (h *RequestHandler) createRequestHandler(c *gin.Context) {
	const op = "transport.createRequestHandler"

	var body createRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.handleMalformedBody(c, op, err)
		return
	}

	in := service.CreateRequestInput{
		UserID:                body.UserID,
		OrderNumber:           body.OrderNumber,
		Platform:              body.Platform,
		ProductDescription:    body.ProductDescription,
		WarehouseID:           body.WarehouseID,
		OriginalETA:           body.OriginalETA,
		ScheduledDeliveryDate: body.ScheduledDeliveryDate,
		DeliveryTimeSlot:      body.DeliveryTimeSlot,
		DestinationAddress: entity.Address{
			Line1:      body.DestinationAddress.Line1,
			Line2:      body.DestinationAddress.Line2,
			City:       body.DestinationAddress.City,
			State:      body.DestinationAddress.State,
			PostalCode: body.DestinationAddress.PostalCode,
			Landmark:   body.DestinationAddress.Landmark,
			Contact:    body.DestinationAddress.Contact,
		},
	}
	if body.PaymentDetails != nil {
		in.PaymentDetails = &service.PaymentDetailsInput{
			BaseHandlingFee: body.PaymentDetails.BaseHandlingFee,
			StorageFee:      body.PaymentDetails.StorageFee,
			DeliveryCharge:  body.PaymentDetails.DeliveryCharge,
			GST:             body.PaymentDetails.GST,
			TotalAmount:     body.PaymentDetails.TotalAmount,
			PaymentStatus:   body.PaymentDetails.PaymentStatus,
			PaymentMethod:   body.PaymentDetails.PaymentMethod,
		}
	}

	req, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusCreated, newRequestView(req))
}

func (h *RequestHandler) listRequestsHandler(c *gin.Context) {
	const op = "transport.listRequestsHandler"

	filter := entity.RequestFilter{
		UserID:      c.Query("userId"),
		OrderNumber: c.Query("orderNumber"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := entity.ParseStatus(raw)
		if err != nil {
			h.handleServiceError(c, err, op)
			return
		}
		filter.Status = status
	}

	requests, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, newRequestViews(requests))
}

func (h *RequestHandler) getRequestHandler(c *gin.Context) {
	const op = "transport.getRequestHandler"

	req, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, newRequestView(req))
}

func (h *RequestHandler) transitionStatusHandler(c *gin.Context) {
	const op = "transport.transitionStatusHandler"

	log := h.log.Ctx(c.Request.Context())

	var body transitionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.handleMalformedBody(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	req, err := h.svc.TransitionStatus(ctx, c.Param("id"), body.Status, body.Note)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "status transition accepted",
		logger.String("reference", c.Param("id")),
		logger.String("status", body.Status),
	)

	c.JSON(http.StatusOK, newRequestView(req))
}

func (h *RequestHandler) rescheduleHandler(c *gin.Context) {
	const op = "transport.rescheduleHandler"

	var body rescheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.handleMalformedBody(c, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	req, err := h.svc.Reschedule(
		ctx, c.Param("id"),
		body.ScheduledDeliveryDate, body.DeliveryTimeSlot, body.Note,
	)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, newRequestView(req))
}

func (h *RequestHandler) updatePaymentHandler(c *gin.Context) {
	const op = "transport.updatePaymentHandler"

	var body paymentUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.handleMalformedBody(c, op, err)
		return
	}

	patch := entity.PaymentPatch{
		BaseHandlingFee: body.BaseHandlingFee,
		StorageFee:      body.StorageFee,
		DeliveryCharge:  body.DeliveryCharge,
		GST:             body.GST,
		TotalAmount:     body.TotalAmount,
		PaymentMethod:   body.PaymentMethod,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	req, err := h.svc.UpdatePayment(ctx, c.Param("id"), body.PaymentStatus, patch)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, newRequestView(req))
}

func (h *RequestHandler) listWarehousesHandler(c *gin.Context) {
	const op = "transport.listWarehousesHandler"

	warehouses, err := h.svc.Warehouses(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, newWarehouseViews(warehouses))
}

func (h *RequestHandler) getWarehouseHandler(c *gin.Context) {
	const op = "transport.getWarehouseHandler"

	warehouse, err := h.svc.Warehouse(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	c.JSON(http.StatusOK, newWarehouseView(warehouse))
}
