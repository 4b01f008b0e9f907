package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urmii20/burrow/internal/entity"
	"github.com/urmii20/burrow/pkg/cache"
	"github.com/urmii20/burrow/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock_service

const (
	_defaultContextTimeout = 500 * time.Millisecond
	_slowOpThreshold       = 200 * time.Millisecond

	_dateLayout = "2006-01-02"
)

type (
	RequestStore interface {
		Insert(ctx context.Context, req *entity.DeliveryRequest) (*entity.DeliveryRequest, error)
		FindByReference(ctx context.Context, ref string) (*entity.DeliveryRequest, error)
		List(ctx context.Context, filter entity.RequestFilter) ([]*entity.DeliveryRequest, error)
		ApplyTransition(
			ctx context.Context,
			ref string,
			status entity.Status,
			entry entity.HistoryEntry,
		) (*entity.DeliveryRequest, error)
		ApplyReschedule(
			ctx context.Context,
			ref string,
			date time.Time,
			slot string,
			entry entity.HistoryEntry,
		) (*entity.DeliveryRequest, error)
		ApplyPaymentUpdate(
			ctx context.Context,
			ref string,
			status entity.PaymentStatus,
			patch entity.PaymentPatch,
		) (*entity.DeliveryRequest, error)
	}

	WarehouseStore interface {
		GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Warehouse, error)
		ListActive(ctx context.Context) ([]*entity.Warehouse, error)
	}

	// RequestService orchestrates the delivery-request lifecycle. Every
	// mutation is one atomic conditional update against the store, so two
	// concurrent operations on the same request serialize there and each
	// appends its own history entry.
	RequestService struct {
		requests   RequestStore
		warehouses WarehouseStore
		log        logger.Logger
		whCache    cache.Cache[string, *entity.Warehouse]
		cacheTTL   time.Duration
	}
)

// CreateRequestInput carries a creation payload. Dates arrive as strings
// and are parsed here so malformed input surfaces as a ValidationError
// naming the field.
type CreateRequestInput struct {
	UserID                string
	OrderNumber           string
	Platform              string
	ProductDescription    string
	WarehouseID           string
	OriginalETA           string
	ScheduledDeliveryDate string
	DeliveryTimeSlot      string
	DestinationAddress    entity.Address
	PaymentDetails        *PaymentDetailsInput
}

// PaymentDetailsInput mirrors the optional paymentDetails block of a
// creation payload. Absent fee fields default to zero, an absent status to
// pending and an absent method to card.
type PaymentDetailsInput struct {
	BaseHandlingFee *float64
	StorageFee      *float64
	DeliveryCharge  *float64
	GST             *float64
	TotalAmount     *float64
	PaymentStatus   string
	PaymentMethod   string
}

func NewRequestService(
	requests RequestStore,
	warehouses WarehouseStore,
	log logger.Logger,
	whCache cache.Cache[string, *entity.Warehouse],
	cacheTTL time.Duration,
) *RequestService {
	whCache.SetOnEvicted(func(key string, _ *entity.Warehouse) {
		log.Infow("warehouse cache eviction", "key", key)
	})

	return &RequestService{
		requests:   requests,
		warehouses: warehouses,
		log:        log,
		whCache:    whCache,
		cacheTTL:   cacheTTL,
	}
}

// Create validates the payload, seeds the status history with a single
// submitted entry and inserts the document. An unresolvable warehouse
// reference never fails the creation: it is stored verbatim.
func (rs *RequestService) Create(
	ctx context.Context,
	in CreateRequestInput,
) (*entity.DeliveryRequest, error) {
	const op = "service.Create"
	log := rs.log.Ctx(ctx)

	start := time.Now()
	defer rs.warnIfSlow(ctx, op, start)

	if err := validateCreateInput(in); err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "create request validation failed",
			logger.String("op", op),
			logger.Any("error", err),
		)
		return nil, err
	}

	scheduled, err := parseDate(in.ScheduledDeliveryDate)
	if err != nil {
		return nil, &entity.ValidationError{
			Field:  "scheduledDeliveryDate",
			Reason: "invalid date",
		}
	}

	var originalETA *time.Time
	if in.OriginalETA != "" {
		eta, etaErr := parseDate(in.OriginalETA)
		if etaErr != nil {
			return nil, &entity.ValidationError{Field: "originalEta", Reason: "invalid date"}
		}
		originalETA = &eta
	}

	payment, err := buildPaymentDetails(in.PaymentDetails)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := &entity.DeliveryRequest{
		UserID:                in.UserID,
		OrderNumber:           in.OrderNumber,
		Platform:              in.Platform,
		ProductDescription:    in.ProductDescription,
		Warehouse:             resolveWarehouseRef(in.WarehouseID),
		OriginalETA:           originalETA,
		ScheduledDeliveryDate: scheduled,
		DeliveryTimeSlot:      in.DeliveryTimeSlot,
		DestinationAddress:    in.DestinationAddress,
		Status:                entity.StatusSubmitted,
		StatusHistory: []entity.HistoryEntry{
			entity.NewHistoryEntry(entity.StatusSubmitted, ""),
		},
		PaymentDetails: payment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := rs.requests.Insert(ctx, req)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "create request failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("order_number", in.OrderNumber),
		)
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "delivery request created",
		logger.String("op", op),
		logger.String("request_id", created.ID.Hex()),
		logger.String("order_number", created.OrderNumber),
	)

	return created, nil
}

// TransitionStatus validates the status against the closed set before
// touching storage, then applies the transition and appends one history
// entry atomically.
func (rs *RequestService) TransitionStatus(
	ctx context.Context,
	ref, rawStatus, note string,
) (*entity.DeliveryRequest, error) {
	const op = "service.TransitionStatus"
	log := rs.log.Ctx(ctx)

	status, err := entity.ParseStatus(rawStatus)
	if err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "status rejected",
			logger.String("op", op),
			logger.String("status", rawStatus),
		)
		return nil, err
	}

	entry := entity.NewHistoryEntry(status, note)
	req, err := rs.requests.ApplyTransition(ctx, ref, status, entry)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidReference) {
			return nil, err
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "status transition failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("reference", ref),
		)
		return nil, fmt.Errorf("%s: apply transition: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "status transitioned",
		logger.String("op", op),
		logger.String("request_id", req.ID.Hex()),
		logger.String("status", string(status)),
	)

	return req, nil
}

// Reschedule moves the delivery window and forces the status to
// reschedule_requested regardless of the prior status, appending one
// history entry tagged the same way.
func (rs *RequestService) Reschedule(
	ctx context.Context,
	ref, rawDate, slot, note string,
) (*entity.DeliveryRequest, error) {
	const op = "service.Reschedule"
	log := rs.log.Ctx(ctx)

	if rawDate == "" {
		return nil, &entity.ValidationError{Field: "scheduledDeliveryDate"}
	}
	if slot == "" {
		return nil, &entity.ValidationError{Field: "deliveryTimeSlot"}
	}

	date, err := parseDate(rawDate)
	if err != nil {
		return nil, &entity.ValidationError{
			Field:  "scheduledDeliveryDate",
			Reason: "invalid date",
		}
	}

	entry := entity.NewHistoryEntry(entity.StatusRescheduleRequested, note)
	req, err := rs.requests.ApplyReschedule(ctx, ref, date, slot, entry)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidReference) {
			return nil, err
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "reschedule failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("reference", ref),
		)
		return nil, fmt.Errorf("%s: apply reschedule: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "delivery rescheduled",
		logger.String("op", op),
		logger.String("request_id", req.ID.Hex()),
		logger.Time("scheduled_for", date),
	)

	return req, nil
}

// UpdatePayment merges the supplied payment sub-fields into the stored
// block; fields absent from the patch keep their values. It never touches
// status or statusHistory.
func (rs *RequestService) UpdatePayment(
	ctx context.Context,
	ref, rawStatus string,
	patch entity.PaymentPatch,
) (*entity.DeliveryRequest, error) {
	const op = "service.UpdatePayment"
	log := rs.log.Ctx(ctx)

	if rawStatus == "" {
		return nil, &entity.ValidationError{Field: "paymentStatus"}
	}

	status := entity.PaymentStatus(rawStatus)
	if !status.Valid() {
		return nil, &entity.ValidationError{
			Field:  "paymentStatus",
			Reason: "must be one of pending, paid, completed, failed",
		}
	}

	req, err := rs.requests.ApplyPaymentUpdate(ctx, ref, status, patch)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidReference) {
			return nil, err
		}
		log.LogAttrs(ctx, logger.ErrorLevel, "payment update failed",
			logger.String("op", op),
			logger.Any("error", err),
			logger.String("reference", ref),
		)
		return nil, fmt.Errorf("%s: apply payment update: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "payment updated",
		logger.String("op", op),
		logger.String("request_id", req.ID.Hex()),
		logger.String("payment_status", string(status)),
	)

	return req, nil
}

func (rs *RequestService) Get(ctx context.Context, ref string) (*entity.DeliveryRequest, error) {
	const op = "service.Get"

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	req, err := rs.requests.FindByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrInvalidReference) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: find by reference: %w", op, err)
	}

	return req, nil
}

func (rs *RequestService) List(
	ctx context.Context,
	filter entity.RequestFilter,
) ([]*entity.DeliveryRequest, error) {
	const op = "service.List"

	start := time.Now()
	defer rs.warnIfSlow(ctx, op, start)

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	requests, err := rs.requests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: list: %w", op, err)
	}

	return requests, nil
}

// Warehouse serves a warehouse by its hex identifier through the LRU cache;
// warehouses are read-mostly so cached copies stay valid for the TTL.
func (rs *RequestService) Warehouse(ctx context.Context, rawID string) (*entity.Warehouse, error) {
	const op = "service.Warehouse"

	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, entity.ErrNotFound
	}

	if cached, found := rs.whCache.Get(rawID); found {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	warehouse, err := rs.warehouses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: get by id: %w", op, err)
	}

	rs.whCache.Put(rawID, warehouse, rs.cacheTTL)

	return warehouse, nil
}

func (rs *RequestService) Warehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	const op = "service.Warehouses"

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	warehouses, err := rs.warehouses.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: list active: %w", op, err)
	}

	for _, warehouse := range warehouses {
		rs.whCache.Put(warehouse.ID.Hex(), warehouse, rs.cacheTTL)
	}

	return warehouses, nil
}

func (rs *RequestService) warnIfSlow(ctx context.Context, op string, start time.Time) {
	duration := time.Since(start)
	if duration > _slowOpThreshold {
		rs.log.LogAttrs(ctx, logger.WarnLevel, "slow service operation",
			logger.String("op", op),
			logger.String("duration", duration.String()),
		)
	}
}

func validateCreateInput(in CreateRequestInput) error {
	if in.UserID == "" {
		return &entity.ValidationError{Field: "userId"}
	}
	if in.OrderNumber == "" {
		return &entity.ValidationError{Field: "orderNumber"}
	}
	if in.ScheduledDeliveryDate == "" {
		return &entity.ValidationError{Field: "scheduledDeliveryDate"}
	}
	if in.DeliveryTimeSlot == "" {
		return &entity.ValidationError{Field: "deliveryTimeSlot"}
	}
	return nil
}

// resolveWarehouseRef keeps creation lenient: a reference that parses as a
// native identifier is stored resolved, anything else is stored verbatim.
func resolveWarehouseRef(raw string) entity.WarehouseRef {
	if raw == "" {
		return entity.WarehouseRef{}
	}
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return entity.WarehouseRef{ID: oid}
	}
	return entity.WarehouseRef{Raw: raw}
}

func buildPaymentDetails(in *PaymentDetailsInput) (entity.PaymentDetails, error) {
	details := entity.PaymentDetails{
		PaymentStatus: entity.PaymentPending,
		PaymentMethod: entity.DefaultPaymentMethod,
	}
	if in == nil {
		return details, nil
	}

	if in.BaseHandlingFee != nil {
		details.BaseHandlingFee = *in.BaseHandlingFee
	}
	if in.StorageFee != nil {
		details.StorageFee = *in.StorageFee
	}
	if in.DeliveryCharge != nil {
		details.DeliveryCharge = *in.DeliveryCharge
	}
	if in.GST != nil {
		details.GST = *in.GST
	}
	if in.TotalAmount != nil {
		details.TotalAmount = *in.TotalAmount
	}
	if in.PaymentStatus != "" {
		status := entity.PaymentStatus(in.PaymentStatus)
		if !status.Valid() {
			return entity.PaymentDetails{}, &entity.ValidationError{
				Field:  "paymentStatus",
				Reason: "must be one of pending, paid, completed, failed",
			}
		}
		details.PaymentStatus = status
	}
	if in.PaymentMethod != "" {
		details.PaymentMethod = in.PaymentMethod
	}

	return details, nil
}

// parseDate accepts the date-picker layout first, then RFC 3339 for API
// clients sending full timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(_dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return t, nil
}
