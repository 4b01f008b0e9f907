package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urmii20/burrow/internal/entity"
	"github.com/urmii20/burrow/pkg/metric"
	"github.com/urmii20/burrow/pkg/storage/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const _requestsCollection = "delivery_requests"

type RequestRepository struct {
	db      *mongodb.Mongo
	metrics metric.Storage
}

func NewRequestRepository(db *mongodb.Mongo, metrics metric.Storage) *RequestRepository {
	return &RequestRepository{db: db, metrics: metrics}
}

func (rr *RequestRepository) collection() *mongo.Collection {
	return rr.db.Collection(_requestsCollection)
}

// referenceFilter turns a client-supplied reference into a lookup
// predicate. A syntactically valid native identifier matches either the
// native _id or the legacy string id of records created before native ids
// were adopted; anything else matches the legacy id only. A well-formed but
// unresolvable reference is not an error here: absence surfaces downstream
// as entity.ErrNotFound.
func referenceFilter(ref string) (bson.M, error) {
	if ref == "" {
		return nil, entity.ErrInvalidReference
	}

	if oid, err := primitive.ObjectIDFromHex(ref); err == nil {
		return bson.M{"$or": bson.A{
			bson.M{"_id": oid},
			bson.M{"legacyId": ref},
		}}, nil
	}

	return bson.M{"legacyId": ref}, nil
}

func listFilter(filter entity.RequestFilter) bson.M {
	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.OrderNumber != "" {
		query["orderNumber"] = filter.OrderNumber
	}
	return query
}

func transitionUpdate(status entity.Status, entry entity.HistoryEntry, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": now,
		},
		"$push": bson.M{"statusHistory": entry},
	}
}

func rescheduleUpdate(
	date time.Time,
	slot string,
	entry entity.HistoryEntry,
	now time.Time,
) bson.M {
	return bson.M{
		"$set": bson.M{
			"scheduledDeliveryDate": date,
			"deliveryTimeSlot":      slot,
			"status":                entity.StatusRescheduleRequested,
			"updatedAt":             now,
		},
		"$push": bson.M{"statusHistory": entry},
	}
}

// paymentUpdate sets only the sub-fields present in the patch, via dotted
// paths, so untouched fees keep their stored values. No history entry is
// pushed: payment state is tracked separately from delivery status.
func paymentUpdate(
	status entity.PaymentStatus,
	patch entity.PaymentPatch,
	now time.Time,
) bson.M {
	set := bson.M{
		"paymentDetails.paymentStatus": status,
		"updatedAt":                    now,
	}
	if patch.BaseHandlingFee != nil {
		set["paymentDetails.baseHandlingFee"] = *patch.BaseHandlingFee
	}
	if patch.StorageFee != nil {
		set["paymentDetails.storageFee"] = *patch.StorageFee
	}
	if patch.DeliveryCharge != nil {
		set["paymentDetails.deliveryCharge"] = *patch.DeliveryCharge
	}
	if patch.GST != nil {
		set["paymentDetails.gst"] = *patch.GST
	}
	if patch.TotalAmount != nil {
		set["paymentDetails.totalAmount"] = *patch.TotalAmount
	}
	if patch.PaymentMethod != nil {
		set["paymentDetails.paymentMethod"] = *patch.PaymentMethod
	}
	return bson.M{"$set": set}
}

func (rr *RequestRepository) Insert(
	ctx context.Context,
	req *entity.DeliveryRequest,
) (*entity.DeliveryRequest, error) {
	const op = "repository.request.Insert"

	start := time.Now()
	defer func() { rr.metrics.ObserveDuration("insert", time.Since(start)) }()

	res, err := rr.collection().InsertOne(ctx, req)
	if err != nil {
		rr.metrics.IncrementFailures("insert")
		return nil, fmt.Errorf("%s: insert one: %w", op, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = oid
	}

	return req, nil
}

func (rr *RequestRepository) FindByReference(
	ctx context.Context,
	ref string,
) (*entity.DeliveryRequest, error) {
	const op = "repository.request.FindByReference"

	filter, err := referenceFilter(ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	defer func() { rr.metrics.ObserveDuration("find", time.Since(start)) }()

	var req entity.DeliveryRequest
	if err := rr.collection().FindOne(ctx, filter).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		rr.metrics.IncrementFailures("find")
		return nil, fmt.Errorf("%s: find one: %w", op, err)
	}

	return &req, nil
}

func (rr *RequestRepository) List(
	ctx context.Context,
	filter entity.RequestFilter,
) ([]*entity.DeliveryRequest, error) {
	const op = "repository.request.List"

	start := time.Now()
	defer func() { rr.metrics.ObserveDuration("list", time.Since(start)) }()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := rr.collection().Find(ctx, listFilter(filter), opts)
	if err != nil {
		rr.metrics.IncrementFailures("list")
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	var requests []*entity.DeliveryRequest
	if err := cursor.All(ctx, &requests); err != nil {
		rr.metrics.IncrementFailures("list")
		return nil, fmt.Errorf("%s: cursor all: %w", op, err)
	}

	return requests, nil
}

func (rr *RequestRepository) ApplyTransition(
	ctx context.Context,
	ref string,
	status entity.Status,
	entry entity.HistoryEntry,
) (*entity.DeliveryRequest, error) {
	const op = "repository.request.ApplyTransition"
	return rr.applyUpdate(ctx, op, "transition", ref,
		transitionUpdate(status, entry, time.Now().UTC()))
}

func (rr *RequestRepository) ApplyReschedule(
	ctx context.Context,
	ref string,
	date time.Time,
	slot string,
	entry entity.HistoryEntry,
) (*entity.DeliveryRequest, error) {
	const op = "repository.request.ApplyReschedule"
	return rr.applyUpdate(ctx, op, "reschedule", ref,
		rescheduleUpdate(date, slot, entry, time.Now().UTC()))
}

func (rr *RequestRepository) ApplyPaymentUpdate(
	ctx context.Context,
	ref string,
	status entity.PaymentStatus,
	patch entity.PaymentPatch,
) (*entity.DeliveryRequest, error) {
	const op = "repository.request.ApplyPaymentUpdate"
	return rr.applyUpdate(ctx, op, "payment_update", ref,
		paymentUpdate(status, patch, time.Now().UTC()))
}

// applyUpdate is the single concurrency primitive of this store: one atomic
// find-and-update returning the post-update document, or entity.ErrNotFound
// when the predicate matched nothing. Concurrent updates against the same
// document serialize in the store; there is no read-modify-write cycle to
// lose.
func (rr *RequestRepository) applyUpdate(
	ctx context.Context,
	op, operation, ref string,
	update bson.M,
) (*entity.DeliveryRequest, error) {
	filter, err := referenceFilter(ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()
	defer func() { rr.metrics.ObserveDuration(operation, time.Since(start)) }()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req entity.DeliveryRequest
	if err := rr.collection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		rr.metrics.IncrementFailures(operation)
		return nil, fmt.Errorf("%s: find one and update: %w", op, err)
	}

	return &req, nil
}
