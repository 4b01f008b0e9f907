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

const _warehousesCollection = "warehouses"

// WarehouseRepository is read-only: no write path in this service mutates
// a warehouse.
type WarehouseRepository struct {
	db      *mongodb.Mongo
	metrics metric.Storage
}

func NewWarehouseRepository(db *mongodb.Mongo, metrics metric.Storage) *WarehouseRepository {
	return &WarehouseRepository{db: db, metrics: metrics}
}

func (wr *WarehouseRepository) collection() *mongo.Collection {
	return wr.db.Collection(_warehousesCollection)
}

func (wr *WarehouseRepository) GetByID(
	ctx context.Context,
	id primitive.ObjectID,
) (*entity.Warehouse, error) {
	const op = "repository.warehouse.GetByID"

	start := time.Now()
	defer func() { wr.metrics.ObserveDuration("warehouse_get", time.Since(start)) }()

	var warehouse entity.Warehouse
	if err := wr.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&warehouse); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		wr.metrics.IncrementFailures("warehouse_get")
		return nil, fmt.Errorf("%s: find one: %w", op, err)
	}

	return &warehouse, nil
}

func (wr *WarehouseRepository) ListActive(ctx context.Context) ([]*entity.Warehouse, error) {
	const op = "repository.warehouse.ListActive"

	start := time.Now()
	defer func() { wr.metrics.ObserveDuration("warehouse_list", time.Since(start)) }()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := wr.collection().Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		wr.metrics.IncrementFailures("warehouse_list")
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	var warehouses []*entity.Warehouse
	if err := cursor.All(ctx, &warehouses); err != nil {
		wr.metrics.IncrementFailures("warehouse_list")
		return nil, fmt.Errorf("%s: cursor all: %w", op, err)
	}

	return warehouses, nil
}
