package httpt

import (
	"time"

	"github.com/urmii20/burrow/internal/entity"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// RequestView is the client-facing projection of a stored request. The
// storage identifier is flattened to a single string id, legacy records
// surface their legacy id there, and the warehouse reference collapses to
// one string field.
type RequestView struct {
	ID                    string                `json:"id"`
	UserID                string                `json:"userId"`
	OrderNumber           string                `json:"orderNumber"`
	Platform              string                `json:"platform,omitempty"`
	ProductDescription    string                `json:"productDescription,omitempty"`
	WarehouseID           string                `json:"warehouseId,omitempty"`
	OriginalETA           *time.Time            `json:"originalEta,omitempty"`
	ScheduledDeliveryDate time.Time             `json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      string                `json:"deliveryTimeSlot"`
	DestinationAddress    entity.Address        `json:"destinationAddress"`
	Status                entity.Status         `json:"status"`
	StatusHistory         []entity.HistoryEntry `json:"statusHistory"`
	PaymentDetails        entity.PaymentDetails `json:"paymentDetails"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

func newRequestView(req *entity.DeliveryRequest) RequestView {
	id := req.LegacyID
	if !req.ID.IsZero() {
		id = req.ID.Hex()
	}

	return RequestView{
		ID:                    id,
		UserID:                req.UserID,
		OrderNumber:           req.OrderNumber,
		Platform:              req.Platform,
		ProductDescription:    req.ProductDescription,
		WarehouseID:           req.Warehouse.String(),
		OriginalETA:           req.OriginalETA,
		ScheduledDeliveryDate: req.ScheduledDeliveryDate,
		DeliveryTimeSlot:      req.DeliveryTimeSlot,
		DestinationAddress:    req.DestinationAddress,
		Status:                req.Status,
		StatusHistory:         req.StatusHistory,
		PaymentDetails:        req.PaymentDetails,
		CreatedAt:             req.CreatedAt,
		UpdatedAt:             req.UpdatedAt,
	}
}

func newRequestViews(requests []*entity.DeliveryRequest) []RequestView {
	views := make([]RequestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, newRequestView(req))
	}
	return views
}

type WarehouseView struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Address        string             `json:"address"`
	Coordinates    entity.Coordinates `json:"coordinates"`
	Capacity       int                `json:"capacity"`
	OperatingHours string             `json:"operatingHours,omitempty"`
	IsActive       bool               `json:"isActive"`
}

func newWarehouseView(warehouse *entity.Warehouse) WarehouseView {
	return WarehouseView{
		ID:             warehouse.ID.Hex(),
		Name:           warehouse.Name,
		Address:        warehouse.Address,
		Coordinates:    warehouse.Coordinates,
		Capacity:       warehouse.Capacity,
		OperatingHours: warehouse.OperatingHours,
		IsActive:       warehouse.IsActive,
	}
}

func newWarehouseViews(warehouses []*entity.Warehouse) []WarehouseView {
	views := make([]WarehouseView, 0, len(warehouses))
	for _, warehouse := range warehouses {
		views = append(views, newWarehouseView(warehouse))
	}
	return views
}
