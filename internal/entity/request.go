package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (ps PaymentStatus) Valid() bool {
	switch ps {
	case PaymentPending, PaymentPaid, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// DefaultPaymentMethod is assumed when a creation payload carries no
// payment method.
const DefaultPaymentMethod = "card"

type Address struct {
	Line1      string `bson:"line1"              json:"line1"`
	Line2      string `bson:"line2,omitempty"    json:"line2,omitempty"`
	City       string `bson:"city"               json:"city"`
	State      string `bson:"state"              json:"state"`
	PostalCode string `bson:"postalCode"         json:"postalCode"`
	Landmark   string `bson:"landmark,omitempty" json:"landmark,omitempty"`
	Contact    string `bson:"contact,omitempty"  json:"contact,omitempty"`
}

type PaymentDetails struct {
	BaseHandlingFee float64       `bson:"baseHandlingFee" json:"baseHandlingFee"`
	StorageFee      float64       `bson:"storageFee"      json:"storageFee"`
	DeliveryCharge  float64       `bson:"deliveryCharge"  json:"deliveryCharge"`
	GST             float64       `bson:"gst"             json:"gst"`
	TotalAmount     float64       `bson:"totalAmount"     json:"totalAmount"`
	PaymentStatus   PaymentStatus `bson:"paymentStatus"   json:"paymentStatus"`
	PaymentMethod   string        `bson:"paymentMethod"   json:"paymentMethod"`
}

// PaymentPatch carries only the payment sub-fields present in an update
// payload. Nil fields retain the stored values.
type PaymentPatch struct {
	BaseHandlingFee *float64
	StorageFee      *float64
	DeliveryCharge  *float64
	GST             *float64
	TotalAmount     *float64
	PaymentMethod   *string
}

// HistoryEntry is an immutable record of a past status value and when it
// was recorded. Entries are only ever appended.
type HistoryEntry struct {
	Status    Status    `bson:"status"         json:"status"`
	Timestamp time.Time `bson:"timestamp"      json:"timestamp"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
}

// NewHistoryEntry stamps the entry with the recording time. Caller-supplied
// timestamps are never accepted, which keeps client clock skew out of the
// history. An empty note is omitted from the stored entry.
func NewHistoryEntry(status Status, note string) HistoryEntry {
	return HistoryEntry{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Note:      note,
	}
}

// WarehouseRef holds either a resolved warehouse identifier or, when the
// client-supplied reference is not a valid identifier, the raw string
// unchanged. The lenient fallback keeps an unresolvable warehouse from
// failing a whole creation.
type WarehouseRef struct {
	ID  primitive.ObjectID `bson:"id,omitempty"  json:"id,omitempty"`
	Raw string             `bson:"raw,omitempty" json:"raw,omitempty"`
}

func (w WarehouseRef) IsZero() bool {
	return w.ID.IsZero() && w.Raw == ""
}

func (w WarehouseRef) String() string {
	if !w.ID.IsZero() {
		return w.ID.Hex()
	}
	return w.Raw
}

// DeliveryRequest is one parcel redirection. Records created before native
// identifiers were adopted carry their old string id in LegacyID; the
// repository's reference resolver matches either.
type DeliveryRequest struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"                json:"-"`
	LegacyID              string             `bson:"legacyId,omitempty"           json:"-"`
	UserID                string             `bson:"userId"                       json:"userId"`
	OrderNumber           string             `bson:"orderNumber"                  json:"orderNumber"`
	Platform              string             `bson:"platform,omitempty"           json:"platform,omitempty"`
	ProductDescription    string             `bson:"productDescription,omitempty" json:"productDescription,omitempty"`
	Warehouse             WarehouseRef       `bson:"warehouseId,omitempty"        json:"-"`
	OriginalETA           *time.Time         `bson:"originalEta,omitempty"        json:"originalEta,omitempty"`
	ScheduledDeliveryDate time.Time          `bson:"scheduledDeliveryDate"        json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      string             `bson:"deliveryTimeSlot"             json:"deliveryTimeSlot"`
	DestinationAddress    Address            `bson:"destinationAddress"           json:"destinationAddress"`
	Status                Status             `bson:"status"                       json:"status"`
	StatusHistory         []HistoryEntry     `bson:"statusHistory"                json:"statusHistory"`
	PaymentDetails        PaymentDetails     `bson:"paymentDetails"               json:"paymentDetails"`
	CreatedAt             time.Time          `bson:"createdAt"                    json:"createdAt"`
	UpdatedAt             time.Time          `bson:"updatedAt"                    json:"updatedAt"`
}

// RequestFilter narrows List results. Zero-valued fields match everything.
type RequestFilter struct {
	UserID      string
	Status      Status
	OrderNumber string
}

// TimeSlots returns the labeled delivery windows offered to consumers.
func TimeSlots() []string {
	return []string{
		"9:00 AM - 11:00 AM",
		"11:00 AM - 1:00 PM",
		"1:00 PM - 3:00 PM",
		"3:00 PM - 5:00 PM",
		"5:00 PM - 7:00 PM",
	}
}
