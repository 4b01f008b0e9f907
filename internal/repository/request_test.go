package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/urmii20/burrow/internal/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReferenceFilter(t *testing.T) {
	t.Parallel()

	t.Run("Empty", func(t *testing.T) {
		_, err := referenceFilter("")
		if !errors.Is(err, entity.ErrInvalidReference) {
			t.Fatalf("expected invalid reference, got %v", err)
		}
	})

	t.Run("NativeIdentifier", func(t *testing.T) {
		ref := primitive.NewObjectID().Hex()

		filter, err := referenceFilter(ref)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		or, ok := filter["$or"].(bson.A)
		if !ok {
			t.Fatalf("expected $or predicate, got %v", filter)
		}
		if len(or) != 2 {
			t.Fatalf("expected two branches, got %d", len(or))
		}

		byID, ok := or[0].(bson.M)
		if !ok {
			t.Fatalf("unexpected branch %v", or[0])
		}
		oid, ok := byID["_id"].(primitive.ObjectID)
		if !ok || oid.Hex() != ref {
			t.Fatalf("expected _id branch for %s, got %v", ref, byID)
		}

		byLegacy, ok := or[1].(bson.M)
		if !ok || byLegacy["legacyId"] != ref {
			t.Fatalf("expected legacyId branch for %s, got %v", ref, or[1])
		}
	})

	t.Run("LegacyIdentifier", func(t *testing.T) {
		filter, err := referenceFilter("REQ-2024-0042")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if filter["legacyId"] != "REQ-2024-0042" {
			t.Fatalf("expected legacyId-only predicate, got %v", filter)
		}
		if _, present := filter["$or"]; present {
			t.Fatal("expected no _id branch for a non-native reference")
		}
	})
}

func TestListFilter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc   string
		filter entity.RequestFilter
		want   bson.M
	}{
		{
			desc:   "Empty",
			filter: entity.RequestFilter{},
			want:   bson.M{},
		},
		{
			desc:   "ByUser",
			filter: entity.RequestFilter{UserID: "u1"},
			want:   bson.M{"userId": "u1"},
		},
		{
			desc: "AllFields",
			filter: entity.RequestFilter{
				UserID:      "u1",
				Status:      entity.StatusInStorage,
				OrderNumber: "ORD-7",
			},
			want: bson.M{
				"userId":      "u1",
				"status":      entity.StatusInStorage,
				"orderNumber": "ORD-7",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := listFilter(tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for key, want := range tc.want {
				if got[key] != want {
					t.Fatalf("expected %s=%v, got %v", key, want, got[key])
				}
			}
		})
	}
}

func TestTransitionUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	entry := entity.NewHistoryEntry(entity.StatusApproved, "")

	update := transitionUpdate(entity.StatusApproved, entry, now)

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected $set, got %v", update)
	}
	if set["status"] != entity.StatusApproved {
		t.Fatalf("expected status approved, got %v", set["status"])
	}
	if set["updatedAt"] != now {
		t.Fatalf("expected updatedAt %v, got %v", now, set["updatedAt"])
	}

	push, ok := update["$push"].(bson.M)
	if !ok {
		t.Fatalf("expected $push, got %v", update)
	}
	if push["statusHistory"] != entry {
		t.Fatalf("expected history entry appended, got %v", push["statusHistory"])
	}
}

func TestRescheduleUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	date := now.AddDate(0, 0, 5)
	entry := entity.NewHistoryEntry(entity.StatusRescheduleRequested, "customer call")

	update := rescheduleUpdate(date, "1:00 PM - 3:00 PM", entry, now)

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected $set, got %v", update)
	}
	if set["scheduledDeliveryDate"] != date {
		t.Fatalf("expected date %v, got %v", date, set["scheduledDeliveryDate"])
	}
	if set["deliveryTimeSlot"] != "1:00 PM - 3:00 PM" {
		t.Fatalf("expected slot set, got %v", set["deliveryTimeSlot"])
	}
	if set["status"] != entity.StatusRescheduleRequested {
		t.Fatalf("expected status forced to reschedule_requested, got %v", set["status"])
	}

	push, ok := update["$push"].(bson.M)
	if !ok {
		t.Fatalf("expected $push, got %v", update)
	}
	if push["statusHistory"] != entry {
		t.Fatalf("expected history entry appended, got %v", push["statusHistory"])
	}
}

func TestPaymentUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("StatusOnly", func(t *testing.T) {
		update := paymentUpdate(entity.PaymentPaid, entity.PaymentPatch{}, now)

		set, ok := update["$set"].(bson.M)
		if !ok {
			t.Fatalf("expected $set, got %v", update)
		}
		if len(set) != 2 {
			t.Fatalf("expected only status and updatedAt, got %v", set)
		}
		if set["paymentDetails.paymentStatus"] != entity.PaymentPaid {
			t.Fatalf("expected paid, got %v", set["paymentDetails.paymentStatus"])
		}
		if _, present := update["$push"]; present {
			t.Fatal("expected no history entry for a payment update")
		}
	})

	t.Run("SparseFees", func(t *testing.T) {
		storage := 40.0
		total := 289.5
		method := "upi"

		update := paymentUpdate(entity.PaymentCompleted, entity.PaymentPatch{
			StorageFee:    &storage,
			TotalAmount:   &total,
			PaymentMethod: &method,
		}, now)

		set, ok := update["$set"].(bson.M)
		if !ok {
			t.Fatalf("expected $set, got %v", update)
		}
		if set["paymentDetails.storageFee"] != storage {
			t.Fatalf("expected storage fee set, got %v", set["paymentDetails.storageFee"])
		}
		if set["paymentDetails.totalAmount"] != total {
			t.Fatalf("expected total set, got %v", set["paymentDetails.totalAmount"])
		}
		if set["paymentDetails.paymentMethod"] != method {
			t.Fatalf("expected method set, got %v", set["paymentDetails.paymentMethod"])
		}
		if _, present := set["paymentDetails.baseHandlingFee"]; present {
			t.Fatal("expected absent fees untouched")
		}
		if _, present := set["paymentDetails.gst"]; present {
			t.Fatal("expected absent fees untouched")
		}
	})
}
