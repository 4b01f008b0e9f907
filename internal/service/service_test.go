package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/urmii20/burrow/internal/entity"
	"github.com/urmii20/burrow/internal/service"
	mock_service "github.com/urmii20/burrow/internal/service/mock"
	"github.com/urmii20/burrow/pkg/cache"
	"github.com/urmii20/burrow/pkg/logger"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type nopCacheMetrics struct{}

func (nopCacheMetrics) Hit(string)              {}
func (nopCacheMetrics) Miss(string)             {}
func (nopCacheMetrics) Eviction(string, string) {}
func (nopCacheMetrics) Size(string, int)        {}

func newTestCache(t *testing.T) cache.Cache[string, *entity.Warehouse] {
	t.Helper()

	c, err := cache.NewLRUCache[string, *entity.Warehouse](
		"warehouse", 16, logger.Nop(), nopCacheMetrics{},
	)
	if err != nil {
		t.Fatalf("create cache: %v", err)
	}

	return c
}

func newTestService(
	requests service.RequestStore,
	warehouses service.WarehouseStore,
	whCache cache.Cache[string, *entity.Warehouse],
) *service.RequestService {
	return service.NewRequestService(requests, warehouses, logger.Nop(), whCache, 5*time.Minute)
}

func generateFakeCreateInput() service.CreateRequestInput {
	return service.CreateRequestInput{
		UserID:                gofakeit.Username(),
		OrderNumber:           gofakeit.UUID(),
		Platform:              gofakeit.Company(),
		ProductDescription:    gofakeit.ProductName(),
		WarehouseID:           primitive.NewObjectID().Hex(),
		ScheduledDeliveryDate: gofakeit.DateRange(time.Now(), time.Now().AddDate(0, 1, 0)).Format("2006-01-02"),
		DeliveryTimeSlot:      entity.TimeSlots()[gofakeit.Number(0, len(entity.TimeSlots())-1)],
		DestinationAddress: entity.Address{
			Line1:      gofakeit.Street(),
			City:       gofakeit.City(),
			State:      gofakeit.State(),
			PostalCode: gofakeit.Zip(),
		},
	}
}

func generateFakeRequest() *entity.DeliveryRequest {
	now := time.Now().UTC()

	return &entity.DeliveryRequest{
		ID:          primitive.NewObjectID(),
		UserID:      gofakeit.Username(),
		OrderNumber: gofakeit.UUID(),
		Status:      entity.StatusSubmitted,
		StatusHistory: []entity.HistoryEntry{
			{Status: entity.StatusSubmitted, Timestamp: now},
		},
		PaymentDetails: entity.PaymentDetails{
			PaymentStatus: entity.PaymentPending,
			PaymentMethod: entity.DefaultPaymentMethod,
		},
		ScheduledDeliveryDate: now.AddDate(0, 0, 3),
		DeliveryTimeSlot:      entity.TimeSlots()[0],
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func generateFakeWarehouse() *entity.Warehouse {
	return &entity.Warehouse{
		ID:       primitive.NewObjectID(),
		Name:     gofakeit.Company(),
		Capacity: gofakeit.Number(100, 1000),
		IsActive: true,
	}
}

func TestRequestService_Create(t *testing.T) {
	testCases := []struct {
		desc        string
		setup       func() service.CreateRequestInput
		mocks       func(requests *mock_service.MockRequestStore, in service.CreateRequestInput)
		wantField   string
		wantErr     bool
		checkStored func(t *testing.T, stored *entity.DeliveryRequest)
	}{
		{
			desc:  "Success",
			setup: generateFakeCreateInput,
			mocks: func(requests *mock_service.MockRequestStore, in service.CreateRequestInput) {
				requests.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(
						_ context.Context,
						req *entity.DeliveryRequest,
					) (*entity.DeliveryRequest, error) {
						created := *req
						created.ID = primitive.NewObjectID()
						return &created, nil
					}).Times(1)
			},
			checkStored: func(t *testing.T, stored *entity.DeliveryRequest) {
				if stored.Status != entity.StatusSubmitted {
					t.Errorf("expected status %q, got %q", entity.StatusSubmitted, stored.Status)
				}
				if len(stored.StatusHistory) != 1 {
					t.Fatalf("expected one history entry, got %d", len(stored.StatusHistory))
				}
				if stored.StatusHistory[0].Status != entity.StatusSubmitted {
					t.Errorf("expected submitted history entry, got %q", stored.StatusHistory[0].Status)
				}
				if stored.StatusHistory[0].Timestamp.IsZero() {
					t.Error("expected stamped history entry")
				}
				if stored.PaymentDetails.PaymentStatus != entity.PaymentPending {
					t.Errorf("expected pending payment, got %q", stored.PaymentDetails.PaymentStatus)
				}
				if stored.PaymentDetails.PaymentMethod != entity.DefaultPaymentMethod {
					t.Errorf("expected default payment method, got %q", stored.PaymentDetails.PaymentMethod)
				}
				if stored.CreatedAt.IsZero() || !stored.CreatedAt.Equal(stored.UpdatedAt) {
					t.Error("expected createdAt and updatedAt stamped with the same instant")
				}
			},
		},
		{
			desc: "UnresolvableWarehouseStoredVerbatim",
			setup: func() service.CreateRequestInput {
				in := generateFakeCreateInput()
				in.WarehouseID = "WH-EAST-1"
				return in
			},
			mocks: func(requests *mock_service.MockRequestStore, in service.CreateRequestInput) {
				requests.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(
						_ context.Context,
						req *entity.DeliveryRequest,
					) (*entity.DeliveryRequest, error) {
						created := *req
						created.ID = primitive.NewObjectID()
						return &created, nil
					}).Times(1)
			},
			checkStored: func(t *testing.T, stored *entity.DeliveryRequest) {
				if stored.Warehouse.Raw != "WH-EAST-1" {
					t.Errorf("expected raw warehouse reference kept, got %q", stored.Warehouse.Raw)
				}
				if !stored.Warehouse.ID.IsZero() {
					t.Error("expected unresolved warehouse id to stay zero")
				}
			},
		},
		{
			desc: "MissingUserID",
			setup: func() service.CreateRequestInput {
				in := generateFakeCreateInput()
				in.UserID = ""
				return in
			},
			mocks:     func(requests *mock_service.MockRequestStore, in service.CreateRequestInput) {},
			wantField: "userId",
			wantErr:   true,
		},
		{
			desc: "MissingOrderNumber",
			setup: func() service.CreateRequestInput {
				in := generateFakeCreateInput()
				in.OrderNumber = ""
				return in
			},
			mocks:     func(requests *mock_service.MockRequestStore, in service.CreateRequestInput) {},
			wantField: "orderNumber",
			wantErr:   true,
		},
		{
			desc: "MissingTimeSlot",
			setup: func() service.CreateRequestInput {
				in := generateFakeCreateInput()
				in.DeliveryTimeSlot = ""
				return in
			},
			mocks:     func(requests *mock_service.MockRequestStore, in service.CreateRequestInput) {},
			wantField: "deliveryTimeSlot",
			wantErr:   true,
		},
		{
			desc: "MalformedScheduledDate",
			setup: func() service.CreateRequestInput {
				in := generateFakeCreateInput()
				in.ScheduledDeliveryDate = "next tuesday"
				return in
			},
			mocks:     func(requests *mock_service.MockRequestStore, in service.CreateRequestInput) {},
			wantField: "scheduledDeliveryDate",
			wantErr:   true,
		},
		{
			desc: "InvalidPaymentStatus",
			setup: func() service.CreateRequestInput {
				in := generateFakeCreateInput()
				in.PaymentDetails = &service.PaymentDetailsInput{PaymentStatus: "refunded"}
				return in
			},
			mocks:     func(requests *mock_service.MockRequestStore, in service.CreateRequestInput) {},
			wantField: "paymentStatus",
			wantErr:   true,
		},
		{
			desc:  "StorageError",
			setup: generateFakeCreateInput,
			mocks: func(requests *mock_service.MockRequestStore, in service.CreateRequestInput) {
				requests.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("storage error")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			requests := mock_service.NewMockRequestStore(ctrl)
			warehouses := mock_service.NewMockWarehouseStore(ctrl)

			in := tc.setup()
			tc.mocks(requests, in)

			s := newTestService(requests, warehouses, newTestCache(t))

			created, err := s.Create(context.Background(), in)

			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tc.wantField != "" {
					var vErr *entity.ValidationError
					if !errors.As(err, &vErr) {
						t.Fatalf("expected validation error, got %v", err)
					}
					if vErr.Field != tc.wantField {
						t.Fatalf("expected field %q, got %q", tc.wantField, vErr.Field)
					}
				}
				if created != nil {
					t.Error("expected nil request on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if created == nil {
				t.Fatal("expected non-nil request")
			}
			if created.ID.IsZero() {
				t.Error("expected assigned identifier")
			}
			if tc.checkStored != nil {
				tc.checkStored(t, created)
			}
		})
	}
}

func TestRequestService_TransitionStatus(t *testing.T) {
	testCases := []struct {
		desc       string
		status     string
		note       string
		mocks      func(requests *mock_service.MockRequestStore)
		wantErr    error
		wantErrAs  bool
		wantStatus entity.Status
	}{
		{
			desc:   "Success",
			status: "out_for_delivery",
			note:   "courier assigned",
			mocks: func(requests *mock_service.MockRequestStore) {
				requests.EXPECT().
					ApplyTransition(gomock.Any(), gomock.Any(), entity.StatusOutForDelivery, gomock.Any()).
					DoAndReturn(func(
						_ context.Context,
						_ string,
						status entity.Status,
						entry entity.HistoryEntry,
					) (*entity.DeliveryRequest, error) {
						if entry.Status != status {
							t.Errorf("expected entry tagged %q, got %q", status, entry.Status)
						}
						if entry.Note != "courier assigned" {
							t.Errorf("expected note carried into entry, got %q", entry.Note)
						}
						if entry.Timestamp.IsZero() {
							t.Error("expected stamped entry")
						}
						req := generateFakeRequest()
						req.Status = status
						req.StatusHistory = append(req.StatusHistory, entry)
						return req, nil
					}).Times(1)
			},
			wantStatus: entity.StatusOutForDelivery,
		},
		{
			desc:   "UnknownStatusNeverReachesStorage",
			status: "teleported",
			mocks:  func(requests *mock_service.MockRequestStore) {},
			wantErrAs: true,
		},
		{
			desc:   "NotFound",
			status: "delivered",
			mocks: func(requests *mock_service.MockRequestStore) {
				requests.EXPECT().
					ApplyTransition(gomock.Any(), gomock.Any(), entity.StatusDelivered, gomock.Any()).
					Return(nil, entity.ErrNotFound).Times(1)
			},
			wantErr: entity.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			requests := mock_service.NewMockRequestStore(ctrl)
			warehouses := mock_service.NewMockWarehouseStore(ctrl)
			tc.mocks(requests)

			s := newTestService(requests, warehouses, newTestCache(t))

			req, err := s.TransitionStatus(context.Background(), primitive.NewObjectID().Hex(), tc.status, tc.note)

			if tc.wantErrAs {
				var uErr *entity.UnknownStatusError
				if !errors.As(err, &uErr) {
					t.Fatalf("expected unknown status error, got %v", err)
				}
				if req != nil {
					t.Error("expected nil request on error")
				}
				return
			}

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if req.Status != tc.wantStatus {
				t.Fatalf("expected status %q, got %q", tc.wantStatus, req.Status)
			}
		})
	}
}

func TestRequestService_Reschedule(t *testing.T) {
	testCases := []struct {
		desc      string
		date      string
		slot      string
		mocks     func(requests *mock_service.MockRequestStore)
		wantField string
	}{
		{
			desc: "Success",
			date: "2026-09-15",
			slot: entity.TimeSlots()[2],
			mocks: func(requests *mock_service.MockRequestStore) {
				requests.EXPECT().
					ApplyReschedule(gomock.Any(), gomock.Any(), gomock.Any(), entity.TimeSlots()[2], gomock.Any()).
					DoAndReturn(func(
						_ context.Context,
						_ string,
						date time.Time,
						slot string,
						entry entity.HistoryEntry,
					) (*entity.DeliveryRequest, error) {
						if entry.Status != entity.StatusRescheduleRequested {
							t.Errorf("expected reschedule_requested entry, got %q", entry.Status)
						}
						want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
						if !date.Equal(want) {
							t.Errorf("expected date %v, got %v", want, date)
						}
						req := generateFakeRequest()
						req.Status = entity.StatusRescheduleRequested
						req.ScheduledDeliveryDate = date
						req.DeliveryTimeSlot = slot
						req.StatusHistory = append(req.StatusHistory, entry)
						return req, nil
					}).Times(1)
			},
		},
		{
			desc:      "MissingDate",
			slot:      entity.TimeSlots()[0],
			mocks:     func(requests *mock_service.MockRequestStore) {},
			wantField: "scheduledDeliveryDate",
		},
		{
			desc:      "MissingSlot",
			date:      "2026-09-15",
			mocks:     func(requests *mock_service.MockRequestStore) {},
			wantField: "deliveryTimeSlot",
		},
		{
			desc:      "MalformedDate",
			date:      "15/09/2026",
			slot:      entity.TimeSlots()[0],
			mocks:     func(requests *mock_service.MockRequestStore) {},
			wantField: "scheduledDeliveryDate",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			requests := mock_service.NewMockRequestStore(ctrl)
			warehouses := mock_service.NewMockWarehouseStore(ctrl)
			tc.mocks(requests)

			s := newTestService(requests, warehouses, newTestCache(t))

			req, err := s.Reschedule(context.Background(), primitive.NewObjectID().Hex(), tc.date, tc.slot, "")

			if tc.wantField != "" {
				var vErr *entity.ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if vErr.Field != tc.wantField {
					t.Fatalf("expected field %q, got %q", tc.wantField, vErr.Field)
				}
				if req != nil {
					t.Error("expected nil request on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if req.Status != entity.StatusRescheduleRequested {
				t.Fatalf("expected reschedule_requested, got %q", req.Status)
			}
		})
	}
}

func TestRequestService_UpdatePayment(t *testing.T) {
	amount := 249.50

	testCases := []struct {
		desc      string
		status    string
		patch     entity.PaymentPatch
		mocks     func(requests *mock_service.MockRequestStore)
		wantField string
		wantErr   error
	}{
		{
			desc:   "Success",
			status: "paid",
			patch:  entity.PaymentPatch{TotalAmount: &amount},
			mocks: func(requests *mock_service.MockRequestStore) {
				requests.EXPECT().
					ApplyPaymentUpdate(gomock.Any(), gomock.Any(), entity.PaymentPaid, gomock.Any()).
					DoAndReturn(func(
						_ context.Context,
						_ string,
						status entity.PaymentStatus,
						patch entity.PaymentPatch,
					) (*entity.DeliveryRequest, error) {
						if patch.TotalAmount == nil || *patch.TotalAmount != amount {
							t.Error("expected total amount carried in patch")
						}
						if patch.StorageFee != nil {
							t.Error("expected absent fields to stay nil")
						}
						req := generateFakeRequest()
						req.PaymentDetails.PaymentStatus = status
						req.PaymentDetails.TotalAmount = amount
						return req, nil
					}).Times(1)
			},
		},
		{
			desc:      "MissingStatus",
			mocks:     func(requests *mock_service.MockRequestStore) {},
			wantField: "paymentStatus",
		},
		{
			desc:      "InvalidStatus",
			status:    "refunded",
			mocks:     func(requests *mock_service.MockRequestStore) {},
			wantField: "paymentStatus",
		},
		{
			desc:   "NotFound",
			status: "completed",
			mocks: func(requests *mock_service.MockRequestStore) {
				requests.EXPECT().
					ApplyPaymentUpdate(gomock.Any(), gomock.Any(), entity.PaymentCompleted, gomock.Any()).
					Return(nil, entity.ErrNotFound).Times(1)
			},
			wantErr: entity.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			requests := mock_service.NewMockRequestStore(ctrl)
			warehouses := mock_service.NewMockWarehouseStore(ctrl)
			tc.mocks(requests)

			s := newTestService(requests, warehouses, newTestCache(t))

			req, err := s.UpdatePayment(context.Background(), primitive.NewObjectID().Hex(), tc.status, tc.patch)

			if tc.wantField != "" {
				var vErr *entity.ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if vErr.Field != tc.wantField {
					t.Fatalf("expected field %q, got %q", tc.wantField, vErr.Field)
				}
				return
			}

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if req.PaymentDetails.PaymentStatus != entity.PaymentPaid {
				t.Fatalf("expected paid, got %q", req.PaymentDetails.PaymentStatus)
			}
		})
	}
}

func TestRequestService_Get(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := mock_service.NewMockRequestStore(ctrl)
	warehouses := mock_service.NewMockWarehouseStore(ctrl)

	want := generateFakeRequest()
	requests.EXPECT().FindByReference(gomock.Any(), want.ID.Hex()).
		Return(want, nil).Times(1)
	requests.EXPECT().FindByReference(gomock.Any(), "missing").
		Return(nil, entity.ErrNotFound).Times(1)

	s := newTestService(requests, warehouses, newTestCache(t))

	got, err := s.Get(context.Background(), want.ID.Hex())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.OrderNumber != want.OrderNumber {
		t.Fatalf("expected order %q, got %q", want.OrderNumber, got.OrderNumber)
	}

	if _, err = s.Get(context.Background(), "missing"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRequestService_List(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := mock_service.NewMockRequestStore(ctrl)
	warehouses := mock_service.NewMockWarehouseStore(ctrl)

	filter := entity.RequestFilter{UserID: "u1", Status: entity.StatusSubmitted}
	stored := []*entity.DeliveryRequest{generateFakeRequest(), generateFakeRequest()}

	requests.EXPECT().List(gomock.Any(), filter).Return(stored, nil).Times(1)

	s := newTestService(requests, warehouses, newTestCache(t))

	got, err := s.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != len(stored) {
		t.Fatalf("expected %d requests, got %d", len(stored), len(got))
	}
}

func TestRequestService_Warehouse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := mock_service.NewMockRequestStore(ctrl)
	warehouses := mock_service.NewMockWarehouseStore(ctrl)

	want := generateFakeWarehouse()

	// one storage round-trip, the second read must hit the cache
	warehouses.EXPECT().GetByID(gomock.Any(), want.ID).
		Return(want, nil).Times(1)

	s := newTestService(requests, warehouses, newTestCache(t))

	for range 2 {
		got, err := s.Warehouse(context.Background(), want.ID.Hex())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Name != want.Name {
			t.Fatalf("expected warehouse %q, got %q", want.Name, got.Name)
		}
	}

	if _, err := s.Warehouse(context.Background(), "not-a-hex-id"); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found for malformed id, got %v", err)
	}
}

func TestRequestService_Warehouses(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requests := mock_service.NewMockRequestStore(ctrl)
	warehouses := mock_service.NewMockWarehouseStore(ctrl)

	active := []*entity.Warehouse{generateFakeWarehouse(), generateFakeWarehouse()}
	warehouses.EXPECT().ListActive(gomock.Any()).Return(active, nil).Times(1)

	whCache := newTestCache(t)
	s := newTestService(requests, warehouses, whCache)

	got, err := s.Warehouses(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != len(active) {
		t.Fatalf("expected %d warehouses, got %d", len(active), len(got))
	}

	// the listing warms the by-id cache
	for _, warehouse := range active {
		if !whCache.Has(warehouse.ID.Hex()) {
			t.Errorf("expected %s cached", warehouse.ID.Hex())
		}
	}
}
