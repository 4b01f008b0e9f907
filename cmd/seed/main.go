//nolint:mnd
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urmii20/burrow/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
)

type seedAddress struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Contact    string `json:"contact"`
}

type seedPayment struct {
	BaseHandlingFee float64 `json:"baseHandlingFee"`
	StorageFee      float64 `json:"storageFee"`
	DeliveryCharge  float64 `json:"deliveryCharge"`
	GST             float64 `json:"gst"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentMethod   string  `json:"paymentMethod"`
}

type seedRequest struct {
	UserID                string      `json:"userId"`
	OrderNumber           string      `json:"orderNumber"`
	Platform              string      `json:"platform"`
	ProductDescription    string      `json:"productDescription"`
	ScheduledDeliveryDate string      `json:"scheduledDeliveryDate"`
	DeliveryTimeSlot      string      `json:"deliveryTimeSlot"`
	DestinationAddress    seedAddress `json:"destinationAddress"`
	PaymentDetails        seedPayment `json:"paymentDetails"`
}

func main() {
	addr := flag.String("addr", "http://localhost:8080", "Service base URL to post requests to")
	count := flag.Int("count", 1, "Number of delivery requests to create")
	interval := flag.Duration("interval", 1*time.Second, "Interval between requests")

	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := &http.Client{Timeout: 5 * time.Second}

	log.Printf("Seeding %d delivery requests against '%s' every %v\n", *count, *addr, *interval)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	sent := 0

	sendRequest(ctx, client, *addr)

	sent++
	if sent >= *count {
		log.Printf("Created all %d requests. Exiting.\n", *count)
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down seeder...")
			return
		case <-ticker.C:
			sendRequest(ctx, client, *addr)
			sent++
			if sent >= *count {
				log.Printf("Created all %d requests. Exiting.\n", *count)
				return
			}
		}
	}
}

func sendRequest(ctx context.Context, client *http.Client, addr string) {
	payload := generateFakeRequest()

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal request: %v", err)
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(
		reqCtx, http.MethodPost, addr+"/requests", bytes.NewReader(body),
	)
	if err != nil {
		log.Printf("Failed to build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Failed to create request: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("Unexpected status %d: %s", resp.StatusCode, snippet)
		return
	}

	log.Printf("Created request for order %s", payload.OrderNumber)
}

func generateFakeRequest() seedRequest {
	slots := entity.TimeSlots()
	base := gofakeit.Price(20, 80)
	storage := gofakeit.Price(10, 50)
	delivery := gofakeit.Price(30, 120)
	gst := (base + storage + delivery) * 0.18

	return seedRequest{
		UserID:             gofakeit.Username(),
		OrderNumber:        fmt.Sprintf("ORD-%d", gofakeit.Number(100000, 999999)),
		Platform:           gofakeit.RandomString([]string{"amazon", "flipkart", "myntra", "ajio"}),
		ProductDescription: gofakeit.ProductName(),
		ScheduledDeliveryDate: gofakeit.DateRange(
			time.Now().AddDate(0, 0, 1),
			time.Now().AddDate(0, 0, 14),
		).Format("2006-01-02"),
		DeliveryTimeSlot: slots[gofakeit.Number(0, len(slots)-1)],
		DestinationAddress: seedAddress{
			Line1:      gofakeit.Street(),
			City:       gofakeit.City(),
			State:      gofakeit.State(),
			PostalCode: gofakeit.Zip(),
			Contact:    gofakeit.Phone(),
		},
		PaymentDetails: seedPayment{
			BaseHandlingFee: base,
			StorageFee:      storage,
			DeliveryCharge:  delivery,
			GST:             gst,
			TotalAmount:     base + storage + delivery + gst,
			PaymentMethod:   gofakeit.RandomString([]string{"card", "upi", "netbanking"}),
		},
	}
}
