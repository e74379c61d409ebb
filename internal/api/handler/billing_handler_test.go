package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

func TestBillingHandler_Overview(t *testing.T) {
	john := &domain.User{ID: 1, Name: "John Doe", Company: "Acme"}
	stub := &stubBillingService{
		overviewFn: func(ctx context.Context, search string) (*ports.BillingOverview, error) {
			if search != "lab" {
				t.Fatalf("unexpected search %q", search)
			}
			return &ports.BillingOverview{
				Rows: []ports.BillingRow{
					{Device: domain.Device{ID: "DEV001"}, Owner: john, DueAmount: decimal.RequireFromString("239.92")},
					{Device: domain.Device{ID: "DEV005"}, DueAmount: decimal.Zero},
				},
				Summary:  domain.BillingSummary{Total: 4, Online: 3, Rental: 3, Sold: 1, Overdue: 1, TotalDue: decimal.RequireFromString("599.8")},
				Rate:     decimal.RequireFromString("29.99"),
				Currency: "USD",
			}, nil
		},
	}
	handler := NewBillingHandler(stub)

	c, rec := newContext(http.MethodGet, "/v1/billing?search=lab", nil, "")
	expectCode(t, rec, handler.Overview(c), http.StatusOK)

	var resp billingOverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Summary.TotalDue != "599.80" || resp.Rate != "29.99" || resp.Currency != "USD" {
		t.Fatalf("unexpected summary: %+v", resp)
	}
	if resp.Rows[0].OwnerName != "John Doe" || resp.Rows[0].DueAmount != "239.92" {
		t.Fatalf("unexpected first row: %+v", resp.Rows[0])
	}
	if resp.Rows[1].Owner != nil || resp.Rows[1].OwnerName != "Unassigned" || resp.Rows[1].DueAmount != "0.00" {
		t.Fatalf("unexpected unassigned row: %+v", resp.Rows[1])
	}
}

func TestBillingHandler_RecordPayment(t *testing.T) {
	stub := &stubBillingService{
		paymentFn: func(ctx context.Context, actorID int, deviceID string) (*ports.PaymentResult, error) {
			if actorID != 5 || deviceID != "DEV003" {
				t.Fatalf("unexpected args: %d %s", actorID, deviceID)
			}
			return &ports.PaymentResult{Device: domain.Device{ID: deviceID}, Amount: decimal.RequireFromString("119.96"), Currency: "USD"}, nil
		},
	}
	handler := NewBillingHandler(stub)

	c, rec := newContext(http.MethodPost, "/v1/billing/devices/DEV003/payments", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("DEV003")
	withActor(c, 5, domain.RoleBillingAdmin)
	expectCode(t, rec, handler.RecordPayment(c), http.StatusCreated)

	var resp paymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Amount != "119.96" {
		t.Fatalf("unexpected amount %s", resp.Amount)
	}
}

func TestBillingHandler_SetPaymentStatus(t *testing.T) {
	stub := &stubBillingService{
		statusFn: func(ctx context.Context, actorID int, deviceID string, st domain.PaymentStatus) (*domain.Device, error) {
			if st != domain.PaymentOverdue {
				t.Fatalf("unexpected status %s", st)
			}
			return &domain.Device{ID: deviceID}, nil
		},
	}
	handler := NewBillingHandler(stub)

	c, rec := newContext(http.MethodPut, "/v1/billing/devices/DEV001/payment-status", strings.NewReader(`{"status":"Overdue"}`), echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("DEV001")
	withActor(c, 5, domain.RoleBillingAdmin)
	expectCode(t, rec, handler.SetPaymentStatus(c), http.StatusOK)

	c, _ = newContext(http.MethodPut, "/v1/billing/devices/DEV001/payment-status", strings.NewReader(`{"status":"N/A"}`), echo.MIMEApplicationJSON)
	withActor(c, 5, domain.RoleBillingAdmin)
	expectValidation(t, handler.SetPaymentStatus(c))
}

func TestBillingHandler_ToggleBlock(t *testing.T) {
	handler := NewBillingHandler(&stubBillingService{})

	c, rec := newContext(http.MethodPost, "/v1/billing/devices/DEV002/block", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("DEV002")
	withActor(c, 5, domain.RoleBillingAdmin)
	expectCode(t, rec, handler.ToggleBlock(c), http.StatusOK)

	var resp blockResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DeviceID != "DEV002" || !resp.Blocked {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
