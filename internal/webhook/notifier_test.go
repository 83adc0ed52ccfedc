package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clientportal/stockmonitor/internal/core"
)

func criticalItems() []core.ClassifiedRow {
	return []core.ClassifiedRow{
		{
			CanonicalRow: core.CanonicalRow{
				ProductName:  "Widget",
				SKU:          "W-1",
				Stock:        decimal.NewFromInt(5),
				RestockLevel: decimal.NewFromInt(3),
			},
			Status: core.StatusCritical,
		},
	}
}

func TestTrigger_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var parsed struct {
			Items []core.ClassifiedRow `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&parsed); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if len(parsed.Items) != 1 || parsed.Items[0].SKU != "W-1" {
			t.Errorf("payload items = %+v, want one W-1 row", parsed.Items)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL)
	if err := n.Trigger(context.Background(), criticalItems()); err != nil {
		t.Fatalf("Trigger() error = %v", err)
	}
}

func TestTrigger_NotConfigured(t *testing.T) {
	n := NewNotifier("")
	if n.Configured() {
		t.Error("Configured() = true for empty URL")
	}
	err := n.Trigger(context.Background(), criticalItems())
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Trigger() error = %v, want ErrNotConfigured", err)
	}
}

func TestTrigger_ErrorWithHint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"workflow crashed"}`))
	}))
	defer srv.Close()

	err := NewNotifier(srv.URL).Trigger(context.Background(), criticalItems())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "workflow crashed") {
		t.Errorf("error %q does not include the endpoint's message", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q does not include the status code", err)
	}
}

func TestTrigger_NotFoundIncludesGuidance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"hint":"webhook not registered"}`))
	}))
	defer srv.Close()

	err := NewNotifier(srv.URL).Trigger(context.Background(), criticalItems())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "webhook not registered") {
		t.Errorf("error %q does not include the hint", err)
	}
	if !strings.Contains(err.Error(), "activated in n8n") {
		t.Errorf("error %q does not include the activation guidance", err)
	}
}
