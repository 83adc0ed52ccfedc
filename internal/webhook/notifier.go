// Package webhook posts restock alerts to an automation endpoint.
//
// The payload is a single JSON object {"items": [...]} so it can feed
// low-code automation platforms (n8n, Zapier) directly. Error responses
// from those platforms usually carry a "hint" or "message" field, which is
// surfaced to the caller for diagnosis.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/clientportal/stockmonitor/internal/core"
)

// DefaultTimeout bounds one webhook call.
const DefaultTimeout = 10 * time.Second

// ErrNotConfigured is returned when no webhook URL is set.
var ErrNotConfigured = errors.New("webhook URL not configured")

// notFoundGuidance explains the usual cause of a 404 from an n8n webhook
// in test or edit mode.
const notFoundGuidance = "ensure the workflow with this webhook is activated in n8n, or click Execute workflow in the editor to register the temporary webhook before calling it"

// Notifier posts restock requests to a configured webhook URL.
type Notifier struct {
	url  string
	http *http.Client
}

// NewNotifier creates a Notifier. An empty URL yields a notifier whose
// Trigger returns ErrNotConfigured, so callers need no nil checks.
func NewNotifier(url string) *Notifier {
	return &Notifier{
		url:  url,
		http: &http.Client{Timeout: DefaultTimeout},
	}
}

// Configured reports whether a webhook URL is set.
func (n *Notifier) Configured() bool {
	return n.url != ""
}

type payload struct {
	Items []core.ClassifiedRow `json:"items"`
}

// Trigger posts the items to the webhook. Any 2xx response is success; on
// failure the error includes the status and whatever hint the endpoint
// returned.
func (n *Notifier) Trigger(ctx context.Context, items []core.ClassifiedRow) error {
	if !n.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload{Items: items})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("trigger webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	hint := responseHint(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("webhook error %d: %s: %s", resp.StatusCode, hint, notFoundGuidance)
	}
	return fmt.Errorf("webhook error %d: %s", resp.StatusCode, hint)
}

// responseHint extracts a useful message from an error response body.
func responseHint(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return "no response body"
	}

	var parsed struct {
		Hint    string `json:"hint"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Hint != "" {
			return parsed.Hint
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}

	return strings.TrimSpace(string(raw))
}
