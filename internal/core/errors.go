package core

// errors.go defines the error taxonomy for the mapping and classification
// engine and maps technical errors to user-friendly messages with support
// codes.
//
// Error codes are grouped by category:
//
//	MAP001 - No stock column: no stock-like header could be identified
//	MAP002 - No restock column: no restock-level header could be identified
//	CLS001 - Invariant violation: negative quantity reached the classifier
//	SRC001 - Fetch failed: the sheet export could not be downloaded
//	SRC002 - Bad sheet URL: the configured spreadsheet URL is malformed
//	HOOK001 - Webhook not configured
//	HOOK002 - Webhook rejected the restock request
//	SYS001 - No batch yet: data requested before the first refresh
//	ERR000 - Fallback for unrecognized errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clientportal/stockmonitor/internal/schema"
)

// MappingErrorKind classifies table-level mapping failures.
type MappingErrorKind string

const (
	// MissingRequiredField aborts the whole batch: a decision-critical
	// column could not be identified, and the engine does not invent data
	// it never confidently matched.
	MissingRequiredField MappingErrorKind = "missing_required_field"
)

// MappingError is a fatal, table-level mapping failure. No partial result
// is produced when one is returned.
type MappingError struct {
	Kind  MappingErrorKind
	Field schema.Field
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("column mapping failed: %s (field %s)", e.Kind, e.Field)
}

// InvariantError reports a contract breach between the mapper and the
// classifier, such as a negative quantity reaching classification. It
// should never occur when mapper invariants hold.
type InvariantError struct {
	SKU    string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation for %q: %s", e.SKU, e.Detail)
}

// ErrNoBatch is returned when batch data is requested before the first
// successful refresh has completed.
var ErrNoBatch = errors.New("no batch available yet")

// UserMessage is a user-friendly error with a support code. Users can
// quote the code to support staff for faster diagnosis.
type UserMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

var defaultMessage = UserMessage{
	Code:    "ERR000",
	Message: "An unexpected error occurred",
	Action:  "Please try again; contact support with the code if it persists",
}

// errorPatterns maps lowercase error substrings to user messages, checked
// in order. Typed errors are handled before patterns in MapError.
var errorPatterns = []struct {
	pattern string
	msg     UserMessage
}{
	{"missing /d/ segment", UserMessage{
		Code:    "SRC002",
		Message: "The spreadsheet URL is not a valid Google Sheets link",
		Action:  "Check the SHEET_URL setting; it should contain /d/<sheet-id>/",
	}},
	{"fetch sheet export", UserMessage{
		Code:    "SRC001",
		Message: "Could not download data from the spreadsheet",
		Action:  "Check the sheet is shared for export and try again",
	}},
	{"sheet export returned status", UserMessage{
		Code:    "SRC001",
		Message: "The spreadsheet export request was rejected",
		Action:  "Check the sheet is shared for export and try again",
	}},
	{"sheet export is empty", UserMessage{
		Code:    "SRC001",
		Message: "The spreadsheet returned no data",
		Action:  "Check that the first tab of the sheet contains rows",
	}},
	{"webhook url not configured", UserMessage{
		Code:    "HOOK001",
		Message: "No restock webhook is configured",
		Action:  "Set WEBHOOK_URL to enable restock alerts",
	}},
	{"webhook error", UserMessage{
		Code:    "HOOK002",
		Message: "The restock webhook rejected the request",
		Action:  "Check the automation workflow is active and reachable",
	}},
	{"no batch available", UserMessage{
		Code:    "SYS001",
		Message: "No inventory data has been loaded yet",
		Action:  "Wait for the first refresh to complete or trigger one manually",
	}},
}

// MapError converts a technical error to a user-friendly message.
// Typed engine errors map directly; everything else falls back to
// substring matching against the patterns above, first match wins.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var mapErr *MappingError
	if errors.As(err, &mapErr) {
		return mappingMessage(mapErr)
	}

	var invErr *InvariantError
	if errors.As(err, &invErr) {
		return UserMessage{
			Code:    "CLS001",
			Message: "Inventory data failed an internal consistency check",
			Action:  "Report this to support; the source data may be corrupted",
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

func mappingMessage(err *MappingError) UserMessage {
	switch err.Field {
	case schema.FieldStock:
		return UserMessage{
			Code:    "MAP001",
			Message: "Could not detect a stock column in the sheet",
			Action:  "Rename the stock column to one of: Available Stock, Stock, Qty, Quantity, Inventory, Available, On Hand",
		}
	case schema.FieldRestockLevel:
		return UserMessage{
			Code:    "MAP002",
			Message: "Could not detect a restock level column in the sheet",
			Action:  "Rename the restock column to one of: Restock Level, Threshold, Min Stock, Reorder Point, Minimum",
		}
	default:
		return UserMessage{
			Code:    "MAP000",
			Message: fmt.Sprintf("Could not map the %s column", err.Field),
			Action:  "Check the sheet headers against the recognized names",
		}
	}
}
