package web

import (
	"net/http"

	"github.com/clientportal/stockmonitor/internal/core"
	"github.com/clientportal/stockmonitor/internal/logging"
)

// handleHealth reports liveness and whether a batch has been loaded yet.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]interface{}{
		"status":   "ok",
		"hasBatch": s.service.Current() != nil,
	})
}

// handleInventory returns the full current batch: classified rows,
// aggregates, skipped-row count, and any unmapped informational fields.
func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	batch := s.service.Current()
	if batch == nil {
		s.respondError(w, r, core.ErrNoBatch)
		return
	}
	writeJSON(w, r, batch)
}

// handleMetrics returns only the aggregate metrics of the current batch.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	batch := s.service.Current()
	if batch == nil {
		s.respondError(w, r, core.ErrNoBatch)
		return
	}
	writeJSON(w, r, batch.Aggregates)
}

// handleCritical returns the rows at or below the critical threshold.
func (s *Server) handleCritical(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.CriticalItems()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, map[string]interface{}{
		"count": len(items),
		"items": items,
	})
}

// handleLowStock returns the rows needing attention (LOW_STOCK and
// CRITICAL), matching the lowStock aggregate.
func (s *Server) handleLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.LowStockItems()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, map[string]interface{}{
		"count": len(items),
		"items": items,
	})
}

// handleRefresh recomputes the dataset from the source immediately.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	batch, err := s.service.Refresh(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("manual refresh completed",
		"batch_id", batch.ID,
		"products", batch.Aggregates.TotalProducts,
		"skipped_rows", batch.SkippedRows,
	)
	writeJSON(w, r, batch)
}

// restockResponse is the result of a restock alert trigger.
type restockResponse struct {
	Triggered bool                 `json:"triggered"`
	ItemCount int                  `json:"itemCount"`
	Items     []core.ClassifiedRow `json:"items,omitempty"`
	Message   string               `json:"message,omitempty"`
}

// handleRestock posts the current critical items to the restock webhook.
func (s *Server) handleRestock(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.CriticalItems()
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if len(items) == 0 {
		writeJSON(w, r, restockResponse{
			Triggered: false,
			Message:   "no critical items to restock",
		})
		return
	}

	if err := s.notifier.Trigger(r.Context(), items); err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("restock webhook triggered", "items", len(items))
	writeJSON(w, r, restockResponse{
		Triggered: true,
		ItemCount: len(items),
		Items:     items,
	})
}
