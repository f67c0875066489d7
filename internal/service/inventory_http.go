package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPReconciler calls an external inventory API to reconcile drug
// requirements for a freshly assigned batch.
type HTTPReconciler struct {
	baseURL string
	client  *http.Client
}

// NewHTTPReconciler creates a reconciler that POSTs tasks to
// baseURL/inventory/reconcile.
func NewHTTPReconciler(baseURL string, timeout time.Duration) *HTTPReconciler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPReconciler{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// reconcilePayload is the wire format expected by the inventory API.
type reconcilePayload struct {
	CompanyID int64   `json:"company_id"`
	TimeZone  string  `json:"time_zone"`
	BatchID   int64   `json:"batch_id"`
	SystemIDs []int64 `json:"system_ids"`
}

// Reconcile implements InventoryReconciler.
func (r *HTTPReconciler) Reconcile(ctx context.Context, task InventoryTask) error {
	body, err := json.Marshal(reconcilePayload{
		CompanyID: task.CompanyID,
		TimeZone:  task.TimeZone,
		BatchID:   task.BatchID,
		SystemIDs: task.SystemIDs,
	})
	if err != nil {
		return fmt.Errorf("marshal reconcile payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/inventory/reconcile", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build reconcile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("call inventory API: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("inventory API returned status %d", resp.StatusCode)
	}
	return nil
}
