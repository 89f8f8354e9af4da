// Package bulk submits one user-selected file to the matching bulk-upload
// endpoint and surfaces the structured reconciliation outcome.
package bulk

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/apperrors"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/logger"
)

// UploadFunc is a gateway bulk-upload operation
type UploadFunc func(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error)

// Reconciler drives bulk imports for one entity type. At most one upload is
// in flight at a time; a second attempt while busy is rejected, not queued.
type Reconciler struct {
	upload  UploadFunc
	refresh func(ctx context.Context) error

	busy atomic.Bool

	mu     sync.Mutex
	report *models.UploadReport
}

// New creates a reconciler. refresh re-fetches the owning list after a
// successful upload so saved rows become visible.
func New(upload UploadFunc, refresh func(ctx context.Context) error) *Reconciler {
	return &Reconciler{upload: upload, refresh: refresh}
}

// Import uploads the file and retains the reconciliation report until
// Dismiss. A request-level failure leaves no report behind (none was
// returned); per-row failures inside a 2xx response are a normal outcome.
func (r *Reconciler) Import(ctx context.Context, filename string, file io.Reader) (*models.UploadReport, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, apperrors.ErrUploadInFlight
	}
	defer r.busy.Store(false)

	report, err := r.upload(ctx, filename, file)
	if err != nil {
		return nil, err
	}

	if r.refresh != nil {
		if err := r.refresh(ctx); err != nil {
			// Saved rows exist server-side; the report still stands even if
			// the list refresh failed.
			logger.Warn().Err(err).Str("file", filename).Msg("list refresh after upload failed")
		}
	}

	r.mu.Lock()
	r.report = report
	r.mu.Unlock()
	return report, nil
}

// InFlight reports whether an upload is currently running; upload
// affordances for this entity type stay disabled while true.
func (r *Reconciler) InFlight() bool {
	return r.busy.Load()
}

// Report returns the retained reconciliation report, if any
func (r *Reconciler) Report() (*models.UploadReport, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.report, r.report != nil
}

// Dismiss discards the retained report
func (r *Reconciler) Dismiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.report = nil
}
