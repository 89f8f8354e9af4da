// Package form owns a single draft record for create/edit, runs pre-submit
// validation and dispatches the submission. The same controller backs every
// entity type; the earlier per-screen rewrites of this loop had drifted
// apart, so validation completeness now lives in one place.
package form

import (
	"context"
	"sync"

	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
)

// ValidateFunc runs entity-specific rules on the draft. editID is the id of
// the record under edit, 0 on create; duplicate checks use it to exclude the
// record from matching itself.
type ValidateFunc[Req any] func(req Req, editID int64) error

// Controller manages the draft lifecycle for one entity type
type Controller[Req any] struct {
	mu       sync.Mutex
	create   func(ctx context.Context, req Req) error
	update   func(ctx context.Context, id int64, req Req) error
	validate ValidateFunc[Req]
	refresh  func(ctx context.Context) error

	open    bool
	editing bool
	editID  int64
	draft   Req
}

// Config wires a controller to its gateway operations
type Config[Req any] struct {
	Create   func(ctx context.Context, req Req) error
	Update   func(ctx context.Context, id int64, req Req) error
	Validate ValidateFunc[Req]
	// Refresh re-fetches the owning list after a successful submit so the
	// visible table reflects the backend's authoritative state.
	Refresh func(ctx context.Context) error
}

// NewController creates a form controller
func NewController[Req any](cfg Config[Req]) *Controller[Req] {
	return &Controller[Req]{
		create:   cfg.Create,
		update:   cfg.Update,
		validate: cfg.Validate,
		refresh:  cfg.Refresh,
	}
}

// Begin opens the form with a fresh draft for create
func (c *Controller[Req]) Begin(draft Req) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
	c.editing = false
	c.editID = 0
	c.draft = draft
}

// BeginEdit opens the form with an existing record's values
func (c *Controller[Req]) BeginEdit(id int64, draft Req) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
	c.editing = true
	c.editID = id
	c.draft = draft
}

// Draft returns the current draft values
func (c *Controller[Req]) Draft() Req {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetDraft replaces the draft values while the form is open
func (c *Controller[Req]) SetDraft(draft Req) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = draft
}

// Editing reports whether the form is in edit mode and for which record
func (c *Controller[Req]) Editing() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editID, c.editing
}

// Open reports whether a draft is active
func (c *Controller[Req]) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Submit validates the draft and dispatches it. The first validation
// failure blocks submission with no network call and the draft is kept so
// the user can correct it. Backend rejection also keeps the draft. Only a
// successful submit refreshes the owning list and resets the form.
func (c *Controller[Req]) Submit(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	editing := c.editing
	editID := c.editID
	c.mu.Unlock()

	if err := dto.Validate(draft); err != nil {
		return err
	}
	if c.validate != nil {
		if err := c.validate(draft, editID); err != nil {
			return err
		}
	}

	var err error
	if editing {
		err = c.update(ctx, editID, draft)
	} else {
		err = c.create(ctx, draft)
	}
	if err != nil {
		return err
	}

	if c.refresh != nil {
		if err := c.refresh(ctx); err != nil {
			return err
		}
	}

	c.Reset()
	return nil
}

// Reset closes the form and clears the draft
func (c *Controller[Req]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero Req
	c.open = false
	c.editing = false
	c.editID = 0
	c.draft = zero
}
