package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/apperrors"
)

func TestSubmitBlocksOnMissingRequiredField(t *testing.T) {
	created := false
	refreshed := false

	c := NewController(Config[dto.CreateFacultyRequest]{
		Create: func(ctx context.Context, req dto.CreateFacultyRequest) error {
			created = true
			return nil
		},
		Refresh: func(ctx context.Context) error {
			refreshed = true
			return nil
		},
	})

	c.Begin(dto.CreateFacultyRequest{FacultyName: "Science", FacultyCode: "SCI"})
	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrRequiredField)
	assert.False(t, created, "no network call on validation failure")
	assert.False(t, refreshed)

	// The draft survives so the user can correct it.
	assert.True(t, c.Open())
	assert.Equal(t, "Science", c.Draft().FacultyName)
}

func TestSubmitCreateRefreshesAndResets(t *testing.T) {
	var got dto.CreateFacultyRequest
	refreshed := false

	c := NewController(Config[dto.CreateFacultyRequest]{
		Create: func(ctx context.Context, req dto.CreateFacultyRequest) error {
			got = req
			return nil
		},
		Refresh: func(ctx context.Context) error {
			refreshed = true
			return nil
		},
	})

	c.Begin(dto.CreateFacultyRequest{
		FacultyName: "Science",
		FacultyCode: "SCI",
		Institution: "ITEMS College",
	})
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, "SCI", got.FacultyCode)
	assert.True(t, refreshed, "list re-fetched after successful submit")
	assert.False(t, c.Open(), "form reset after success")
}

func TestSubmitUpdateUsesEditID(t *testing.T) {
	var gotID int64

	c := NewController(Config[dto.CreateFacultyRequest]{
		Create: func(ctx context.Context, req dto.CreateFacultyRequest) error {
			t.Fatal("create must not run in edit mode")
			return nil
		},
		Update: func(ctx context.Context, id int64, req dto.CreateFacultyRequest) error {
			gotID = id
			return nil
		},
	})

	c.BeginEdit(42, dto.CreateFacultyRequest{
		FacultyName: "Science", FacultyCode: "SCI", Institution: "ITEMS College",
	})
	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, int64(42), gotID)
}

func TestSubmitKeepsDraftOnBackendRejection(t *testing.T) {
	rejection := apperrors.NewCustomError(apperrors.ErrBackendRejected, "code already exists").WithStatus(409)

	c := NewController(Config[dto.CreateFacultyRequest]{
		Create: func(ctx context.Context, req dto.CreateFacultyRequest) error {
			return rejection
		},
	})

	c.Begin(dto.CreateFacultyRequest{
		FacultyName: "Science", FacultyCode: "SCI", Institution: "ITEMS College",
	})
	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrBackendRejected)
	assert.True(t, c.Open(), "form stays open for correction")
	assert.Equal(t, "SCI", c.Draft().FacultyCode)
}

func TestSubmitRunsEntityHook(t *testing.T) {
	hookErr := errors.New("hook rejected")
	var hookEditID int64

	c := NewController(Config[dto.CreateFacultyRequest]{
		Create: func(ctx context.Context, req dto.CreateFacultyRequest) error { return nil },
		Update: func(ctx context.Context, id int64, req dto.CreateFacultyRequest) error { return nil },
		Validate: func(req dto.CreateFacultyRequest, editID int64) error {
			hookEditID = editID
			return hookErr
		},
	})

	c.BeginEdit(5, dto.CreateFacultyRequest{
		FacultyName: "Science", FacultyCode: "SCI", Institution: "ITEMS College",
	})
	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, hookErr)
	assert.Equal(t, int64(5), hookEditID)
}
