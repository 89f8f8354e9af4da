package bulk

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/apperrors"
)

func okReport() *models.UploadReport {
	return &models.UploadReport{Processed: 3, Saved: 3, Errors: []models.RowIssue{}}
}

func TestImportRetainsReportUntilDismiss(t *testing.T) {
	refreshed := false
	r := New(
		func(ctx context.Context, filename string, file io.Reader) (*models.UploadReport, error) {
			return okReport(), nil
		},
		func(ctx context.Context) error {
			refreshed = true
			return nil
		},
	)

	report, err := r.Import(context.Background(), "f.csv", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, 3, report.Saved)
	assert.True(t, refreshed, "owning list re-fetched after upload")

	kept, ok := r.Report()
	require.True(t, ok)
	assert.Same(t, report, kept)

	r.Dismiss()
	_, ok = r.Report()
	assert.False(t, ok)
}

func TestImportRequestFailureLeavesNoReport(t *testing.T) {
	refreshed := false
	r := New(
		func(ctx context.Context, filename string, file io.Reader) (*models.UploadReport, error) {
			return nil, apperrors.ErrServerFailure
		},
		func(ctx context.Context) error {
			refreshed = true
			return nil
		},
	)

	_, err := r.Import(context.Background(), "f.csv", strings.NewReader("x"))
	assert.ErrorIs(t, err, apperrors.ErrServerFailure)
	assert.False(t, refreshed)

	_, ok := r.Report()
	assert.False(t, ok)
}

func TestImportSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	r := New(
		func(ctx context.Context, filename string, file io.Reader) (*models.UploadReport, error) {
			close(started)
			<-release
			return okReport(), nil
		},
		nil,
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := r.Import(context.Background(), "first.csv", strings.NewReader("x"))
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, r.InFlight())

	_, err := r.Import(context.Background(), "second.csv", strings.NewReader("y"))
	assert.ErrorIs(t, err, apperrors.ErrUploadInFlight)

	close(release)
	wg.Wait()
	assert.False(t, r.InFlight())

	// The guard is released, so a new upload is accepted again.
	_, ok := r.Report()
	assert.True(t, ok)
}

func TestImportRefreshFailureKeepsReport(t *testing.T) {
	r := New(
		func(ctx context.Context, filename string, file io.Reader) (*models.UploadReport, error) {
			return okReport(), nil
		},
		func(ctx context.Context) error {
			return errors.New("refresh blew up")
		},
	)

	report, err := r.Import(context.Background(), "f.csv", strings.NewReader("x"))
	require.NoError(t, err, "refresh failure does not fail the import")
	assert.NotNil(t, report)

	_, ok := r.Report()
	assert.True(t, ok)
}

func TestRenderEmptyIssueList(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &models.UploadReport{Processed: 5, Saved: 5, Errors: []models.RowIssue{}})

	out := buf.String()
	assert.Contains(t, out, "processed 5, saved 5")
	assert.Contains(t, out, "No errors or duplicates.")
}

func TestRenderRowIssues(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &models.UploadReport{
		Processed: 4, Saved: 2, Failed: 2,
		Errors: []models.RowIssue{
			{RowNumber: 2, Message: "duplicate course code"},
			{RowNumber: 4, Message: "unknown department"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Row issues:")
	assert.Contains(t, out, "duplicate course code")
	assert.Contains(t, out, "unknown department")
	assert.NotContains(t, out, "No errors")
}
