package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
)

// uploadFile posts one file as multipart field "file" and decodes the
// reconciliation report. Partial failure (failed > 0) is a normal 2xx
// outcome, not an error.
func (c *Client) uploadFile(ctx context.Context, path, filename string, r io.Reader) (*models.UploadReport, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.decorate(req)

	var report models.UploadReport
	if err := c.execute(req, &report); err != nil {
		return nil, err
	}
	if report.Errors == nil {
		report.Errors = []models.RowIssue{}
	}
	return &report, nil
}

// UploadFaculties bulk-imports faculties from a CSV/XLSX file
func (c *Client) UploadFaculties(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error) {
	return c.uploadFile(ctx, "/api/upload/faculty", filename, r)
}

// UploadDepartments bulk-imports departments from a CSV/XLSX file
func (c *Client) UploadDepartments(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error) {
	return c.uploadFile(ctx, "/api/upload/departments", filename, r)
}

// UploadPrograms bulk-imports programs from a CSV/XLSX file
func (c *Client) UploadPrograms(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error) {
	return c.uploadFile(ctx, "/api/upload/programs", filename, r)
}

// UploadCourses bulk-imports courses from a CSV/XLSX file
func (c *Client) UploadCourses(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error) {
	return c.uploadFile(ctx, "/api/upload/courses", filename, r)
}
