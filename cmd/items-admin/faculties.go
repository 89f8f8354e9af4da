package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
)

func newFacultiesCmd(a *app) *cobra.Command {
	return newResourceCmd(a, resourceOps[models.Faculty, dto.CreateFacultyRequest]{
		name: "faculties",
		list: func(ctx context.Context) ([]models.Faculty, error) { return a.api.ListFaculties(ctx) },
		create: func(ctx context.Context, req dto.CreateFacultyRequest) error {
			_, err := a.api.CreateFaculty(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req dto.CreateFacultyRequest) error {
			_, err := a.api.UpdateFaculty(ctx, id, req)
			return err
		},
		remove: func(ctx context.Context, id int64) error { return a.api.DeleteFaculty(ctx, id) },
		upload: func(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error) {
			return a.api.UploadFaculties(ctx, filename, r)
		},
		searchFields: func(f models.Faculty) []string {
			return []string{f.Name, f.Code, f.Institution}
		},
	})
}
