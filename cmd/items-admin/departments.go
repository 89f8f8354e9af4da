package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
)

func newDepartmentsCmd(a *app) *cobra.Command {
	return newResourceCmd(a, resourceOps[models.Department, dto.CreateDepartmentRequest]{
		name: "departments",
		list: func(ctx context.Context) ([]models.Department, error) { return a.api.ListDepartments(ctx) },
		create: func(ctx context.Context, req dto.CreateDepartmentRequest) error {
			_, err := a.api.CreateDepartment(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req dto.CreateDepartmentRequest) error {
			_, err := a.api.UpdateDepartment(ctx, id, req)
			return err
		},
		remove: func(ctx context.Context, id int64) error { return a.api.DeleteDepartment(ctx, id) },
		upload: func(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error) {
			return a.api.UploadDepartments(ctx, filename, r)
		},
		searchFields: func(d models.Department) []string {
			return []string{d.Name, d.Code}
		},
	})
}
