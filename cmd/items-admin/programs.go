package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
)

func newProgramsCmd(a *app) *cobra.Command {
	return newResourceCmd(a, resourceOps[models.Program, dto.CreateProgramRequest]{
		name: "programs",
		list: func(ctx context.Context) ([]models.Program, error) { return a.api.ListPrograms(ctx) },
		create: func(ctx context.Context, req dto.CreateProgramRequest) error {
			_, err := a.api.CreateProgram(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req dto.CreateProgramRequest) error {
			_, err := a.api.UpdateProgram(ctx, id, req)
			return err
		},
		remove: func(ctx context.Context, id int64) error { return a.api.DeleteProgram(ctx, id) },
		upload: func(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error) {
			return a.api.UploadPrograms(ctx, filename, r)
		},
		searchFields: func(p models.Program) []string {
			return []string{p.Name}
		},
	})
}
