package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
)

func newSessionsCmd(a *app) *cobra.Command {
	return newResourceCmd(a, resourceOps[models.AcademicSession, dto.CreateSessionRequest]{
		name: "sessions",
		list: func(ctx context.Context) ([]models.AcademicSession, error) { return a.api.ListSessions(ctx) },
		create: func(ctx context.Context, req dto.CreateSessionRequest) error {
			_, err := a.api.CreateSession(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req dto.CreateSessionRequest) error {
			_, err := a.api.UpdateSession(ctx, id, req)
			return err
		},
		remove: func(ctx context.Context, id int64) error { return a.api.DeleteSession(ctx, id) },
		searchFields: func(s models.AcademicSession) []string {
			return []string{s.IntakeSession}
		},
	})
}
