package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
)

func newCreditHoursCmd(a *app) *cobra.Command {
	return newResourceCmd(a, resourceOps[models.CreditHourRule, dto.CreateCreditHourRuleRequest]{
		name: "credit-hours",
		list: func(ctx context.Context) ([]models.CreditHourRule, error) {
			return a.api.ListCreditHourRules(ctx)
		},
		create: func(ctx context.Context, req dto.CreateCreditHourRuleRequest) error {
			_, err := a.api.CreateCreditHourRule(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req dto.CreateCreditHourRuleRequest) error {
			_, err := a.api.UpdateCreditHourRule(ctx, id, req)
			return err
		},
		remove: func(ctx context.Context, id int64) error { return a.api.DeleteCreditHourRule(ctx, id) },
		searchFields: func(r models.CreditHourRule) []string {
			if r.Session == nil {
				return nil
			}
			return []string{r.Session.IntakeSession}
		},
	})
}
