package main

import (
	"context"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
	"github.com/CloudsoftGithub/items-admin/internal/form"
	"github.com/CloudsoftGithub/items-admin/internal/listview"
)

func newCoursesCmd(a *app) *cobra.Command {
	return newResourceCmd(a, resourceOps[models.Course, dto.CreateCourseRequest]{
		name: "courses",
		list: func(ctx context.Context) ([]models.Course, error) { return a.api.ListCourses(ctx) },
		create: func(ctx context.Context, req dto.CreateCourseRequest) error {
			_, err := a.api.CreateCourse(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req dto.CreateCourseRequest) error {
			_, err := a.api.UpdateCourse(ctx, id, req)
			return err
		},
		remove: func(ctx context.Context, id int64) error { return a.api.DeleteCourse(ctx, id) },
		upload: func(ctx context.Context, filename string, r io.Reader) (*models.UploadReport, error) {
			return a.api.UploadCourses(ctx, filename, r)
		},
		searchFields: func(c models.Course) []string {
			return []string{c.CourseCode, c.CourseTitle}
		},
		validateWith: func(rows func() []models.Course) form.ValidateFunc[dto.CreateCourseRequest] {
			return form.NewCourseValidator(rows).Validate
		},
		registerFilters: registerCourseFilters,
	})
}

// registerCourseFilters adds the categorical course filters: department id,
// exact course code and level label.
func registerCourseFilters(cmd *cobra.Command) func() []listview.Predicate[models.Course] {
	var dept, code, level string
	cmd.Flags().StringVar(&dept, "dept", "", "filter by department id")
	cmd.Flags().StringVar(&code, "code", "", "filter by exact course code")
	cmd.Flags().StringVar(&level, "level", "", "filter by level label")

	return func() []listview.Predicate[models.Course] {
		return []listview.Predicate[models.Course]{
			listview.Exact(dept, func(c models.Course) string {
				if c.Department == nil {
					return ""
				}
				return strconv.FormatInt(c.Department.ID, 10)
			}),
			listview.Exact(code, func(c models.Course) string { return c.CourseCode }),
			listview.Exact(level, func(c models.Course) string { return c.Level }),
		}
	}
}
