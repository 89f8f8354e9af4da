package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CloudsoftGithub/items-admin/internal/app/controllers"
	"github.com/CloudsoftGithub/items-admin/internal/bulk"
	"github.com/CloudsoftGithub/items-admin/internal/export"
	"github.com/CloudsoftGithub/items-admin/internal/form"
	"github.com/CloudsoftGithub/items-admin/internal/listview"
)

// resourceOps wires one entity type into the shared screen loop. Every
// management command (list/create/update/delete/import/export) is generated
// from this instead of rewritten per resource.
type resourceOps[T any, Req any] struct {
	name         string
	list         controllers.FetchFunc[T]
	create       func(ctx context.Context, req Req) error
	update       func(ctx context.Context, id int64, req Req) error
	remove       func(ctx context.Context, id int64) error
	upload       bulk.UploadFunc
	searchFields func(T) []string
	// validateWith builds the entity-specific validator over the loaded
	// collection (used for duplicate detection). Optional.
	validateWith func(rows func() []T) form.ValidateFunc[Req]
	// registerFilters adds entity-specific filter flags to a list/export
	// command and returns a collector producing their predicates. Optional.
	registerFilters func(cmd *cobra.Command) func() []listview.Predicate[T]
}

// newResourceCmd builds the command subtree for one entity type
func newResourceCmd[T any, Req any](a *app, ops resourceOps[T, Req]) *cobra.Command {
	root := &cobra.Command{
		Use:   ops.name,
		Short: fmt.Sprintf("Manage %s", ops.name),
	}

	root.AddCommand(
		newListCmd(a, ops),
		newCreateCmd(a, ops),
		newUpdateCmd(a, ops),
		newDeleteCmd(a, ops),
		newExportCmd(a, ops),
	)
	if ops.upload != nil {
		root.AddCommand(newImportCmd(a, ops))
	}
	return root
}

func newListCmd[T any, Req any](a *app, ops resourceOps[T, Req]) *cobra.Command {
	var q string
	var page, size int

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s with client-side filtering and pagination", ops.name),
	}
	cmd.Flags().StringVar(&q, "q", "", "case-insensitive text search")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&size, "size", listview.DefaultPageSize, "page size")

	var collect func() []listview.Predicate[T]
	if ops.registerFilters != nil {
		collect = ops.registerFilters(cmd)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		lc := controllers.NewListController(ops.list)
		if err := lc.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("error loading %s, please retry: %w", ops.name, err)
		}

		preds := []listview.Predicate[T]{listview.TextSearch(q, ops.searchFields)}
		if collect != nil {
			preds = append(preds, collect()...)
		}
		lc.SetFilters(preds...)
		lc.SetPageSize(size)
		lc.SetPage(page)

		renderPage(cmd, lc.View())
		return nil
	}
	return cmd
}

func newCreateCmd[T any, Req any](a *app, ops resourceOps[T, Req]) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create one of %s from a JSON payload", ops.name),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			req, err := decodePayload[Req](data)
			if err != nil {
				return err
			}

			fc, lc := newFormController(a, ops)
			if err := lc.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("error loading %s, please retry: %w", ops.name, err)
			}
			fc.Begin(req)
			if err := fc.Submit(cmd.Context()); err != nil {
				return err
			}
			printf(cmd, "Created.\n")
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @path to read a file")
	return cmd
}

func newUpdateCmd[T any, Req any](a *app, ops resourceOps[T, Req]) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: fmt.Sprintf("Update one of %s from a JSON payload", ops.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			req, err := decodePayload[Req](data)
			if err != nil {
				return err
			}

			fc, lc := newFormController(a, ops)
			if err := lc.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("error loading %s, please retry: %w", ops.name, err)
			}
			fc.BeginEdit(id, req)
			if err := fc.Submit(cmd.Context()); err != nil {
				return err
			}
			printf(cmd, "Updated.\n")
			return nil
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload, or @path to read a file")
	return cmd
}

func newDeleteCmd[T any, Req any](a *app, ops resourceOps[T, Req]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete one of %s", ops.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if err := ops.remove(cmd.Context(), id); err != nil {
				return err
			}
			printf(cmd, "Deleted.\n")
			return nil
		},
	}
}

func newImportCmd[T any, Req any](a *app, ops resourceOps[T, Req]) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: fmt.Sprintf("Bulk-import %s from a CSV/XLSX file", ops.name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			lc := controllers.NewListController(ops.list)
			rec := bulk.New(ops.upload, lc.Refresh)
			report, err := rec.Import(cmd.Context(), args[0], file)
			if err != nil {
				return err
			}
			bulk.Render(cmd.OutOrStdout(), report)
			rec.Dismiss()
			return nil
		},
	}
}

func newExportCmd[T any, Req any](a *app, ops resourceOps[T, Req]) *cobra.Command {
	var q, format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: fmt.Sprintf("Export the filtered %s to CSV or XLSX", ops.name),
	}
	cmd.Flags().StringVar(&q, "q", "", "case-insensitive text search")
	cmd.Flags().StringVar(&format, "format", "csv", "csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <resource>.<format>)")

	var collect func() []listview.Predicate[T]
	if ops.registerFilters != nil {
		collect = ops.registerFilters(cmd)
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		rows, err := ops.list(cmd.Context())
		if err != nil {
			return fmt.Errorf("error loading %s, please retry: %w", ops.name, err)
		}

		preds := []listview.Predicate[T]{listview.TextSearch(q, ops.searchFields)}
		if collect != nil {
			preds = append(preds, collect()...)
		}
		filtered := listview.Filter(rows, preds)

		if out == "" {
			out = ops.name + "." + format
		}
		switch format {
		case "csv":
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := export.ToCSV(f, filtered); err != nil {
				return err
			}
		case "xlsx":
			if err := export.ToXLSX(out, filtered); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported format %q (want csv or xlsx)", format)
		}

		printf(cmd, "Exported %d rows to %s\n", len(filtered), out)
		return nil
	}
	return cmd
}

// newFormController wires the form to the gateway operations and the list
// refresh for one command invocation
func newFormController[T any, Req any](a *app, ops resourceOps[T, Req]) (*form.Controller[Req], *controllers.ListController[T]) {
	lc := controllers.NewListController(ops.list)

	var validate form.ValidateFunc[Req]
	if ops.validateWith != nil {
		validate = ops.validateWith(lc.Rows)
	}

	fc := form.NewController(form.Config[Req]{
		Create:   ops.create,
		Update:   ops.update,
		Validate: validate,
		Refresh:  lc.Refresh,
	})
	return fc, lc
}

// decodePayload parses a JSON payload from the --data flag, supporting
// @path indirection for larger payloads
func decodePayload[Req any](data string) (Req, error) {
	var req Req
	if data == "" {
		return req, fmt.Errorf("--data is required")
	}
	if strings.HasPrefix(data, "@") {
		raw, err := os.ReadFile(data[1:])
		if err != nil {
			return req, err
		}
		data = string(raw)
	}
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return req, fmt.Errorf("invalid JSON payload: %w", err)
	}
	return req, nil
}

// renderPage writes one derived page as a terminal table
func renderPage[T any](cmd *cobra.Command, page listview.Page[T]) {
	if len(page.Visible) == 0 {
		printf(cmd, "No records found.\n")
		return
	}

	names, records := export.Table(page.Visible)
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(names, "\t")))
	for _, record := range records {
		fmt.Fprintln(tw, strings.Join(record, "\t"))
	}
	tw.Flush()
	printf(cmd, "Page %d of %d (%d records)\n", page.SafePage, page.TotalPages, page.Total)
}
