// Package checklist handles the preparation checklist commands
package checklist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studyabroad/departure-planner/cmd/root"
	checklistpkg "studyabroad/departure-planner/internal/checklist"
	"studyabroad/departure-planner/internal/export"
	"studyabroad/departure-planner/internal/models"
	"studyabroad/departure-planner/internal/plannererror"
	"studyabroad/departure-planner/internal/render"
)

// Cmd represents the checklist command
var Cmd = &cobra.Command{
	Use:   "checklist",
	Short: "Show and edit the preparation checklist",
	Long: `Show the preparation checklist generated from your departure date.
The checklist is generated once and then kept; use 'checklist reset' after
changing the departure date to regenerate it.`,
	RunE: showFunc,
}

var (
	category string
	output   string
)

func init() {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the checklist grouped by category",
		RunE:  showFunc,
	}
	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark an item done or not done",
		Args:  cobra.ExactArgs(1),
		RunE:  toggleFunc,
	}
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteFunc,
	}
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a custom item",
		Args:  cobra.MinimumNArgs(1),
		RunE:  addFunc,
	}
	addCmd.Flags().StringVarP(&category, "category", "c", "", "Item category (default from checklist.default_category)")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the checklist so it is regenerated from the profile",
		RunE:  resetFunc,
	}
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the checklist as CSV",
		RunE:  exportFunc,
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the checklist with a CSV file written by 'checklist export'",
		Args:  cobra.ExactArgs(1),
		RunE:  importFunc,
	}

	Cmd.AddCommand(showCmd, toggleCmd, deleteCmd, addCmd, resetCmd, exportCmd, importCmd)
}

func loadChecklist(cmd *cobra.Command) ([]models.ChecklistItem, error) {
	items, err := root.Planner().Checklist(root.Context(cmd))
	if errors.Is(err, plannererror.ErrNoProfile) {
		return nil, fmt.Errorf("%w: run 'profile set --departure YYYY-MM-DD' first", err)
	}
	return items, err
}

func showFunc(cmd *cobra.Command, args []string) error {
	items, err := loadChecklist(cmd)
	if err != nil {
		return err
	}
	return printItems(cmd.OutOrStdout(), items)
}

func printItems(w io.Writer, items []models.ChecklistItem) error {
	return root.Print(w, items, func() string {
		done, total := checklistpkg.Progress(items)
		return render.Checklist(checklistpkg.GroupByCategory(items), done, total)
	})
}

func toggleFunc(cmd *cobra.Command, args []string) error {
	return editFunc(cmd, args[0], root.Planner().ToggleItem)
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	return editFunc(cmd, args[0], root.Planner().DeleteItem)
}

func editFunc(cmd *cobra.Command, id string, apply func(context.Context, string) ([]models.ChecklistItem, error)) error {
	ctx := root.Context(cmd)
	if !root.Planner().HasItem(ctx, id) {
		return fmt.Errorf("no checklist item with id '%s'", id)
	}
	items, err := apply(ctx, id)
	if err != nil {
		return err
	}
	return printItems(cmd.OutOrStdout(), items)
}

func addFunc(cmd *cobra.Command, args []string) error {
	item, _, err := root.Planner().AddItem(root.Context(cmd), strings.Join(args, " "), category)
	if err != nil {
		return err
	}
	return root.Print(cmd.OutOrStdout(), item, func() string {
		return fmt.Sprintf("Added %s [%s] %s", item.ID, item.RecommendedDate, item.Title)
	})
}

func resetFunc(cmd *cobra.Command, args []string) error {
	if err := root.Planner().ResetChecklist(root.Context(cmd)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), "Checklist reset; it will be regenerated on next use.")
	return err
}

func exportFunc(cmd *cobra.Command, args []string) error {
	items, err := loadChecklist(cmd)
	if err != nil {
		return err
	}
	if output == "" {
		return export.WriteChecklistCSV(cmd.OutOrStdout(), items)
	}
	return export.WriteFile(output, func(w io.Writer) error {
		return export.WriteChecklistCSV(w, items)
	})
}

func importFunc(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0]) // #nosec G304 -- user-supplied import path
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = file.Close() }()

	items, err := export.ReadChecklistCSV(file)
	if err != nil {
		return err
	}
	if err := root.Planner().ReplaceChecklist(root.Context(cmd), items); err != nil {
		return err
	}
	root.Log.WithField("count", len(items)).Info("Checklist imported")
	return printItems(cmd.OutOrStdout(), items)
}
