package cli

import (
	"context"
	"fmt"

	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Completed assessments",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryDeleteCmd(app),
		newHistoryCompareCmd(app),
		newHistoryBrowseCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List completed assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.History.List(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No completed assessments yet. Run `gmatrix start`.")
				return nil
			}
			fmt.Print(formatter.RenderBox("History", formatter.FormatHistoryTable(app.Catalog, records)))
			return nil
		},
	}
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show the full results of one assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec, err := resolveRecord(ctx, app, args[0])
			if err != nil {
				return err
			}
			res := app.Results.Build(rec)
			fmt.Print(formatter.RenderBox("Results "+formatter.HumanDate(rec.Date), formatter.FormatResults(res)))
			return nil
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one assessment from history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec, err := resolveRecord(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes {
				ok := false
				prompt := fmt.Sprintf("Delete the %s assessment from %s?", rec.Type, rec.Date.Format("Jan 2, 2006"))
				if err := formConfirm(prompt, &ok).Run(); err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			if err := app.History.Delete(ctx, rec.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", rec.ID)
			return nil
		},
	}

	addYesFlag(cmd.Flags(), &yes)

	return cmd
}

func newHistoryCompareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compare ID ID",
		Short: "Compare two assessments of the same shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveRecord(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := resolveRecord(ctx, app, args[1])
			if err != nil {
				return err
			}
			cmp, err := app.History.Compare(ctx, a.ID, b.ID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderBox("Comparison", formatter.FormatComparison(app.Catalog, cmp)))
			return nil
		},
	}
}
