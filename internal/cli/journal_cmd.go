package cli

import (
	"context"
	"fmt"

	"github.com/mariekevos/gmatrix/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Evidence journal entries per statement",
	}

	cmd.AddCommand(
		newJournalListCmd(app),
		newJournalAddCmd(app),
		newJournalEditCmd(app),
		newJournalRemoveCmd(app),
	)

	return cmd
}

// statementFlags are the flags identifying one behavioral statement.
type statementFlags struct {
	profile   string
	level     string
	dimension string
	index     int
}

func (f *statementFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profile, "profile", "", "Profile ID")
	cmd.Flags().StringVar(&f.level, "level", "", "Level ID")
	cmd.Flags().StringVar(&f.dimension, "dimension", "", "Dimension ID")
	cmd.Flags().IntVar(&f.index, "statement", 1, "Statement number (1-based)")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("level")
	_ = cmd.MarkFlagRequired("dimension")
}

func newJournalListCmd(app *App) *cobra.Command {
	var flags statementFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries for a statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entries, err := app.Evidence.ForStatement(ctx, flags.profile, flags.level, flags.dimension, flags.index-1)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatStatementContext(app.Catalog, flags.profile, flags.level, flags.dimension, flags.index-1))
			fmt.Println()
			if len(entries) == 0 {
				fmt.Println(formatter.Dim("No journal entries yet."))
				return nil
			}
			fmt.Print(formatter.FormatEvidenceTable(entries))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newJournalAddCmd(app *App) *cobra.Command {
	var flags statementFlags
	var text string

	cmd := &cobra.Command{
		Use:   "add [TEXT]",
		Short: "Add a journal entry to a statement",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				text = args[0]
			}
			if text == "" {
				if !app.interactive() {
					return fmt.Errorf("pass the entry text as an argument or run interactively")
				}
				fmt.Println(formatter.FormatStatementContext(app.Catalog, flags.profile, flags.level, flags.dimension, flags.index-1))
				if err := formInputText("Evidence", "A concrete situation that shows this behaviour...", true, &text).Run(); err != nil {
					return err
				}
			}

			e, err := app.Evidence.Add(ctx, flags.profile, flags.level, flags.dimension, flags.index-1, text)
			if err != nil {
				return err
			}
			fmt.Printf("Added journal entry %s\n", e.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newJournalEditCmd(app *App) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "edit ID [TEXT]",
		Short: "Rewrite a journal entry",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 2 {
				text = args[1]
			}
			if text == "" {
				if !app.interactive() {
					return fmt.Errorf("pass the new text as an argument or run interactively")
				}
				if err := formInputText("Evidence", "", true, &text).Run(); err != nil {
					return err
				}
			}

			e, err := app.Evidence.Edit(ctx, args[0], text)
			if err != nil {
				return err
			}
			fmt.Printf("Updated journal entry %s\n", e.ID)
			return nil
		},
	}

	return cmd
}

func newJournalRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok := false
				if err := formConfirm("Remove this journal entry?", &ok).Run(); err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			if err := app.Evidence.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed journal entry %s\n", args[0])
			return nil
		},
	}

	addYesFlag(cmd.Flags(), &yes)

	return cmd
}
