package cli

import (
	"fmt"

	"github.com/alexanderramin/activitylog/internal/cli/formatter"
	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage tracked activities",
	}

	cmd.AddCommand(
		newActivityListCmd(app),
		newActivityAddCmd(app),
		newActivityOpenCmd(app),
	)

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities := app.Activities.List(cmd.Context())

			rows := make([][]string, 0, len(activities))
			for _, a := range activities {
				note := formatter.Dim("in progress")
				if a.Key() == domain.GamingKey {
					note = formatter.StyleGreen.Render("dashboard")
				}
				rows = append(rows, []string{a.Icon, a.Title, note})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Activities",
				formatter.RenderTable([]string{"", "TITLE", "STATUS"}, rows)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func newActivityAddCmd(app *App) *cobra.Command {
	var title, icon string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a custom activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Activities.Create(cmd.Context(), title, icon)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Added "+formatter.ActivityLabel(a)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Activity title")
	cmd.Flags().StringVar(&icon, "icon", "", "Activity icon (defaults to "+domain.FallbackIcon+")")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newActivityOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open NAME",
		Short: "Open an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := app.Activities.Find(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(formatter.ActivityLabel(a)))
			if a.Key() != domain.GamingKey {
				fmt.Fprintf(out, "%s is in progress. Explore Gaming in the meantime.\n", a.Title)
				return nil
			}

			fmt.Fprintln(out, formatter.RenderOverview(app.Gaming.Overview(ctx)))
			fmt.Fprintln(out)
			return printChart(cmd, "Top games", app.Gaming.Chart(ctx))
		},
	}
}
