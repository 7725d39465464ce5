package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/activitylog/internal/cli/formatter"
	"github.com/alexanderramin/activitylog/internal/domain"
	"github.com/alexanderramin/activitylog/internal/stats"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newGamingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gaming",
		Short: "Log and review gaming sessions",
	}

	cmd.AddCommand(
		newGamingLogCmd(app),
		newGamingLogsCmd(app),
		newGamingChartCmd(app),
		newGamingDatesCmd(app),
	)

	return cmd
}

func newGamingLogCmd(app *App) *cobra.Command {
	var in logInput
	var category categoryFlag

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a gaming session",
		Long: `Log a gaming session.

Without --game or --custom in an interactive terminal, a form prompts for
every field. Times accept "10:00 AM" or "14:30"; the date is YYYY-MM-DD and
defaults to today.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := app.Gaming.NewForm()
			if category.set {
				in.Category = category.value
			}

			if in.Game == "" && in.Custom == "" && app.interactive() {
				in.seedFromForm(f)
				if err := newLogForm(&in).RunWithContext(ctx); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
						return nil
					}
					return err
				}
			}

			if err := in.apply(f); err != nil {
				return err
			}
			log, err := app.Gaming.LogSession(ctx, f)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Logged %s %s on %s: %s",
				formatter.Bold(log.Game), formatter.CategoryBadge(log.Category), log.Date, log.Duration)))
			return nil
		},
	}

	cmd.Flags().Var(&category, "category", categoryUsage())
	cmd.Flags().StringVar(&in.Game, "game", "", `Game name, or "custom" with --custom`)
	cmd.Flags().StringVar(&in.Custom, "custom", "", "Custom game name")
	cmd.Flags().StringVar(&in.Start, "start", "", "Start time, e.g. 10:00 AM")
	cmd.Flags().StringVar(&in.End, "end", "", "End time, e.g. 11:30 AM")
	cmd.Flags().StringVar(&in.Date, "date", "", "Session date (YYYY-MM-DD, default today)")

	return cmd
}

func newGamingLogsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "List logged gaming sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logs, err := loadLogs(ctx, cmd, app)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, formatter.Dim("No gaming sessions logged yet."))
				return nil
			}

			rows := make([][]string, 0, len(logs))
			for _, l := range logs {
				rows = append(rows, []string{l.Date, l.Game, formatter.CategoryBadge(l.Category), l.Duration})
			}
			fmt.Fprint(out, formatter.RenderBox("Gaming Logs",
				formatter.RenderTable([]string{"DATE", "GAME", "CATEGORY", "DURATION"}, rows)+"\n"+
					formatter.RenderOverview(stats.OverviewOf(logs))))
			fmt.Fprintln(out)
			return nil
		},
	}
}

// loadLogs runs the delayed load behind a spinner in a terminal, or
// directly otherwise.
func loadLogs(ctx context.Context, cmd *cobra.Command, app *App) ([]domain.SessionLog, error) {
	if !app.interactive() {
		return app.Gaming.Load(ctx)
	}

	view := newLogsView(ctx, app.Gaming.Load)
	p := tea.NewProgram(view, tea.WithContext(ctx), tea.WithOutput(cmd.ErrOrStderr()))
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("running loader: %w", err)
	}
	return view.result()
}

func newGamingChartCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show hours per game as a bar chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if date == "" {
				return printChart(cmd, "Top games", app.Gaming.Chart(ctx))
			}

			day, err := domain.ParseDay(date)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			title := "Games on " + formatter.HumanDay(day, app.now())
			return printChart(cmd, title, app.Gaming.ChartForDate(ctx, day))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only sessions on this day (YYYY-MM-DD)")

	return cmd
}

func printChart(cmd *cobra.Command, title string, items []domain.ChartDataItem) error {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprint(out, formatter.RenderBox(title, formatter.RenderBarChart(nil, 0)))
		fmt.Fprintln(out)
		return nil
	}

	content := formatter.RenderBarChart(items, formatter.DefaultBarWidth) + "\n" +
		formatter.RenderLegend() + "\n\n" +
		formatter.RenderSummary(stats.Summarize(items))
	fmt.Fprint(out, formatter.RenderBox(title, content))
	fmt.Fprintln(out)
	return nil
}

func newGamingDatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "List the days with logged sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			days := app.Gaming.Dates(cmd.Context())
			out := cmd.OutOrStdout()
			if len(days) == 0 {
				fmt.Fprintln(out, formatter.Dim("No gaming sessions logged yet."))
				return nil
			}

			now := app.now()
			rows := make([][]string, 0, len(days))
			for _, d := range days {
				rows = append(rows, []string{d.String(), formatter.Dim(formatter.HumanDay(d, now))})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"DAY", ""}, rows))
			return nil
		},
	}
}
