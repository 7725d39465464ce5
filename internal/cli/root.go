package cli

import (
	"time"

	"github.com/alexanderramin/activitylog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Gaming     service.GamingService
	Activities service.ActivityService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Now is the clock for relative dates; nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "activitylog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "activitylog",
		Short:         "Track activities and gaming sessions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newActivityCmd(app),
		newGamingCmd(app),
	)

	return root
}
