package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/session"
)

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the saved worker session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services.Logout(app.Store, app.Logger)
			if err := session.Clear(); err != nil {
				return fmt.Errorf("failed to clear saved session: %w", err)
			}

			fmt.Println("\n✓ Logged out.")
			return nil
		},
	}
}
