package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/core/services"
	"github.com/ocroft/shiftdesk/pkg/session"
)

// LoginCmd creates the login command. A successful login is persisted
// so later commands can act as the worker without re-authenticating.
func LoginCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in as a worker and save the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				fmt.Print("Password: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("error reading password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			sess, err := services.Login(app.Ctx, app.API, app.Store, app.Logger, email, password)
			if err != nil {
				return err
			}

			if err := session.Save(*sess); err != nil {
				return fmt.Errorf("logged in but failed to save session: %w", err)
			}

			fmt.Printf("\n✓ Logged in as %s (%s) at %s\n\n", sess.Name, sess.Role, sess.RestaurantName)
			return nil
		},
	}

	cmd.Flags().String("password", "", "Password (prompted when omitted)")

	return cmd
}
