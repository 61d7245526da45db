package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/model"
	"github.com/ocroft/shiftdesk/pkg/core/services"
)

// AddWorkerCmd creates the addWorker command
func AddWorkerCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addWorker <name> <email> <role>",
		Short: "Register a new worker at the restaurant",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			phone, _ := cmd.Flags().GetString("phone")

			req := api.CreateWorkerRequest{
				Name:         args[0],
				Email:        args[1],
				Password:     password,
				Phone:        phone,
				Role:         model.Role(args[2]),
				RestaurantID: app.Cfg.RestaurantID,
			}

			worker, err := services.CreateWorker(app.Ctx, app.API, app.Store, app.Logger, req)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Worker created!\n\n")
			fmt.Printf("ID:    %d\n", worker.ID)
			fmt.Printf("Name:  %s\n", worker.Name)
			fmt.Printf("Email: %s\n", worker.Email)
			fmt.Printf("Role:  %s\n\n", worker.Role)

			return nil
		},
	}

	cmd.Flags().String("password", "", "Initial password (at least 6 characters)")
	cmd.Flags().String("phone", "", "Contact phone number")
	cmd.MarkFlagRequired("password")

	return cmd
}
