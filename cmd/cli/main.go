package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ocroft/shiftdesk/cmd/cli/commands"
	"github.com/ocroft/shiftdesk/internal/config"
	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/store"
	"github.com/ocroft/shiftdesk/pkg/utils/logging"
)

var (
	verbose bool
	app     *commands.AppContext
)

func main() {
	app = &commands.AppContext{
		Ctx: context.Background(),
	}

	rootCmd := &cobra.Command{
		Use:   "shiftdesk",
		Short: "ShiftDesk CLI - Manage restaurant shifts",
		Long:  `A CLI tool for managing restaurant staff shifts, check-ins, and schedules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	// Add all commands
	rootCmd.AddCommand(commands.CreateShiftCmd(app))
	rootCmd.AddCommand(commands.UpdateShiftCmd(app))
	rootCmd.AddCommand(commands.DeleteShiftCmd(app))
	rootCmd.AddCommand(commands.ViewShiftCmd(app))
	rootCmd.AddCommand(commands.ListShiftsCmd(app))
	rootCmd.AddCommand(commands.CreateRecurringCmd(app))
	rootCmd.AddCommand(commands.CheckInCmd(app))
	rootCmd.AddCommand(commands.CheckOutCmd(app))
	rootCmd.AddCommand(commands.CancelShiftCmd(app))
	rootCmd.AddCommand(commands.SetShiftStatusCmd(app))
	rootCmd.AddCommand(commands.AddWorkerCmd(app))
	rootCmd.AddCommand(commands.ListWorkersCmd(app))
	rootCmd.AddCommand(commands.UpdateWorkerCmd(app))
	rootCmd.AddCommand(commands.RemoveWorkerCmd(app))
	rootCmd.AddCommand(commands.ToggleWorkerCmd(app))
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.MyShiftsCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, the API client and the in-memory store
func initApp() error {
	var err error

	// Initialize logger
	logger, err := logging.InitLogger("shiftdesk", verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	app.Logger.Info("Starting application")

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully",
		zap.String("base_url", app.Cfg.BaseURL),
		zap.Int64("restaurant_id", app.Cfg.RestaurantID))

	// Initialize API client and store
	app.API = api.NewClient(app.Cfg.BaseURL, app.Cfg.Token)
	app.Store = store.New()
	app.Logger.Debug("API client initialized")

	return nil
}
