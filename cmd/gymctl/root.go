package main

import (
	"context"
	"fmt"
	"time"

	"gym-reservation-engine/cmd/bootstrap"
	"gym-reservation-engine/cmd/bootstrap/components"
	"gym-reservation-engine/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var rootCmd = &cobra.Command{
	Use:           "gymctl",
	Short:         "Operate the gym reservation engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var cmdTimeout time.Duration

func init() {
	rootCmd.PersistentFlags().DurationVar(&cmdTimeout, "timeout", 30*time.Second, "Deadline for the whole command")
}

// engine is the subset of the server graph the CLI drives.
type engine struct {
	Location     *time.Location
	Reservations commands.ReservationCommands
	Settings     commands.SettingsCommands
}

// withEngine starts the persistence and use case modules without the HTTP layer.
func withEngine(ctx context.Context, fn func(context.Context, engine) error) error {
	var e engine
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.MessagingModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		fx.Populate(&e.Location, &e.Reservations, &e.Settings),
		fx.NopLogger,
	)

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx, e)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), cmdTimeout)
}
