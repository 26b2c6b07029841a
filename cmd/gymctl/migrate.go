package main

import (
	"fmt"

	"gym-reservation-engine/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

var (
	migrateDir      string
	migrateAtlasBin string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations with Atlas",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "migrations", "Migration directory")
	migrateCmd.Flags().StringVar(&migrateAtlasBin, "atlas", "atlas", "Path to the atlas binary")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(".", migrateAtlasBin)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + migrateDir,
	})
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s), schema at version %s\n", len(res.Applied), res.Target)
	return nil
}
