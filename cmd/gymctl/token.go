package main

import (
	"fmt"

	"gym-reservation-engine/cmd/bootstrap"
	"gym-reservation-engine/internal/pkg/config"
	"gym-reservation-engine/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

var (
	tokenRole     string
	tokenMemberID int64
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development bearer token",
	Example: `  gymctl token --role admin
  gymctl token --role member --member 7`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(jwt.RoleMember), "admin, member or agent")
	tokenCmd.Flags().Int64Var(&tokenMemberID, "member", 0, "Member ID carried in the token")
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	svc, err := bootstrap.NewJWTService(cfg)
	if err != nil {
		return err
	}

	var memberID *int64
	if cmd.Flags().Changed("member") {
		memberID = &tokenMemberID
	}

	token, err := svc.GenerateToken(memberID, jwt.Role(tokenRole))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
