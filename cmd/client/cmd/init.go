package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passvault/cmd/client/cmd/auth"
	"passvault/cmd/client/cmd/vault"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the connection to the server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := app.CheckConnection(ctx); err != nil {
			return fmt.Errorf("server unreachable: %w", err)
		}

		fmt.Println(color.GreenString("✓") + " Server is reachable")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.SignupCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(vault.VaultCmd)
	vault.VaultCmd.AddCommand(vault.ListCmd)
	vault.VaultCmd.AddCommand(vault.AddCmd)
	vault.VaultCmd.AddCommand(vault.ShowCmd)
	vault.VaultCmd.AddCommand(vault.UpdateCmd)
	vault.VaultCmd.AddCommand(vault.DeleteCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(pingCmd)
}
