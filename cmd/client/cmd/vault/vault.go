package vault

import (
	"fmt"

	"github.com/spf13/cobra"

	"passvault/cmd/client/cmd/types"
	"passvault/internal/app/client"
)

// VaultCmd is the parent command for vault item operations.
var VaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage vault items",
	Long:  `List, add, show, update and delete stored credentials.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("application is not initialized")
	}
	return app, nil
}
