package vault

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showSecret bool

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a vault item",
	Long: `Show a single vault item.

The secret is decrypted and printed only with --reveal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		item, secret, err := app.Reveal(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load item: %w", err)
		}

		fmt.Println(color.CyanString(item.Title))
		fmt.Printf("  ID:       %s\n", item.ID)
		fmt.Printf("  Username: %s\n", item.Username)
		if item.URL != "" {
			fmt.Printf("  URL:      %s\n", item.URL)
		}
		if item.Notes != "" {
			fmt.Printf("  Notes:    %s\n", item.Notes)
		}
		fmt.Printf("  Updated:  %s\n", item.UpdatedAt.Local().Format(time.RFC1123))

		if showSecret {
			fmt.Printf("  Password: %s\n", secret)
		} else {
			fmt.Println("  Password: ******** (use --reveal to print)")
		}
		return nil
	},
}

func init() {
	ShowCmd.Flags().BoolVarP(&showSecret, "reveal", "r", false, "print the decrypted password")
}
