package vault

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/internal/app/client"
)

var (
	updTitle    string
	updUsername string
	updURL      string
	updNotes    string
	updPassword bool
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a vault item",
	Long: `Update fields of an owned item. Only the supplied flags change.

With --password a new secret is prompted for and re-encrypted locally.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		var upd client.ItemUpdate
		if cmd.Flags().Changed("title") {
			upd.Title = &updTitle
		}
		if cmd.Flags().Changed("username") {
			upd.Username = &updUsername
		}
		if cmd.Flags().Changed("url") {
			upd.URL = &updURL
		}
		if cmd.Flags().Changed("notes") {
			upd.Notes = &updNotes
		}

		if updPassword {
			fmt.Print("New password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			fmt.Println()
			password := string(raw)
			upd.Password = &password
		}

		if upd.Title == nil && upd.Username == nil && upd.URL == nil &&
			upd.Notes == nil && upd.Password == nil {
			return fmt.Errorf("nothing to update, pass at least one flag")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		item, err := app.Update(ctx, args[0], upd)
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}

		fmt.Println(color.GreenString("✓") + " Item " + item.ID + " updated")
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updTitle, "title", "t", "", "new title")
	UpdateCmd.Flags().StringVarP(&updUsername, "username", "u", "", "new login name")
	UpdateCmd.Flags().StringVar(&updURL, "url", "", "new website URL")
	UpdateCmd.Flags().StringVar(&updNotes, "notes", "", "new notes")
	UpdateCmd.Flags().BoolVarP(&updPassword, "password", "p", false, "prompt for a new password")
}
