package vault

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"passvault/internal/utils/passgen"
)

var (
	addTitle    string
	addUsername string
	addURL      string
	addNotes    string
	addGenerate bool
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new vault item",
	Long: `Store a new credential.

The password is encrypted locally before upload. With --generate a random
password is created instead of prompting for one.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if addTitle == "" {
			fmt.Print("Title: ")
			_, _ = fmt.Scanln(&addTitle)
		}
		if addUsername == "" {
			fmt.Print("Username: ")
			_, _ = fmt.Scanln(&addUsername)
		}

		var password string
		if addGenerate {
			password, err = passgen.Generate(passgen.DefaultOptions())
			if err != nil {
				return fmt.Errorf("failed to generate password: %w", err)
			}
		} else {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			fmt.Println()
			password = string(raw)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		item, err := app.Add(ctx, addTitle, addUsername, password, addURL, addNotes)
		if err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}

		fmt.Println(color.GreenString("✓") + " Item stored with id " + item.ID)
		if addGenerate {
			fmt.Println("Generated password: " + password)
		}
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVarP(&addTitle, "title", "t", "", "item title")
	AddCmd.Flags().StringVarP(&addUsername, "username", "u", "", "login name")
	AddCmd.Flags().StringVar(&addURL, "url", "", "website URL")
	AddCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	AddCmd.Flags().BoolVarP(&addGenerate, "generate", "g", false, "generate a random password")
}
