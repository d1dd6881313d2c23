package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"passvault/internal/utils/passgen"
)

var (
	genLength  int
	genDigits  bool
	genSymbols bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random password",
	Long: `Generate a cryptographically random password.

The password is printed to stdout and never stored anywhere.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		password, err := passgen.Generate(passgen.Options{
			Length:  genLength,
			Digits:  genDigits,
			Symbols: genSymbols,
		})
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		fmt.Println(password)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&genLength, "length", "l", passgen.DefaultLength, "password length")
	generateCmd.Flags().BoolVar(&genDigits, "digits", true, "include digits")
	generateCmd.Flags().BoolVar(&genSymbols, "symbols", true, "include symbols")
}
