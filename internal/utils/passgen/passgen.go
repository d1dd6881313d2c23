package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength     = 8
	MaxLength     = 64
	DefaultLength = 16
)

type Options struct {
	Length  int
	Digits  bool
	Symbols bool
}

func DefaultOptions() Options {
	return Options{Length: DefaultLength, Digits: true, Symbols: true}
}

// Generate produces a random password from the selected character set.
// Letters are always included; digits and symbols are opt-in.
func Generate(opts Options) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", fmt.Errorf("passgen: length must be between %d and %d", MinLength, MaxLength)
	}

	charset := lower + upper
	if opts.Digits {
		charset += digits
	}
	if opts.Symbols {
		charset += symbols
	}

	max := big.NewInt(int64(len(charset)))
	out := make([]byte, opts.Length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("passgen: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}
