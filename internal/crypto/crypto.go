package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrAuthenticationFailed covers everything Decrypt refuses to open:
// a failed GCM tag check, a malformed nonce or ciphertext, a wrong key.
// Callers never get partial plaintext alongside it.
var ErrAuthenticationFailed = errors.New("crypto: message authentication failed")

// Envelope pairs a per-encryption nonce with the ciphertext+tag blob.
// Both are base64 so they can travel over JSON and sit in text columns;
// the storage layer treats them as opaque.
type Envelope struct {
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// Cipher performs AES-256-GCM encryption of vault secrets.
// The key is derived once, by hashing the configured secret with SHA-256.
type Cipher struct {
	key []byte
}

// New derives the symmetric key from secret and returns a ready Cipher.
// Derivation is deterministic: the same secret always yields the same key.
func New(secret string) *Cipher {
	key := sha256.Sum256([]byte(secret))
	return &Cipher{key: key[:]}
}

// Encrypt seals plaintext under a fresh random nonce. The nonce is never
// reused across calls; GCM confidentiality breaks down if it is.
func (c *Cipher) Encrypt(plaintext string) (Envelope, error) {
	gcm, err := c.aead()
	if err != nil {
		return Envelope{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	return Envelope{
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(sealed),
	}, nil
}

// Decrypt opens an envelope produced by Encrypt. Any tampering with the
// nonce or the ciphertext, and any malformed encoding, yields
// ErrAuthenticationFailed.
func (c *Cipher) Decrypt(env Envelope) (string, error) {
	gcm, err := c.aead()
	if err != nil {
		return "", err
	}

	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil || len(nonce) != gcm.NonceSize() {
		return "", ErrAuthenticationFailed
	}

	sealed, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

func (c *Cipher) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return gcm, nil
}
