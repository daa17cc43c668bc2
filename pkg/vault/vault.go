// Package vault provides symmetric encryption for channel credentials at rest.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

const blobVersion = "v1"

// ErrCryptoCorrupted is returned when a blob fails authentication or cannot
// be parsed. Callers treat this as fatal for the owning channel config.
var ErrCryptoCorrupted = errors.New("vault: blob corrupted")

// Vault encrypts and decrypts opaque blobs with a process-wide AES-256-GCM key.
type Vault struct {
	key []byte
}

// blob is the serialised ciphertext envelope: algorithm version, nonce, and
// ciphertext (GCM tag included).
type blob struct {
	Version    string `json:"v"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ct"`
}

// New creates a Vault from a 32-byte key.
func New(key []byte) (*Vault, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("vault: key must be %d bytes, got %d", KeySize, len(key))
	}
	return &Vault{key: key}, nil
}

// NewFromBase64 creates a Vault from a base64-encoded 32-byte key, as loaded
// from configuration.
func NewFromBase64(encoded string) (*Vault, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("vault: decode key: %w", err)
	}
	return New(key)
}

// Encrypt seals plaintext with a random nonce and returns the serialised blob.
func (v *Vault) Encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return nil, fmt.Errorf("vault encrypt: new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("vault encrypt: new gcm: %w", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("vault encrypt: nonce: %w", err)
	}
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	out := blob{
		Version:    blobVersion,
		Nonce:      base64.RawStdEncoding.EncodeToString(nonce),
		Ciphertext: base64.RawStdEncoding.EncodeToString(ciphertext),
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("vault encrypt: marshal: %w", err)
	}
	return data, nil
}

// Decrypt opens a blob produced by Encrypt. Any tamper, truncation, or
// unknown version yields ErrCryptoCorrupted.
func (v *Vault) Decrypt(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrCryptoCorrupted
	}
	var wrapped blob
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, ErrCryptoCorrupted
	}
	if wrapped.Version != blobVersion || wrapped.Nonce == "" || wrapped.Ciphertext == "" {
		return nil, ErrCryptoCorrupted
	}
	nonce, err := base64.RawStdEncoding.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, ErrCryptoCorrupted
	}
	ciphertext, err := base64.RawStdEncoding.DecodeString(wrapped.Ciphertext)
	if err != nil {
		return nil, ErrCryptoCorrupted
	}
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return nil, fmt.Errorf("vault decrypt: new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("vault decrypt: new gcm: %w", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrCryptoCorrupted
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrCryptoCorrupted
	}
	return plaintext, nil
}
