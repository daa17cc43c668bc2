package vault

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// credentialsEnvelope is the stored shape of encrypted channel credentials:
// {"encrypted": "<base64 blob>"}. Legacy rows hold the plain structured
// credentials object instead; readers accept both.
type credentialsEnvelope struct {
	Encrypted string `json:"encrypted"`
}

// SealCredentials encrypts a structured credentials document and returns the
// storable envelope map.
func (v *Vault) SealCredentials(creds any) (map[string]interface{}, error) {
	plain, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("vault: marshal credentials: %w", err)
	}
	blob, err := v.Encrypt(plain)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"encrypted": base64.StdEncoding.EncodeToString(blob),
	}, nil
}

// OpenCredentials decodes a stored credentials document into out. Encrypted
// envelopes are decrypted; legacy plaintext documents are decoded as-is.
// Returns wasEncrypted=false for legacy rows so the caller can re-encrypt on
// the next write (migrate-on-read).
func (v *Vault) OpenCredentials(stored map[string]interface{}, out any) (wasEncrypted bool, err error) {
	if stored == nil {
		return false, fmt.Errorf("vault: no credentials stored")
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return false, fmt.Errorf("vault: marshal stored credentials: %w", err)
	}
	var env credentialsEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Encrypted != "" {
		blob, err := base64.StdEncoding.DecodeString(env.Encrypted)
		if err != nil {
			return true, ErrCryptoCorrupted
		}
		plain, err := v.Decrypt(blob)
		if err != nil {
			return true, err
		}
		if err := json.Unmarshal(plain, out); err != nil {
			return true, ErrCryptoCorrupted
		}
		return true, nil
	}
	// Legacy plaintext shape.
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("vault: decode legacy credentials: %w", err)
	}
	return false, nil
}
