package vault

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVault(t *testing.T) *Vault {
	t.Helper()
	v, err := New(bytes.Repeat([]byte{0x42}, KeySize))
	require.NoError(t, err)
	return v
}

func TestNewRejectsWrongKeySize(t *testing.T) {
	_, err := New([]byte("short"))
	assert.Error(t, err)
}

func TestNewFromBase64(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, KeySize))
	v, err := NewFromBase64(encoded + "\n")
	require.NoError(t, err)

	blob, err := v.Encrypt([]byte("payload"))
	require.NoError(t, err)
	plain, err := v.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), plain)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	v := testVault(t)

	blob, err := v.Encrypt([]byte(`{"user":"smtp","pass":"secret"}`))
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "secret")

	plain, err := v.Decrypt(blob)
	require.NoError(t, err)
	assert.Equal(t, `{"user":"smtp","pass":"secret"}`, string(plain))
}

func TestDecryptRejectsTamperedBlob(t *testing.T) {
	v := testVault(t)

	blob, err := v.Encrypt([]byte("payload"))
	require.NoError(t, err)

	tampered := bytes.Replace(blob, []byte(`"v1"`), []byte(`"v2"`), 1)
	_, err = v.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrCryptoCorrupted)

	_, err = v.Decrypt([]byte("not json"))
	assert.ErrorIs(t, err, ErrCryptoCorrupted)

	_, err = v.Decrypt(nil)
	assert.ErrorIs(t, err, ErrCryptoCorrupted)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	v := testVault(t)
	blob, err := v.Encrypt([]byte("payload"))
	require.NoError(t, err)

	other, err := New(bytes.Repeat([]byte{0x24}, KeySize))
	require.NoError(t, err)
	_, err = other.Decrypt(blob)
	assert.ErrorIs(t, err, ErrCryptoCorrupted)
}

func TestSealOpenCredentials(t *testing.T) {
	v := testVault(t)

	type creds struct {
		User string `json:"user"`
		Pass string `json:"pass"`
	}

	sealed, err := v.SealCredentials(creds{User: "smtp", Pass: "secret"})
	require.NoError(t, err)
	require.Contains(t, sealed, "encrypted")
	assert.Len(t, sealed, 1, "sealed envelope holds only the blob")

	var out creds
	wasEncrypted, err := v.OpenCredentials(sealed, &out)
	require.NoError(t, err)
	assert.True(t, wasEncrypted)
	assert.Equal(t, "secret", out.Pass)
}

func TestOpenCredentialsAcceptsLegacyPlaintext(t *testing.T) {
	v := testVault(t)

	legacy := map[string]interface{}{"user": "smtp", "pass": "secret"}
	var out struct {
		User string `json:"user"`
		Pass string `json:"pass"`
	}
	wasEncrypted, err := v.OpenCredentials(legacy, &out)
	require.NoError(t, err)
	assert.False(t, wasEncrypted, "legacy rows report unencrypted so callers reseal")
	assert.Equal(t, "secret", out.Pass)
}

func TestOpenCredentialsCorruptEnvelope(t *testing.T) {
	v := testVault(t)

	_, err := v.OpenCredentials(map[string]interface{}{"encrypted": "!!not-base64!!"}, &struct{}{})
	assert.ErrorIs(t, err, ErrCryptoCorrupted)
}
