// Package channels routes rendered messages to concrete providers and
// classifies their failures.
package channels

import (
	"errors"
	"fmt"
)

// ErrorKind is the engine-wide failure taxonomy. Every adapter error maps to
// exactly one kind; the kind decides retry behaviour and what the admin
// surface shows.
type ErrorKind string

// Error kinds.
const (
	KindNotConnected     ErrorKind = "not_connected"
	KindScanExpired      ErrorKind = "scan_expired"
	KindCodeExpired      ErrorKind = "code_expired"
	KindSessionStalled   ErrorKind = "session_stalled"
	KindRecipientInvalid ErrorKind = "recipient_invalid"
	KindTransientNetwork ErrorKind = "transient_network"
	KindQuotaExceeded    ErrorKind = "quota_exceeded"
	KindAuthFailed       ErrorKind = "auth_failed"
	KindRenderError      ErrorKind = "render_error"
	KindCryptoCorrupted  ErrorKind = "crypto_corrupted"
	KindAdminRequired    ErrorKind = "admin_required"
	KindUnknownChannel   ErrorKind = "unknown_channel"
)

// Transient reports whether failures of this kind are worth retrying with
// queue backoff. Quota exhaustion is transient too, but carries its own
// longer wait (see engine handling).
func (k ErrorKind) Transient() bool {
	switch k {
	case KindNotConnected, KindSessionStalled, KindTransientNetwork, KindQuotaExceeded:
		return true
	}
	return false
}

// ChannelFatal reports whether this kind invalidates the whole ChannelConfig
// rather than one recipient: the operator must intervene, jobs referencing
// the config go dead, and the config's last_error is set.
func (k ErrorKind) ChannelFatal() bool {
	return k == KindAuthFailed || k == KindCryptoCorrupted
}

// ChannelError is an adapter or session failure tagged with its kind.
type ChannelError struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *ChannelError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the wrapped error.
func (e *ChannelError) Unwrap() error { return e.Err }

// NewError tags err with a kind.
func NewError(kind ErrorKind, err error) *ChannelError {
	return &ChannelError{Kind: kind, Err: err}
}

// Errorf tags a formatted error with a kind.
func Errorf(kind ErrorKind, format string, args ...any) *ChannelError {
	return &ChannelError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the error kind from err. Untagged errors classify as
// transient network failures: the provider boundary is assumed flaky until
// an adapter says otherwise.
func KindOf(err error) ErrorKind {
	var ce *ChannelError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindTransientNetwork
}
