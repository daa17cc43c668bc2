package channels

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfExtractsTaggedKind(t *testing.T) {
	err := fmt.Errorf("dispatching: %w", Errorf(KindRecipientInvalid, "number rejected"))
	assert.Equal(t, KindRecipientInvalid, KindOf(err))
}

func TestKindOfDefaultsToTransient(t *testing.T) {
	assert.Equal(t, KindTransientNetwork, KindOf(errors.New("connection reset by peer")))
}

func TestTransientDisposition(t *testing.T) {
	transient := []ErrorKind{KindNotConnected, KindSessionStalled, KindTransientNetwork, KindQuotaExceeded}
	for _, k := range transient {
		assert.True(t, k.Transient(), "%s should be transient", k)
	}

	permanent := []ErrorKind{KindRecipientInvalid, KindRenderError, KindAuthFailed, KindCryptoCorrupted, KindScanExpired, KindAdminRequired, KindUnknownChannel}
	for _, k := range permanent {
		assert.False(t, k.Transient(), "%s should not be transient", k)
	}
}

func TestChannelFatalKinds(t *testing.T) {
	assert.True(t, KindAuthFailed.ChannelFatal())
	assert.True(t, KindCryptoCorrupted.ChannelFatal())
	assert.False(t, KindRecipientInvalid.ChannelFatal())
	assert.False(t, KindTransientNetwork.ChannelFatal())
}

func TestFailureClassifiesOutcome(t *testing.T) {
	out := Failure(Errorf(KindTransientNetwork, "timeout"))
	assert.Equal(t, OutcomeTransientFailure, out.Status)
	assert.Equal(t, KindTransientNetwork, out.Kind)

	out = Failure(Errorf(KindRecipientInvalid, "bad number"))
	assert.Equal(t, OutcomePermanentFailure, out.Status)

	out = Failure(Errorf(KindQuotaExceeded, "daily cap"))
	assert.Equal(t, OutcomeTransientFailure, out.Status)
}

func TestSentOutcome(t *testing.T) {
	out := Sent("msg-123")
	assert.Equal(t, OutcomeSent, out.Status)
	assert.Equal(t, "msg-123", out.ExternalID)
	assert.Empty(t, out.Reason)
}

func TestClassifyHTTPStatus(t *testing.T) {
	base := errors.New("provider said no")
	assert.Equal(t, KindAuthFailed, KindOf(classifyHTTPStatus(http.StatusUnauthorized, base)))
	assert.Equal(t, KindAuthFailed, KindOf(classifyHTTPStatus(http.StatusForbidden, base)))
	assert.Equal(t, KindQuotaExceeded, KindOf(classifyHTTPStatus(http.StatusTooManyRequests, base)))
	assert.Equal(t, KindRecipientInvalid, KindOf(classifyHTTPStatus(http.StatusBadRequest, base)))
	assert.Equal(t, KindTransientNetwork, KindOf(classifyHTTPStatus(http.StatusBadGateway, base)))
}

func TestClassifySMTPError(t *testing.T) {
	assert.Equal(t, KindAuthFailed, KindOf(classifySMTPError(errors.New("535 5.7.8 authentication failed"))))
	assert.Equal(t, KindRecipientInvalid, KindOf(classifySMTPError(errors.New("550 no such user"))))
	assert.Equal(t, KindQuotaExceeded, KindOf(classifySMTPError(errors.New("452 too many messages, quota reached"))))
	assert.Equal(t, KindTransientNetwork, KindOf(classifySMTPError(errors.New("421 service not available"))))
}
