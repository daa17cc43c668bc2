package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outflowhq/outflow/pkg/campaign"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/services"
)

// respondError maps service- and channel-layer errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, campaign.ErrCampaignNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, campaign.ErrNotStartable) ||
		errors.Is(err, campaign.ErrNotPausable) ||
		errors.Is(err, campaign.ErrNotEditable) ||
		errors.Is(err, campaign.ErrNoSteps) ||
		errors.Is(err, campaign.ErrNoRecipients) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	var chErr *channels.ChannelError
	if errors.As(err, &chErr) {
		c.JSON(channelErrorStatus(chErr.Kind), gin.H{
			"error": chErr.Error(),
			"kind":  string(chErr.Kind),
		})
		return
	}

	slog.Error("Unexpected API error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func channelErrorStatus(kind channels.ErrorKind) int {
	switch kind {
	case channels.KindUnknownChannel:
		return http.StatusNotFound
	case channels.KindNotConnected, channels.KindScanExpired,
		channels.KindCodeExpired, channels.KindSessionStalled:
		return http.StatusConflict
	case channels.KindAdminRequired, channels.KindAuthFailed:
		return http.StatusForbidden
	default:
		return http.StatusBadGateway
	}
}
