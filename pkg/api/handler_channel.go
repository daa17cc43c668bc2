package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/pkg/services"
)

// channelView is the channel config response shape. Credentials never leave
// the server; only their presence is reported.
type channelView struct {
	ID             string                 `json:"id"`
	Kind           string                 `json:"kind"`
	Name           string                 `json:"name"`
	Active         bool                   `json:"active"`
	IsDefault      bool                   `json:"isDefault"`
	HasCredentials bool                   `json:"hasCredentials"`
	Settings       map[string]interface{} `json:"settings,omitempty"`
	LastError      *string                `json:"lastError,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
}

func viewOf(cfg *ent.ChannelConfig) channelView {
	return channelView{
		ID:             cfg.ID,
		Kind:           string(cfg.Kind),
		Name:           cfg.Name,
		Active:         cfg.Active,
		IsDefault:      cfg.IsDefault,
		HasCredentials: len(cfg.Credentials) > 0,
		Settings:       cfg.Settings,
		LastError:      cfg.LastError,
		CreatedAt:      cfg.CreatedAt,
	}
}

// createChannel handles POST /api/channels.
func (s *Server) createChannel(c *gin.Context) {
	var in services.ChannelConfigInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := s.channels.Create(c.Request.Context(), tenantID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(cfg))
}

// listChannels handles GET /api/channels.
func (s *Server) listChannels(c *gin.Context) {
	configs, err := s.channels.List(c.Request.Context(), tenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]channelView, 0, len(configs))
	for _, cfg := range configs {
		views = append(views, viewOf(cfg))
	}
	c.JSON(http.StatusOK, views)
}

// getChannel handles GET /api/channels/:id.
func (s *Server) getChannel(c *gin.Context) {
	cfg, err := s.channels.Get(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(cfg))
}

// updateChannel handles PUT /api/channels/:id.
func (s *Server) updateChannel(c *gin.Context) {
	var in services.ChannelConfigInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := s.channels.Update(c.Request.Context(), tenantID(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(cfg))
}
