// Package api is the thin HTTP shell over the engine: channel configuration,
// session linking, campaign control, and health. Request validation and error
// mapping happen here; all domain logic lives in the service packages.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/outflowhq/outflow/pkg/campaign"
	"github.com/outflowhq/outflow/pkg/queue"
	"github.com/outflowhq/outflow/pkg/services"
	"github.com/outflowhq/outflow/pkg/sessions"
	"github.com/outflowhq/outflow/pkg/version"
)

// Server is the admin API server.
type Server struct {
	channels *services.ChannelConfigService
	engine   *campaign.Engine
	registry *sessions.Registry
	pool     *queue.WorkerPool

	httpServer *http.Server
}

// NewServer creates the admin API server.
func NewServer(port string, channels *services.ChannelConfigService, engine *campaign.Engine, registry *sessions.Registry, pool *queue.WorkerPool) *Server {
	s := &Server{
		channels: channels,
		engine:   engine,
		registry: registry,
		pool:     pool,
	}
	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.health)

	api := r.Group("/api", tenantRequired())
	{
		api.POST("/channels", s.createChannel)
		api.GET("/channels", s.listChannels)
		api.GET("/channels/:id", s.getChannel)
		api.PUT("/channels/:id", s.updateChannel)

		api.GET("/channels/:id/session", s.sessionStatus)
		api.POST("/channels/:id/session/link", s.beginLink)
		api.GET("/channels/:id/session/link", s.linkState)
		api.POST("/channels/:id/session/auth/start", s.startAuth)
		api.POST("/channels/:id/session/auth/code", s.verifyCode)
		api.POST("/channels/:id/session/auth/password", s.verifyPassword)
		api.POST("/channels/:id/session/disconnect", s.disconnectSession)
		api.DELETE("/channels/:id/session", s.deleteSession)
		api.GET("/channels/:id/groups", s.listGroups)
		api.GET("/channels/:id/groups/:group_id/members", s.listGroupMembers)

		api.POST("/campaigns/:id/start", s.startCampaign)
		api.POST("/campaigns/:id/pause", s.pauseCampaign)
		api.GET("/campaigns/:id/stats", s.campaignStats)
		api.POST("/campaigns/:id/recipients", s.addRecipients)
	}
	return r
}

// Start runs the HTTP server until Shutdown.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// StartWithListener runs the HTTP server on a pre-created listener. Used by
// tests that need an OS-assigned port.
func (s *Server) StartWithListener(ln net.Listener) error {
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	h := s.pool.Health()
	status := http.StatusOK
	if !h.IsHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"version": version.Full(), "pool": h})
}
