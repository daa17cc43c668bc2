package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outflowhq/outflow/pkg/sessions"
)

func linkStateJSON(ls sessions.LinkState) gin.H {
	out := gin.H{"status": ls.Status}
	if ls.QRImage != "" {
		out["qrImage"] = ls.QRImage
	}
	if ls.SessionKey != "" {
		out["sessionKey"] = ls.SessionKey
	}
	if ls.Profile != "" {
		out["profile"] = ls.Profile
	}
	return out
}

// sessionStatus handles GET /api/channels/:id/session.
func (s *Server) sessionStatus(c *gin.Context) {
	info, err := s.registry.Status(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// beginLink handles POST /api/channels/:id/session/link (WhatsApp Web QR
// pairing).
func (s *Server) beginLink(c *gin.Context) {
	ls, err := s.registry.BeginLink(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, linkStateJSON(ls))
}

// linkState handles GET /api/channels/:id/session/link (QR refresh polling).
func (s *Server) linkState(c *gin.Context) {
	ls, err := s.registry.LinkState(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, linkStateJSON(ls))
}

// startAuth handles POST /api/channels/:id/session/auth/start (Telegram).
func (s *Server) startAuth(c *gin.Context) {
	ls, err := s.registry.StartAuth(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, linkStateJSON(ls))
}

type verifyCodeRequest struct {
	SessionKey string `json:"sessionKey" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

// verifyCode handles POST /api/channels/:id/session/auth/code.
func (s *Server) verifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ls, err := s.registry.VerifyCode(c.Request.Context(), tenantID(c), c.Param("id"), req.SessionKey, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, linkStateJSON(ls))
}

type verifyPasswordRequest struct {
	SessionKey string `json:"sessionKey" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// verifyPassword handles POST /api/channels/:id/session/auth/password.
func (s *Server) verifyPassword(c *gin.Context) {
	var req verifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ls, err := s.registry.VerifyPassword(c.Request.Context(), tenantID(c), c.Param("id"), req.SessionKey, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, linkStateJSON(ls))
}

// disconnectSession handles POST /api/channels/:id/session/disconnect.
// Persisted session material is kept for later reconnects.
func (s *Server) disconnectSession(c *gin.Context) {
	s.registry.Disconnect(tenantID(c), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "disconnected"})
}

// deleteSession handles DELETE /api/channels/:id/session. Destroys persisted
// material, with a best-effort remote logout.
func (s *Server) deleteSession(c *gin.Context) {
	if err := s.registry.DeleteSession(c.Request.Context(), tenantID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// listGroups handles GET /api/channels/:id/groups.
func (s *Server) listGroups(c *gin.Context) {
	groups, err := s.registry.ListGroups(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// listGroupMembers handles GET /api/channels/:id/groups/:group_id/members.
func (s *Server) listGroupMembers(c *gin.Context) {
	members, err := s.registry.ListGroupMembers(c.Request.Context(), tenantID(c), c.Param("id"), c.Param("group_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}
