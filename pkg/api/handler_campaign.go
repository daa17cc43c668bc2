package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/outflowhq/outflow/pkg/campaign"
)

// startCampaign handles POST /api/campaigns/:id/start. Starting a paused
// campaign resumes it.
func (s *Server) startCampaign(c *gin.Context) {
	if err := s.engine.Start(c.Request.Context(), tenantID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "active"})
}

// pauseCampaign handles POST /api/campaigns/:id/pause.
func (s *Server) pauseCampaign(c *gin.Context) {
	if err := s.engine.Pause(c.Request.Context(), tenantID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "paused"})
}

// campaignStats handles GET /api/campaigns/:id/stats.
func (s *Server) campaignStats(c *gin.Context) {
	stats, err := s.engine.Stats(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// addRecipientsRequest selects exactly one enrolment mode.
type addRecipientsRequest struct {
	ContactIDs       []string             `json:"contactIds,omitempty"`
	LeadIDs          []string             `json:"leadIds,omitempty"`
	PrimaryOnly      bool                 `json:"primaryOnly,omitempty"`
	Filter           *campaign.LeadFilter `json:"filter,omitempty"`
	ProspectGroupIDs []string             `json:"prospectGroupIds,omitempty"`
}

func (r addRecipientsRequest) modes() int {
	n := 0
	if len(r.ContactIDs) > 0 {
		n++
	}
	if len(r.LeadIDs) > 0 {
		n++
	}
	if r.Filter != nil {
		n++
	}
	if len(r.ProspectGroupIDs) > 0 {
		n++
	}
	return n
}

// addRecipients handles POST /api/campaigns/:id/recipients.
func (s *Server) addRecipients(c *gin.Context) {
	var req addRecipientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.modes() != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of contactIds, leadIds, filter, prospectGroupIds is required"})
		return
	}

	ctx := c.Request.Context()
	tenant := tenantID(c)
	campaignID := c.Param("id")

	var (
		added int
		err   error
	)
	switch {
	case len(req.ContactIDs) > 0:
		added, err = s.engine.AddContacts(ctx, tenant, campaignID, req.ContactIDs)
	case len(req.LeadIDs) > 0:
		added, err = s.engine.AddLeads(ctx, tenant, campaignID, req.LeadIDs, req.PrimaryOnly)
	case req.Filter != nil:
		added, err = s.engine.AddByFilter(ctx, tenant, campaignID, *req.Filter)
	default:
		added, err = s.engine.AddProspectGroups(ctx, tenant, campaignID, req.ProspectGroupIDs)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}
