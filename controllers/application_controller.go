package controllers

import (
	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/resp"
	"github.com/IEarari/Seeds/services"
	"github.com/IEarari/Seeds/utils"
	"github.com/gin-gonic/gin"
)

// ApplicationController is the applicant-facing surface of the lifecycle:
// get-or-create a draft, save it, submit it, read it back.
type ApplicationController struct {
	Service *services.ApplicationService
}

func NewApplicationController(s *services.ApplicationService) *ApplicationController {
	return &ApplicationController{Service: s}
}

type EnsureDraftResp struct {
	ApplicationID string `json:"applicationId"`
	Created       bool   `json:"created"`
}

type SaveDraftRequest struct {
	Profile entity.Profile `json:"profile" binding:"required"`
}

// POST /api/applications/ensure-draft
func (ctl *ApplicationController) EnsureDraft(c *gin.Context) {
	id, created, err := ctl.Service.EnsureDraft(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, EnsureDraftResp{ApplicationID: id, Created: created})
}

// GET /api/applications/:id, readable by the owner or a reviewer.
func (ctl *ApplicationController) Detail(c *gin.Context) {
	app, err := ctl.Service.GetAuthorized(utils.CurrentUserID(c), utils.CurrentRole(c), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, app)
}

// PUT /api/applications/:id
func (ctl *ApplicationController) SaveDraft(c *gin.Context) {
	var req SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.SaveDraft(utils.CurrentUserID(c), c.Param("id"), req.Profile); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /api/applications/:id/submit
func (ctl *ApplicationController) Submit(c *gin.Context) {
	var req SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.Submit(utils.CurrentUserID(c), c.Param("id"), req.Profile); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
