package controllers

import (
	"strconv"

	"github.com/IEarari/Seeds/pkg/resp"
	"github.com/IEarari/Seeds/services"
	"github.com/IEarari/Seeds/utils"
	"github.com/gin-gonic/gin"
)

// AdminApplicationController is the reviewer queue: paginated listing plus
// the approve/reject decisions.
type AdminApplicationController struct {
	Service *services.ApplicationService
}

func NewAdminApplicationController(s *services.ApplicationService) *AdminApplicationController {
	return &AdminApplicationController{Service: s}
}

type ApproveRequest struct {
	ReviewNotes *string `json:"reviewNotes"`
}

type RejectRequest struct {
	DecisionReason string  `json:"decisionReason" binding:"required"`
	ReviewNotes    *string `json:"reviewNotes"`
}

// GET /api/admin/applications?status=&limit=&cursor=
func (ctl *AdminApplicationController) List(c *gin.Context) {
	status := c.DefaultQuery("status", "")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	cursor := c.Query("cursor")

	page, err := ctl.Service.List(status, limit, cursor)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /api/admin/applications/:id
func (ctl *AdminApplicationController) Detail(c *gin.Context) {
	app, err := ctl.Service.Get(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, app)
}

// POST /api/admin/applications/:id/approve
func (ctl *AdminApplicationController) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Service.Decide(utils.CurrentUserID(c), c.Param("id"), services.DecisionApprove, req.ReviewNotes, nil)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /api/admin/applications/:id/reject
func (ctl *AdminApplicationController) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Service.Decide(utils.CurrentUserID(c), c.Param("id"), services.DecisionReject, req.ReviewNotes, &req.DecisionReason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
