package controllers

import (
	"strconv"

	"github.com/IEarari/Seeds/pkg/resp"
	"github.com/IEarari/Seeds/services"
	"github.com/IEarari/Seeds/utils"
	"github.com/gin-gonic/gin"
)

type RoleController struct {
	Service *services.RoleService
}

func NewRoleController(s *services.RoleService) *RoleController {
	return &RoleController{Service: s}
}

type AssignRoleRequest struct {
	TargetUserID uint   `json:"targetUserId" binding:"required"`
	NewRole      string `json:"newRole" binding:"required"`
}

// POST /api/admin/roles/assign
func (ctl *RoleController) Assign(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Service.Assign(utils.CurrentUserID(c), utils.CurrentRole(c), req.TargetUserID, req.NewRole)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /api/admin/users?limit=
func (ctl *RoleController) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	users, err := ctl.Service.ListUsers(limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}
