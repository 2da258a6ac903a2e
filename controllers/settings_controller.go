package controllers

import (
	"github.com/IEarari/Seeds/pkg/resp"
	"github.com/IEarari/Seeds/services"
	"github.com/IEarari/Seeds/utils"
	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Service *services.SettingsService
}

func NewSettingsController(s *services.SettingsService) *SettingsController {
	return &SettingsController{Service: s}
}

// GET /api/public/settings/volunteering and GET /api/admin/settings/volunteering
func (ctl *SettingsController) Get(c *gin.Context) {
	settings, err := ctl.Service.Get()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, settings)
}

type SettingsRequest struct {
	IsApplicationOpen *bool   `json:"isApplicationOpen" binding:"required"`
	OpenFrom          *string `json:"openFrom"`
	OpenTo            *string `json:"openTo"`
}

// POST /api/admin/settings/volunteering
func (ctl *SettingsController) Set(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	settings, err := ctl.Service.Set(utils.CurrentUserID(c), services.SettingsUpdate{
		IsApplicationOpen: *req.IsApplicationOpen,
		OpenFrom:          req.OpenFrom,
		OpenTo:            req.OpenTo,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, settings)
}
