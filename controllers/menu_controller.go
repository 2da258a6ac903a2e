package controllers

import (
	"github.com/IEarari/Seeds/pkg/resp"
	"github.com/IEarari/Seeds/services"
	"github.com/IEarari/Seeds/utils"
	"github.com/gin-gonic/gin"
)

// MenuController serves the lookup lists: public reads for form dropdowns,
// super-admin writes for managing them.
type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

type ReplaceMenuRequest struct {
	Items []string `json:"items" binding:"required"`
}

type MenuItemRequest struct {
	Item string `json:"item" binding:"required"`
}

// GET /api/public/menus and GET /api/super/menus
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": menus})
}

// GET /api/public/menus/:name and GET /api/super/menus/:name
func (ctl *MenuController) Detail(c *gin.Context) {
	menu, err := ctl.Service.Get(c.Param("name"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /api/super/menus/:name replaces the whole list, creating it when absent.
func (ctl *MenuController) Replace(c *gin.Context) {
	var req ReplaceMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Service.Replace(utils.CurrentUserID(c), c.Param("name"), req.Items)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /api/super/menus/:name/items
func (ctl *MenuController) AddItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Service.AddItem(utils.CurrentUserID(c), c.Param("name"), req.Item)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /api/super/menus/:name/items
func (ctl *MenuController) RemoveItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Service.RemoveItem(utils.CurrentUserID(c), c.Param("name"), req.Item)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, menu)
}
