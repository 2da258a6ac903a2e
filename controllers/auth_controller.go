package controllers

import (
	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/resp"
	"github.com/IEarari/Seeds/services"
	"github.com/IEarari/Seeds/utils"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Service.Register(req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.Created(c, userView(user))
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Service.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.OK(c, gin.H{"token": token, "user": userView(user)})
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, userView(user))
}

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":                       u.ID,
		"email":                    u.Email,
		"firstName":                u.FirstName,
		"lastName":                 u.LastName,
		"phoneNumber":              u.PhoneNumber,
		"role":                     u.Role,
		"currentApplicationId":     u.CurrentApplicationID,
		"currentApplicationStatus": u.CurrentApplicationStatus,
	}
}
