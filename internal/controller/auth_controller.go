package controller

import (
	"workload_survey/internal/service"
	"workload_survey/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// @Summary Admin login
// @Description Exchanges the admin password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "password"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, expiresAt, err := c.AuthService.Login(req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
	})
}
