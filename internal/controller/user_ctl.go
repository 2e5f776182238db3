package controller

import (
	"errors"
	"net/http"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/middleware"
	"peci_admin_v1_202608/internal/service"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(s *service.UserService) *UserController {
	return &UserController{userService: s}
}

// Login
// @Summary 登录
// @Description 邮箱+密码登录，返回 Access/Refresh Token
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "登录参数"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "凭证错误"
// @Router /api/auth/login [post]
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	resp, err := ctrl.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrUserDisabled) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login gagal", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh
// @Summary 刷新 Token
// @Description 用 Refresh Token 换一对新 Token
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest true "刷新参数"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} map[string]string "Token 无效"
// @Router /api/auth/refresh [post]
func (ctrl *UserController) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	resp, err := ctrl.userService.RefreshToken(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me
// @Summary 当前用户
// @Description 返回当前登录用户信息
// @Tags Auth (认证模块)
// @Produce json
// @Success 200 {object} dto.UserInfo
// @Failure 401 {object} map[string]string "未登录"
// @Router /api/auth/me [get]
func (ctrl *UserController) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	info, err := ctrl.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}

// Logout
// @Summary 登出
// @Description 无状态 JWT，服务端不存会话；这个接口只给前端一个统一的登出入口
// @Tags Auth (认证模块)
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/auth/logout [post]
func (ctrl *UserController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Berhasil keluar"})
}
