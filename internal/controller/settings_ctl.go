package controller

import (
	"errors"
	"net/http"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService *service.SettingsService
}

func NewSettingsController(s *service.SettingsService) *SettingsController {
	return &SettingsController{settingsService: s}
}

// Get
// @Summary 查渠道配置
// @Description 该渠道还没配置时返回空名字，不报错
// @Tags Settings (配置模块)
// @Produce json
// @Param platform query string true "渠道 TikTok/Shopee"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "渠道错误"
// @Router /api/settings [get]
func (ctrl *SettingsController) Get(c *gin.Context) {
	platform := model.Platform(c.Query("platform"))

	resp, err := ctrl.settingsService.Get(c.Request.Context(), platform)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat pengaturan", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Upsert
// @Summary 保存渠道配置
// @Description merge 语义，没有就建
// @Tags Settings (配置模块)
// @Accept json
// @Produce json
// @Param body body dto.UpsertSettingsRequest true "配置参数"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/settings [put]
func (ctrl *SettingsController) Upsert(c *gin.Context) {
	var req dto.UpsertSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	resp, err := ctrl.settingsService.Upsert(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan pengaturan", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pengaturan tersimpan", "settings": resp})
}
