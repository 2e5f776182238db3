package controller

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/middleware"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/service"

	"github.com/gin-gonic/gin"
)

// 同一个达人两次草拟之间的冷却，防止连点把配额打爆
const draftCooldown = 30 * time.Second

// 渠道没配置店铺名时草拟用的默认署名
const defaultStoreName = "Aha Moslem Collection"

type CreatorController struct {
	creatorService  *service.CreatorService
	settingsService *service.SettingsService
	aiService       *service.AIService
}

func NewCreatorController(creatorService *service.CreatorService, settingsService *service.SettingsService, aiService *service.AIService) *CreatorController {
	return &CreatorController{
		creatorService:  creatorService,
		settingsService: settingsService,
		aiService:       aiService,
	}
}

// List
// @Summary 达人列表
// @Description 某渠道的达人，按录入时间倒序
// @Tags Creator (达人模块)
// @Produce json
// @Param platform query string true "渠道 TikTok/Shopee"
// @Success 200 {array} model.Creator
// @Failure 400 {object} map[string]string "渠道错误"
// @Router /api/creators [get]
func (ctrl *CreatorController) List(c *gin.Context) {
	platform := model.Platform(c.Query("platform"))

	creators, err := ctrl.creatorService.List(c.Request.Context(), platform)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"creators": creators})
}

// Create
// @Summary 新增达人
// @Tags Creator (达人模块)
// @Accept json
// @Produce json
// @Param body body dto.CreateCreatorRequest true "达人参数"
// @Success 200 {object} model.Creator
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/creators [post]
func (ctrl *CreatorController) Create(c *gin.Context) {
	var req dto.CreateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	creator, err := ctrl.creatorService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kreator tersimpan", "creator": creator})
}

// Delete
// @Summary 删除达人
// @Description 硬删除；该达人的寄送记录不受影响
// @Tags Creator (达人模块)
// @Produce json
// @Param id path int true "达人 ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "达人不存在"
// @Router /api/creators/{id} [delete]
func (ctrl *CreatorController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID harus berupa angka"})
		return
	}

	if err := ctrl.creatorService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCreatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kreator dihapus"})
}

// DraftMessage
// @Summary AI 草拟合作私信
// @Description 按达人名+店铺名+商品名草拟一段印尼语邀约；AI 失败时返回固定兜底文案，不报错
// @Tags Creator (达人模块)
// @Accept json
// @Produce json
// @Param id path int true "达人 ID"
// @Param body body dto.DraftMessageRequest true "商品名"
// @Success 200 {object} dto.DraftMessageResponse
// @Failure 404 {object} map[string]string "达人不存在"
// @Failure 429 {object} map[string]interface{} "冷却中"
// @Router /api/creators/{id}/draft-message [post]
func (ctrl *CreatorController) DraftMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID harus berupa angka"})
		return
	}

	var req dto.DraftMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	creator, err := ctrl.creatorService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCreatorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat kreator", "detail": err.Error()})
		return
	}

	// 冷却检查放在达人校验之后，404 不占用冷却
	check := middleware.GetLimiter().Check("draft:creator:"+strconv.FormatInt(id, 10), draftCooldown)
	if !check.Allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":       "Tunggu sebentar sebelum membuat draf lagi",
			"retry_after": int(math.Ceil(check.RetryAfter.Seconds())),
		})
		return
	}

	storeName := defaultStoreName
	if settings, err := ctrl.settingsService.Get(c.Request.Context(), creator.Platform); err == nil && settings.StoreName != "" {
		storeName = settings.StoreName
	}

	draft := ctrl.aiService.DraftCreatorMessage(c.Request.Context(), creator.Name, storeName, req.ProductName)

	c.JSON(http.StatusOK, dto.DraftMessageResponse{
		CreatorName: creator.Name,
		StoreName:   storeName,
		Draft:       draft,
	})
}
