package controller

import (
	"errors"
	"net/http"
	"strconv"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FinancialController struct {
	financialService *service.FinancialService
}

func NewFinancialController(s *service.FinancialService) *FinancialController {
	return &FinancialController{financialService: s}
}

// List
// @Summary 收支流水
// @Description 某渠道的流水列表+汇总，一次返回
// @Tags Financial (收支模块)
// @Produce json
// @Param platform query string true "渠道 TikTok/Shopee"
// @Success 200 {object} dto.FinancialListResponse
// @Failure 400 {object} map[string]string "渠道错误"
// @Router /api/financial [get]
func (ctrl *FinancialController) List(c *gin.Context) {
	platform := model.Platform(c.Query("platform"))

	resp, err := ctrl.financialService.ListWithSummary(c.Request.Context(), platform)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Summary
// @Summary 收支汇总
// @Description 总收入/总支出/广告支出/广告占比
// @Tags Financial (收支模块)
// @Produce json
// @Param platform query string true "渠道 TikTok/Shopee"
// @Success 200 {object} dto.FinancialSummary
// @Failure 400 {object} map[string]string "渠道错误"
// @Router /api/financial/summary [get]
func (ctrl *FinancialController) Summary(c *gin.Context) {
	platform := model.Platform(c.Query("platform"))

	summary, err := ctrl.financialService.Summary(c.Request.Context(), platform)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat ringkasan", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Create
// @Summary 新增收支
// @Tags Financial (收支模块)
// @Accept json
// @Produce json
// @Param body body dto.CreateFinancialRequest true "收支参数，金额可带千分位"
// @Success 200 {object} model.FinancialRecord
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/financial [post]
func (ctrl *FinancialController) Create(c *gin.Context) {
	var req dto.CreateFinancialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	record, err := ctrl.financialService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catatan keuangan tersimpan", "record": record})
}

// Delete
// @Summary 删除收支
// @Tags Financial (收支模块)
// @Produce json
// @Param id path int true "记录 ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/financial/{id} [delete]
func (ctrl *FinancialController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID harus berupa angka"})
		return
	}

	if err := ctrl.financialService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Catatan keuangan dihapus"})
}
