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

type SalesController struct {
	salesService *service.SalesService
}

func NewSalesController(s *service.SalesService) *SalesController {
	return &SalesController{salesService: s}
}

// List
// @Summary 营收台账
// @Description 某渠道的全部营收记录，按日期倒序
// @Tags Sales (营收模块)
// @Produce json
// @Param platform query string true "渠道 TikTok/Shopee"
// @Success 200 {array} model.SalesRecord
// @Failure 400 {object} map[string]string "渠道错误"
// @Router /api/sales [get]
func (ctrl *SalesController) List(c *gin.Context) {
	platform := model.Platform(c.Query("platform"))

	records, err := ctrl.salesService.List(c.Request.Context(), platform)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Stats
// @Summary 营收统计
// @Description 区间汇总+图表数据；不传区间默认最近 30 天
// @Tags Sales (营收模块)
// @Produce json
// @Param platform query string true "渠道 TikTok/Shopee"
// @Param start_date query string false "起始日期 YYYY-MM-DD"
// @Param end_date query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} dto.SalesStatsResponse
// @Failure 400 {object} map[string]string "渠道错误"
// @Router /api/sales/stats [get]
func (ctrl *SalesController) Stats(c *gin.Context) {
	platform := model.Platform(c.Query("platform"))
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	resp, err := ctrl.salesService.Stats(c.Request.Context(), platform, startDate, endDate)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat statistik", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Create
// @Summary 新增营收
// @Tags Sales (营收模块)
// @Accept json
// @Produce json
// @Param body body dto.CreateSalesRequest true "营收参数，金额可带千分位"
// @Success 200 {object} model.SalesRecord
// @Failure 400 {object} map[string]string "参数错误"
// @Router /api/sales [post]
func (ctrl *SalesController) Create(c *gin.Context) {
	var req dto.CreateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	record, err := ctrl.salesService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data omset tersimpan", "record": record})
}

// Update
// @Summary 修改营收
// @Tags Sales (营收模块)
// @Accept json
// @Produce json
// @Param id path int true "记录 ID"
// @Param body body dto.UpdateSalesRequest true "修改参数"
// @Success 200 {object} model.SalesRecord
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/sales/{id} [put]
func (ctrl *SalesController) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID harus berupa angka"})
		return
	}

	var req dto.UpdateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	record, err := ctrl.salesService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data omset diperbarui", "record": record})
}

// Delete
// @Summary 删除营收
// @Tags Sales (营收模块)
// @Produce json
// @Param id path int true "记录 ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/sales/{id} [delete]
func (ctrl *SalesController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID harus berupa angka"})
		return
	}

	if err := ctrl.salesService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data omset dihapus"})
}
