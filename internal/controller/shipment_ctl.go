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

type ShipmentController struct {
	shipmentService *service.ShipmentService
}

func NewShipmentController(s *service.ShipmentService) *ShipmentController {
	return &ShipmentController{shipmentService: s}
}

// List
// @Summary 样品寄送列表
// @Description 某渠道的寄送记录，按录入时间倒序
// @Tags Shipment (样品寄送模块)
// @Produce json
// @Param platform query string true "渠道 TikTok/Shopee"
// @Success 200 {array} model.SampleShipment
// @Failure 400 {object} map[string]string "渠道错误"
// @Router /api/shipments [get]
func (ctrl *ShipmentController) List(c *gin.Context) {
	platform := model.Platform(c.Query("platform"))

	shipments, err := ctrl.shipmentService.List(c.Request.Context(), platform)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlatform) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuat data", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shipments": shipments})
}

// Create
// @Summary 新增寄送
// @Description 达人名由服务端按 creator_id 快照，日期取服务器当天
// @Tags Shipment (样品寄送模块)
// @Accept json
// @Produce json
// @Param body body dto.CreateShipmentRequest true "寄送参数"
// @Success 200 {object} model.SampleShipment
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 404 {object} map[string]string "达人不存在"
// @Router /api/shipments [post]
func (ctrl *ShipmentController) Create(c *gin.Context) {
	var req dto.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	shipment, err := ctrl.shipmentService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlatform), errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCreatorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan", "detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pengiriman sampel tersimpan", "shipment": shipment})
}

// UpdateStatus
// @Summary 改寄送状态
// @Description 状态枚举 Pending/Shipped/Delivered/Returned，之间随便切
// @Tags Shipment (样品寄送模块)
// @Accept json
// @Produce json
// @Param id path int true "记录 ID"
// @Param body body dto.UpdateShipmentStatusRequest true "新状态"
// @Success 200 {object} model.SampleShipment
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/shipments/{id}/status [patch]
func (ctrl *ShipmentController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID harus berupa angka"})
		return
	}

	var req dto.UpdateShipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak valid", "detail": err.Error()})
		return
	}

	shipment, err := ctrl.shipmentService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan", "detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status pengiriman diperbarui", "shipment": shipment})
}

// Delete
// @Summary 删除寄送记录
// @Tags Shipment (样品寄送模块)
// @Produce json
// @Param id path int true "记录 ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "记录不存在"
// @Router /api/shipments/{id} [delete]
func (ctrl *ShipmentController) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID harus berupa angka"})
		return
	}

	if err := ctrl.shipmentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pengiriman sampel dihapus"})
}
