package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/internal/service"
	"peci_admin_v1_202608/internal/watch"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 测试辅助 ====================

func setupSalesCtlRouter(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.SalesRecord{})

	svc := service.NewSalesService(repository.NewSalesRepository(db), watch.NewHub())
	ctl := NewSalesController(svc)

	r := gin.New()
	r.GET("/api/sales", ctl.List)
	r.GET("/api/sales/stats", ctl.Stats)
	r.POST("/api/sales", ctl.Create)
	r.PUT("/api/sales/:id", ctl.Update)
	r.DELETE("/api/sales/:id", ctl.Delete)
	return r
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== 接口测试 ====================

func TestSalesCtl_CreateAndList(t *testing.T) {
	router := setupSalesCtlRouter(t)

	w := performRequest(router, "POST", "/api/sales", map[string]interface{}{
		"date": "2026-08-10", "revenue": "1.000.000", "items_sold": "12", "platform": "TikTok",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "GET", "/api/sales?platform=TikTok", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Records []model.SalesRecord `json:"records"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Records, 1)
	assert.Equal(t, int64(1000000), resp.Records[0].Revenue)
}

func TestSalesCtl_ListRequiresValidPlatform(t *testing.T) {
	router := setupSalesCtlRouter(t)

	w := performRequest(router, "GET", "/api/sales?platform=Lazada", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, "GET", "/api/sales", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesCtl_CreateMissingFields(t *testing.T) {
	router := setupSalesCtlRouter(t)

	w := performRequest(router, "POST", "/api/sales", map[string]interface{}{
		"date": "2026-08-10", "platform": "TikTok",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesCtl_StatsSingleDay(t *testing.T) {
	router := setupSalesCtlRouter(t)

	performRequest(router, "POST", "/api/sales", map[string]interface{}{
		"date": "2026-08-10", "revenue": "1.000.000", "items_sold": "12", "platform": "TikTok",
	})
	performRequest(router, "POST", "/api/sales", map[string]interface{}{
		"date": "2026-08-11", "revenue": "500.000", "items_sold": "3", "platform": "TikTok",
	})

	w := performRequest(router, "GET", "/api/sales/stats?platform=TikTok&start_date=2026-08-10&end_date=2026-08-10", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalRevenue int64 `json:"total_revenue"`
		TotalItems   int64 `json:"total_items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1000000), stats.TotalRevenue)
	assert.Equal(t, int64(12), stats.TotalItems)
}

func TestSalesCtl_UpdateInvalidID(t *testing.T) {
	router := setupSalesCtlRouter(t)

	w := performRequest(router, "PUT", "/api/sales/abc", map[string]interface{}{
		"date": "2026-08-10", "revenue": "100", "items_sold": "1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesCtl_DeleteMissing(t *testing.T) {
	router := setupSalesCtlRouter(t)

	w := performRequest(router, "DELETE", "/api/sales/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
