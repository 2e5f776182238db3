package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "email": GetEmail(c)})
	})
	return r
}

func TestJWTAuth_BearerHeader(t *testing.T) {
	token, err := GenerateAccessToken(42, "admin@peci.local")
	if err != nil {
		t.Fatalf("生成 Token 失败: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("带合法 Token 应该放行, 实际 %d: %s", w.Code, w.Body.String())
	}
}

// WebSocket 带不了 Header，走 ?token= 查询参数
func TestJWTAuth_QueryToken(t *testing.T) {
	token, _ := GenerateAccessToken(42, "admin@peci.local")

	req := httptest.NewRequest("GET", "/protected?token="+token, nil)
	w := httptest.NewRecorder()
	newAuthTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("查询参数 Token 应该放行, 实际 %d", w.Code)
	}
}

func TestJWTAuth_MissingToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	newAuthTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("没带 Token 应该 401, 实际 %d", w.Code)
	}
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	newAuthTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("乱码 Token 应该 401, 实际 %d", w.Code)
	}
}

// Refresh Token 不能当 Access Token 过鉴权
func TestJWTAuth_RejectsRefreshToken(t *testing.T) {
	token, _ := GenerateRefreshToken(42, "admin@peci.local")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthTestRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Refresh Token 应该被拒, 实际 %d", w.Code)
	}
}

func TestGenerateTokenPair(t *testing.T) {
	access, refresh, err := GenerateTokenPair(7, "admin@peci.local")
	if err != nil {
		t.Fatalf("生成 Token 对失败: %v", err)
	}

	accessClaims, err := ParseToken(access)
	if err != nil || accessClaims.Subject != "access" {
		t.Errorf("Access Token 解析错误: %v, %+v", err, accessClaims)
	}
	refreshClaims, err := ParseToken(refresh)
	if err != nil || refreshClaims.Subject != "refresh" {
		t.Errorf("Refresh Token 解析错误: %v, %+v", err, refreshClaims)
	}
	if accessClaims.UserID != 7 || refreshClaims.Email != "admin@peci.local" {
		t.Errorf("Claims 内容错误: %+v / %+v", accessClaims, refreshClaims)
	}
}
