package controller

import (
	"net/http"
	"time"

	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/watch"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WebSocket 实时订阅端点。
// 前端对每个打开的页面订一个 (collection, platform) 主题，
// 每次推送都是全量替换列表；切渠道时前端断开重连。
// 认证走 JWT 的 ?token= 查询参数（浏览器 WebSocket 带不了 Header）。

const (
	watchWriteWait  = 10 * time.Second
	watchPingPeriod = 30 * time.Second
)

var watchUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// 跨域已由 CORS 中间件统一管制，这里不重复校验
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WatchController struct {
	hub *watch.Hub
}

func NewWatchController(hub *watch.Hub) *WatchController {
	return &WatchController{hub: hub}
}

// Watch
// @Summary 实时订阅
// @Description WebSocket 升级；每次数据变更推送该集合该渠道的全量列表
// @Tags Watch (实时订阅)
// @Param collection path string true "集合 sales/financial/creator/shipment"
// @Param platform query string true "渠道 TikTok/Shopee"
// @Param token query string true "Access Token"
// @Router /api/watch/{collection} [get]
func (ctrl *WatchController) Watch(c *gin.Context) {
	collection := c.Param("collection")
	platform := model.Platform(c.Query("platform"))

	if !watch.IsValidCollection(collection) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Koleksi tidak dikenal"})
		return
	}
	if !platform.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Platform tidak valid"})
		return
	}

	conn, err := watchUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 失败时 gorilla 已经写过响应
		logrus.Warnf("[Watch] 升级 WebSocket 失败: %v", err)
		return
	}
	defer conn.Close()

	sub, err := ctrl.hub.Subscribe(c.Request.Context(), collection, platform)
	if err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscribe failed"),
			time.Now().Add(watchWriteWait))
		return
	}
	defer sub.Unsubscribe()

	// 读泵只为感知断开；客户端不该发业务消息
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(watchPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case snap, ok := <-sub.C:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
