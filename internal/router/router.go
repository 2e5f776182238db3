package router

import (
	"time"

	"peci_admin_v1_202608/internal/controller"
	"peci_admin_v1_202608/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers 路由需要的全部控制器
type Controllers struct {
	User      *controller.UserController
	Sales     *controller.SalesController
	Financial *controller.FinancialController
	Creator   *controller.CreatorController
	Shipment  *controller.ShipmentController
	Settings  *controller.SettingsController
	Watch     *controller.WatchController
}

// InitRoutes 注册所有路由
// 除了登录/刷新，其余接口都在 JWT 鉴权后面
func InitRoutes(r *gin.Engine, ctrls *Controllers, allowOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		// auth 认证组
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrls.User.Login)
			auth.POST("/refresh", ctrls.User.Refresh)
		}

		// 业务接口统一鉴权；审计中间件把操作人写进 ctx，GORM 回调落库
		authed := api.Group("")
		authed.Use(middleware.JWTAuth(), middleware.AuditContext())
		{
			authed.GET("/auth/me", ctrls.User.Me)
			authed.POST("/auth/logout", ctrls.User.Logout)

			// sales 营收
			sales := authed.Group("/sales")
			{
				sales.GET("", ctrls.Sales.List)
				sales.GET("/stats", ctrls.Sales.Stats)
				sales.POST("", ctrls.Sales.Create)
				sales.PUT("/:id", ctrls.Sales.Update)
				sales.DELETE("/:id", ctrls.Sales.Delete)
			}

			// financial 收支
			financial := authed.Group("/financial")
			{
				financial.GET("", ctrls.Financial.List)
				financial.GET("/summary", ctrls.Financial.Summary)
				financial.POST("", ctrls.Financial.Create)
				financial.DELETE("/:id", ctrls.Financial.Delete)
			}

			// creators 达人
			creators := authed.Group("/creators")
			{
				creators.GET("", ctrls.Creator.List)
				creators.POST("", ctrls.Creator.Create)
				creators.DELETE("/:id", ctrls.Creator.Delete)
				creators.POST("/:id/draft-message", ctrls.Creator.DraftMessage)
			}

			// shipments 样品寄送
			shipments := authed.Group("/shipments")
			{
				shipments.GET("", ctrls.Shipment.List)
				shipments.POST("", ctrls.Shipment.Create)
				shipments.PATCH("/:id/status", ctrls.Shipment.UpdateStatus)
				shipments.DELETE("/:id", ctrls.Shipment.Delete)
			}

			// settings 渠道配置
			settings := authed.Group("/settings")
			{
				settings.GET("", ctrls.Settings.Get)
				settings.PUT("", ctrls.Settings.Upsert)
			}

			// watch 实时订阅（WebSocket，token 走查询参数过同一个 JWTAuth）
			authed.GET("/watch/:collection", ctrls.Watch.Watch)
		}
	}
}
