package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"peci_admin_v1_202608/internal/controller"
	"peci_admin_v1_202608/internal/middleware"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
	"peci_admin_v1_202608/internal/router"
	"peci_admin_v1_202608/internal/service"
	"peci_admin_v1_202608/internal/task"
	"peci_admin_v1_202608/internal/watch"
	"peci_admin_v1_202608/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// 1. 加载环境变量（.env 不存在也不报错，容器里直接用注入的环境变量）
	_ = godotenv.Load()

	initJWT()

	// 2. 初始化数据库
	db := initDatabase()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 保证管理账号存在
	seedAdmin(deps.Services.User)

	// 5. 启动定时任务
	recapTask := task.NewRecapTask(deps.Services.Sales, deps.Services.Financial)
	recapTask.Start()
	defer recapTask.Stop()

	// 6. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Controllers, corsOrigins())

	// 7. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Hub         *watch.Hub
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User      repository.UserRepository
	Sales     repository.SalesRepository
	Financial repository.FinancialRepository
	Creator   repository.CreatorRepository
	Shipment  repository.ShipmentRepository
	Settings  repository.SettingsRepository
}

// Services 服务集合
type Services struct {
	User      *service.UserService
	Sales     *service.SalesService
	Financial *service.FinancialService
	Creator   *service.CreatorService
	Shipment  *service.ShipmentService
	Settings  *service.SettingsService
	AI        *service.AIService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	db := database.InitDB(
		getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=peci_admin port=5432 sslmode=disable"),
		// Manager
		&model.SysUser{},
		// Business
		&model.SalesRecord{}, &model.FinancialRecord{},
		&model.Creator{}, &model.SampleShipment{},
		&model.StoreSettings{},
	)

	// 写操作自动落 CreatedBy/UpdatedBy
	middleware.RegisterAuditCallbacks(db)
	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:      repository.NewUserRepository(db),
		Sales:     repository.NewSalesRepository(db),
		Financial: repository.NewFinancialRepository(db),
		Creator:   repository.NewCreatorRepository(db),
		Shipment:  repository.NewShipmentRepository(db),
		Settings:  repository.NewSettingsRepository(db),
	}

	// -------- 订阅中心 --------
	hub := watch.NewHub()

	// -------- Service 层 --------
	services := &Services{
		User:      service.NewUserService(repos.User),
		Sales:     service.NewSalesService(repos.Sales, hub),
		Financial: service.NewFinancialService(repos.Financial, hub),
		Creator:   service.NewCreatorService(repos.Creator, hub),
		Shipment:  service.NewShipmentService(repos.Shipment, repos.Creator, hub),
		Settings:  service.NewSettingsService(repos.Settings),
		AI:        service.NewAIService(aiConfig()),
	}

	// 每个集合的快照装载器在这里接线
	hub.RegisterLoader(watch.CollectionSales, services.Sales.Snapshot)
	hub.RegisterLoader(watch.CollectionFinancial, services.Financial.Snapshot)
	hub.RegisterLoader(watch.CollectionCreator, services.Creator.Snapshot)
	hub.RegisterLoader(watch.CollectionShipment, services.Shipment.Snapshot)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		User:      controller.NewUserController(services.User),
		Sales:     controller.NewSalesController(services.Sales),
		Financial: controller.NewFinancialController(services.Financial),
		Creator:   controller.NewCreatorController(services.Creator, services.Settings, services.AI),
		Shipment:  controller.NewShipmentController(services.Shipment),
		Settings:  controller.NewSettingsController(services.Settings),
		Watch:     controller.NewWatchController(hub),
	}

	return &Dependencies{
		DB:          db,
		Hub:         hub,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// aiConfig 从环境变量加载 Gemini 配置
func aiConfig() service.AIConfig {
	cfg := service.DefaultAIConfig(os.Getenv("GEMINI_API_KEY"))
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Model = model
	}
	return cfg
}

// initJWT 从环境变量加载 JWT 配置
func initJWT() {
	cfg := middleware.DefaultJWTConfig()
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.SecretKey = secret
	}
	middleware.SetJWTConfig(cfg)
}

// seedAdmin 启动时保证存在一个管理账号
func seedAdmin(userService *service.UserService) {
	email := getEnv("ADMIN_EMAIL", "admin@peci.local")
	password := getEnv("ADMIN_PASSWORD", "admin123")
	name := getEnv("ADMIN_NAME", "Admin")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userService.EnsureUser(ctx, email, password, name); err != nil {
		logrus.Fatalf("初始化管理账号失败: %v", err)
	}
}

// corsOrigins 前端来源白名单
func corsOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return []string{origins}
	}
	return []string{"http://localhost:5173"}
}

// ==================== 服务启动 ====================

// startServer 启动 HTTP 服务并处理优雅关闭
func startServer(r *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + getEnv("SERVER_PORT", "8080"),
		Handler: r,
	}

	go func() {
		logrus.Infof("服务启动，监听 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("收到退出信号，开始优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("优雅关闭失败: %v", err)
	}
	logrus.Info("服务已退出")
}

// getEnv 读取环境变量，空值用默认值兜底
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
