package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"peci_admin_v1_202608/internal/api/dto"
	"peci_admin_v1_202608/internal/middleware"
	"peci_admin_v1_202608/internal/model"
	"peci_admin_v1_202608/internal/repository"
)

// ==================== UserService 用户服务 ====================

// UserService 管理账号服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ==================== 认证相关 ====================

// Login 邮箱+密码登录
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 查找用户
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// 检查状态
	if user.Status != model.UserStatusActive {
		return nil, ErrUserDisabled
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 生成 Token
	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	// 更新最后登录时间，失败不影响登录
	_ = s.userRepo.UpdateLastLogin(ctx, user.ID)

	cfg := middleware.GetJWTConfig()
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
		User:         toUserInfo(user),
	}, nil
}

// RefreshToken 刷新 Token
func (s *UserService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	// 解析 Refresh Token
	claims, err := middleware.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// 验证是否为 Refresh Token
	if claims.Subject != "refresh" {
		return nil, ErrInvalidToken
	}

	// 确保用户仍然有效
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != model.UserStatusActive {
		return nil, ErrUserDisabled
	}

	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	cfg := middleware.GetJWTConfig()
	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
	}, nil
}

// GetByID 查当前登录用户
func (s *UserService) GetByID(ctx context.Context, id int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	info := toUserInfo(user)
	return &info, nil
}

// EnsureUser 启动时保证存在一个管理账号（邮箱已存在则什么都不做）
func (s *UserService) EnsureUser(ctx context.Context, email, password, name string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.Create(ctx, &model.SysUser{
		Email:    email,
		Password: string(hashed),
		Name:     name,
		Status:   model.UserStatusActive,
	})
}

func toUserInfo(user *model.SysUser) dto.UserInfo {
	return dto.UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
