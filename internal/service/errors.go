package service

import "errors"

// ==================== 业务错误 ====================

// 控制器按这些错误挑 HTTP 状态码和提示语；
// 登录相关的两类错误对外只映射成两句笼统提示，不泄露细节
var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrUserDisabled       = errors.New("akun dinonaktifkan")
	ErrInvalidToken       = errors.New("token tidak valid")
	ErrUserNotFound       = errors.New("user tidak ditemukan")

	ErrInvalidPlatform = errors.New("platform tidak valid")
	ErrInvalidStatus   = errors.New("status tidak valid")
	ErrCreatorNotFound = errors.New("kreator tidak ditemukan")
)
