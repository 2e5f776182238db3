package middleware

import (
	"sync"
	"time"
)

// ==================== DraftRateLimiter 草拟限流器 ====================

// DraftRateLimiter AI 草拟冷却限流器
// 防止对同一个达人连点"写消息"把 Gemini 配额打爆
type DraftRateLimiter struct {
	locks sync.Map // key -> *lockEntry
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// 全局限流器实例
var globalLimiter = &DraftRateLimiter{}

// GetLimiter 获取全局限流器
func GetLimiter() *DraftRateLimiter {
	return globalLimiter
}

// ==================== 限流检查 ====================

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行
// key: 限流键，如 "draft:creator:123"
// interval: 冷却间隔
func (r *DraftRateLimiter) Check(key string, interval time.Duration) CheckResult {
	// 获取或创建锁条目
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)

	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	// 更新最后执行时间
	entry.lastTime = now
	return CheckResult{
		Allowed:    true,
		RetryAfter: 0,
	}
}

// Reset 清除某个键的冷却（测试用）
func (r *DraftRateLimiter) Reset(key string) {
	r.locks.Delete(key)
}
