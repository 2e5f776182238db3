package utils

import (
	"strconv"
	"strings"
)

// 印尼盾金额的千分位处理。
// 前端每次按键都会重新格式化输入框，提交时再解析回整数，
// 所以这两个函数必须是纯函数、永不报错，且满足 ParseIDR(FormatIDRNumber(n)) == n。

// FormatIDR 把用户敲进来的字符串格式化成千分位（id-ID 用 "." 分组）
// 非数字字符全部剔除；剔完为空则返回空串
func FormatIDR(val string) string {
	digits := stripNonDigits(val)
	if digits == "" {
		return ""
	}
	// 对齐 JS Number() 的行为：去掉前导零
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return groupThousands(digits)
}

// FormatIDRNumber 整数版本，负数视为非法输入返回空串
func FormatIDRNumber(n int64) string {
	if n < 0 {
		return ""
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

// ParseIDR 去掉分组符后解析为非负整数，解析失败一律返回 0
func ParseIDR(formatted string) int64 {
	cleaned := strings.ReplaceAll(formatted, ".", "")
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// groupThousands 从右往左每 3 位插一个 "."
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
