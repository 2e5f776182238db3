package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// ==================== AIService 文案服务 ====================

// 兜底文案：草拟接口对外永远返回一段可直接展示的文字，
// 任何失败都收敛到这两句，不往前端抛错误
const (
	draftFallbackEmpty = "Gagal membuat draf pesan."
	draftFallbackError = "Terjadi kesalahan saat menghubungi AI."
)

// AIConfig Gemini 接口配置
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// DefaultAIConfig 默认配置
func DefaultAIConfig(apiKey string) AIConfig {
	return AIConfig{
		APIKey:  apiKey,
		Model:   "gemini-3-flash-preview",
		BaseURL: "https://generativelanguage.googleapis.com",
		Timeout: 30 * time.Second,
	}
}

// AIService 达人私信草拟服务
type AIService struct {
	config AIConfig
	client *resty.Client
}

// NewAIService 创建文案服务
func NewAIService(config AIConfig) *AIService {
	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetHeader("Content-Type", "application/json")

	return &AIService{config: config, client: client}
}

// ==================== 请求/响应结构 ====================

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// ==================== 草拟 ====================

// DraftCreatorMessage 给达人草拟一段合作邀请私信
// 永不返回错误：调用失败或返回为空时给固定兜底文案
func (s *AIService) DraftCreatorMessage(ctx context.Context, creatorName, storeName, productName string) string {
	prompt := fmt.Sprintf(
		"Draft a professional and friendly message to an influencer/creator named %s on behalf of %s. "+
			"We want to invite them to collaborate and review our product: %s. "+
			"Keep it concise and enthusiastic. Provide the output in Indonesian.",
		creatorName, storeName, productName,
	)

	var result generateContentResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("key", s.config.APIKey).
		SetBody(generateContentRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", s.config.Model))

	if err != nil {
		logrus.Warnf("[AI] 调用 Gemini 失败: %v", err)
		return draftFallbackError
	}
	if resp.IsError() {
		logrus.Warnf("[AI] Gemini 返回 %d: %s", resp.StatusCode(), resp.String())
		return draftFallbackError
	}

	text := extractText(&result)
	if text == "" {
		return draftFallbackEmpty
	}
	return text
}

func extractText(resp *generateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String())
}
