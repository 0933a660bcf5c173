package model

import (
	"encoding/json"
	"testing"
	"time"
)

// ── ParseFlexDate 测试 ──

func TestParseFlexDate_ISO(t *testing.T) {
	d := ParseFlexDate("2024-09-05")
	if d.Time == nil {
		t.Fatal("ISO 日期应解析成功")
	}
	if d.Time.Year() != 2024 || d.Time.Month() != time.September || d.Time.Day() != 5 {
		t.Errorf("期望 2024-09-05，实际=%v", d.Time)
	}
	if d.Raw != "" {
		t.Errorf("解析成功时 Raw 应为空，实际=%q", d.Raw)
	}
}

func TestParseFlexDate_RFC3339(t *testing.T) {
	d := ParseFlexDate("2024-09-05T10:30:00Z")
	if d.Time == nil {
		t.Fatal("RFC3339 时间戳应解析成功")
	}
	if d.Time.Hour() != 10 {
		t.Errorf("期望 Hour=10，实际=%d", d.Time.Hour())
	}
}

func TestParseFlexDate_Loose(t *testing.T) {
	// 宽松格式也要能解析
	cases := []string{"Sep 5, 2024", "9/5/2024", "September 5, 2024"}
	for _, s := range cases {
		d := ParseFlexDate(s)
		if d.Time == nil {
			t.Errorf("宽松格式 %q 应解析成功，实际 Raw=%q", s, d.Raw)
		}
	}
}

func TestParseFlexDate_Unparseable(t *testing.T) {
	d := ParseFlexDate("Week 3")
	if d.Time != nil {
		t.Errorf("自然语言日期不应解析出时刻，实际=%v", d.Time)
	}
	if d.Raw != "Week 3" {
		t.Errorf("解析失败应保留原文，实际=%q", d.Raw)
	}
}

func TestParseFlexDate_Empty(t *testing.T) {
	for _, s := range []string{"", "   "} {
		d := ParseFlexDate(s)
		if !d.IsZero() {
			t.Errorf("空白输入 %q 应为零值日期，实际 Time=%v Raw=%q", s, d.Time, d.Raw)
		}
	}
}

// ── Format 测试 ──

func TestFlexDate_Format(t *testing.T) {
	d := ParseFlexDate("2024-09-02") // 周一
	if got := d.Format(); got != "Mon, 9/2" {
		t.Errorf("期望 Mon, 9/2，实际=%q", got)
	}

	raw := FlexDate{Raw: "Week 3"}
	if got := raw.Format(); got != "Week 3" {
		t.Errorf("未解析日期应原样返回原文，实际=%q", got)
	}

	if got := (FlexDate{}).Format(); got != "" {
		t.Errorf("缺失日期应渲染为空串，实际=%q", got)
	}
}

// ── JSON 序列化测试 ──

func TestFlexDate_UnmarshalNeverFails(t *testing.T) {
	// 脏日期只降级，绝不让整个 Course 反序列化失败
	inputs := []string{`null`, `""`, `"2024-09-05"`, `"TBD"`, `42`}
	for _, in := range inputs {
		var d FlexDate
		if err := json.Unmarshal([]byte(in), &d); err != nil {
			t.Errorf("输入 %s 不应报错: %v", in, err)
		}
	}
}

func TestFlexDate_UnmarshalDegrades(t *testing.T) {
	var d FlexDate
	if err := json.Unmarshal([]byte(`"sometime in October"`), &d); err != nil {
		t.Fatalf("反序列化不应报错: %v", err)
	}
	if d.Time != nil {
		t.Error("无法解析的日期 Time 应为 nil")
	}
	if d.Raw != "sometime in October" {
		t.Errorf("原文应保留，实际=%q", d.Raw)
	}
}

func TestFlexDate_MarshalRoundTrip(t *testing.T) {
	// 已解析 → RFC3339
	parsed := ParseFlexDate("2024-09-05")
	b, err := json.Marshal(parsed)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	var back FlexDate
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if back.Time == nil || !back.Time.Equal(*parsed.Time) {
		t.Errorf("已解析日期应往返保持，实际=%v", back.Time)
	}

	// 未解析 → 原文透传
	raw := FlexDate{Raw: "Week 3"}
	b, _ = json.Marshal(raw)
	if string(b) != `"Week 3"` {
		t.Errorf("未解析日期应透传原文，实际=%s", b)
	}

	// 缺失 → null
	b, _ = json.Marshal(FlexDate{})
	if string(b) != "null" {
		t.Errorf("缺失日期应序列化为 null，实际=%s", b)
	}
}

func TestCourse_UnmarshalWithDirtyDates(t *testing.T) {
	// 单条脏日期不得拖垮整个 Course
	payload := `{
		"courseTitle": "Intro to Biology",
		"lectureSchedule": [
			{"date": "2024-09-05", "topic": "Cells", "readings": ["Ch. 1"]},
			{"date": "Week 3", "topic": "DNA", "readings": []}
		],
		"keyDates": {
			"exams": [{"name": "Midterm", "date": "TBD", "coverage": "Ch. 1-5", "points": 100}],
			"assignments": []
		},
		"gradingBreakdown": []
	}`

	var c Course
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatalf("含脏日期的 Course 反序列化不应失败: %v", err)
	}
	if c.LectureSchedule[0].Date.Time == nil {
		t.Error("正常日期应解析成功")
	}
	if c.LectureSchedule[1].Date.Raw != "Week 3" {
		t.Errorf("脏日期应保留原文，实际=%q", c.LectureSchedule[1].Date.Raw)
	}
	if c.KeyDates.Exams[0].Date.Raw != "TBD" {
		t.Errorf("期望 Raw=TBD，实际=%q", c.KeyDates.Exams[0].Date.Raw)
	}
}
