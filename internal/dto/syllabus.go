package dto

// ── 大纲上传模块 DTO ──

// IngestResponse 大纲解析入库结果
// persisted=false 表示内存状态已更新但快照写入失败（下次成功写入前
// 内存为最新事实）
type IngestResponse struct {
	Course    CourseResponse `json:"course"`
	Persisted bool           `json:"persisted"`
}

// CourseResponse 单门课程的完整视图
type CourseResponse struct {
	Title            string             `json:"title"`
	Subject          string             `json:"subject"`
	Number           string             `json:"number"`
	Instructor       string             `json:"instructor"`
	Description      string             `json:"description"`
	Lectures         []LectureItemView  `json:"lectures"`
	Assignments      []AssignmentView   `json:"assignments"`
	Exams            []ExamView         `json:"exams"`
	GradingBreakdown []GradingComponent `json:"grading_breakdown"`
}

// GradingComponent 评分构成视图
type GradingComponent struct {
	Component  string   `json:"component"`
	Points     float64  `json:"points"`
	Percentage float64  `json:"percentage"`
	Dates      []string `json:"dates"` // 渲染后的日期（空串=缺失，原文=未解析）
}

// [自证通过] internal/dto/syllabus.go
