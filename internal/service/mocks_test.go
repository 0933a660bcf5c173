package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/lpendeavors/syllabus-planner/internal/model"
	"github.com/lpendeavors/syllabus-planner/internal/repository"
	"github.com/lpendeavors/syllabus-planner/internal/store"
)

// ── Mock CourseExtractor ──

type mockExtractor struct {
	course      model.Course
	err         error
	gotText     string
	gotMimeType string
	imageCalled bool
}

func (m *mockExtractor) ExtractCourse(_ context.Context, text string) (model.Course, error) {
	m.gotText = text
	return m.course, m.err
}

func (m *mockExtractor) ExtractCourseFromImage(_ context.Context, mimeType string, _ []byte) (model.Course, error) {
	m.imageCalled = true
	m.gotMimeType = mimeType
	return m.course, m.err
}

// ── Mock SnapshotRepository ──

type mockSnapshotRepo struct {
	data    []byte
	saveErr error
}

func (m *mockSnapshotRepo) Load(_ context.Context) ([]byte, error) {
	if m.data == nil {
		return nil, repository.ErrSnapshotNotFound
	}
	return m.data, nil
}

func (m *mockSnapshotRepo) Save(_ context.Context, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = data
	return nil
}

func (m *mockSnapshotRepo) Clear(_ context.Context) error {
	m.data = nil
	return nil
}

// ── 测试辅助 ──

func newTestStore() (*store.Store, *mockSnapshotRepo) {
	snap := &mockSnapshotRepo{}
	return store.New(snap, zap.NewNop()), snap
}

func parsedCourse(title string) model.Course {
	return model.Course{
		Title:      title,
		Subject:    "BIO",
		Number:     "101",
		Instructor: "Dr. Smith",
		LectureSchedule: []model.LectureItem{
			{Date: model.ParseFlexDate("2024-09-05"), Topic: "Cells", Readings: []string{"Ch. 1"}},
			{Date: model.ParseFlexDate("Week 3"), Topic: "DNA"},
		},
		KeyDates: model.KeyDates{
			Assignments: []model.AssignmentItem{
				{Name: "Lab Report 1", Date: model.ParseFlexDate("2024-09-20"), Points: 50},
			},
			Exams: []model.ExamItem{
				{Name: "Midterm", Date: model.ParseFlexDate("2024-10-15"), Coverage: "Ch. 1-5", Points: 100},
			},
		},
		GradingBreakdown: []model.GradingComponent{
			{Component: "Exams", Points: 100, Percentage: 40},
		},
	}
}
