package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/lpendeavors/syllabus-planner/internal/dto"
	"github.com/lpendeavors/syllabus-planner/internal/model"
	"github.com/lpendeavors/syllabus-planner/internal/schedule"
	"github.com/lpendeavors/syllabus-planner/internal/store"
)

// ── 测试辅助 ──

func setupTestScheduleService(courses ...model.Course) (ScheduleService, *store.Store) {
	st, _ := newTestStore()
	for _, c := range courses {
		st.Append(context.Background(), schedule.AssignIDs(c))
	}
	svc := NewScheduleService(st, zap.NewNop())
	return svc, st
}

// ── GetSchedule 测试 ──

func TestScheduleService_GetSchedule_Empty(t *testing.T) {
	svc, _ := setupTestScheduleService()

	resp, err := svc.GetSchedule(context.Background())
	if err != nil {
		t.Fatalf("GetSchedule 应成功: %v", err)
	}
	if len(resp.Lectures) != 0 || len(resp.Assignments) != 0 || len(resp.Exams) != 0 {
		t.Error("空课表应返回空集合")
	}
	if resp.Lectures == nil || resp.Assignments == nil || resp.Exams == nil {
		t.Error("空集合应为空数组而非 null")
	}
}

func TestScheduleService_GetSchedule_FlattensAndSorts(t *testing.T) {
	bio := parsedCourse("Biology")
	chem := model.Course{
		Title: "Chemistry",
		LectureSchedule: []model.LectureItem{
			{Date: model.ParseFlexDate("2024-09-03"), Topic: "Atoms"},
		},
	}
	svc, _ := setupTestScheduleService(bio, chem)

	resp, err := svc.GetSchedule(context.Background())
	if err != nil {
		t.Fatalf("GetSchedule 应成功: %v", err)
	}

	// 两门课的讲座合并，未解析日期（Week 3）在最前，其余升序
	if len(resp.Lectures) != 3 {
		t.Fatalf("期望3次课，实际=%d", len(resp.Lectures))
	}
	if resp.Lectures[0].Topic != "DNA" || resp.Lectures[0].Date != nil {
		t.Errorf("未解析日期应排最前，实际=%+v", resp.Lectures[0])
	}
	if resp.Lectures[0].DateDisplay != "Week 3" {
		t.Errorf("未解析日期应按原文展示，实际=%q", resp.Lectures[0].DateDisplay)
	}
	if resp.Lectures[1].Topic != "Atoms" || resp.Lectures[2].Topic != "Cells" {
		t.Errorf("确定日期应升序，实际=%s,%s", resp.Lectures[1].Topic, resp.Lectures[2].Topic)
	}

	// 条目携带所属课程标题
	if resp.Lectures[1].Course != "Chemistry" {
		t.Errorf("期望Course=Chemistry，实际=%s", resp.Lectures[1].Course)
	}

	// 课程标题按上传顺序
	if len(resp.Courses) != 2 || resp.Courses[0] != "Biology" || resp.Courses[1] != "Chemistry" {
		t.Errorf("课程标题应按上传顺序，实际=%v", resp.Courses)
	}
}

// ── UpdateItem 测试 ──

func TestScheduleService_UpdateItem_Success(t *testing.T) {
	svc, st := setupTestScheduleService(parsedCourse("Biology"))
	target := st.Courses()[0].KeyDates.Exams[0].ID

	resp, err := svc.UpdateItem(context.Background(), target, &dto.UpdateItemRequest{
		Type:     "exam",
		Name:     "Final Exam",
		Date:     "2024-12-10",
		Coverage: "Ch. 1-10",
		Points:   200,
	})
	if err != nil {
		t.Fatalf("UpdateItem 应成功: %v", err)
	}
	if !resp.Found || !resp.Persisted {
		t.Errorf("期望 found=true persisted=true，实际=%+v", resp)
	}

	got := st.Courses()[0].KeyDates.Exams[0]
	if got.Name != "Final Exam" || got.ID != target {
		t.Errorf("条目应整体替换且 ID 不变，实际=%+v", got)
	}
}

func TestScheduleService_UpdateItem_FreeTextDate(t *testing.T) {
	svc, st := setupTestScheduleService(parsedCourse("Biology"))
	target := st.Courses()[0].LectureSchedule[0].ID

	resp, err := svc.UpdateItem(context.Background(), target, &dto.UpdateItemRequest{
		Type:  "lecture",
		Topic: "Cells",
		Date:  "Week 5",
	})
	if err != nil {
		t.Fatalf("UpdateItem 应成功: %v", err)
	}
	if !resp.Found {
		t.Fatal("按 ID 应命中条目")
	}

	got := st.Courses()[0].LectureSchedule[0]
	if got.Date.Time != nil || got.Date.Raw != "Week 5" {
		t.Errorf("自由文本日期应降级保留原文，实际=%+v", got.Date)
	}
}

func TestScheduleService_UpdateItem_NotFoundIsNoop(t *testing.T) {
	svc, _ := setupTestScheduleService(parsedCourse("Biology"))

	resp, err := svc.UpdateItem(context.Background(), "no-such-id", &dto.UpdateItemRequest{
		Type:  "lecture",
		Topic: "X",
	})
	if err != nil {
		t.Fatalf("未命中不应报错: %v", err)
	}
	if resp.Found {
		t.Error("未命中应返回 found=false")
	}
}

func TestScheduleService_UpdateItem_InvalidKind(t *testing.T) {
	svc, _ := setupTestScheduleService(parsedCourse("Biology"))

	_, err := svc.UpdateItem(context.Background(), "any-id", &dto.UpdateItemRequest{Type: "homework"})
	if !errors.Is(err, ErrInvalidItemKind) {
		t.Errorf("期望 ErrInvalidItemKind，实际: %v", err)
	}
}

// ── DeleteItem 测试 ──

func TestScheduleService_DeleteItem_Success(t *testing.T) {
	svc, st := setupTestScheduleService(parsedCourse("Biology"))
	target := st.Courses()[0].KeyDates.Assignments[0].ID

	resp, err := svc.DeleteItem(context.Background(), target, "assignment")
	if err != nil {
		t.Fatalf("DeleteItem 应成功: %v", err)
	}
	if !resp.Found {
		t.Fatal("按 ID 应命中条目")
	}
	if len(st.Courses()[0].KeyDates.Assignments) != 0 {
		t.Error("条目应被删除")
	}
}

func TestScheduleService_DeleteItem_InvalidKind(t *testing.T) {
	svc, _ := setupTestScheduleService(parsedCourse("Biology"))

	_, err := svc.DeleteItem(context.Background(), "any-id", "quiz")
	if !errors.Is(err, ErrInvalidItemKind) {
		t.Errorf("期望 ErrInvalidItemKind，实际: %v", err)
	}
}

// ── Clear 测试 ──

func TestScheduleService_Clear(t *testing.T) {
	svc, st := setupTestScheduleService(parsedCourse("Biology"))

	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("Clear 应成功: %v", err)
	}
	if len(st.Courses()) != 0 {
		t.Error("清空后课表应为空")
	}
}
