package leave

import (
	"time"

	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

// MonthGrid 描述某个月在以周一为第一列的七列日历中的布局，
// 渲染时先放 LeadingBlanks 个空白格，再依次放 Days 中的每一天
type MonthGrid struct {
	MonthKey      string      `json:"monthKey"`
	Start         time.Time   `json:"start"`
	End           time.Time   `json:"end"`
	Days          []time.Time `json:"days"`
	LeadingBlanks int         `json:"leadingBlanks"`
}

// BuildMonthGrid 根据 anchor 所在的月份生成日历网格，anchor 是几号无关紧要
func BuildMonthGrid(anchor time.Time) *MonthGrid {
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	days := make([]time.Time, 0, end.Day())
	for d := 1; d <= end.Day(); d++ {
		days = append(days, time.Date(start.Year(), start.Month(), d, 0, 0, 0, 0, time.UTC))
	}

	// time.Weekday 中周日为 0，这里换算成周一在第 0 列的列号
	blanks := (int(start.Weekday()) + 6) % 7

	return &MonthGrid{
		MonthKey:      domain.MonthKeyOf(start),
		Start:         start,
		End:           end,
		Days:          days,
		LeadingBlanks: blanks,
	}
}

// PreviousMonth 返回 anchor 上一个月的第一天，不存在范围限制
func PreviousMonth(anchor time.Time) time.Time {
	return time.Date(anchor.Year(), anchor.Month()-1, 1, 0, 0, 0, 0, time.UTC)
}

// NextMonth 返回 anchor 下一个月的第一天
func NextMonth(anchor time.Time) time.Time {
	return time.Date(anchor.Year(), anchor.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}
