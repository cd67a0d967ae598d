package domain

import (
	"fmt"
	"time"
)

// 这些键的格式必须和前端写入 localStorage 的格式完全一致，
// 否则无法与已有的持久化数据互通
const (
	DateKeyLayout  = "2006-01-02" // 日期键，标识某一天的请假档位列表
	MonthKeyLayout = "2006-01"    // 月份键，标识某个月独立的员工快照
)

// Employee 是请假排班中的员工，用 name 来和档位互相匹配
type Employee struct {
	Name                  string `json:"name"`
	MonthlyLeaveAllowance int    `json:"monthlyLeaveAllowance"`
}

// LeaveSlot 是某一天中的一个请假档位，text 为被指派员工的姓名，
// 空字符串表示这个档位还没有被指派（和档位不存在是两回事）
type LeaveSlot struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// VacationMap 是日期键到当天请假档位列表的映射，每天最多两个档位
type VacationMap map[string][]LeaveSlot

// MonthlyRosters 是月份键到当月员工快照的映射，
// 每个月持有自己的一份拷贝，修改某个月的快照不会影响其它月份
type MonthlyRosters map[string][]Employee

func DateKeyOf(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func MonthKeyOf(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期键 %q 格式错误", key)
	}
	return t, nil
}

func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("月份键 %q 格式错误", key)
	}
	return t, nil
}

// MonthKeyOfDate 返回某个日期键所属月份的月份键
func MonthKeyOfDate(dateKey string) (string, error) {
	t, err := ParseDateKey(dateKey)
	if err != nil {
		return "", err
	}
	return MonthKeyOf(t), nil
}
