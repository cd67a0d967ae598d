package leave

import "errors"

// 这些错误都表示操作被拒绝，拒绝时状态一定不会发生任何变化
var (
	ErrDayFull               = errors.New("当天的请假档位已满")
	ErrAllowanceExhausted    = errors.New("该员工本月的请假额度已用完")
	ErrEmptyEmployeeName     = errors.New("员工姓名不能为空")
	ErrUnknownEmployee       = errors.New("该员工不在本月的员工名单中")
	ErrSlotNotFound          = errors.New("请假档位不存在")
	ErrEmployeeNotFound      = errors.New("员工不存在")
	ErrDuplicateEmployeeName = errors.New("本月已存在同名员工")
	ErrNegativeAllowance     = errors.New("请假额度不能为负数")
)
