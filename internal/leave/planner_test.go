package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

func newTestPlanner() *Planner {
	return NewPlanner([]domain.Employee{
		{Name: "王伟", MonthlyLeaveAllowance: 2},
		{Name: "李芳", MonthlyLeaveAllowance: 1},
		{Name: "张敏", MonthlyLeaveAllowance: 0},
	}, nil, nil)
}

func TestAddSlot(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	first, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Empty(t, first.Text)

	second, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// 第三个档位会被拒绝，且当天保持原样
	third, err := p.AddSlot("2025-06-10")
	assert.ErrorIs(t, err, ErrDayFull)
	assert.Nil(t, third)
	assert.Len(t, p.Slots("2025-06-10"), 2)

	// 其它日期不受影响
	_, err = p.AddSlot("2025-06-11")
	assert.NoError(t, err)
}

func TestAddSlot_InvalidDateKey(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	_, err := p.AddSlot("2025/06/10")
	assert.Error(t, err)
	assert.Empty(t, p.Vacations())
}

func TestDeleteSlot(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)

	p.DeleteSlot("2025-06-10", slot.ID)
	assert.Empty(t, p.Slots("2025-06-10"))

	// 删除不存在的档位是空操作
	p.DeleteSlot("2025-06-10", slot.ID)
	p.DeleteSlot("2025-07-01", "no-such-slot")
	assert.Empty(t, p.Slots("2025-06-10"))
}

func TestAssignSlot(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)

	require.NoError(t, p.AssignSlot("2025-06-10", slot.ID, "王伟"))
	assert.Equal(t, "王伟", p.Slots("2025-06-10")[0].Text)
	assert.Equal(t, 1, p.CountForEmployee("王伟", "2025-06"))

	// 指派给同一个员工是空操作
	require.NoError(t, p.AssignSlot("2025-06-10", slot.ID, "王伟"))
	assert.Equal(t, 1, p.CountForEmployee("王伟", "2025-06"))

	// 姓名两侧的空白会被去掉
	slot2, err := p.AddSlot("2025-06-11")
	require.NoError(t, err)
	require.NoError(t, p.AssignSlot("2025-06-11", slot2.ID, " 李芳 "))
	assert.Equal(t, "李芳", p.Slots("2025-06-11")[0].Text)
}

func TestAssignSlot_Rejections(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)

	assert.ErrorIs(t, p.AssignSlot("2025-06-10", slot.ID, ""), ErrEmptyEmployeeName)
	assert.ErrorIs(t, p.AssignSlot("2025-06-10", slot.ID, "   "), ErrEmptyEmployeeName)
	assert.ErrorIs(t, p.AssignSlot("2025-06-10", slot.ID, "赵强"), ErrUnknownEmployee)
	assert.ErrorIs(t, p.AssignSlot("2025-06-10", "no-such-slot", "王伟"), ErrSlotNotFound)

	// 额度为 0 的员工永远无法被指派
	assert.ErrorIs(t, p.AssignSlot("2025-06-10", slot.ID, "张敏"), ErrAllowanceExhausted)

	// 被拒绝的指派不会留下任何痕迹
	assert.Empty(t, p.Slots("2025-06-10")[0].Text)
	assert.Equal(t, 0, p.CountForEmployee("张敏", "2025-06"))
}

func TestAssignSlot_AllowanceExhausted(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	// 李芳的额度是 1，第二次指派会被拒绝
	first, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	require.NoError(t, p.AssignSlot("2025-06-10", first.ID, "李芳"))

	second, err := p.AddSlot("2025-06-11")
	require.NoError(t, err)
	assert.ErrorIs(t, p.AssignSlot("2025-06-11", second.ID, "李芳"), ErrAllowanceExhausted)

	// 下个月的额度独立计算
	nextMonth, err := p.AddSlot("2025-07-01")
	require.NoError(t, err)
	assert.NoError(t, p.AssignSlot("2025-07-01", nextMonth.ID, "李芳"))
}

func TestAssignSlot_ReassignFreesAllowance(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	require.NoError(t, p.AssignSlot("2025-06-10", slot.ID, "李芳"))

	// 改派给王伟后李芳的额度自然释放
	require.NoError(t, p.AssignSlot("2025-06-10", slot.ID, "王伟"))
	assert.Equal(t, 0, p.CountForEmployee("李芳", "2025-06"))
	assert.Equal(t, 1, p.CountForEmployee("王伟", "2025-06"))

	other, err := p.AddSlot("2025-06-11")
	require.NoError(t, err)
	assert.NoError(t, p.AssignSlot("2025-06-11", other.ID, "李芳"))
}

func TestMoveSlot(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	require.NoError(t, p.AssignSlot("2025-06-10", slot.ID, "王伟"))

	require.NoError(t, p.MoveSlot("2025-06-10", "2025-06-12", slot.ID))
	assert.Empty(t, p.Slots("2025-06-10"))
	require.Len(t, p.Slots("2025-06-12"), 1)

	// 档位的 ID 和指派在移动后保持不变
	moved := p.Slots("2025-06-12")[0]
	assert.Equal(t, slot.ID, moved.ID)
	assert.Equal(t, "王伟", moved.Text)
}

func TestMoveSlot_DestinationFull(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)

	_, err = p.AddSlot("2025-06-12")
	require.NoError(t, err)
	_, err = p.AddSlot("2025-06-12")
	require.NoError(t, err)

	// 目标天已满，源那天保持原样
	assert.ErrorIs(t, p.MoveSlot("2025-06-10", "2025-06-12", slot.ID), ErrDayFull)
	assert.Len(t, p.Slots("2025-06-10"), 1)
	assert.Len(t, p.Slots("2025-06-12"), 2)
}

func TestMoveSlot_SameDayReorder(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	first, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	second, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)

	// 当天已满，但同一天内的重排总是合法的
	require.NoError(t, p.MoveSlot("2025-06-10", "2025-06-10", first.ID))

	slots := p.Slots("2025-06-10")
	require.Len(t, slots, 2)
	assert.Equal(t, second.ID, slots[0].ID)
	assert.Equal(t, first.ID, slots[1].ID)
}

func TestMoveSlot_NotFound(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	assert.ErrorIs(t, p.MoveSlot("2025-06-10", "2025-06-11", "no-such-slot"), ErrSlotNotFound)
}

func TestRosterForMonth_Snapshot(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	june := p.RosterForMonth("2025-06")
	require.Len(t, june, 3)

	// 修改六月的快照不会影响七月
	name := "陈杰"
	require.NoError(t, p.UpdateEmployee("2025-06", 0, &name, nil))

	july := p.RosterForMonth("2025-07")
	assert.Equal(t, "王伟", july[0].Name)
	assert.Equal(t, "陈杰", p.RosterForMonth("2025-06")[0].Name)
}

func TestUpdateEmployee_RenameCascade(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	juneSlot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	require.NoError(t, p.AssignSlot("2025-06-10", juneSlot.ID, "王伟"))

	julySlot, err := p.AddSlot("2025-07-01")
	require.NoError(t, err)
	require.NoError(t, p.AssignSlot("2025-07-01", julySlot.ID, "王伟"))

	name := "王小伟"
	require.NoError(t, p.UpdateEmployee("2025-06", 0, &name, nil))

	// 六月的档位跟着改名，七月的不受影响
	assert.Equal(t, "王小伟", p.Slots("2025-06-10")[0].Text)
	assert.Equal(t, "王伟", p.Slots("2025-07-01")[0].Text)

	// 改名后统计跟随新名字
	assert.Equal(t, 1, p.CountForEmployee("王小伟", "2025-06"))
	assert.Equal(t, 0, p.CountForEmployee("王伟", "2025-06"))
}

func TestUpdateEmployee_Rejections(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	name := "李芳"
	assert.ErrorIs(t, p.UpdateEmployee("2025-06", 0, &name, nil), ErrDuplicateEmployeeName)

	negative := -1
	assert.ErrorIs(t, p.UpdateEmployee("2025-06", 0, nil, &negative), ErrNegativeAllowance)

	allowance := 3
	assert.ErrorIs(t, p.UpdateEmployee("2025-06", 99, nil, &allowance), ErrEmployeeNotFound)
	assert.ErrorIs(t, p.UpdateEmployee("2025-06", -1, nil, &allowance), ErrEmployeeNotFound)

	// 被拒绝的修改不会留下任何痕迹
	assert.Equal(t, "王伟", p.RosterForMonth("2025-06")[0].Name)
	assert.Equal(t, 2, p.RosterForMonth("2025-06")[0].MonthlyLeaveAllowance)
}

func TestUpdateEmployee_Allowance(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	// 把张敏的额度从 0 提到 1 之后就可以指派了
	allowance := 1
	require.NoError(t, p.UpdateEmployee("2025-06", 2, nil, &allowance))

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	assert.NoError(t, p.AssignSlot("2025-06-10", slot.ID, "张敏"))

	// 把额度降到已用数量以下不影响已有的指派
	zero := 0
	require.NoError(t, p.UpdateEmployee("2025-06", 2, nil, &zero))
	assert.Equal(t, "张敏", p.Slots("2025-06-10")[0].Text)
	assert.Equal(t, 1, p.CountForEmployee("张敏", "2025-06"))
}

func TestCounts(t *testing.T) {
	t.Parallel()
	p := newTestPlanner()

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	require.NoError(t, p.AssignSlot("2025-06-10", slot.ID, "王伟"))

	assert.Equal(t, []int{1, 0, 0}, p.Counts("2025-06"))
	assert.Equal(t, []int{0, 0, 0}, p.Counts("2025-07"))
}

func TestHasRemainingAllowance(t *testing.T) {
	t.Parallel()
	p := NewPlanner([]domain.Employee{
		{Name: "王伟", MonthlyLeaveAllowance: 1},
	}, nil, nil)

	assert.True(t, p.HasRemainingAllowance("2025-06"))

	slot, err := p.AddSlot("2025-06-10")
	require.NoError(t, err)
	require.NoError(t, p.AssignSlot("2025-06-10", slot.ID, "王伟"))

	assert.False(t, p.HasRemainingAllowance("2025-06"))

	// 空白姓名的占位行不参与判断
	empty := NewPlanner([]domain.Employee{{Name: "", MonthlyLeaveAllowance: 5}}, nil, nil)
	assert.False(t, empty.HasRemainingAllowance("2025-06"))
}
