package leave

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

// 每天最多可以安排的请假档位数量
const MaxSlotsPerDay = 2

// Planner 持有请假排班的全部状态：全局员工名单、各月的员工快照
// 以及每天的请假档位。所有修改状态的操作都必须经过 Planner 的方法，
// 这样两条上限约束（每天最多两个档位、每人每月不超过请假额度）
// 就不存在绕过检查的写入路径。操作被拒绝时状态不会有任何变化。
type Planner struct {
	employees []domain.Employee
	rosters   domain.MonthlyRosters
	vacations domain.VacationMap
}

func NewPlanner(employees []domain.Employee, rosters domain.MonthlyRosters, vacations domain.VacationMap) *Planner {
	if rosters == nil {
		rosters = domain.MonthlyRosters{}
	}
	if vacations == nil {
		vacations = domain.VacationMap{}
	}

	return &Planner{
		employees: employees,
		rosters:   rosters,
		vacations: vacations,
	}
}

func (p *Planner) Rosters() domain.MonthlyRosters {
	return p.rosters
}

func (p *Planner) Vacations() domain.VacationMap {
	return p.vacations
}

// RosterForMonth 返回某个月的员工快照。第一次浏览该月时，
// 从全局名单拷贝一份作为快照存下来，此后这个月的名单独立演化
func (p *Planner) RosterForMonth(monthKey string) []domain.Employee {
	if roster, exists := p.rosters[monthKey]; exists {
		return roster
	}

	snapshot := make([]domain.Employee, len(p.employees))
	copy(snapshot, p.employees)
	p.rosters[monthKey] = snapshot

	return snapshot
}

// Slots 返回某一天的请假档位列表，顺序只影响展示，没有业务含义
func (p *Planner) Slots(dateKey string) []domain.LeaveSlot {
	slots, exists := p.vacations[dateKey]
	if !exists {
		return []domain.LeaveSlot{}
	}
	return slots
}

// CountForEmployee 统计某个员工在某个月内被指派的档位数量。
// 这个数字永远是现算的，不会被存储
func (p *Planner) CountForEmployee(name string, monthKey string) int {
	if name == "" {
		return 0
	}

	prefix := monthKey + "-"
	count := 0
	for dateKey, slots := range p.vacations {
		if !strings.HasPrefix(dateKey, prefix) {
			continue
		}
		for _, slot := range slots {
			if slot.Text == name {
				count++
			}
		}
	}

	return count
}

// Counts 按照当月快照的顺序返回每个员工已用的请假数量
func (p *Planner) Counts(monthKey string) []int {
	roster := p.RosterForMonth(monthKey)
	counts := make([]int, len(roster))
	for i, emp := range roster {
		counts[i] = p.CountForEmployee(emp.Name, monthKey)
	}
	return counts
}

// HasRemainingAllowance 报告当月是否还有任何员工有剩余额度，
// 用于在所有人都满额时禁用新增档位的入口。这只是界面上的提示，
// 空档位本身是合法的
func (p *Planner) HasRemainingAllowance(monthKey string) bool {
	for _, emp := range p.RosterForMonth(monthKey) {
		if emp.Name == "" {
			continue
		}
		if p.CountForEmployee(emp.Name, monthKey) < emp.MonthlyLeaveAllowance {
			return true
		}
	}
	return false
}

// AddSlot 在某一天新增一个空档位。当天已有两个档位时拒绝，
// 拒绝时不会生成新的档位 ID
func (p *Planner) AddSlot(dateKey string) (*domain.LeaveSlot, error) {
	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return nil, err
	}

	slots := p.vacations[dateKey]
	if len(slots) >= MaxSlotsPerDay {
		return nil, ErrDayFull
	}

	slot := domain.LeaveSlot{ID: uuid.NewString()}
	p.vacations[dateKey] = append(slots, slot)

	return &slot, nil
}

// DeleteSlot 无条件删除某个档位，删除不存在的档位是空操作
func (p *Planner) DeleteSlot(dateKey string, slotID string) {
	slots := p.vacations[dateKey]
	for i, slot := range slots {
		if slot.ID == slotID {
			p.vacations[dateKey] = append(slots[:i], slots[i+1:]...)
			return
		}
	}
}

// AssignSlot 把某个档位指派给一个员工。姓名必须在当月快照中，
// 且该员工的已用数量必须小于额度；把档位改派给另一个员工时
// 检查的是新员工的额度，旧员工的数量随之自然减少
func (p *Planner) AssignSlot(dateKey string, slotID string, employeeName string) error {
	monthKey, err := domain.MonthKeyOfDate(dateKey)
	if err != nil {
		return err
	}

	// 空姓名不是清空档位的方式，清空应该通过删除档位来完成
	employeeName = strings.TrimSpace(employeeName)
	if employeeName == "" {
		return ErrEmptyEmployeeName
	}

	roster := p.RosterForMonth(monthKey)
	var target *domain.Employee
	for i := range roster {
		if roster[i].Name == employeeName {
			target = &roster[i]
			break
		}
	}
	if target == nil {
		return ErrUnknownEmployee
	}

	slots := p.vacations[dateKey]
	idx := -1
	for i := range slots {
		if slots[i].ID == slotID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrSlotNotFound
	}

	// 指派给同一个员工是空操作，不占用新的额度
	if slots[idx].Text == employeeName {
		return nil
	}

	if p.CountForEmployee(employeeName, monthKey) >= target.MonthlyLeaveAllowance {
		return ErrAllowanceExhausted
	}

	slots[idx].Text = employeeName
	return nil
}

// MoveSlot 把一个档位从一天挪到另一天，移出和插入是同一个原子操作，
// 不存在档位同时出现在两天或两天都没有的中间状态。目标天已满时拒绝，
// 源那天保持原样；同一天内的重排总是合法的
func (p *Planner) MoveSlot(srcDate string, dstDate string, slotID string) error {
	if _, err := domain.ParseDateKey(srcDate); err != nil {
		return err
	}
	if _, err := domain.ParseDateKey(dstDate); err != nil {
		return err
	}

	src := p.vacations[srcDate]
	idx := -1
	for i := range src {
		if src[i].ID == slotID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrSlotNotFound
	}

	moved := src[idx]

	if srcDate == dstDate {
		p.vacations[srcDate] = append(append(src[:idx:idx], src[idx+1:]...), moved)
		return nil
	}

	if len(p.vacations[dstDate]) >= MaxSlotsPerDay {
		return ErrDayFull
	}

	p.vacations[srcDate] = append(src[:idx:idx], src[idx+1:]...)
	p.vacations[dstDate] = append(p.vacations[dstDate], moved)

	return nil
}

// UpdateEmployee 修改某个月快照中一个员工的姓名或额度。
// 改名时会级联改写本月内所有指向旧名字的档位，否则这些档位
// 和统计会悄悄失联；改写只限于本月的日期，不会影响其它月份
func (p *Planner) UpdateEmployee(monthKey string, index int, name *string, allowance *int) error {
	if _, err := domain.ParseMonthKey(monthKey); err != nil {
		return err
	}

	roster := p.RosterForMonth(monthKey)
	if index < 0 || index >= len(roster) {
		return ErrEmployeeNotFound
	}

	if allowance != nil && *allowance < 0 {
		return ErrNegativeAllowance
	}

	if name != nil {
		newName := strings.TrimSpace(*name)
		oldName := roster[index].Name

		if newName != oldName {
			for i, emp := range roster {
				if i != index && emp.Name != "" && emp.Name == newName {
					return ErrDuplicateEmployeeName
				}
			}

			roster[index].Name = newName

			// oldName 为空说明旧名字不可能出现在任何档位上
			if oldName != "" {
				prefix := monthKey + "-"
				for dateKey, slots := range p.vacations {
					if !strings.HasPrefix(dateKey, prefix) {
						continue
					}
					for i := range slots {
						if slots[i].Text == oldName {
							slots[i].Text = newName
						}
					}
				}
			}
		}
	}

	if allowance != nil {
		roster[index].MonthlyLeaveAllowance = *allowance
	}

	return nil
}
