package seed

import (
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/leave"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/repository"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/utils"
)

// SeedEmployees 用随机员工整体替换全局名单
func SeedEmployees(repo *repository.Repository, n int) ([]domain.Employee, error) {
	employees := utils.GenerateRandomEmployees(n)
	if err := repo.SetEmployees(employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// SeedMonthVacations 为指定月份随机生成请假档位并随机指派。
// 所有写入都经过 Planner，因此生成的数据一定满足两条上限约束
func SeedMonthVacations(repo *repository.Repository, monthKey string) (int, error) {
	anchor, err := domain.ParseMonthKey(monthKey)
	if err != nil {
		return 0, err
	}

	employees, err := repo.GetEmployees()
	if err != nil {
		return 0, err
	}
	rosters, err := repo.GetMonthlyRosters()
	if err != nil {
		return 0, err
	}
	vacations, err := repo.GetVacations()
	if err != nil {
		return 0, err
	}

	p := leave.NewPlanner(employees, rosters, vacations)
	roster := p.RosterForMonth(monthKey)

	created := 0
	for _, day := range leave.BuildMonthGrid(anchor).Days {
		dateKey := domain.DateKeyOf(day)

		for i := 0; i < rand.Intn(leave.MaxSlotsPerDay+1); i++ {
			slot, err := p.AddSlot(dateKey)
			if err != nil {
				break
			}
			created++

			// 指派失败（比如额度用完了）就让档位保持空白
			if len(roster) > 0 {
				emp := roster[rand.Intn(len(roster))]
				_ = p.AssignSlot(dateKey, slot.ID, emp.Name)
			}
		}
	}

	if err := repo.SetMonthlyRosters(p.Rosters()); err != nil {
		return 0, err
	}
	if err := repo.SetVacations(p.Vacations()); err != nil {
		return 0, err
	}

	return created, nil
}

// CurrentMonthKey 返回今天所在月份的月份键
func CurrentMonthKey() string {
	return domain.MonthKeyOf(time.Now())
}
