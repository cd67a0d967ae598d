package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

// 请假排班的三条记录整体以 JSON 存在 redis 中，键名沿用前端
// localStorage 的 mueen_ 前缀，保证和已有的持久化数据互通。
// 读写都是整条记录的读改写，不存在部分持久化
const (
	employeesKey        = "mueen_employees"
	monthlyEmployeesKey = "mueen_monthly_employees"
	vacationsKey        = "mueen_vacations"
)

func (r *Repository) getJSON(key string, v any) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	val, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// 键不存在等价于空记录
			return nil
		}
		return err
	}

	return json.Unmarshal([]byte(val), v)
}

func (r *Repository) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Redis.OperationExpiration)*time.Minute)
	defer cancel()

	return r.rdb.Set(ctx, key, data, 0).Err()
}

func (r *Repository) GetEmployees() ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	if err := r.getJSON(employeesKey, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *Repository) SetEmployees(employees []domain.Employee) error {
	return r.setJSON(employeesKey, employees)
}

func (r *Repository) GetMonthlyRosters() (domain.MonthlyRosters, error) {
	rosters := domain.MonthlyRosters{}
	if err := r.getJSON(monthlyEmployeesKey, &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

func (r *Repository) SetMonthlyRosters(rosters domain.MonthlyRosters) error {
	return r.setJSON(monthlyEmployeesKey, rosters)
}

func (r *Repository) GetVacations() (domain.VacationMap, error) {
	vacations := domain.VacationMap{}
	if err := r.getJSON(vacationsKey, &vacations); err != nil {
		return nil, err
	}
	return vacations, nil
}

func (r *Repository) SetVacations(vacations domain.VacationMap) error {
	return r.setJSON(vacationsKey, vacations)
}
