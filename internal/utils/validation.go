package utils

import (
	"fmt"
	"strings"

	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

// NormalizeRoster 去掉每个姓名两侧的空白。指派和改名在比较姓名时
// 都用修剪后的形式，名单里带空白的姓名会永远无法被指派
func NormalizeRoster(employees []domain.Employee) []domain.Employee {
	normalized := make([]domain.Employee, len(employees))
	for i, emp := range employees {
		emp.Name = strings.TrimSpace(emp.Name)
		normalized[i] = emp
	}
	return normalized
}

// ValidateRoster 检查一份员工名单是否可以被保存：
// 额度不能是负数，非空姓名不能重复。空姓名表示占位行，允许多条
func ValidateRoster(employees []domain.Employee) error {
	seen := map[string]int{}

	for i, emp := range employees {
		if emp.MonthlyLeaveAllowance < 0 {
			return fmt.Errorf("第 %d 个员工的请假额度不能是负数", i+1)
		}

		if emp.Name == "" {
			continue
		}

		if j, exists := seen[emp.Name]; exists {
			return fmt.Errorf("第 %d 个员工和第 %d 个员工的姓名重复", i+1, j+1)
		}
		seen[emp.Name] = i
	}

	return nil
}
