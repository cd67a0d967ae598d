package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/leave"
)

func TestValidateRoster(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRoster(nil))
	assert.NoError(t, ValidateRoster([]domain.Employee{
		{Name: "王伟", MonthlyLeaveAllowance: 2},
		{Name: "李芳", MonthlyLeaveAllowance: 0},
	}))

	// 空姓名是占位行，允许出现多条
	assert.NoError(t, ValidateRoster([]domain.Employee{
		{Name: "", MonthlyLeaveAllowance: 1},
		{Name: "", MonthlyLeaveAllowance: 1},
	}))

	assert.Error(t, ValidateRoster([]domain.Employee{
		{Name: "王伟", MonthlyLeaveAllowance: -1},
	}))

	assert.Error(t, ValidateRoster([]domain.Employee{
		{Name: "王伟", MonthlyLeaveAllowance: 1},
		{Name: "王伟", MonthlyLeaveAllowance: 2},
	}))
}

func TestNormalizeRoster(t *testing.T) {
	t.Parallel()

	normalized := NormalizeRoster([]domain.Employee{
		{Name: " 王伟 ", MonthlyLeaveAllowance: 2},
		{Name: "   ", MonthlyLeaveAllowance: 1},
	})

	assert.Equal(t, "王伟", normalized[0].Name)
	assert.Equal(t, 2, normalized[0].MonthlyLeaveAllowance)
	assert.Empty(t, normalized[1].Name)

	// 修剪后才暴露出来的重名要被拦下
	assert.Error(t, ValidateRoster(NormalizeRoster([]domain.Employee{
		{Name: "王伟", MonthlyLeaveAllowance: 1},
		{Name: " 王伟 ", MonthlyLeaveAllowance: 1},
	})))
}

// 保存时不修剪姓名的话，带空白的姓名在指派处会被当成陌生人
func TestNormalizeRoster_AssignableAfterSave(t *testing.T) {
	t.Parallel()

	raw := []domain.Employee{{Name: " 王伟 ", MonthlyLeaveAllowance: 2}}

	untrimmed := leave.NewPlanner(raw, nil, nil)
	slot, err := untrimmed.AddSlot("2025-06-10")
	require.NoError(t, err)
	assert.ErrorIs(t, untrimmed.AssignSlot("2025-06-10", slot.ID, "王伟"), leave.ErrUnknownEmployee)

	trimmed := leave.NewPlanner(NormalizeRoster(raw), nil, nil)
	slot, err = trimmed.AddSlot("2025-06-10")
	require.NoError(t, err)
	assert.NoError(t, trimmed.AssignSlot("2025-06-10", slot.ID, "王伟"))
}
