package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomOTP(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), GenerateRandomOTP())
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	t.Parallel()

	assert.Len(t, GenerateRandomPassword(12), 12)
}

func TestGenerateRandomEmployees(t *testing.T) {
	t.Parallel()

	employees := GenerateRandomEmployees(10)
	require.Len(t, employees, 10)

	seen := map[string]bool{}
	for _, emp := range employees {
		assert.NotEmpty(t, emp.Name)
		assert.False(t, seen[emp.Name], emp.Name)
		seen[emp.Name] = true
		assert.GreaterOrEqual(t, emp.MonthlyLeaveAllowance, 1)
		assert.LessOrEqual(t, emp.MonthlyLeaveAllowance, 3)
	}
}

func TestGenerateUsernameFromChineseName(t *testing.T) {
	t.Parallel()

	username := GenerateUsernameFromChineseName("王伟")
	assert.Regexp(t, regexp.MustCompile(`^[a-z]+\d{1,3}$`), username)
}
