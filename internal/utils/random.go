package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleUser,
	domain.RoleUser,
	domain.RoleAdmin,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

// 生成一份随机的员工名单，额度在 1~3 之间，姓名保证不重复
func GenerateRandomEmployees(n int) []domain.Employee {
	employees := make([]domain.Employee, 0, n)
	seen := map[string]bool{}

	for len(employees) < n {
		name := GenerateRandomChineseName()
		if seen[name] {
			continue
		}
		seen[name] = true

		employees = append(employees, domain.Employee{
			Name:                  name,
			MonthlyLeaveAllowance: rand.Intn(3) + 1,
		})
	}

	return employees
}

var taskCategories = []domain.TaskCategory{
	domain.TaskCategoryUrgentImportant,
	domain.TaskCategoryUrgentNotImportant,
	domain.TaskCategoryNotUrgentImportant,
	domain.TaskCategoryNotUrgentNotImportant,
}

var taskStatuses = []domain.TaskStatus{
	domain.TaskStatusTodo,
	domain.TaskStatusInProgress,
	domain.TaskStatusCompleted,
}

func GenerateRandomTask(userID int64) *domain.Task {
	return &domain.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       "任务" + GenerateRandomID(3, 3),
		Description: "任务描述" + GenerateRandomID(20, 10),
		Category:    taskCategories[rand.Intn(len(taskCategories))],
		Status:      taskStatuses[rand.Intn(len(taskStatuses))],
		Order:       int32(rand.Intn(10)),
	}
}

func GenerateRandomNote(userID int64) *domain.Note {
	return &domain.Note{
		ID:      uuid.NewString(),
		UserID:  userID,
		Content: "便签内容" + GenerateRandomID(30, 10),
	}
}
