package domain

import "time"

// TaskCategory 对应四象限视图中的四个象限
type TaskCategory string

const (
	TaskCategoryUrgentImportant       TaskCategory = "urgent_important"
	TaskCategoryUrgentNotImportant    TaskCategory = "urgent_not_important"
	TaskCategoryNotUrgentImportant    TaskCategory = "not_urgent_important"
	TaskCategoryNotUrgentNotImportant TaskCategory = "not_urgent_not_important"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type Task struct {
	ID            string       `json:"id"`
	UserID        int64        `json:"userID"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      TaskCategory `json:"category"`
	Status        TaskStatus   `json:"status"`
	PriorityColor string       `json:"priorityColor"`
	DueDate       *time.Time   `json:"dueDate"`
	ReminderTime  *time.Time   `json:"reminderTime"`
	Order         int32        `json:"order"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Version       int32        `json:"-"`
}
