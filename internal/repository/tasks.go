package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

func (r *Repository) GetTasksByUserID(userID int64) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, title, description, category, status, priority_color, due_date, reminder_time, sort_order, created_at, updated_at, version
		FROM tasks
		WHERE user_id = $1
		ORDER BY category, sort_order, created_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task := &domain.Task{
			UserID: userID,
		}
		dst := []any{&task.ID, &task.Title, &task.Description, &task.Category, &task.Status, &task.PriorityColor, &task.DueDate, &task.ReminderTime, &task.Order, &task.CreatedAt, &task.UpdatedAt, &task.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *Repository) GetTaskByID(id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT user_id, title, description, category, status, priority_color, due_date, reminder_time, sort_order, created_at, updated_at, version
		FROM tasks WHERE id = $1
	`

	task := &domain.Task{
		ID: id,
	}

	dst := []any{&task.UserID, &task.Title, &task.Description, &task.Category, &task.Status, &task.PriorityColor, &task.DueDate, &task.ReminderTime, &task.Order, &task.CreatedAt, &task.UpdatedAt, &task.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *Repository) CreateTask(task *domain.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO tasks (id, user_id, title, description, category, status, priority_color, due_date, reminder_time, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at, version
	`

	args := []any{task.ID, task.UserID, task.Title, task.Description, task.Category, task.Status, task.PriorityColor, task.DueDate, task.ReminderTime, task.Order}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.CreatedAt, &task.UpdatedAt, &task.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateTask(task *domain.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE tasks
		SET
			title = $1,
			description = $2,
			category = $3,
			status = $4,
			priority_color = $5,
			due_date = $6,
			reminder_time = $7,
			sort_order = $8,
			updated_at = now(),
			version = version + 1
		WHERE id = $9 AND version = $10
		RETURNING updated_at, version
	`

	args := []any{task.Title, task.Description, task.Category, task.Status, task.PriorityColor, task.DueDate, task.ReminderTime, task.Order, task.ID, task.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.UpdatedAt, &task.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTask(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM tasks WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
