package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

func (r *Repository) GetNotificationsByReceiverID(receiverID int64) ([]*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, sender_id, title, content, type, link, status, sent_at
		FROM notifications
		WHERE receiver_id = $1
		ORDER BY sent_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		notification := &domain.Notification{
			ReceiverID: receiverID,
		}
		dst := []any{&notification.ID, &notification.SenderID, &notification.Title, &notification.Content, &notification.Type, &notification.Link, &notification.Status, &notification.SentAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *Repository) CreateNotification(notification *domain.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO notifications (id, sender_id, receiver_id, title, content, type, link, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING sent_at
	`

	args := []any{notification.ID, notification.SenderID, notification.ReceiverID, notification.Title, notification.Content, notification.Type, notification.Link, notification.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&notification.SentAt); err != nil {
		return err
	}

	return nil
}

// MarkNotificationRead 只允许接收者本人把通知置为已读
func (r *Repository) MarkNotificationRead(id string, receiverID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE notifications
		SET status = $1
		WHERE id = $2 AND receiver_id = $3
		RETURNING id
	`

	var updatedID string
	if err := r.dbpool.QueryRowContext(ctx, query, domain.NotificationStatusRead, id, receiverID).Scan(&updatedID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteNotification(id string, receiverID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM notifications WHERE id = $1 AND receiver_id = $2
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id, receiverID); err != nil {
		return err
	}

	return nil
}
