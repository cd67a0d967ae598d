package domain

import "time"

type NotificationType string

const (
	NotificationTypePopup    NotificationType = "popup"
	NotificationTypeRedirect NotificationType = "redirect"
)

type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "unread"
	NotificationStatusRead   NotificationStatus = "read"
)

type Notification struct {
	ID         string             `json:"id"`
	SenderID   int64              `json:"senderID"`
	ReceiverID int64              `json:"receiverID"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Type       NotificationType   `json:"type"`
	Link       string             `json:"link"`
	Status     NotificationStatus `json:"status"`
	SentAt     time.Time          `json:"sentAt"`
}
