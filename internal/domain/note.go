package domain

import "time"

type Note struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userID"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int32     `json:"-"`
}
