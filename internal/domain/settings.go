package domain

// UserSettings 是用户的界面偏好，整体存在 redis 中
type UserSettings struct {
	UserID       int64             `json:"userId"`
	Language     string            `json:"language"`
	Theme        string            `json:"theme"`
	CustomColors map[string]string `json:"customColors,omitempty"`
}
