package repository

import (
	"fmt"

	"github.com/sysu-ecnc-dev/mueen/backend/internal/domain"
)

func settingsKey(userID int64) string {
	return fmt.Sprintf("mueen_settings_%d", userID)
}

func (r *Repository) GetUserSettings(userID int64) (*domain.UserSettings, error) {
	// 从未保存过设置的用户拿到默认值
	settings := &domain.UserSettings{
		UserID:   userID,
		Language: "ar",
		Theme:    "light",
	}
	if err := r.getJSON(settingsKey(userID), settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *Repository) SetUserSettings(settings *domain.UserSettings) error {
	return r.setJSON(settingsKey(settings.UserID), settings)
}
