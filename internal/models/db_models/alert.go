package db_models

import "github.com/google/uuid"

type Alert struct {
	BaseModel
	Title   string    `json:"title" gorm:"size:255;not null"`
	Message string    `json:"message" gorm:"type:text;not null;column:alert_message"`
	Type    AlertType `json:"alert_type" gorm:"size:30;not null;column:alert_type"`
	IsRead  bool      `json:"is_read" gorm:"not null;default:false;index"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
}

func (Alert) TableName() string {
	return "alerts"
}
