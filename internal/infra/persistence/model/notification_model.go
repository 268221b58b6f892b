package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// Every change to a row is published to the change feed.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_owner_created,priority:1"`
	Title     string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(32);not null"`
	Read      bool      `gorm:"column:is_read;not null;default:false"`
	ActionURL *string   `gorm:"type:text"`
	Version   int64     `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"index:idx_notifications_owner_created,priority:2,sort:desc"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationSettingModel is the GORM-specific struct for the 'notification_settings' table.
type NotificationSettingModel struct {
	OwnerID     uuid.UUID `gorm:"type:uuid;primary_key"`
	PushEnabled bool      `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationSettingModel) TableName() string {
	return "notification_settings"
}
