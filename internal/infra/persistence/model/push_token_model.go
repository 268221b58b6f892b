package model

import (
	"time"

	"github.com/google/uuid"
)

// PushTokenModel is the GORM-specific struct for the 'push_tokens' table.
// It represents a device registered for push notifications; (owner_id, device_id) is unique.
type PushTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_push_tokens_owner_device,priority:1"`
	DeviceID   string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_push_tokens_owner_device,priority:2"`
	Token      string    `gorm:"type:text;not null;index"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	AppVersion string    `gorm:"type:varchar(64)"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}

// PushDeliveryModel is the GORM-specific struct for the 'push_deliveries' table.
// The (notification_id, device_id) unique key makes every push at most once.
type PushDeliveryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_push_deliveries_notification_device,priority:1"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_push_deliveries_notification_device,priority:2"`
	Status         string    `gorm:"type:varchar(16);not null;default:'pending'"`
	FCMMessageID   string    `gorm:"type:text"`
	ErrorMessage   string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushDeliveryModel) TableName() string {
	return "push_deliveries"
}
