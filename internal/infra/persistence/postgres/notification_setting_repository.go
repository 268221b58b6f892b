package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type notificationSettingRepository struct {
	db *gorm.DB
}

// NewNotificationSettingRepository is the constructor for notificationSettingRepository.
func NewNotificationSettingRepository(db *gorm.DB) repository.NotificationSettingRepository {
	return &notificationSettingRepository{
		db: db,
	}
}

func (repo *notificationSettingRepository) FindSetting(ctx context.Context, ownerID uuid.UUID) (*entity.NotificationSetting, error) {
	var settingM model.NotificationSettingModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification setting")
	}

	return &entity.NotificationSetting{
		OwnerID:     settingM.OwnerID,
		PushEnabled: settingM.PushEnabled,
		UpdatedAt:   settingM.UpdatedAt,
	}, nil
}

func (repo *notificationSettingRepository) UpsertSetting(ctx context.Context, setting *entity.NotificationSetting) error {
	settingM := &model.NotificationSettingModel{
		OwnerID:     setting.OwnerID,
		PushEnabled: setting.PushEnabled,
		UpdatedAt:   time.Now().UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"push_enabled", "updated_at"}),
		}).
		Create(settingM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert notification setting")
	}

	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}
