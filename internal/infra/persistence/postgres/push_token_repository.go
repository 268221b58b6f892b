package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushTokenRepository implements the repository.PushTokenRepository interface.
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository is the constructor for pushTokenRepository.
func NewPushTokenRepository(db *gorm.DB) repository.PushTokenRepository {
	return &pushTokenRepository{
		db: db,
	}
}

// UpsertPushToken inserts the device record or refreshes the existing one in place.
func (repo *pushTokenRepository) UpsertPushToken(ctx context.Context, token *entity.PushToken) error {
	tokenM := fromPushTokenDomain(token)
	tokenM.IsActive = true

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "owner_id"}, {Name: "device_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"token":       tokenM.Token,
					"platform":    tokenM.Platform,
					"app_version": tokenM.AppVersion,
					"is_active":   true,
					"updated_at":  time.Now().UTC(),
				}),
			},
			clause.Returning{},
		).
		Create(tokenM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required push token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert push token")
	}

	token.ID = tokenM.ID
	token.IsActive = tokenM.IsActive
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindPushToken retrieves the record of one device of an owner.
func (repo *pushTokenRepository) FindPushToken(ctx context.Context, ownerID uuid.UUID, deviceID string) (*entity.PushToken, error) {
	var tokenM model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND device_id = ?", ownerID, deviceID).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPushTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find push token")
	}

	return toPushTokenDomain(&tokenM), nil
}

// FindPushTokensByOwner retrieves all records of an owner, including inactive ones.
func (repo *pushTokenRepository) FindPushTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens by owner")
	}

	return toPushTokenDomains(tokenModels), nil
}

// FindActivePushTokensByOwner retrieves the active records of an owner.
func (repo *pushTokenRepository) FindActivePushTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("updated_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active push tokens by owner")
	}

	return toPushTokenDomains(tokenModels), nil
}

// DeactivatePushToken marks one device of an owner inactive.
func (repo *pushTokenRepository) DeactivatePushToken(ctx context.Context, ownerID uuid.UUID, deviceID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("owner_id = ? AND device_id = ?", ownerID, deviceID).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate push token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushTokenNotFound
	}

	return nil
}

// DeactivateTokenElsewhere deactivates active records carrying token under another (owner, device) pair.
func (repo *pushTokenRepository) DeactivateTokenElsewhere(ctx context.Context, ownerID uuid.UUID, deviceID, token string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("token = ? AND is_active = ?", token, true).
		Where("NOT (owner_id = ? AND device_id = ?)", ownerID, deviceID).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate duplicated push token")
	}

	return result.RowsAffected, nil
}

// DeactivateByToken deactivates every record carrying token.
func (repo *pushTokenRepository) DeactivateByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("token = ? AND is_active = ?", token, true).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate push token by value")
	}

	return nil
}

// --- Mapper Functions ---

// toPushTokenDomain converts a GORM PushTokenModel to a domain PushToken entity.
func toPushTokenDomain(data *model.PushTokenModel) *entity.PushToken {
	if data == nil {
		return nil
	}

	return &entity.PushToken{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		DeviceID:   data.DeviceID,
		Token:      data.Token,
		Platform:   data.Platform,
		AppVersion: data.AppVersion,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toPushTokenDomains(models []*model.PushTokenModel) []*entity.PushToken {
	tokens := make([]*entity.PushToken, 0, len(models))
	for _, tokenM := range models {
		tokens = append(tokens, toPushTokenDomain(tokenM))
	}

	return tokens
}

// fromPushTokenDomain converts a domain PushToken entity to a GORM PushTokenModel.
func fromPushTokenDomain(data *entity.PushToken) *model.PushTokenModel {
	if data == nil {
		return nil
	}

	return &model.PushTokenModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		DeviceID:   data.DeviceID,
		Token:      data.Token,
		Platform:   data.Platform,
		AppVersion: data.AppVersion,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
