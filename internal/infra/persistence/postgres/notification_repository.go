// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// ListNotifications returns one newest-first page of an owner's notifications.
func (repo *notificationRepository) ListNotifications(ctx context.Context, ownerID uuid.UUID, filter entity.NotificationFilter, page entity.Page) (*entity.NotificationPage, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("owner_id = ?", ownerID)

	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Read != nil {
		query = query.Where("is_read = ?", *filter.Read)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	var notificationModels []*model.NotificationModel
	listQuery := query.Order("created_at DESC").Order("id DESC")
	if page.Limit > 0 {
		listQuery = listQuery.Limit(page.Limit)
	}
	if page.Offset > 0 {
		listQuery = listQuery.Offset(page.Offset)
	}

	if err := listQuery.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return &entity.NotificationPage{
		Rows:  toNotificationDomains(notificationModels),
		Total: total,
	}, nil
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("notification already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("missing required notification information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("invalid notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.Version = notificationM.Version
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationByID retrieves one notification of an owner.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// UpdateNotificationRead sets the read flag and returns the row as stored after the update.
func (repo *notificationRepository) UpdateNotificationRead(ctx context.Context, ownerID, id uuid.UUID, read bool) (*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	result := repo.db.WithContext(ctx).
		Model(&notificationModels).
		Clauses(clause.Returning{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Updates(readUpdates(read))

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update notification read state")
	}

	if result.RowsAffected == 0 || len(notificationModels) == 0 {
		return nil, repository.ErrNotificationNotFound
	}

	return toNotificationDomain(notificationModels[0]), nil
}

// MarkNotificationsRead marks the unread rows among ids read and returns them.
func (repo *notificationRepository) MarkNotificationsRead(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*entity.Notification, error) {
	if len(ids) == 0 {
		return []*entity.Notification{}, nil
	}

	var notificationModels []*model.NotificationModel

	result := repo.db.WithContext(ctx).
		Model(&notificationModels).
		Clauses(clause.Returning{}).
		Where("owner_id = ? AND id IN ? AND is_read = ?", ownerID, ids, false).
		Updates(readUpdates(true))

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notifications read")
	}

	return toNotificationDomains(notificationModels), nil
}

// DeleteNotifications deletes the owner's rows among ids and returns them.
func (repo *notificationRepository) DeleteNotifications(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*entity.Notification, error) {
	if len(ids) == 0 {
		return []*entity.Notification{}, nil
	}

	var notificationModels []*model.NotificationModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Delete(&notificationModels)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notifications")
	}

	return toNotificationDomains(notificationModels), nil
}

// readUpdates bumps the version together with the read flag.
func readUpdates(read bool) map[string]any {
	return map[string]any{
		"is_read":    read,
		"version":    gorm.Expr("version + 1"),
		"updated_at": time.Now().UTC(),
	}
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Content:   data.Content,
		Category:  entity.Category(data.Category),
		Read:      data.Read,
		ActionURL: data.ActionURL,
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toNotificationDomains(models []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(models))
	for _, notificationM := range models {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	version := data.Version
	if version < 1 {
		version = 1
	}

	return &model.NotificationModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Title:     data.Title,
		Content:   data.Content,
		Category:  string(data.Category),
		Read:      data.Read,
		ActionURL: data.ActionURL,
		Version:   version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
