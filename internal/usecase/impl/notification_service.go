// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	publisher        service.ChangeEventPublisher
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	Publisher        service.ChangeEventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications returns one newest-first page of the owner's notifications
func (srv *notificationService) ListNotifications(
	ctx context.Context,
	ownerID uuid.UUID,
	filter entity.NotificationFilter,
	page entity.Page,
) (*entity.NotificationPage, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}

	page = normalizePage(page)
	result, err := srv.notificationRepo.ListNotifications(ctx, ownerID, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return result, nil
}

// CreateNotification creates an unread notification for the owner
func (srv *notificationService) CreateNotification(
	ctx context.Context,
	ownerID uuid.UUID,
	fields *entity.NotificationFields,
) (*entity.Notification, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	notification := &entity.Notification{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(fields.Title),
		Content:   fields.Content,
		Category:  fields.Category,
		Read:      false,
		ActionURL: fields.ActionURL,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		srv.log(ctx).Error("Failed to create notification", slog.Any("error", err), slog.Any("owner_id", ownerID))

		return nil, errors.Wrap(err, "failed to create notification")
	}

	srv.publish(ctx, entity.ChangeInsert, notification)

	return notification, nil
}

// UpdateNotificationRead sets the read flag and returns the stored row
func (srv *notificationService) UpdateNotificationRead(ctx context.Context, ownerID, id uuid.UUID, read bool) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.UpdateNotificationRead(ctx, ownerID, id, read)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to update notification")
	}

	srv.publish(ctx, entity.ChangeUpdate, notification)

	return notification, nil
}

// MarkNotificationsRead marks the given notifications read in one batch
func (srv *notificationService) MarkNotificationsRead(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*entity.Notification, error) {
	ids = util.UniqueIDs(ids)
	if len(ids) == 0 {
		return []*entity.Notification{}, nil
	}

	updated, err := srv.notificationRepo.MarkNotificationsRead(ctx, ownerID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark notifications read")
	}

	for _, notification := range updated {
		srv.publish(ctx, entity.ChangeUpdate, notification)
	}

	srv.log(ctx).Debug("Marked notifications read",
		slog.Any("owner_id", ownerID),
		slog.Int("requested", len(ids)),
		slog.Int("affected", len(updated)),
	)

	return updated, nil
}

// DeleteNotification deletes one notification and returns how many rows were deleted
func (srv *notificationService) DeleteNotification(ctx context.Context, ownerID, id uuid.UUID) (int, error) {
	return srv.deleteNotifications(ctx, ownerID, []uuid.UUID{id})
}

// BulkDeleteNotifications deletes the given notifications in one batch
func (srv *notificationService) BulkDeleteNotifications(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int, error) {
	return srv.deleteNotifications(ctx, ownerID, util.UniqueIDs(ids))
}

func (srv *notificationService) deleteNotifications(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted []*entity.Notification
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		notificationRepo := txRepoFactory.NewNotificationRepository()
		deliveryRepo := txRepoFactory.NewPushDeliveryRepository()

		rows, err := notificationRepo.DeleteNotifications(ctx, ownerID, ids)
		if err != nil {
			return errors.Wrap(err, "failed to delete notifications")
		}
		if len(rows) == 0 {
			deleted = rows

			return nil
		}

		deletedIDs := make([]uuid.UUID, 0, len(rows))
		for _, row := range rows {
			deletedIDs = append(deletedIDs, row.ID)
		}
		if _, err := deliveryRepo.DeleteDeliveriesByNotificationIDs(ctx, deletedIDs); err != nil {
			return errors.Wrap(err, "failed to delete push deliveries")
		}
		deleted = rows

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete notifications", slog.Any("error", err), slog.Any("owner_id", ownerID))

		return 0, err
	}

	for _, notification := range deleted {
		srv.publish(ctx, entity.ChangeDelete, notification)
	}

	return len(deleted), nil
}

// publish emits a change event. Failures are logged only: subscribers recover through refetch.
func (srv *notificationService) publish(ctx context.Context, op entity.ChangeOperation, notification *entity.Notification) {
	event := entity.NewChangeEvent(op, notification)
	if err := srv.publisher.PublishChangeEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish change event",
			slog.String("operation", string(op)),
			slog.Any("notification_id", notification.ID),
			slog.Any("error", err),
		)
	}
}

func validateFields(fields *entity.NotificationFields) error {
	if fields == nil {
		return domainerrors.ErrValidationFailed.WithDetails("notification fields are required")
	}
	if strings.TrimSpace(fields.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if !fields.Category.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}

	return nil
}

func normalizePage(page entity.Page) entity.Page {
	if page.Limit <= 0 {
		page.Limit = defaultPageLimit
	}
	page.Limit = min(page.Limit, maxPageLimit)
	page.Offset = max(page.Offset, 0)

	return page
}
