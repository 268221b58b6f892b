package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	txManager        *mockRepo.MockTransactionManager
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockChangeEventPublisher
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockChangeEventPublisher(t)

	service := NewNotificationService(NotificationServiceParams{
		TxManager:        txManager,
		NotificationRepo: notificationRepo,
		Publisher:        publisher,
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          service,
		txManager:        txManager,
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

func eventFor(op entity.ChangeOperation, id uuid.UUID) interface{} {
	return mock.MatchedBy(func(event *entity.ChangeEvent) bool {
		return event.Operation == op && event.Row.ID == id
	})
}

func TestNotificationService_ListNotifications_NormalizesPage(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	page := &entity.NotificationPage{Rows: []*entity.Notification{newRow(ownerID, 1, false)}, Total: 1}

	fx.notificationRepo.EXPECT().
		ListNotifications(ctx, ownerID, entity.NotificationFilter{}, entity.Page{Limit: 20, Offset: 0}).
		Return(page, nil)
	fx.notificationRepo.EXPECT().
		ListNotifications(ctx, ownerID, entity.NotificationFilter{}, entity.Page{Limit: 100, Offset: 40}).
		Return(page, nil)

	result, err := fx.service.ListNotifications(ctx, ownerID, entity.NotificationFilter{}, entity.Page{Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, page, result)

	_, err = fx.service.ListNotifications(ctx, ownerID, entity.NotificationFilter{}, entity.Page{Limit: 1000, Offset: 40})
	require.NoError(t, err)
}

func TestNotificationService_ListNotifications_UnknownCategory(t *testing.T) {
	fx := createTestNotificationService(t)
	category := entity.Category("NEWSLETTER")

	_, err := fx.service.ListNotifications(context.Background(), uuid.New(), entity.NotificationFilter{Category: &category}, entity.Page{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_CreateNotification_Success(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	actionURL := "https://app.example.com/billing"
	fields := &entity.NotificationFields{
		Title:     "  Payment received  ",
		Content:   "We received your payment",
		Category:  entity.CategoryBilling,
		ActionURL: &actionURL,
	}

	var created *entity.Notification
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) { created = notification }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*entity.ChangeEvent")).
		Run(func(_ context.Context, event *entity.ChangeEvent) {
			assert.Equal(t, entity.ChangeInsert, event.Operation)
			assert.Equal(t, created.ID, event.Row.ID)
		}).
		Return(nil)

	notification, err := fx.service.CreateNotification(ctx, ownerID, fields)
	require.NoError(t, err)
	assert.Equal(t, ownerID, notification.OwnerID)
	assert.Equal(t, "Payment received", notification.Title)
	assert.False(t, notification.Read)
	assert.Equal(t, int64(1), notification.Version)
	assert.Equal(t, &actionURL, notification.ActionURL)
}

func TestNotificationService_CreateNotification_Validation(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		fields *entity.NotificationFields
	}{
		{name: "nil fields", fields: nil},
		{name: "blank title", fields: &entity.NotificationFields{Title: "   ", Category: entity.CategorySystem}},
		{name: "unknown category", fields: &entity.NotificationFields{Title: "Hi", Category: "OTHER"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreateNotification(ctx, uuid.New(), tt.fields)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestNotificationService_CreateNotification_RepositoryError(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(domainerrors.ErrNotificationCreationFailed)

	_, err := fx.service.CreateNotification(ctx, uuid.New(), &entity.NotificationFields{Title: "Hi", Category: entity.CategorySystem})
	assert.ErrorIs(t, err, domainerrors.ErrNotificationCreationFailed)
}

func TestNotificationService_CreateNotification_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*entity.ChangeEvent")).
		Return(errors.New("topic not found"))

	notification, err := fx.service.CreateNotification(ctx, uuid.New(), &entity.NotificationFields{Title: "Hi", Category: entity.CategorySecurity})
	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotificationService_UpdateNotificationRead_Success(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	row := withVersion(newRow(ownerID, 1, false), 2, true)

	fx.notificationRepo.EXPECT().
		UpdateNotificationRead(ctx, ownerID, row.ID, true).
		Return(row, nil)
	fx.publisher.EXPECT().
		PublishChangeEvent(ctx, eventFor(entity.ChangeUpdate, row.ID)).
		Return(nil)

	updated, err := fx.service.UpdateNotificationRead(ctx, ownerID, row.ID, true)
	require.NoError(t, err)
	assert.Equal(t, row, updated)
}

func TestNotificationService_UpdateNotificationRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	id := uuid.New()

	fx.notificationRepo.EXPECT().
		UpdateNotificationRead(ctx, ownerID, id, true).
		Return(nil, repository.ErrNotificationNotFound)

	_, err := fx.service.UpdateNotificationRead(ctx, ownerID, id, true)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkNotificationsRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	first := newRow(ownerID, 1, false)
	second := newRow(ownerID, 2, false)

	fx.notificationRepo.EXPECT().
		MarkNotificationsRead(ctx, ownerID, []uuid.UUID{first.ID, second.ID}).
		Return([]*entity.Notification{withVersion(first, 2, true)}, nil)
	fx.publisher.EXPECT().
		PublishChangeEvent(ctx, eventFor(entity.ChangeUpdate, first.ID)).
		Return(nil).
		Once()

	updated, err := fx.service.MarkNotificationsRead(ctx, ownerID, []uuid.UUID{first.ID, second.ID, first.ID})
	require.NoError(t, err)
	assert.Len(t, updated, 1)

	empty, err := fx.service.MarkNotificationsRead(ctx, ownerID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNotificationService_DeleteNotification_RemovesDeliveries(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	row := newRow(ownerID, 1, false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
			mockDeliveryRepo := mockRepo.NewMockPushDeliveryRepository(t)

			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)
			mockFactory.EXPECT().NewPushDeliveryRepository().Return(mockDeliveryRepo)
			mockNotificationRepo.EXPECT().
				DeleteNotifications(ctx, ownerID, []uuid.UUID{row.ID}).
				Return([]*entity.Notification{row}, nil)
			mockDeliveryRepo.EXPECT().
				DeleteDeliveriesByNotificationIDs(ctx, []uuid.UUID{row.ID}).
				Return(int64(2), nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishChangeEvent(ctx, eventFor(entity.ChangeDelete, row.ID)).
		Return(nil)

	deleted, err := fx.service.DeleteNotification(ctx, ownerID, row.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestNotificationService_BulkDeleteNotifications_CountsMissingRows(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	a, b := newRow(ownerID, 1, false), newRow(ownerID, 2, true)
	missing := uuid.New()
	ids := []uuid.UUID{a.ID, b.ID, missing}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
			mockDeliveryRepo := mockRepo.NewMockPushDeliveryRepository(t)

			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)
			mockFactory.EXPECT().NewPushDeliveryRepository().Return(mockDeliveryRepo)
			mockNotificationRepo.EXPECT().
				DeleteNotifications(ctx, ownerID, ids).
				Return([]*entity.Notification{a, b}, nil)
			mockDeliveryRepo.EXPECT().
				DeleteDeliveriesByNotificationIDs(ctx, []uuid.UUID{a.ID, b.ID}).
				Return(int64(0), nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishChangeEvent(ctx, mock.AnythingOfType("*entity.ChangeEvent")).
		Return(nil).
		Times(2)

	deleted, err := fx.service.BulkDeleteNotifications(ctx, ownerID, append(ids, a.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
}

func TestNotificationService_DeleteNotification_NothingDeleted(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)
			mockFactory.EXPECT().NewPushDeliveryRepository().Return(mockRepo.NewMockPushDeliveryRepository(t))
			mockNotificationRepo.EXPECT().
				DeleteNotifications(ctx, ownerID, []uuid.UUID{id}).
				Return([]*entity.Notification{}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	deleted, err := fx.service.DeleteNotification(ctx, ownerID, id)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestNotificationService_DeleteNotification_TransactionError(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()
	txErr := errors.New("could not serialize access")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txErr)

	deleted, err := fx.service.DeleteNotification(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, txErr)
	assert.Zero(t, deleted)
}

func TestNotificationService_BulkDeleteNotifications_Empty(t *testing.T) {
	fx := createTestNotificationService(t)

	deleted, err := fx.service.BulkDeleteNotifications(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
